package services

import (
	"github.com/rs/zerolog"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/pkg/helpers"
)

// EngagementService defines the interface for the points, achievement
// and streak ledger
type EngagementService interface {
	GetPoints(userID string) *dto.PointsResponse
	AddPoints(userID string, amount int) (*dto.PointsResponse, error)
	GetAchievementCatalog() *dto.AchievementListResponse
	GetUnlocked(userID string) *dto.AchievementListResponse
	UnlockAchievement(userID, achievementID string) (*dto.UnlockResponse, error)
	GetStreak(userID string) *dto.StreakResponse
	TouchStreak(userID string, day helpers.Date) *dto.StreakResponse
	ListRewards() *dto.RewardListResponse
	RedeemReward(userID, rewardID string) (*dto.RedeemResponse, error)
}

// engagementServiceImpl implements EngagementService
type engagementServiceImpl struct {
	ledger *store.EngagementStore
	logger zerolog.Logger
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(ledger *store.EngagementStore, logger zerolog.Logger) EngagementService {
	return &engagementServiceImpl{
		ledger: ledger,
		logger: logger,
	}
}

// GetPoints returns the user's balance; unknown users have zero points
func (s *engagementServiceImpl) GetPoints(userID string) *dto.PointsResponse {
	return &dto.PointsResponse{
		UserID: userID,
		Points: s.ledger.Points(userID),
	}
}

// AddPoints credits a positive amount to the user's balance
func (s *engagementServiceImpl) AddPoints(userID string, amount int) (*dto.PointsResponse, error) {
	total, err := s.ledger.AddPoints(userID, amount)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("userId", userID).
		Int("amount", amount).
		Int("newTotal", total).
		Msg("Points added")

	return &dto.PointsResponse{UserID: userID, Points: total}, nil
}

// GetAchievementCatalog returns the full fixed catalog
func (s *engagementServiceImpl) GetAchievementCatalog() *dto.AchievementListResponse {
	return toAchievementList(s.ledger.Catalog())
}

// GetUnlocked returns the user's achievements in catalog order
func (s *engagementServiceImpl) GetUnlocked(userID string) *dto.AchievementListResponse {
	return toAchievementList(s.ledger.Unlocked(userID))
}

// UnlockAchievement records an achievement for the user and credits its
// points. Re-unlocking returns awarded=false with no point change.
func (s *engagementServiceImpl) UnlockAchievement(userID, achievementID string) (*dto.UnlockResponse, error) {
	awarded, pointsEarned, newTotal, err := s.ledger.Unlock(userID, achievementID)
	if err != nil {
		return nil, err
	}

	if awarded {
		s.logger.Info().
			Str("userId", userID).
			Str("achievementId", achievementID).
			Int("pointsEarned", pointsEarned).
			Msg("Achievement unlocked")
	}

	return &dto.UnlockResponse{
		Awarded:       awarded,
		PointsEarned:  pointsEarned,
		AchievementID: achievementID,
		NewTotal:      newTotal,
	}, nil
}

// GetStreak returns the user's streak record, zeroed for unknown users
func (s *engagementServiceImpl) GetStreak(userID string) *dto.StreakResponse {
	return toStreakResponse(userID, s.ledger.Streak(userID))
}

// TouchStreak records activity on the given calendar day
func (s *engagementServiceImpl) TouchStreak(userID string, day helpers.Date) *dto.StreakResponse {
	record := s.ledger.Touch(userID, day)

	s.logger.Debug().
		Str("userId", userID).
		Str("day", day.String()).
		Int("currentStreak", record.CurrentStreak).
		Msg("Streak touched")

	return toStreakResponse(userID, record)
}

// ListRewards returns the fixed reward catalog
func (s *engagementServiceImpl) ListRewards() *dto.RewardListResponse {
	rewards := s.ledger.Rewards()
	out := make([]dto.RewardResponse, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, dto.RewardResponse{
			ID:             r.ID,
			Name:           r.Name,
			Description:    r.Description,
			PointsRequired: r.PointsRequired,
		})
	}
	return &dto.RewardListResponse{Rewards: out}
}

// RedeemReward spends the reward's point cost from the user's balance
func (s *engagementServiceImpl) RedeemReward(userID, rewardID string) (*dto.RedeemResponse, error) {
	spent, remaining, err := s.ledger.Redeem(userID, rewardID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("userId", userID).
		Str("rewardId", rewardID).
		Int("pointsSpent", spent).
		Int("remaining", remaining).
		Msg("Reward redeemed")

	return &dto.RedeemResponse{
		RewardID:     rewardID,
		PointsSpent:  spent,
		RemainingPts: remaining,
	}, nil
}

func toAchievementList(achievements []models.Achievement) *dto.AchievementListResponse {
	out := make([]dto.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, dto.AchievementResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Points:      a.Points,
			Icon:        a.Icon,
		})
	}
	return &dto.AchievementListResponse{Achievements: out}
}

func toStreakResponse(userID string, record models.StreakRecord) *dto.StreakResponse {
	resp := &dto.StreakResponse{
		UserID:        userID,
		CurrentStreak: record.CurrentStreak,
		LongestStreak: record.LongestStreak,
	}
	if record.LastActiveDate != nil {
		resp.LastActiveDate = record.LastActiveDate.String()
	}
	return resp
}
