package store

import (
	"sync"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
	"github.com/kranthik10/campusconnect/internal/pkg/helpers"
)

// EngagementStore is the ledger for points, achievements and streaks.
// A single mutex guards all three mappings so an achievement unlock
// records the id and credits its points as one atomic step.
type EngagementStore struct {
	mu sync.Mutex

	catalog          []models.Achievement
	achievementsByID map[string]models.Achievement

	rewards     []models.Reward
	rewardsByID map[string]models.Reward

	points   map[string]int
	unlocked map[string]map[string]struct{}
	streaks  map[string]models.StreakRecord
}

// NewEngagementStore creates a ledger over the given fixed catalogs
func NewEngagementStore(catalog []models.Achievement, rewards []models.Reward) *EngagementStore {
	s := &EngagementStore{
		catalog:          catalog,
		achievementsByID: make(map[string]models.Achievement, len(catalog)),
		rewards:          rewards,
		rewardsByID:      make(map[string]models.Reward, len(rewards)),
		points:           make(map[string]int),
		unlocked:         make(map[string]map[string]struct{}),
		streaks:          make(map[string]models.StreakRecord),
	}
	for _, a := range catalog {
		s.achievementsByID[a.ID] = a
	}
	for _, r := range rewards {
		s.rewardsByID[r.ID] = r
	}
	return s
}

// Points returns the user's balance, zero for unknown ids
func (s *EngagementStore) Points(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points[userID]
}

// AddPoints credits a positive amount and returns the new total
func (s *EngagementStore) AddPoints(userID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.points[userID] += amount
	return s.points[userID], nil
}

// Catalog returns the fixed achievement catalog in order
func (s *EngagementStore) Catalog() []models.Achievement {
	return append([]models.Achievement(nil), s.catalog...)
}

// Unlocked returns the user's unlocked achievements in catalog order,
// not unlock order.
func (s *EngagementStore) Unlocked(userID string) []models.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.unlocked[userID]
	if len(ids) == 0 {
		return nil
	}

	var out []models.Achievement
	for _, a := range s.catalog {
		if _, ok := ids[a.ID]; ok {
			out = append(out, a)
		}
	}
	return out
}

// HasUnlocked reports whether the user already holds the achievement
func (s *EngagementStore) HasUnlocked(userID, achievementID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.unlocked[userID][achievementID]
	return ok
}

// Unlock records the achievement and credits its points in one step.
// Unknown ids are a hard failure; re-unlocking is a soft outcome with
// awarded=false and no point change.
func (s *EngagementStore) Unlock(userID, achievementID string) (awarded bool, pointsEarned int, newTotal int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	achievement, ok := s.achievementsByID[achievementID]
	if !ok {
		return false, 0, 0, apperrors.ErrUnknownAchievement
	}

	if _, already := s.unlocked[userID][achievementID]; already {
		return false, 0, s.points[userID], nil
	}

	if s.unlocked[userID] == nil {
		s.unlocked[userID] = make(map[string]struct{})
	}
	s.unlocked[userID][achievementID] = struct{}{}
	s.points[userID] += achievement.Points

	return true, achievement.Points, s.points[userID], nil
}

// Streak returns the user's streak record, zero-valued for unknown ids
func (s *EngagementStore) Streak(userID string) models.StreakRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaks[userID]
}

// Touch records activity on the given calendar day. The day comes from
// the caller, never from a wall clock, so the transition rules stay
// testable:
//
//	no record          -> current = longest = 1
//	same day           -> no-op
//	previous day       -> current+1, longest = max(longest, current)
//	gap or future last -> current = 1, longest unchanged
func (s *EngagementStore) Touch(userID string, day helpers.Date) models.StreakRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.streaks[userID]
	if !ok || record.LastActiveDate == nil {
		record = models.StreakRecord{CurrentStreak: 1, LongestStreak: 1}
		record.LastActiveDate = &day
		s.streaks[userID] = record
		return record
	}

	last := *record.LastActiveDate
	switch {
	case last.Equal(day):
		// second touch on the same day must not double-increment
	case day.DaysSince(last) == 1:
		record.CurrentStreak++
		if record.CurrentStreak > record.LongestStreak {
			record.LongestStreak = record.CurrentStreak
		}
		record.LastActiveDate = &day
	default:
		// missed at least a day, or last activity is in the future
		record.CurrentStreak = 1
		record.LastActiveDate = &day
	}

	s.streaks[userID] = record
	return record
}

// SetUnlocked records achievements as already held without crediting
// points, for seeding balances that predate the ledger
func (s *EngagementStore) SetUnlocked(userID string, achievementIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unlocked[userID] == nil {
		s.unlocked[userID] = make(map[string]struct{}, len(achievementIDs))
	}
	for _, id := range achievementIDs {
		s.unlocked[userID][id] = struct{}{}
	}
}

// SetStreak installs a streak record directly, for seeding
func (s *EngagementStore) SetStreak(userID string, record models.StreakRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.streaks[userID] = record
}

// Rewards returns the fixed reward catalog in order
func (s *EngagementStore) Rewards() []models.Reward {
	return append([]models.Reward(nil), s.rewards...)
}

// Redeem spends the reward's point cost. The balance check and the
// deduction happen under one lock.
func (s *EngagementStore) Redeem(userID, rewardID string) (spent int, remaining int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reward, ok := s.rewardsByID[rewardID]
	if !ok {
		return 0, 0, apperrors.ErrUnknownReward
	}

	balance := s.points[userID]
	if balance < reward.PointsRequired {
		return 0, balance, apperrors.ErrInsufficientPoints
	}

	s.points[userID] = balance - reward.PointsRequired
	return reward.PointsRequired, s.points[userID], nil
}
