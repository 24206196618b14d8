package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
	"github.com/kranthik10/campusconnect/internal/pkg/helpers"
)

// ReferralService defines the interface for referral operations
type ReferralService interface {
	ListReferrals(userID string) (*dto.ReferralListResponse, error)
	CreateReferral(req *dto.CreateReferralRequest) (*dto.ReferralResponse, error)
	CompleteReferral(id string) (*dto.CompleteReferralResponse, error)
	ReferralLink(userID string) (*dto.ReferralLinkResponse, error)
}

// referralServiceImpl implements ReferralService
type referralServiceImpl struct {
	referrals   *store.ReferralStore
	users       *store.UserStore
	ledger      *store.EngagementStore
	baseURL     string
	bonusPoints int
	logger      zerolog.Logger
	today       func() helpers.Date
}

// NewReferralService creates a new ReferralService. bonusPoints is
// credited to the referrer when a referral completes.
func NewReferralService(
	referrals *store.ReferralStore,
	users *store.UserStore,
	ledger *store.EngagementStore,
	baseURL string,
	bonusPoints int,
	logger zerolog.Logger,
) ReferralService {
	return &referralServiceImpl{
		referrals:   referrals,
		users:       users,
		ledger:      ledger,
		baseURL:     baseURL,
		bonusPoints: bonusPoints,
		logger:      logger,
		today:       helpers.Today,
	}
}

// ListReferrals returns referrals created by the user
func (s *referralServiceImpl) ListReferrals(userID string) (*dto.ReferralListResponse, error) {
	records := s.referrals.ListByReferrer(userID)

	referrals := make([]dto.ReferralResponse, 0, len(records))
	for _, r := range records {
		referrals = append(referrals, toReferralResponse(r))
	}

	return &dto.ReferralListResponse{Referrals: referrals}, nil
}

// CreateReferral registers a new pending referral
func (s *referralServiceImpl) CreateReferral(req *dto.CreateReferralRequest) (*dto.ReferralResponse, error) {
	if user := s.users.GetByID(req.ReferrerID); user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	referral := &models.Referral{
		ID:             uuid.NewString(),
		ReferrerID:     req.ReferrerID,
		ReferredUserID: req.ReferredUserID,
		Reward:         req.Reward,
		Status:         models.ReferralPending,
		CreatedAt:      s.today(),
	}
	s.referrals.Add(referral)

	s.logger.Info().
		Str("referralId", referral.ID).
		Str("referrerId", referral.ReferrerID).
		Msg("Referral created")

	resp := toReferralResponse(referral)
	return &resp, nil
}

// CompleteReferral transitions a referral to completed and awards the
// referrer the configured bonus. Completing an already-completed
// referral is a soft no-op with no extra points.
func (s *referralServiceImpl) CompleteReferral(id string) (*dto.CompleteReferralResponse, error) {
	referral, transitioned, err := s.referrals.Complete(id)
	if err != nil {
		return nil, err
	}

	pointsAwarded := 0
	if transitioned && s.bonusPoints > 0 {
		if _, err := s.ledger.AddPoints(referral.ReferrerID, s.bonusPoints); err == nil {
			pointsAwarded = s.bonusPoints
		}
	}

	if transitioned {
		s.logger.Info().
			Str("referralId", id).
			Str("referrerId", referral.ReferrerID).
			Int("pointsAwarded", pointsAwarded).
			Msg("Referral completed")
	}

	return &dto.CompleteReferralResponse{
		Completed:     transitioned,
		PointsAwarded: pointsAwarded,
		Referral:      toReferralResponse(referral),
	}, nil
}

// ReferralLink returns the shareable referral link for a user
func (s *referralServiceImpl) ReferralLink(userID string) (*dto.ReferralLinkResponse, error) {
	if user := s.users.GetByID(userID); user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	return &dto.ReferralLinkResponse{
		UserID: userID,
		Link:   fmt.Sprintf("%s/%s", s.baseURL, userID),
	}, nil
}

func toReferralResponse(r *models.Referral) dto.ReferralResponse {
	return dto.ReferralResponse{
		ID:             r.ID,
		ReferrerID:     r.ReferrerID,
		ReferredUserID: r.ReferredUserID,
		Reward:         r.Reward,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt.String(),
	}
}
