package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

type referralFixture struct {
	svc       ReferralService
	referrals *store.ReferralStore
	ledger    *store.EngagementStore
}

func newReferralFixture() referralFixture {
	users := store.NewUserStore()
	users.Add(models.NewUser("u1", "Alex Johnson", "alex@example.edu", "Stanford University", "CS", 3, nil, nil))

	referrals := store.NewReferralStore()
	ledger := store.NewEngagementStore(store.DefaultAchievementCatalog(), store.DefaultRewardCatalog())

	svc := NewReferralService(referrals, users, ledger, "https://campusconnect.app/referral", 50, zerolog.Nop())
	return referralFixture{svc: svc, referrals: referrals, ledger: ledger}
}

func TestCreateReferral(t *testing.T) {
	f := newReferralFixture()

	resp, err := f.svc.CreateReferral(&dto.CreateReferralRequest{
		ReferrerID:     "u1",
		ReferredUserID: "u9",
		Reward:         "Premium features for 1 month",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "pending", resp.Status)

	list, err := f.svc.ListReferrals("u1")
	require.NoError(t, err)
	assert.Len(t, list.Referrals, 1)
}

func TestCreateReferralUnknownReferrer(t *testing.T) {
	f := newReferralFixture()

	_, err := f.svc.CreateReferral(&dto.CreateReferralRequest{
		ReferrerID:     "nobody",
		ReferredUserID: "u9",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCompleteReferralAwardsBonusOnce(t *testing.T) {
	f := newReferralFixture()
	f.referrals.Add(&models.Referral{
		ID: "r1", ReferrerID: "u1", ReferredUserID: "u9",
		Status: models.ReferralPending,
	})

	resp, err := f.svc.CompleteReferral("r1")
	require.NoError(t, err)
	assert.True(t, resp.Completed)
	assert.Equal(t, 50, resp.PointsAwarded)
	assert.Equal(t, "completed", resp.Referral.Status)
	assert.Equal(t, 50, f.ledger.Points("u1"))

	// Completing again is a soft no-op with no extra points
	resp, err = f.svc.CompleteReferral("r1")
	require.NoError(t, err)
	assert.False(t, resp.Completed)
	assert.Equal(t, 0, resp.PointsAwarded)
	assert.Equal(t, 50, f.ledger.Points("u1"))
}

func TestCompleteReferralUnknownID(t *testing.T) {
	f := newReferralFixture()

	_, err := f.svc.CompleteReferral("missing")
	assert.ErrorIs(t, err, apperrors.ErrReferralNotFound)
}

func TestReferralLink(t *testing.T) {
	f := newReferralFixture()

	resp, err := f.svc.ReferralLink("u1")
	require.NoError(t, err)
	assert.Equal(t, "https://campusconnect.app/referral/u1", resp.Link)

	_, err = f.svc.ReferralLink("nobody")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
