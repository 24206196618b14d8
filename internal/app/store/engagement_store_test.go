package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
	"github.com/kranthik10/campusconnect/internal/pkg/helpers"
)

func newTestLedger() *EngagementStore {
	return NewEngagementStore(DefaultAchievementCatalog(), DefaultRewardCatalog())
}

func TestAddPoints(t *testing.T) {
	ledger := newTestLedger()

	total, err := ledger.AddPoints("u1", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, total)

	total, err = ledger.AddPoints("u1", 5)
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Equal(t, 15, ledger.Points("u1"))
}

func TestAddPointsRejectsNonPositiveAmounts(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.AddPoints("u1", 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = ledger.AddPoints("u1", -5)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	assert.Equal(t, 0, ledger.Points("u1"), "failed credits must not change the balance")
}

func TestPointsUnknownUserIsZero(t *testing.T) {
	assert.Equal(t, 0, newTestLedger().Points("nobody"))
}

func TestUnlockCreditsPointsOnce(t *testing.T) {
	ledger := newTestLedger()

	awarded, earned, total, err := ledger.Unlock("u1", "1")
	require.NoError(t, err)
	assert.True(t, awarded)
	assert.Equal(t, 10, earned)
	assert.Equal(t, 10, total)
	assert.True(t, ledger.HasUnlocked("u1", "1"))

	// Second unlock of the same achievement is a soft no-op
	awarded, earned, total, err = ledger.Unlock("u1", "1")
	require.NoError(t, err)
	assert.False(t, awarded)
	assert.Equal(t, 0, earned)
	assert.Equal(t, 10, total)
}

func TestUnlockUnknownAchievement(t *testing.T) {
	ledger := newTestLedger()

	_, _, _, err := ledger.Unlock("u1", "999")
	assert.ErrorIs(t, err, apperrors.ErrUnknownAchievement)
	assert.Equal(t, 0, ledger.Points("u1"))
}

func TestUnlockedReturnsCatalogOrder(t *testing.T) {
	ledger := newTestLedger()

	_, _, _, err := ledger.Unlock("u1", "3")
	require.NoError(t, err)
	_, _, _, err = ledger.Unlock("u1", "1")
	require.NoError(t, err)

	unlocked := ledger.Unlocked("u1")
	require.Len(t, unlocked, 2)
	assert.Equal(t, "1", unlocked[0].ID)
	assert.Equal(t, "3", unlocked[1].ID)
}

func TestTouchStartsStreakAtOne(t *testing.T) {
	ledger := newTestLedger()
	day := helpers.NewDate(2024, time.May, 10)

	record := ledger.Touch("u1", day)
	assert.Equal(t, 1, record.CurrentStreak)
	assert.Equal(t, 1, record.LongestStreak)
	require.NotNil(t, record.LastActiveDate)
	assert.True(t, record.LastActiveDate.Equal(day))
}

func TestTouchSameDayIsIdempotent(t *testing.T) {
	ledger := newTestLedger()
	day := helpers.NewDate(2024, time.May, 10)

	ledger.Touch("u1", day)
	record := ledger.Touch("u1", day)

	assert.Equal(t, 1, record.CurrentStreak)
	assert.Equal(t, 1, record.LongestStreak)
}

func TestTouchConsecutiveDayExtendsStreak(t *testing.T) {
	ledger := newTestLedger()
	day := helpers.NewDate(2024, time.May, 10)

	ledger.Touch("u1", day)
	record := ledger.Touch("u1", day.AddDays(1))

	assert.Equal(t, 2, record.CurrentStreak)
	assert.Equal(t, 2, record.LongestStreak)
}

func TestTouchAfterGapResetsCurrentKeepsLongest(t *testing.T) {
	ledger := newTestLedger()
	day := helpers.NewDate(2024, time.May, 10)

	ledger.Touch("u1", day)
	ledger.Touch("u1", day.AddDays(1))
	ledger.Touch("u1", day.AddDays(2))
	record := ledger.Touch("u1", day.AddDays(7))

	assert.Equal(t, 1, record.CurrentStreak)
	assert.Equal(t, 3, record.LongestStreak)
}

func TestTouchWithPastDayResets(t *testing.T) {
	ledger := newTestLedger()
	day := helpers.NewDate(2024, time.May, 10)

	ledger.Touch("u1", day)
	record := ledger.Touch("u1", day.AddDays(-3))

	assert.Equal(t, 1, record.CurrentStreak)
	assert.Equal(t, 1, record.LongestStreak)
	assert.True(t, record.LastActiveDate.Equal(day.AddDays(-3)))
}

func TestRedeem(t *testing.T) {
	ledger := newTestLedger()
	_, err := ledger.AddPoints("u1", 120)
	require.NoError(t, err)

	spent, remaining, err := ledger.Redeem("u1", "1")
	require.NoError(t, err)
	assert.Equal(t, 100, spent)
	assert.Equal(t, 20, remaining)
	assert.Equal(t, 20, ledger.Points("u1"))
}

func TestRedeemInsufficientPoints(t *testing.T) {
	ledger := newTestLedger()
	_, err := ledger.AddPoints("u1", 40)
	require.NoError(t, err)

	_, remaining, err := ledger.Redeem("u1", "1")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPoints)
	assert.Equal(t, 40, remaining, "a failed redemption must not deduct")
}

func TestRedeemUnknownReward(t *testing.T) {
	ledger := newTestLedger()

	_, _, err := ledger.Redeem("u1", "999")
	assert.ErrorIs(t, err, apperrors.ErrUnknownReward)
}

func TestSetUnlockedDoesNotCreditPoints(t *testing.T) {
	ledger := newTestLedger()

	ledger.SetUnlocked("u1", "1", "2")

	assert.True(t, ledger.HasUnlocked("u1", "1"))
	assert.True(t, ledger.HasUnlocked("u1", "2"))
	assert.Equal(t, 0, ledger.Points("u1"))
}
