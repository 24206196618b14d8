package models

import "github.com/kranthik10/campusconnect/internal/pkg/helpers"

// Achievement is a catalog entry. The catalog is fixed and ordered;
// unlocked achievements are always presented in catalog order.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Icon        string `json:"icon"`
}

// Reward is a redeemable catalog entry
type Reward struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsRequired int    `json:"pointsRequired"`
}

// StreakRecord tracks daily activity per user at calendar-day
// granularity. Invariant: CurrentStreak <= LongestStreak after every
// update.
type StreakRecord struct {
	CurrentStreak  int           `json:"currentStreak"`
	LongestStreak  int           `json:"longestStreak"`
	LastActiveDate *helpers.Date `json:"lastActiveDate,omitempty"`
}
