package dto

// PointsResponse reports a user's point balance
type PointsResponse struct {
	UserID string `json:"userId" example:"1"`
	Points int    `json:"points" example:"150"`
}

// AddPointsRequest carries a positive point delta
type AddPointsRequest struct {
	Amount int    `json:"amount" binding:"required" example:"25"`
	Reason string `json:"reason,omitempty" example:"event attendance"`
}

// AchievementResponse represents one catalog achievement
type AchievementResponse struct {
	ID          string `json:"id" example:"1"`
	Name        string `json:"name" example:"First Connection"`
	Description string `json:"description" example:"Connect with your first peer"`
	Points      int    `json:"points" example:"10"`
	Icon        string `json:"icon" example:"link"`
}

// AchievementListResponse wraps achievements in catalog order
type AchievementListResponse struct {
	Achievements []AchievementResponse `json:"achievements"`
}

// UnlockResponse reports the outcome of an unlock attempt. Awarded is
// false when the achievement was already unlocked; that is a soft
// outcome, not an error.
type UnlockResponse struct {
	Awarded       bool   `json:"awarded" example:"true"`
	PointsEarned  int    `json:"pointsEarned" example:"10"`
	AchievementID string `json:"achievementId" example:"1"`
	NewTotal      int    `json:"newTotal" example:"160"`
}

// StreakResponse reports a user's streak record
type StreakResponse struct {
	UserID         string `json:"userId" example:"1"`
	CurrentStreak  int    `json:"currentStreak" example:"7"`
	LongestStreak  int    `json:"longestStreak" example:"15"`
	LastActiveDate string `json:"lastActiveDate,omitempty" example:"2024-05-15"`
}

// TouchStreakRequest optionally pins the activity day; when empty the
// server uses the current UTC day.
type TouchStreakRequest struct {
	Date string `json:"date,omitempty" example:"2024-05-15"`
}

// RewardResponse represents one redeemable reward
type RewardResponse struct {
	ID             string `json:"id" example:"1"`
	Name           string `json:"name" example:"Premium Features"`
	Description    string `json:"description" example:"Unlock premium features for 1 month"`
	PointsRequired int    `json:"pointsRequired" example:"100"`
}

// RewardListResponse wraps the reward catalog
type RewardListResponse struct {
	Rewards []RewardResponse `json:"rewards"`
}

// RedeemResponse reports a successful redemption
type RedeemResponse struct {
	RewardID     string `json:"rewardId" example:"1"`
	PointsSpent  int    `json:"pointsSpent" example:"100"`
	RemainingPts int    `json:"remainingPoints" example:"50"`
}
