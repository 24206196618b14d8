package dto

// ReferralResponse represents one referral record
type ReferralResponse struct {
	ID             string `json:"id"`
	ReferrerID     string `json:"referrerId"`
	ReferredUserID string `json:"referredUserId"`
	Reward         string `json:"reward"`
	Status         string `json:"status" example:"pending"`
	CreatedAt      string `json:"createdAt" example:"2024-05-01"`
}

// ReferralListResponse wraps a user's referrals
type ReferralListResponse struct {
	Referrals []ReferralResponse `json:"referrals"`
}

// CreateReferralRequest registers a new pending referral
type CreateReferralRequest struct {
	ReferrerID     string `json:"referrerId" binding:"required"`
	ReferredUserID string `json:"referredUserId" binding:"required"`
	Reward         string `json:"reward"`
}

// CompleteReferralResponse reports the completion outcome. Completed is
// false when the referral had already been completed.
type CompleteReferralResponse struct {
	Completed     bool             `json:"completed"`
	PointsAwarded int              `json:"pointsAwarded"`
	Referral      ReferralResponse `json:"referral"`
}

// ReferralLinkResponse carries a shareable referral link
type ReferralLinkResponse struct {
	UserID string `json:"userId" example:"1"`
	Link   string `json:"link" example:"https://campusconnect.app/referral/1"`
}
