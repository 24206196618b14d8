package models

import "github.com/kranthik10/campusconnect/internal/pkg/helpers"

// ReferralStatus is the lifecycle state of a referral
type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralCompleted ReferralStatus = "completed"
)

// Referral records one user bringing another onto the platform.
// Status moves pending -> completed exactly once.
type Referral struct {
	ID             string         `json:"id"`
	ReferrerID     string         `json:"referrerId"`
	ReferredUserID string         `json:"referredUserId"`
	Reward         string         `json:"reward"`
	Status         ReferralStatus `json:"status"`
	CreatedAt      helpers.Date   `json:"createdAt"`
}
