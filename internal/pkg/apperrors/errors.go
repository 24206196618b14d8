package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Directory errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrCommunityNotFound    = errors.New("community not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrEventFull         = errors.New("event is full")
)

// Engagement errors
var (
	ErrInvalidAmount      = errors.New("point amount must be positive")
	ErrUnknownAchievement = errors.New("unknown achievement")
	ErrUnknownReward      = errors.New("unknown reward")
	ErrInsufficientPoints = errors.New("insufficient points")
)

// Referral errors
var (
	ErrReferralNotFound = errors.New("referral not found")
)

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
