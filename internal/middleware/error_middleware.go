package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

// HandleAPIError maps engine errors onto HTTP responses. Absence of
// data is never routed here; only hard failures from the error
// taxonomy and genuinely unexpected errors arrive.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrUserNotFound,
		apperrors.ErrCommunityNotFound,
		apperrors.ErrEventNotFound,
		apperrors.ErrPostNotFound,
		apperrors.ErrMessageNotFound,
		apperrors.ErrReferralNotFound,
		apperrors.ErrNotificationNotFound,
		apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		))

	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeAlreadyRegistered, "Already registered for this event"),
		))

	case errors.Is(err, apperrors.ErrEventFull):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeEventFull, "Event is full"),
		))

	case errors.Is(err, apperrors.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidAmount, "Point amount must be positive").WithField("amount"),
		))

	case errors.Is(err, apperrors.ErrUnknownAchievement):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnknownAchievement, "Unknown achievement"),
		))

	case errors.Is(err, apperrors.ErrUnknownReward):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnknownReward, "Unknown reward"),
		))

	case errors.Is(err, apperrors.ErrInsufficientPoints):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInsufficientPoints, "Insufficient points for this reward"),
		))

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
