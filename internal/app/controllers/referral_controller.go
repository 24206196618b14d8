package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/services"
	"github.com/kranthik10/campusconnect/internal/middleware"
)

// ReferralController handles referral operations
type ReferralController struct {
	referralService services.ReferralService
}

// NewReferralController creates a new ReferralController
func NewReferralController(referralService services.ReferralService) *ReferralController {
	return &ReferralController{referralService: referralService}
}

// ListReferrals handles retrieving a user's referrals
// @Summary List referrals
// @Description Retrieves referrals created by the user
// @Tags referrals
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.ReferralListResponse} "Referrals retrieved successfully"
// @Router /users/{id}/referrals [get]
func (c *ReferralController) ListReferrals(ctx *gin.Context) {
	referrals, err := c.referralService.ListReferrals(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(referrals))
}

// CreateReferral handles registering a new referral
// @Summary Create referral
// @Description Registers a new pending referral with a generated id
// @Tags referrals
// @Accept json
// @Produce json
// @Param request body dto.CreateReferralRequest true "New referral"
// @Success 201 {object} dto.APIResponse{data=dto.ReferralResponse} "Referral created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Referrer not found"
// @Router /referrals [post]
func (c *ReferralController) CreateReferral(ctx *gin.Context) {
	var req dto.CreateReferralRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	referral, err := c.referralService.CreateReferral(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(referral))
}

// CompleteReferral handles completing a pending referral
// @Summary Complete referral
// @Description Transitions a referral from pending to completed and awards the referrer bonus points. Completing twice is a soft no-op.
// @Tags referrals
// @Accept json
// @Produce json
// @Param id path string true "Referral ID"
// @Success 200 {object} dto.APIResponse{data=dto.CompleteReferralResponse} "Completion processed"
// @Failure 404 {object} dto.ErrorResponse "Referral not found"
// @Router /referrals/{id}/complete [post]
func (c *ReferralController) CompleteReferral(ctx *gin.Context) {
	result, err := c.referralService.CompleteReferral(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// GetReferralLink handles retrieving a user's referral link
// @Summary Get referral link
// @Description Returns the shareable referral link for a user
// @Tags referrals
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.ReferralLinkResponse} "Link retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/referral-link [get]
func (c *ReferralController) GetReferralLink(ctx *gin.Context) {
	link, err := c.referralService.ReferralLink(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(link))
}
