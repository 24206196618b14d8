package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/services"
	"github.com/kranthik10/campusconnect/internal/middleware"
	"github.com/kranthik10/campusconnect/internal/pkg/helpers"
)

// EngagementController handles points, achievements, streaks and rewards
type EngagementController struct {
	engagementService services.EngagementService
}

// NewEngagementController creates a new EngagementController
func NewEngagementController(engagementService services.EngagementService) *EngagementController {
	return &EngagementController{engagementService: engagementService}
}

// GetPoints handles retrieving a user's point balance
// @Summary Get points
// @Description Retrieves the user's point balance; unknown users have zero points
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.PointsResponse} "Points retrieved successfully"
// @Router /users/{id}/points [get]
func (c *EngagementController) GetPoints(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.engagementService.GetPoints(ctx.Param("id"))))
}

// AddPoints handles crediting points to a user
// @Summary Add points
// @Description Credits a positive point amount to the user's balance
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.AddPointsRequest true "Point delta"
// @Success 200 {object} dto.APIResponse{data=dto.PointsResponse} "Points added"
// @Failure 400 {object} dto.ErrorResponse "Amount is not positive"
// @Router /users/{id}/points [post]
func (c *EngagementController) AddPoints(ctx *gin.Context) {
	var req dto.AddPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	points, err := c.engagementService.AddPoints(ctx.Param("id"), req.Amount)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(points))
}

// GetAchievementCatalog handles retrieving the achievement catalog
// @Summary Get achievement catalog
// @Description Retrieves the fixed, ordered achievement catalog
// @Tags engagement
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AchievementListResponse} "Catalog retrieved successfully"
// @Router /achievements [get]
func (c *EngagementController) GetAchievementCatalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.engagementService.GetAchievementCatalog()))
}

// GetUnlocked handles retrieving a user's unlocked achievements
// @Summary Get unlocked achievements
// @Description Retrieves the user's unlocked achievements in catalog order
// @Tags engagement
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.AchievementListResponse} "Achievements retrieved successfully"
// @Router /users/{id}/achievements [get]
func (c *EngagementController) GetUnlocked(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.engagementService.GetUnlocked(ctx.Param("id"))))
}

// UnlockAchievement handles unlocking an achievement for a user
// @Summary Unlock achievement
// @Description Records the achievement and credits its points atomically. Re-unlocking returns awarded=false with no point change.
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param achievementId path string true "Achievement ID"
// @Success 200 {object} dto.APIResponse{data=dto.UnlockResponse} "Unlock processed"
// @Failure 404 {object} dto.ErrorResponse "Unknown achievement"
// @Router /users/{id}/achievements/{achievementId} [post]
func (c *EngagementController) UnlockAchievement(ctx *gin.Context) {
	result, err := c.engagementService.UnlockAchievement(ctx.Param("id"), ctx.Param("achievementId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// GetStreak handles retrieving a user's streak record
// @Summary Get streak
// @Description Retrieves the user's activity streak record
// @Tags engagement
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.StreakResponse} "Streak retrieved successfully"
// @Router /users/{id}/streak [get]
func (c *EngagementController) GetStreak(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.engagementService.GetStreak(ctx.Param("id"))))
}

// TouchStreak handles recording daily activity
// @Summary Touch streak
// @Description Records activity for a calendar day. The body date is optional; when empty the current UTC day is used. Touching twice on the same day is a no-op.
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.TouchStreakRequest false "Activity day (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.StreakResponse} "Streak updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid date format"
// @Router /users/{id}/streak [post]
func (c *EngagementController) TouchStreak(ctx *gin.Context) {
	var req dto.TouchStreakRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
				WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	day := helpers.Today()
	if req.Date != "" {
		parsed, err := helpers.ParseDate(req.Date)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date").
				WithField("date").
				WithDetails("date must use the YYYY-MM-DD format")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		day = parsed
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.engagementService.TouchStreak(ctx.Param("id"), day)))
}

// ListRewards handles retrieving the reward catalog
// @Summary List rewards
// @Description Retrieves the fixed redeemable reward catalog
// @Tags engagement
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.RewardListResponse} "Rewards retrieved successfully"
// @Router /rewards [get]
func (c *EngagementController) ListRewards(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.engagementService.ListRewards()))
}

// RedeemReward handles redeeming a reward
// @Summary Redeem reward
// @Description Spends the reward's point cost from the user's balance. Fails with 409 when the balance is insufficient.
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param rewardId path string true "Reward ID"
// @Success 200 {object} dto.APIResponse{data=dto.RedeemResponse} "Reward redeemed"
// @Failure 404 {object} dto.ErrorResponse "Unknown reward"
// @Failure 409 {object} dto.ErrorResponse "Insufficient points"
// @Router /users/{id}/rewards/{rewardId} [post]
func (c *EngagementController) RedeemReward(ctx *gin.Context) {
	result, err := c.engagementService.RedeemReward(ctx.Param("id"), ctx.Param("rewardId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
