package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/services"
	"github.com/kranthik10/campusconnect/internal/middleware"
	"github.com/kranthik10/campusconnect/internal/pkg/helpers"
)

// CommunityController handles community related operations
type CommunityController struct {
	communityService services.CommunityService
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService services.CommunityService) *CommunityController {
	return &CommunityController{communityService: communityService}
}

// GetAllCommunities handles retrieving communities with optional filtering
// @Summary Get all communities
// @Description Retrieves communities with optional substring search, category filter and pagination. Empty filters return the full list.
// @Tags communities
// @Accept json
// @Produce json
// @Param search query string false "Search by name, description or category"
// @Param category query string false "Filter by exact category (case-insensitive)"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param size query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.CommunityListResponse} "Communities retrieved successfully"
// @Router /communities [get]
func (c *CommunityController) GetAllCommunities(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := &dto.CommunityFilterRequest{
		Page:     page,
		PageSize: size,
	}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}
	if category := ctx.Query("category"); category != "" {
		filter.Category = &category
	}

	communities, err := c.communityService.GetAllCommunities(filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(communities))
}

// GetCommunityByID handles retrieving a specific community by ID
// @Summary Get community by ID
// @Description Retrieves a specific community by its ID
// @Tags communities
// @Accept json
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {object} dto.APIResponse{data=dto.CommunityResponse} "Community retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Router /communities/{id} [get]
func (c *CommunityController) GetCommunityByID(ctx *gin.Context) {
	community, err := c.communityService.GetCommunityByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(community))
}

// JoinCommunity handles a user joining a community
// @Summary Join community
// @Description Adds the user to the community. Joining twice is idempotent: member count and member set change at most once.
// @Tags communities
// @Accept json
// @Produce json
// @Param id path string true "Community ID"
// @Param request body dto.JoinCommunityRequest true "Joining user"
// @Success 200 {object} dto.APIResponse{data=dto.JoinCommunityResponse} "Joined successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Community or user not found"
// @Router /communities/{id}/members [post]
func (c *CommunityController) JoinCommunity(ctx *gin.Context) {
	var req dto.JoinCommunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.communityService.JoinCommunity(req.UserID, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
