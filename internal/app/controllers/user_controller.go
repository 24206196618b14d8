package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/services"
	"github.com/kranthik10/campusconnect/internal/middleware"
	"github.com/kranthik10/campusconnect/internal/pkg/helpers"
)

// UserController handles user directory and matching operations
type UserController struct {
	userService  services.UserService
	matchService services.MatchService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, matchService services.MatchService) *UserController {
	return &UserController{
		userService:  userService,
		matchService: matchService,
	}
}

// GetUser handles retrieving a single user by id
// @Summary Get user by ID
// @Description Retrieves a specific user by their ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "User retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.userService.GetUser(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// SearchUsers handles searching the user directory
// @Summary Search users
// @Description Searches users by name, major or interest tag. An empty query returns the full directory.
// @Tags users
// @Accept json
// @Produce json
// @Param search query string false "Search query"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param size query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse} "Users retrieved successfully"
// @Router /users [get]
func (c *UserController) SearchUsers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	users, err := c.userService.SearchUsers(ctx.Query("search"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(users))
}

// GetConnections handles retrieving a user's connections
// @Summary Get user connections
// @Description Resolves a user's connection ids to user records. Unknown users yield an empty list.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Connections retrieved successfully"
// @Router /users/{id}/connections [get]
func (c *UserController) GetConnections(ctx *gin.Context) {
	connections, err := c.userService.GetConnections(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(connections))
}

// GetMatches handles similarity matching for a user
// @Summary Find users with similar interests
// @Description Ranks other users by shared-interest count with the target user, descending. The target and zero-overlap users are excluded. Unknown targets yield an empty list.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Maximum number of results" default(5)
// @Success 200 {object} dto.APIResponse{data=dto.MatchListResponse} "Matches computed successfully"
// @Router /users/{id}/matches [get]
func (c *UserController) GetMatches(ctx *gin.Context) {
	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit").
				WithField("limit").
				WithDetails("limit must be a positive integer")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		limit = parsed
	}

	matches, err := c.matchService.MatchSimilarUsers(ctx.Param("id"), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(matches))
}

// ListInterests handles retrieving the interest catalog
// @Summary List interests
// @Description Retrieves the static interest catalog
// @Tags catalogs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Interests retrieved successfully"
// @Router /interests [get]
func (c *UserController) ListInterests(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.userService.ListInterests()))
}

// ListColleges handles retrieving or searching the college catalog
// @Summary List colleges
// @Description Retrieves the static college catalog with optional substring search
// @Tags catalogs
// @Produce json
// @Param search query string false "Search query"
// @Success 200 {object} dto.APIResponse{data=[]string} "Colleges retrieved successfully"
// @Router /colleges [get]
func (c *UserController) ListColleges(ctx *gin.Context) {
	if query := ctx.Query("search"); query != "" {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.userService.SearchColleges(query)))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.userService.ListColleges()))
}
