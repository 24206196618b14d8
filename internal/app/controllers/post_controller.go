package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/services"
	"github.com/kranthik10/campusconnect/internal/middleware"
	"github.com/kranthik10/campusconnect/internal/pkg/helpers"
)

// PostController handles feed operations
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{postService: postService}
}

// GetFeed handles retrieving the post feed
// @Summary Get feed
// @Description Retrieves posts newest first with pagination
// @Tags posts
// @Accept json
// @Produce json
// @Param userId query string false "Requesting user ID"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param size query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PostListResponse} "Feed retrieved successfully"
// @Router /posts [get]
func (c *PostController) GetFeed(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	feed, err := c.postService.GetFeed(ctx.Query("userId"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(feed))
}

// CreatePost handles creating a new post
// @Summary Create post
// @Description Creates a new post with a generated id and server timestamp
// @Tags posts
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "New post"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse} "Post created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Author or community not found"
// @Router /posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	post, err := c.postService.CreatePost(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// LikePost handles liking a post
// @Summary Like post
// @Description Increments the like counter on a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Post liked"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id}/likes [post]
func (c *PostController) LikePost(ctx *gin.Context) {
	post, err := c.postService.LikePost(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// AddComment handles commenting on a post
// @Summary Comment on post
// @Description Increments the comment counter on a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Comment recorded"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id}/comments [post]
func (c *PostController) AddComment(ctx *gin.Context) {
	post, err := c.postService.AddComment(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}
