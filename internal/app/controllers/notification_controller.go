package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/services"
	"github.com/kranthik10/campusconnect/internal/middleware"
)

// NotificationController handles notification operations
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListNotifications handles retrieving a user's notifications
// @Summary List notifications
// @Description Retrieves the user's notifications in insertion order with an unread count
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.NotificationListResponse} "Notifications retrieved successfully"
// @Router /users/{id}/notifications [get]
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	notifications, err := c.notificationService.ListForUser(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notifications))
}

// MarkRead handles marking a notification as read
// @Summary Mark notification read
// @Description Sets the read flag on a notification; marking twice is a no-op
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.APIResponse{data=dto.NotificationResponse} "Notification marked read"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	notification, err := c.notificationService.MarkRead(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notification))
}
