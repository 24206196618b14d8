package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/services"
	"github.com/kranthik10/campusconnect/internal/middleware"
	"github.com/kranthik10/campusconnect/internal/pkg/helpers"
)

// EventController handles event related operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// GetAllEvents handles retrieving events with optional search
// @Summary Get all events
// @Description Retrieves events with optional substring search over title, description and location, plus pagination
// @Tags events
// @Accept json
// @Produce json
// @Param search query string false "Search query"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param size query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse} "Events retrieved successfully"
// @Router /events [get]
func (c *EventController) GetAllEvents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	events, err := c.eventService.GetAllEvents(ctx.Query("search"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// GetEventByID handles retrieving a specific event by ID
// @Summary Get event by ID
// @Description Retrieves a specific event by its ID
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	event, err := c.eventService.GetEventByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// JoinEvent handles a user registering for an event
// @Summary Join event
// @Description Registers the user for the event. Fails with 409 when already registered or when the event is at capacity.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.JoinEventRequest true "Registering user"
// @Success 200 {object} dto.APIResponse{data=dto.JoinEventResponse} "Registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Event or user not found"
// @Failure 409 {object} dto.ErrorResponse "Already registered or event full"
// @Router /events/{id}/attendees [post]
func (c *EventController) JoinEvent(ctx *gin.Context) {
	var req dto.JoinEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.eventService.JoinEvent(req.UserID, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
