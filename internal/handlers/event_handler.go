package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StudyTrack/calendar-service/internal/models"
	"github.com/StudyTrack/calendar-service/internal/repositories"
	"github.com/StudyTrack/calendar-service/internal/services"
	"github.com/StudyTrack/calendar-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type EventHandler struct {
	BaseHandler
	eventService  services.EventService
	exportService services.ExportService
}

func NewEventHandler(eventService services.EventService, exportService services.ExportService, logger utils.Logger) *EventHandler {
	return &EventHandler{
		BaseHandler:   NewBaseHandler(logger),
		eventService:  eventService,
		exportService: exportService,
	}
}

// CreateEvent creates a new calendar event
// @Summary Create event
// @Description Creates a GENERAL or ASSIGNMENT event owned by the caller
// @Tags events
// @Accept json
// @Produce json
// @Param event body services.EventCreateRequest true "Event data"
// @Success 201 {object} models.CalendarEvent
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req services.EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	username, ok := h.currentUsername(c)
	if !ok {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), &req, username)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent retrieves an event by ID
// @Summary Get event
// @Tags events
// @Produce json
// @Param id path uint true "Event ID"
// @Success 200 {object} models.CalendarEvent
// @Failure 404 {object} ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent updates an event owned by the caller
// @Summary Update event
// @Tags events
// @Accept json
// @Produce json
// @Param id path uint true "Event ID"
// @Param event body services.EventUpdateRequest true "Event update data"
// @Success 200 {object} models.CalendarEvent
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	username, ok := h.currentUsername(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Updating event", "event_id", id, "username", username)

	event, err := h.eventService.Update(c.Request.Context(), id, &req, username)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent deletes an event owned by the caller
// @Summary Delete event
// @Tags events
// @Param id path uint true "Event ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	username, ok := h.currentUsername(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Deleting event", "event_id", id, "username", username)

	if err := h.eventService.Delete(c.Request.Context(), id, username); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListEvents lists the caller's events, filterable via query parameters
// @Summary List events
// @Tags events
// @Produce json
// @Param type query string false "Event type filter"
// @Param status query string false "Status filter"
// @Param priority query string false "Priority filter"
// @Param category_id query int false "Category filter"
// @Success 200 {array} models.CalendarEvent
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	username, ok := h.currentUsername(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListByUser(c.Request.Context(), username, parseEventFilters(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// UpcomingEvents lists the caller's events starting after now
// @Summary List upcoming events
// @Tags events
// @Produce json
// @Success 200 {array} models.CalendarEvent
// @Router /events/upcoming [get]
func (h *EventHandler) UpcomingEvents(c *gin.Context) {
	username, ok := h.currentUsername(c)
	if !ok {
		return
	}

	events, err := h.eventService.Upcoming(c.Request.Context(), username)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// TodayEvents lists the caller's events starting today
// @Summary List today's events
// @Tags events
// @Produce json
// @Success 200 {array} models.CalendarEvent
// @Router /events/today [get]
func (h *EventHandler) TodayEvents(c *gin.Context) {
	username, ok := h.currentUsername(c)
	if !ok {
		return
	}

	events, err := h.eventService.Today(c.Request.Context(), username)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// ExportEvents streams the caller's events as an xlsx workbook
// @Summary Export events
// @Tags events
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /events/export [get]
func (h *EventHandler) ExportEvents(c *gin.Context) {
	username, ok := h.currentUsername(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Exporting events", "username", username)

	file, err := h.exportService.ExportUserEvents(c.Request.Context(), username)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("events-%s-%s.xlsx", username, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", xlsxContentType)

	if err := file.Write(c.Writer); err != nil {
		h.LogError(c, "Failed to stream export", err, "username", username)
	}
}

// parseEventFilters builds repository filters from the query string. Unknown
// values are passed through; the repository whitelists sortable columns.
func parseEventFilters(c *gin.Context) repositories.EventFilters {
	filters := repositories.EventFilters{
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if raw := c.Query("type"); raw != "" {
		eventType := models.EventType(raw)
		filters.Type = &eventType
	}
	if raw := c.Query("status"); raw != "" {
		status := models.EventStatus(raw)
		filters.Status = &status
	}
	if raw := c.Query("priority"); raw != "" {
		priority := models.EventPriority(raw)
		filters.Priority = &priority
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(id)
			filters.CategoryID = &categoryID
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			filters.Limit = limit
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil {
			filters.Offset = offset
		}
	}

	return filters
}
