package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/StudyTrack/calendar-service/internal/repositories"
	"github.com/StudyTrack/calendar-service/internal/services"
	"github.com/StudyTrack/calendar-service/internal/utils"
)

type TaxonomyHandler struct {
	BaseHandler
	taxonomyService services.TaxonomyService
}

func NewTaxonomyHandler(taxonomyService services.TaxonomyService, logger utils.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{
		BaseHandler:     NewBaseHandler(logger),
		taxonomyService: taxonomyService,
	}
}

// CreateCategory creates a new event category
// @Summary Create category
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param category body services.CategoryCreateRequest true "Category data"
// @Success 201 {object} models.EventCategory
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /categories [post]
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req services.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	category, err := h.taxonomyService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetCategory retrieves a category by ID
// @Summary Get category
// @Tags taxonomy
// @Produce json
// @Param id path uint true "Category ID"
// @Success 200 {object} models.EventCategory
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [get]
func (h *TaxonomyHandler) GetCategory(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	category, err := h.taxonomyService.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// ListCategories lists categories
// @Summary List categories
// @Tags taxonomy
// @Produce json
// @Param active query bool false "Active filter"
// @Param name query string false "Name substring filter"
// @Success 200 {array} models.EventCategory
// @Router /categories [get]
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := h.taxonomyService.ListCategories(c.Request.Context(), parseTaxonomyFilters(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateTag creates a new event tag
// @Summary Create tag
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param tag body services.TagCreateRequest true "Tag data"
// @Success 201 {object} models.EventTag
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tags [post]
func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var req services.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	tag, err := h.taxonomyService.CreateTag(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// GetTag retrieves a tag by ID
// @Summary Get tag
// @Tags taxonomy
// @Produce json
// @Param id path uint true "Tag ID"
// @Success 200 {object} models.EventTag
// @Failure 404 {object} ErrorResponse
// @Router /tags/{id} [get]
func (h *TaxonomyHandler) GetTag(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	tag, err := h.taxonomyService.GetTag(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// ListTags lists tags
// @Summary List tags
// @Tags taxonomy
// @Produce json
// @Param active query bool false "Active filter"
// @Param name query string false "Name substring filter"
// @Success 200 {array} models.EventTag
// @Router /tags [get]
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	tags, err := h.taxonomyService.ListTags(c.Request.Context(), parseTaxonomyFilters(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

func parseTaxonomyFilters(c *gin.Context) repositories.TaxonomyFilters {
	var filters repositories.TaxonomyFilters

	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filters.Active = &active
		}
	}
	if name := c.Query("name"); name != "" {
		filters.Name = &name
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
