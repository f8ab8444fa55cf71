package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecart/coursecart-api/internal/service"
	appErrors "github.com/coursecart/coursecart-api/pkg/errors"
	"github.com/coursecart/coursecart-api/pkg/response"
)

// ClassHandler exposes class offering endpoints.
type ClassHandler struct {
	classes *service.ClassService
}

// NewClassHandler constructs ClassHandler.
func NewClassHandler(classes *service.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// List godoc
// @Summary List all classes
// @Tags Classes
// @Produce json
// @Success 200 {array} models.Class
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.classes.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// ListByInstructor godoc
// @Summary List classes owned by an instructor
// @Tags Classes
// @Produce json
// @Param email path string true "Instructor email"
// @Success 200 {array} models.Class
// @Router /classes/instructor/{email} [get]
func (h *ClassHandler) ListByInstructor(c *gin.Context) {
	classes, err := h.classes.ListByInstructor(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// ListApproved godoc
// @Summary List approved classes, most enrolled first
// @Tags Classes
// @Produce json
// @Success 200 {array} models.Class
// @Router /classes/approved [get]
func (h *ClassHandler) ListApproved(c *gin.Context) {
	classes, err := h.classes.ListApproved(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// ListPopular godoc
// @Summary List the most popular approved classes
// @Tags Classes
// @Produce json
// @Success 200 {array} models.Class
// @Router /classes/popular [get]
func (h *ClassHandler) ListPopular(c *gin.Context) {
	classes, err := h.classes.ListPopular(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// Create godoc
// @Summary Create a class offering (starts in pending review)
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body service.CreateClassRequest true "Class payload"
// @Success 201 {object} models.Class
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	class, err := h.classes.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, class)
}

// Approve godoc
// @Summary Approve a pending class
// @Tags Classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} models.Class
// @Router /classes/{id}/approve [patch]
func (h *ClassHandler) Approve(c *gin.Context) {
	class, err := h.classes.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, class)
}

// Deny godoc
// @Summary Deny a pending class
// @Tags Classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} models.Class
// @Router /classes/{id}/deny [patch]
func (h *ClassHandler) Deny(c *gin.Context) {
	class, err := h.classes.Deny(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, class)
}

// SetFeedback godoc
// @Summary Attach admin feedback to a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param payload body service.FeedbackRequest true "Feedback payload"
// @Success 200 {object} models.Class
// @Router /classes/{id}/feedback [put]
func (h *ClassHandler) SetFeedback(c *gin.Context) {
	var req service.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	class, err := h.classes.SetFeedback(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, class)
}

// UpdateSeats godoc
// @Summary Update seat and enrollment counters
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param payload body service.SeatUpdateRequest true "Seat payload"
// @Success 200 {object} models.Class
// @Router /classes/{id}/seats [put]
func (h *ClassHandler) UpdateSeats(c *gin.Context) {
	var req service.SeatUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	class, err := h.classes.UpdateSeats(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, class)
}
