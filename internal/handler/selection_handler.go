package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecart/coursecart-api/internal/service"
	appErrors "github.com/coursecart/coursecart-api/pkg/errors"
	"github.com/coursecart/coursecart-api/pkg/response"
)

// SelectionHandler exposes cart endpoints.
type SelectionHandler struct {
	selections *service.SelectionService
}

// NewSelectionHandler constructs SelectionHandler.
func NewSelectionHandler(selections *service.SelectionService) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

// Create godoc
// @Summary Add a class to a student's cart
// @Tags Selections
// @Accept json
// @Produce json
// @Param payload body service.CreateSelectionRequest true "Selection payload"
// @Success 201 {object} models.Selection
// @Router /selections [post]
func (h *SelectionHandler) Create(c *gin.Context) {
	var req service.CreateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	selection, err := h.selections.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, selection)
}

// List godoc
// @Summary List every selection across all users
// @Tags Selections
// @Produce json
// @Success 200 {array} models.Selection
// @Router /selections [get]
func (h *SelectionHandler) List(c *gin.Context) {
	selections, err := h.selections.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, selections)
}

// Get godoc
// @Summary Fetch one selection by id
// @Tags Selections
// @Produce json
// @Param id path string true "Selection ID"
// @Success 200 {object} models.Selection
// @Router /selections/{id} [get]
func (h *SelectionHandler) Get(c *gin.Context) {
	selection, err := h.selections.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, selection)
}

// ListByEmail godoc
// @Summary List one student's cart
// @Tags Selections
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {array} models.Selection
// @Router /students/{email}/selections [get]
func (h *SelectionHandler) ListByEmail(c *gin.Context) {
	selections, err := h.selections.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, selections)
}

// Delete godoc
// @Summary Remove a selection from the cart
// @Tags Selections
// @Produce json
// @Param id path string true "Selection ID"
// @Success 204
// @Router /selections/{id} [delete]
func (h *SelectionHandler) Delete(c *gin.Context) {
	if err := h.selections.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
