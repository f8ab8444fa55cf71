package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecart/coursecart-api/internal/middleware"
	"github.com/coursecart/coursecart-api/internal/models"
	"github.com/coursecart/coursecart-api/internal/service"
	appErrors "github.com/coursecart/coursecart-api/pkg/errors"
	"github.com/coursecart/coursecart-api/pkg/response"
)

// UserHandler exposes user and role endpoints.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register godoc
// @Summary Register a user on first sign-in
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body service.RegisterUserRequest true "User payload"
// @Success 200 {object} models.User
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	user, created, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !created {
		response.OK(c, gin.H{"message": "member already exist"})
		return
	}
	response.Created(c, user)
}

// List godoc
// @Summary List all users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}

// ListInstructors godoc
// @Summary List users holding the instructor role
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /instructors [get]
func (h *UserHandler) ListInstructors(c *gin.Context) {
	users, err := h.users.ListInstructors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}

// CheckAdmin godoc
// @Summary Report whether the addressed user is an admin
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} map[string]bool
// @Router /users/admin/{email} [get]
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	h.checkRole(c, models.RoleAdmin, "admin")
}

// CheckInstructor godoc
// @Summary Report whether the addressed user is an instructor
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} map[string]bool
// @Router /users/instructor/{email} [get]
func (h *UserHandler) CheckInstructor(c *gin.Context) {
	h.checkRole(c, models.RoleInstructor, "instructor")
}

func (h *UserHandler) checkRole(c *gin.Context, role models.Role, field string) {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	has, err := h.users.HasRole(c.Request.Context(), c.Param("email"), claims.Email, role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{field: has})
}

// SetAdminRole godoc
// @Summary Promote a user to admin
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Router /users/{id}/admin [patch]
func (h *UserHandler) SetAdminRole(c *gin.Context) {
	h.setRole(c, models.RoleAdmin)
}

// SetInstructorRole godoc
// @Summary Promote a user to instructor
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Router /users/{id}/instructor [patch]
func (h *UserHandler) SetInstructorRole(c *gin.Context) {
	h.setRole(c, models.RoleInstructor)
}

func (h *UserHandler) setRole(c *gin.Context, role models.Role) {
	user, err := h.users.SetRole(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Delete godoc
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 204
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
