package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecart/coursecart-api/internal/models"
	"github.com/coursecart/coursecart-api/internal/service"
	appErrors "github.com/coursecart/coursecart-api/pkg/errors"
	"github.com/coursecart/coursecart-api/pkg/response"
)

// AuthHandler exposes token issuance.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SignToken godoc
// @Summary Issue a bearer token for the supplied email
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.TokenRequest true "Token payload"
// @Success 200 {object} models.TokenResponse
// @Router /jwt [post]
func (h *AuthHandler) SignToken(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	token, err := h.auth.SignToken(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, token)
}
