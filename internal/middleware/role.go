package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coursecart/coursecart-api/internal/models"
	appErrors "github.com/coursecart/coursecart-api/pkg/errors"
	"github.com/coursecart/coursecart-api/pkg/response"
)

type roleLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireRole gates a route on the stored role of the token's user. The user
// record is looked up fresh on every request; there is no caching. The token
// email carries whatever casing the client signed in with, while stored emails
// are lowercased, so the lookup normalizes.
func RequireRole(users roleLookup, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims := claimsValue.(*models.JWTClaims)

		user, err := users.FindByEmail(c.Request.Context(), strings.ToLower(claims.Email))
		if err != nil || user.Role != role {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentClaims returns the verified claims stored on the context, if any.
func CurrentClaims(c *gin.Context) *models.JWTClaims {
	if v, exists := c.Get(ContextUserKey); exists {
		if claims, ok := v.(*models.JWTClaims); ok {
			return claims
		}
	}
	return nil
}
