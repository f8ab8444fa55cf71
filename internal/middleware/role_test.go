package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecart/coursecart-api/internal/models"
	appErrors "github.com/coursecart/coursecart-api/pkg/errors"
)

type stubRoleLookup struct {
	users map[string]*models.User
}

func (s *stubRoleLookup) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := s.users[email]; ok {
		return user, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
}

func roleEngine(lookup roleLookup, role models.Role, claims *models.JWTClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		if claims != nil {
			c.Set(ContextUserKey, claims)
		}
		c.Next()
	}, RequireRole(lookup, role), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	lookup := &stubRoleLookup{users: map[string]*models.User{
		"admin@x.com": {Email: "admin@x.com", Role: models.RoleAdmin},
	}}
	r := roleEngine(lookup, models.RoleAdmin, &models.JWTClaims{Email: "admin@x.com"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	lookup := &stubRoleLookup{users: map[string]*models.User{
		"student@x.com": {Email: "student@x.com", Role: models.RoleStudent},
	}}
	r := roleEngine(lookup, models.RoleAdmin, &models.JWTClaims{Email: "student@x.com"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "forbidden access", body["message"])
}

func TestRequireRoleNormalizesEmailCase(t *testing.T) {
	lookup := &stubRoleLookup{users: map[string]*models.User{
		"admin@x.com": {Email: "admin@x.com", Role: models.RoleAdmin},
	}}
	r := roleEngine(lookup, models.RoleAdmin, &models.JWTClaims{Email: "Admin@X.com"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejectsUnknownUser(t *testing.T) {
	lookup := &stubRoleLookup{users: map[string]*models.User{}}
	r := roleEngine(lookup, models.RoleAdmin, &models.JWTClaims{Email: "ghost@x.com"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleRejectsMissingClaims(t *testing.T) {
	lookup := &stubRoleLookup{users: map[string]*models.User{}}
	r := roleEngine(lookup, models.RoleAdmin, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
