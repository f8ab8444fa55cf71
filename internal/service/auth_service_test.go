package service

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coursecart/coursecart-api/internal/models"
	appErrors "github.com/coursecart/coursecart-api/pkg/errors"
)

func newAuthService(secret string, expiry time.Duration) *AuthService {
	return NewAuthService(validator.New(), zap.NewNop(), AuthConfig{
		Secret:     secret,
		Expiration: expiry,
		Issuer:     "coursecart-api",
	})
}

func TestSignTokenRoundTrip(t *testing.T) {
	svc := newAuthService("secret", time.Hour)

	resp, err := svc.SignToken(models.TokenRequest{Email: "a@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestSignTokenRejectsInvalidEmail(t *testing.T) {
	svc := newAuthService("secret", time.Hour)

	_, err := svc.SignToken(models.TokenRequest{Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := newAuthService("secret-a", time.Hour)
	verifier := newAuthService("secret-b", time.Hour)

	resp, err := issuer.SignToken(models.TokenRequest{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(resp.Token)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnauthorized.Status, appErr.Status)
	assert.Equal(t, "unauthorized access", appErr.Message)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newAuthService("secret", time.Hour)
	expired := newAuthService("secret", -time.Minute)

	resp, err := expired.SignToken(models.TokenRequest{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.Token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Status, appErrors.FromError(err).Status)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newAuthService("secret", time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Status, appErrors.FromError(err).Status)
}
