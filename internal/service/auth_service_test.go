package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/pkg/config"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(
		config.AdminConfig{Username: "admin@example.org", PasswordHash: string(hash)},
		config.SessionConfig{Secret: "test-secret", TokenExpiry: time.Hour},
		nil, nil,
	)
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.Login(models.LoginRequest{Username: "admin@example.org", Password: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.org", claims.Username)
	assert.Equal(t, models.AdminRole, claims.Role)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(models.LoginRequest{Username: "admin@example.org", Password: "wrong"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestAuthServiceLoginWrongUsername(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(models.LoginRequest{Username: "intruder@example.org", Password: "correct horse"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestAuthServiceLoginEmptyFields(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(models.LoginRequest{})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestAuthServiceValidateGarbageToken(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestAuthServiceValidateForeignSignature(t *testing.T) {
	svc := newAuthService(t)
	other := NewAuthService(
		config.AdminConfig{Username: "admin@example.org", PasswordHash: "x"},
		config.SessionConfig{Secret: "different-secret", TokenExpiry: time.Hour},
		nil, nil,
	)

	token, err := other.issueToken("admin@example.org")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}
