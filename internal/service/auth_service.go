package service

import (
	"crypto/subtle"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/pkg/config"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// AuthService validates the single operator credential and issues the
// signed capability token carried by the admin session.
type AuthService struct {
	admin     config.AdminConfig
	secret    []byte
	expiry    time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(admin config.AdminConfig, session config.SessionConfig, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{
		admin:     admin,
		secret:    []byte(session.Secret),
		expiry:    session.TokenExpiry,
		validator: validate,
		logger:    logger,
	}
}

// Login checks the submitted credentials and returns a session token.
// Failures are undifferentiated: the caller learns only that the pair
// was wrong, never which half.
func (s *AuthService) Login(req models.LoginRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))
	if !usernameMatch || passwordErr != nil {
		s.logger.Info("rejected admin login", zap.String("username", req.Username))
		return "", appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	token, err := s.issueToken(req.Username)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session token")
	}
	return token, nil
}

// ValidateToken parses the session token and enforces the admin
// capability claim.
func (s *AuthService) ValidateToken(tokenString string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.ErrUnauthorized
	}
	if claims.Role != models.AdminRole {
		return nil, appErrors.ErrUnauthorized
	}
	return claims, nil
}

func (s *AuthService) issueToken(username string) (string, error) {
	now := time.Now().UTC()
	claims := models.SessionClaims{
		Username: username,
		Role:     models.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
