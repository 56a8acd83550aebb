package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mochwana/aesi-web/internal/service"
	"github.com/mochwana/aesi-web/pkg/config"
)

func newLoginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	authSvc := service.NewAuthService(
		config.AdminConfig{Username: "admin@example.org", PasswordHash: string(hash)},
		config.SessionConfig{Secret: "test-secret", TokenExpiry: time.Hour},
		nil, nil,
	)
	h := NewAuthHandler(authSvc)

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	r.POST("/admin/login", h.Login)
	r.GET("/admin/logout", h.Logout)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessRedirectsToDashboard(t *testing.T) {
	r := newLoginRouter(t)

	w := postForm(r, "/admin/login", url.Values{
		"username": {"admin@example.org"},
		"password": {"correct horse"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestLoginFailureRedirectsBack(t *testing.T) {
	r := newLoginRouter(t)

	w := postForm(r, "/admin/login", url.Values{
		"username": {"admin@example.org"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestLoginMissingFieldsRedirectsBack(t *testing.T) {
	r := newLoginRouter(t)

	w := postForm(r, "/admin/login", url.Values{})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestLogoutRedirectsToLogin(t *testing.T) {
	r := newLoginRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}
