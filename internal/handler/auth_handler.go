package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/mochwana/aesi-web/internal/middleware"
	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/internal/service"
)

// AuthHandler serves the admin login and logout flow.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates the handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "admin_login.html", nil)
}

// Login validates the submitted credentials and opens the admin session.
// Failure reports one generic message regardless of which field was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		flashError(c, "Invalid username or password.")
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	token, err := h.service.Login(req)
	if err != nil {
		flashError(c, "Invalid username or password.")
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionTokenKey, token)
	session.AddFlash("Successfully logged in!", "success")
	_ = session.Save()
	c.Redirect(http.StatusFound, "/admin")
}

// Logout clears the session authentication markers.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionTokenKey)
	session.AddFlash("Successfully logged out.", "success")
	_ = session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}
