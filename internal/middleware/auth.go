package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/mochwana/aesi-web/internal/service"
)

// ContextUserKey is the gin context key storing the session claims.
const ContextUserKey = "currentUser"

// SessionTokenKey is the session key holding the signed capability token.
const SessionTokenKey = "session_token"

// AdminRequired protects admin routes. Requests without a valid session
// token are redirected to the login form with a notice; admin data is
// never exposed to them.
func AdminRequired(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		raw, _ := session.Get(SessionTokenKey).(string)
		if raw == "" {
			redirectToLogin(c, session)
			return
		}

		claims, err := authService.ValidateToken(raw)
		if err != nil {
			session.Delete(SessionTokenKey)
			redirectToLogin(c, session)
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context, session sessions.Session) {
	session.AddFlash("Please log in to access the admin panel.", "error")
	_ = session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
	c.Abort()
}
