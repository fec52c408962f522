package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicebrief/internal/api/errors"
	"voicebrief/internal/api/flash"
	"voicebrief/internal/app/session"
)

// ContextKeyUsername is the gin context key carrying the logged-in
// username once a session has been verified.
const ContextKeyUsername = "username"

// RequireSession gates page routes: anonymous requests are redirected
// to the login form with a flash message.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := sessions.FromRequest(c.Request)
		if err != nil {
			flash.Set(c, "You are not logged in")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextKeyUsername, username)
		c.Next()
	}
}

// RequireSessionJSON gates API routes: anonymous requests get a 401
// APIError instead of a redirect.
func RequireSessionJSON(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := sessions.FromRequest(c.Request)
		if err != nil {
			HandleError(c, errors.NewUnauthorizedError("You are not logged in"))
			return
		}

		c.Set(ContextKeyUsername, username)
		c.Next()
	}
}
