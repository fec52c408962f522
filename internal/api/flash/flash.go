// Package flash implements one-shot messages carried in a short-lived
// cookie across a redirect.
package flash

import (
	"github.com/gin-gonic/gin"
)

const cookieName = "voicebrief_flash"

// Set stores a message shown on the next page render. gin escapes the
// cookie value on the wire; Cookie() reverses it.
func Set(c *gin.Context, message string) {
	c.SetCookie(cookieName, message, 60, "/", "", false, true)
}

// Pop returns the pending message, if any, and clears it.
func Pop(c *gin.Context) string {
	message, err := c.Cookie(cookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
	return message
}
