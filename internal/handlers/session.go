package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "session_user"
	sessionHeader = "X-Session-User"
	sessionKey    = "username"
)

// Session stores the viewer's username in the gin context. Requests
// without a cookie or header are anonymous.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := c.Cookie(sessionCookie)
		if err != nil || username == "" {
			username = c.GetHeader(sessionHeader)
		}
		c.Set(sessionKey, strings.TrimSpace(username))
		c.Next()
	}
}

func sessionUser(c *gin.Context) string {
	return c.GetString(sessionKey)
}
