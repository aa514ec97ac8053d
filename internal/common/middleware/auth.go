package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/architect/learnpath/internal/common/errors"
)

// userIDFrom extracts the numeric user id from the request. The frontend
// sends it in the X-User-ID header; a session cookie works as a fallback.
func userIDFrom(c *gin.Context) (string, bool) {
	if header := c.GetHeader("X-User-ID"); header != "" {
		if _, err := strconv.ParseUint(header, 10, 64); err == nil {
			return header, true
		}
	}

	if session, err := c.Cookie("session_user"); err == nil && session != "" {
		if _, err := strconv.ParseUint(session, 10, 64); err == nil {
			return session, true
		}
	}

	return "", false
}

// AuthRequired middleware rejects requests without an identified user
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			appErr := errors.Unauthorized("missing or invalid authentication")
			c.JSON(appErr.Status, appErr)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalAuth sets the user id if present but never rejects the request
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := userIDFrom(c); ok {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}
