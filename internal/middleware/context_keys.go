package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated operator's id.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok
	}
	if c.Request != nil {
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
			return userID, true
		}
	}
	return "", false
}
