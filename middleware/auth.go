package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chamba/services/auth"
	"chamba/utils"
)

// StudentAuthMiddleware validates the Bearer token issued at sign-in and
// checks it against the active session stored in the auth cache. On success
// the student ID is placed in the request context under "studentID".
func StudentAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or malformed Authorization header", "")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		studentID, email, err := utils.ExtractSessionClaims(tokenString)
		if err != nil {
			logger.Warn("Token validation failed", zap.Error(err))
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token", "")
			c.Abort()
			return
		}

		sessionKey := auth.AuthSessionPrefix + studentID
		storedHash, err := utils.GetAuthCacheClient().Get(context.Background(), sessionKey).Result()
		if err != nil || storedHash != utils.HashToken(tokenString) {
			logger.Warn("Session lookup failed", zap.String("studentID", studentID))
			utils.JSONError(c, http.StatusUnauthorized, "Session expired, sign in again", "")
			c.Abort()
			return
		}

		c.Set("studentID", studentID)
		c.Set("studentEmail", email)
		c.Next()
	}
}
