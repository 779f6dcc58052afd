package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chamba/services/auth"
	"chamba/utils"
)

// GoogleSignInHandler exchanges a Google ID token for a session token. The
// response carries the identity's exists flag so the client knows whether to
// open the registration wizard or go straight to the profile.
func GoogleSignInHandler(authSvc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		var req struct {
			IDToken string `json:"idToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "idToken is required", err.Error())
			return
		}

		identity, token, err := authSvc.SignIn(c.Request.Context(), req.IDToken)
		if err != nil {
			logger.Warn("Google sign-in failed", zap.Error(err))
			utils.JSONError(c, http.StatusUnauthorized, "Sign-in failed", err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"identity": identity,
			"token":    token,
		})
	}
}

// SignOutHandler revokes the caller's session.
func SignOutHandler(authSvc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		studentID := c.GetString("studentID")
		if err := authSvc.SignOut(studentID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Sign-out failed", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "signed out"})
	}
}
