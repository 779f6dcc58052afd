package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	studentRepo "chamba/database/repository/student"
	"chamba/utils"
)

// GetOwnProfileHandler returns the signed-in student's registered profile.
func GetOwnProfileHandler(repo studentRepo.StudentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		studentID := c.GetString("studentID")
		student, err := repo.GetByGoogleUID(studentID)
		if err != nil {
			logger.Error("Profile lookup failed", zap.String("studentID", studentID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to load profile", err.Error())
			return
		}
		if student == nil {
			utils.JSONError(c, http.StatusNotFound, "no registered profile; complete the wizard first", "")
			return
		}

		c.JSON(http.StatusOK, student)
	}
}

// GetStudentByEmailHandler looks a registered student up by email.
func GetStudentByEmailHandler(repo studentRepo.StudentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		student, err := repo.GetByEmail(email)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to look up student", err.Error())
			return
		}
		if student == nil {
			utils.JSONError(c, http.StatusNotFound, "student not found", "")
			return
		}
		c.JSON(http.StatusOK, student)
	}
}
