package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chamba/models"
	"chamba/services/wizard"
	"chamba/utils"
)

// callerIdentity rebuilds the signed-in identity from the auth middleware
// context. Email is optional on wizard endpoints; the draft keeps its own.
func callerIdentity(c *gin.Context) models.AuthIdentity {
	return models.AuthIdentity{
		UID:   c.GetString("studentID"),
		Email: c.GetString("studentEmail"),
	}
}

// respondWizardError maps service errors to HTTP responses. Validation
// failures and guard errors are part of the normal flow and never log above
// warn.
func respondWizardError(c *gin.Context, err error) {
	logger := utils.GetLogger()

	var validation *wizard.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"field":   validation.Field,
			"message": validation.Message,
		})
		return
	}

	var exitGuard *wizard.ExitGuardError
	if errors.As(err, &exitGuard) {
		c.JSON(http.StatusConflict, gin.H{
			"error":           exitGuard.Error(),
			"confirmRequired": true,
		})
		return
	}

	switch {
	case errors.Is(err, wizard.ErrDraftNotFound):
		utils.JSONError(c, http.StatusNotFound, "No registration in progress", "")
	case errors.Is(err, wizard.ErrAlreadySubmitted):
		utils.JSONError(c, http.StatusConflict, "Registration already submitted", "")
	case errors.Is(err, wizard.ErrSubmissionInFlight):
		utils.JSONError(c, http.StatusConflict, "Submission already in progress", "")
	default:
		logger.Error("Wizard operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

// StartWizardHandler loads the caller's saved draft or creates a fresh one.
func StartWizardHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, err := svc.Start(callerIdentity(c))
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// GetWizardHandler returns the current draft.
func GetWizardHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, err := svc.Get(c.GetString("studentID"))
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// UpdatePersonalHandler stores the personal-info step fields.
func UpdatePersonalHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info models.PersonalInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid personal info payload", err.Error())
			return
		}
		draft, err := svc.UpdatePersonal(c.GetString("studentID"), info)
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// SetSkillsHandler replaces the skill selection.
func SetSkillsHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			SkillIDs    []string `json:"skillIds"`
			OtherSkills string   `json:"otherSkills"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid skills payload", err.Error())
			return
		}
		draft, err := svc.SetSkills(c.GetString("studentID"), req.SkillIDs, req.OtherSkills)
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// UpdateAcademicHandler stores the academic step fields.
func UpdateAcademicHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info models.AcademicInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid academic info payload", err.Error())
			return
		}
		draft, err := svc.UpdateAcademic(c.GetString("studentID"), info)
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// ToggleDayHandler switches a weekday's availability on or off.
func ToggleDayHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, err := svc.ToggleDay(c.GetString("studentID"), c.Param("day"))
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// SetDaySlotsHandler replaces the hour slots of one weekday.
func SetDaySlotsHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Slots []string `json:"slots"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid slots payload", err.Error())
			return
		}
		draft, err := svc.SetDaySlots(c.GetString("studentID"), c.Param("day"), req.Slots)
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// ClearDayHandler removes a weekday from the availability map.
func ClearDayHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, err := svc.ClearDay(c.GetString("studentID"), c.Param("day"))
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// DuplicateDayHandler copies one weekday's slots onto another.
func DuplicateDayHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			TargetDay string `json:"targetDay" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "targetDay is required", err.Error())
			return
		}
		draft, err := svc.DuplicateDay(c.GetString("studentID"), c.Param("day"), req.TargetDay)
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// NextStepHandler advances past the current step's gate. On the final step it
// submits the registration.
func NextStepHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, err := svc.Next(c.GetString("studentID"))
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// PreviousStepHandler steps back without validation.
func PreviousStepHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, err := svc.Previous(c.GetString("studentID"))
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// JumpToStepHandler revisits an earlier, already-passed step.
func JumpToStepHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Step index must be a number", "")
			return
		}
		draft, err := svc.JumpTo(c.GetString("studentID"), index)
		if err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

// ExitWizardHandler enforces the leave guard. Without confirm=true it answers
// with the confirmation prompt while a registration is unfinished; with it,
// the student is signed out and the draft kept for later resume.
func ExitWizardHandler(svc wizard.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		confirm := c.Query("confirm") == "true"
		if err := svc.Exit(c.GetString("studentID"), confirm); err != nil {
			respondWizardError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "exited"})
	}
}
