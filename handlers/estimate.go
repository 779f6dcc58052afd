package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chamba/services/flow"
	"chamba/services/income"
	"chamba/utils"
)

func respondEstimateError(c *gin.Context, err error) {
	logger := utils.GetLogger()

	switch {
	case errors.Is(err, income.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Estimate session not found or expired", "")
	case errors.Is(err, flow.ErrForwardJump):
		utils.JSONError(c, http.StatusBadRequest, "Cannot jump forward; advance step by step", "")
	default:
		var validation *income.StepError
		if errors.As(err, &validation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validation.Error()})
			return
		}
		logger.Error("Estimate operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

// InitiateEstimateHandler opens a fresh anonymous estimate session.
func InitiateEstimateHandler(svc income.EstimateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.Initiate()
		if err != nil {
			respondEstimateError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// GetEstimateHandler returns the current session state.
func GetEstimateHandler(svc income.EstimateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.Get(c.Param("sessionID"))
		if err != nil {
			respondEstimateError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// SetEstimateSkillsHandler replaces the session's skill selection.
func SetEstimateSkillsHandler(svc income.EstimateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			SkillIDs []string `json:"skillIds"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid skills payload", err.Error())
			return
		}
		session, err := svc.SetSkills(c.Param("sessionID"), req.SkillIDs)
		if err != nil {
			respondEstimateError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// SetEstimateCityHandler records the session's city.
func SetEstimateCityHandler(svc income.EstimateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			City string `json:"city" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "city is required", err.Error())
			return
		}
		session, err := svc.SetCity(c.Param("sessionID"), req.City)
		if err != nil {
			respondEstimateError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// NextEstimateStepHandler advances the session; entering the results step
// computes the income breakdown.
func NextEstimateStepHandler(svc income.EstimateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.Next(c.Param("sessionID"))
		if err != nil {
			respondEstimateError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// PreviousEstimateStepHandler steps the session back.
func PreviousEstimateStepHandler(svc income.EstimateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.Previous(c.Param("sessionID"))
		if err != nil {
			respondEstimateError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// JumpEstimateStepHandler revisits an earlier session step.
func JumpEstimateStepHandler(svc income.EstimateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Step index must be a number", "")
			return
		}
		session, err := svc.JumpTo(c.Param("sessionID"), index)
		if err != nil {
			respondEstimateError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}
