package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chamba/models"
	"chamba/services/income"
)

// GetSkillCatalogHandler returns the fixed catalog of offerable services.
func GetSkillCatalogHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"skills": models.SkillCatalog})
	}
}

// GetScheduleOptionsHandler returns the weekday names and the hour slots a
// student can pick from when building their availability.
func GetScheduleOptionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"weekdays": models.Weekdays,
			"slots":    models.PlatformSlots,
		})
	}
}

// GetPricedCitiesHandler returns the cities the price table knows about plus
// the reference city used as fallback.
func GetPricedCitiesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"cities":        income.PricedCities,
			"referenceCity": income.ReferenceCity,
		})
	}
}
