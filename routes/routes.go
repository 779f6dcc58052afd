package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"chamba/handlers"
	"chamba/middleware"
	"chamba/utils"
)

// RegisterAuthRoutes registers sign-in and sign-out endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/google", hb.GoogleSignInHandler)

		// Protected routes (require authentication)
		api.Use(middleware.StudentAuthMiddleware())
		api.POST("/signout", hb.SignOutHandler)
	}
}

// RegisterWizardRoutes registers the registration wizard endpoints. Every
// endpoint requires a signed-in student.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.Use(middleware.StudentAuthMiddleware())
		api.POST("/start", hb.StartWizardHandler)
		api.GET("/", hb.GetWizardHandler)
		api.PUT("/personal", hb.UpdatePersonalHandler)
		api.PUT("/skills", hb.SetSkillsHandler)
		api.PUT("/academic", hb.UpdateAcademicHandler)

		// Availability mutations for the skills step.
		api.POST("/schedule/:day/toggle", hb.ToggleDayHandler)
		api.PUT("/schedule/:day/slots", hb.SetDaySlotsHandler)
		api.DELETE("/schedule/:day", hb.ClearDayHandler)
		api.POST("/schedule/:day/duplicate", hb.DuplicateDayHandler)

		// Step navigation.
		api.POST("/next", hb.NextStepHandler)
		api.POST("/previous", hb.PreviousStepHandler)
		api.POST("/jump/:index", hb.JumpToStepHandler)
		api.POST("/exit", hb.ExitWizardHandler)

		// Document uploads for the academic step.
		api.POST("/documents/:kind", hb.UploadDocumentHandler)
	}
}

// RegisterEstimateRoutes registers the anonymous income calculator endpoints.
func RegisterEstimateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/estimate")
	{
		api.POST("/session", hb.InitiateEstimateHandler)
		api.GET("/session/:sessionID", hb.GetEstimateHandler)
		api.PUT("/session/:sessionID/skills", hb.SetEstimateSkillsHandler)
		api.PUT("/session/:sessionID/city", hb.SetEstimateCityHandler)
		api.POST("/session/:sessionID/next", hb.NextEstimateStepHandler)
		api.POST("/session/:sessionID/previous", hb.PreviousEstimateStepHandler)
		api.POST("/session/:sessionID/jump/:index", hb.JumpEstimateStepHandler)
	}
}

// RegisterCatalogRoutes registers public read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/skills", hb.GetSkillCatalogHandler)
		api.GET("/schedule-options", hb.GetScheduleOptionsHandler)
		api.GET("/cities", hb.GetPricedCitiesHandler)
	}
}

// RegisterStudentRoutes registers profile endpoints.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/students")
	{
		api.Use(middleware.StudentAuthMiddleware())
		api.GET("/me", hb.GetOwnProfileHandler)
		api.GET("/email/:email", hb.GetStudentByEmailHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hola, soy Chamba",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterEstimateRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterStudentRoutes(r, hb)
	RegisterHealthRoute(r)
}
