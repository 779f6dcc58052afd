package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chamba/config"
	"chamba/database"
	draftRepoPkg "chamba/database/repository/draft"
	studentRepoPkg "chamba/database/repository/student"
	"chamba/handlers"
	"chamba/routes"
	"chamba/services/auth"
	"chamba/services/income"
	"chamba/services/wizard"
	"chamba/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetDraftClient(), utils.GetAuthCacheClient(), utils.GetCacheClient()},
		database.MongoClient,
	)

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	priceTable, err := income.LoadPriceTable()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load price table: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	studentRepo := studentRepoPkg.NewMongoStudentRepo()
	draftRepo := draftRepoPkg.NewRedisDraftRepo(utils.GetDraftClient())

	// services.
	authService := &auth.DefaultAuthService{
		Verifier: &auth.FirebaseVerifier{Client: utils.AuthClient},
		Students: studentRepo,
	}
	wizardService := &wizard.DefaultWizardService{
		Drafts:   draftRepo,
		Students: studentRepo,
		Sessions: authService,
	}
	estimateService := income.NewEstimateService(utils.GetCacheClient(), priceTable)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		authService,
		wizardService,
		estimateService,
		cloudinaryStorageService,
		studentRepo,
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
