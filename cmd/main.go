package main

import (
	"fmt"
	"os"
	"time"

	"github.com/docforge/docforge-backend/internal/clients/gemini"
	"github.com/docforge/docforge-backend/internal/db"
	"github.com/docforge/docforge-backend/internal/handlers"
	"github.com/docforge/docforge-backend/internal/logger"
	"github.com/docforge/docforge-backend/internal/middleware"
	"github.com/docforge/docforge-backend/internal/repos"
	"github.com/docforge/docforge-backend/internal/server"
	"github.com/docforge/docforge-backend/internal/services"
	"github.com/docforge/docforge-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	port := utils.GetEnv("PORT", "8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	geminiAPIKey := utils.GetEnv("GEMINI_API_KEY", "", log)
	geminiBaseURL := utils.GetEnv("GEMINI_BASE_URL", "", log)
	geminiModel := utils.GetEnv("GEMINI_MODEL", "", log)
	geminiTimeout := utils.GetEnvAsInt("GEMINI_TIMEOUT_SECONDS", 60, log)
	geminiMaxRetries := utils.GetEnvAsInt("GEMINI_MAX_RETRIES", 3, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	projectRepo := repos.NewProjectRepo(thePG, log)
	sectionRepo := repos.NewSectionRepo(thePG, log)
	refinementRecordRepo := repos.NewRefinementRecordRepo(thePG, log)
	aiCallLogRepo := repos.NewAICallLogRepo(thePG, log)

	// Gemini client. A missing key is not fatal: the engines degrade to
	// their fixed fallback values and every project stays usable.
	var aiClient services.AIClient
	geminiClient, err := gemini.NewClient(log, geminiAPIKey, geminiBaseURL, geminiModel, geminiTimeout, geminiMaxRetries)
	if err != nil {
		log.Warn("Gemini client unavailable, generation will use fallbacks", "error", err)
	} else {
		aiClient = geminiClient
	}

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	projectService := services.NewProjectService(thePG, log, projectRepo, sectionRepo)
	outlineService := services.NewOutlineService(log, aiClient, aiCallLogRepo)
	generationService := services.NewGenerationService(log, aiClient, projectRepo, sectionRepo, aiCallLogRepo)
	refinementService := services.NewRefinementService(thePG, log, aiClient, projectRepo, sectionRepo, refinementRecordRepo, aiCallLogRepo)
	exportService := services.NewExportService(log, projectRepo, sectionRepo)

	// Handlers
	log.Info("Setting up Handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService, outlineService, generationService)
	sectionHandler := handlers.NewSectionHandler(projectService, refinementService)
	aiHandler := handlers.NewAIHandler(outlineService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		ProjectHandler: projectHandler,
		SectionHandler: sectionHandler,
		AIHandler:      aiHandler,
		ExportHandler:  exportHandler,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
