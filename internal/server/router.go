package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/docforge/docforge-backend/internal/handlers"
	"github.com/docforge/docforge-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	ProjectHandler *handlers.ProjectHandler
	SectionHandler *handlers.SectionHandler
	AIHandler      *handlers.AIHandler
	ExportHandler  *handlers.ExportHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/api/auth/register", cfg.AuthHandler.Register)
	router.POST("/api/auth/login", cfg.AuthHandler.Login)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/auth/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/auth/logout", cfg.AuthHandler.Logout)
	// Projects
	protected.GET("/projects", cfg.ProjectHandler.List)
	protected.POST("/projects", cfg.ProjectHandler.Create)
	protected.DELETE("/projects/:id", cfg.ProjectHandler.Delete)
	protected.GET("/projects/:id/sections", cfg.ProjectHandler.Sections)
	protected.POST("/projects/:id/generate", cfg.ProjectHandler.Generate)
	protected.GET("/projects/:id/export", cfg.ExportHandler.Export)
	// Sections
	protected.POST("/sections/:id/refine", cfg.SectionHandler.Refine)
	protected.GET("/sections/:id/history", cfg.SectionHandler.History)
	protected.POST("/sections/:id/feedback", cfg.SectionHandler.Feedback)
	protected.POST("/sections/:id/comment", cfg.SectionHandler.Comment)
	// AI
	protected.POST("/ai/suggest-outline", cfg.AIHandler.SuggestOutline)

	return router
}
