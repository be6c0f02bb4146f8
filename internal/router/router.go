package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/treinahub/treinahub-backend/internal/config"
	"github.com/treinahub/treinahub-backend/internal/handler"
	"github.com/treinahub/treinahub-backend/internal/middleware"
	"github.com/treinahub/treinahub-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Course     *handler.CourseHandler
	Session    *handler.SessionHandler
	Enrollment *handler.EnrollmentHandler
}

// SetupRouter configures the Gin engine with middleware and the route table.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Catalog + Scheduling ──────────────────────────────────────────
	// "agendados" and "instrutor" are static segments and take priority
	// over the :vendor parameter.
	courses := router.Group("/treinamentos")
	{
		courses.GET("", handlers.Course.List)
		courses.POST("", handlers.Course.Create)
		courses.DELETE("", handlers.Course.Delete)

		courses.GET("/agendados", handlers.Session.ListUpcoming)
		courses.POST("/agendados", handlers.Session.Create)
		courses.PUT("/agendados/:id", handlers.Session.Update)

		courses.GET("/instrutor/:nome", handlers.Course.ListByInstructor)
		courses.GET("/:vendor", handlers.Course.ListByVendor)
	}

	// ─── Enrollments ───────────────────────────────────────────────────
	enrollments := router.Group("/alunos")
	{
		enrollments.GET("/", handlers.Enrollment.List)
		enrollments.POST("/", handlers.Enrollment.Create)
		enrollments.PUT("/:id", handlers.Enrollment.Update)
		enrollments.DELETE("/:id", handlers.Enrollment.Delete)
	}

	return router
}
