package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/ecoevent/internal/container"
	"github.com/joshua-takyi/ecoevent/internal/handlers"
	"github.com/joshua-takyi/ecoevent/internal/metrics"
	"github.com/joshua-takyi/ecoevent/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	cfg := container.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	r.GET("/", handlers.Root())
	r.GET("/health", handlers.Health(container.Health))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	auth := middleware.BearerAuth(container.Verifier, container.Logger)

	api := r.Group("/")
	api.Use(middleware.Timeout(cfg.RequestTimeout))
	{
		api.GET("/events", handlers.ListUpcomingEvents(container.EventService))
		api.GET("/search", handlers.SearchEvents(container.EventService))
		api.POST("/events", auth, handlers.CreateEvent(container.EventService))
		api.GET("/events/:id", handlers.GetEvent(container.EventService))
		api.GET("/my-events", handlers.ListMyEvents(container.EventService))
		api.PUT("/events/:id", handlers.UpdateEvent(container.EventService))

		if cfg.StrictDeleteOwnership {
			api.DELETE("/events/:id", auth, handlers.DeleteEvent(container.EventService, true))
		} else {
			api.DELETE("/events/:id", handlers.DeleteEvent(container.EventService, false))
		}

		api.GET("/joined-events", handlers.JoinedEvents(container.JoinService))
		api.POST("/joined-events", handlers.JoinEvent(container.JoinService))
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
