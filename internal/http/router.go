package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mrlokans/quotebook/internal/metrics"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	RegisterValidators()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	if cfg.MetricsEnabled {
		router.Use(metrics.GinMiddleware())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	quotesController := NewQuotesController(cfg.Store)
	favouritesController := NewFavouritesController(cfg.Store)
	tasksController := NewTasksController(cfg.TaskQueue, cfg.ExportStatus)

	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")
	{
		api.GET("/options", quotesController.Options)

		api.GET("/quotes", quotesController.List)
		api.POST("/quotes", quotesController.Create)
		api.GET("/quotes/stats", quotesController.Stats)
		api.GET("/quotes/favourites", favouritesController.ListFavourites)
		api.GET("/quotes/:id", quotesController.Get)
		api.PATCH("/quotes/:id", quotesController.Update)
		api.DELETE("/quotes/:id", quotesController.Delete)
		api.GET("/quotes/:id/share", quotesController.Share)
		api.POST("/quotes/:id/favourite", favouritesController.AddFavourite)
		api.DELETE("/quotes/:id/favourite", favouritesController.RemoveFavourite)

		api.GET("/export/status", tasksController.GetExportStatus)
		if cfg.TaskQueue != nil {
			api.POST("/tasks/export/run", tasksController.RunExport)
			api.GET("/tasks/:id", tasksController.GetTaskStatus)
		}
	}

	return router
}
