package api

import (
	"net/http"

	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *gin.Engine,
	authCfg config.AuthConfig,
	trackerService service.TrackerService,
) {
	summaryHandler := NewSummaryHandler(trackerService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	if authCfg.Enabled {
		apiV1.Use(AuthMiddleware(authCfg.Secret))
	}
	{
		apiV1.POST("/summaries", summaryHandler.CreateSummary)
	}
}
