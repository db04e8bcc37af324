package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	rg.GET("/welcome", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       "Welcome to the Mutawazi Financial Pricing Model",
			"description": "This tool is designed to support consistent, transparent, and scalable pricing across all project types, whether resource-based, deliverable-based, or framework agreements.",
			"purpose": []string{
				"Price projects based on clear logic and cost structure",
				"Reflect project-specific assumptions (duration, scope, type)",
				"Forecast internal costs and external revenue clearly",
				"Justify pricing to clients with confidence",
				"Export chatbot-ready summaries for automation",
			},
		})
	})
}
