package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes registers the informational web routes.
func SetupWebRoutes(router *gin.Engine) {
	web := router.Group("/")
	{
		web.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "Servis Mreža Directory Service",
				"version": "1.0.0",
				"docs":    "/docs",
			})
		})

		web.GET("/docs", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"api": "Servis Mreža API v1",
				"endpoints": map[string]string{
					"search":      "POST /v1/search",
					"firm":        "GET /v1/firms/:firmID",
					"categories":  "GET /v1/categories",
					"apply":       "POST /v1/partners/apply",
					"favorites":   "GET /v1/users/:userID/favorites",
					"follows":     "GET /v1/users/:userID/follows",
					"health":      "GET /v1/health",
				},
			})
		})

		web.GET("/status", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "running",
				"service": "Servis Mreža Directory",
			})
		})
	}
}
