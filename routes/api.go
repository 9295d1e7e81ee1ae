package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/servis-mreza/directory/app/controllers"
)

// SetupAPIRoutes registers all /v1 API routes.
func SetupAPIRoutes(
	router *gin.Engine,
	searchController *controllers.SearchController,
	catalogController *controllers.CatalogController,
	partnerController *controllers.PartnerController,
	favoritesController *controllers.FavoritesController,
	adminController *controllers.AdminController,
) {
	v1 := router.Group("/v1")
	{
		v1.POST("/search", searchController.Search)

		firms := v1.Group("/firms")
		{
			firms.GET("/:firmID", searchController.GetFirm)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", catalogController.ListCategories)
			categories.GET("/:key", catalogController.GetCategory)
		}

		partners := v1.Group("/partners")
		{
			partners.POST("/apply", partnerController.Apply)
			partners.GET("/applications/:applicationID", partnerController.GetApplication)
		}

		users := v1.Group("/users/:userID")
		{
			users.GET("/favorites", favoritesController.ListFavorites)
			users.POST("/favorites", favoritesController.ToggleFavorite)
			users.GET("/follows", favoritesController.ListFollows)
			users.POST("/follows", favoritesController.ToggleFollow)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/stats", adminController.GetStats)
			admin.POST("/cache/invalidate", adminController.InvalidateCache)
			admin.POST("/indexes/build", adminController.Reindex)
		}

		v1.GET("/health", searchController.HealthCheck)
	}
}

// SetupHealthRoutes registers root-level health probes.
func SetupHealthRoutes(router *gin.Engine, searchController *controllers.SearchController) {
	router.GET("/health", searchController.HealthCheck)
	router.GET("/ready", searchController.HealthCheck)
	router.GET("/live", searchController.HealthCheck)
}

// SetupAllRoutes wires middleware and every route group.
func SetupAllRoutes(
	router *gin.Engine,
	searchController *controllers.SearchController,
	catalogController *controllers.CatalogController,
	partnerController *controllers.PartnerController,
	favoritesController *controllers.FavoritesController,
	adminController *controllers.AdminController,
) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, searchController)
	SetupAPIRoutes(router, searchController, catalogController, partnerController, favoritesController, adminController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
}
