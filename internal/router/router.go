package router

import (
	"github.com/gin-gonic/gin"
	"github.com/wineworld/wineworld-backend/config"
	"github.com/wineworld/wineworld-backend/internal/app/controller"
	"github.com/wineworld/wineworld-backend/internal/middleware"
)

type Router struct {
	wineController     *controller.WineController
	regionController   *controller.RegionController
	vineyardController *controller.VineyardController
	config             *config.Config
}

func NewRouter(
	wineController *controller.WineController,
	regionController *controller.RegionController,
	vineyardController *controller.VineyardController,
	cfg *config.Config,
) *Router {
	return &Router{
		wineController:     wineController,
		regionController:   regionController,
		vineyardController: vineyardController,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))
	router.Use(middleware.CacheMiddleware(r.config.Redis.CacheTTL))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "WineWorld API is running",
		})
	})

	wines := router.Group("/wines")
	{
		wines.GET("", r.wineController.GetAllWines)
		wines.GET("/limits", r.wineController.GetWineLimits)
		wines.GET("/:id", r.wineController.GetWineByID)
	}

	regions := router.Group("/regions")
	{
		regions.GET("", r.regionController.GetAllRegions)
		regions.GET("/limits", r.regionController.GetRegionLimits)
		regions.GET("/:id", r.regionController.GetRegionByID)
	}

	vineyards := router.Group("/vineyards")
	{
		vineyards.GET("", r.vineyardController.GetAllVineyards)
		vineyards.GET("/limits", r.vineyardController.GetVineyardLimits)
		vineyards.GET("/:id", r.vineyardController.GetVineyardByID)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
