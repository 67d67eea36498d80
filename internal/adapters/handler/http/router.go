package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/adapters/handler/http/middleware"

	_ "github.com/comitanigiacomo/hydrate-sync-engine/docs"
)

type RouterDependencies struct {
	AuthHandler       *AuthHandler
	HistoryHandler    *HistoryHandler
	GoalHandler       *GoalHandler
	PreferenceHandler *PreferenceHandler
	QuoteHandler      *QuoteHandler
	StatsHandler      *StatsHandler
	RealtimeHandler   *RealtimeHandler

	// nil disables authentication on the data routes
	TokenValidator middleware.TokenValidator

	StoreCheck func(ctx context.Context) error
	Redis      *redis.Client
	RateLimit  int
	RateWindow time.Duration
	StartTime  time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil && deps.RateLimit > 0 {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, deps.RateWindow))
	}

	router.GET("/health", func(c *gin.Context) {
		storeStatus := "connected"
		if deps.StoreCheck != nil {
			if err := deps.StoreCheck(c.Request.Context()); err != nil {
				storeStatus = "unreachable"
			}
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if deps.Redis.Ping(c.Request.Context()).Err() != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode := 200
		if storeStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = 503
		}

		c.JSON(statusCode, gin.H{
			"status": "ok",
			"store":  storeStatus,
			"redis":  redisStatus,
			"uptime": time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	protected := apiV1.Group("")
	if deps.TokenValidator != nil {
		if deps.AuthHandler != nil {
			deps.AuthHandler.RegisterRoutes(apiV1)
		}
		protected.Use(middleware.AuthMiddleware(deps.TokenValidator))
	}

	{
		deps.HistoryHandler.RegisterRoutes(protected)
		deps.GoalHandler.RegisterRoutes(protected)
		deps.PreferenceHandler.RegisterRoutes(protected)
		deps.QuoteHandler.RegisterRoutes(protected)
		deps.StatsHandler.RegisterRoutes(protected)
		deps.RealtimeHandler.RegisterRoutes(protected)
	}

	return router
}
