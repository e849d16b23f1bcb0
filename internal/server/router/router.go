package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/server/handlers"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Cards    *handlers.CardHandler
	Advisory *handlers.AdvisoryHandler
	Weather  *handlers.WeatherHandler
	Market   *handlers.MarketHandler
	Twin     *handlers.TwinHandler
	Export   *handlers.ExportHandler
	Session  gin.HandlerFunc
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	// Public surface: share view, enrichment widgets, health probe.
	r.GET("/view", h.Cards.ViewShared)
	r.GET("/weather", h.Weather.Current)
	r.GET("/market/prices", h.Market.Prices)
	r.GET("/market/news", h.Market.News)
	r.POST("/twin/simulate", h.Twin.Simulate)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Authenticated surface behind the session middleware.
	authed := r.Group("/", h.Session)
	authed.POST("/cards", h.Cards.Create)
	authed.GET("/cards/me", h.Cards.Mine)
	authed.GET("/cards/me/share", h.Cards.Share)
	authed.POST("/advisory/schedule", h.Advisory.Schedule)
	authed.POST("/advisory/recommend", h.Advisory.Recommend)
	authed.POST("/assistant/chat", h.Advisory.Chat)
	authed.GET("/admin/cards", h.Cards.AdminList)
	if h.Export != nil {
		authed.POST("/admin/export", h.Export.Export)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
