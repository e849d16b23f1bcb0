package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/domain/models"
	"github.com/greencoders/soilcard/internal/service/export"
	"github.com/greencoders/soilcard/internal/service/market"
	"github.com/greencoders/soilcard/internal/service/twin"
	"github.com/greencoders/soilcard/internal/service/weather"
)

// WeatherHandler serves the current-weather widget.
type WeatherHandler struct {
	svc         *weather.Service
	defaultCity string
}

// NewWeatherHandler constructs the HTTP handler adapter.
func NewWeatherHandler(svc *weather.Service, defaultCity string) *WeatherHandler {
	return &WeatherHandler{svc: svc, defaultCity: defaultCity}
}

// Current returns the weather snapshot for a city; the lookup never fails
// toward the client because failures collapse into the mock snapshot.
func (h *WeatherHandler) Current(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		city = h.defaultCity
	}
	c.JSON(http.StatusOK, h.svc.Snapshot(c.Request.Context(), city))
}

// MarketHandler serves the mocked mandi price feed.
type MarketHandler struct {
	svc *market.Service
}

// NewMarketHandler constructs the HTTP handler adapter.
func NewMarketHandler(svc *market.Service) *MarketHandler {
	return &MarketHandler{svc: svc}
}

// Prices returns the fixed quote list.
func (h *MarketHandler) Prices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"prices": h.svc.Prices()})
}

// News returns the static headlines.
func (h *MarketHandler) News(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"news": h.svc.News()})
}

// TwinHandler serves the digital-twin yield simulation.
type TwinHandler struct{}

// NewTwinHandler constructs the HTTP handler adapter.
func NewTwinHandler() *TwinHandler {
	return &TwinHandler{}
}

type simulateRequest struct {
	IrrigationPct int `json:"irrigation"`
	FertilizerPct int `json:"fertilizer"`
}

// Simulate runs the deterministic yield projection.
func (h *TwinHandler) Simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, twin.Simulate(req.IrrigationPct, req.FertilizerPct))
}

// ExportHandler triggers the admin spreadsheet export.
type ExportHandler struct {
	svc    *export.Service
	logger *zap.Logger
}

// NewExportHandler constructs the HTTP handler adapter.
func NewExportHandler(svc *export.Service, logger *zap.Logger) *ExportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandler{svc: svc, logger: logger}
}

// Export writes all cards to the configured spreadsheet.
func (h *ExportHandler) Export(c *gin.Context) {
	session := sessionFrom(c)
	count, err := h.svc.ExportCards(c.Request.Context(), session)
	if err != nil {
		if errors.Is(err, models.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		h.logger.Error("card export failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "export failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exported": count})
}
