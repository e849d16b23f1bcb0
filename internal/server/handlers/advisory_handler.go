package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/domain/models"
	"github.com/greencoders/soilcard/internal/service/advisory"
	"github.com/greencoders/soilcard/internal/service/recommend"
	"github.com/greencoders/soilcard/internal/service/weather"
)

// AdvisoryHandler serves schedule assembly, raw crop ranking and the chat
// assistant proxy.
type AdvisoryHandler struct {
	advisor    advisory.Assembler
	weatherSvc *weather.Service
	logger     *zap.Logger
}

// NewAdvisoryHandler constructs the HTTP handler adapter.
func NewAdvisoryHandler(advisor advisory.Assembler, weatherSvc *weather.Service, logger *zap.Logger) *AdvisoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisoryHandler{advisor: advisor, weatherSvc: weatherSvc, logger: logger}
}

type scheduleRequest struct {
	PH               float64 `json:"ph"`
	OrganicCarbonPct float64 `json:"organicCarbon"`
	NPK              string  `json:"npk" binding:"required"`
	Location         string  `json:"location" binding:"required"`
}

// Schedule assembles a farming schedule for the submitted soil readings.
// The response is always 200 with a non-empty text; external failures are
// absorbed by the advisory service.
func (h *AdvisoryHandler) Schedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid schedule payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	soil := models.SoilReading{PH: req.PH, OrganicCarbonPct: req.OrganicCarbonPct, NPK: req.NPK}
	if err := soil.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid soil readings"})
		return
	}

	current := h.weatherSvc.Snapshot(c.Request.Context(), req.Location)
	schedule := h.advisor.AssembleSchedule(c.Request.Context(), soil, req.Location, current)

	c.JSON(http.StatusOK, gin.H{"schedule": schedule, "weather": current})
}

// Recommend returns the raw scored candidate list for the submitted readings.
func (h *AdvisoryHandler) Recommend(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid recommend payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	soil := models.SoilReading{PH: req.PH, OrganicCarbonPct: req.OrganicCarbonPct, NPK: req.NPK}
	if err := soil.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid soil readings"})
		return
	}

	current := h.weatherSvc.Snapshot(c.Request.Context(), req.Location)
	candidates := recommend.Score(soil, current, 3)

	c.JSON(http.StatusOK, gin.H{
		"candidates": candidates,
		"formatted":  recommend.Format(candidates, soil),
	})
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat proxies a question to the assistant; failures are masked by the fixed
// fallback reply so this endpoint also always answers 200.
func (h *AdvisoryHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply := h.advisor.Chat(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
