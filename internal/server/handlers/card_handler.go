package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/domain/models"
	"github.com/greencoders/soilcard/internal/service/cards"
)

// CardHandler serves the soil card lifecycle and the public share view.
type CardHandler struct {
	svc    *cards.Service
	logger *zap.Logger
}

// NewCardHandler constructs the HTTP handler adapter.
func NewCardHandler(svc *cards.Service, logger *zap.Logger) *CardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CardHandler{svc: svc, logger: logger}
}

// Create generates a new soil card for the signed-in farmer.
func (h *CardHandler) Create(c *gin.Context) {
	var req cards.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid card payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session := sessionFrom(c)
	card, err := h.svc.Create(c.Request.Context(), session, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid soil readings"})
		case errors.Is(err, models.ErrDuplicateCard):
			c.JSON(http.StatusConflict, gin.H{"error": "you already have a soil health card"})
		case errors.Is(err, models.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "only farmers can create a card"})
		default:
			h.logger.Error("failed creating card", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save card, please retry"})
		}
		return
	}

	c.JSON(http.StatusCreated, card)
}

// Mine returns the signed-in farmer's card.
func (h *CardHandler) Mine(c *gin.Context) {
	session := sessionFrom(c)
	if session.FarmerID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no farmer identity on this account"})
		return
	}

	card, err := h.svc.Get(c.Request.Context(), session.FarmerID)
	if err != nil {
		if errors.Is(err, models.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
			return
		}
		h.logger.Error("failed loading card", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load card"})
		return
	}

	c.JSON(http.StatusOK, card)
}

// Share returns the encoded payload embedded in the farmer's QR code.
func (h *CardHandler) Share(c *gin.Context) {
	session := sessionFrom(c)
	if session.FarmerID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no farmer identity on this account"})
		return
	}

	card, err := h.svc.Get(c.Request.Context(), session.FarmerID)
	if err != nil {
		if errors.Is(err, models.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
			return
		}
		h.logger.Error("failed loading card", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load card"})
		return
	}

	payload, err := h.svc.SharePayload(card)
	if err != nil {
		h.logger.Error("failed encoding share payload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": payload, "viewPath": "/view?data=" + payload})
}

// ViewShared decodes a scanned payload. The route is public: scanning a QR
// code must not require an account. Decode failures are terminal for the
// view, so every failure mode maps to the same 400.
func (h *CardHandler) ViewShared(c *gin.Context) {
	encoded := c.Query("data")
	if encoded == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card data"})
		return
	}

	payload, err := h.svc.DecodeShared(encoded)
	if err != nil {
		h.logger.Warn("share payload rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card data"})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// AdminList returns every stored card for administrators.
func (h *CardHandler) AdminList(c *gin.Context) {
	session := sessionFrom(c)
	listed, err := h.svc.List(c.Request.Context(), session)
	if err != nil {
		if errors.Is(err, models.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		h.logger.Error("failed listing cards", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list cards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": listed, "count": len(listed)})
}
