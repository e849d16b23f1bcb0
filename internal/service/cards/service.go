package cards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/codec"
	"github.com/greencoders/soilcard/internal/domain/models"
	repo "github.com/greencoders/soilcard/internal/repository/mongodb"
	"github.com/greencoders/soilcard/internal/service/advisory"
)

// CreateRequest carries the card-generation form fields.
type CreateRequest struct {
	FarmerName            string  `json:"farmerName" binding:"required"`
	Village               string  `json:"village" binding:"required"`
	PH                    float64 `json:"ph"`
	OrganicCarbonPct      float64 `json:"organicCarbon"`
	NPK                   string  `json:"npk" binding:"required"`
	CustomRecommendations string  `json:"recommendations"`
}

// Service owns the soil card lifecycle: create once, read thereafter, share
// via the encoded payload.
type Service struct {
	cards    repo.CardRepository
	profiles repo.ProfileRepository
	advisor  advisory.Assembler
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a new card service instance.
func NewService(cards repo.CardRepository, profiles repo.ProfileRepository, advisor advisory.Assembler, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cards:    cards,
		profiles: profiles,
		advisor:  advisor,
		logger:   logger,
		now:      time.Now,
	}
}

// Create validates the submitted readings, enforces the one-card-per-farmer
// rule with a read-before-write check, generates the recommendation text and
// persists the card. The duplicate check is best effort: two racing creations
// for the same farmer resolve as last writer wins.
func (s *Service) Create(ctx context.Context, session models.Session, req CreateRequest) (models.SoilCard, error) {
	if session.FarmerID == "" {
		return models.SoilCard{}, models.ErrForbidden
	}

	soil := models.SoilReading{
		PH:               req.PH,
		OrganicCarbonPct: req.OrganicCarbonPct,
		NPK:              req.NPK,
	}
	if err := soil.Validate(); err != nil {
		return models.SoilCard{}, fmt.Errorf("soil reading: %w", err)
	}
	if req.FarmerName == "" || req.Village == "" {
		return models.SoilCard{}, fmt.Errorf("farmer name and village: %w", models.ErrInvalidInput)
	}

	if _, err := s.cards.GetCard(ctx, session.FarmerID); err == nil {
		return models.SoilCard{}, models.ErrDuplicateCard
	} else if !errors.Is(err, models.ErrCardNotFound) {
		return models.SoilCard{}, fmt.Errorf("duplicate check: %w", err)
	}

	recommendations := req.CustomRecommendations
	if recommendations == "" {
		recommendations = s.advisor.CardRecommendations(ctx, soil, req.Village)
	}

	card := models.SoilCard{
		FarmerID:            session.FarmerID,
		UserID:              session.UserID,
		FarmerName:          req.FarmerName,
		Village:             req.Village,
		Soil:                soil,
		RecommendationsText: recommendations,
		CreatedAt:           s.now().UTC(),
	}

	if err := s.cards.SaveCard(ctx, card); err != nil {
		return models.SoilCard{}, fmt.Errorf("persist card: %w", err)
	}

	if err := s.profiles.MarkHasCard(ctx, session.UserID); err != nil {
		// The card is already persisted; a stale flag only weakens the
		// duplicate check, which stays best effort either way.
		s.logger.Warn("failed to mark profile has_card", zap.String("user_id", session.UserID), zap.Error(err))
	}

	s.logger.Info("soil card created", zap.String("farmer_id", card.FarmerID), zap.String("village", card.Village))
	return card, nil
}

// Get fetches a farmer's card.
func (s *Service) Get(ctx context.Context, farmerID string) (models.SoilCard, error) {
	return s.cards.GetCard(ctx, farmerID)
}

// List returns all cards; restricted to administrators.
func (s *Service) List(ctx context.Context, session models.Session) ([]models.SoilCard, error) {
	if !session.IsAdmin() {
		return nil, models.ErrForbidden
	}
	return s.cards.ListCards(ctx)
}

// SharePayload encodes the public projection of a card for the QR/share link.
func (s *Service) SharePayload(card models.SoilCard) (string, error) {
	return codec.Encode(codec.FromCard(card))
}

// DecodeShared decodes a scanned payload back into the public projection.
func (s *Service) DecodeShared(encoded string) (codec.CardPayload, error) {
	return codec.Decode(encoded)
}
