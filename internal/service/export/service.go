package export

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/domain/models"
	mongorepo "github.com/greencoders/soilcard/internal/repository/mongodb"
	sheetsrepo "github.com/greencoders/soilcard/internal/repository/sheets"
)

const (
	cardsWriteRange = "Cards!A:H"
	dateLayout      = "2006-01-02"
)

// Service dumps all stored soil cards into the configured spreadsheet so the
// program administrators can work with them offline.
type Service struct {
	cards  mongorepo.CardRepository
	sheets sheetsrepo.Repository
	logger *zap.Logger
}

// NewService wires a new export service instance.
func NewService(cards mongorepo.CardRepository, sheets sheetsrepo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cards: cards, sheets: sheets, logger: logger}
}

// ExportCards appends one row per card and returns how many were written.
// Restricted to administrators.
func (s *Service) ExportCards(ctx context.Context, session models.Session) (int, error) {
	if !session.IsAdmin() {
		return 0, models.ErrForbidden
	}
	if s.sheets == nil {
		return 0, fmt.Errorf("card export is not configured")
	}

	cards, err := s.cards.ListCards(ctx)
	if err != nil {
		return 0, fmt.Errorf("load cards: %w", err)
	}
	if len(cards) == 0 {
		return 0, nil
	}

	rows := make([][]interface{}, 0, len(cards))
	for _, card := range cards {
		rows = append(rows, []interface{}{
			card.FarmerID,
			card.FarmerName,
			card.Village,
			card.Soil.PH,
			card.Soil.OrganicCarbonPct,
			card.Soil.NPK,
			card.RecommendationsText,
			card.CreatedAt.Format(dateLayout),
		})
	}

	if err := s.sheets.AppendRows(ctx, cardsWriteRange, rows); err != nil {
		return 0, fmt.Errorf("export cards: %w", err)
	}

	s.logger.Info("cards exported", zap.Int("count", len(rows)))
	return len(rows), nil
}
