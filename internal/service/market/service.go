package market

import (
	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/domain/models"
)

// Service serves mandi price quotes and headline news. The feed is statically
// mocked; a live AgMarkNet integration would slot in behind the same methods.
type Service struct {
	logger *zap.Logger
}

// NewService wires a new market service instance.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Prices returns the fixed ordered quote list.
func (s *Service) Prices() []models.MarketPrice {
	return []models.MarketPrice{
		{CropName: "Wheat", PricePerQuintal: 2125, PercentChange: 2, Unit: "q"},
		{CropName: "Rice", PricePerQuintal: 1950, PercentChange: -1, Unit: "q"},
		{CropName: "Maize", PricePerQuintal: 1800, PercentChange: 5, Unit: "q"},
		{CropName: "Cotton", PricePerQuintal: 6500, PercentChange: 3, Unit: "q"},
		{CropName: "Sugarcane", PricePerQuintal: 315, PercentChange: 0, Unit: "q"},
	}
}

// News returns the static agricultural headlines shown next to the quotes.
func (s *Service) News() []models.NewsItem {
	return []models.NewsItem{
		{
			Title:   "Wheat Prices Rise Due to Export Demand",
			Age:     "2 hours ago",
			Summary: "International demand for Indian wheat has pushed prices up by 2% this week.",
		},
		{
			Title:   "Monsoon Forecast Positive for Kharif Crops",
			Age:     "5 hours ago",
			Summary: "IMD predicts normal rainfall, benefiting rice and cotton cultivation.",
		},
		{
			Title:   "Government Announces MSP Increase",
			Age:     "1 day ago",
			Summary: "Minimum Support Price for major crops increased by 4-6% for the upcoming season.",
		},
	}
}
