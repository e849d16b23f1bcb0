package weather

import (
	"context"

	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/domain/models"
	"github.com/greencoders/soilcard/pkg/clients/openweather"
)

const (
	advisoryFavorable = "Weather conditions are favorable for farming."
	advisoryFungal    = "High humidity detected. Monitor crops for fungal diseases."
	advisoryMockPest  = "High chance of pest activity in cotton crops due to humidity."
)

// Service wraps the weather lookup and absorbs every failure behind a fixed
// mock snapshot, so callers never see an error from this enrichment path.
type Service struct {
	client openweather.Client
	logger *zap.Logger
}

// NewService wires a new weather service instance.
func NewService(client openweather.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// Snapshot returns the current weather for a city, or the mock snapshot when
// the lookup fails for any reason. The advisory line is derived from humidity.
func (s *Service) Snapshot(ctx context.Context, city string) models.WeatherSnapshot {
	if s.client == nil {
		return MockSnapshot()
	}

	snapshot, err := s.client.Current(ctx, city)
	if err != nil {
		s.logger.Warn("weather lookup failed, using mock snapshot", zap.String("city", city), zap.Error(err))
		return MockSnapshot()
	}

	snapshot.Advisory = advisoryFavorable
	if snapshot.HumidityPct > 60 {
		snapshot.Advisory = advisoryFungal
	}
	return snapshot
}

// MockSnapshot is the fixed fallback tuple used when the live lookup fails.
func MockSnapshot() models.WeatherSnapshot {
	return models.WeatherSnapshot{
		TemperatureC:   28,
		HumidityPct:    45,
		ConditionLabel: "Sunny",
		Advisory:       advisoryMockPest,
	}
}
