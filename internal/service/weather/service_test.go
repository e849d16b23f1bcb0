package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencoders/soilcard/internal/domain/models"
)

type fakeWeatherClient struct {
	snapshot models.WeatherSnapshot
	err      error
}

func (f fakeWeatherClient) Current(context.Context, string) (models.WeatherSnapshot, error) {
	return f.snapshot, f.err
}

func TestSnapshotAppliesHumidityAdvisory(t *testing.T) {
	dry := NewService(fakeWeatherClient{snapshot: models.WeatherSnapshot{TemperatureC: 31, HumidityPct: 40, ConditionLabel: "Clear"}}, nil)
	got := dry.Snapshot(context.Background(), "Delhi")
	assert.Equal(t, advisoryFavorable, got.Advisory)

	humid := NewService(fakeWeatherClient{snapshot: models.WeatherSnapshot{TemperatureC: 27, HumidityPct: 78, ConditionLabel: "Rain"}}, nil)
	got = humid.Snapshot(context.Background(), "Mumbai")
	assert.Equal(t, advisoryFungal, got.Advisory)
}

func TestSnapshotFallsBackToMock(t *testing.T) {
	svc := NewService(fakeWeatherClient{err: errors.New("dns failure")}, nil)

	got := svc.Snapshot(context.Background(), "Delhi")
	require.Equal(t, MockSnapshot(), got)
	assert.Equal(t, 28.0, got.TemperatureC)
	assert.Equal(t, 45.0, got.HumidityPct)
	assert.Equal(t, "Sunny", got.ConditionLabel)
	assert.NotEmpty(t, got.Advisory)
}

func TestSnapshotNilClient(t *testing.T) {
	svc := NewService(nil, nil)
	assert.Equal(t, MockSnapshot(), svc.Snapshot(context.Background(), "Delhi"))
}
