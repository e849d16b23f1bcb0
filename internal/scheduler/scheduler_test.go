package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/config"
	"github.com/greencoders/soilcard/internal/domain/models"
	"github.com/greencoders/soilcard/internal/service/weather"
)

type fakeSnapshotRepo struct {
	saved []models.DailySnapshot
}

func (f *fakeSnapshotRepo) SaveDailySnapshot(_ context.Context, snapshot models.DailySnapshot) error {
	f.saved = append(f.saved, snapshot)
	return nil
}

func testConfig() config.Config {
	return config.Config{
		Weather: config.WeatherConfig{DefaultCity: "Delhi"},
		Snapshot: config.SnapshotConfig{
			CronSchedule: "0 6 * * *",
			Timezone:     "Asia/Kolkata",
		},
	}
}

func TestLocationFor(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	logger := zap.NewNop()
	assert.Equal(t, kolkata, locationFor("Asia/Kolkata", logger))
	assert.Equal(t, time.UTC, locationFor("Not/AZone", logger), "unknown zones fall back to UTC")
	assert.Equal(t, time.UTC, locationFor("", logger))
}

func TestStoreDailySnapshot(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	weatherSvc := weather.NewService(nil, nil)
	sched := NewScheduler(testConfig(), weatherSvc, repo, nil)

	sched.storeDailySnapshot()

	require.Len(t, repo.saved, 1)
	snapshot := repo.saved[0]
	assert.Equal(t, "Delhi", snapshot.City)
	assert.Equal(t, weather.MockSnapshot(), snapshot.Weather)
	assert.Len(t, snapshot.TopCrops, snapshotTopN)
	assert.False(t, snapshot.CreatedAt.IsZero())
}
