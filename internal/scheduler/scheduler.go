package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/config"
	"github.com/greencoders/soilcard/internal/domain/models"
	repo "github.com/greencoders/soilcard/internal/repository/mongodb"
	"github.com/greencoders/soilcard/internal/service/recommend"
	"github.com/greencoders/soilcard/internal/service/weather"
)

const snapshotTopN = 3

// referenceSoil is the neutral reading used for the daily snapshot ranking so
// day-to-day variation in the stored top crops reflects the weather alone.
var referenceSoil = models.SoilReading{PH: 6.5, OrganicCarbonPct: 0.6, NPK: "100:50:50"}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron       *cron.Cron
	weatherSvc *weather.Service
	snapshots  repo.SnapshotRepository
	cfg        config.Config
	logger     *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, weatherSvc *weather.Service, snapshots repo.SnapshotRepository, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour, dom, month, dow).
	c := cron.New(cron.WithLocation(locationFor(cfg.Snapshot.Timezone, logger)))

	return &Scheduler{
		cron:       c,
		weatherSvc: weatherSvc,
		snapshots:  snapshots,
		cfg:        cfg,
		logger:     logger,
	}
}

// locationFor resolves the configured IANA timezone so the cron expression is
// interpreted in local farm time rather than process-local time. An unknown
// zone falls back to UTC.
func locationFor(tz string, logger *zap.Logger) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		logger.Warn("unknown timezone, scheduling in UTC", zap.String("timezone", tz), zap.Error(err))
		return time.UTC
	}
	return loc
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Snapshot.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.Snapshot.CronSchedule, s.storeDailySnapshot)
	if err != nil {
		s.logger.Error("failed to schedule daily snapshot", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) storeDailySnapshot() {
	s.logger.Info("generating daily advisory snapshot")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	city := s.cfg.Weather.DefaultCity
	current := s.weatherSvc.Snapshot(ctx, city)
	topCrops := recommend.Score(referenceSoil, current, snapshotTopN)

	now := time.Now().UTC()
	snapshot := models.DailySnapshot{
		Date:      now.Truncate(24 * time.Hour),
		City:      city,
		Weather:   current,
		TopCrops:  topCrops,
		CreatedAt: now,
	}

	if err := s.snapshots.SaveDailySnapshot(ctx, snapshot); err != nil {
		s.logger.Error("failed to store daily snapshot", zap.Error(err))
	} else {
		s.logger.Info("daily snapshot stored", zap.String("city", city))
	}
}
