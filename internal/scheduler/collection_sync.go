package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/ozmetrics/ozon-performance-sync/internal/config"
	"github.com/ozmetrics/ozon-performance-sync/internal/pipeline"
	"github.com/sirupsen/logrus"
)

// CollectionRunner is the slice of the pipeline the scheduler drives.
type CollectionRunner interface {
	Run(ctx context.Context, dateFrom, dateTo *time.Time) (*pipeline.RunReport, error)
}

// CollectionSyncService schedules the collection pipeline and guards it
// against overlapping runs. The cron trigger and the manual trigger go
// through the same single-flight gate.
type CollectionSyncService struct {
	scheduler *gocron.Scheduler
	cfg       config.CollectionSync
	runner    CollectionRunner

	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewCollectionSyncService(runner CollectionRunner, appConfig *config.Config) *CollectionSyncService {
	cfg := appConfig.CollectionSync

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"lookback_days": cfg.LookbackDays,
		"output_dir":    cfg.OutputDir,
		"sync_enabled":  cfg.Enabled,
	}).Info("Collection sync configuration loaded")

	return &CollectionSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		cfg:       cfg,
		runner:    runner,
	}
}

// Start registers the cron job and launches the scheduler. The scheduler
// stops when the context is cancelled.
func (s *CollectionSyncService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("Collection sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Starting collection sync scheduler")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.runCollection(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduling collection sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping collection sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync starts a run outside the cron schedule, with
// optional date-range overrides. The single-flight gate is claimed
// before the method returns, so exactly one of any set of concurrent
// callers gets true; the rest see a run already in flight.
func (s *CollectionSyncService) TriggerManualSync(ctx context.Context, dateFrom, dateTo *time.Time) bool {
	if !s.tryBegin() {
		return false
	}

	// The run outlives the triggering request, so its cancellation must
	// not propagate.
	go s.collect(context.WithoutCancel(ctx), dateFrom, dateTo)

	return true
}

// GetStatus reports the scheduler state for the ops endpoint.
func (s *CollectionSyncService) GetStatus() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]interface{}{
		"enabled":       s.cfg.Enabled,
		"cron_schedule": s.cfg.CronSchedule,
		"sync_running":  s.syncRunning,
	}

	if s.lastRunID != "" {
		status["last_run_id"] = s.lastRunID
	}
	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}
	if s.lastSyncError != "" {
		status["last_sync_error"] = s.lastSyncError
	}

	return status
}

func (s *CollectionSyncService) runCollection(ctx context.Context) {
	if !s.tryBegin() {
		logrus.Info("Collection run already in progress, skipping")
		return
	}

	s.collect(ctx, nil, nil)
}

// tryBegin claims the single-flight gate and stamps the start time. It
// returns false when a run already holds the gate.
func (s *CollectionSyncService) tryBegin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()

	return true
}

// collect executes one pipeline pass. The caller must hold the gate via
// tryBegin; collect releases it on completion.
func (s *CollectionSyncService) collect(ctx context.Context, dateFrom, dateTo *time.Time) {
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	report, err := s.runner.Run(ctx, dateFrom, dateTo)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Collection run failed")
		return
	}

	s.lastRunID = report.ID
	s.lastSyncError = ""
}
