package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ozmetrics/ozon-performance-sync/infrastructure/integrator/ozon"
	"github.com/ozmetrics/ozon-performance-sync/infrastructure/repository"
	"github.com/ozmetrics/ozon-performance-sync/internal/collector"
	"github.com/ozmetrics/ozon-performance-sync/internal/config"
	"github.com/ozmetrics/ozon-performance-sync/internal/dataset"
	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
	"github.com/ozmetrics/ozon-performance-sync/internal/reconcile"
	"github.com/ozmetrics/ozon-performance-sync/pkg/utils"
	"github.com/sirupsen/logrus"
)

// deltaFileName is the reconciliation output inside the run directory,
// the rows that are new relative to analytics_data.
const deltaFileName = "into_db.csv"

// RunReport summarizes one end-to-end pipeline pass.
type RunReport struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Period     domain.DateRange
	RunDir     string
	Accounts   []*domain.CollectionResult
	// DatasetRows counts the unified fresh rows, WindowRows the persisted
	// rows loaded for comparison, DeltaRows what survived reconciliation.
	DatasetRows int
	WindowRows  int
	DeltaRows   int
	Inserted    bool
}

// Runner drives one collection pass end to end: resolve the date range,
// snapshot the persisted window, collect per account, unify, reconcile
// and emit the delta.
type Runner struct {
	cfg        *config.Config
	creds      repository.CredentialRepository
	analytics  repository.AnalyticsRepository
	integrator ozon.Integrator
}

func NewRunner(
	cfg *config.Config,
	creds repository.CredentialRepository,
	analytics repository.AnalyticsRepository,
	integrator ozon.Integrator,
) *Runner {
	return &Runner{
		cfg:        cfg,
		creds:      creds,
		analytics:  analytics,
		integrator: integrator,
	}
}

// Run executes one pipeline pass. dateFrom and dateTo override the
// automatic date-range resolution when set; a nil or zero bound keeps
// the resolved default. The persisted window is read once, before any
// collection starts, so concurrent writers cannot shift the comparison
// base mid-run.
func (r *Runner) Run(ctx context.Context, dateFrom, dateTo *time.Time) (*RunReport, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating run id: %w", err)
	}

	report := &RunReport{
		ID:        runID,
		StartedAt: time.Now(),
	}

	period, err := r.resolvePeriod(dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	report.Period = period

	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"period": period.String(),
	}).Info("Collection run started")

	creds, err := r.creds.ListPerformanceKeys()
	if err != nil {
		return nil, fmt.Errorf("listing credentials: %w", err)
	}
	if len(creds) == 0 {
		return nil, fmt.Errorf("no performance credentials configured")
	}

	// The campaign set is only known after collection, so the snapshot is
	// taken unrestricted and narrowed in memory during reconciliation.
	window, err := r.analytics.GetWindow(period.From, period.To, nil)
	if err != nil {
		return nil, fmt.Errorf("loading persisted window: %w", err)
	}
	report.WindowRows = len(window)

	runDir := filepath.Join(r.cfg.CollectionSync.OutputDir, report.StartedAt.Format(time.DateOnly))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}
	report.RunDir = runDir

	dispatcher := collector.NewDispatcher(r.integrator, r.cfg.Ozon, r.cfg.CollectionSync)
	report.Accounts = dispatcher.Run(ctx, creds, period, runDir)

	if err := dataset.ExtractArchives(runDir, r.cfg.CollectionSync.RemoveArchives); err != nil {
		return nil, fmt.Errorf("extracting archives: %w", err)
	}

	fresh, err := dataset.BuildDataset(runDir)
	if err != nil {
		return nil, fmt.Errorf("building dataset: %w", err)
	}
	report.DatasetRows = len(fresh)

	delta := reconcile.Delta(window, fresh, period)
	report.DeltaRows = len(delta)

	deltaPath := filepath.Join(runDir, deltaFileName)
	if err := reconcile.WriteDeltaCSV(deltaPath, delta); err != nil {
		return nil, fmt.Errorf("writing delta file: %w", err)
	}

	if r.cfg.CollectionSync.InsertEnabled && len(delta) > 0 {
		if err := r.analytics.InsertRows(delta); err != nil {
			return nil, fmt.Errorf("inserting delta rows: %w", err)
		}
		report.Inserted = true
	}

	report.FinishedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"accounts": len(report.Accounts),
		"fresh":    report.DatasetRows,
		"window":   report.WindowRows,
		"delta":    report.DeltaRows,
		"inserted": report.Inserted,
		"duration": report.FinishedAt.Sub(report.StartedAt).String(),
	}).Info("Collection run finished")

	return report, nil
}

// resolvePeriod picks the collection range. Each bound takes its
// override when one is set; otherwise from is the newest persisted
// report date when the table has data or the configured lookback, and
// to is today. Re-collecting the newest persisted day is intentional,
// late rows for that day surface in the delta.
func (r *Runner) resolvePeriod(dateFrom, dateTo *time.Time) (domain.DateRange, error) {
	now := time.Now().UTC().Truncate(24 * time.Hour)

	to := now
	if boundSet(dateTo) {
		to = dateTo.UTC().Truncate(24 * time.Hour)
	}

	var from time.Time
	switch {
	case boundSet(dateFrom):
		from = dateFrom.UTC().Truncate(24 * time.Hour)
	default:
		last, err := r.analytics.LastDate()
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("resolving last persisted date: %w", err)
		}

		from = now.AddDate(0, 0, -r.cfg.CollectionSync.LookbackDays)
		if last != nil {
			from = last.UTC().Truncate(24 * time.Hour)
		}
	}

	if from.After(to) {
		return domain.DateRange{}, fmt.Errorf("inverted collection range: %s > %s",
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	return domain.DateRange{From: from, To: to}, nil
}

// boundSet reports whether an override bound carries a real date. The
// date parser maps an absent parameter to a zero time.
func boundSet(t *time.Time) bool {
	return t != nil && !t.IsZero()
}
