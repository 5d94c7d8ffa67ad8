package collector

import (
	"context"
	"fmt"
	"time"

	ozondomain "github.com/ozmetrics/ozon-performance-sync/infrastructure/integrator/ozon/domain"
	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
	"github.com/pkg/errors"
)

// ErrReportNotReady is returned when a report never reached the ready
// state within the poll budget. The report is then simply absent from
// the run's output.
var ErrReportNotReady = errors.New("report did not become ready within the poll budget")

// reportFetcher is the slice of the API client the poller needs.
type reportFetcher interface {
	ReportStatus(uuid string) (string, error)
	DownloadReport(uuid string) ([]byte, error)
}

// awaitReport polls a report handle until it is ready, then downloads
// its content exactly once. The attempt cap and the context bound the
// wait; an export stuck on the Ozon side must not wedge the worker.
func awaitReport(ctx context.Context, client reportFetcher, handle domain.ReportHandle, interval time.Duration, maxAttempts int) ([]byte, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}

		state, err := client.ReportStatus(handle.UUID)
		if err != nil {
			return nil, fmt.Errorf("polling report %s: %w", handle.UUID, err)
		}

		if state == ozondomain.ReportStateReady {
			return client.DownloadReport(handle.UUID)
		}
	}

	return nil, ErrReportNotReady
}
