package collector

import (
	"context"
	"testing"
	"time"

	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher scripts the status sequence a report goes through.
type fakeFetcher struct {
	states    []string
	statusErr error
	calls     int
	content   []byte
	downloads int
}

func (f *fakeFetcher) ReportStatus(uuid string) (string, error) {
	if f.statusErr != nil {
		return "", f.statusErr
	}

	state := f.states[len(f.states)-1]
	if f.calls < len(f.states) {
		state = f.states[f.calls]
	}
	f.calls++
	return state, nil
}

func (f *fakeFetcher) DownloadReport(uuid string) ([]byte, error) {
	f.downloads++
	return f.content, nil
}

func TestAwaitReportReadyAfterRetries(t *testing.T) {
	fetcher := &fakeFetcher{
		states:  []string{"IN_PROGRESS", "IN_PROGRESS", "OK"},
		content: []byte("campaign;data"),
	}

	data, err := awaitReport(context.Background(), fetcher,
		domain.ReportHandle{UUID: "r-1", Format: domain.ReportFormatCSV},
		time.Millisecond, 10)

	require.NoError(t, err)
	assert.Equal(t, []byte("campaign;data"), data)
	assert.Equal(t, 3, fetcher.calls)
	assert.Equal(t, 1, fetcher.downloads)
}

func TestAwaitReportExhaustsBudget(t *testing.T) {
	fetcher := &fakeFetcher{states: []string{"IN_PROGRESS"}}

	_, err := awaitReport(context.Background(), fetcher,
		domain.ReportHandle{UUID: "r-2"}, time.Millisecond, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReportNotReady)
	assert.Equal(t, 3, fetcher.calls)
	assert.Zero(t, fetcher.downloads)
}

func TestAwaitReportStatusError(t *testing.T) {
	fetcher := &fakeFetcher{statusErr: errors.New("boom")}

	_, err := awaitReport(context.Background(), fetcher,
		domain.ReportHandle{UUID: "r-3"}, time.Millisecond, 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "r-3")
	assert.Zero(t, fetcher.downloads)
}

func TestAwaitReportContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := &fakeFetcher{states: []string{"OK"}}

	_, err := awaitReport(ctx, fetcher, domain.ReportHandle{UUID: "r-4"}, time.Hour, 5)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, fetcher.calls)
}
