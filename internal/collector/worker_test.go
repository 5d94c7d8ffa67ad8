package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	ozondomain "github.com/ozmetrics/ozon-performance-sync/infrastructure/integrator/ozon/domain"
	"github.com/ozmetrics/ozon-performance-sync/internal/config"
	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient fakes the API client for one account. Async requests
// hand out sequential UUIDs; statuses and report bodies are keyed by
// UUID.
type scriptedClient struct {
	authErr      error
	campaigns    []ozondomain.Campaign
	campaignsErr error
	objects      map[string][]string

	statuses map[string]string
	reports  map[string][]byte

	nextUUID    int
	statsCalls  int
	phraseCalls int
	attrCalls   int

	syncData map[domain.ReportKind][]byte
	syncErr  error
}

func (c *scriptedClient) Authenticate() error { return c.authErr }

func (c *scriptedClient) ListCampaigns() ([]ozondomain.Campaign, error) {
	if c.campaignsErr != nil {
		return nil, c.campaignsErr
	}
	return c.campaigns, nil
}

func (c *scriptedClient) ListCampaignObjects(campaignID string) ([]string, error) {
	return c.objects[campaignID], nil
}

func (c *scriptedClient) issueHandle(campaignCount int) *domain.ReportHandle {
	uuid := fmt.Sprintf("report-%d", c.nextUUID)
	c.nextUUID++

	format := domain.ReportFormatCSV
	if campaignCount > 1 {
		format = domain.ReportFormatZip
	}
	return &domain.ReportHandle{UUID: uuid, Format: format}
}

func (c *scriptedClient) RequestStatistics(campaignIDs []string, period domain.DateRange) (*domain.ReportHandle, error) {
	c.statsCalls++
	return c.issueHandle(len(campaignIDs)), nil
}

func (c *scriptedClient) RequestPhrases(campaignID string, objectIDs []string, period domain.DateRange) (*domain.ReportHandle, error) {
	c.phraseCalls++
	return c.issueHandle(1), nil
}

func (c *scriptedClient) RequestAttribution(campaignIDs []string, period domain.DateRange) (*domain.ReportHandle, error) {
	c.attrCalls++
	return c.issueHandle(len(campaignIDs)), nil
}

func (c *scriptedClient) ReportStatus(uuid string) (string, error) {
	if state, ok := c.statuses[uuid]; ok {
		return state, nil
	}
	return "NOT_STARTED", nil
}

func (c *scriptedClient) DownloadReport(uuid string) ([]byte, error) {
	return c.reports[uuid], nil
}

func (c *scriptedClient) MediaReport(campaignIDs []string, period domain.DateRange) ([]byte, error) {
	if c.syncErr != nil {
		return nil, c.syncErr
	}
	return c.syncData[domain.ReportKindMedia], nil
}

func (c *scriptedClient) ProductReport(campaignIDs []string, period domain.DateRange) ([]byte, error) {
	if c.syncErr != nil {
		return nil, c.syncErr
	}
	return c.syncData[domain.ReportKindProduct], nil
}

func (c *scriptedClient) DailyReport(campaignIDs []string, period domain.DateRange) ([]byte, error) {
	if c.syncErr != nil {
		return nil, c.syncErr
	}
	return c.syncData[domain.ReportKindDaily], nil
}

func testOzonConfig() config.Ozon {
	return config.Ozon{
		DayLimit:            5,
		CampaignLimit:       5,
		PollIntervalSeconds: 0,
		PollMaxAttempts:     3,
	}
}

func testPeriod() domain.DateRange {
	return domain.DateRange{From: day(2024, 6, 1), To: day(2024, 6, 3)}
}

func TestWorkerAuthenticationFailure(t *testing.T) {
	runDir := t.TempDir()

	client := &scriptedClient{authErr: errors.New("invalid client credentials")}
	worker := NewWorker(
		domain.Credential{AccountID: 10, ClientID: "client-a"},
		client, testOzonConfig(), config.CollectionSync{Statistics: true}, runDir,
	)

	result := worker.Run(context.Background(), testPeriod())

	assert.Equal(t, domain.StateFailed, result.State)
	assert.Error(t, result.Err)

	entries, err := os.ReadDir(runDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "a failed account must not leave directories behind")
}

func TestWorkerCollectsStatistics(t *testing.T) {
	runDir := t.TempDir()

	client := &scriptedClient{
		campaigns: []ozondomain.Campaign{{ID: "111"}, {ID: "222"}},
		objects:   map[string][]string{"111": {"sku-1"}},
		statuses:  map[string]string{"report-0": ozondomain.ReportStateReady},
		reports:   map[string][]byte{"report-0": []byte("zip-bytes")},
	}
	worker := NewWorker(
		domain.Credential{AccountID: 10, ClientID: "client-a"},
		client, testOzonConfig(), config.CollectionSync{Statistics: true}, runDir,
	)

	result := worker.Run(context.Background(), testPeriod())

	assert.Equal(t, domain.StateDone, result.State)
	assert.Equal(t, 2, result.Campaigns)
	assert.Equal(t, 1, client.statsCalls)
	assert.Equal(t, 1, result.SavedReports())
	assert.Zero(t, result.FailedReports())

	// Two campaigns in one batch means a zip container.
	path := filepath.Join(runDir, "10-client-a", "statistics", "campaigns_0_0.zip")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("zip-bytes"), data)
}

func TestWorkerStuckReportDoesNotBlockSiblings(t *testing.T) {
	runDir := t.TempDir()

	// Ten days at a five day limit gives two sub-ranges, so two
	// statistics requests. The first report never becomes ready.
	period := domain.DateRange{From: day(2024, 6, 1), To: day(2024, 6, 10)}

	client := &scriptedClient{
		campaigns: []ozondomain.Campaign{{ID: "111"}},
		statuses: map[string]string{
			"report-0": "IN_PROGRESS",
			"report-1": ozondomain.ReportStateReady,
		},
		reports: map[string][]byte{"report-1": []byte("second-range")},
	}
	worker := NewWorker(
		domain.Credential{AccountID: 7, ClientID: "client-b"},
		client, testOzonConfig(), config.CollectionSync{Statistics: true}, runDir,
	)

	result := worker.Run(context.Background(), period)

	assert.Equal(t, domain.StateDone, result.State)
	assert.Equal(t, 2, client.statsCalls)
	assert.Equal(t, 1, result.SavedReports())
	assert.Equal(t, 1, result.FailedReports())

	saved := filepath.Join(runDir, "7-client-b", "statistics", "campaigns_0_1.csv")
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, []byte("second-range"), data)

	_, err = os.Stat(filepath.Join(runDir, "7-client-b", "statistics", "campaigns_0_0.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestWorkerPhrasesSkipCampaignsWithoutObjects(t *testing.T) {
	runDir := t.TempDir()

	client := &scriptedClient{
		campaigns: []ozondomain.Campaign{{ID: "111"}, {ID: "222"}},
		objects:   map[string][]string{"111": {"sku-1", "sku-2"}},
		statuses:  map[string]string{"report-0": ozondomain.ReportStateReady},
		reports:   map[string][]byte{"report-0": []byte("phrases")},
	}
	worker := NewWorker(
		domain.Credential{AccountID: 3, ClientID: "client-c"},
		client, testOzonConfig(), config.CollectionSync{Phrases: true}, runDir,
	)

	result := worker.Run(context.Background(), testPeriod())

	assert.Equal(t, domain.StateDone, result.State)
	assert.Equal(t, 1, client.phraseCalls)
	assert.Equal(t, 1, result.SavedReports())
}

func TestWorkerSavesSynchronousReports(t *testing.T) {
	runDir := t.TempDir()

	client := &scriptedClient{
		campaigns: []ozondomain.Campaign{{ID: "111"}},
		syncData: map[domain.ReportKind][]byte{
			domain.ReportKindMedia: []byte("media-rows"),
		},
	}
	worker := NewWorker(
		domain.Credential{AccountID: 5, ClientID: "client-d"},
		client, testOzonConfig(), config.CollectionSync{Media: true}, runDir,
	)

	period := testPeriod()
	result := worker.Run(context.Background(), period)

	assert.Equal(t, domain.StateDone, result.State)
	require.Equal(t, 1, result.SavedReports())

	path := filepath.Join(runDir, "5-client-d", "media",
		fmt.Sprintf("media_%s.csv", period))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("media-rows"), data)
}

func TestWorkerLabelsCoverBatchAndRangeIndexes(t *testing.T) {
	runDir := t.TempDir()

	cfg := testOzonConfig()
	cfg.CampaignLimit = 1

	client := &scriptedClient{
		campaigns: []ozondomain.Campaign{{ID: "111"}, {ID: "222"}},
		statuses: map[string]string{
			"report-0": ozondomain.ReportStateReady,
			"report-1": ozondomain.ReportStateReady,
		},
		reports: map[string][]byte{
			"report-0": []byte("a"),
			"report-1": []byte("b"),
		},
	}
	worker := NewWorker(
		domain.Credential{AccountID: 9, ClientID: "client-e"},
		client, cfg, config.CollectionSync{Statistics: true}, runDir,
	)

	result := worker.Run(context.Background(), testPeriod())

	require.Equal(t, 2, result.SavedReports())
	for _, name := range []string{"campaigns_0_0.csv", "campaigns_1_0.csv"} {
		_, err := os.Stat(filepath.Join(runDir, "9-client-e", "statistics", name))
		assert.NoError(t, err, name)
	}
}

func TestWorkerPollRespectsContext(t *testing.T) {
	runDir := t.TempDir()

	cfg := testOzonConfig()
	cfg.PollIntervalSeconds = 1
	cfg.PollMaxAttempts = 100

	client := &scriptedClient{
		campaigns: []ozondomain.Campaign{{ID: "111"}},
		statuses:  map[string]string{"report-0": "IN_PROGRESS"},
	}
	worker := NewWorker(
		domain.Credential{AccountID: 2, ClientID: "client-f"},
		client, cfg, config.CollectionSync{Statistics: true}, runDir,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	result := worker.Run(ctx, testPeriod())

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, domain.StateDone, result.State)
	assert.Equal(t, 1, result.FailedReports())
}
