package ozonclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	ozondomain "github.com/ozmetrics/ozon-performance-sync/infrastructure/integrator/ozon/domain"
	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// groupByDate asks the API for per-day rows, the only granularity the
// unified dataset stores.
const groupByDate = "DATE"

// RequestStatistics schedules an aggregate statistics export for one
// batch of campaigns.
func (c *OzonClient) RequestStatistics(campaignIDs []string, period domain.DateRange) (*domain.ReportHandle, error) {
	body := ozondomain.StatisticsRequest{
		Campaigns: campaignIDs,
		DateFrom:  period.From.Format(time.DateOnly),
		DateTo:    period.To.Format(time.DateOnly),
		GroupBy:   groupByDate,
	}

	return c.requestAsyncReport("/api/client/statistics", body, len(campaignIDs))
}

// RequestPhrases schedules a phrase-level export for one campaign and
// its advertised objects. Phrase reports always come back as a single
// CSV file.
func (c *OzonClient) RequestPhrases(campaignID string, objectIDs []string, period domain.DateRange) (*domain.ReportHandle, error) {
	body := ozondomain.PhrasesRequest{
		Campaigns: []string{campaignID},
		Objects:   objectIDs,
		DateFrom:  period.From.Format(time.DateOnly),
		DateTo:    period.To.Format(time.DateOnly),
		GroupBy:   groupByDate,
	}

	return c.requestAsyncReport("/api/client/statistics/phrases", body, 1)
}

// RequestAttribution schedules an order attribution export for one batch
// of campaigns.
func (c *OzonClient) RequestAttribution(campaignIDs []string, period domain.DateRange) (*domain.ReportHandle, error) {
	body := ozondomain.StatisticsRequest{
		Campaigns: campaignIDs,
		DateFrom:  period.From.Format(time.DateOnly),
		DateTo:    period.To.Format(time.DateOnly),
		GroupBy:   groupByDate,
	}

	return c.requestAsyncReport("/api/client/statistics/attribution", body, len(campaignIDs))
}

// requestAsyncReport posts a generate-report call, retrying rate-limit
// responses a fixed number of times with a fixed delay. The container
// format is a single CSV iff exactly one campaign was addressed,
// otherwise the API packs one file per campaign into a zip.
func (c *OzonClient) requestAsyncReport(path string, payload any, campaignCount int) (*domain.ReportHandle, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "ozon: encoding report request")
	}

	var body []byte
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequest(http.MethodPost, c.Cfg.BaseURL+path, bytes.NewReader(encoded))
		if err != nil {
			return nil, errors.Wrap(err, "ozon: building report request")
		}

		body, err = c.do(req)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrRateLimited) {
			return nil, err
		}
		if attempt >= c.Cfg.RetryAttempts {
			logrus.WithFields(logrus.Fields{
				"account_id": c.Cred.AccountID,
				"path":       path,
				"attempts":   attempt + 1,
			}).Warn("Report request rate limited, retries exhausted")
			return nil, ErrRateLimited
		}

		time.Sleep(time.Duration(c.Cfg.RetryDelaySeconds) * time.Second)
	}

	var response ozondomain.ReportIDResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "ozon: decoding report id")
	}
	if response.UUID == "" {
		return nil, errors.New("ozon: report request returned an empty UUID")
	}

	format := domain.ReportFormatCSV
	if campaignCount > 1 {
		format = domain.ReportFormatZip
	}

	return &domain.ReportHandle{UUID: response.UUID, Format: format}, nil
}

// ReportStatus returns the current state of an async report.
func (c *OzonClient) ReportStatus(uuid string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, c.Cfg.BaseURL+"/api/client/statistics/"+uuid, nil)
	if err != nil {
		return "", errors.Wrap(err, "ozon: building status request")
	}

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var response ozondomain.ReportStatusResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", errors.Wrap(err, "ozon: decoding report status")
	}

	return response.State, nil
}

// DownloadReport fetches the content of a ready report. The handle is
// spent after a successful download.
func (c *OzonClient) DownloadReport(uuid string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/api/client/statistics/report?%s",
		c.Cfg.BaseURL, url.Values{"UUID": {uuid}}.Encode())

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ozon: building download request")
	}

	return c.do(req)
}
