package ozonclient

import (
	"net/http"
	"net/url"
	"time"

	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
	"github.com/pkg/errors"
)

// The media, product and daily statistics endpoints answer synchronously
// with the CSV content; no handle, no polling.

func (c *OzonClient) MediaReport(campaignIDs []string, period domain.DateRange) ([]byte, error) {
	return c.syncReport("/api/client/statistics/campaign/media", campaignIDs, period)
}

func (c *OzonClient) ProductReport(campaignIDs []string, period domain.DateRange) ([]byte, error) {
	return c.syncReport("/api/client/statistics/campaign/product", campaignIDs, period)
}

func (c *OzonClient) DailyReport(campaignIDs []string, period domain.DateRange) ([]byte, error) {
	return c.syncReport("/api/client/statistics/daily", campaignIDs, period)
}

func (c *OzonClient) syncReport(path string, campaignIDs []string, period domain.DateRange) ([]byte, error) {
	params := url.Values{}
	for _, id := range campaignIDs {
		params.Add("campaigns", id)
	}
	params.Add("dateFrom", period.From.Format(time.DateOnly))
	params.Add("dateTo", period.To.Format(time.DateOnly))

	req, err := http.NewRequest(http.MethodGet, c.Cfg.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "ozon: building report request")
	}

	return c.do(req)
}
