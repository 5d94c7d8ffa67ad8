package ozonclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	ozondomain "github.com/ozmetrics/ozon-performance-sync/infrastructure/integrator/ozon/domain"
	"github.com/ozmetrics/ozon-performance-sync/internal/config"
	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
	"github.com/pkg/errors"
)

// ErrRateLimited is returned when the 429 retry budget of one report
// request has been exhausted. The caller degrades to "no report for this
// batch" and keeps going.
var ErrRateLimited = errors.New("ozon: rate limit retries exhausted")

// ErrNotAuthenticated is returned when a request is attempted before a
// successful token exchange.
var ErrNotAuthenticated = errors.New("ozon: client is not authenticated")

// Client is one account's view of the Ozon Performance API. All calls
// are synchronous and block the worker that owns the client.
type Client interface {
	Authenticate() error
	ListCampaigns() ([]ozondomain.Campaign, error)
	ListCampaignObjects(campaignID string) ([]string, error)

	RequestStatistics(campaignIDs []string, period domain.DateRange) (*domain.ReportHandle, error)
	RequestPhrases(campaignID string, objectIDs []string, period domain.DateRange) (*domain.ReportHandle, error)
	RequestAttribution(campaignIDs []string, period domain.DateRange) (*domain.ReportHandle, error)
	ReportStatus(uuid string) (string, error)
	DownloadReport(uuid string) ([]byte, error)

	MediaReport(campaignIDs []string, period domain.DateRange) ([]byte, error)
	ProductReport(campaignIDs []string, period domain.DateRange) ([]byte, error)
	DailyReport(campaignIDs []string, period domain.DateRange) ([]byte, error)
}

type OzonClient struct {
	Cfg        config.Ozon
	Cred       domain.Credential
	httpClient *http.Client

	// auth is set by Authenticate and immutable afterwards; the client
	// lives for one collection pass, well below the token lifetime.
	auth *ozondomain.TokenResponse
}

func NewClient(cfg config.Ozon, cred domain.Credential) Client {
	return &OzonClient{
		Cfg:  cfg,
		Cred: cred,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		},
	}
}

func (c *OzonClient) authHeader() string {
	return c.auth.TokenType + " " + c.auth.AccessToken
}

// do issues an authenticated request and returns the raw body for 200
// responses. Rate limit responses surface as ErrRateLimited so the
// report requestors can drive their retry loop.
func (c *OzonClient) do(req *http.Request) ([]byte, error) {
	if c.auth == nil {
		return nil, ErrNotAuthenticated
	}

	req.Header.Set("Authorization", c.authHeader())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "ozon: request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "ozon: reading response body")
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		return nil, fmt.Errorf("ozon: unexpected status %d: %s", resp.StatusCode, body)
	}
}
