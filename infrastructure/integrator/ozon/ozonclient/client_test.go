package ozonclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ozmetrics/ozon-performance-sync/internal/config"
	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *OzonClient {
	cfg := config.Ozon{
		BaseURL:               baseURL,
		RetryAttempts:         2,
		RetryDelaySeconds:     0,
		RequestTimeoutSeconds: 5,
	}
	cred := domain.Credential{AccountID: 10, ClientID: "client-a", ClientSecret: "secret"}

	return NewClient(cfg, cred).(*OzonClient)
}

func testPeriod() domain.DateRange {
	return domain.DateRange{
		From: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestAuthenticate(t *testing.T) {
	var captured map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/client/token", r.URL.Path)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"token_type":   "Bearer",
			"expires_in":   1800,
		})
	}))
	defer server.Close()

	client := testClient(server.URL)
	require.NoError(t, client.Authenticate())

	assert.Equal(t, "client-a", captured["client_id"])
	assert.Equal(t, "secret", captured["client_secret"])
	assert.Equal(t, "client_credentials", captured["grant_type"])
	assert.Equal(t, "Bearer tok-123", client.authHeader())
}

func TestAuthenticateRejectsEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": ""})
	}))
	defer server.Close()

	client := testClient(server.URL)
	assert.Error(t, client.Authenticate())
}

func TestRequestsRequireAuthentication(t *testing.T) {
	client := testClient("http://127.0.0.1:0")

	_, err := client.ListCampaigns()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func authenticate(t *testing.T, client *OzonClient, mux *http.ServeMux) {
	t.Helper()
	mux.HandleFunc("/api/client/token", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"token_type":   "Bearer",
		})
	})
	require.NoError(t, client.Authenticate())
}

func TestRequestStatisticsFormats(t *testing.T) {
	tests := []struct {
		name       string
		campaigns  []string
		wantFormat domain.ReportFormat
	}{
		{"single campaign yields csv", []string{"111"}, domain.ReportFormatCSV},
		{"multiple campaigns yield zip", []string{"111", "222"}, domain.ReportFormatZip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/api/client/statistics", func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "2024-06-01", body["dateFrom"])
				assert.Equal(t, "2024-06-05", body["dateTo"])
				assert.Equal(t, "DATE", body["groupBy"])

				_ = json.NewEncoder(w).Encode(map[string]string{"UUID": "uuid-1"})
			})

			server := httptest.NewServer(mux)
			defer server.Close()

			client := testClient(server.URL)
			authenticate(t, client, mux)

			handle, err := client.RequestStatistics(tt.campaigns, testPeriod())
			require.NoError(t, err)
			assert.Equal(t, "uuid-1", handle.UUID)
			assert.Equal(t, tt.wantFormat, handle.Format)
		})
	}
}

func TestRequestStatisticsRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/client/statistics", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"UUID": "uuid-2"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(server.URL)
	authenticate(t, client, mux)

	handle, err := client.RequestStatistics([]string{"111"}, testPeriod())
	require.NoError(t, err)
	assert.Equal(t, "uuid-2", handle.UUID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRequestStatisticsRateLimitExhaustion(t *testing.T) {
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/client/statistics", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(server.URL)
	authenticate(t, client, mux)

	_, err := client.RequestStatistics([]string{"111"}, testPeriod())
	assert.ErrorIs(t, err, ErrRateLimited)
	// RetryAttempts of 2 means one initial try plus two retries.
	assert.Equal(t, int32(3), calls.Load())
}

func TestRequestStatisticsDoesNotRetryOtherErrors(t *testing.T) {
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/client/statistics", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(server.URL)
	authenticate(t, client, mux)

	_, err := client.RequestStatistics([]string{"111"}, testPeriod())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(1), calls.Load())
}

func TestReportStatusAndDownload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/client/statistics/uuid-3", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"UUID": "uuid-3", "state": "OK"})
	})
	mux.HandleFunc("/api/client/statistics/report", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "uuid-3", r.URL.Query().Get("UUID"))
		_, _ = w.Write([]byte("campaign;data"))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(server.URL)
	authenticate(t, client, mux)

	state, err := client.ReportStatus("uuid-3")
	require.NoError(t, err)
	assert.Equal(t, "OK", state)

	data, err := client.DownloadReport("uuid-3")
	require.NoError(t, err)
	assert.Equal(t, []byte("campaign;data"), data)
}

func TestListCampaignsAndObjects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/client/campaign", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"list": []map[string]string{
				{"id": "111", "title": "first"},
				{"id": "222", "title": "second"},
			},
		})
	})
	mux.HandleFunc("/api/client/campaign/111/objects", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"list": []map[string]string{{"id": "sku-1"}, {"id": "sku-2"}},
		})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(server.URL)
	authenticate(t, client, mux)

	campaigns, err := client.ListCampaigns()
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "111", campaigns[0].ID)

	objects, err := client.ListCampaignObjects("111")
	require.NoError(t, err)
	assert.Equal(t, []string{"sku-1", "sku-2"}, objects)
}

func TestSyncReportsPassCampaignsAndPeriod(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/client/statistics/campaign/media", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, []string{"111", "222"}, query["campaigns"])
		assert.Equal(t, "2024-06-01", query.Get("dateFrom"))
		assert.Equal(t, "2024-06-05", query.Get("dateTo"))
		_, _ = w.Write([]byte("media-rows"))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(server.URL)
	authenticate(t, client, mux)

	data, err := client.MediaReport([]string{"111", "222"}, testPeriod())
	require.NoError(t, err)
	assert.Equal(t, []byte("media-rows"), data)
}
