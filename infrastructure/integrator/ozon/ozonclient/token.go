package ozonclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	ozondomain "github.com/ozmetrics/ozon-performance-sync/infrastructure/integrator/ozon/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

// Authenticate exchanges the account's client credentials for a bearer
// token. It must succeed before any other call; a failure skips the
// whole account.
func (c *OzonClient) Authenticate() error {
	payload, err := json.Marshal(tokenRequest{
		ClientID:     c.Cred.ClientID,
		ClientSecret: c.Cred.ClientSecret,
		GrantType:    "client_credentials",
	})
	if err != nil {
		return errors.Wrap(err, "ozon: encoding token request")
	}

	req, err := http.NewRequest(http.MethodPost, c.Cfg.BaseURL+"/api/client/token", bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "ozon: building token request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "ozon: token request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "ozon: reading token response")
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ozon: token exchange failed with status %d: %s", resp.StatusCode, body)
	}

	auth := &ozondomain.TokenResponse{}
	if err := json.Unmarshal(body, auth); err != nil {
		return errors.Wrap(err, "ozon: decoding token response")
	}

	if auth.AccessToken == "" {
		return errors.New("ozon: token exchange returned an empty access token")
	}

	c.auth = auth

	logrus.WithFields(logrus.Fields{
		"account_id": c.Cred.AccountID,
		"client_id":  c.Cred.ClientID,
	}).Debug("Ozon token obtained")

	return nil
}
