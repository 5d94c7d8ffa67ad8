package ozonclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	ozondomain "github.com/ozmetrics/ozon-performance-sync/infrastructure/integrator/ozon/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListCampaigns returns every campaign of the authenticated account.
func (c *OzonClient) ListCampaigns() ([]ozondomain.Campaign, error) {
	req, err := http.NewRequest(http.MethodGet, c.Cfg.BaseURL+"/api/client/campaign", nil)
	if err != nil {
		return nil, errors.Wrap(err, "ozon: building campaign list request")
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var response ozondomain.CampaignListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "ozon: decoding campaign list")
	}

	logrus.WithFields(logrus.Fields{
		"account_id": c.Cred.AccountID,
		"campaigns":  len(response.List),
	}).Debug("Campaigns listed")

	return response.List, nil
}

// ListCampaignObjects returns the ids of the advertised objects of one
// campaign.
func (c *OzonClient) ListCampaignObjects(campaignID string) ([]string, error) {
	url := fmt.Sprintf("%s/api/client/campaign/%s/objects", c.Cfg.BaseURL, campaignID)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ozon: building object list request")
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var response ozondomain.ObjectListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "ozon: decoding object list")
	}

	ids := make([]string, 0, len(response.List))
	for _, obj := range response.List {
		ids = append(ids, obj.ID)
	}

	return ids, nil
}
