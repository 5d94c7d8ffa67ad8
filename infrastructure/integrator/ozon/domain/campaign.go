package domain

// Campaign is one advertising campaign as listed by the Performance API.
type Campaign struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	State         string `json:"state"`
	AdvObjectType string `json:"advObjectType"`
}

// CampaignListResponse wraps GET /api/client/campaign.
type CampaignListResponse struct {
	List []Campaign `json:"list"`
}

// CampaignObject is one advertised entity inside a campaign.
type CampaignObject struct {
	ID string `json:"id"`
}

// ObjectListResponse wraps GET /api/client/campaign/{id}/objects.
type ObjectListResponse struct {
	List []CampaignObject `json:"list"`
}
