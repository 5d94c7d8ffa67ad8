package domain

// ReportStateReady is the terminal state of an async report. Every other
// state means the export is still being built.
const ReportStateReady = "OK"

// ReportIDResponse wraps the async "generate report" endpoints, which
// only return the handle of the scheduled export.
type ReportIDResponse struct {
	UUID string `json:"UUID"`
}

// ReportStatusResponse wraps GET /api/client/statistics/{uuid}.
type ReportStatusResponse struct {
	UUID  string `json:"UUID"`
	State string `json:"state"`
	Error string `json:"error"`
}

// StatisticsRequest is the body of the statistics and attribution
// generate-report endpoints.
type StatisticsRequest struct {
	Campaigns []string `json:"campaigns"`
	DateFrom  string   `json:"dateFrom"`
	DateTo    string   `json:"dateTo"`
	GroupBy   string   `json:"groupBy"`
}

// PhrasesRequest is the body of the phrase-level generate-report
// endpoint; it addresses a single campaign and its objects.
type PhrasesRequest struct {
	Campaigns []string `json:"campaigns"`
	Objects   []string `json:"objects"`
	DateFrom  string   `json:"dateFrom"`
	DateTo    string   `json:"dateTo"`
	GroupBy   string   `json:"groupBy"`
}
