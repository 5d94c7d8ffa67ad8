package domain

import (
	"fmt"
	"time"
)

// ReportKind is one of the report families exposed by the Ozon
// Performance statistics API.
type ReportKind string

const (
	ReportKindStatistics  ReportKind = "statistics"
	ReportKindPhrases     ReportKind = "phrases"
	ReportKindAttribution ReportKind = "attribution"
	ReportKindMedia       ReportKind = "media"
	ReportKindProduct     ReportKind = "product"
	ReportKindDaily       ReportKind = "daily"
)

// ReportFormat is the container format of a generated report file.
type ReportFormat string

const (
	// ReportFormatCSV is returned when exactly one campaign was requested.
	ReportFormatCSV ReportFormat = "csv"
	// ReportFormatZip is returned for multi-campaign requests: one CSV
	// per campaign packed into a single archive.
	ReportFormatZip ReportFormat = "zip"
)

// ReportHandle references an asynchronously generated report. It is
// polled until ready and then exchanged exactly once for the content.
type ReportHandle struct {
	UUID   string
	Format ReportFormat
}

// DateRange is an inclusive [From, To] calendar range.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s-%s", r.From.Format(time.DateOnly), r.To.Format(time.DateOnly))
}

// CampaignObjects pairs a campaign with its advertised object ids.
// A slice of these keeps the enumeration order stable, which the
// batcher relies on.
type CampaignObjects struct {
	CampaignID string
	ObjectIDs  []string
}

// CampaignIDs extracts the campaign ids of a batch in order.
func CampaignIDs(batch []CampaignObjects) []string {
	ids := make([]string, 0, len(batch))
	for _, co := range batch {
		ids = append(ids, co.CampaignID)
	}
	return ids
}
