package domain

import "time"

// MissingValue is the sentinel every "no value" representation is
// normalized to before rows are compared. The upstream reports mix
// empty strings, literal "None" and absent columns for the same thing.
const MissingValue = "nan"

// AnalyticsRow is one record of the unified performance dataset, the
// shape of the analytics_data table. ID is the store identity: nil for
// rows built from freshly fetched reports, set for rows read back from
// Postgres. Pointer fields are nil when the source report had no value.
type AnalyticsRow struct {
	ID *int64

	// Provenance added at parse time.
	AccountID string
	APIID     string

	// Actionnum is the campaign identifier recovered from the report
	// trailer line.
	Actionnum string
	Date      time.Time

	PageType    *string
	ViewType    *string
	RequestType *string
	Platform    *string
	Banner      *string

	Views          *float64
	Clicks         *float64
	CTR            *float64
	CPM            *float64
	Audience       *float64
	Expense        *float64
	ExpBonus       *float64
	OrderID        *string
	OrderNumber    *string
	OzonID         *string
	OzonIDAdSKU    *string
	Articul        *string
	Name           *string
	Orders         *float64
	OrdersModel    *float64
	Price          *float64
	Revenue        *float64
	RevenueModel   *float64
	AvgBid         *float64
	SearchPricePct *float64
	SearchPriceRur *float64
}

// Persisted reports whether the row carries a store identity, i.e. it
// originated from the database rather than from a fresh report.
func (r *AnalyticsRow) Persisted() bool {
	return r.ID != nil
}
