package reconcile

import (
	"strconv"
	"strings"
	"time"

	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
	"github.com/sirupsen/logrus"
)

// The reports expose no stable per-row identifier, so rows are matched
// on their full comparison tuple. Any tuple seen more than once across
// the persisted window and the fresh dataset is removed from both sides;
// what survives without a store identity is genuinely new. This drops
// legitimately identical repeated events too, a known and accepted
// limitation of tuple matching.

// separator keeps tuple fields from bleeding into one another inside
// the comparison key.
const separator = "\x1f"

// Delta computes the rows of fresh that are absent from the persisted
// window. Persisted rows are first narrowed to the run's date range and
// to the campaigns the run actually re-fetched. Inputs are not mutated.
func Delta(persisted, fresh []domain.AnalyticsRow, period domain.DateRange) []domain.AnalyticsRow {
	campaigns := make(map[string]struct{}, len(fresh))
	for i := range fresh {
		campaigns[fresh[i].Actionnum] = struct{}{}
	}

	window := make([]*domain.AnalyticsRow, 0, len(persisted))
	for i := range persisted {
		row := &persisted[i]
		if row.Date.Before(period.From) || row.Date.After(period.To) {
			continue
		}
		if _, ok := campaigns[row.Actionnum]; !ok {
			continue
		}
		window = append(window, row)
	}

	counts := make(map[string]int, len(window)+len(fresh))
	for _, row := range window {
		counts[comparisonKey(row)]++
	}
	freshKeys := make([]string, len(fresh))
	for i := range fresh {
		freshKeys[i] = comparisonKey(&fresh[i])
		counts[freshKeys[i]]++
	}

	delta := make([]domain.AnalyticsRow, 0)
	for i := range fresh {
		if fresh[i].Persisted() {
			continue
		}
		if counts[freshKeys[i]] == 1 {
			delta = append(delta, fresh[i])
		}
	}

	logrus.WithFields(logrus.Fields{
		"fresh":  len(fresh),
		"window": len(window),
		"delta":  len(delta),
	}).Info("Reconciliation finished")

	return delta
}

// comparisonKey builds the full matching tuple of a row. Every "no
// value" spelling collapses to the same sentinel first, so rows sourced
// from the API and from Postgres compare equal.
func comparisonKey(row *domain.AnalyticsRow) string {
	parts := []string{
		normString(&row.Actionnum),
		row.Date.Format(time.DateOnly),
		normString(row.RequestType),
		normString(row.ViewType),
		normString(row.Platform),
		normFloat(row.Views),
		normFloat(row.Clicks),
		normFloat(row.CTR),
		normFloat(row.Audience),
		normFloat(row.CPM),
		normFloat(row.Expense),
		normString(row.OrderID),
		normString(row.OrderNumber),
		normString(row.OzonID),
		normString(row.OzonIDAdSKU),
		normString(row.Articul),
		normString(row.Name),
		normFloat(row.Orders),
		normFloat(row.Price),
		normFloat(row.Revenue),
		normFloat(row.SearchPricePct),
		normFloat(row.SearchPriceRur),
	}

	return strings.Join(parts, separator)
}

func normString(value *string) string {
	if value == nil {
		return domain.MissingValue
	}

	v := strings.TrimSpace(*value)
	if v == "" || v == "None" || v == domain.MissingValue {
		return domain.MissingValue
	}

	return v
}

func normFloat(value *float64) string {
	if value == nil {
		return domain.MissingValue
	}

	return strconv.FormatFloat(*value, 'f', -1, 64)
}
