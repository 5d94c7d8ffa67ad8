package reconcile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
)

// deltaHeader is the canonical column order of the delta file, the
// analytics_data schema minus the store identity.
var deltaHeader = []string{
	"account_id", "api_id", "actionnum", "data",
	"pagetype", "viewtype", "request_type", "platform", "banner",
	"views", "clicks", "ctr", "cpm", "audience",
	"expense", "exp_bonus",
	"order_id", "order_number", "ozon_id", "ozon_id_ad_sku", "articul", "name",
	"orders", "orders_model", "price", "revenue", "revenue_model",
	"avrg_bid", "search_price_perc", "search_price_rur",
}

// WriteDeltaCSV writes the delta set as a semicolon-delimited file,
// missing values as empty cells.
func WriteDeltaCSV(path string, rows []domain.AnalyticsRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating delta file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = ';'

	if err := writer.Write(deltaHeader); err != nil {
		return fmt.Errorf("writing delta header: %w", err)
	}

	for i := range rows {
		if err := writer.Write(deltaRecord(&rows[i])); err != nil {
			return fmt.Errorf("writing delta row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func deltaRecord(row *domain.AnalyticsRow) []string {
	return []string{
		row.AccountID,
		row.APIID,
		row.Actionnum,
		row.Date.Format(time.DateOnly),
		cell(row.PageType),
		cell(row.ViewType),
		cell(row.RequestType),
		cell(row.Platform),
		cell(row.Banner),
		numCell(row.Views),
		numCell(row.Clicks),
		numCell(row.CTR),
		numCell(row.CPM),
		numCell(row.Audience),
		numCell(row.Expense),
		numCell(row.ExpBonus),
		cell(row.OrderID),
		cell(row.OrderNumber),
		cell(row.OzonID),
		cell(row.OzonIDAdSKU),
		cell(row.Articul),
		cell(row.Name),
		numCell(row.Orders),
		numCell(row.OrdersModel),
		numCell(row.Price),
		numCell(row.Revenue),
		numCell(row.RevenueModel),
		numCell(row.AvgBid),
		numCell(row.SearchPricePct),
		numCell(row.SearchPriceRur),
	}
}

func cell(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func numCell(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
