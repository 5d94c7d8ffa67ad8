package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// The statistics exports come in two legacy header layouts depending on
// the report sub-type. fieldSources maps each canonical column to its
// candidate source headers; the first non-empty value wins, both source
// columns are consumed. Adding a third layout means adding names here,
// not code.
var fieldSources = []struct {
	canonical string
	sources   []string
}{
	{"data", []string{"Дата", "День"}},
	{"name", []string{"Наименование", "Название товара"}},
	{"orders", []string{"Количество", "Заказы"}},
	{"price", []string{"Цена продажи", "Цена товара (руб.)"}},
	{"revenue", []string{"Выручка (руб.)", "Стоимость, руб."}},
	{"expense", []string{"Расход (руб., с НДС)", "Расход, руб."}},
	{"order_id", []string{"ID заказа"}},
	{"order_number", []string{"Номер заказа"}},
	{"ozon_id", []string{"Ozon ID"}},
	{"ozon_id_ad_sku", []string{"Ozon ID рекламируемого товара"}},
	{"articul", []string{"Артикул"}},
	{"search_price_perc", []string{"Ставка, %"}},
	{"search_price_rur", []string{"Ставка, руб."}},
	{"pagetype", []string{"Тип страницы"}},
	{"viewtype", []string{"Условие показа"}},
	{"request_type", []string{"Тип условия"}},
	{"platform", []string{"Платформа"}},
	{"banner", []string{"Баннер"}},
	{"views", []string{"Показы"}},
	{"clicks", []string{"Клики"}},
	{"ctr", []string{"CTR (%)"}},
	{"cpm", []string{"Средняя ставка за 1000 показов (руб.)"}},
	{"audience", []string{"Охват"}},
	{"orders_model", []string{"Заказы модели"}},
	{"revenue_model", []string{"Выручка с заказов модели (руб.)"}},
	{"avrg_bid", []string{"Средняя ставка (руб.)"}},
	{"exp_bonus", []string{"Расход за минусом бонусов (руб., с НДС)"}},
}

// reportDateLayout is the day-month-year format used inside the exports,
// unlike the ISO dates of the API requests.
const reportDateLayout = "02.01.2006"

// minPopulatedCells drops the decorative separator rows the exports
// contain; a real data row carries at least this many values.
const minPopulatedCells = 10

// BuildDataset reads every statistics CSV produced by a run and merges
// them into one canonical table. Directories that do not follow the
// "{account_id}-{client_id}" naming are skipped, as are unparsable
// files; one bad input never discards its siblings.
func BuildDataset(runDir string) ([]domain.AnalyticsRow, error) {
	accounts, err := os.ReadDir(runDir)
	if err != nil {
		return nil, fmt.Errorf("reading run directory: %w", err)
	}

	var rows []domain.AnalyticsRow
	for _, account := range accounts {
		if !account.IsDir() {
			continue
		}

		accountID, apiID, ok := splitAccountDir(account.Name())
		if !ok {
			logrus.WithField("dir", account.Name()).Warn("Directory name does not look like {account}-{client}, skipping")
			continue
		}

		files, err := filepath.Glob(filepath.Join(runDir, account.Name(), "statistics", "*.csv"))
		if err != nil {
			return nil, fmt.Errorf("globbing statistics files: %w", err)
		}

		for _, file := range files {
			parsed, err := parseStatisticsFile(file, accountID, apiID)
			if err != nil {
				logrus.WithError(err).WithField("file", file).Warn("Skipping unparsable statistics file")
				continue
			}
			rows = append(rows, parsed...)
		}
	}

	logrus.WithField("rows", len(rows)).Info("Unified dataset built")

	return rows, nil
}

func splitAccountDir(name string) (accountID, apiID string, ok bool) {
	parts := strings.SplitN(name, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// parseStatisticsFile turns one export into canonical rows. The file
// starts with a trailer line naming the campaign, then the real header,
// then data, then a synthetic totals row.
func parseStatisticsFile(path, accountID, apiID string) ([]domain.AnalyticsRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv")
	}

	// Trailer, header, at least one data row, totals row.
	if len(records) < 4 {
		return nil, nil
	}

	campaign := campaignFromTrailer(records[0])
	if campaign == "" {
		return nil, errors.New("campaign label missing from trailer line")
	}

	header := records[1]
	data := records[2 : len(records)-1]

	rows := make([]domain.AnalyticsRow, 0, len(data))
	for _, record := range data {
		values := recordToMap(header, record)
		if len(values) < minPopulatedCells {
			continue
		}

		row := domain.AnalyticsRow{
			AccountID: accountID,
			APIID:     apiID,
			Actionnum: campaign,
		}

		ok := true
		for _, field := range fieldSources {
			value := firstNonEmpty(values, field.sources)
			if value == "" {
				continue
			}
			if err := setField(&row, field.canonical, value); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"file":   path,
					"column": field.canonical,
				}).Warn("Dropping row with uncoercible value")
				ok = false
				break
			}
		}
		if ok {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// campaignFromTrailer recovers the campaign id from the report title
// line, e.g. "Статистика по кампании № 4535384, 01.06-30.06" -> 4535384.
func campaignFromTrailer(trailer []string) string {
	if len(trailer) == 0 {
		return ""
	}

	title := strings.SplitN(trailer[len(trailer)-1], ",", 2)[0]
	tokens := strings.Fields(title)
	if len(tokens) == 0 {
		return ""
	}

	return tokens[len(tokens)-1]
}

// recordToMap pairs the header with one record, dropping unnamed columns
// and blank cells.
func recordToMap(header, record []string) map[string]string {
	values := make(map[string]string, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" || i >= len(record) {
			continue
		}
		value := strings.TrimSpace(record[i])
		if value == "" || value == "None" || value == domain.MissingValue {
			continue
		}
		values[name] = value
	}
	return values
}

func firstNonEmpty(values map[string]string, sources []string) string {
	for _, source := range sources {
		if v, ok := values[source]; ok {
			return v
		}
	}
	return ""
}

// setField coerces one canonical value into its typed slot. Numeric
// columns mirror the analytics_data schema; everything else stays text.
func setField(row *domain.AnalyticsRow, canonical, value string) error {
	switch canonical {
	case "data":
		date, err := time.Parse(reportDateLayout, value)
		if err != nil {
			return fmt.Errorf("parsing date %q: %w", value, err)
		}
		row.Date = date
	case "name":
		row.Name = &value
	case "pagetype":
		row.PageType = &value
	case "viewtype":
		row.ViewType = &value
	case "request_type":
		row.RequestType = &value
	case "platform":
		row.Platform = &value
	case "banner":
		row.Banner = &value
	case "order_id":
		row.OrderID = &value
	case "order_number":
		row.OrderNumber = &value
	case "ozon_id":
		row.OzonID = &value
	case "ozon_id_ad_sku":
		row.OzonIDAdSKU = &value
	case "articul":
		row.Articul = &value
	default:
		number, err := parseDecimal(value)
		if err != nil {
			return fmt.Errorf("parsing %s value %q: %w", canonical, value, err)
		}
		switch canonical {
		case "views":
			row.Views = number
		case "clicks":
			row.Clicks = number
		case "ctr":
			row.CTR = number
		case "cpm":
			row.CPM = number
		case "audience":
			row.Audience = number
		case "expense":
			row.Expense = number
		case "exp_bonus":
			row.ExpBonus = number
		case "orders":
			row.Orders = number
		case "orders_model":
			row.OrdersModel = number
		case "price":
			row.Price = number
		case "revenue":
			row.Revenue = number
		case "revenue_model":
			row.RevenueModel = number
		case "avrg_bid":
			row.AvgBid = number
		case "search_price_perc":
			row.SearchPricePct = number
		case "search_price_rur":
			row.SearchPriceRur = number
		default:
			return fmt.Errorf("unknown canonical column %q", canonical)
		}
	}

	return nil
}

// parseDecimal accepts the decimal-comma formatting of the exports.
func parseDecimal(value string) (*float64, error) {
	normalized := strings.ReplaceAll(value, ",", ".")
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, " ", "")
	if normalized == "" {
		return nil, nil
	}

	number, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil, err
	}

	return &number, nil
}
