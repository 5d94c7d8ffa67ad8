package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/ozmetrics/ozon-performance-sync/infrastructure/database/postgres"
	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
)

const (
	analyticsTable = "analytics_data ad"

	// insertChunkSize keeps each multi-row INSERT well below the
	// 65535-parameter limit of the Postgres protocol.
	insertChunkSize = 500
)

var analyticsColumns = []string{
	"account_id", "api_id", "actionnum", "data",
	"pagetype", "viewtype", "request_type", "platform", "banner",
	"views", "clicks", "ctr", "cpm", "audience",
	"expense", "exp_bonus",
	"order_id", "order_number", "ozon_id", "ozon_id_ad_sku", "articul", "name",
	"orders", "orders_model", "price", "revenue", "revenue_model",
	"avrg_bid", "search_price_perc", "search_price_rur",
}

type AnalyticsRepository interface {
	LastDate() (*time.Time, error)
	GetWindow(dateFrom, dateTo time.Time, campaigns []string) ([]domain.AnalyticsRow, error)
	InsertRows(rows []domain.AnalyticsRow) error
}

type analyticsRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsRepository(conn *postgres.Connection) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

// LastDate returns the newest report date already persisted, nil on an
// empty table.
func (r *analyticsRepository) LastDate() (*time.Time, error) {
	query, args, err := squirrel.
		Select("max(ad.data)").
		From(analyticsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building last date query: %w", err)
	}

	var last pq.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&last); err != nil {
		return nil, fmt.Errorf("querying last date: %w", err)
	}

	if !last.Valid {
		return nil, nil
	}

	return &last.Time, nil
}

// GetWindow loads every persisted row whose report date falls inside
// [dateFrom, dateTo], optionally restricted to a campaign set. An empty
// set means no campaign predicate, so one query can serve a whole run.
func (r *analyticsRepository) GetWindow(dateFrom, dateTo time.Time, campaigns []string) ([]domain.AnalyticsRow, error) {
	columns := make([]string, 0, len(analyticsColumns)+1)
	columns = append(columns, "ad.id")
	for _, column := range analyticsColumns {
		columns = append(columns, "ad."+column)
	}

	builder := squirrel.
		Select(columns...).
		From(analyticsTable).
		Where(squirrel.GtOrEq{"ad.data": dateFrom.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ad.data": dateTo.Format("2006-01-02")})

	if len(campaigns) > 0 {
		builder = builder.Where(squirrel.Eq{"ad.actionnum": campaigns})
	}

	query, args, err := builder.
		OrderBy("ad.data ASC", "ad.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building window query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying analytics window: %w", err)
	}
	defer rows.Close()

	window := make([]domain.AnalyticsRow, 0)
	for rows.Next() {
		row, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning analytics row: %w", err)
		}
		window = append(window, *row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analytics rows: %w", err)
	}

	return window, nil
}

// InsertRows appends the delta to analytics_data. Identities are
// assigned by the database, so incoming IDs are ignored.
func (r *analyticsRepository) InsertRows(rows []domain.AnalyticsRow) error {
	for start := 0; start < len(rows); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(rows) {
			end = len(rows)
		}

		if err := r.insertChunk(rows[start:end]); err != nil {
			return err
		}
	}

	return nil
}

func (r *analyticsRepository) insertChunk(rows []domain.AnalyticsRow) error {
	builder := squirrel.StatementBuilder.
		Insert("analytics_data").
		Columns(analyticsColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for i := range rows {
		row := &rows[i]
		builder = builder.Values(
			row.AccountID,
			row.APIID,
			row.Actionnum,
			row.Date.Format("2006-01-02"),
			row.PageType,
			row.ViewType,
			row.RequestType,
			row.Platform,
			row.Banner,
			row.Views,
			row.Clicks,
			row.CTR,
			row.CPM,
			row.Audience,
			row.Expense,
			row.ExpBonus,
			row.OrderID,
			row.OrderNumber,
			row.OzonID,
			row.OzonIDAdSKU,
			row.Articul,
			row.Name,
			row.Orders,
			row.OrdersModel,
			row.Price,
			row.Revenue,
			row.RevenueModel,
			row.AvgBid,
			row.SearchPricePct,
			row.SearchPriceRur,
		)
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("building insert query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing insert: %w", err)
	}

	return nil
}

func (r *analyticsRepository) scanRow(rows interface {
	Scan(dest ...interface{}) error
}) (*domain.AnalyticsRow, error) {
	row := &domain.AnalyticsRow{}

	err := rows.Scan(
		&row.ID,
		&row.AccountID,
		&row.APIID,
		&row.Actionnum,
		&row.Date,
		&row.PageType,
		&row.ViewType,
		&row.RequestType,
		&row.Platform,
		&row.Banner,
		&row.Views,
		&row.Clicks,
		&row.CTR,
		&row.CPM,
		&row.Audience,
		&row.Expense,
		&row.ExpBonus,
		&row.OrderID,
		&row.OrderNumber,
		&row.OzonID,
		&row.OzonIDAdSKU,
		&row.Articul,
		&row.Name,
		&row.Orders,
		&row.OrdersModel,
		&row.Price,
		&row.Revenue,
		&row.RevenueModel,
		&row.AvgBid,
		&row.SearchPricePct,
		&row.SearchPriceRur,
	)
	if err != nil {
		return nil, err
	}

	return row, nil
}
