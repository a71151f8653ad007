package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/marketpulse/marketpulse-api/infrastructure/database/postgres"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/pkg/utils"
	"github.com/shopspring/decimal"
)

const (
	salesTable = "sales s"

	saleColumns = "s.id, s.user_id, s.platform, s.order_id, s.item_id, s.item_title, " +
		"s.quantity, s.unit_price, s.currency, s.buyer_name, s.buyer_email, s.sale_date, " +
		"s.status, s.shipping_address, s.tracking_number, s.is_sample, s.created_at"

	// uniqueViolation is the Postgres error code raised on dedup key clashes.
	uniqueViolation = "23505"
)

// SaleTotals are the scalar aggregates over one filtered sale set, split by
// sample/real so the demo classification needs no second query.
type SaleTotals struct {
	Revenue    decimal.Decimal
	SalesCount int
	SampleRows int
	RealRows   int
}

type SaleRepository interface {
	InsertIfAbsent(sale *domain.Sale) (bool, error)
	List(userID string, filter *domain.SaleFilter, page, limit int) ([]*domain.Sale, error)
	Count(userID string, filter *domain.SaleFilter) (int, error)
	Totals(userID string, filter *domain.SaleFilter) (*SaleTotals, error)
	PlatformBreakdown(userID string, filter *domain.SaleFilter) ([]domain.PlatformRevenue, error)
	DailyTrend(userID string, filter *domain.SaleFilter) ([]domain.TrendPoint, error)
	TopItems(userID string, filter *domain.SaleFilter, limit int) ([]domain.TopItem, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// applySaleFilter is the single place the typed sale filter becomes SQL.
// Both the listing endpoint and every analytics aggregate go through it, so
// the filter semantics cannot drift apart.
func applySaleFilter(builder squirrel.SelectBuilder, userID string, filter *domain.SaleFilter) squirrel.SelectBuilder {
	builder = builder.Where(squirrel.Eq{"s.user_id": userID})

	if filter == nil {
		return builder
	}

	if filter.Platform != nil {
		builder = builder.Where(squirrel.Eq{"s.platform": *filter.Platform})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"s.sale_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"s.sale_date": *filter.EndDate})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"s.item_title": pattern},
			squirrel.ILike{"s.order_id": pattern},
			squirrel.ILike{"s.buyer_name": pattern},
		})
	}

	return builder
}

// InsertIfAbsent writes the sale unless a row with the same
// (user_id, platform, order_id, item_id) already exists; the existing row is
// never overwritten. Returns whether a row was inserted.
func (r *saleRepository) InsertIfAbsent(sale *domain.Sale) (bool, error) {
	if sale.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return false, fmt.Errorf("generating sale id: %w", err)
		}
		sale.ID = id
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now().UTC()
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("sales").
		Columns("id", "user_id", "platform", "order_id", "item_id", "item_title",
			"quantity", "unit_price", "currency", "buyer_name", "buyer_email", "sale_date",
			"status", "shipping_address", "tracking_number", "is_sample", "created_at").
		Values(sale.ID, sale.UserID, sale.Platform, sale.OrderID, sale.ItemID, sale.ItemTitle,
			sale.Quantity, sale.UnitPrice, sale.Currency, sale.BuyerName, sale.BuyerEmail, sale.SaleDate,
			sale.Status, sale.ShippingAddress, sale.TrackingNumber, sale.IsSample, sale.CreatedAt).
		Suffix("ON CONFLICT (user_id, platform, order_id, item_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			// Concurrent insert of the same dedup key; a no-op, not an error.
			return false, nil
		}
		return false, fmt.Errorf("inserting sale: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *saleRepository) List(userID string, filter *domain.SaleFilter, page, limit int) ([]*domain.Sale, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	builder := applySaleFilter(squirrel.Select(saleColumns).From(salesTable), userID, filter).
		OrderBy("s.sale_date DESC, s.id ASC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale rows: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) Count(userID string, filter *domain.SaleFilter) (int, error) {
	builder := applySaleFilter(squirrel.Select("COUNT(*)").From(salesTable), userID, filter).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("building query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting sales: %w", err)
	}

	return count, nil
}

func (r *saleRepository) Totals(userID string, filter *domain.SaleFilter) (*SaleTotals, error) {
	builder := applySaleFilter(squirrel.Select(
		"COALESCE(SUM(s.unit_price * s.quantity), 0)",
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE s.is_sample)",
		"COUNT(*) FILTER (WHERE NOT s.is_sample)",
	).From(salesTable), userID, filter).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	totals := &SaleTotals{}
	err = r.conn.QueryRow(query, args...).Scan(
		&totals.Revenue,
		&totals.SalesCount,
		&totals.SampleRows,
		&totals.RealRows,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning totals: %w", err)
	}

	return totals, nil
}

func (r *saleRepository) PlatformBreakdown(userID string, filter *domain.SaleFilter) ([]domain.PlatformRevenue, error) {
	builder := applySaleFilter(squirrel.Select(
		"s.platform",
		"COALESCE(SUM(s.unit_price * s.quantity), 0)",
		"COUNT(*)",
	).From(salesTable), userID, filter).
		GroupBy("s.platform").
		OrderBy("SUM(s.unit_price * s.quantity) DESC").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	breakdown := make([]domain.PlatformRevenue, 0)
	for rows.Next() {
		var entry domain.PlatformRevenue
		if err := rows.Scan(&entry.Platform, &entry.Revenue, &entry.SalesCount); err != nil {
			return nil, fmt.Errorf("scanning platform breakdown: %w", err)
		}
		breakdown = append(breakdown, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating breakdown rows: %w", err)
	}

	return breakdown, nil
}

func (r *saleRepository) DailyTrend(userID string, filter *domain.SaleFilter) ([]domain.TrendPoint, error) {
	builder := applySaleFilter(squirrel.Select(
		"DATE_TRUNC('day', s.sale_date) AS day",
		"COALESCE(SUM(s.unit_price * s.quantity), 0)",
		"COUNT(*)",
	).From(salesTable), userID, filter).
		GroupBy("day").
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	trend := make([]domain.TrendPoint, 0)
	for rows.Next() {
		var point domain.TrendPoint
		if err := rows.Scan(&point.Date, &point.Revenue, &point.SalesCount); err != nil {
			return nil, fmt.Errorf("scanning trend point: %w", err)
		}
		trend = append(trend, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trend rows: %w", err)
	}

	return trend, nil
}

func (r *saleRepository) TopItems(userID string, filter *domain.SaleFilter, limit int) ([]domain.TopItem, error) {
	if limit < 1 {
		limit = 8
	}

	builder := applySaleFilter(squirrel.Select(
		"s.item_title",
		"s.platform",
		"COALESCE(SUM(s.unit_price * s.quantity), 0) AS revenue",
		"COALESCE(SUM(s.quantity), 0)",
		"COUNT(*)",
	).From(salesTable), userID, filter).
		GroupBy("s.item_title", "s.platform").
		OrderBy("revenue DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.TopItem, 0)
	for rows.Next() {
		var item domain.TopItem
		if err := rows.Scan(&item.ItemTitle, &item.Platform, &item.Revenue, &item.UnitsSold, &item.SalesCount); err != nil {
			return nil, fmt.Errorf("scanning top item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating top item rows: %w", err)
	}

	return items, nil
}

func scanSale(rows *sql.Rows) (*domain.Sale, error) {
	sale := &domain.Sale{}

	err := rows.Scan(
		&sale.ID,
		&sale.UserID,
		&sale.Platform,
		&sale.OrderID,
		&sale.ItemID,
		&sale.ItemTitle,
		&sale.Quantity,
		&sale.UnitPrice,
		&sale.Currency,
		&sale.BuyerName,
		&sale.BuyerEmail,
		&sale.SaleDate,
		&sale.Status,
		&sale.ShippingAddress,
		&sale.TrackingNumber,
		&sale.IsSample,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return sale, nil
}
