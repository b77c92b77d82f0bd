package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
)

const marketPriceColumns = `price_id, user_id, commodity_name, category, unit, price, market_location, date, source, created_at`

type SQLCMarketPriceGateway struct {
	DB *sql.DB
}

var _ MarketPriceGateway = (*SQLCMarketPriceGateway)(nil)

func NewSQLCMarketPriceGateway(db *sql.DB) *SQLCMarketPriceGateway {
	return &SQLCMarketPriceGateway{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMarketPrice(row rowScanner) (entity.MarketPrice, error) {
	var price entity.MarketPrice
	var userID sql.NullInt64
	var category, source sql.NullString

	err := row.Scan(&price.PriceID, &userID, &price.CommodityName, &category, &price.Unit,
		&price.Price, &price.MarketLocation, &price.Date, &source, &price.CreatedAt)
	if err != nil {
		return price, err
	}

	if userID.Valid {
		id := userID.Int64
		price.UserID = &id
	}
	price.Category = category.String
	price.Source = source.String
	return price, nil
}

func (gateway *SQLCMarketPriceGateway) FindAll(ctx context.Context, filter model.MarketFilter) ([]entity.MarketPrice, error) {
	query := `SELECT ` + marketPriceColumns + ` FROM market_prices WHERE 1=1`

	args := []interface{}{}
	argCount := 0

	if filter.Commodity != "" {
		argCount++
		query += fmt.Sprintf(" AND commodity_name ILIKE $%d", argCount)
		args = append(args, "%"+filter.Commodity+"%")
	}

	if filter.Location != "" {
		argCount++
		query += fmt.Sprintf(" AND market_location ILIKE $%d", argCount)
		args = append(args, "%"+filter.Location+"%")
	}

	if filter.StartDate != "" {
		argCount++
		query += fmt.Sprintf(" AND date >= $%d", argCount)
		args = append(args, filter.StartDate)
	}

	if filter.EndDate != "" {
		argCount++
		query += fmt.Sprintf(" AND date <= $%d", argCount)
		args = append(args, filter.EndDate)
	}

	query += " ORDER BY date DESC, price_id DESC"

	if filter.Limit > 0 {
		argCount++
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, filter.Limit)
	}

	rows, err := gateway.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make([]entity.MarketPrice, 0)
	for rows.Next() {
		price, err := scanMarketPrice(rows)
		if err != nil {
			return nil, err
		}
		prices = append(prices, price)
	}

	return prices, rows.Err()
}

func (gateway *SQLCMarketPriceGateway) FindByID(ctx context.Context, id int64) (*entity.MarketPrice, error) {
	row := gateway.DB.QueryRowContext(ctx,
		`SELECT `+marketPriceColumns+` FROM market_prices WHERE price_id = $1`, id)

	price, err := scanMarketPrice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func (gateway *SQLCMarketPriceGateway) Create(ctx context.Context, price entity.MarketPrice) (*entity.MarketPrice, error) {
	row := gateway.DB.QueryRowContext(ctx, `
		INSERT INTO market_prices (user_id, commodity_name, category, unit, price, market_location, date, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING `+marketPriceColumns,
		price.UserID, price.CommodityName, nullIfEmpty(price.Category), price.Unit,
		price.Price, price.MarketLocation, price.Date, nullIfEmpty(price.Source))

	created, err := scanMarketPrice(row)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (gateway *SQLCMarketPriceGateway) Update(ctx context.Context, price entity.MarketPrice) (*entity.MarketPrice, error) {
	row := gateway.DB.QueryRowContext(ctx, `
		UPDATE market_prices
		SET commodity_name = $1, category = $2, unit = $3, price = $4, market_location = $5, date = $6, source = $7
		WHERE price_id = $8
		RETURNING `+marketPriceColumns,
		price.CommodityName, nullIfEmpty(price.Category), price.Unit, price.Price,
		price.MarketLocation, price.Date, nullIfEmpty(price.Source), price.PriceID)

	updated, err := scanMarketPrice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (gateway *SQLCMarketPriceGateway) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := gateway.DB.ExecContext(ctx, `DELETE FROM market_prices WHERE price_id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (gateway *SQLCMarketPriceGateway) Commodities(ctx context.Context) ([]string, error) {
	rows, err := gateway.DB.QueryContext(ctx,
		`SELECT DISTINCT commodity_name FROM market_prices WHERE commodity_name <> '' ORDER BY commodity_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (gateway *SQLCMarketPriceGateway) UpsertAll(ctx context.Context, prices []entity.MarketPrice) (int, error) {
	if len(prices) == 0 {
		return 0, nil
	}

	tx, err := gateway.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO market_prices (user_id, commodity_name, category, unit, price, market_location, date, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (commodity_name, market_location, date)
		DO UPDATE SET price = EXCLUDED.price, unit = EXCLUDED.unit,
			category = COALESCE(EXCLUDED.category, market_prices.category),
			source = EXCLUDED.source`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	saved := 0
	for _, price := range prices {
		_, err := stmt.ExecContext(ctx, price.UserID, price.CommodityName, nullIfEmpty(price.Category),
			price.Unit, price.Price, price.MarketLocation, price.Date, nullIfEmpty(price.Source))
		if err != nil {
			return 0, fmt.Errorf("upsert %s @ %s: %w", price.CommodityName, price.MarketLocation, err)
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return saved, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
