package sqlc

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"ecoscope/pkg/log"
	"ecoscope/pkg/resource"
)

var Db *sql.DB

const marketPricesDDL = `
CREATE TABLE IF NOT EXISTS market_prices (
	price_id        BIGSERIAL PRIMARY KEY,
	user_id         BIGINT REFERENCES users(user_id) ON DELETE SET NULL,
	commodity_name  VARCHAR(100) NOT NULL,
	category        VARCHAR(50),
	unit            VARCHAR(20) NOT NULL,
	price           NUMERIC(12, 2) NOT NULL CHECK (price > 0),
	market_location VARCHAR(100) NOT NULL,
	date            DATE NOT NULL DEFAULT CURRENT_DATE,
	source          VARCHAR(50),
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS market_prices_commodity_location_date
	ON market_prices (commodity_name, market_location, date);
CREATE INDEX IF NOT EXISTS market_prices_date ON market_prices (date DESC);
`

func init() {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")
	sslMode := "disable"

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		host, port, username, password, database, sslMode, schema)

	var err error
	Db, err = sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open DB", zap.Error(err))
	}

	if err = Db.Ping(); err != nil {
		log.Fatal("Failed to ping DB", zap.Error(err))
	}

	Db.SetMaxOpenConns(resource.GetInt("app.db.max-open-conns"))
	Db.SetMaxIdleConns(resource.GetInt("app.db.max-idle-conns"))
}

// Migrate creates the market_prices table. It runs after the gorm package
// has created users, which the foreign key points at.
func Migrate() error {
	_, err := Db.Exec(marketPricesDDL)
	return err
}
