package repos

import (
	"context"
	"database/sql/driver"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
)

// tsLayout sorts lexically in time order; timestamps are always UTC.
const tsLayout = "2006-01-02T15:04:05.000000000Z"

// SQLStore keeps the same documents as the Mongo store in an embedded
// sqlite file. Used for local development and tests.
type SQLStore struct {
	DB       *sqlx.DB
	name     string
	products *ProductRepo
	orders   *OrderRepo
}

// fold(x) lowercases text the same way strings.ToLower does. sqlite's own
// LOWER only handles ASCII.
func init() {
	sqlite.MustRegisterDeterministicScalarFunction("fold", 1,
		func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			switch v := args[0].(type) {
			case string:
				return strings.ToLower(v), nil
			case []byte:
				return strings.ToLower(string(v)), nil
			}
			return args[0], nil
		})
}

func OpenDB(dsn string) (*SQLStore, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite serializes writers anyway, and ":memory:" is per connection.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(dsn), filepath.Ext(dsn))
	if dsn == ":memory:" {
		name = "memory"
	}
	return &SQLStore{
		DB:       db,
		name:     name,
		products: NewProductRepo(db),
		orders:   NewOrderRepo(db),
	}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Products
CREATE TABLE IF NOT EXISTS product(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT,
  price REAL NOT NULL CHECK (price >= 0),
  category TEXT NOT NULL,
  brand TEXT,
  images_json TEXT NOT NULL DEFAULT '[]',
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  specifications_json TEXT NOT NULL DEFAULT '{}',
  featured INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_product_category ON product(category);
CREATE INDEX IF NOT EXISTS idx_product_featured ON product(featured);

-- Orders
CREATE TABLE IF NOT EXISTS "order"(
  id TEXT PRIMARY KEY,
  items_json TEXT NOT NULL,
  customer_json TEXT NOT NULL,
  subtotal REAL NOT NULL,
  shipping REAL NOT NULL DEFAULT 0,
  total REAL NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  notes TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_order_created_at ON "order"(created_at);
`
	_, err := db.Exec(schema)
	return err
}

func (s *SQLStore) Products() ProductStore { return s.products }
func (s *SQLStore) Orders() OrderStore     { return s.orders }
func (s *SQLStore) Name() string           { return s.name }

func (s *SQLStore) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.DB.SelectContext(ctx, &names, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	return names, err
}

func (s *SQLStore) Close(context.Context) error { return s.DB.Close() }

func formatTS(t time.Time) string { return t.UTC().Format(tsLayout) }

func parseTS(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(tsLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
