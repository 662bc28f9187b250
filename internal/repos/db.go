package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the catalog if the DB is empty (idempotent; safe on every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  title TEXT NOT NULL,
  description TEXT,
  product_type TEXT NOT NULL,
  base_price NUMERIC NOT NULL CHECK (base_price >= 0),
  image TEXT,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_type     ON products(product_type);

-- Whole-value JSON documents: active carts, saved carts, saved-for-later
CREATE TABLE IF NOT EXISTS kv_store(
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories/products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name) VALUES
	  ('blinds','Blinds'),
	  ('shades','Shades'),
	  ('services','Services')`)

	tx.MustExec(`INSERT INTO products(id,category_id,title,description,product_type,base_price,image) VALUES
	  ('faux-wood-2in','blinds','2" Faux Wood Blinds','Moisture-resistant PVC slats, great for kitchens and baths.','faux-wood',39.99,'products/faux-wood-2in/main.jpg'),
	  ('wood-premium','blinds','Premium Hardwood Blinds','Basswood slats with furniture-grade stain finishes.','wood',129.99,'products/wood-premium/main.jpg'),
	  ('aluminum-1in','blinds','1" Aluminum Mini Blinds','Durable 6-gauge aluminum slats in designer colors.','aluminum',34.99,'products/aluminum-1in/main.jpg'),
	  ('cellular-double','shades','Double Cell Cellular Shades','Honeycomb insulation for energy efficiency.','cellular',89.99,'products/cellular-double/main.jpg'),
	  ('roller-classic','shades','Classic Roller Shades','Clean lines with a smooth spring roller.','roller',49.99,'products/roller-classic/main.jpg'),
	  ('roman-tailored','shades','Tailored Roman Shades','Soft fabric folds, flat-front style.','roman',79.99,'products/roman-tailored/main.jpg'),
	  ('woven-bamboo','shades','Woven Wood Bamboo Shades','Natural bamboo and reed weaves.','woven',99.99,'products/woven-bamboo/main.jpg')`)

	return tx.Commit()
}
