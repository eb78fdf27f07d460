package main

import (
	"log"
	"os"

	"restaurant-pos-be/internal/model"
	"restaurant-pos-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. AutoMigrate All Models
	models := []interface{}{
		&model.Table{},
		&model.Product{},
		&model.TableSession{},
		&model.Order{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Post-Migration: constraints AutoMigrate doesn't cover.
	// The partial unique index is what makes "one open session per table" hold
	// under concurrent opens; the FKs keep orphan sessions/orders out.
	constraintSQL := []string{
		`ALTER TABLE tables_sessions DROP CONSTRAINT IF EXISTS fk_tables_sessions_table;`,
		`ALTER TABLE tables_sessions ADD CONSTRAINT fk_tables_sessions_table FOREIGN KEY (table_id) REFERENCES tables (id);`,

		`ALTER TABLE orders DROP CONSTRAINT IF EXISTS fk_orders_table_session;`,
		`ALTER TABLE orders ADD CONSTRAINT fk_orders_table_session FOREIGN KEY (table_session_id) REFERENCES tables_sessions (id);`,

		`ALTER TABLE orders DROP CONSTRAINT IF EXISTS fk_orders_product;`,
		`ALTER TABLE orders ADD CONSTRAINT fk_orders_product FOREIGN KEY (product_id) REFERENCES products (id);`,

		`CREATE UNIQUE INDEX IF NOT EXISTS idx_tables_sessions_one_open_per_table
			ON tables_sessions (table_id) WHERE closed_at IS NULL;`,
	}

	for _, sql := range constraintSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Fatalf("Error: Failed to apply constraint SQL: %v", err)
		}
	}

	log.Println("Migration completed!")
}
