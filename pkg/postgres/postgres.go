package postgres

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/jhorlensofteng-web/rifa-maria-iza/config"

	_ "github.com/lib/pq"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL")
	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS tickets (
			number INTEGER PRIMARY KEY,
			status VARCHAR(10) NOT NULL DEFAULT 'free' CHECK (status IN ('free', 'sold')),
			buyer_name TEXT,
			buyer_contact TEXT,
			paid BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_tickets_status ON tickets(status)`,
		`CREATE INDEX IF NOT EXISTS idx_tickets_updated_at ON tickets(updated_at)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %v", err)
		}
	}

	// Tables created before the payment flag existed lack the paid column.
	// Add it in place so old deployments keep their rows across upgrades.
	if err := ensurePaidColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func ensurePaidColumn(db *sql.DB) error {
	var exists bool
	query := `SELECT EXISTS (
		SELECT 1 FROM information_schema.columns
		WHERE table_name = 'tickets' AND column_name = 'paid'
	)`

	if err := db.QueryRow(query).Scan(&exists); err != nil {
		return fmt.Errorf("failed to inspect tickets schema: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := db.Exec(`ALTER TABLE tickets ADD COLUMN paid BOOLEAN NOT NULL DEFAULT FALSE`); err != nil {
		return fmt.Errorf("failed to add paid column: %w", err)
	}
	return nil
}
