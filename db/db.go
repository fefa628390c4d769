package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotConfigured is returned when no connection settings are present
var ErrNotConfigured = errors.New("database connection variables not set")

// DB holds the database connection
var DB *sql.DB

// ConnString builds the connection string from environment variables.
// DATABASE_URL wins; otherwise DB_HOST, DB_USER and DB_NAME are required.
func ConnString() (string, error) {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		return connStr, nil
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	if host == "" || user == "" || dbname == "" {
		return "", fmt.Errorf("%w. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME", ErrNotConfigured)
	}

	if port == "" {
		port = "5432"
	}
	if sslmode == "" {
		sslmode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode), nil
}

// InitDB initializes the database connection from environment variables
func InitDB(ctx context.Context) error {
	connStr, err := ConnString()
	if err != nil {
		return err
	}

	DB, err = sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := DB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✓ Database connection established successfully")
	return nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
