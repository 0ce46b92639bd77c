package db

import (
	"database/sql"
	"os"

	_ "github.com/lib/pq"
)

// Open connects to Postgres and verifies the connection. The handle is
// returned to the caller instead of being held in a package variable so
// the store can be injected where it is used.
func Open(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}
	return conn, nil
}

// ApplySchema runs the schema file against the database. The statements
// are idempotent (CREATE ... IF NOT EXISTS), so this is safe at every boot.
func ApplySchema(conn *sql.DB, path string) error {
	sqlBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = conn.Exec(string(sqlBytes))
	return err
}
