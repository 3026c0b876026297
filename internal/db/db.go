package db

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Database holds the local SQLite connection pool.
type Database struct {
	*sql.DB
}

// New opens, configures, and verifies the local SQLite database.
// It returns an error if opening or pinging the database fails.
func New(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	// SQLite handles a single writer; keep the pool at one connection to
	// avoid SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	// verify connectivity
	if err := db.Ping(); err != nil {
		// close the connection pool before returning the ping error
		if cErr := db.Close(); cErr != nil {
			return nil, cErr
		}
		return nil, err
	}
	return &Database{db}, nil
}
