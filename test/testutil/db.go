package testutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tunewave/tunewave-go/internal/db"
)

type TestDB struct {
	DB      *db.Database
	Path    string
	Cleanup func() error
}

// SetupTestDB opens a throwaway SQLite database in a fresh temp directory.
// Every call gets its own file, so tests can run in parallel.
func SetupTestDB() (*TestDB, error) {
	dir, err := os.MkdirTemp("", "tunewave-test-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	path := filepath.Join(dir, "tunewave.db")
	database, err := db.New(path)
	if err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("open test DB %q: %w", path, err)
	}

	cleanup := func() error {
		if err := database.Close(); err != nil {
			return err
		}
		return os.RemoveAll(dir)
	}

	return &TestDB{DB: database, Path: path, Cleanup: cleanup}, nil
}
