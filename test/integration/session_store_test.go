package integration

import (
	"context"
	"testing"

	"github.com/tunewave/tunewave-go/internal/migration"
	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/repository/sqlite"
	"github.com/tunewave/tunewave-go/test/testutil"
)

func setupSessionRepo(t *testing.T) *sqlite.SessionRepository {
	t.Helper()

	testDB, err := testutil.SetupTestDB()
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	t.Cleanup(func() {
		if err := testDB.Cleanup(); err != nil {
			t.Errorf("cleanup DB: %v", err)
		}
	})

	if err := migration.MigrateUp(testDB.DB.DB); err != nil {
		t.Fatalf("could not run migrations: %v", err)
	}
	return sqlite.NewSessionRepository(testDB.DB.DB)
}

func TestSessionRoundTripIntegration(t *testing.T) {
	repo := setupSessionRepo(t)
	ctx := context.Background()

	got, err := repo.GetUser(ctx)
	if err != nil {
		t.Fatalf("GetUser on empty DB: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no session, got %+v", got)
	}

	user := &model.AuthUser{
		ID:       "user-42",
		Email:    "tester@example.com",
		Name:     "tester",
		Provider: model.ProviderEmail,
	}
	if err := repo.SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	got, err = repo.GetUser(ctx)
	if err != nil {
		t.Fatalf("GetUser after save: %v", err)
	}
	if got == nil || got.ID != "user-42" || got.Provider != model.ProviderEmail {
		t.Errorf("unexpected session %+v", got)
	}

	// a second save overwrites the single row
	user.Name = "renamed"
	if err := repo.SaveUser(ctx, user); err != nil {
		t.Fatalf("second SaveUser: %v", err)
	}
	got, _ = repo.GetUser(ctx)
	if got == nil || got.Name != "renamed" {
		t.Errorf("expected overwritten session, got %+v", got)
	}

	if err := repo.DeleteUser(ctx); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	got, err = repo.GetUser(ctx)
	if err != nil {
		t.Fatalf("GetUser after delete: %v", err)
	}
	if got != nil {
		t.Errorf("expected no session after delete, got %+v", got)
	}
}

func TestPreferencesRoundTripIntegration(t *testing.T) {
	repo := setupSessionRepo(t)
	ctx := context.Background()

	val, found, err := repo.GetPreference(ctx, "cache_limit_bytes")
	if err != nil {
		t.Fatalf("GetPreference on empty DB: %v", err)
	}
	if found || val != "" {
		t.Fatalf("expected no value, got %q", val)
	}

	if err := repo.SetPreference(ctx, "cache_limit_bytes", "1048576"); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}
	if err := repo.SetPreference(ctx, "cache_limit_bytes", "2097152"); err != nil {
		t.Fatalf("SetPreference upsert: %v", err)
	}

	val, found, err = repo.GetPreference(ctx, "cache_limit_bytes")
	if err != nil {
		t.Fatalf("GetPreference: %v", err)
	}
	if !found || val != "2097152" {
		t.Errorf("expected upserted value 2097152, got %q", val)
	}
}
