package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	// Switch to a temp directory to avoid loading a real .env
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("could not chdir back to original dir: %v", err)
		}
	}()

	// Set all required environment variables
	reqs := map[string]string{
		"BACKEND_BASE_URL": "https://music.example.com",
		"SQLITE_PATH":      "/tmp/tunewave.db",
		"CACHE_DIR":        "/tmp/tunewave-cache",
		"SERVER_PORT":      "8080",
		"HTTP_TIMEOUT":     "15",
		"CACHE_MAX_BYTES":  "1073741824",
		"POSITION_POLL_MS": "250",
	}
	for k, v := range reqs {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.BackendBaseURL != reqs["BACKEND_BASE_URL"] {
		t.Errorf("BackendBaseURL: expected %q, got %q", reqs["BACKEND_BASE_URL"], cfg.BackendBaseURL)
	}
	if cfg.SQLitePath != reqs["SQLITE_PATH"] {
		t.Errorf("SQLitePath: expected %q, got %q", reqs["SQLITE_PATH"], cfg.SQLitePath)
	}
	if cfg.CacheDir != reqs["CACHE_DIR"] {
		t.Errorf("CacheDir: expected %q, got %q", reqs["CACHE_DIR"], cfg.CacheDir)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort: expected %d, got %d", 8080, cfg.ServerPort)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout: expected %v, got %v", 15*time.Second, cfg.HTTPTimeout)
	}
	if cfg.CacheMaxBytes != 1073741824 {
		t.Errorf("CacheMaxBytes: expected %d, got %d", 1073741824, cfg.CacheMaxBytes)
	}
	if cfg.PollInterval != 250*time.Millisecond {
		t.Errorf("PollInterval: expected %v, got %v", 250*time.Millisecond, cfg.PollInterval)
	}
}

func TestLoad_Defaults(t *testing.T) {
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("could not chdir back to original dir: %v", err)
		}
	}()

	for _, k := range []string{"HTTP_TIMEOUT", "CACHE_MAX_BYTES", "POSITION_POLL_MS"} {
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("could not unset key %s in env: %v", k, err)
		}
	}
	reqs := map[string]string{
		"BACKEND_BASE_URL": "https://music.example.com",
		"SQLITE_PATH":      "/tmp/tunewave.db",
		"CACHE_DIR":        "/tmp/tunewave-cache",
		"SERVER_PORT":      "8080",
	}
	for k, v := range reqs {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout default: expected %v, got %v", 30*time.Second, cfg.HTTPTimeout)
	}
	if cfg.CacheMaxBytes != 0 {
		t.Errorf("CacheMaxBytes default: expected 0, got %d", cfg.CacheMaxBytes)
	}
	if cfg.PollInterval != 200*time.Millisecond {
		t.Errorf("PollInterval default: expected %v, got %v", 200*time.Millisecond, cfg.PollInterval)
	}
}

func TestLoad_MissingRequiredVars(t *testing.T) {
	cases := []struct {
		missingKey string
		wantErr    string
	}{
		{"BACKEND_BASE_URL", "BACKEND_BASE_URL is required"},
		{"SQLITE_PATH", "SQLITE_PATH is required"},
		{"CACHE_DIR", "CACHE_DIR is required"},
		{"SERVER_PORT", "SERVER_PORT is required"},
	}

	for _, tc := range cases {
		t.Run(tc.missingKey, func(t *testing.T) {
			// Isolate .env loading
			origDir, err := os.Getwd()
			if err != nil {
				t.Fatalf("could not get working directory: %v", err)
			}
			tmpDir := t.TempDir()
			if err := os.Chdir(tmpDir); err != nil {
				t.Fatalf("could not chdir to temp dir: %v", err)
			}
			defer func() {
				if err := os.Chdir(origDir); err != nil {
					t.Fatalf("could not chdir back to original dir: %v", err)
				}
			}()

			// Set all except the missing key
			reqs := map[string]string{
				"BACKEND_BASE_URL": "https://music.example.com",
				"SQLITE_PATH":      "/tmp/tunewave.db",
				"CACHE_DIR":        "/tmp/tunewave-cache",
				"SERVER_PORT":      "8080",
			}
			for k, v := range reqs {
				if k == tc.missingKey {
					if err := os.Unsetenv(k); err != nil {
						t.Fatalf("could not unset key %s in env: %v", k, err)
					}
				} else {
					t.Setenv(k, v)
				}
			}

			cfg, err := Load()
			if err == nil {
				t.Fatalf("expected error for missing %s, got nil", tc.missingKey)
			}
			if err.Error() != tc.wantErr {
				t.Errorf("error = %q; want %q", err.Error(), tc.wantErr)
			}
			if cfg != nil {
				t.Errorf("expected cfg nil on error, got %#v", cfg)
			}
		})
	}
}
