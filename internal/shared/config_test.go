package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("Valid File", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			content := `
[api]
base_url = "https://movies.example.com"
timeout_seconds = 15
requests_per_second = 5.0

[database]
path = "flick.db"
max_open_conns = 4
max_idle_conns = 2

[log]
level = "debug"
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.API.BaseURL != "https://movies.example.com" {
				t.Errorf("expected base_url parsed, got %s", config.API.BaseURL)
			}
			if config.API.TimeoutSeconds != 15 {
				t.Errorf("expected timeout 15, got %d", config.API.TimeoutSeconds)
			}
			if config.Database.Path != "flick.db" {
				t.Errorf("expected database path, got %s", config.Database.Path)
			}
			if config.Log.Level != "debug" {
				t.Errorf("expected log level 'debug', got %s", config.Log.Level)
			}
		})

		t.Run("Missing File", func(t *testing.T) {
			if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
				t.Error("expected error for missing file")
			}
		})

		t.Run("Missing BaseURL", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			os.WriteFile(path, []byte("[api]\ntimeout_seconds = 10\n"), 0644)

			_, err := LoadConfig(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("Malformed TOML", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			os.WriteFile(path, []byte("[api\nbase_url = "), 0644)

			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error for malformed TOML")
			}
		})
	})

	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.API.BaseURL == "" {
			t.Error("expected embedded default base_url")
		}
		if config.Database.Path == "" {
			t.Error("expected embedded default database path")
		}
	})

	t.Run("SaveConfig", func(t *testing.T) {
		t.Run("Round Trip", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			original := DefaultConfig()
			original.API.BaseURL = "https://other.example.com"

			if err := SaveConfig(path, original); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			loaded, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if loaded.API.BaseURL != "https://other.example.com" {
				t.Errorf("expected saved base_url, got %s", loaded.API.BaseURL)
			}
		})
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		t.Run("Creates From Embedded Example", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")

			if err := CreateConfigFile(path); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if _, err := LoadConfig(path); err != nil {
				t.Errorf("expected created file to load, got %v", err)
			}
		})

		t.Run("Refuses To Overwrite", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			os.WriteFile(path, []byte("existing"), 0644)

			if err := CreateConfigFile(path); err == nil {
				t.Error("expected error for existing file")
			}
		})
	})
}
