package config

import "testing"

func TestParseEnvDefaults(t *testing.T) {
	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.StateDriver != DriverBBolt {
		t.Fatalf("expected default driver %q, got %q", DriverBBolt, cfg.StateDriver)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("expected default locale %q, got %q", "en-US", cfg.Locale)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("LIBRARIUM_API_BASE_URL", "https://library.example.com")
	t.Setenv("LIBRARIUM_STATE_DRIVER", "sqlite")
	t.Setenv("LIBRARIUM_LOCALE", "ru-RU")

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.APIBaseURL != "https://library.example.com" {
		t.Fatalf("unexpected base URL %q", cfg.APIBaseURL)
	}
	if cfg.StateDriver != DriverSQLite {
		t.Fatalf("unexpected driver %q", cfg.StateDriver)
	}
	if cfg.Locale != "ru-RU" {
		t.Fatalf("unexpected locale %q", cfg.Locale)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid bbolt",
			cfg:  Config{APIBaseURL: "https://x", StateDriver: DriverBBolt, StatePath: "state.db"},
		},
		{
			name: "valid memory without path",
			cfg:  Config{APIBaseURL: "https://x", StateDriver: DriverMemory},
		},
		{
			name:    "missing base URL",
			cfg:     Config{StateDriver: DriverMemory},
			wantErr: true,
		},
		{
			name:    "file driver without path",
			cfg:     Config{APIBaseURL: "https://x", StateDriver: DriverSQLite},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			cfg:     Config{APIBaseURL: "https://x", StateDriver: "redis"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
