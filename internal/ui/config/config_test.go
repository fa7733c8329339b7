package config

import (
	"strings"
	"testing"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Environment != "dev" {
		t.Errorf("Environment = %q, want dev", cfg.Environment)
	}
	if cfg.APIBaseURL != "http://localhost:8081" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout.Seconds() != 60 {
		t.Errorf("APITimeout = %v, want 60s", cfg.APITimeout)
	}
}

func TestNewConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("PORT", "8080")
	t.Setenv("API_BASE_URL", "http://appliance.local:8081")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}

	if cfg.Environment != "prod" || cfg.Port != 8080 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.APIBaseURL != "http://appliance.local:8081" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
}

func TestNewConfig_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"bad environment", "ENVIRONMENT", "production", "invalid environment"},
		{"port too large", "PORT", "70000", "port must be between"},
		{"zero api timeout", "API_TIMEOUT", "0s", "api timeout must be positive"},
		{"zero rate limit", "RATE_LIMIT_RPS", "0", "rate limit must be at least"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := NewConfig()
			if err == nil {
				t.Fatalf("NewConfig accepted %s=%q", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want %q", err, tc.wantErr)
			}
		})
	}
}
