package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: &Config{
				Port:           3001,
				DatabasePath:   "./data/newsletter.db",
				LogLevel:       "info",
				AllowedOrigins: []string{"*"},
			},
		},
		{
			name: "all values set",
			env: map[string]string{
				"PORT":            "8080",
				"DATABASE_PATH":   "/tmp/newsletter.db",
				"LOG_LEVEL":       "debug",
				"WEBHOOK_URL":     "https://hook.example.com/abc",
				"ALLOWED_ORIGINS": "https://dash.example.com,https://staging.example.com",
			},
			want: &Config{
				Port:           8080,
				DatabasePath:   "/tmp/newsletter.db",
				LogLevel:       "debug",
				WebhookURL:     "https://hook.example.com/abc",
				AllowedOrigins: []string{"https://dash.example.com", "https://staging.example.com"},
			},
		},
		{
			name: "origins with spaces and empties",
			env: map[string]string{
				"ALLOWED_ORIGINS": " https://a.example.com , , https://b.example.com ,",
			},
			want: &Config{
				Port:           3001,
				DatabasePath:   "./data/newsletter.db",
				LogLevel:       "info",
				AllowedOrigins: []string{"https://a.example.com", "https://b.example.com"},
			},
		},
		{
			name:    "invalid port",
			env:     map[string]string{"PORT": "not-a-port"},
			wantErr: true,
		},
		{
			name:    "port out of range",
			env:     map[string]string{"PORT": "70000"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear relevant env vars
			for _, key := range []string{"PORT", "DATABASE_PATH", "LOG_LEVEL", "WEBHOOK_URL", "ALLOWED_ORIGINS"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Port: 3001}
	if got, want := cfg.Addr(), ":3001"; got != want {
		t.Errorf("Addr() = %q, want %q", got, want)
	}
}
