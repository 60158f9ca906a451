package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferdiebergado/regtoken/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(cfgFile, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return cfgFile
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("config.Load() returned an error: %v", err)
	}

	want := config.Default()
	if cfg.Server.Port != want.Server.Port {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, want.Server.Port)
	}

	if cfg.JWT.ExpirationInSeconds != want.JWT.ExpirationInSeconds {
		t.Errorf("cfg.JWT.ExpirationInSeconds = %d, want: %d", cfg.JWT.ExpirationInSeconds, want.JWT.ExpirationInSeconds)
	}

	if cfg.JWT.Signature.Enabled() {
		t.Error("cfg.JWT.Signature.Enabled() = true, want: false")
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	cfgFile := writeConfig(t, `{
		"app": {"name": "signup"},
		"server": {"port": 9000, "read_timeout": "5s"},
		"jwt": {"expiration_in_seconds": 600, "signature": {"secret": "fromfile", "algorithm": "HS384"}}
	}`)

	t.Setenv("JWT_SIGNATURE_SECRET", "fromenv")
	t.Setenv("JWT_EXPIRATION_IN_SECONDS", "60")
	t.Setenv("SERVER_WRITE_TIMEOUT", "3s")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		t.Fatalf("config.Load() returned an error: %v", err)
	}

	tests := []struct {
		name      string
		got, want any
	}{
		{"app.name", cfg.App.Name, "signup"},
		{"server.port", cfg.Server.Port, 9000},
		{"server.read_timeout", cfg.Server.ReadTimeout.Duration, 5 * time.Second},
		{"server.write_timeout", cfg.Server.WriteTimeout.Duration, 3 * time.Second},
		{"jwt.expiration_in_seconds", cfg.JWT.ExpirationInSeconds, 60},
		{"jwt.signature.secret", cfg.JWT.Signature.Secret, "fromenv"},
		{"jwt.signature.algorithm", cfg.JWT.Signature.Algorithm, "HS384"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want: %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		env      map[string]string
	}{
		{"Unsupported algorithm", `{"jwt": {"signature": {"algorithm": "RS256"}}}`, nil},
		{"Negative expiration", `{}`, map[string]string{"JWT_EXPIRATION_IN_SECONDS": "-1"}},
		{"Invalid json", `{"jwt":`, nil},
		{"Invalid env value", `{}`, map[string]string{"PORT": "http"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load(writeConfig(t, tt.contents))
			if err == nil {
				t.Errorf("config.Load() = %v, want: error", cfg)
			}
		})
	}
}
