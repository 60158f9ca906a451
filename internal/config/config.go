package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/ferdiebergado/regtoken/internal/platform/validation"
	timex "github.com/ferdiebergado/regtoken/internal/pkg/time"
)

type App struct {
	Name     string `json:"name,omitempty" env:"APP_NAME"`
	Env      string `json:"env,omitempty" env:"ENV"`
	LogLevel string `json:"log_level,omitempty" env:"LOG_LEVEL"`
}

type Server struct {
	Port            int            `json:"port,omitempty" env:"PORT" validate:"gt=0,lte=65535"`
	AllowedOrigin   string         `json:"allowed_origin,omitempty" env:"ALLOWED_ORIGIN"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty" env:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty" env:"SERVER_IDLE_TIMEOUT"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty" env:"SERVER_SHUTDOWN_TIMEOUT"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty" env:"SERVER_MAX_BODY_BYTES" validate:"gt=0"`
}

type Signature struct {
	Secret    string `json:"secret,omitempty" env:"JWT_SIGNATURE_SECRET"`
	Base64    bool   `json:"base64,omitempty" env:"JWT_SIGNATURE_BASE64"`
	Algorithm string `json:"algorithm,omitempty" env:"JWT_SIGNATURE_ALGORITHM" validate:"oneof=HS256 HS384 HS512"`
}

// Enabled reports whether tokens are signed. Without a secret, tokens are
// issued and accepted unsigned.
func (s *Signature) Enabled() bool {
	return s.Secret != ""
}

func (s *Signature) LogValue() slog.Value {
	secret := ""
	if s.Enabled() {
		secret = "*"
	}
	return slog.GroupValue(
		slog.String("secret", secret),
		slog.Bool("base64", s.Base64),
		slog.String("algorithm", s.Algorithm),
	)
}

type JWT struct {
	ExpirationInSeconds int       `json:"expiration_in_seconds,omitempty" env:"JWT_EXPIRATION_IN_SECONDS" validate:"gt=0"`
	Signature           Signature `json:"signature"`
}

type Config struct {
	App    App    `json:"app"`
	Server Server `json:"server"`
	JWT    JWT    `json:"jwt"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("server", c.Server),
		slog.Int("jwt_expiration_in_seconds", c.JWT.ExpirationInSeconds),
		slog.Any("jwt_signature", &c.JWT.Signature),
	)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

// Default returns the configuration used when neither the config file nor the
// environment sets a value.
func Default() *Config {
	return &Config{
		App: App{
			Env:      "development",
			LogLevel: "info",
		},
		Server: Server{
			Port:            8888,
			ReadTimeout:     timex.Duration{Duration: 10 * time.Second},
			WriteTimeout:    timex.Duration{Duration: 10 * time.Second},
			IdleTimeout:     timex.Duration{Duration: 60 * time.Second},
			ShutdownTimeout: timex.Duration{Duration: 10 * time.Second},
			MaxBodyBytes:    1 << 12,
		},
		JWT: JWT{
			ExpirationInSeconds: 3600,
			Signature: Signature{
				Algorithm: "HS256",
			},
		},
	}
}

// Load reads the config file over the defaults, applies environment overrides
// and validates the result. A missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg := Default()

	if err := parseCfgFile(cfgFile, cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if errs := validation.NewGoPlaygroundValidator().ValidateStruct(cfg); errs != nil {
		return nil, fmt.Errorf("invalid config: %v", errs)
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string, cfg *Config) error {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Config file not found, using defaults.", "config_file", cfgFile)
			return nil
		}
		return fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	if err := json.Unmarshal(configFile, cfg); err != nil {
		return fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return nil
}
