package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds process configuration.
type Config struct {
	Env      string
	LogLevel string
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds the Postgres DSN and pool limits.
type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// Default returns development friendly settings.
func Default() Config {
	return Config{
		Env:      "development",
		LogLevel: "info",
		Server: ServerConfig{
			Address:         "0.0.0.0:8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		CORS: CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// Load builds the configuration: defaults, then the YAML file at path if one
// is given, then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// IsDevelopment reports whether the process runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

// Validate checks the settings needed to talk to the database.
func (c Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("POSTGRES_CONN is not set")
	}
	if c.Server.Address == "" {
		return errors.New("server address is empty")
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Database.DSN = getEnv("POSTGRES_CONN", cfg.Database.DSN)
	cfg.Server.Address = getEnv("SERVER_ADDRESS", cfg.Server.Address)
	cfg.Env = getEnv("APP_ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = splitList(origins)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// fileModel mirrors Config in the YAML file. Only set values override.
type fileModel struct {
	Env      string        `yaml:"env"`
	LogLevel string        `yaml:"log_level"`
	Server   *fileServer   `yaml:"server"`
	Database *fileDatabase `yaml:"database"`
	CORS     *fileCORS     `yaml:"cors"`
}

type fileServer struct {
	Address         string `yaml:"address"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	IdleTimeout     string `yaml:"idle_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type fileDatabase struct {
	DSN             string `yaml:"dsn"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime"`
}

type fileCORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func loadFromFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fm fileModel
	if err := yaml.Unmarshal(b, &fm); err != nil {
		return err
	}
	return fm.apply(cfg)
}

func (fm fileModel) apply(cfg *Config) error {
	if fm.Env != "" {
		cfg.Env = fm.Env
	}
	if fm.LogLevel != "" {
		cfg.LogLevel = fm.LogLevel
	}
	if s := fm.Server; s != nil {
		if s.Address != "" {
			cfg.Server.Address = s.Address
		}
		for _, d := range []struct {
			raw string
			dst *time.Duration
			key string
		}{
			{s.ReadTimeout, &cfg.Server.ReadTimeout, "server.read_timeout"},
			{s.WriteTimeout, &cfg.Server.WriteTimeout, "server.write_timeout"},
			{s.IdleTimeout, &cfg.Server.IdleTimeout, "server.idle_timeout"},
			{s.ShutdownTimeout, &cfg.Server.ShutdownTimeout, "server.shutdown_timeout"},
		} {
			if err := setDuration(d.raw, d.dst, d.key); err != nil {
				return err
			}
		}
	}
	if d := fm.Database; d != nil {
		if d.DSN != "" {
			cfg.Database.DSN = d.DSN
		}
		if d.MaxOpenConns > 0 {
			cfg.Database.MaxOpenConns = d.MaxOpenConns
		}
		if d.MaxIdleConns > 0 {
			cfg.Database.MaxIdleConns = d.MaxIdleConns
		}
		if err := setDuration(d.ConnMaxLifetime, &cfg.Database.ConnMaxLifetime, "database.conn_max_lifetime"); err != nil {
			return err
		}
	}
	if c := fm.CORS; c != nil && len(c.AllowedOrigins) > 0 {
		cfg.CORS.AllowedOrigins = c.AllowedOrigins
	}
	return nil
}

// setDuration parses raw as a Go duration, or as whole seconds.
func setDuration(raw string, dst *time.Duration, key string) error {
	if raw == "" {
		return nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		*dst = d
		return nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		*dst = time.Duration(secs) * time.Second
		return nil
	}
	return fmt.Errorf("%s: invalid duration %q", key, raw)
}
