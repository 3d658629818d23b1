package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	RecordsBackendDB   = "db"
	RecordsBackendFile = "file"

	devConnectionString = "file:./local.db?cache=shared&mode=rwc"
)

type Config struct {
	DB       DBConfig       `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Analysis AnalysisConfig `toml:"analysis"`
	Records  RecordsConfig  `toml:"records"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type LoggingConfig struct {
	Level    string `toml:"level"`
	File     string `toml:"file"`
	ToStderr bool   `toml:"to_stderr"`
	JSON     bool   `toml:"json"`
}

type AnalysisConfig struct {
	WindowDays  int    `toml:"window_days"`
	FatigueDays int    `toml:"fatigue_days"`
	Unit        string `toml:"unit"` // "metric" or "imperial"
	Goal        string `toml:"goal"` // free text, e.g. "cut for summer"
}

type RecordsConfig struct {
	Backend string `toml:"backend"` // "db" or "file"
	File    string `toml:"file"`
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn"},
		Analysis: AnalysisConfig{
			WindowDays:  14,
			FatigueDays: 7,
			Unit:        "metric",
		},
		Records: RecordsConfig{Backend: RecordsBackendDB},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "ironflow")
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the config file at path, or at the default location when
// path is empty. A missing file is not an error: defaults apply. Environment
// overrides from .env and the process are applied last.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		log.Debugf("config: %s not found, using defaults", path)
	}

	if err := godotenv.Load(); err != nil {
		log.Debugf("config: no .env file loaded: %s", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if url := os.Getenv("TURSO_DATABASE_URL"); url != "" {
		c.DB.ConnectionString = url
	}
	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		c.DB.ConnectionString = devConnectionString
	}
}

func (c *Config) Validate() error {
	if c.Analysis.WindowDays <= 0 {
		return fmt.Errorf("analysis.window_days must be positive, got %d", c.Analysis.WindowDays)
	}
	if c.Analysis.FatigueDays <= 0 {
		return fmt.Errorf("analysis.fatigue_days must be positive, got %d", c.Analysis.FatigueDays)
	}
	switch c.Analysis.Unit {
	case "metric", "imperial":
	default:
		return fmt.Errorf("analysis.unit must be metric or imperial, got %q", c.Analysis.Unit)
	}
	switch c.Records.Backend {
	case RecordsBackendDB:
	case RecordsBackendFile:
	default:
		return fmt.Errorf("records.backend must be %q or %q, got %q", RecordsBackendDB, RecordsBackendFile, c.Records.Backend)
	}
	return nil
}
