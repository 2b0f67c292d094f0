package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"Jyotish/internal/model"
)

// ErrUnknownProfile is returned when a profile name matches no configured birth profile.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile is one person whose chart the watcher follows.
type Profile struct {
	Name      string  `yaml:"name" toml:"name"`
	Date      string  `yaml:"date" toml:"date"` // 2006-01-02
	Time      string  `yaml:"time" toml:"time"` // 15:04 or 15:04:05, local
	UTCOffset string  `yaml:"utc_offset" toml:"utc_offset"`
	Latitude  float64 `yaml:"latitude" toml:"latitude"`
	Longitude float64 `yaml:"longitude" toml:"longitude"`
	ChatID    string  `yaml:"chat_id" toml:"chat_id"` // overrides telegram.chat_id
}

// BirthInput parses the profile's birth details.
func (p Profile) BirthInput() (model.BirthInput, error) {
	in, err := model.ParseBirthInput(p.Date, p.Time, p.UTCOffset, p.Latitude, p.Longitude)
	if err != nil {
		return model.BirthInput{}, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return in, nil
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token" toml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
		ChatID   string `yaml:"chat_id" toml:"chat_id" env:"TELEGRAM_CHAT_ID"`
	} `yaml:"telegram" toml:"telegram"`
	Ephemeris struct {
		BaseURL        string `yaml:"base_url" toml:"base_url" env:"JYOTISH_EPHEMERIS_URL"`
		APIKey         string `yaml:"api_key" toml:"api_key" env:"JYOTISH_EPHEMERIS_KEY"`
		TimeoutSeconds int    `yaml:"timeout_seconds" toml:"timeout_seconds" env:"JYOTISH_EPHEMERIS_TIMEOUT"`
		MaxRetries     int    `yaml:"max_retries" toml:"max_retries" env:"JYOTISH_EPHEMERIS_RETRIES"`
	} `yaml:"ephemeris" toml:"ephemeris"`
	Schedule struct {
		WatchCron  string `yaml:"watch_cron" toml:"watch_cron" env:"CRON_WATCH"`
		DigestCron string `yaml:"digest_cron" toml:"digest_cron" env:"CRON_DIGEST"`
	} `yaml:"schedule" toml:"schedule"`
	Engine struct {
		DashaDepth int `yaml:"dasha_depth" toml:"dasha_depth" env:"JYOTISH_DASHA_DEPTH"`
	} `yaml:"engine" toml:"engine"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path" toml:"sqlite_path" env:"SQLITE_PATH"`
	} `yaml:"database" toml:"database"`
	Tracker struct {
		StateFile string `yaml:"state_file" toml:"state_file" env:"JYOTISH_STATE_FILE"`
	} `yaml:"tracker" toml:"tracker"`
	Profiles []Profile `yaml:"profiles" toml:"profiles"`
	Proxy    string    `yaml:"proxy" toml:"proxy" env:"HTTPS_PROXY"`
}

// Load reads config from a YAML or TOML file (by extension), then applies
// environment variable overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Defaults
	if cfg.Schedule.WatchCron == "" {
		cfg.Schedule.WatchCron = "0 0 7 * * *"
	}
	if cfg.Schedule.DigestCron == "" {
		cfg.Schedule.DigestCron = "0 0 9 * * 1"
	}
	if cfg.Ephemeris.TimeoutSeconds == 0 {
		cfg.Ephemeris.TimeoutSeconds = 30
	}
	if cfg.Ephemeris.MaxRetries == 0 {
		cfg.Ephemeris.MaxRetries = 2
	}
	if cfg.Engine.DashaDepth == 0 {
		cfg.Engine.DashaDepth = 3
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/jyotish.db"
	}
	if cfg.Tracker.StateFile == "" {
		cfg.Tracker.StateFile = "data/announced.json"
	}

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Validate checks the fields the watch daemon needs.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Engine.DashaDepth < 1 || c.Engine.DashaDepth > model.MaxDashaDepth {
		return fmt.Errorf("engine.dasha_depth must be between 1 and %d", model.MaxDashaDepth)
	}
	if c.Ephemeris.MaxRetries < 0 {
		return fmt.Errorf("ephemeris.max_retries must not be negative")
	}
	if len(c.Profiles) == 0 {
		return fmt.Errorf("at least one profile is required")
	}
	seen := make(map[string]bool, len(c.Profiles))
	for _, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("profile name is required")
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return fmt.Errorf("duplicate profile %q", p.Name)
		}
		seen[key] = true
		if _, err := p.BirthInput(); err != nil {
			return err
		}
		if p.ChatID == "" && c.Telegram.ChatID == "" {
			return fmt.Errorf("profile %q: chat_id or telegram.chat_id is required", p.Name)
		}
	}
	return nil
}

// Profile looks a profile up by name, ignoring case.
func (c *Config) Profile(name string) (Profile, error) {
	for _, p := range c.Profiles {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// ChatFor returns the chat a profile's messages go to.
func (c *Config) ChatFor(p Profile) string {
	if p.ChatID != "" {
		return p.ChatID
	}
	return c.Telegram.ChatID
}
