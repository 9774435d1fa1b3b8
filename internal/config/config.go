package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/adhan-bot/internal/domain"
	"github.com/joho/godotenv"
)

const offsetEnvPrefix = "TIME_OFFSET_IN_MINUTES_"

type Config struct {
	AppEnv string `yaml:"app_env"`

	Method       int      `yaml:"method"`
	Timezone     string   `yaml:"timezone"`
	Latitude     *float64 `yaml:"latitude"`
	Longitude    *float64 `yaml:"longitude"`
	ZoneinfoDir  string   `yaml:"zoneinfo_dir"`
	AladhanURL   string   `yaml:"aladhan_base_url"`
	EventLogPath string   `yaml:"event_log_path"`

	SlackWebhookURL    string  `yaml:"slack_webhook_url"`
	SlackAuthToken     string  `yaml:"slack_auth_token"`
	SlackSigningSecret string  `yaml:"slack_signing_secret"`
	SlackRatePerSec    float64 `yaml:"slack_rate_per_sec"`

	DatabasePath string `yaml:"database_path"`
	Port         string `yaml:"port"`

	FetchRetryDelay      Duration `yaml:"fetch_retry_delay"`
	HousekeepingSchedule string   `yaml:"housekeeping_schedule"`
	HistoryRetentionDays int      `yaml:"history_retention_days"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Offsets holds the per-label minute offsets, keyed by label (e.g. "Fajr")
	Offsets map[string]int `yaml:"offsets"`
}

// LoadDotEnv loads a .env file outside production. A missing file is not an error.
func LoadDotEnv(filenames ...string) error {
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		return nil
	}
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Load builds the configuration from defaults, the optional YAML file named
// by CONFIG_FILE, then environment variables, in increasing precedence.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	var errs []error
	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.Method = getEnvInt("METHOD", cfg.Method, &errs)
	cfg.Timezone = getEnv("TIMEZONE", cfg.Timezone)
	cfg.Latitude = getEnvFloatPtr("LATITUDE", cfg.Latitude, &errs)
	cfg.Longitude = getEnvFloatPtr("LONGITUDE", cfg.Longitude, &errs)
	cfg.ZoneinfoDir = getEnv("ZONEINFO_DIR", cfg.ZoneinfoDir)
	cfg.AladhanURL = getEnv("ALADHAN_BASE_URL", cfg.AladhanURL)
	cfg.EventLogPath = getEnv("EVENT_LOG_PATH", cfg.EventLogPath)
	cfg.SlackWebhookURL = getEnv("SLACK_WEBHOOK_URL", cfg.SlackWebhookURL)
	cfg.SlackAuthToken = getEnv("SLACK_AUTH_TOKEN", cfg.SlackAuthToken)
	cfg.SlackSigningSecret = getEnv("SLACK_SIGNING_SECRET", cfg.SlackSigningSecret)
	cfg.SlackRatePerSec = getEnvFloat("SLACK_RATE_PER_SEC", cfg.SlackRatePerSec, &errs)
	cfg.DatabasePath = getEnv("DATABASE_PATH", cfg.DatabasePath)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.FetchRetryDelay = Duration(getEnvDuration("FETCH_RETRY_DELAY", time.Duration(cfg.FetchRetryDelay), &errs))
	cfg.HousekeepingSchedule = getEnv("HOUSEKEEPING_SCHEDULE", cfg.HousekeepingSchedule)
	cfg.HistoryRetentionDays = getEnvInt("HISTORY_RETENTION_DAYS", cfg.HistoryRetentionDays, &errs)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	for _, label := range domain.ActionableLabels() {
		key := offsetEnvPrefix + strings.ToUpper(label)
		cfg.Offsets[label] = getEnvInt(key, cfg.Offsets[label], &errs)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		AppEnv:               "development",
		Method:               domain.DefaultMethod,
		ZoneinfoDir:          "/usr/share/zoneinfo",
		AladhanURL:           "https://api.aladhan.com/v1",
		EventLogPath:         "./storage/logs",
		SlackRatePerSec:      1,
		DatabasePath:         "./adhan.db",
		Port:                 "3000",
		FetchRetryDelay:      Duration(domain.DefaultFetchRetryDelay),
		HousekeepingSchedule: "15 0 * * *",
		HistoryRetentionDays: 30,
		LogLevel:             "info",
		LogFormat:            "console",
		Offsets:              map[string]int{},
	}
}

// Location loads the configured timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// OffsetFor returns the minute offset configured for a label, zero when unset
func (c *Config) OffsetFor(label string) int {
	return c.Offsets[label]
}

// Validate checks the settings every command needs
func (c *Config) Validate() error {
	var errs []error
	if c.Timezone == "" {
		errs = append(errs, errors.New("TIMEZONE is required"))
	} else if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if (c.Latitude == nil) != (c.Longitude == nil) {
		errs = append(errs, errors.New("LATITUDE and LONGITUDE must be set together"))
	}
	if c.SlackRatePerSec <= 0 {
		errs = append(errs, errors.New("SLACK_RATE_PER_SEC must be positive"))
	}
	if c.FetchRetryDelay <= 0 {
		errs = append(errs, errors.New("FETCH_RETRY_DELAY must be positive"))
	}
	if c.HistoryRetentionDays <= 0 {
		errs = append(errs, errors.New("HISTORY_RETENTION_DAYS must be positive"))
	}
	for label := range c.Offsets {
		if !isKnownLabel(label) {
			errs = append(errs, fmt.Errorf("offset configured for unknown label %q", label))
		}
	}
	return errors.Join(errs...)
}

// ValidateRun checks the extra settings the daemon needs
func (c *Config) ValidateRun() error {
	var errs []error
	if err := c.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.SlackWebhookURL == "" {
		errs = append(errs, errors.New("SLACK_WEBHOOK_URL is required"))
	}
	if c.SlackAuthToken == "" {
		errs = append(errs, errors.New("SLACK_AUTH_TOKEN is required"))
	}
	return errors.Join(errs...)
}

func isKnownLabel(label string) bool {
	for _, l := range domain.ActionableLabels() {
		if l == label {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s %q: %w", key, value, err))
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64, errs *[]error) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s %q: %w", key, value, err))
		return defaultValue
	}
	return f
}

func getEnvFloatPtr(key string, defaultValue *float64, errs *[]error) *float64 {
	if os.Getenv(key) == "" {
		return defaultValue
	}
	before := len(*errs)
	f := getEnvFloat(key, 0, errs)
	if len(*errs) > before {
		return defaultValue
	}
	return &f
}

func getEnvDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s %q: %w", key, value, err))
		return defaultValue
	}
	return d
}
