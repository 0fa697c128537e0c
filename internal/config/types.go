package config

import (
	"strings"
	"time"
)

// Config is the posreport configuration root.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Report   ReportConfig   `mapstructure:"report"`
}

type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// DatabaseConfig describes where the bot database lives.
type DatabaseConfig struct {
	Driver         string        `mapstructure:"driver"` // "mysql" | "sqlite"
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	Name           string        `mapstructure:"name"`
	Path           string        `mapstructure:"path"` // sqlite file
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// ReportConfig controls report limits and output.
type ReportConfig struct {
	Format            string  `mapstructure:"format"` // "text" | "json" | "yaml"
	QuoteCurrency     string  `mapstructure:"quote_currency"`
	TopLosing         int     `mapstructure:"top_losing"`
	MissingExitSample int     `mapstructure:"missing_exit_sample"`
	OldAfterHours     float64 `mapstructure:"old_after_hours"`
	OldSample         int     `mapstructure:"old_sample"`
	ChartPath         string  `mapstructure:"chart_path"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func (d DatabaseConfig) NormalizedDriver() string {
	return strings.ToLower(strings.TrimSpace(d.Driver))
}

func (r ReportConfig) NormalizedFormat() string {
	return strings.ToLower(strings.TrimSpace(r.Format))
}

type keySet map[string]struct{}

func (k keySet) mark(path string) {
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return
	}
	k[path] = struct{}{}
}

func (k keySet) isSet(path string) bool {
	if len(k) == 0 {
		return false
	}
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return false
	}
	_, ok := k[path]
	return ok
}

// fieldDefault describes how a single field gets its default value.
type fieldDefault struct {
	key   string
	need  func() bool
	apply func()
}
