package config

import (
	"fmt"
	"strings"
)

// validate performs basic sanity checks on a loaded configuration.
func validate(c *Config) error {
	if err := c.Database.validate(); err != nil {
		return err
	}
	if err := c.Report.validate(); err != nil {
		return err
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.NormalizedDriver() {
	case DriverMySQL:
		if strings.TrimSpace(d.Host) == "" {
			return fmt.Errorf("database.host cannot be empty")
		}
		if d.Port <= 0 || d.Port > 65535 {
			return fmt.Errorf("database.port out of range: %d", d.Port)
		}
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("database.name cannot be empty")
		}
	case DriverSQLite:
		if strings.TrimSpace(d.Path) == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("database.driver %q unsupported (mysql|sqlite)", d.Driver)
	}
	if d.QueryTimeout <= 0 {
		return fmt.Errorf("database.query_timeout must be > 0")
	}
	if d.ConnectTimeout <= 0 {
		return fmt.Errorf("database.connect_timeout must be > 0")
	}
	return nil
}

func (r *ReportConfig) validate() error {
	switch r.NormalizedFormat() {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("report.format %q unsupported (text|json|yaml)", r.Format)
	}
	if r.TopLosing <= 0 {
		return fmt.Errorf("report.top_losing must be > 0")
	}
	if r.MissingExitSample <= 0 {
		return fmt.Errorf("report.missing_exit_sample must be > 0")
	}
	if r.OldSample <= 0 {
		return fmt.Errorf("report.old_sample must be > 0")
	}
	if r.OldAfterHours <= 0 {
		return fmt.Errorf("report.old_after_hours must be > 0")
	}
	return nil
}
