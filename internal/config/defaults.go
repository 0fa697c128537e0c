package config

import (
	"strings"
	"time"
)

const (
	defaultLogLevel          = "info"
	defaultDBDriver          = DriverMySQL
	defaultDBHost            = "localhost"
	defaultDBPort            = 3306
	defaultDBUser            = "root"
	defaultDBName            = "bot_oc"
	defaultDBPath            = "data/bot_oc.db"
	defaultQueryTimeout      = 30 * time.Second
	defaultConnectTimeout    = 10 * time.Second
	defaultReportFormat      = FormatText
	defaultQuoteCurrency     = "USDT"
	defaultTopLosing         = 10
	defaultMissingExitSample = 5
	defaultOldAfterHours     = 24
	defaultOldSample         = 5
)

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults(nil)
	return &cfg
}

func (c *Config) applyDefaults(keys keySet) {
	c.App.applyDefaults(keys)
	c.Database.applyDefaults(keys)
	c.Report.applyDefaults(keys)
}

func (a *AppConfig) applyDefaults(keys keySet) {
	if a == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("app.log_level", &a.LogLevel, defaultLogLevel),
	)
}

func (d *DatabaseConfig) applyDefaults(keys keySet) {
	if d == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("database.driver", &d.Driver, defaultDBDriver),
		stringFieldDefault("database.host", &d.Host, defaultDBHost),
		stringFieldDefault("database.user", &d.User, defaultDBUser),
		stringFieldDefault("database.name", &d.Name, defaultDBName),
		stringFieldDefault("database.path", &d.Path, defaultDBPath),
		intFieldDefault("database.port", &d.Port, defaultDBPort),
		durationFieldDefault("database.query_timeout", &d.QueryTimeout, defaultQueryTimeout),
		durationFieldDefault("database.connect_timeout", &d.ConnectTimeout, defaultConnectTimeout),
	)
}

func (r *ReportConfig) applyDefaults(keys keySet) {
	if r == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("report.format", &r.Format, defaultReportFormat),
		stringFieldDefault("report.quote_currency", &r.QuoteCurrency, defaultQuoteCurrency),
		intFieldDefault("report.top_losing", &r.TopLosing, defaultTopLosing),
		intFieldDefault("report.missing_exit_sample", &r.MissingExitSample, defaultMissingExitSample),
		intFieldDefault("report.old_sample", &r.OldSample, defaultOldSample),
		fieldDefault{
			key:   "report.old_after_hours",
			need:  func() bool { return r.OldAfterHours <= 0 },
			apply: func() { r.OldAfterHours = defaultOldAfterHours },
		},
	)
}

// applyFieldDefaults skips keys the user set explicitly so validation can
// reject bad values instead of silently replacing them.
func applyFieldDefaults(keys keySet, defs ...fieldDefault) {
	for _, def := range defs {
		if def.apply == nil {
			continue
		}
		if def.key != "" && keys.isSet(def.key) {
			continue
		}
		if def.need != nil && !def.need() {
			continue
		}
		def.apply()
	}
}

func stringFieldDefault(key string, target *string, def string) fieldDefault {
	return fieldDefault{
		key: key,
		need: func() bool {
			return target != nil && strings.TrimSpace(*target) == ""
		},
		apply: func() {
			if target != nil {
				*target = def
			}
		},
	}
}

func intFieldDefault(key string, target *int, def int) fieldDefault {
	return fieldDefault{
		key:  key,
		need: func() bool { return target != nil && *target <= 0 },
		apply: func() {
			if target != nil {
				*target = def
			}
		},
	}
}

func durationFieldDefault(key string, target *time.Duration, def time.Duration) fieldDefault {
	return fieldDefault{
		key:  key,
		need: func() bool { return target != nil && *target <= 0 },
		apply: func() {
			if target != nil {
				*target = def
			}
		},
	}
}
