package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// PathEnv names the environment variable that points at the YAML config file.
const PathEnv = "POSREPORT_CONFIG"

// DefaultPath is used when PathEnv is unset.
const DefaultPath = "configs/posreport.yaml"

// envBindings maps config keys to the environment variables that override them.
// The DB_* names are shared with the trading bot itself.
var envBindings = map[string][]string{
	"app.log_level":         {"POSREPORT_LOG_LEVEL"},
	"database.driver":       {"DB_DRIVER"},
	"database.host":         {"DB_HOST"},
	"database.port":         {"DB_PORT"},
	"database.user":         {"DB_USER"},
	"database.password":     {"DB_PASSWORD"},
	"database.name":         {"DB_NAME"},
	"database.path":         {"DB_PATH"},
	"report.format":         {"POSREPORT_FORMAT"},
	"report.quote_currency": {"POSREPORT_QUOTE_CURRENCY"},
	"report.chart_path":     {"POSREPORT_CHART_PATH"},
}

// ResolvePath returns the config path from the environment or the default.
func ResolvePath() string {
	if p := strings.TrimSpace(os.Getenv(PathEnv)); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the optional YAML file at path, layers .env and process
// environment overrides on top, applies defaults for unset keys and validates
// the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	// .env is optional; values already in the environment win.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	if err := mergeConfigFile(v, path); err != nil {
		return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
	}
	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	setKeys := make(keySet)
	collectSettingsKeys(v.AllSettings(), setKeys)
	cfg.applyDefaults(setKeys)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	tmp := viper.New()
	tmp.SetConfigFile(path)
	if err := tmp.ReadInConfig(); err != nil {
		return err
	}
	return v.MergeConfigMap(tmp.AllSettings())
}

func collectSettingsKeys(settings map[string]any, dest keySet) {
	if dest == nil || len(settings) == 0 {
		return
	}
	flattenConfigKeys("", settings, dest)
}

func flattenConfigKeys(prefix string, node any, dest keySet) {
	switch val := node.(type) {
	case map[string]any:
		for k, v := range val {
			next := strings.ToLower(strings.TrimSpace(k))
			if next == "" {
				continue
			}
			if prefix != "" {
				next = prefix + "." + next
			}
			flattenConfigKeys(next, v, dest)
		}
	case map[interface{}]interface{}:
		for k, v := range val {
			keyStr, ok := k.(string)
			if !ok {
				continue
			}
			next := strings.ToLower(strings.TrimSpace(keyStr))
			if next == "" {
				continue
			}
			if prefix != "" {
				next = prefix + "." + next
			}
			flattenConfigKeys(next, v, dest)
		}
	default:
		if prefix != "" {
			dest.mark(prefix)
		}
	}
}
