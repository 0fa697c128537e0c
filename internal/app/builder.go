package app

import (
	"fmt"

	"posreport/internal/config"
	"posreport/internal/store"
	"posreport/internal/store/mysql"
	"posreport/internal/store/sqlite"
)

// Opener connects to the position store described by cfg.
type Opener func(cfg config.DatabaseConfig) (store.PositionReader, error)

// OpenReader picks the store implementation for the configured driver.
func OpenReader(cfg config.DatabaseConfig) (store.PositionReader, error) {
	switch cfg.NormalizedDriver() {
	case config.DriverMySQL, "":
		r, err := mysql.New(cfg)
		if err != nil {
			return nil, err
		}
		return r, nil
	case config.DriverSQLite:
		r, err := sqlite.New(cfg)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
