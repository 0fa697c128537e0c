package sqlite

import (
	"fmt"
	"strings"

	"posreport/internal/config"
	"posreport/internal/store/gormstore"

	"gorm.io/driver/sqlite"
)

// DSN opens the file read-only; the report never writes.
func DSN(path string, cfg config.DatabaseConfig) string {
	busy := cfg.ConnectTimeout.Milliseconds()
	if busy <= 0 {
		busy = 5000
	}
	return fmt.Sprintf("file:%s?mode=ro&_busy_timeout=%d", path, busy)
}

// New opens a local copy of the bot database.
func New(cfg config.DatabaseConfig) (*gormstore.Reader, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	return gormstore.Open(sqlite.Open(DSN(path, cfg)), cfg.QueryTimeout)
}
