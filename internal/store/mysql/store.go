// Package mysql opens the trading bot's MySQL database for reading.
package mysql

import (
	"net"
	"strconv"
	"strings"
	"time"

	"posreport/internal/config"
	"posreport/internal/store/gormstore"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
)

// DSN builds a go-sql-driver DSN. Timestamps stay as text so the report can
// parse them tolerantly; DECIMAL columns arrive as text and are scanned as floats.
func DSN(cfg config.DatabaseConfig) string {
	dc := mysqldrv.NewConfig()
	dc.User = cfg.User
	dc.Passwd = cfg.Password
	dc.Net = "tcp"
	dc.Addr = net.JoinHostPort(strings.TrimSpace(cfg.Host), strconv.Itoa(cfg.Port))
	dc.DBName = cfg.Name
	dc.ParseTime = false
	dc.Loc = time.Local
	dc.Timeout = cfg.ConnectTimeout
	dc.ReadTimeout = cfg.QueryTimeout
	dc.Params = map[string]string{"charset": "utf8mb4"}
	return dc.FormatDSN()
}

// New connects to MySQL. The connection is pinged on open, so an unreachable
// server fails here rather than at query time.
func New(cfg config.DatabaseConfig) (*gormstore.Reader, error) {
	dialector := mysql.New(mysql.Config{
		DSN:                       DSN(cfg),
		SkipInitializeWithVersion: true,
	})
	return gormstore.Open(dialector, cfg.QueryTimeout)
}
