package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"posreport/internal/config"
	"posreport/internal/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func seedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bot_oc.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	bots, strategies, positions := storetest.Standard()
	require.NoError(t, storetest.Seed(db, bots, strategies, positions))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	return path
}

func TestNew_OpenPositions(t *testing.T) {
	path := seedFile(t)
	reader, err := New(config.DatabaseConfig{Driver: config.DriverSQLite, Path: path, QueryTimeout: 5 * time.Second})
	require.NoError(t, err)
	defer reader.Close()

	positions, err := reader.OpenPositions(context.Background())
	require.NoError(t, err)

	// Closed position 103 is filtered out; newest opened_at first, NULL last.
	require.Len(t, positions, 4)
	got := make([]int64, 0, len(positions))
	for _, p := range positions {
		got = append(got, p.ID)
	}
	assert.Equal(t, []int64{100, 102, 101, 104}, got)

	btc := positions[0]
	assert.Equal(t, "BTCUSDT", btc.Symbol)
	assert.Equal(t, "long", btc.Side)
	assert.Equal(t, 65000.0, btc.EntryPrice)
	assert.Equal(t, 0.0015, btc.Quantity)
	assert.Equal(t, 64000.0, btc.StopLossPrice)
	assert.Equal(t, 12.5, btc.PnL)
	assert.Equal(t, "open", btc.Status)
	assert.Equal(t, "2024-05-01 10:00:00", btc.OpenedAt)
	assert.Equal(t, "binance", btc.Exchange)
	assert.False(t, btc.Testnet)
	assert.True(t, btc.ReverseStrategy)
	assert.Equal(t, 1.5, btc.OCThreshold)
	assert.Equal(t, 20.0, btc.StrategyStopLoss)

	eth := positions[2]
	assert.True(t, eth.Testnet)
	assert.False(t, eth.ReverseStrategy)
	assert.False(t, eth.HasStopLoss())
	assert.False(t, eth.HasTakeProfit())

	// Dangling bot and strategy ids: the left joins yield NULLs.
	sol := positions[1]
	assert.Empty(t, sol.Exchange)
	assert.False(t, sol.Testnet)
	assert.False(t, sol.ReverseStrategy)
	assert.Zero(t, sol.PnL)
	assert.Zero(t, sol.EntryPrice)

	doge := positions[3]
	assert.Empty(t, doge.OpenedAt)
	assert.Zero(t, doge.BotID)
}

// The bot's own SQLite schema declares its flags BOOLEAN, which the driver
// hands back as Go bools rather than integers.
func TestNew_BooleanFlagColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bool.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	for _, stmt := range []string{
		`CREATE TABLE bots (id INTEGER PRIMARY KEY, exchange TEXT, binance_testnet BOOLEAN)`,
		`CREATE TABLE strategies (id INTEGER PRIMARY KEY, is_reverse_strategy BOOLEAN, oc_threshold REAL, extend REAL, take_profit REAL, stoploss REAL)`,
		`CREATE TABLE positions (id INTEGER PRIMARY KEY, bot_id INTEGER, strategy_id INTEGER, symbol TEXT, side TEXT,
			entry_price REAL, amount REAL, quantity REAL, take_profit_price REAL, stop_loss_price REAL,
			pnl REAL, pnl_percent REAL, status TEXT, opened_at TEXT, created_at TEXT)`,
		`INSERT INTO bots VALUES (1, 'binance', 1), (2, 'binance', 0)`,
		`INSERT INTO strategies VALUES (1, 1, NULL, NULL, NULL, NULL), (2, 0, NULL, NULL, NULL, NULL)`,
		`INSERT INTO positions (id, bot_id, strategy_id, symbol, side, pnl, status, opened_at) VALUES
			(1, 1, 1, 'BTCUSDT', 'long', -2, 'open', '2024-05-01 10:00:00'),
			(2, 2, 2, 'ETHUSDT', 'short', 3, 'open', '2024-05-01 09:00:00')`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	reader, err := New(config.DatabaseConfig{Path: path, QueryTimeout: 5 * time.Second})
	require.NoError(t, err)
	defer reader.Close()

	positions, err := reader.OpenPositions(context.Background())
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.True(t, positions[0].Testnet)
	assert.True(t, positions[0].ReverseStrategy)
	assert.False(t, positions[1].Testnet)
	assert.False(t, positions[1].ReverseStrategy)
}

// A REAL column can hold an overflowed literal that scans as +Inf.
func TestNew_NonFinitePnL(t *testing.T) {
	path := seedFile(t)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`UPDATE positions SET pnl = 9e999, pnl_percent = -9e999 WHERE id = 100`).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	reader, err := New(config.DatabaseConfig{Path: path, QueryTimeout: 5 * time.Second})
	require.NoError(t, err)
	defer reader.Close()

	positions, err := reader.OpenPositions(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, positions)
	assert.Equal(t, int64(100), positions[0].ID)
	assert.Zero(t, positions[0].PnL)
	assert.Zero(t, positions[0].PnLPercent)
}

func TestNew_MissingFile(t *testing.T) {
	reader, err := New(config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "nope.db"), QueryTimeout: time.Second})
	if err == nil {
		// Some sqlite builds defer the open until the first query.
		defer reader.Close()
		_, err = reader.OpenPositions(context.Background())
	}
	assert.Error(t, err)
}

func TestNew_EmptyPath(t *testing.T) {
	_, err := New(config.DatabaseConfig{Path: "  "})
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "file:/tmp/bot.db?mode=ro&_busy_timeout=2000",
		DSN("/tmp/bot.db", config.DatabaseConfig{ConnectTimeout: 2 * time.Second}))
	assert.Equal(t, "file:/tmp/bot.db?mode=ro&_busy_timeout=5000", DSN("/tmp/bot.db", config.DatabaseConfig{}))
}
