package store

import (
	"context"
	"errors"

	"posreport/internal/types"
)

// StatusOpen is the positions.status value this tool reports on.
const StatusOpen = "open"

// ErrNotConfigured is returned when a reader is used before it was opened.
var ErrNotConfigured = errors.New("store: position reader not configured")

// PositionReader is the single read operation the report needs.
type PositionReader interface {
	// OpenPositions returns every open position joined with its bot and
	// strategy, newest first.
	OpenPositions(ctx context.Context) ([]types.Position, error)
	// Close releases the underlying connection.
	Close() error
}

// OpenPositionsQuery selects open positions with bot and strategy attributes.
// The single placeholder is the status value.
const OpenPositionsQuery = `
SELECT
	p.id,
	p.bot_id,
	p.strategy_id,
	p.symbol,
	p.side,
	p.entry_price,
	p.amount,
	p.quantity,
	p.take_profit_price,
	p.stop_loss_price,
	p.pnl,
	p.pnl_percent,
	p.status,
	p.opened_at,
	p.created_at,
	b.exchange,
	b.binance_testnet,
	s.is_reverse_strategy,
	s.oc_threshold,
	s.extend,
	s.take_profit,
	s.stoploss
FROM positions p
LEFT JOIN bots b ON p.bot_id = b.id
LEFT JOIN strategies s ON p.strategy_id = s.id
WHERE p.status = ?
ORDER BY p.opened_at DESC`
