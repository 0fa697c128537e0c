package model

import (
	"database/sql"

	"posreport/internal/pkg/convert"
	"posreport/internal/types"
)

// The table models mirror the parts of the bot schema this tool reads. The
// bot owns the schema; these exist so tests and local snapshots can build it.

type PositionModel struct {
	ID              int64    `gorm:"column:id;primaryKey"`
	BotID           *int64   `gorm:"column:bot_id;index"`
	StrategyID      *int64   `gorm:"column:strategy_id;index"`
	Symbol          string   `gorm:"column:symbol"`
	Side            string   `gorm:"column:side"`
	EntryPrice      *float64 `gorm:"column:entry_price"`
	Amount          *float64 `gorm:"column:amount"`
	Quantity        *float64 `gorm:"column:quantity"`
	TakeProfitPrice *float64 `gorm:"column:take_profit_price"`
	StopLossPrice   *float64 `gorm:"column:stop_loss_price"`
	PnL             *float64 `gorm:"column:pnl"`
	PnLPercent      *float64 `gorm:"column:pnl_percent"`
	Status          string   `gorm:"column:status;index"`
	OpenedAt        *string  `gorm:"column:opened_at"`
	CreatedAt       *string  `gorm:"column:created_at"`
}

func (PositionModel) TableName() string { return "positions" }

type BotModel struct {
	ID             int64   `gorm:"column:id;primaryKey"`
	Exchange       *string `gorm:"column:exchange"`
	BinanceTestnet bool    `gorm:"column:binance_testnet"`
}

func (BotModel) TableName() string { return "bots" }

type StrategyModel struct {
	ID                int64    `gorm:"column:id;primaryKey"`
	IsReverseStrategy bool     `gorm:"column:is_reverse_strategy"`
	OCThreshold       *float64 `gorm:"column:oc_threshold"`
	Extend            *float64 `gorm:"column:extend"`
	TakeProfit        *float64 `gorm:"column:take_profit"`
	Stoploss          *float64 `gorm:"column:stoploss"`
}

func (StrategyModel) TableName() string { return "strategies" }

// OpenPositionRow is one row of store.OpenPositionsQuery. Every column is
// nullable because of the left joins and because the bot writes sparse rows.
// Flags go through convert.NullFlag since drivers disagree on their type.
type OpenPositionRow struct {
	ID                sql.NullInt64    `gorm:"column:id"`
	BotID             sql.NullInt64    `gorm:"column:bot_id"`
	StrategyID        sql.NullInt64    `gorm:"column:strategy_id"`
	Symbol            sql.NullString   `gorm:"column:symbol"`
	Side              sql.NullString   `gorm:"column:side"`
	EntryPrice        sql.NullFloat64  `gorm:"column:entry_price"`
	Amount            sql.NullFloat64  `gorm:"column:amount"`
	Quantity          sql.NullFloat64  `gorm:"column:quantity"`
	TakeProfitPrice   sql.NullFloat64  `gorm:"column:take_profit_price"`
	StopLossPrice     sql.NullFloat64  `gorm:"column:stop_loss_price"`
	PnL               sql.NullFloat64  `gorm:"column:pnl"`
	PnLPercent        sql.NullFloat64  `gorm:"column:pnl_percent"`
	Status            sql.NullString   `gorm:"column:status"`
	OpenedAt          sql.NullString   `gorm:"column:opened_at"`
	CreatedAt         sql.NullString   `gorm:"column:created_at"`
	Exchange          sql.NullString   `gorm:"column:exchange"`
	BinanceTestnet    convert.NullFlag `gorm:"column:binance_testnet"`
	IsReverseStrategy convert.NullFlag `gorm:"column:is_reverse_strategy"`
	OCThreshold       sql.NullFloat64  `gorm:"column:oc_threshold"`
	Extend            sql.NullFloat64  `gorm:"column:extend"`
	TakeProfit        sql.NullFloat64  `gorm:"column:take_profit"`
	Stoploss          sql.NullFloat64  `gorm:"column:stoploss"`
}

// ToPosition flattens the row, turning NULLs into zero values.
func (r OpenPositionRow) ToPosition() types.Position {
	return types.Position{
		ID:                 r.ID.Int64,
		BotID:              r.BotID.Int64,
		StrategyID:         r.StrategyID.Int64,
		Symbol:             convert.NullString(r.Symbol),
		Side:               convert.NullString(r.Side),
		EntryPrice:         convert.ToFloat64(r.EntryPrice),
		Amount:             convert.ToFloat64(r.Amount),
		Quantity:           convert.ToFloat64(r.Quantity),
		TakeProfitPrice:    convert.ToFloat64(r.TakeProfitPrice),
		StopLossPrice:      convert.ToFloat64(r.StopLossPrice),
		PnL:                convert.ToFloat64(r.PnL),
		PnLPercent:         convert.ToFloat64(r.PnLPercent),
		Status:             convert.NullString(r.Status),
		OpenedAt:           convert.NullString(r.OpenedAt),
		CreatedAt:          convert.NullString(r.CreatedAt),
		Exchange:           convert.NullString(r.Exchange),
		Testnet:            r.BinanceTestnet.Bool,
		ReverseStrategy:    r.IsReverseStrategy.Bool,
		OCThreshold:        convert.ToFloat64(r.OCThreshold),
		Extend:             convert.ToFloat64(r.Extend),
		StrategyTakeProfit: convert.ToFloat64(r.TakeProfit),
		StrategyStopLoss:   convert.ToFloat64(r.Stoploss),
	}
}

// ToPositions converts rows in order.
func ToPositions(rows []OpenPositionRow) []types.Position {
	out := make([]types.Position, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToPosition())
	}
	return out
}
