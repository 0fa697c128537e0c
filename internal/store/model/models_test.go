package model

import (
	"database/sql"
	"testing"

	"posreport/internal/pkg/convert"

	"github.com/stretchr/testify/assert"
)

func TestOpenPositionRow_ToPosition(t *testing.T) {
	row := OpenPositionRow{
		ID:                sql.NullInt64{Int64: 7, Valid: true},
		Symbol:            sql.NullString{String: "BTCUSDT", Valid: true},
		Side:              sql.NullString{String: "long", Valid: true},
		EntryPrice:        sql.NullFloat64{Float64: 100, Valid: true},
		PnL:               sql.NullFloat64{Float64: -2.5, Valid: true},
		Status:            sql.NullString{String: "open", Valid: true},
		OpenedAt:          sql.NullString{String: "2024-05-01 10:00:00", Valid: true},
		Exchange:          sql.NullString{String: "binance", Valid: true},
		BinanceTestnet:    convert.NullFlag{Bool: true, Valid: true},
		IsReverseStrategy: convert.NullFlag{Valid: true},
	}
	p := row.ToPosition()
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "BTCUSDT", p.Symbol)
	assert.Equal(t, 100.0, p.EntryPrice)
	assert.Equal(t, -2.5, p.PnL)
	assert.True(t, p.Losing())
	assert.True(t, p.Testnet)
	assert.False(t, p.ReverseStrategy)
	assert.False(t, p.HasStopLoss())
	assert.Equal(t, "2024-05-01 10:00:00", p.OpenedAt)
}

func TestOpenPositionRow_AllNull(t *testing.T) {
	p := OpenPositionRow{}.ToPosition()
	assert.Zero(t, p.PnL)
	assert.Empty(t, p.Exchange)
	assert.Empty(t, p.OpenedAt)
	assert.False(t, p.Testnet)
	assert.False(t, p.Winning())
	assert.False(t, p.Losing())
}

func TestToPositions_KeepsOrder(t *testing.T) {
	rows := []OpenPositionRow{
		{ID: sql.NullInt64{Int64: 3, Valid: true}},
		{ID: sql.NullInt64{Int64: 1, Valid: true}},
		{ID: sql.NullInt64{Int64: 2, Valid: true}},
	}
	got := ToPositions(rows)
	assert.Equal(t, []int64{3, 1, 2}, []int64{got[0].ID, got[1].ID, got[2].ID})
	assert.NotNil(t, ToPositions(nil))
}
