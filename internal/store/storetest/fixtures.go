// Package storetest seeds a throwaway copy of the bot schema for tests.
package storetest

import (
	"posreport/internal/store/model"

	"gorm.io/gorm"
)

func F(v float64) *float64 { return &v }
func I(v int64) *int64     { return &v }
func S(v string) *string   { return &v }

// Seed creates positions, bots and strategies and inserts the given rows.
func Seed(db *gorm.DB, bots []model.BotModel, strategies []model.StrategyModel, positions []model.PositionModel) error {
	if err := db.AutoMigrate(&model.BotModel{}, &model.StrategyModel{}, &model.PositionModel{}); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if len(bots) > 0 {
			if err := tx.Create(&bots).Error; err != nil {
				return err
			}
		}
		if len(strategies) > 0 {
			if err := tx.Create(&strategies).Error; err != nil {
				return err
			}
		}
		if len(positions) > 0 {
			if err := tx.Create(&positions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Standard is a small dataset covering joins, NULLs and the status filter.
func Standard() ([]model.BotModel, []model.StrategyModel, []model.PositionModel) {
	bots := []model.BotModel{
		{ID: 1, Exchange: S("binance"), BinanceTestnet: false},
		{ID: 2, Exchange: S("binance"), BinanceTestnet: true},
		{ID: 3, Exchange: S("mexc")},
	}
	strategies := []model.StrategyModel{
		{ID: 10, IsReverseStrategy: true, OCThreshold: F(1.5), Extend: F(60), TakeProfit: F(50), Stoploss: F(20)},
		{ID: 11, IsReverseStrategy: false},
	}
	positions := []model.PositionModel{
		{ID: 100, BotID: I(1), StrategyID: I(10), Symbol: "BTCUSDT", Side: "long",
			EntryPrice: F(65000), Amount: F(100), Quantity: F(0.0015),
			TakeProfitPrice: F(66000), StopLossPrice: F(64000), PnL: F(12.5), PnLPercent: F(1.25),
			Status: "open", OpenedAt: S("2024-05-01 10:00:00"), CreatedAt: S("2024-05-01 10:00:00")},
		{ID: 101, BotID: I(2), StrategyID: I(11), Symbol: "ETHUSDT", Side: "short",
			EntryPrice: F(3000), PnL: F(-4), Status: "open", OpenedAt: S("2024-04-29 08:00:00")},
		{ID: 102, BotID: I(99), StrategyID: I(99), Symbol: "SOLUSDT", Side: "long",
			Status: "open", OpenedAt: S("2024-04-30T09:15:00Z")},
		{ID: 103, BotID: I(3), StrategyID: I(11), Symbol: "XRPUSDT", Side: "long",
			PnL: F(3), Status: "closed", OpenedAt: S("2024-05-01 11:00:00")},
		{ID: 104, Symbol: "DOGEUSDT", Side: "short", Status: "open"},
	}
	return bots, strategies, positions
}
