package types

// Position is one open position joined with its owning bot and strategy.
// Numeric fields that were NULL in the database are zero here.
type Position struct {
	ID         int64  `json:"id" yaml:"id"`
	BotID      int64  `json:"bot_id" yaml:"bot_id"`
	StrategyID int64  `json:"strategy_id" yaml:"strategy_id"`
	Symbol     string `json:"symbol" yaml:"symbol"`
	Side       string `json:"side" yaml:"side"`

	EntryPrice float64 `json:"entry_price" yaml:"entry_price"`
	Amount     float64 `json:"amount" yaml:"amount"`
	Quantity   float64 `json:"quantity" yaml:"quantity"`

	// Zero means the target is not set.
	TakeProfitPrice float64 `json:"take_profit_price" yaml:"take_profit_price"`
	StopLossPrice   float64 `json:"stop_loss_price" yaml:"stop_loss_price"`

	PnL        float64 `json:"pnl" yaml:"pnl"`
	PnLPercent float64 `json:"pnl_percent" yaml:"pnl_percent"`

	Status string `json:"status" yaml:"status"`
	// Raw timestamps as returned by the driver; parsed only where needed.
	OpenedAt  string `json:"opened_at,omitempty" yaml:"opened_at,omitempty"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`

	Exchange string `json:"exchange,omitempty" yaml:"exchange,omitempty"`
	Testnet  bool   `json:"binance_testnet" yaml:"binance_testnet"`

	ReverseStrategy    bool    `json:"is_reverse_strategy" yaml:"is_reverse_strategy"`
	OCThreshold        float64 `json:"oc_threshold" yaml:"oc_threshold"`
	Extend             float64 `json:"extend" yaml:"extend"`
	StrategyTakeProfit float64 `json:"take_profit" yaml:"take_profit"`
	StrategyStopLoss   float64 `json:"stoploss" yaml:"stoploss"`
}

// HasStopLoss reports whether a stop-loss price is set.
func (p Position) HasStopLoss() bool {
	return p.StopLossPrice != 0
}

// HasTakeProfit reports whether a take-profit price is set.
func (p Position) HasTakeProfit() bool {
	return p.TakeProfitPrice != 0
}

// Winning and Losing are mutually exclusive; a flat position is neither.
func (p Position) Winning() bool { return p.PnL > 0 }

func (p Position) Losing() bool { return p.PnL < 0 }
