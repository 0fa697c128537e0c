// Package report turns a snapshot of open positions into the position
// analysis report: venue split, win/loss aggregates, strategy orientation,
// missing exit targets, position age and rule-based recommendations.
//
// Every pass is a pure function over the position slice and degrades to zero
// values on empty input.
package report

import (
	"time"

	"posreport/internal/pkg/convert"
	"posreport/internal/types"
)

// Options tunes list sizes and thresholds. Zero fields take DefaultOptions.
type Options struct {
	QuoteCurrency     string
	TopLosing         int
	MissingExitSample int
	OldAfterHours     float64
	OldSample         int
}

// DefaultOptions matches the layout operators are used to.
func DefaultOptions() Options {
	return Options{
		QuoteCurrency:     "USDT",
		TopLosing:         10,
		MissingExitSample: 5,
		OldAfterHours:     24,
		OldSample:         5,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.QuoteCurrency == "" {
		o.QuoteCurrency = def.QuoteCurrency
	}
	if o.TopLosing <= 0 {
		o.TopLosing = def.TopLosing
	}
	if o.MissingExitSample <= 0 {
		o.MissingExitSample = def.MissingExitSample
	}
	if o.OldAfterHours <= 0 {
		o.OldAfterHours = def.OldAfterHours
	}
	if o.OldSample <= 0 {
		o.OldSample = def.OldSample
	}
	return o
}

// Report is the fully computed analysis, ready for any renderer.
type Report struct {
	GeneratedAt       time.Time        `json:"generated_at" yaml:"generated_at"`
	QuoteCurrency     string           `json:"quote_currency" yaml:"quote_currency"`
	TotalPositions    int              `json:"total_positions" yaml:"total_positions"`
	Venues            []VenueCount     `json:"venues" yaml:"venues"`
	Losing            LosingSection    `json:"losing" yaml:"losing"`
	Winning           WinningSection   `json:"winning" yaml:"winning"`
	Orientations      []OrientationRow `json:"orientations" yaml:"orientations"`
	MissingStopLoss   ExitGap          `json:"missing_stop_loss" yaml:"missing_stop_loss"`
	MissingTakeProfit ExitGap          `json:"missing_take_profit" yaml:"missing_take_profit"`
	Age               AgeSection       `json:"age" yaml:"age"`
	Symbols           []SymbolPnL      `json:"symbols" yaml:"symbols"`
	Summary           Summary          `json:"summary" yaml:"summary"`
	Recommendations   []Recommendation `json:"recommendations" yaml:"recommendations"`
}

type VenueCount struct {
	Venue string `json:"venue" yaml:"venue"`
	Count int    `json:"count" yaml:"count"`
}

type LosingSection struct {
	Count   int              `json:"count" yaml:"count"`
	Total   float64          `json:"total" yaml:"total"`
	Average float64          `json:"average" yaml:"average"`
	Worst   float64          `json:"worst" yaml:"worst"`
	Top     []types.Position `json:"top" yaml:"top"`
}

type WinningSection struct {
	Count   int     `json:"count" yaml:"count"`
	Total   float64 `json:"total" yaml:"total"`
	Average float64 `json:"average" yaml:"average"`
	Best    float64 `json:"best" yaml:"best"`
}

// Orientation classifies a strategy as trading against or with the trend.
type Orientation string

const (
	CounterTrend   Orientation = "COUNTER_TREND"
	FollowingTrend Orientation = "FOLLOWING_TREND"
)

// OrientationOf maps the strategy's reverse flag to its orientation.
func OrientationOf(p types.Position) Orientation {
	if p.ReverseStrategy {
		return CounterTrend
	}
	return FollowingTrend
}

type OrientationRow struct {
	Orientation Orientation `json:"orientation" yaml:"orientation"`
	Total       int         `json:"total" yaml:"total"`
	Winning     int         `json:"winning" yaml:"winning"`
	Losing      int         `json:"losing" yaml:"losing"`
	PnL         float64     `json:"pnl" yaml:"pnl"`
	WinRate     float64     `json:"win_rate" yaml:"win_rate"`
}

// ExitGap lists positions lacking a stop-loss or take-profit.
type ExitGap struct {
	Count  int              `json:"count" yaml:"count"`
	Sample []types.Position `json:"sample" yaml:"sample"`
}

type AgedPosition struct {
	Position types.Position `json:"position" yaml:"position"`
	Hours    float64        `json:"hours" yaml:"hours"`
}

type AgeSection struct {
	ThresholdHours float64        `json:"threshold_hours" yaml:"threshold_hours"`
	Recent         int            `json:"recent" yaml:"recent"`
	Old            int            `json:"old" yaml:"old"`
	Oldest         []AgedPosition `json:"oldest" yaml:"oldest"`
	// Unparseable counts positions whose opened_at is set but not a timestamp.
	Unparseable int `json:"unparseable" yaml:"unparseable"`
}

type SymbolPnL struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Count  int     `json:"count" yaml:"count"`
	PnL    float64 `json:"pnl" yaml:"pnl"`
}

type Summary struct {
	Total             int     `json:"total" yaml:"total"`
	Winning           int     `json:"winning" yaml:"winning"`
	Losing            int     `json:"losing" yaml:"losing"`
	TotalPnL          float64 `json:"total_pnl" yaml:"total_pnl"`
	WinRate           float64 `json:"win_rate" yaml:"win_rate"`
	MissingStopLoss   int     `json:"missing_stop_loss" yaml:"missing_stop_loss"`
	MissingTakeProfit int     `json:"missing_take_profit" yaml:"missing_take_profit"`
}

// Build runs every pass over positions. now anchors the age buckets and the
// report timestamp.
func Build(positions []types.Position, now time.Time, opts Options) *Report {
	opts = opts.normalized()
	positions = finite(positions)
	r := &Report{
		GeneratedAt:       now,
		QuoteCurrency:     opts.QuoteCurrency,
		TotalPositions:    len(positions),
		Venues:            ByVenue(positions),
		Losing:            Losing(positions, opts.TopLosing),
		Winning:           Winning(positions),
		Orientations:      ByOrientation(positions),
		MissingStopLoss:   MissingStopLoss(positions, opts.MissingExitSample),
		MissingTakeProfit: MissingTakeProfit(positions, opts.MissingExitSample),
		Age:               AgeBuckets(positions, now, opts.OldAfterHours, opts.OldSample),
		Symbols:           BySymbol(positions, opts.QuoteCurrency),
	}
	r.Summary = Summary{
		Total:             len(positions),
		Winning:           r.Winning.Count,
		Losing:            r.Losing.Count,
		TotalPnL:          sumPnL(positions).InexactFloat64(),
		WinRate:           winRate(r.Winning.Count, len(positions)),
		MissingStopLoss:   r.MissingStopLoss.Count,
		MissingTakeProfit: r.MissingTakeProfit.Count,
	}
	r.Recommendations = Recommend(r)
	return r
}

// finite copies positions with NaN and infinite numbers zeroed, the same way
// the store treats malformed numeric columns.
func finite(positions []types.Position) []types.Position {
	out := make([]types.Position, len(positions))
	for i, p := range positions {
		for _, f := range []*float64{
			&p.EntryPrice, &p.Amount, &p.Quantity, &p.TakeProfitPrice, &p.StopLossPrice,
			&p.PnL, &p.PnLPercent, &p.OCThreshold, &p.Extend, &p.StrategyTakeProfit, &p.StrategyStopLoss,
		} {
			*f = convert.Finite(*f)
		}
		out[i] = p
	}
	return out
}
