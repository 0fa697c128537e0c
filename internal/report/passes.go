package report

import (
	"sort"
	"strings"
	"time"

	"posreport/internal/pkg/convert"
	"posreport/internal/pkg/symbol"
	"posreport/internal/types"

	"github.com/shopspring/decimal"
)

const unknownVenue = "unknown"

// VenueKey joins the exchange with a _testnet suffix for sandbox bots.
func VenueKey(p types.Position) string {
	exchange := strings.TrimSpace(p.Exchange)
	if exchange == "" {
		exchange = unknownVenue
	}
	if p.Testnet {
		return exchange + "_testnet"
	}
	return exchange
}

// ByVenue counts positions per venue in first-seen order.
func ByVenue(positions []types.Position) []VenueCount {
	index := make(map[string]int)
	out := make([]VenueCount, 0)
	for _, p := range positions {
		key := VenueKey(p)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, VenueCount{Venue: key})
		}
		out[i].Count++
	}
	return out
}

// Losing aggregates positions with negative PnL. Top holds at most limit
// positions, most negative first.
func Losing(positions []types.Position, limit int) LosingSection {
	losing := filter(positions, types.Position.Losing)
	sec := LosingSection{Count: len(losing), Top: []types.Position{}}
	if len(losing) == 0 {
		return sec
	}
	total := sumPnL(losing)
	sec.Total = total.InexactFloat64()
	sec.Average = mean(total, len(losing))
	sec.Worst = losing[0].PnL
	for _, p := range losing[1:] {
		if p.PnL < sec.Worst {
			sec.Worst = p.PnL
		}
	}
	sorted := append([]types.Position(nil), losing...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PnL < sorted[j].PnL })
	sec.Top = head(sorted, limit)
	return sec
}

// Winning aggregates positions with positive PnL.
func Winning(positions []types.Position) WinningSection {
	winning := filter(positions, types.Position.Winning)
	sec := WinningSection{Count: len(winning)}
	if len(winning) == 0 {
		return sec
	}
	total := sumPnL(winning)
	sec.Total = total.InexactFloat64()
	sec.Average = mean(total, len(winning))
	sec.Best = winning[0].PnL
	for _, p := range winning[1:] {
		if p.PnL > sec.Best {
			sec.Best = p.PnL
		}
	}
	return sec
}

type orientationAcc struct {
	row OrientationRow
	pnl decimal.Decimal
}

// ByOrientation splits positions into counter-trend and following-trend
// strategies, in first-seen order.
func ByOrientation(positions []types.Position) []OrientationRow {
	accs := make(map[Orientation]*orientationAcc)
	var order []Orientation
	for _, p := range positions {
		o := OrientationOf(p)
		acc, ok := accs[o]
		if !ok {
			acc = &orientationAcc{row: OrientationRow{Orientation: o}, pnl: decimal.Zero}
			accs[o] = acc
			order = append(order, o)
		}
		acc.row.Total++
		acc.pnl = acc.pnl.Add(pnlOf(p))
		switch {
		case p.Winning():
			acc.row.Winning++
		case p.Losing():
			acc.row.Losing++
		}
	}
	out := make([]OrientationRow, 0, len(order))
	for _, o := range order {
		acc := accs[o]
		acc.row.PnL = acc.pnl.InexactFloat64()
		acc.row.WinRate = winRate(acc.row.Winning, acc.row.Total)
		out = append(out, acc.row)
	}
	return out
}

// MissingStopLoss lists positions whose stop-loss is unset or zero, keeping
// query order for the sample.
func MissingStopLoss(positions []types.Position, limit int) ExitGap {
	return exitGap(positions, limit, types.Position.HasStopLoss)
}

// MissingTakeProfit is MissingStopLoss for the take-profit target.
func MissingTakeProfit(positions []types.Position, limit int) ExitGap {
	return exitGap(positions, limit, types.Position.HasTakeProfit)
}

func exitGap(positions []types.Position, limit int, has func(types.Position) bool) ExitGap {
	missing := filter(positions, func(p types.Position) bool { return !has(p) })
	return ExitGap{Count: len(missing), Sample: head(missing, limit)}
}

// AgeBuckets splits positions by hours since opened_at. A position exactly at
// thresholdHours is old. Positions without a parseable opened_at are left out
// of both buckets; the non-empty unparseable ones are counted.
func AgeBuckets(positions []types.Position, now time.Time, thresholdHours float64, limit int) AgeSection {
	sec := AgeSection{ThresholdHours: thresholdHours, Oldest: []AgedPosition{}}
	// opened_at is naive wall-clock time, so compare in now's location.
	loc := now.Location()
	var old []AgedPosition
	for _, p := range positions {
		if strings.TrimSpace(p.OpenedAt) == "" {
			continue
		}
		opened, ok := convert.ParseWallClock(p.OpenedAt, loc)
		if !ok {
			sec.Unparseable++
			continue
		}
		hours := now.Sub(opened).Hours()
		if hours < thresholdHours {
			sec.Recent++
			continue
		}
		old = append(old, AgedPosition{Position: p, Hours: hours})
	}
	sec.Old = len(old)
	sort.SliceStable(old, func(i, j int) bool { return old[i].Hours > old[j].Hours })
	if limit >= 0 && len(old) > limit {
		old = old[:limit]
	}
	if len(old) > 0 {
		sec.Oldest = old
	}
	return sec
}

// BySymbol sums PnL per trading pair in first-seen order. Spellings of the
// same pair ("BTC/USDT:USDT", "BTCUSDT") share a row.
func BySymbol(positions []types.Position, quote string) []SymbolPnL {
	index := make(map[string]int)
	sums := make([]decimal.Decimal, 0)
	out := make([]SymbolPnL, 0)
	for _, p := range positions {
		sym := symbol.Key(p.Symbol, quote)
		if sym == "" {
			sym = notSet
		}
		i, ok := index[sym]
		if !ok {
			i = len(out)
			index[sym] = i
			out = append(out, SymbolPnL{Symbol: sym})
			sums = append(sums, decimal.Zero)
		}
		out[i].Count++
		sums[i] = sums[i].Add(pnlOf(p))
	}
	for i := range out {
		out[i].PnL = sums[i].InexactFloat64()
	}
	return out
}

func filter(positions []types.Position, keep func(types.Position) bool) []types.Position {
	out := make([]types.Position, 0)
	for _, p := range positions {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func head(positions []types.Position, limit int) []types.Position {
	if limit < 0 || len(positions) <= limit {
		return positions
	}
	return positions[:limit]
}

// pnlOf never panics: decimal rejects NaN and infinities.
func pnlOf(p types.Position) decimal.Decimal {
	return decimal.NewFromFloat(convert.Finite(p.PnL))
}

func sumPnL(positions []types.Position) decimal.Decimal {
	total := decimal.Zero
	for _, p := range positions {
		total = total.Add(pnlOf(p))
	}
	return total
}

func mean(total decimal.Decimal, n int) float64 {
	if n == 0 {
		return 0
	}
	return total.Div(decimal.NewFromInt(int64(n))).InexactFloat64()
}

// winRate is a percentage in [0, 100]; zero when total is zero.
func winRate(winning, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(winning) / float64(total) * 100
}
