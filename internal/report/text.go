package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"posreport/internal/types"
)

const (
	ruleWidth = 80
	notSet    = "N/A"
)

var rule = strings.Repeat("=", ruleWidth)

// keycaps numbers the analysis steps.
var keycaps = []string{"0️⃣", "1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣"}

// RenderText writes the human-readable report.
func RenderText(w io.Writer, r *Report) error {
	if r == nil {
		return fmt.Errorf("text: nil report")
	}
	bw := bufio.NewWriter(w)
	t := &textWriter{w: bw, cur: r.QuoteCurrency}

	t.banner("📊 POSITION ANALYSIS REPORT")
	t.line("Generated at: %s", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	t.blank()

	t.step(1, "Fetching open positions from database...")
	t.line("   Found %d open positions in database", r.TotalPositions)
	t.blank()

	t.step(2, "Analyzing by exchange...")
	for _, v := range r.Venues {
		t.line("   %s: %d positions", v.Venue, v.Count)
	}
	t.blank()

	t.losing(r.Losing)
	t.winning(r.Winning)
	t.orientations(r.Orientations)

	t.step(6, "Analyzing positions without Stop Loss...")
	t.line("   Positions without SL: %d", r.MissingStopLoss.Count)
	t.exitGap(r.MissingStopLoss, "These positions are at risk!")
	t.blank()

	t.step(7, "Analyzing positions without Take Profit...")
	t.line("   Positions without TP: %d", r.MissingTakeProfit.Count)
	t.exitGap(r.MissingTakeProfit, "These positions may not exit at profit target!")
	t.blank()

	t.age(r.Age)
	t.summary(r.Summary)
	t.recommendations(r.Recommendations)

	if t.err != nil {
		return t.err
	}
	return bw.Flush()
}

type textWriter struct {
	w   *bufio.Writer
	cur string
	err error
}

func (t *textWriter) line(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format+"\n", args...)
}

func (t *textWriter) blank() { t.line("") }

func (t *textWriter) banner(title string) {
	t.line("%s", rule)
	t.line("%s", title)
	t.line("%s", rule)
}

func (t *textWriter) step(n int, title string) {
	t.line("%s  %s", keycaps[n%len(keycaps)], title)
}

func (t *textWriter) money(v float64) string {
	return fmt.Sprintf("%.2f %s", v, t.cur)
}

func (t *textWriter) losing(sec LosingSection) {
	t.step(3, "Analyzing losing positions...")
	t.line("   Total losing positions: %d", sec.Count)
	if sec.Count > 0 {
		t.line("   Total loss: %s", t.money(sec.Total))
		t.line("   Average loss: %s", t.money(sec.Average))
		t.line("   Max loss: %s", t.money(sec.Worst))
		t.line("\n   Top losing positions:")
		for i, p := range sec.Top {
			t.line("   %d. %s %s | Entry: %.8f | PnL: %s (%.2f%%) | SL: %s",
				i+1, display(p.Symbol), display(p.Side), p.EntryPrice, t.money(p.PnL), p.PnLPercent, stopLossLabel(p))
		}
	}
	t.blank()
}

func (t *textWriter) winning(sec WinningSection) {
	t.step(4, "Analyzing winning positions...")
	t.line("   Total winning positions: %d", sec.Count)
	if sec.Count > 0 {
		t.line("   Total profit: %s", t.money(sec.Total))
		t.line("   Average profit: %s", t.money(sec.Average))
		t.line("   Max profit: %s", t.money(sec.Best))
	}
	t.blank()
}

func (t *textWriter) orientations(rows []OrientationRow) {
	t.step(5, "Analyzing by strategy type...")
	for _, row := range rows {
		t.line("   %s:", row.Orientation)
		t.line("      Total: %d | Winning: %d | Losing: %d", row.Total, row.Winning, row.Losing)
		t.line("      Win Rate: %.2f%% | Total PnL: %s", row.WinRate, t.money(row.PnL))
	}
	t.blank()
}

func (t *textWriter) exitGap(gap ExitGap, warning string) {
	if gap.Count == 0 {
		return
	}
	t.line("   ⚠️  WARNING: %s", warning)
	for _, p := range gap.Sample {
		t.line("      - %s %s | Entry: %.8f | PnL: %s", display(p.Symbol), display(p.Side), p.EntryPrice, t.money(p.PnL))
	}
}

func (t *textWriter) age(sec AgeSection) {
	threshold := formatHours(sec.ThresholdHours)
	t.step(8, "Analyzing by time opened...")
	t.line("   Positions opened < %sh: %d", threshold, sec.Recent)
	t.line("   Positions opened >= %sh: %d", threshold, sec.Old)
	if sec.Unparseable > 0 {
		t.line("   Skipped (unparseable opened_at): %d", sec.Unparseable)
	}
	if sec.Old > 0 {
		t.line("   ⚠️  WARNING: Old positions that may need review:")
		for _, a := range sec.Oldest {
			t.line("      - %s %s | Open for %.1fh | PnL: %s", display(a.Position.Symbol), display(a.Position.Side), a.Hours, t.money(a.Position.PnL))
		}
	}
	t.blank()
}

func (t *textWriter) summary(s Summary) {
	t.banner("📊 SUMMARY")
	t.line("Total Open Positions: %d", s.Total)
	t.line("Winning: %d | Losing: %d", s.Winning, s.Losing)
	t.line("Total PnL: %s", t.money(s.TotalPnL))
	t.line("Win Rate: %.2f%%", s.WinRate)
	t.line("Positions without SL: %d", s.MissingStopLoss)
	t.line("Positions without TP: %d", s.MissingTakeProfit)
	t.blank()
}

func (t *textWriter) recommendations(recs []Recommendation) {
	t.banner("💡 RECOMMENDATIONS")
	for _, rec := range recs {
		t.line("⚠️  %s: %s", rec.Level, rec.Message)
		for _, hint := range rec.Hints {
			t.line("   → %s", hint)
		}
	}
	t.blank()
	t.line("%s", rule)
}

func display(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return notSet
	}
	return s
}

func stopLossLabel(p types.Position) string {
	if !p.HasStopLoss() {
		return notSet
	}
	return strconv.FormatFloat(p.StopLossPrice, 'f', -1, 64)
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
