// Package symbol parses the trading pair spellings the bots write into
// positions.symbol ("BTCUSDT", "BTC/USDT", "BTC/USDT:USDT", "btc_usdt").
package symbol

import "strings"

// knownQuotes are tried as suffixes when the pair has no separator.
var knownQuotes = []string{"USDT", "BUSD", "USDC", "TUSD", "FDUSD", "BTC", "ETH", "BNB"}

type Symbol struct {
	Base  string
	Quote string
}

// Pair renders the compact exchange form, e.g. BTCUSDT.
func (s Symbol) Pair() string {
	if s.Base == "" || s.Quote == "" {
		return ""
	}
	return s.Base + s.Quote
}

func (s Symbol) Valid() bool {
	return s.Base != "" && s.Quote != ""
}

// Parse splits raw into base and quote. extraQuotes are checked before the
// built-in list so a configured quote currency wins.
func Parse(raw string, extraQuotes ...string) Symbol {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return Symbol{}
	}
	// Futures settlement suffix.
	if idx := strings.Index(s, ":"); idx >= 0 {
		s = s[:idx]
	}
	for _, sep := range []string{"/", "_", "-"} {
		if parts := strings.SplitN(s, sep, 2); len(parts) == 2 {
			return Symbol{Base: strings.TrimSpace(parts[0]), Quote: strings.TrimSpace(parts[1])}
		}
	}
	for _, quote := range append(upper(extraQuotes), knownQuotes...) {
		if quote != "" && strings.HasSuffix(s, quote) && len(s) > len(quote) {
			return Symbol{Base: s[:len(s)-len(quote)], Quote: quote}
		}
	}
	return Symbol{}
}

// Key groups spellings of the same pair. Unparseable input falls back to
// its trimmed upper-case form.
func Key(raw string, extraQuotes ...string) string {
	if sym := Parse(raw, extraQuotes...); sym.Valid() {
		return sym.Pair()
	}
	return strings.ToUpper(strings.TrimSpace(raw))
}

func upper(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToUpper(strings.TrimSpace(s)))
	}
	return out
}
