package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		raw  string
		want Symbol
	}{
		{"BTCUSDT", Symbol{"BTC", "USDT"}},
		{"btc/usdt", Symbol{"BTC", "USDT"}},
		{"ETH/USDT:USDT", Symbol{"ETH", "USDT"}},
		{"sol_usdc", Symbol{"SOL", "USDC"}},
		{"DOGE-BTC", Symbol{"DOGE", "BTC"}},
		{"USDT", Symbol{}},
		{"", Symbol{}},
		{"XYZ", Symbol{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Parse(tc.raw), tc.raw)
	}
}

func TestParse_ExtraQuote(t *testing.T) {
	assert.Equal(t, Symbol{"BTC", "EUR"}, Parse("BTCEUR", "eur"))
	assert.Equal(t, Symbol{}, Parse("BTCEUR"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "BTCUSDT", Key("BTC/USDT:USDT"))
	assert.Equal(t, "BTCUSDT", Key(" btcusdt "))
	assert.Equal(t, "XYZ", Key("xyz"))
	assert.Equal(t, "", Key("  "))
}
