package convert

import (
	"database/sql"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 1.5, 1.5},
		{"int", 3, 3},
		{"json number", json.Number("2.25"), 2.25},
		{"decimal text", []byte("0.00012300"), 0.000123},
		{"string", " -4.5 ", -4.5},
		{"garbage", "abc", 0},
		{"null float", sql.NullFloat64{}, 0},
		{"valid float", sql.NullFloat64{Float64: 7, Valid: true}, 7},
		{"null int", sql.NullInt64{Int64: 9}, 0},
		{"unsupported", struct{}{}, 0},
		{"nan text", "NaN", 0},
		{"inf text", "inf", 0},
		{"inf float", math.Inf(1), 0},
		{"inf null float", sql.NullFloat64{Float64: math.Inf(-1), Valid: true}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ToFloat64(tc.in), 1e-12)
		})
	}
}

func TestToBool(t *testing.T) {
	truthy := []any{true, 1, int64(2), "1", "true", "yes", []byte("1"), []byte{0x01}, sql.NullInt64{Int64: 1, Valid: true}, sql.NullBool{Bool: true, Valid: true}}
	falsy := []any{nil, false, 0, "0", "", "false", "0.0", []byte{0x00}, sql.NullInt64{Int64: 1}, sql.NullInt64{Valid: true}, sql.NullString{}}
	for _, v := range truthy {
		assert.True(t, ToBool(v), "%#v", v)
	}
	for _, v := range falsy {
		assert.False(t, ToBool(v), "%#v", v)
	}
}

func TestNullFlag_Scan(t *testing.T) {
	cases := []struct {
		name  string
		in    any
		want  bool
		valid bool
	}{
		{"sqlite boolean", true, true, true},
		{"tinyint", int64(0), false, true},
		{"tinyint set", int64(1), true, true},
		{"bit", []byte{0x01}, true, true},
		{"text", "false", false, true},
		{"null", nil, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f NullFlag
			assert.NoError(t, f.Scan(tc.in))
			assert.Equal(t, tc.want, f.Bool)
			assert.Equal(t, tc.valid, f.Valid)
		})
	}
}

func TestParseWallClock(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	want := time.Date(2024, 5, 1, 10, 30, 0, 0, loc)

	for _, raw := range []string{
		"2024-05-01T10:30:00Z",
		"2024-05-01T10:30:00+02:00",
		"2024-05-01T10:30:00.000Z",
		"2024-05-01 10:30:00",
		"2024-05-01T10:30:00",
		" 2024-05-01 10:30 ",
	} {
		got, ok := ParseWallClock(raw, loc)
		if assert.True(t, ok, raw) {
			assert.True(t, want.Equal(got), "%s -> %s", raw, got)
		}
	}

	got, ok := ParseWallClock("2024-05-01 10:30:00.123456", loc)
	assert.True(t, ok)
	assert.Equal(t, 123456000, got.Nanosecond())

	for _, raw := range []string{"", "   ", "yesterday", "2024-13-01 00:00:00", "1714559400"} {
		_, ok := ParseWallClock(raw, loc)
		assert.False(t, ok, raw)
	}
}
