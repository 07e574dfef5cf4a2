package culture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbersFor(t *testing.T, engine *Engine, name string) NumberData {
	t.Helper()
	record, err := engine.ResolveCultureByName(name, false)
	require.NoError(t, err)
	return record.NumberFormat()
}

func TestFormatNumber(t *testing.T) {
	engine, _ := newTestEngine(t)
	enUS := numbersFor(t, engine, "en-US")
	deDE := numbersFor(t, engine, "de-DE")
	faIR := numbersFor(t, engine, "fa-IR")

	tests := []struct {
		name     string
		numbers  NumberData
		value    float64
		decimals int
		want     string
	}{
		{name: "en-US grouping", numbers: enUS, value: 1234567.891, decimals: 2, want: "1,234,567.89"},
		{name: "en-US negative", numbers: enUS, value: -1234.5, decimals: 2, want: "-1,234.50"},
		{name: "en-US default digits", numbers: enUS, value: 3, decimals: -1, want: "3.00"},
		{name: "en-US small", numbers: enUS, value: 999, decimals: 0, want: "999"},
		{name: "de-DE", numbers: deDE, value: 1234567.891, decimals: 2, want: "1.234.567,89"},
		{name: "fa-IR native digits", numbers: faIR, value: 12, decimals: 0, want: "۱۲"},
		{name: "nan", numbers: enUS, value: math.NaN(), decimals: 2, want: "NaN"},
		{name: "negative infinity", numbers: enUS, value: math.Inf(-1), decimals: 2, want: "-∞"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.numbers, tt.value, tt.decimals))
		})
	}
}

func TestFormatCurrencyAndPercent(t *testing.T) {
	engine, _ := newTestEngine(t)
	enUS := numbersFor(t, engine, "en-US")
	deDE := numbersFor(t, engine, "de-DE")

	assert.Equal(t, "$1,234.50", FormatCurrency(enUS, 1234.5))
	assert.Equal(t, "($1,234.50)", FormatCurrency(enUS, -1234.5))
	assert.Equal(t, "1.234,50 €", FormatCurrency(deDE, 1234.5))
	assert.Equal(t, "-1.234,50 €", FormatCurrency(deDE, -1234.5))

	assert.Equal(t, "12.5%", FormatPercent(enUS, 0.125, 1))
	assert.Equal(t, "-12.5%", FormatPercent(enUS, -0.125, 1))
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		sizes  []int
		want   string
	}{
		{name: "repeat last", digits: "1234567", sizes: []int{3}, want: "1,234,567"},
		{name: "stop at zero", digits: "1234567", sizes: []int{3, 0}, want: "1234,567"},
		{name: "indian", digits: "12345678", sizes: []int{3, 2}, want: "1,23,45,678"},
		{name: "no grouping", digits: "1234567", sizes: []int{0}, want: "1234567"},
		{name: "exact group", digits: "123", sizes: []int{3}, want: "123"},
		{name: "no sizes", digits: "1234", sizes: nil, want: "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, groupDigits(tt.digits, tt.sizes, ","))
		})
	}
}
