package culture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeparators(t *testing.T) {
	tests := []struct {
		name   string
		format string
		tokens string
		want   string
	}{
		{name: "time colon", format: "HH:mm:ss", tokens: timeTokens, want: ":"},
		{name: "time with designator", format: "h:mm:ss tt", tokens: timeTokens, want: ":"},
		{name: "date dash", format: "yyyy-MM-dd", tokens: dateTokens, want: "-"},
		{name: "date dot", format: "dd.MM.yyyy", tokens: dateTokens, want: "."},
		{name: "quoted literal", format: "HH' h 'mm", tokens: timeTokens, want: " h "},
		{name: "literal to end", format: "HH'h'", tokens: timeTokens, want: "h"},
		{name: "no separator", format: "HHmm", tokens: timeTokens, want: ""},
		{name: "token at end", format: "tt HH", tokens: timeTokens, want: ""},
		{name: "no token", format: "tt", tokens: timeTokens, want: ""},
		{name: "escaped", format: `H\.mm`, tokens: timeTokens, want: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Separator(tt.format, tt.tokens))
		})
	}

	assert.Equal(t, ":", TimeSeparator("HH:mm:ss"))
	assert.Equal(t, "/", DateSeparator("M/d/yyyy"))
}

func TestDeriveShortTime(t *testing.T) {
	tests := []struct {
		name     string
		longTime string
		want     string
	}{
		{name: "24 hour", longTime: "HH:mm:ss", want: "HH:mm"},
		{name: "12 hour trailing designator", longTime: "h:mm:ss tt", want: "h:mm tt"},
		{name: "leading designator", longTime: "tt h:mm:ss", want: "tt h:mm"},
		{name: "no seconds", longTime: "HH:mm", want: "HH:mm"},
		{name: "quoted seconds", longTime: "HH:mm' s'", want: "HH:mm' s'"},
		{name: "dot separators", longTime: "H.mm.ss", want: "H.mm"},
		{name: "seconds first", longTime: "ss", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveShortTime(tt.longTime))
		})
	}
}

func TestReescape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "HH:mm", want: "HH:mm"},
		{name: "quoted", in: "HH' h 'mm", want: "HH' h 'mm"},
		{name: "backslash", in: `HH\mm`, want: `HH\\mm`},
		{name: "doubled quote in quotes", in: "'o''clock'", want: `'o\'clock'`},
		{name: "doubled quote outside quotes", in: "H''mm", want: "H''mm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reescape(tt.in))
		})
	}

	patterns := []string{`a\b`, "c"}
	assert.Equal(t, []string{`a\\b`, "c"}, ReescapeAll(patterns))
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, " h ", Unescape("' h '"))
	assert.Equal(t, "'", Unescape(`\'`))
	assert.Equal(t, "ab", Unescape("a'b'"))
	assert.Equal(t, "", Unescape(`\`))
}
