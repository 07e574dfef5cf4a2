package culture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeGrouping(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{in: "3;0", want: []int{3, 0}},
		{in: "3", want: []int{3}},
		{in: "3;2", want: []int{3, 2}},
		{in: "3;2;0", want: []int{3, 2, 0}},
		{in: "0", want: []int{0}},
		{in: "0;3", want: []int{0}},
		{in: "", want: []int{3}},
		{in: "x;y", want: []int{3}},
		{in: "3;", want: []int{3}},
		{in: "3;0;2", want: []int{3}},
		{in: "12", want: []int{12}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeGrouping(tt.in))
		})
	}
}

func TestDecodeGroupingReturnsFreshDefault(t *testing.T) {
	sizes := DecodeGrouping("")
	sizes[0] = 9
	assert.Equal(t, []int{3}, DecodeGrouping(""))
}

func TestFirstDayOfWeek(t *testing.T) {
	tests := []struct {
		host int64
		want int
	}{
		{host: 0, want: 1},
		{host: 5, want: 6},
		{host: 6, want: 0},
		{host: 7, want: 0},
		{host: -1, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, firstDayOfWeek(tt.host), "host day %d", tt.host)
	}
}

func TestIsNeutral(t *testing.T) {
	tests := []struct {
		id   LocaleID
		want bool
	}{
		{id: 0x0009, want: true},
		{id: 0x0409, want: false},
		{id: Invariant, want: true},
		{id: CustomUnspecified, want: false},
		{id: 0x2C00, want: false},
		{id: 0x042C, want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNeutral(tt.id), "id %s", tt.id)
	}
}

func TestFieldHelpers(t *testing.T) {
	field := FieldDecimalSeparator | FieldNoUserOverride
	assert.Equal(t, FieldDecimalSeparator, field.Base())
	assert.True(t, field.NoUserOverride())
	assert.Equal(t, "decimal_separator|no_user_override", field.String())
	assert.True(t, IsOverridable(field))
	assert.False(t, IsOverridable(FieldLongTimeFormat))

	parsed, ok := ParseField("long_time")
	assert.True(t, ok)
	assert.Equal(t, FieldLongTimeFormat, parsed)

	_, ok = ParseField("nope")
	assert.False(t, ok)

	cal, ok := ParseCalendarID("japan")
	assert.True(t, ok)
	assert.Equal(t, Japan, cal)
	assert.True(t, cal.Valid())
	assert.False(t, CalendarID(0).Valid())
	assert.Equal(t, "calendar(99)", CalendarID(99).String())

	genitive := CalendarMonthName1 | CalendarReturnGenitive | CalendarNoUserOverride
	assert.Equal(t, CalendarMonthName1, genitive.Base())
	assert.True(t, genitive.Genitive())
	assert.True(t, genitive.NoUserOverride())
}
