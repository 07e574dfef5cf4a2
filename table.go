package culture

import (
	"fmt"
	"strconv"
	"strings"
)

// LocaleTables is the decoded form of a locale data file.
type LocaleTables struct {
	UserDefault   string         `json:"user_default,omitempty" yaml:"user_default,omitempty"`
	SystemDefault string         `json:"system_default,omitempty" yaml:"system_default,omitempty"`
	Locales       []LocaleTable  `json:"locales" yaml:"locales"`
	UserOverrides *OverrideTable `json:"user_overrides,omitempty" yaml:"user_overrides,omitempty"`
}

// LocaleTable holds the host data of one locale. Field keys are the names
// accepted by ParseField.
type LocaleTable struct {
	Name        string              `json:"name" yaml:"name"`
	ID          string              `json:"id" yaml:"id"`
	Parent      string              `json:"parent,omitempty" yaml:"parent,omitempty"`
	Custom      bool                `json:"custom,omitempty" yaml:"custom,omitempty"`
	Replacement bool                `json:"replacement,omitempty" yaml:"replacement,omitempty"`
	Strings     map[string]string   `json:"strings,omitempty" yaml:"strings,omitempty"`
	Numbers     map[string]int64    `json:"numbers,omitempty" yaml:"numbers,omitempty"`
	Lists       map[string][]string `json:"lists,omitempty" yaml:"lists,omitempty"`
	Calendars   []CalendarTable     `json:"calendars,omitempty" yaml:"calendars,omitempty"`
}

// CalendarTable holds the data of one calendar. Day names start on Sunday and
// eras are listed in host order.
type CalendarTable struct {
	Calendar                      string   `json:"calendar" yaml:"calendar"`
	NativeName                    string   `json:"native_name,omitempty" yaml:"native_name,omitempty"`
	TwoDigitYearMax               int64    `json:"two_digit_year_max,omitempty" yaml:"two_digit_year_max,omitempty"`
	ShortDates                    []string `json:"short_dates,omitempty" yaml:"short_dates,omitempty"`
	LongDates                     []string `json:"long_dates,omitempty" yaml:"long_dates,omitempty"`
	YearMonths                    []string `json:"year_months,omitempty" yaml:"year_months,omitempty"`
	MonthDay                      string   `json:"month_day,omitempty" yaml:"month_day,omitempty"`
	DayNames                      []string `json:"day_names,omitempty" yaml:"day_names,omitempty"`
	AbbreviatedDayNames           []string `json:"abbreviated_day_names,omitempty" yaml:"abbreviated_day_names,omitempty"`
	ShortestDayNames              []string `json:"shortest_day_names,omitempty" yaml:"shortest_day_names,omitempty"`
	MonthNames                    []string `json:"month_names,omitempty" yaml:"month_names,omitempty"`
	AbbreviatedMonthNames         []string `json:"abbreviated_month_names,omitempty" yaml:"abbreviated_month_names,omitempty"`
	GenitiveMonthNames            []string `json:"genitive_month_names,omitempty" yaml:"genitive_month_names,omitempty"`
	AbbreviatedGenitiveMonthNames []string `json:"abbreviated_genitive_month_names,omitempty" yaml:"abbreviated_genitive_month_names,omitempty"`
	EraNames                      []string `json:"era_names,omitempty" yaml:"era_names,omitempty"`
	AbbreviatedEraNames           []string `json:"abbreviated_era_names,omitempty" yaml:"abbreviated_era_names,omitempty"`
}

// OverrideTable holds per-machine user settings for the user default locale.
type OverrideTable struct {
	Strings map[string]string `json:"strings,omitempty" yaml:"strings,omitempty"`
	Numbers map[string]int64  `json:"numbers,omitempty" yaml:"numbers,omitempty"`
}

// parseLocaleID accepts decimal or 0x-prefixed hexadecimal ids.
func parseLocaleID(s string) (LocaleID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("culture: invalid locale id %q: %w", s, err)
	}
	return LocaleID(v), nil
}

// compiledLocale is a LocaleTable with its field keys resolved.
type compiledLocale struct {
	id          LocaleID
	name        string
	parent      string
	custom      bool
	replacement bool
	strings     map[Field]string
	numbers     map[Field]int64
	lists       map[Field][]string
	calendars   []*compiledCalendar
}

type compiledCalendar struct {
	id    CalendarID
	table CalendarTable
}

type compiledOverrides struct {
	strings map[Field]string
	numbers map[Field]int64
}

func compileLocale(t LocaleTable) (*compiledLocale, error) {
	if t.ID == "" {
		return nil, fmt.Errorf("culture: locale %q has no id", t.Name)
	}
	id, err := parseLocaleID(t.ID)
	if err != nil {
		return nil, err
	}

	c := &compiledLocale{
		id:          id,
		name:        t.Name,
		parent:      t.Parent,
		custom:      t.Custom || id.IsCustom(),
		replacement: t.Replacement,
		strings:     make(map[Field]string, len(t.Strings)),
		numbers:     make(map[Field]int64, len(t.Numbers)),
		lists:       make(map[Field][]string, len(t.Lists)),
	}

	for key, value := range t.Strings {
		field, ok := ParseField(key)
		if !ok {
			return nil, fmt.Errorf("culture: %s: unknown string field %q", t.Name, key)
		}
		c.strings[field] = value
	}
	for key, value := range t.Numbers {
		field, ok := ParseField(key)
		if !ok {
			return nil, fmt.Errorf("culture: %s: unknown number field %q", t.Name, key)
		}
		c.numbers[field] = value
	}
	for key, values := range t.Lists {
		field, ok := ParseField(key)
		if !ok {
			return nil, fmt.Errorf("culture: %s: unknown list field %q", t.Name, key)
		}
		c.lists[field] = append([]string(nil), values...)
	}
	if _, ok := c.numbers[FieldLanguageID]; !ok {
		c.numbers[FieldLanguageID] = int64(id)
	}

	for _, cal := range t.Calendars {
		calID, ok := ParseCalendarID(cal.Calendar)
		if !ok {
			return nil, fmt.Errorf("culture: %s: unknown calendar %q", t.Name, cal.Calendar)
		}
		c.calendars = append(c.calendars, &compiledCalendar{id: calID, table: cal})
	}

	return c, nil
}

func compileOverrides(t *OverrideTable) (*compiledOverrides, error) {
	o := &compiledOverrides{
		strings: make(map[Field]string),
		numbers: make(map[Field]int64),
	}
	if t == nil {
		return o, nil
	}
	for key, value := range t.Strings {
		field, ok := ParseField(key)
		if !ok {
			return nil, fmt.Errorf("culture: overrides: unknown string field %q", key)
		}
		o.strings[field] = value
	}
	for key, value := range t.Numbers {
		field, ok := ParseField(key)
		if !ok {
			return nil, fmt.Errorf("culture: overrides: unknown number field %q", key)
		}
		o.numbers[field] = value
	}
	return o, nil
}

func (c *compiledLocale) calendar(id CalendarID) *compiledCalendar {
	for _, cal := range c.calendars {
		if cal.id == id {
			return cal
		}
	}
	return nil
}

// stringField answers a calendar string query from the table.
func (c *compiledCalendar) stringField(field CalendarField) (string, bool) {
	t := c.table
	base := field.Base()

	pick := func(values []string, start CalendarField, index func(int) int) (string, bool) {
		offset := int(base - start)
		i := index(offset)
		if i < 0 || i >= len(values) || values[i] == "" {
			return "", false
		}
		return values[i], true
	}
	// Sunday-first names against Monday-first field codes.
	day := func(offset int) int { return (offset + 1) % daysInWeek }
	month := func(offset int) int { return offset }

	switch {
	case base == CalendarNativeName:
		return t.NativeName, t.NativeName != ""
	case base == CalendarMonthDay:
		return t.MonthDay, t.MonthDay != ""
	case base == CalendarShortDate:
		return first(t.ShortDates)
	case base == CalendarLongDate:
		return first(t.LongDates)
	case base == CalendarYearMonth:
		return first(t.YearMonths)
	case base == CalendarEraName:
		return first(t.EraNames)
	case base == CalendarAbbrevEraName:
		return first(t.AbbreviatedEraNames)
	case base >= CalendarDayName1 && base < CalendarDayName1+daysInWeek:
		return pick(t.DayNames, CalendarDayName1, day)
	case base >= CalendarAbbrevDayName1 && base < CalendarAbbrevDayName1+daysInWeek:
		return pick(t.AbbreviatedDayNames, CalendarAbbrevDayName1, day)
	case base >= CalendarShortestDayName1 && base < CalendarShortestDayName1+daysInWeek:
		return pick(t.ShortestDayNames, CalendarShortestDayName1, day)
	case base >= CalendarMonthName1 && base < CalendarMonthName1+monthsInYear13:
		if field.Genitive() && len(t.GenitiveMonthNames) > 0 {
			return pick(t.GenitiveMonthNames, CalendarMonthName1, month)
		}
		return pick(t.MonthNames, CalendarMonthName1, month)
	case base >= CalendarAbbrevMonthName1 && base < CalendarAbbrevMonthName1+monthsInYear13:
		if field.Genitive() && len(t.AbbreviatedGenitiveMonthNames) > 0 {
			return pick(t.AbbreviatedGenitiveMonthNames, CalendarAbbrevMonthName1, month)
		}
		return pick(t.AbbreviatedMonthNames, CalendarAbbrevMonthName1, month)
	}
	return "", false
}

func (c *compiledCalendar) listField(field CalendarField) []string {
	t := c.table
	switch field.Base() {
	case CalendarShortDate:
		return t.ShortDates
	case CalendarLongDate:
		return t.LongDates
	case CalendarYearMonth:
		return t.YearMonths
	case CalendarEraName:
		return t.EraNames
	case CalendarAbbrevEraName:
		return t.AbbreviatedEraNames
	}
	return nil
}

func first(values []string) (string, bool) {
	if len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}
