package culture

const (
	daysInWeek     = 7
	monthsInYear13 = 13
)

// CalendarRecord is the data of one calendar for one locale. Day names start
// on Sunday, month name slices always hold 13 entries and eras are ordered
// oldest first.
type CalendarRecord struct {
	locale   LocaleID
	calendar CalendarID

	nativeName      string
	twoDigitYearMax int
	shortDates      []string
	longDates       []string
	yearMonths      []string
	monthDay        string
	dateSeparator   string

	eraNames       []string
	abbrevEraNames []string

	dayNames       []string
	abbrevDayNames []string
	superShortDays []string

	monthNames           []string
	abbrevMonthNames     []string
	genitiveMonthNames   []string
	abbrevGenitiveMonths []string
}

// Locale is the locale the record was requested for.
func (c *CalendarRecord) Locale() LocaleID {
	if c == nil {
		return 0
	}
	return c.locale
}

// CalendarID is the calendar the record was requested for. The data may come
// from a substitute calendar.
func (c *CalendarRecord) CalendarID() CalendarID {
	if c == nil {
		return 0
	}
	return c.calendar
}

func (c *CalendarRecord) NativeName() string {
	if c == nil {
		return ""
	}
	return c.nativeName
}

func (c *CalendarRecord) TwoDigitYearMax() int {
	if c == nil {
		return 0
	}
	return c.twoDigitYearMax
}

func (c *CalendarRecord) ShortDatePatterns() []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.shortDates)
}

func (c *CalendarRecord) LongDatePatterns() []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.longDates)
}

func (c *CalendarRecord) YearMonthPatterns() []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.yearMonths)
}

func (c *CalendarRecord) MonthDayPattern() string {
	if c == nil {
		return ""
	}
	return c.monthDay
}

func (c *CalendarRecord) DateSeparator() string {
	if c == nil {
		return ""
	}
	return c.dateSeparator
}

func (c *CalendarRecord) EraNames() []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.eraNames)
}

func (c *CalendarRecord) AbbreviatedEraNames() []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.abbrevEraNames)
}

func (c *CalendarRecord) DayNames() []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.dayNames)
}

func (c *CalendarRecord) AbbreviatedDayNames() []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.abbrevDayNames)
}

func (c *CalendarRecord) SuperShortDayNames() []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.superShortDays)
}

func (c *CalendarRecord) MonthNames() []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.monthNames)
}

func (c *CalendarRecord) AbbreviatedMonthNames() []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.abbrevMonthNames)
}

func (c *CalendarRecord) GenitiveMonthNames() []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.genitiveMonthNames)
}

func (c *CalendarRecord) AbbreviatedGenitiveMonthNames() []string {
	if c == nil {
		return nil
	}
	return cloneStrings(c.abbrevGenitiveMonths)
}
