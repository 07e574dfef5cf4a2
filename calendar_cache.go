package culture

import (
	"github.com/sirupsen/logrus"
)

const calendarCacheName = "calendar"

type calendarKey struct {
	locale   LocaleID
	calendar CalendarID
}

// CalendarDataCache memoizes one CalendarRecord per (locale, calendar).
type CalendarDataCache struct {
	provider LocaleProvider
	gateway  *EnumerationGateway
	resolver *CalendarFallbackResolver
	logger   logrus.FieldLogger
	metrics  *Metrics

	records  onceMap[calendarKey, *CalendarRecord]
	counters cacheCounters
}

// NewCalendarDataCache returns an empty cache. logger and metrics may be nil.
func NewCalendarDataCache(provider LocaleProvider, gateway *EnumerationGateway, resolver *CalendarFallbackResolver, logger logrus.FieldLogger, metrics *Metrics) *CalendarDataCache {
	if logger == nil {
		logger = discardLogger()
	}
	if gateway == nil {
		gateway = NewEnumerationGateway(provider, logger, metrics)
	}
	if resolver == nil {
		resolver = NewCalendarFallbackResolver(provider, logger, metrics)
	}
	return &CalendarDataCache{
		provider: provider,
		gateway:  gateway,
		resolver: resolver,
		logger:   logger,
		metrics:  metrics,
		counters: newCacheCounters(),
	}
}

// Get returns the calendar data for locale, building it on first use. The
// invariant locale always gets the invariant calendar.
func (c *CalendarDataCache) Get(locale LocaleID, cal CalendarID) *CalendarRecord {
	if c == nil || locale == Invariant {
		return invariantCalendar
	}

	key := calendarKey{locale: locale, calendar: cal}
	record, hit := c.records.getOrBuild(key, func() *CalendarRecord {
		c.counters.builds.Inc()
		c.metrics.built(calendarCacheName)
		return c.build(locale, cal)
	})
	c.counters.lookup(hit)
	c.metrics.lookup(calendarCacheName, hit)
	if !hit {
		c.metrics.size(calendarCacheName, c.records.len())
	}
	return record
}

// Reset drops every cached record.
func (c *CalendarDataCache) Reset() {
	if c == nil {
		return
	}
	c.records.reset()
	c.counters.reset()
	c.resolver.reset()
	c.metrics.size(calendarCacheName, 0)
}

func (c *CalendarDataCache) build(locale LocaleID, requested CalendarID) *CalendarRecord {
	cal, host := c.resolver.Resolve(requested, locale)
	log := c.logger.WithFields(logrus.Fields{"locale": locale, "calendar": cal})

	record := &CalendarRecord{locale: locale, calendar: requested}

	if v, ok := c.number(host, cal, CalendarTwoDigitYearMax|CalendarNoUserOverride); ok {
		record.twoDigitYearMax = int(v)
	} else {
		record.twoDigitYearMax = invariantCalendar.twoDigitYearMax
	}

	record.nativeName = c.stringOr(host, cal, CalendarNativeName, invariantCalendar.nativeName)
	record.monthDay = Reescape(c.stringOr(host, cal, CalendarMonthDay, invariantCalendar.monthDay))

	record.shortDates = c.patterns(host, cal, CalendarShortDate, invariantCalendar.shortDates)
	record.longDates = c.patterns(host, cal, CalendarLongDate, invariantCalendar.longDates)
	record.yearMonths = c.patterns(host, cal, CalendarYearMonth, invariantCalendar.yearMonths)

	record.dayNames = c.dayNames(host, cal, CalendarDayName1, invariantCalendar.dayNames)
	record.abbrevDayNames = c.dayNames(host, cal, CalendarAbbrevDayName1, invariantCalendar.abbrevDayNames)
	record.superShortDays = c.dayNames(host, cal, CalendarShortestDayName1, record.abbrevDayNames)

	record.monthNames = c.monthNames(host, cal, CalendarMonthName1, invariantCalendar.monthNames)
	record.abbrevMonthNames = c.monthNames(host, cal, CalendarAbbrevMonthName1, invariantCalendar.abbrevMonthNames)
	if cal == Gregorian {
		record.genitiveMonthNames = c.monthNames(host, cal, CalendarMonthName1|CalendarReturnGenitive, record.monthNames)
		record.abbrevGenitiveMonths = c.monthNames(host, cal, CalendarAbbrevMonthName1|CalendarReturnGenitive, record.abbrevMonthNames)
	} else {
		record.genitiveMonthNames = cloneStrings(record.monthNames)
		record.abbrevGenitiveMonths = cloneStrings(record.abbrevMonthNames)
	}

	record.eraNames = c.eras(host, cal, CalendarEraName, invariantCalendar.eraNames)
	record.abbrevEraNames = c.eras(host, cal, CalendarAbbrevEraName, record.eraNames)

	if sep, ok := dateSeparatorOverrides[cal]; ok {
		record.dateSeparator = sep
	} else {
		record.dateSeparator = DateSeparator(record.shortDates[0])
	}

	log.WithField("host_locale", host).Debug("culture: calendar data built")
	return record
}

// dateSeparatorOverrides fixes the date separator of calendars whose short
// date patterns do not reflect it.
var dateSeparatorOverrides = map[CalendarID]string{
	Japan: "/",
}

func (c *CalendarDataCache) number(locale LocaleID, cal CalendarID, field CalendarField) (int64, bool) {
	if c.provider == nil {
		return 0, false
	}
	return c.provider.CalendarNumber(locale, cal, field)
}

func (c *CalendarDataCache) stringOr(locale LocaleID, cal CalendarID, field CalendarField, fallback string) string {
	if c.provider != nil {
		if v, ok := c.provider.CalendarString(locale, cal, field); ok && v != "" {
			return v
		}
	}
	c.fieldUnavailable(locale, cal, field)
	return fallback
}

func (c *CalendarDataCache) patterns(locale LocaleID, cal CalendarID, field CalendarField, fallback []string) []string {
	values := dedupe(c.gateway.CalendarStrings(locale, cal, field))
	if len(values) == 0 {
		c.fieldUnavailable(locale, cal, field)
		return cloneStrings(fallback)
	}
	return ReescapeAll(values)
}

// dayNames reads seven names starting on Sunday. The host numbers days from
// Monday, so Sunday is the seventh field.
func (c *CalendarDataCache) dayNames(locale LocaleID, cal CalendarID, first CalendarField, fallback []string) []string {
	names := make([]string, daysInWeek)
	found := false
	for i := range names {
		field := first + daysInWeek - 1
		if i > 0 {
			field = first + CalendarField(i-1)
		}
		if v, ok := c.calendarString(locale, cal, field); ok {
			names[i] = v
			found = true
		}
	}
	if !found {
		c.fieldUnavailable(locale, cal, first)
		return cloneStrings(fallback)
	}
	return names
}

// monthNames reads thirteen names; a missing thirteenth month is "".
func (c *CalendarDataCache) monthNames(locale LocaleID, cal CalendarID, first CalendarField, fallback []string) []string {
	names := make([]string, monthsInYear13)
	found := false
	for i := range names {
		if v, ok := c.calendarString(locale, cal, first+CalendarField(i)); ok {
			names[i] = v
			found = true
		}
	}
	if !found {
		c.fieldUnavailable(locale, cal, first)
		return cloneStrings(fallback)
	}
	return names
}

// eras are stored oldest first whatever order the host reports them in.
func (c *CalendarDataCache) eras(locale LocaleID, cal CalendarID, field CalendarField, fallback []string) []string {
	values := c.gateway.CalendarStrings(locale, cal, field)
	if len(values) == 0 {
		c.fieldUnavailable(locale, cal, field)
		return cloneStrings(fallback)
	}
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return values
}

func (c *CalendarDataCache) calendarString(locale LocaleID, cal CalendarID, field CalendarField) (string, bool) {
	if c.provider == nil {
		return "", false
	}
	v, ok := c.provider.CalendarString(locale, cal, field)
	return v, ok && v != ""
}

func (c *CalendarDataCache) fieldUnavailable(locale LocaleID, cal CalendarID, field CalendarField) {
	c.logger.WithFields(logrus.Fields{
		"locale":         locale,
		"calendar":       cal,
		"calendar_field": uint32(field),
	}).WithError(errFieldUnavailable).Debug("culture: using default calendar value")
}

func dedupe(values []string) []string {
	if len(values) < 2 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
