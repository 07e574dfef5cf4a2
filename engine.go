package culture

import (
	"github.com/sirupsen/logrus"
)

const validCultureTypes = AllCultures | UserCustomCulture | ReplacementCultures

// Engine resolves and caches culture and calendar data. It is safe for
// concurrent use.
type Engine struct {
	provider   LocaleProvider
	normalizer *IdentifierNormalizer
	gateway    *EnumerationGateway
	resolver   *CalendarFallbackResolver
	calendars  *CalendarDataCache
	cultures   *CultureDataCache
	logger     logrus.FieldLogger
	metrics    *Metrics
}

// NewEngine wires an engine around provider. logger and metrics may be nil.
func NewEngine(provider LocaleProvider, logger logrus.FieldLogger, metrics *Metrics) *Engine {
	if logger == nil {
		logger = discardLogger()
	}

	gateway := NewEnumerationGateway(provider, logger, metrics)
	resolver := NewCalendarFallbackResolver(provider, logger, metrics)
	calendars := NewCalendarDataCache(provider, gateway, resolver, logger, metrics)

	return &Engine{
		provider:   provider,
		normalizer: NewIdentifierNormalizer(provider),
		gateway:    gateway,
		resolver:   resolver,
		calendars:  calendars,
		cultures:   NewCultureDataCache(provider, gateway, calendars, logger, metrics),
		logger:     logger,
		metrics:    metrics,
	}
}

// ResolveCulture returns the cached record for id, building it on first use.
// Only ErrInvalidLocaleIdentifier is reported; missing fields fall back to
// defaults.
func (e *Engine) ResolveCulture(id LocaleID, honorUserOverride bool) (*CultureRecord, error) {
	if e == nil {
		return nil, &CultureError{Op: "resolve", ID: id, Err: ErrInvalidLocaleIdentifier}
	}

	normalized, neutral, err := e.normalizer.Normalize(id)
	if err != nil {
		e.logger.WithField("locale", id).WithError(err).Debug("culture: resolve failed")
		return nil, err
	}
	return e.cultures.GetOrBuild(normalized, neutral, honorUserOverride), nil
}

// ResolveCultureByName resolves a locale name such as "en-US". The empty
// name is the invariant culture.
func (e *Engine) ResolveCultureByName(name string, honorUserOverride bool) (*CultureRecord, error) {
	if e == nil {
		return nil, &CultureError{Op: "resolve", Name: name, Err: ErrInvalidLocaleIdentifier}
	}

	id, err := e.normalizer.NormalizeName(name)
	if err != nil {
		e.logger.WithField("name", name).WithError(err).Debug("culture: resolve failed")
		return nil, err
	}
	return e.ResolveCulture(id, honorUserOverride)
}

// ResolveCalendar returns the calendar data of cal for locale. It never
// fails: unsupported combinations resolve to a substitute calendar.
func (e *Engine) ResolveCalendar(locale LocaleID, cal CalendarID) *CalendarRecord {
	if e == nil {
		return invariantCalendar
	}
	return e.calendars.Get(e.normalizer.substitute(locale), cal)
}

// ListCultures returns the ids of the system locales matching filter, in host
// order. An empty or unknown filter yields nil.
func (e *Engine) ListCultures(filter CultureTypes) []LocaleID {
	if e == nil {
		return nil
	}
	if filter == 0 || filter&^validCultureTypes != 0 {
		e.logger.WithField("filter", uint32(filter)).Debug("culture: invalid culture type filter")
		return nil
	}

	names := e.gateway.Locales(filter)
	ids := make([]LocaleID, 0, len(names))
	seen := make(map[LocaleID]struct{}, len(names))
	for _, name := range names {
		id, err := e.normalizer.NormalizeName(name)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// ClearAllCaches drops every cached record and host probe result.
func (e *Engine) ClearAllCaches() {
	if e == nil {
		return
	}
	e.cultures.Reset()
	e.calendars.Reset()
}

// Stats reports cache activity since the last ClearAllCaches.
func (e *Engine) Stats() Stats {
	if e == nil {
		return Stats{}
	}
	return Stats{
		CultureHits:     e.cultures.counters.hits.Load(),
		CultureMisses:   e.cultures.counters.misses.Load(),
		CultureBuilds:   e.cultures.counters.builds.Load(),
		CultureRecords:  e.cultures.records.len(),
		CalendarHits:    e.calendars.counters.hits.Load(),
		CalendarMisses:  e.calendars.counters.misses.Load(),
		CalendarBuilds:  e.calendars.counters.builds.Load(),
		CalendarRecords: e.calendars.records.len(),
	}
}

// Provider returns the provider the engine queries.
func (e *Engine) Provider() LocaleProvider {
	if e == nil {
		return nil
	}
	return e.provider
}
