package culture

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// calendarSubstitutions maps calendars the host does not carry data for to
// the calendar whose data is used instead.
var calendarSubstitutions = map[CalendarID]CalendarID{
	JapaneseLunisolar: Japan,
	Julian:            GregorianUS,
	ChineseLunisolar:  GregorianUS,
	Saka:              GregorianUS,
	LunarEtoChinese:   GregorianUS,
	LunarEtoKorean:    GregorianUS,
	LunarEtoRokuyou:   GregorianUS,
	KoreanLunisolar:   GregorianUS,
	TaiwanLunisolar:   GregorianUS,
}

type calendarProbe func(r *CalendarFallbackResolver, cal CalendarID, locale LocaleID) (CalendarID, LocaleID)

// calendarProbes lists calendars that only some hosts carry.
var calendarProbes = map[CalendarID]calendarProbe{
	GregorianUS: (*CalendarFallbackResolver).probeGregorianUS,
	Taiwan:      (*CalendarFallbackResolver).probeTaiwan,
}

// CalendarFallbackResolver picks the (calendar, locale) pair the host can
// actually serve for a request.
type CalendarFallbackResolver struct {
	provider LocaleProvider
	logger   logrus.FieldLogger
	metrics  *Metrics

	mu             sync.Mutex
	taiwanProbed   bool
	taiwanOK       bool
	terminalProbed bool
	terminalOK     bool
}

// NewCalendarFallbackResolver returns a resolver probing provider.
func NewCalendarFallbackResolver(provider LocaleProvider, logger logrus.FieldLogger, metrics *Metrics) *CalendarFallbackResolver {
	if logger == nil {
		logger = discardLogger()
	}
	return &CalendarFallbackResolver{provider: provider, logger: logger, metrics: metrics}
}

// Resolve applies the substitution table once, then the host probe for the
// resulting calendar if it has one.
func (r *CalendarFallbackResolver) Resolve(cal CalendarID, locale LocaleID) (CalendarID, LocaleID) {
	requested := cal
	if substitute, ok := calendarSubstitutions[cal]; ok {
		cal = substitute
	}
	if probe, ok := calendarProbes[cal]; ok {
		cal, locale = probe(r, cal, locale)
	}
	if cal != requested {
		r.metrics.fallback(requested, cal)
		r.logger.WithFields(logrus.Fields{
			"calendar": requested,
			"resolved": cal,
			"locale":   locale,
		}).Debug("culture: calendar substituted")
	}
	return cal, locale
}

func (r *CalendarFallbackResolver) probeGregorianUS(cal CalendarID, locale LocaleID) (CalendarID, LocaleID) {
	if r.hasCalendar(locale, cal) {
		return cal, locale
	}
	r.probeFailed(cal, locale)
	if r.hasCalendar(PersianIran, cal) {
		return cal, PersianIran
	}
	r.probeFailed(cal, PersianIran)
	return r.terminal()
}

func (r *CalendarFallbackResolver) probeTaiwan(cal CalendarID, locale LocaleID) (CalendarID, LocaleID) {
	r.mu.Lock()
	if !r.taiwanProbed {
		r.taiwanOK = r.hasCalendar(ChineseTaiwan, Taiwan)
		r.taiwanProbed = true
	}
	ok := r.taiwanOK
	r.mu.Unlock()

	if ok {
		return cal, locale
	}
	r.probeFailed(cal, ChineseTaiwan)
	return Gregorian, locale
}

// terminal returns the last-resort pair. A host that cannot serve it is
// unusable, so failing the check panics.
func (r *CalendarFallbackResolver) terminal() (CalendarID, LocaleID) {
	r.mu.Lock()
	if !r.terminalProbed {
		r.terminalOK = r.hasCalendar(EnglishUS, Gregorian)
		r.terminalProbed = true
	}
	ok := r.terminalOK
	r.mu.Unlock()

	if !ok {
		panic(fmt.Sprintf("culture: host cannot serve the %s calendar for %s", Gregorian, EnglishUS))
	}
	return Gregorian, EnglishUS
}

func (r *CalendarFallbackResolver) hasCalendar(locale LocaleID, cal CalendarID) bool {
	if r.provider == nil {
		return false
	}
	_, ok := r.provider.CalendarString(locale, cal, CalendarNativeName)
	return ok
}

func (r *CalendarFallbackResolver) probeFailed(cal CalendarID, locale LocaleID) {
	r.logger.WithFields(logrus.Fields{
		"calendar": cal,
		"locale":   locale,
	}).WithError(errCalendarProbeFailed).Debug("culture: calendar probe failed")
}

func (r *CalendarFallbackResolver) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.taiwanProbed = false
	r.taiwanOK = false
	r.terminalProbed = false
	r.terminalOK = false
}
