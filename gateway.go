package culture

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// enumerationMu serializes every enumeration against the host. It is process
// wide because host enumeration callbacks share global state.
var enumerationMu sync.Mutex

// EnumerationGateway turns callback-style provider enumerations into slices.
// A provider that fails or panics part way keeps what was collected so far.
type EnumerationGateway struct {
	provider LocaleProvider
	logger   logrus.FieldLogger
	metrics  *Metrics
}

// NewEnumerationGateway wraps provider. logger and metrics may be nil.
func NewEnumerationGateway(provider LocaleProvider, logger logrus.FieldLogger, metrics *Metrics) *EnumerationGateway {
	if logger == nil {
		logger = discardLogger()
	}
	return &EnumerationGateway{provider: provider, logger: logger, metrics: metrics}
}

// Strings returns every value of a multi-valued locale field.
func (g *EnumerationGateway) Strings(id LocaleID, field Field) []string {
	if g == nil || g.provider == nil {
		return nil
	}
	return collect(g, "field", logrus.Fields{"locale": id, "field": field}, func(yield func(string) bool) error {
		return g.provider.EnumerateField(id, field, yield)
	})
}

// Calendars returns the calendars a locale supports in host order.
func (g *EnumerationGateway) Calendars(id LocaleID) []CalendarID {
	if g == nil || g.provider == nil {
		return nil
	}
	return collect(g, "calendars", logrus.Fields{"locale": id}, func(yield func(CalendarID) bool) error {
		return g.provider.EnumerateCalendars(id, yield)
	})
}

// CalendarStrings returns every value of a multi-valued calendar field.
func (g *EnumerationGateway) CalendarStrings(id LocaleID, cal CalendarID, field CalendarField) []string {
	if g == nil || g.provider == nil {
		return nil
	}
	fields := logrus.Fields{"locale": id, "calendar": cal, "calendar_field": uint32(field)}
	return collect(g, "calendar_field", fields, func(yield func(string) bool) error {
		return g.provider.EnumerateCalendarField(id, cal, field, yield)
	})
}

// Locales returns the names of the system locales matching filter.
func (g *EnumerationGateway) Locales(filter CultureTypes) []string {
	if g == nil || g.provider == nil {
		return nil
	}
	return collect(g, "locales", logrus.Fields{"filter": uint32(filter)}, func(yield func(string) bool) error {
		return g.provider.EnumerateLocales(filter, yield)
	})
}

func collect[T any](g *EnumerationGateway, op string, fields logrus.Fields, run func(func(T) bool) error) (out []T) {
	enumerationMu.Lock()
	defer enumerationMu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			g.partial(op, fields, fmt.Errorf("panic: %v", r), len(out))
		}
	}()

	err := run(func(value T) bool {
		out = append(out, value)
		return true
	})
	if err != nil {
		g.partial(op, fields, err, len(out))
	}
	return out
}

func (g *EnumerationGateway) partial(op string, fields logrus.Fields, err error, kept int) {
	g.metrics.partial(op)
	g.logger.WithFields(fields).WithError(err).WithField("kept", kept).Debug("culture: enumeration stopped early")
}
