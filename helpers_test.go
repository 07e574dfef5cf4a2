package culture

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func defaultTableProvider(t *testing.T) *TableProvider {
	t.Helper()
	tables, err := DefaultTables()
	require.NoError(t, err)
	provider, err := NewTableProvider(tables)
	require.NoError(t, err)
	return provider
}

func newTestEngine(t *testing.T) (*Engine, *TableProvider) {
	t.Helper()
	provider := defaultTableProvider(t)
	return NewEngine(provider, nil, nil), provider
}

func overriddenTableProvider(t *testing.T) *TableProvider {
	t.Helper()
	provider := defaultTableProvider(t)
	overrides, err := LoadOverrideTable("testdata/overrides.yaml")
	require.NoError(t, err)
	require.NoError(t, provider.SetUserOverrides(overrides))
	return provider
}

// countingProvider counts every call into the wrapped provider.
type countingProvider struct {
	LocaleProvider
	calls *atomic.Int64
}

func newCountingProvider(next LocaleProvider) *countingProvider {
	return &countingProvider{LocaleProvider: next, calls: atomic.NewInt64(0)}
}

func (c *countingProvider) NumberField(id LocaleID, field Field) (int64, bool) {
	c.calls.Inc()
	return c.LocaleProvider.NumberField(id, field)
}

func (c *countingProvider) StringField(id LocaleID, field Field) (string, bool) {
	c.calls.Inc()
	return c.LocaleProvider.StringField(id, field)
}

func (c *countingProvider) EnumerateField(id LocaleID, field Field, fn func(string) bool) error {
	c.calls.Inc()
	return c.LocaleProvider.EnumerateField(id, field, fn)
}

func (c *countingProvider) EnumerateCalendars(id LocaleID, fn func(CalendarID) bool) error {
	c.calls.Inc()
	return c.LocaleProvider.EnumerateCalendars(id, fn)
}

func (c *countingProvider) EnumerateLocales(filter CultureTypes, fn func(string) bool) error {
	c.calls.Inc()
	return c.LocaleProvider.EnumerateLocales(filter, fn)
}

func (c *countingProvider) CalendarString(id LocaleID, cal CalendarID, field CalendarField) (string, bool) {
	c.calls.Inc()
	return c.LocaleProvider.CalendarString(id, cal, field)
}

func (c *countingProvider) CalendarNumber(id LocaleID, cal CalendarID, field CalendarField) (int64, bool) {
	c.calls.Inc()
	return c.LocaleProvider.CalendarNumber(id, cal, field)
}

func (c *countingProvider) EnumerateCalendarField(id LocaleID, cal CalendarID, field CalendarField, fn func(string) bool) error {
	c.calls.Inc()
	return c.LocaleProvider.EnumerateCalendarField(id, cal, field, fn)
}

func (c *countingProvider) LocaleNameToID(name string) (LocaleID, bool) {
	c.calls.Inc()
	return c.LocaleProvider.LocaleNameToID(name)
}

func (c *countingProvider) IDToName(id LocaleID) string {
	c.calls.Inc()
	return c.LocaleProvider.IDToName(id)
}

func (c *countingProvider) ParentLocaleID(id LocaleID) LocaleID {
	c.calls.Inc()
	return c.LocaleProvider.ParentLocaleID(id)
}

func (c *countingProvider) UserDefaultID() LocaleID {
	c.calls.Inc()
	return c.LocaleProvider.UserDefaultID()
}

func (c *countingProvider) SystemDefaultID() LocaleID {
	c.calls.Inc()
	return c.LocaleProvider.SystemDefaultID()
}

// brokenEnumerations yields the first value of every field enumeration and
// then panics, or fails with an error when failWith is set.
type brokenEnumerations struct {
	LocaleProvider
	failWith error
}

func (b *brokenEnumerations) EnumerateField(id LocaleID, field Field, fn func(string) bool) error {
	yielded := false
	err := b.LocaleProvider.EnumerateField(id, field, func(v string) bool {
		if yielded {
			return false
		}
		yielded = true
		return fn(v)
	})
	if err != nil {
		return err
	}
	if b.failWith != nil {
		return b.failWith
	}
	panic("enumeration callback crashed")
}

// flakyProvider panics on the first read of one number field.
type flakyProvider struct {
	LocaleProvider
	id       LocaleID
	field    Field
	panicked *atomic.Bool
}

func (f *flakyProvider) NumberField(id LocaleID, field Field) (int64, bool) {
	if id == f.id && field.Base() == f.field && f.panicked.CAS(false, true) {
		panic("host read failed")
	}
	return f.LocaleProvider.NumberField(id, field)
}
