package culture

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/atomic"
	"golang.org/x/text/language"
)

// TableProvider is a LocaleProvider over in-memory locale tables. It answers
// like a host would: user overrides apply to the user default locale unless
// the query carries the no-user-override bit, and time format enumerations
// report the user's format first.
type TableProvider struct {
	locales       []*compiledLocale
	byID          map[LocaleID]*compiledLocale
	byName        map[string]*compiledLocale
	userDefault   *atomic.Uint32
	systemDefault *atomic.Uint32

	mu        sync.RWMutex
	overrides *compiledOverrides
}

var _ LocaleProvider = (*TableProvider)(nil)

// NewTableProvider compiles tables. The user default falls back to the system
// default, and both fall back to the invariant locale.
func NewTableProvider(tables LocaleTables) (*TableProvider, error) {
	p := &TableProvider{
		byID:          make(map[LocaleID]*compiledLocale, len(tables.Locales)),
		byName:        make(map[string]*compiledLocale, len(tables.Locales)),
		userDefault:   atomic.NewUint32(uint32(Invariant)),
		systemDefault: atomic.NewUint32(uint32(Invariant)),
	}

	for _, table := range tables.Locales {
		locale, err := compileLocale(table)
		if err != nil {
			return nil, err
		}
		if _, exists := p.byID[locale.id]; exists {
			return nil, fmt.Errorf("culture: duplicate locale id %s", locale.id)
		}
		p.locales = append(p.locales, locale)
		p.byID[locale.id] = locale
		if locale.name != "" {
			p.byName[strings.ToLower(locale.name)] = locale
		}
	}

	overrides, err := compileOverrides(tables.UserOverrides)
	if err != nil {
		return nil, err
	}
	p.overrides = overrides

	if tables.SystemDefault != "" {
		id, ok := p.LocaleNameToID(tables.SystemDefault)
		if !ok {
			return nil, fmt.Errorf("culture: system default %q is not defined", tables.SystemDefault)
		}
		p.systemDefault.Store(uint32(id))
	}

	p.userDefault.Store(p.systemDefault.Load())
	if tables.UserDefault != "" {
		id, ok := p.LocaleNameToID(tables.UserDefault)
		if !ok {
			return nil, fmt.Errorf("culture: user default %q is not defined", tables.UserDefault)
		}
		p.userDefault.Store(uint32(id))
	}

	return p, nil
}

// SetUserDefault changes the live user default locale.
func (p *TableProvider) SetUserDefault(id LocaleID) {
	if p == nil {
		return
	}
	p.userDefault.Store(uint32(id))
}

// SetSystemDefault changes the system default locale.
func (p *TableProvider) SetSystemDefault(id LocaleID) {
	if p == nil {
		return
	}
	p.systemDefault.Store(uint32(id))
}

// SetUserOverrides replaces the per-machine user overrides.
func (p *TableProvider) SetUserOverrides(table *OverrideTable) error {
	if p == nil {
		return nil
	}
	overrides, err := compileOverrides(table)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.overrides = overrides
	p.mu.Unlock()
	return nil
}

func (p *TableProvider) currentOverrides() *compiledOverrides {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.overrides
}

func (p *TableProvider) overridden(id LocaleID, field Field) bool {
	return !field.NoUserOverride() && id == p.UserDefaultID()
}

func (p *TableProvider) NumberField(id LocaleID, field Field) (int64, bool) {
	locale, ok := p.byID[id]
	if !ok {
		return 0, false
	}
	if p.overridden(id, field) {
		if v, ok := p.currentOverrides().numbers[field.Base()]; ok {
			return v, true
		}
	}
	v, ok := locale.numbers[field.Base()]
	return v, ok
}

func (p *TableProvider) StringField(id LocaleID, field Field) (string, bool) {
	locale, ok := p.byID[id]
	if !ok {
		return "", false
	}
	base := field.Base()
	if p.overridden(id, field) {
		if v, ok := p.currentOverrides().strings[base]; ok {
			return v, true
		}
	}
	if v, ok := locale.strings[base]; ok {
		return v, true
	}
	if list := locale.lists[base]; len(list) > 0 {
		return list[0], true
	}
	return "", false
}

// EnumerateField reports a list field. For the user default locale the user's
// value is reported first whatever the modifier bits say, as hosts do.
func (p *TableProvider) EnumerateField(id LocaleID, field Field, fn func(string) bool) error {
	locale, ok := p.byID[id]
	if !ok {
		return fmt.Errorf("culture: unknown locale %s", id)
	}
	base := field.Base()

	var override string
	if id == p.UserDefaultID() {
		override = p.currentOverrides().strings[base]
	}
	if override != "" && !fn(override) {
		return nil
	}
	for _, v := range locale.lists[base] {
		if v == override {
			continue
		}
		if !fn(v) {
			return nil
		}
	}
	return nil
}

func (p *TableProvider) EnumerateCalendars(id LocaleID, fn func(CalendarID) bool) error {
	locale, ok := p.byID[id]
	if !ok {
		return fmt.Errorf("culture: unknown locale %s", id)
	}
	for _, cal := range locale.calendars {
		if !fn(cal.id) {
			return nil
		}
	}
	return nil
}

func (p *TableProvider) EnumerateLocales(filter CultureTypes, fn func(string) bool) error {
	for _, locale := range p.locales {
		if !matchesCultureTypes(locale, filter) {
			continue
		}
		if !fn(locale.name) {
			return nil
		}
	}
	return nil
}

func matchesCultureTypes(locale *compiledLocale, filter CultureTypes) bool {
	neutral := IsNeutral(locale.id)
	switch {
	case filter&ReplacementCultures != 0 && locale.replacement:
		return true
	case filter&UserCustomCulture != 0 && locale.custom:
		return true
	case locale.custom:
		return false
	case filter&InstalledWin32Cultures != 0:
		return true
	case filter&NeutralCultures != 0 && neutral:
		return true
	case filter&SpecificCultures != 0 && !neutral:
		return true
	}
	return false
}

func (p *TableProvider) CalendarString(id LocaleID, cal CalendarID, field CalendarField) (string, bool) {
	locale, ok := p.byID[id]
	if !ok {
		return "", false
	}
	data := locale.calendar(cal)
	if data == nil {
		return "", false
	}
	return data.stringField(field)
}

func (p *TableProvider) CalendarNumber(id LocaleID, cal CalendarID, field CalendarField) (int64, bool) {
	locale, ok := p.byID[id]
	if !ok {
		return 0, false
	}
	data := locale.calendar(cal)
	if data == nil {
		return 0, false
	}
	switch field.Base() {
	case CalendarIntValue:
		return int64(data.id), true
	case CalendarTwoDigitYearMax:
		return data.table.TwoDigitYearMax, data.table.TwoDigitYearMax != 0
	}
	return 0, false
}

func (p *TableProvider) EnumerateCalendarField(id LocaleID, cal CalendarID, field CalendarField, fn func(string) bool) error {
	locale, ok := p.byID[id]
	if !ok {
		return fmt.Errorf("culture: unknown locale %s", id)
	}
	data := locale.calendar(cal)
	if data == nil {
		return fmt.Errorf("culture: locale %s has no %s calendar", id, cal)
	}
	for _, v := range data.listField(field) {
		if !fn(v) {
			return nil
		}
	}
	return nil
}

// LocaleNameToID matches names case-insensitively, with "_" accepted for "-".
func (p *TableProvider) LocaleNameToID(name string) (LocaleID, bool) {
	if name == "" {
		return Invariant, true
	}
	locale, ok := p.byName[strings.ToLower(strings.ReplaceAll(name, "_", "-"))]
	if !ok {
		return 0, false
	}
	return locale.id, true
}

func (p *TableProvider) IDToName(id LocaleID) string {
	if locale, ok := p.byID[id]; ok {
		return locale.name
	}
	return ""
}

// ParentLocaleID uses the table's parent name, then the language parent of
// the locale name. Top-level locales have the invariant parent.
func (p *TableProvider) ParentLocaleID(id LocaleID) LocaleID {
	locale, ok := p.byID[id]
	if !ok {
		return Invariant
	}
	if locale.parent != "" {
		if parent, ok := p.LocaleNameToID(locale.parent); ok {
			return parent
		}
	}
	tag, err := language.Parse(locale.name)
	if err != nil {
		return Invariant
	}
	for parent := tag.Parent(); parent != language.Und && parent != tag; tag, parent = parent, parent.Parent() {
		if id, ok := p.LocaleNameToID(parent.String()); ok {
			return id
		}
	}
	return Invariant
}

func (p *TableProvider) UserDefaultID() LocaleID {
	return LocaleID(p.userDefault.Load())
}

func (p *TableProvider) SystemDefaultID() LocaleID {
	return LocaleID(p.systemDefault.Load())
}

// Locales returns the ids of every table entry in file order.
func (p *TableProvider) Locales() []LocaleID {
	ids := make([]LocaleID, 0, len(p.locales))
	for _, locale := range p.locales {
		ids = append(ids, locale.id)
	}
	return ids
}
