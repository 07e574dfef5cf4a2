package culture

// LocaleProvider is the raw host locale query surface. Implementations are
// called synchronously; a bool=false or error result means the host could not
// answer and the engine falls back to defaults.
type LocaleProvider interface {
	// NumberField returns a numeric locale field.
	NumberField(id LocaleID, field Field) (int64, bool)
	// StringField returns a string locale field.
	StringField(id LocaleID, field Field) (string, bool)
	// EnumerateField reports every value of a multi-valued field in host order.
	// The first entry may be a user override. fn returns false to stop.
	EnumerateField(id LocaleID, field Field, fn func(string) bool) error
	// EnumerateCalendars reports the calendars a locale supports, default first.
	EnumerateCalendars(id LocaleID, fn func(CalendarID) bool) error
	// EnumerateLocales reports the names of the system locales matching filter.
	EnumerateLocales(filter CultureTypes, fn func(name string) bool) error

	CalendarString(id LocaleID, cal CalendarID, field CalendarField) (string, bool)
	CalendarNumber(id LocaleID, cal CalendarID, field CalendarField) (int64, bool)
	EnumerateCalendarField(id LocaleID, cal CalendarID, field CalendarField, fn func(string) bool) error

	LocaleNameToID(name string) (LocaleID, bool)
	IDToName(id LocaleID) string
	ParentLocaleID(id LocaleID) LocaleID

	// UserDefaultID returns the live user default locale.
	UserDefaultID() LocaleID
	SystemDefaultID() LocaleID
}
