package culture

// NumberData is the numeric and currency formatting data of a culture.
type NumberData struct {
	PositiveSign           string
	NegativeSign           string
	DecimalSeparator       string
	GroupSeparator         string
	GroupSizes             []int
	DecimalDigits          int
	NegativeNumberFormat   int
	NaNSymbol              string
	PositiveInfinitySymbol string
	NegativeInfinitySymbol string

	PercentSymbol         string
	PerMilleSymbol        string
	PositivePercentFormat int
	NegativePercentFormat int

	CurrencySymbol           string
	ISOCurrencySymbol        string
	CurrencyDecimalDigits    int
	PositiveCurrencyFormat   int
	NegativeCurrencyFormat   int
	CurrencyDecimalSeparator string
	CurrencyGroupSeparator   string
	CurrencyGroupSizes       []int

	NativeDigits      []string
	DigitSubstitution int
}

// Clone returns a copy that shares no slices with n.
func (n NumberData) Clone() NumberData {
	n.GroupSizes = cloneInts(n.GroupSizes)
	n.CurrencyGroupSizes = cloneInts(n.CurrencyGroupSizes)
	n.NativeDigits = cloneStrings(n.NativeDigits)
	return n
}

// cultureNames holds the display and identity strings a record computes on
// first access.
type cultureNames struct {
	parentID   *lazy[LocaleID]
	specificID *lazy[LocaleID]

	localizedDisplayName *lazy[string]
	englishDisplayName   *lazy[string]
	nativeDisplayName    *lazy[string]

	localizedLanguageName *lazy[string]
	englishLanguageName   *lazy[string]
	nativeLanguageName    *lazy[string]

	localizedCountryName *lazy[string]
	englishCountryName   *lazy[string]
	nativeCountryName    *lazy[string]

	iso639TwoLetter   *lazy[string]
	iso639ThreeLetter *lazy[string]
	windowsLanguage   *lazy[string]
	iso3166TwoLetter  *lazy[string]
	iso3166Three      *lazy[string]

	currencyEnglishName *lazy[string]
	currencyNativeName  *lazy[string]
	consoleFallbackName *lazy[string]

	ansiCodePage   *lazy[int]
	oemCodePage    *lazy[int]
	macCodePage    *lazy[int]
	ebcdicCodePage *lazy[int]
	geoID          *lazy[int]
	keyboardLayout *lazy[int]

	replacement *lazy[bool]
}

// CultureRecord is the resolved data of one locale. It is immutable once
// built; display strings are computed on first access and then fixed.
type CultureRecord struct {
	id              LocaleID
	name            string
	languageID      int
	neutral         bool
	custom          bool
	useUserOverride bool

	numbers NumberData

	firstDayOfWeek    int
	calendarWeekRule  int
	measurementSystem int
	listSeparator     string
	amDesignator      string
	pmDesignator      string
	timeSeparator     string
	longTimes         []string
	shortTimes        []string
	readingLayout     int

	calendarIDs []CalendarID
	calendars   *CalendarDataCache

	names cultureNames
}

// ID is the normalized locale id the record was built for.
func (r *CultureRecord) ID() LocaleID {
	if r == nil {
		return 0
	}
	return r.id
}

// Name is the locale name, "" for the invariant culture.
func (r *CultureRecord) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

func (r *CultureRecord) LanguageID() int {
	if r == nil {
		return 0
	}
	return r.languageID
}

// IsNeutral reports whether the culture names a language without a region.
func (r *CultureRecord) IsNeutral() bool {
	return r != nil && r.neutral
}

// IsCustom reports whether the culture is a user-defined locale.
func (r *CultureRecord) IsCustom() bool {
	return r != nil && r.custom
}

// UsesUserOverride reports whether user overrides were merged into the record.
func (r *CultureRecord) UsesUserOverride() bool {
	return r != nil && r.useUserOverride
}

// ParentID is the id of the parent culture, Invariant at the root.
func (r *CultureRecord) ParentID() LocaleID {
	if r == nil {
		return 0
	}
	return r.names.parentID.get()
}

// SpecificID is the most likely specific culture for a neutral culture, and
// the culture itself otherwise.
func (r *CultureRecord) SpecificID() LocaleID {
	if r == nil {
		return 0
	}
	return r.names.specificID.get()
}

// DisplayName is the culture name in the host UI language.
func (r *CultureRecord) DisplayName() string {
	if r == nil {
		return ""
	}
	return r.names.localizedDisplayName.get()
}

// EnglishName is the English display name, e.g. "English (United States)".
func (r *CultureRecord) EnglishName() string {
	if r == nil {
		return ""
	}
	return r.names.englishDisplayName.get()
}

// NativeName is the display name in the culture's own language.
func (r *CultureRecord) NativeName() string {
	if r == nil {
		return ""
	}
	return r.names.nativeDisplayName.get()
}

func (r *CultureRecord) LocalizedLanguageName() string {
	if r == nil {
		return ""
	}
	return r.names.localizedLanguageName.get()
}

func (r *CultureRecord) EnglishLanguageName() string {
	if r == nil {
		return ""
	}
	return r.names.englishLanguageName.get()
}

func (r *CultureRecord) NativeLanguageName() string {
	if r == nil {
		return ""
	}
	return r.names.nativeLanguageName.get()
}

func (r *CultureRecord) LocalizedCountryName() string {
	if r == nil {
		return ""
	}
	return r.names.localizedCountryName.get()
}

func (r *CultureRecord) EnglishCountryName() string {
	if r == nil {
		return ""
	}
	return r.names.englishCountryName.get()
}

func (r *CultureRecord) NativeCountryName() string {
	if r == nil {
		return ""
	}
	return r.names.nativeCountryName.get()
}

func (r *CultureRecord) TwoLetterISOLanguageName() string {
	if r == nil {
		return ""
	}
	return r.names.iso639TwoLetter.get()
}

func (r *CultureRecord) ThreeLetterISOLanguageName() string {
	if r == nil {
		return ""
	}
	return r.names.iso639ThreeLetter.get()
}

func (r *CultureRecord) ThreeLetterWindowsLanguageName() string {
	if r == nil {
		return ""
	}
	return r.names.windowsLanguage.get()
}

func (r *CultureRecord) TwoLetterISORegionName() string {
	if r == nil {
		return ""
	}
	return r.names.iso3166TwoLetter.get()
}

func (r *CultureRecord) ThreeLetterISORegionName() string {
	if r == nil {
		return ""
	}
	return r.names.iso3166Three.get()
}

func (r *CultureRecord) CurrencyEnglishName() string {
	if r == nil {
		return ""
	}
	return r.names.currencyEnglishName.get()
}

func (r *CultureRecord) CurrencyNativeName() string {
	if r == nil {
		return ""
	}
	return r.names.currencyNativeName.get()
}

// ConsoleFallbackName is the culture to use on consoles that cannot render
// this one.
func (r *CultureRecord) ConsoleFallbackName() string {
	if r == nil {
		return ""
	}
	return r.names.consoleFallbackName.get()
}

func (r *CultureRecord) ANSICodePage() int {
	if r == nil {
		return 0
	}
	return r.names.ansiCodePage.get()
}

func (r *CultureRecord) OEMCodePage() int {
	if r == nil {
		return 0
	}
	return r.names.oemCodePage.get()
}

func (r *CultureRecord) MacCodePage() int {
	if r == nil {
		return 0
	}
	return r.names.macCodePage.get()
}

func (r *CultureRecord) EBCDICCodePage() int {
	if r == nil {
		return 0
	}
	return r.names.ebcdicCodePage.get()
}

func (r *CultureRecord) GeoID() int {
	if r == nil {
		return 0
	}
	return r.names.geoID.get()
}

// KeyboardLayoutID is the input language handle, en-US for custom cultures.
func (r *CultureRecord) KeyboardLayoutID() int {
	if r == nil {
		return 0
	}
	return r.names.keyboardLayout.get()
}

// IsReplacementCulture reports whether the host lists the culture as a
// replacement of a built-in one.
func (r *CultureRecord) IsReplacementCulture() bool {
	return r != nil && r.names.replacement.get()
}

// NumberFormat returns a copy of the numeric formatting data.
func (r *CultureRecord) NumberFormat() NumberData {
	if r == nil {
		return NumberData{}
	}
	return r.numbers.Clone()
}

// FirstDayOfWeek uses 0 = Sunday.
func (r *CultureRecord) FirstDayOfWeek() int {
	if r == nil {
		return 0
	}
	return r.firstDayOfWeek
}

func (r *CultureRecord) CalendarWeekRule() int {
	if r == nil {
		return 0
	}
	return r.calendarWeekRule
}

// MeasurementSystem is 0 for metric and 1 for US.
func (r *CultureRecord) MeasurementSystem() int {
	if r == nil {
		return 0
	}
	return r.measurementSystem
}

func (r *CultureRecord) ListSeparator() string {
	if r == nil {
		return ""
	}
	return r.listSeparator
}

func (r *CultureRecord) AMDesignator() string {
	if r == nil {
		return ""
	}
	return r.amDesignator
}

func (r *CultureRecord) PMDesignator() string {
	if r == nil {
		return ""
	}
	return r.pmDesignator
}

// TimeSeparator is derived from the first long time pattern.
func (r *CultureRecord) TimeSeparator() string {
	if r == nil {
		return ""
	}
	return r.timeSeparator
}

func (r *CultureRecord) LongTimes() []string {
	if r == nil {
		return nil
	}
	return cloneStrings(r.longTimes)
}

func (r *CultureRecord) ShortTimes() []string {
	if r == nil {
		return nil
	}
	return cloneStrings(r.shortTimes)
}

func (r *CultureRecord) ReadingLayout() int {
	if r == nil {
		return 0
	}
	return r.readingLayout
}

func (r *CultureRecord) IsRightToLeft() bool {
	return r != nil && r.readingLayout == 1
}

// CalendarIDs lists the supported calendars, default first.
func (r *CultureRecord) CalendarIDs() []CalendarID {
	if r == nil {
		return nil
	}
	return append([]CalendarID(nil), r.calendarIDs...)
}

func (r *CultureRecord) DefaultCalendar() CalendarID {
	if r == nil || len(r.calendarIDs) == 0 {
		return Gregorian
	}
	return r.calendarIDs[0]
}

// Calendar returns the calendar data of this culture for cal.
func (r *CultureRecord) Calendar(cal CalendarID) *CalendarRecord {
	if r == nil || r.calendars == nil || r.id == Invariant {
		return invariantCalendar
	}
	return r.calendars.Get(r.id, cal)
}
