package culture

const invariantDisplayName = "Invariant Language (Invariant Country)"

var (
	invariantLongTimes  = []string{"HH:mm:ss"}
	invariantShortTimes = []string{"HH:mm", "hh:mm tt", "H:mm", "h:mm tt"}
	invariantDigits     = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
)

// invariantCulture is built from constants and never consults a provider.
var invariantCulture = newInvariantCulture()

func newInvariantCulture() *CultureRecord {
	return &CultureRecord{
		id:         Invariant,
		name:       "",
		languageID: int(Invariant),
		numbers: NumberData{
			PositiveSign:           "+",
			NegativeSign:           "-",
			DecimalSeparator:       ".",
			GroupSeparator:         ",",
			GroupSizes:             []int{3},
			DecimalDigits:          2,
			NegativeNumberFormat:   1,
			NaNSymbol:              "NaN",
			PositiveInfinitySymbol: "Infinity",
			NegativeInfinitySymbol: "-Infinity",

			PercentSymbol:         "%",
			PerMilleSymbol:        "‰",
			PositivePercentFormat: 0,
			NegativePercentFormat: 0,

			CurrencySymbol:           "¤",
			ISOCurrencySymbol:        "XDR",
			CurrencyDecimalDigits:    2,
			PositiveCurrencyFormat:   0,
			NegativeCurrencyFormat:   0,
			CurrencyDecimalSeparator: ".",
			CurrencyGroupSeparator:   ",",
			CurrencyGroupSizes:       []int{3},

			NativeDigits:      cloneStrings(invariantDigits),
			DigitSubstitution: 1,
		},
		firstDayOfWeek:    0,
		calendarWeekRule:  0,
		measurementSystem: 0,
		listSeparator:     ",",
		amDesignator:      "AM",
		pmDesignator:      "PM",
		timeSeparator:     ":",
		longTimes:         cloneStrings(invariantLongTimes),
		shortTimes:        cloneStrings(invariantShortTimes),
		readingLayout:     0,
		calendarIDs:       []CalendarID{Gregorian},
		names: cultureNames{
			parentID:   fixed(Invariant),
			specificID: fixed(Invariant),

			localizedDisplayName: fixed(invariantDisplayName),
			englishDisplayName:   fixed(invariantDisplayName),
			nativeDisplayName:    fixed(invariantDisplayName),

			localizedLanguageName: fixed("Invariant Language"),
			englishLanguageName:   fixed("Invariant Language"),
			nativeLanguageName:    fixed("Invariant Language"),

			localizedCountryName: fixed("Invariant Country"),
			englishCountryName:   fixed("Invariant Country"),
			nativeCountryName:    fixed("Invariant Country"),

			iso639TwoLetter:   fixed("iv"),
			iso639ThreeLetter: fixed("ivl"),
			windowsLanguage:   fixed("IVL"),
			iso3166TwoLetter:  fixed("IV"),
			iso3166Three:      fixed("ivc"),

			currencyEnglishName: fixed("International Monetary Fund"),
			currencyNativeName:  fixed("International Monetary Fund"),
			consoleFallbackName: fixed(""),

			ansiCodePage:   fixed(1252),
			oemCodePage:    fixed(437),
			macCodePage:    fixed(10000),
			ebcdicCodePage: fixed(37),
			geoID:          fixed(244),
			keyboardLayout: fixed(int(Invariant)),

			replacement: fixed(false),
		},
	}
}

// invariantCalendar is the Gregorian calendar of the invariant culture. It
// also supplies the values a host leaves out.
var invariantCalendar = &CalendarRecord{
	locale:          Invariant,
	calendar:        Gregorian,
	nativeName:      "Gregorian Calendar",
	twoDigitYearMax: 2029,
	shortDates:      []string{"MM/dd/yyyy", "yyyy-MM-dd"},
	longDates:       []string{"dddd, dd MMMM yyyy"},
	yearMonths:      []string{"yyyy MMMM"},
	monthDay:        "MMMM dd",
	dateSeparator:   "/",
	eraNames:        []string{"A.D."},
	abbrevEraNames:  []string{"AD"},
	dayNames:        []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	abbrevDayNames:  []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	superShortDays:  []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	monthNames: []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December", "",
	},
	abbrevMonthNames: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "",
	},
	genitiveMonthNames: []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December", "",
	},
	abbrevGenitiveMonths: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "",
	},
}
