package culture

import "fmt"

// Field is a host locale field code. Values match the Win32 LCTYPE constants
// so that a provider backed by a real host can pass them through unchanged.
type Field uint32

// FieldNoUserOverride asks the provider for the system value, ignoring any
// per-machine user override.
const FieldNoUserOverride Field = 0x80000000

// String fields.
const (
	FieldLocalizedDisplayName          Field = 0x00000002
	FieldAbbreviatedWindowsLanguage    Field = 0x00000003
	FieldNativeLanguageName            Field = 0x00000004
	FieldLocalizedCountryName          Field = 0x00000006
	FieldNativeCountryName             Field = 0x00000008
	FieldListSeparator                 Field = 0x0000000C
	FieldDecimalSeparator              Field = 0x0000000E
	FieldThousandSeparator             Field = 0x0000000F
	FieldDigitGrouping                 Field = 0x00000010
	FieldNativeDigits                  Field = 0x00000013
	FieldMonetarySymbol                Field = 0x00000014
	FieldIso4217MonetarySymbol         Field = 0x00000015
	FieldMonetaryDecimalSeparator      Field = 0x00000016
	FieldMonetaryThousandSeparator     Field = 0x00000017
	FieldMonetaryGrouping              Field = 0x00000018
	FieldShortDate                     Field = 0x0000001F
	FieldLongDate                      Field = 0x00000020
	FieldAMDesignator                  Field = 0x00000028
	FieldPMDesignator                  Field = 0x00000029
	FieldPositiveSign                  Field = 0x00000050
	FieldNegativeSign                  Field = 0x00000051
	FieldIso639LanguageTwoLetterName   Field = 0x00000059
	FieldIso3166CountryName            Field = 0x0000005A
	FieldIso639LanguageThreeLetterName Field = 0x00000067
	FieldIso3166CountryName2           Field = 0x00000068
	FieldNaNSymbol                     Field = 0x00000069
	FieldPositiveInfinitySymbol        Field = 0x0000006A
	FieldNegativeInfinitySymbol        Field = 0x0000006B
	FieldParentName                    Field = 0x0000006D
	FieldConsoleFallbackName           Field = 0x0000006E
	FieldLocalizedLanguageName         Field = 0x0000006F
	FieldEnglishDisplayName            Field = 0x00000072
	FieldNativeDisplayName             Field = 0x00000073
	FieldPercentSymbol                 Field = 0x00000076
	FieldPerMilleSymbol                Field = 0x00000077
	FieldShortTimeFormat               Field = 0x00000079
	FieldEnglishLanguageName           Field = 0x00001001
	FieldEnglishCountryName            Field = 0x00001002
	FieldLongTimeFormat                Field = 0x00001003
	FieldYearMonth                     Field = 0x00001006
	FieldCurrencyEnglishName           Field = 0x00001007
	FieldCurrencyNativeName            Field = 0x00001008
)

// Numeric fields.
const (
	FieldLanguageID               Field = 0x00000001
	FieldOemCodePage              Field = 0x0000000B
	FieldMeasurementSystem        Field = 0x0000000D
	FieldFractionalDigits         Field = 0x00000011
	FieldMonetaryFractionalDigits Field = 0x00000019
	FieldPositiveMonetaryFormat   Field = 0x0000001B
	FieldNegativeMonetaryFormat   Field = 0x0000001C
	FieldGeoID                    Field = 0x0000005B
	FieldReadingLayout            Field = 0x00000070
	FieldNegativePercentFormat    Field = 0x00000074
	FieldPositivePercentFormat    Field = 0x00000075
	FieldAnsiCodePage             Field = 0x00001004
	FieldCalendarType             Field = 0x00001009
	FieldFirstDayOfWeek           Field = 0x0000100C
	FieldFirstWeekOfYear          Field = 0x0000100D
	FieldNegativeNumberFormat     Field = 0x00001010
	FieldMacCodePage              Field = 0x00001011
	FieldEbcdicCodePage           Field = 0x00001012
	FieldDigitSubstitution        Field = 0x00001014
)

// Base strips modifier bits.
func (f Field) Base() Field {
	return f &^ FieldNoUserOverride
}

// NoUserOverride reports whether the no-user-override modifier is set.
func (f Field) NoUserOverride() bool {
	return f&FieldNoUserOverride != 0
}

func (f Field) String() string {
	if name, ok := fieldNames[f.Base()]; ok {
		if f.NoUserOverride() {
			return name + "|no_user_override"
		}
		return name
	}
	return fmt.Sprintf("field(0x%X)", uint32(f))
}

// overridableFields lists the fields a user override may replace. Every other
// field is always queried with FieldNoUserOverride.
var overridableFields = map[Field]struct{}{
	FieldPositiveSign:              {},
	FieldNegativeSign:              {},
	FieldDecimalSeparator:          {},
	FieldThousandSeparator:         {},
	FieldMonetaryDecimalSeparator:  {},
	FieldMonetaryThousandSeparator: {},
	FieldListSeparator:             {},
	FieldMonetarySymbol:            {},
	FieldAMDesignator:              {},
	FieldPMDesignator:              {},
	FieldDigitGrouping:             {},
	FieldMonetaryGrouping:          {},
	FieldMeasurementSystem:         {},
	FieldFirstDayOfWeek:            {},
	FieldFirstWeekOfYear:           {},
}

// IsOverridable reports whether a user override may replace f.
func IsOverridable(f Field) bool {
	_, ok := overridableFields[f.Base()]
	return ok
}

var fieldNames = map[Field]string{
	FieldLocalizedDisplayName:          "localized_display_name",
	FieldAbbreviatedWindowsLanguage:    "abbreviated_windows_language",
	FieldNativeLanguageName:            "native_language_name",
	FieldLocalizedCountryName:          "localized_country_name",
	FieldNativeCountryName:             "native_country_name",
	FieldListSeparator:                 "list_separator",
	FieldDecimalSeparator:              "decimal_separator",
	FieldThousandSeparator:             "thousand_separator",
	FieldDigitGrouping:                 "digit_grouping",
	FieldNativeDigits:                  "native_digits",
	FieldMonetarySymbol:                "monetary_symbol",
	FieldIso4217MonetarySymbol:         "iso4217_monetary_symbol",
	FieldMonetaryDecimalSeparator:      "monetary_decimal_separator",
	FieldMonetaryThousandSeparator:     "monetary_thousand_separator",
	FieldMonetaryGrouping:              "monetary_grouping",
	FieldShortDate:                     "short_date",
	FieldLongDate:                      "long_date",
	FieldAMDesignator:                  "am_designator",
	FieldPMDesignator:                  "pm_designator",
	FieldPositiveSign:                  "positive_sign",
	FieldNegativeSign:                  "negative_sign",
	FieldIso639LanguageTwoLetterName:   "iso639_language",
	FieldIso3166CountryName:            "iso3166_country",
	FieldIso639LanguageThreeLetterName: "iso639_language3",
	FieldIso3166CountryName2:           "iso3166_country3",
	FieldNaNSymbol:                     "nan_symbol",
	FieldPositiveInfinitySymbol:        "positive_infinity_symbol",
	FieldNegativeInfinitySymbol:        "negative_infinity_symbol",
	FieldParentName:                    "parent_name",
	FieldConsoleFallbackName:           "console_fallback_name",
	FieldLocalizedLanguageName:         "localized_language_name",
	FieldEnglishDisplayName:            "english_display_name",
	FieldNativeDisplayName:             "native_display_name",
	FieldPercentSymbol:                 "percent_symbol",
	FieldPerMilleSymbol:                "per_mille_symbol",
	FieldShortTimeFormat:               "short_time",
	FieldEnglishLanguageName:           "english_language_name",
	FieldEnglishCountryName:            "english_country_name",
	FieldLongTimeFormat:                "long_time",
	FieldYearMonth:                     "year_month",
	FieldCurrencyEnglishName:           "currency_english_name",
	FieldCurrencyNativeName:            "currency_native_name",

	FieldLanguageID:               "language_id",
	FieldOemCodePage:              "oem_code_page",
	FieldMeasurementSystem:        "measurement_system",
	FieldFractionalDigits:         "fractional_digits",
	FieldMonetaryFractionalDigits: "monetary_fractional_digits",
	FieldPositiveMonetaryFormat:   "positive_monetary_format",
	FieldNegativeMonetaryFormat:   "negative_monetary_format",
	FieldGeoID:                    "geo_id",
	FieldReadingLayout:            "reading_layout",
	FieldNegativePercentFormat:    "negative_percent_format",
	FieldPositivePercentFormat:    "positive_percent_format",
	FieldAnsiCodePage:             "ansi_code_page",
	FieldCalendarType:             "calendar_type",
	FieldFirstDayOfWeek:           "first_day_of_week",
	FieldFirstWeekOfYear:          "first_week_of_year",
	FieldNegativeNumberFormat:     "negative_number_format",
	FieldMacCodePage:              "mac_code_page",
	FieldEbcdicCodePage:           "ebcdic_code_page",
	FieldDigitSubstitution:        "digit_substitution",
}

// ParseField maps a field name as used in locale tables to its code.
func ParseField(name string) (Field, bool) {
	for field, candidate := range fieldNames {
		if candidate == name {
			return field, true
		}
	}
	return 0, false
}

// CalendarField is a host calendar field code (Win32 CALTYPE values).
type CalendarField uint32

const (
	CalendarNoUserOverride   CalendarField = 0x80000000
	CalendarReturnGenitive   CalendarField = 0x10000000
	CalendarIntValue         CalendarField = 0x00000001
	CalendarNativeName       CalendarField = 0x00000002
	CalendarEraName          CalendarField = 0x00000004
	CalendarShortDate        CalendarField = 0x00000005
	CalendarLongDate         CalendarField = 0x00000006
	CalendarDayName1         CalendarField = 0x00000007
	CalendarAbbrevDayName1   CalendarField = 0x0000000E
	CalendarMonthName1       CalendarField = 0x00000015
	CalendarAbbrevMonthName1 CalendarField = 0x00000022
	CalendarYearMonth        CalendarField = 0x0000002F
	CalendarTwoDigitYearMax  CalendarField = 0x00000030
	CalendarShortestDayName1 CalendarField = 0x00000031
	CalendarMonthDay         CalendarField = 0x00000038
	CalendarAbbrevEraName    CalendarField = 0x00000039
	calendarModifierMask                   = CalendarNoUserOverride | CalendarReturnGenitive
)

// Base strips modifier bits.
func (f CalendarField) Base() CalendarField {
	return f &^ calendarModifierMask
}

// Genitive reports whether genitive month names were requested.
func (f CalendarField) Genitive() bool {
	return f&CalendarReturnGenitive != 0
}

// NoUserOverride reports whether the no-user-override modifier is set.
func (f CalendarField) NoUserOverride() bool {
	return f&CalendarNoUserOverride != 0
}
