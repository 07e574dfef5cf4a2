package culture

import (
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// calendarPriority is tried in order when the host lists no calendar for a
// locale.
var calendarPriority = []CalendarID{
	Gregorian, GregorianUS, Japan, Taiwan, Korea, Hijri, Thai, Hebrew,
	GregorianMEFrench, GregorianArabic, GregorianXlitEnglish, GregorianXlitFrench,
	Persian, UmAlQura,
}

// cultureBuilder populates CultureRecords from a provider.
type cultureBuilder struct {
	provider  LocaleProvider
	gateway   *EnumerationGateway
	calendars *CalendarDataCache
	logger    logrus.FieldLogger
}

// fieldReader queries one locale, adding the no-user-override bit to every
// field a user override may not replace.
type fieldReader struct {
	provider    LocaleProvider
	id          LocaleID
	useOverride bool
	logger      logrus.FieldLogger
}

func (q fieldReader) field(f Field) Field {
	if q.useOverride && IsOverridable(f) {
		return f
	}
	return f | FieldNoUserOverride
}

func (q fieldReader) str(f Field) string {
	v, ok := q.provider.StringField(q.id, q.field(f))
	if !ok {
		q.unavailable(f)
		return ""
	}
	return v
}

func (q fieldReader) strOr(f Field, fallback string) string {
	if v := q.str(f); v != "" {
		return v
	}
	return fallback
}

func (q fieldReader) num(f Field, fallback int) int {
	v, ok := q.provider.NumberField(q.id, q.field(f))
	if !ok {
		q.unavailable(f)
		return fallback
	}
	return int(v)
}

func (q fieldReader) unavailable(f Field) {
	q.logger.WithFields(logrus.Fields{
		"locale": q.id,
		"field":  f,
	}).WithError(errFieldUnavailable).Debug("culture: using default field value")
}

func (b *cultureBuilder) build(id LocaleID, neutral, honorUserOverride bool) *CultureRecord {
	if id == Invariant {
		return invariantCulture
	}

	useOverride := honorUserOverride && id == b.provider.UserDefaultID()
	q := fieldReader{provider: b.provider, id: id, useOverride: useOverride, logger: b.logger}

	record := &CultureRecord{
		id:              id,
		name:            b.provider.IDToName(id),
		neutral:         neutral,
		custom:          id.IsCustom(),
		useUserOverride: useOverride,
		calendars:       b.calendars,
	}
	record.languageID = q.num(FieldLanguageID, int(id))

	record.numbers = b.numbers(q)

	record.firstDayOfWeek = 0
	if v, ok := b.provider.NumberField(id, q.field(FieldFirstDayOfWeek)); ok {
		record.firstDayOfWeek = firstDayOfWeek(v)
	}
	record.calendarWeekRule = q.num(FieldFirstWeekOfYear, 0)
	record.measurementSystem = q.num(FieldMeasurementSystem, 0)
	record.listSeparator = q.strOr(FieldListSeparator, invariantCulture.listSeparator)
	record.amDesignator = q.str(FieldAMDesignator)
	record.pmDesignator = q.str(FieldPMDesignator)
	record.readingLayout = q.num(FieldReadingLayout, 0)

	record.longTimes = b.longTimes(q)
	record.shortTimes = b.shortTimes(q, record.longTimes)
	record.timeSeparator = TimeSeparator(b.userLongTime(q, record.longTimes[0]))

	record.calendarIDs = b.calendarIDs(id)
	record.names = b.names(record, q)

	return record
}

func (b *cultureBuilder) numbers(q fieldReader) NumberData {
	inv := invariantCulture.numbers

	n := NumberData{
		PositiveSign:           q.strOr(FieldPositiveSign, "+"),
		NegativeSign:           q.strOr(FieldNegativeSign, inv.NegativeSign),
		DecimalSeparator:       q.strOr(FieldDecimalSeparator, inv.DecimalSeparator),
		GroupSeparator:         q.str(FieldThousandSeparator),
		GroupSizes:             DecodeGrouping(q.str(FieldDigitGrouping)),
		DecimalDigits:          q.num(FieldFractionalDigits, inv.DecimalDigits),
		NegativeNumberFormat:   q.num(FieldNegativeNumberFormat, inv.NegativeNumberFormat),
		NaNSymbol:              q.strOr(FieldNaNSymbol, inv.NaNSymbol),
		PositiveInfinitySymbol: q.strOr(FieldPositiveInfinitySymbol, inv.PositiveInfinitySymbol),
		NegativeInfinitySymbol: q.strOr(FieldNegativeInfinitySymbol, inv.NegativeInfinitySymbol),

		PercentSymbol:         q.strOr(FieldPercentSymbol, inv.PercentSymbol),
		PerMilleSymbol:        q.strOr(FieldPerMilleSymbol, inv.PerMilleSymbol),
		PositivePercentFormat: q.num(FieldPositivePercentFormat, inv.PositivePercentFormat),
		NegativePercentFormat: q.num(FieldNegativePercentFormat, inv.NegativePercentFormat),

		CurrencySymbol:         q.str(FieldMonetarySymbol),
		ISOCurrencySymbol:      q.str(FieldIso4217MonetarySymbol),
		CurrencyDecimalDigits:  q.num(FieldMonetaryFractionalDigits, inv.CurrencyDecimalDigits),
		PositiveCurrencyFormat: q.num(FieldPositiveMonetaryFormat, inv.PositiveCurrencyFormat),
		NegativeCurrencyFormat: q.num(FieldNegativeMonetaryFormat, inv.NegativeCurrencyFormat),
		CurrencyGroupSizes:     DecodeGrouping(q.str(FieldMonetaryGrouping)),

		NativeDigits:      nativeDigits(q.str(FieldNativeDigits)),
		DigitSubstitution: q.num(FieldDigitSubstitution, inv.DigitSubstitution),
	}
	n.CurrencyDecimalSeparator = q.strOr(FieldMonetaryDecimalSeparator, n.DecimalSeparator)
	n.CurrencyGroupSeparator = q.strOr(FieldMonetaryThousandSeparator, n.GroupSeparator)
	return n
}

// nativeDigits splits the host digit string; anything but exactly ten
// characters yields the ASCII digits.
func nativeDigits(s string) []string {
	runes := []rune(s)
	if len(runes) != 10 {
		return cloneStrings(invariantDigits)
	}
	digits := make([]string, len(runes))
	for i, r := range runes {
		digits[i] = string(r)
	}
	return digits
}

func (b *cultureBuilder) longTimes(q fieldReader) []string {
	times := b.timeFormats(q, FieldLongTimeFormat)
	if len(times) == 0 {
		return cloneStrings(invariantLongTimes)
	}
	return times
}

// shortTimes uses the host list when there is one and derives it from the
// long times otherwise.
func (b *cultureBuilder) shortTimes(q fieldReader, longTimes []string) []string {
	if times := b.timeFormats(q, FieldShortTimeFormat); len(times) > 0 {
		return times
	}
	derived := make([]string, len(longTimes))
	for i, t := range longTimes {
		derived[i] = DeriveShortTime(t)
	}
	return dedupe(derived)
}

// userLongTime is the long time format the time separator comes from: the
// user's own format when overrides apply, else fallback.
func (b *cultureBuilder) userLongTime(q fieldReader, fallback string) string {
	if !q.useOverride {
		return fallback
	}
	if v, ok := q.provider.StringField(q.id, FieldLongTimeFormat); ok && v != "" {
		return Reescape(v)
	}
	return fallback
}

// timeFormats enumerates a time format list. The host lists the user's
// format first; without overrides the system format is moved back in front.
func (b *cultureBuilder) timeFormats(q fieldReader, f Field) []string {
	times := b.gateway.Strings(q.id, f)
	if len(times) > 1 && q.field(f).NoUserOverride() {
		if system, ok := q.provider.StringField(q.id, f|FieldNoUserOverride); ok && system != "" && times[0] != system {
			times[0], times[1] = times[1], times[0]
		}
	}
	return ReescapeAll(times)
}

func (b *cultureBuilder) calendarIDs(id LocaleID) []CalendarID {
	seen := make(map[CalendarID]struct{})
	var ids []CalendarID
	for _, cal := range b.gateway.Calendars(id) {
		if !cal.Valid() {
			continue
		}
		if _, ok := seen[cal]; ok {
			continue
		}
		seen[cal] = struct{}{}
		ids = append(ids, cal)
	}
	if len(ids) > 0 {
		return ids
	}

	for _, cal := range calendarPriority {
		if _, ok := b.provider.CalendarString(id, cal, CalendarNativeName); ok {
			return []CalendarID{cal}
		}
	}
	return []CalendarID{Gregorian}
}

func (b *cultureBuilder) names(r *CultureRecord, q fieldReader) cultureNames {
	id := r.id
	n := cultureNames{}

	n.parentID = newLazy(func() LocaleID {
		if parent := b.provider.ParentLocaleID(id); parent != 0 {
			return parent
		}
		return Invariant
	})
	n.specificID = newLazy(func() LocaleID {
		if !r.neutral {
			return id
		}
		return b.likelySpecific(r.name, id)
	})

	n.englishLanguageName = newLazy(func() string { return q.str(FieldEnglishLanguageName) })
	n.nativeLanguageName = newLazy(func() string { return q.str(FieldNativeLanguageName) })
	n.localizedLanguageName = newLazy(func() string {
		return q.strOr(FieldLocalizedLanguageName, n.nativeLanguageName.get())
	})

	n.englishCountryName = newLazy(func() string { return q.str(FieldEnglishCountryName) })
	n.nativeCountryName = newLazy(func() string { return q.str(FieldNativeCountryName) })
	n.localizedCountryName = newLazy(func() string {
		return q.strOr(FieldLocalizedCountryName, n.nativeCountryName.get())
	})

	n.englishDisplayName = newLazy(func() string {
		if r.neutral {
			return n.englishLanguageName.get()
		}
		if v := q.str(FieldEnglishDisplayName); v != "" {
			return v
		}
		return synthesizeDisplayName(n.englishLanguageName.get(), n.englishCountryName.get())
	})
	n.nativeDisplayName = newLazy(func() string {
		if r.neutral {
			return n.nativeLanguageName.get()
		}
		if v := q.str(FieldNativeDisplayName); v != "" {
			return v
		}
		return synthesizeDisplayName(n.nativeLanguageName.get(), n.nativeCountryName.get())
	})
	n.localizedDisplayName = newLazy(func() string {
		if r.custom {
			if r.neutral {
				return n.nativeLanguageName.get()
			}
			return n.nativeDisplayName.get()
		}
		if v := q.str(FieldLocalizedDisplayName); v != "" {
			return v
		}
		if r.neutral {
			return n.localizedLanguageName.get()
		}
		return synthesizeDisplayName(n.localizedLanguageName.get(), n.localizedCountryName.get())
	})

	n.iso639TwoLetter = newLazy(func() string { return q.str(FieldIso639LanguageTwoLetterName) })
	n.iso639ThreeLetter = newLazy(func() string { return q.str(FieldIso639LanguageThreeLetterName) })
	n.windowsLanguage = newLazy(func() string { return q.str(FieldAbbreviatedWindowsLanguage) })
	n.iso3166TwoLetter = newLazy(func() string { return q.str(FieldIso3166CountryName) })
	n.iso3166Three = newLazy(func() string { return q.str(FieldIso3166CountryName2) })

	n.currencyEnglishName = newLazy(func() string { return q.str(FieldCurrencyEnglishName) })
	n.currencyNativeName = newLazy(func() string { return q.str(FieldCurrencyNativeName) })
	n.consoleFallbackName = newLazy(func() string { return q.str(FieldConsoleFallbackName) })

	inv := invariantCulture.names
	n.ansiCodePage = newLazy(func() int { return q.num(FieldAnsiCodePage, inv.ansiCodePage.get()) })
	n.oemCodePage = newLazy(func() int { return q.num(FieldOemCodePage, inv.oemCodePage.get()) })
	n.macCodePage = newLazy(func() int { return q.num(FieldMacCodePage, inv.macCodePage.get()) })
	n.ebcdicCodePage = newLazy(func() int { return q.num(FieldEbcdicCodePage, inv.ebcdicCodePage.get()) })
	n.geoID = newLazy(func() int { return q.num(FieldGeoID, inv.geoID.get()) })

	n.keyboardLayout = newLazy(func() int {
		if r.custom {
			return int(EnglishUS)
		}
		return int(id)
	})
	n.replacement = newLazy(func() bool {
		if r.name == "" {
			return false
		}
		for _, name := range b.gateway.Locales(ReplacementCultures) {
			if strings.EqualFold(name, r.name) {
				return true
			}
		}
		return false
	})

	return n
}

// likelySpecific maps a neutral culture to the specific culture of its most
// likely region, e.g. "de" to "de-DE".
func (b *cultureBuilder) likelySpecific(name string, id LocaleID) LocaleID {
	tag, err := language.Parse(name)
	if err != nil {
		return id
	}
	base, _ := tag.Base()
	region, confidence := tag.Region()
	if confidence == language.No {
		return id
	}
	if specific, ok := b.provider.LocaleNameToID(base.String() + "-" + region.String()); ok {
		return specific
	}
	return id
}

// synthesizeDisplayName joins language and country the way host display
// names read: "English (United States)", or "Azeri (Latin, Azerbaijan)" when
// the language name already carries a parenthetical.
func synthesizeDisplayName(languageName, countryName string) string {
	if countryName == "" {
		return languageName
	}
	if strings.HasSuffix(languageName, ")") {
		return languageName[:len(languageName)-1] + ", " + countryName + ")"
	}
	return languageName + " (" + countryName + ")"
}
