package culture

import "fmt"

// LocaleID is a numeric locale identifier (LCID layout: primary language in
// the low 10 bits, sub-language in the next 6, sort id above).
type LocaleID uint32

const (
	Invariant     LocaleID = 0x007F
	UserDefault   LocaleID = 0x0400
	SystemDefault LocaleID = 0x0800

	CustomDefault     LocaleID = 0x0C00
	CustomUnspecified LocaleID = 0x1000
	CustomUIDefault   LocaleID = 0x1400

	EnglishUS     LocaleID = 0x0409
	PersianIran   LocaleID = 0x0429
	ChineseTaiwan LocaleID = 0x0404
)

// customLocaleIDs is the reserved custom/supplemental set. Ids in it are
// never classified as neutral.
var customLocaleIDs = map[LocaleID]struct{}{
	CustomDefault:     {},
	CustomUnspecified: {},
	CustomUIDefault:   {},
	0x2000:            {},
	0x2400:            {},
	0x2800:            {},
	0x2C00:            {},
}

// IsCustom reports whether id falls in the custom/supplemental reserved range.
func (id LocaleID) IsCustom() bool {
	_, ok := customLocaleIDs[id]
	return ok
}

// IsSentinel reports whether id is an alias that must be substituted before
// it can be used as a cache key.
func (id LocaleID) IsSentinel() bool {
	return id == UserDefault || id == SystemDefault
}

func (id LocaleID) String() string {
	return fmt.Sprintf("0x%04X", uint32(id))
}

// CalendarID identifies a calendar system using the host numbering.
type CalendarID uint16

const (
	Gregorian            CalendarID = 1
	GregorianUS          CalendarID = 2
	Japan                CalendarID = 3
	Taiwan               CalendarID = 4
	Korea                CalendarID = 5
	Hijri                CalendarID = 6
	Thai                 CalendarID = 7
	Hebrew               CalendarID = 8
	GregorianMEFrench    CalendarID = 9
	GregorianArabic      CalendarID = 10
	GregorianXlitEnglish CalendarID = 11
	GregorianXlitFrench  CalendarID = 12
	Julian               CalendarID = 13
	JapaneseLunisolar    CalendarID = 14
	ChineseLunisolar     CalendarID = 15
	Saka                 CalendarID = 16
	LunarEtoChinese      CalendarID = 17
	LunarEtoKorean       CalendarID = 18
	LunarEtoRokuyou      CalendarID = 19
	KoreanLunisolar      CalendarID = 20
	TaiwanLunisolar      CalendarID = 21
	Persian              CalendarID = 22
	UmAlQura             CalendarID = 23

	lastCalendar = UmAlQura
)

var calendarNames = map[CalendarID]string{
	Gregorian:            "gregorian",
	GregorianUS:          "gregorian_us",
	Japan:                "japan",
	Taiwan:               "taiwan",
	Korea:                "korea",
	Hijri:                "hijri",
	Thai:                 "thai",
	Hebrew:               "hebrew",
	GregorianMEFrench:    "gregorian_me_french",
	GregorianArabic:      "gregorian_arabic",
	GregorianXlitEnglish: "gregorian_xlit_english",
	GregorianXlitFrench:  "gregorian_xlit_french",
	Julian:               "julian",
	JapaneseLunisolar:    "japanese_lunisolar",
	ChineseLunisolar:     "chinese_lunisolar",
	Saka:                 "saka",
	LunarEtoChinese:      "lunar_eto_chn",
	LunarEtoKorean:       "lunar_eto_kor",
	LunarEtoRokuyou:      "lunar_eto_rokuyou",
	KoreanLunisolar:      "korean_lunisolar",
	TaiwanLunisolar:      "taiwan_lunisolar",
	Persian:              "persian",
	UmAlQura:             "umalqura",
}

// Valid reports whether c is a known calendar id.
func (c CalendarID) Valid() bool {
	return c >= Gregorian && c <= lastCalendar
}

func (c CalendarID) String() string {
	if name, ok := calendarNames[c]; ok {
		return name
	}
	return fmt.Sprintf("calendar(%d)", uint16(c))
}

// ParseCalendarID maps a calendar name as used in locale tables to its id.
func ParseCalendarID(name string) (CalendarID, bool) {
	for id, candidate := range calendarNames {
		if candidate == name {
			return id, true
		}
	}
	return 0, false
}

// CultureTypes filters ListCultures.
type CultureTypes uint32

const (
	NeutralCultures        CultureTypes = 0x0001
	SpecificCultures       CultureTypes = 0x0002
	InstalledWin32Cultures CultureTypes = 0x0004
	AllCultures            CultureTypes = NeutralCultures | SpecificCultures | InstalledWin32Cultures
	UserCustomCulture      CultureTypes = 0x0008
	ReplacementCultures    CultureTypes = 0x0010
)
