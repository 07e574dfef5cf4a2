package culture

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CLDRNames decorates a LocaleProvider, answering name fields the wrapped
// provider leaves empty from the CLDR tables bundled with x/text.
type CLDRNames struct {
	LocaleProvider
}

var _ LocaleProvider = (*CLDRNames)(nil)

// NewCLDRNames wraps next.
func NewCLDRNames(next LocaleProvider) *CLDRNames {
	return &CLDRNames{LocaleProvider: next}
}

func (c *CLDRNames) StringField(id LocaleID, field Field) (string, bool) {
	if v, ok := c.LocaleProvider.StringField(id, field); ok && v != "" {
		return v, true
	}

	tag, ok := c.tag(id)
	if !ok {
		return "", false
	}
	v := cldrName(tag, field.Base())
	return v, v != ""
}

func (c *CLDRNames) tag(id LocaleID) (language.Tag, bool) {
	name := c.LocaleProvider.IDToName(id)
	if name == "" {
		return language.Und, false
	}
	tag, err := language.Parse(name)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}

func cldrName(tag language.Tag, field Field) string {
	base, _ := tag.Base()
	region, confidence := tag.Region()
	hasRegion := confidence == language.Exact

	switch field {
	case FieldEnglishLanguageName:
		return display.English.Languages().Name(base)
	case FieldNativeLanguageName:
		return display.Self.Name(language.Make(base.String()))
	case FieldIso639LanguageTwoLetterName:
		if s := base.String(); len(s) == 2 {
			return s
		}
	case FieldIso639LanguageThreeLetterName:
		return base.ISO3()
	case FieldEnglishCountryName:
		if hasRegion {
			return display.English.Regions().Name(region)
		}
	case FieldNativeCountryName:
		if hasRegion {
			return display.Regions(tag).Name(region)
		}
	case FieldIso3166CountryName:
		if hasRegion {
			return region.String()
		}
	case FieldIso3166CountryName2:
		if hasRegion {
			return region.ISO3()
		}
	case FieldIso4217MonetarySymbol:
		if hasRegion {
			if unit, ok := currency.FromRegion(region); ok {
				return unit.String()
			}
		}
	}
	return ""
}
