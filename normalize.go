package culture

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// IdentifierNormalizer maps sentinels and names to canonical locale ids and
// rejects identifiers the host does not know.
type IdentifierNormalizer struct {
	provider LocaleProvider
}

// NewIdentifierNormalizer returns a normalizer backed by provider.
func NewIdentifierNormalizer(provider LocaleProvider) *IdentifierNormalizer {
	return &IdentifierNormalizer{provider: provider}
}

// Normalize substitutes sentinels, classifies the result as neutral or
// specific and confirms the host knows it. The invariant id never reaches the
// provider.
func (n *IdentifierNormalizer) Normalize(id LocaleID) (LocaleID, bool, error) {
	if id == Invariant {
		return Invariant, false, nil
	}

	id = n.substitute(id)
	if id == Invariant {
		return Invariant, false, nil
	}

	if n == nil || n.provider == nil {
		return 0, false, &CultureError{Op: "normalize", ID: id, Err: ErrInvalidLocaleIdentifier}
	}
	if _, ok := n.provider.NumberField(id, FieldLanguageID|FieldNoUserOverride); !ok {
		return 0, false, &CultureError{Op: "normalize", ID: id, Err: ErrInvalidLocaleIdentifier}
	}

	return id, IsNeutral(id), nil
}

// NormalizeName maps a locale name to an id. The empty name is the invariant
// locale. Names are tried verbatim first, then in canonical BCP 47 form.
func (n *IdentifierNormalizer) NormalizeName(name string) (LocaleID, error) {
	if name == "" {
		return Invariant, nil
	}
	if err := checkNameLength(name); err != nil {
		return 0, &CultureError{Op: "normalize name", Name: name, Err: err}
	}
	if n == nil || n.provider == nil {
		return 0, &CultureError{Op: "normalize name", Name: name, Err: ErrInvalidLocaleIdentifier}
	}

	if id, ok := n.provider.LocaleNameToID(name); ok {
		return id, nil
	}
	if canonical := canonicalLocaleName(name); canonical != "" && canonical != name {
		if id, ok := n.provider.LocaleNameToID(canonical); ok {
			return id, nil
		}
	}

	return 0, &CultureError{Op: "normalize name", Name: name, Err: ErrInvalidLocaleIdentifier}
}

func (n *IdentifierNormalizer) substitute(id LocaleID) LocaleID {
	if n == nil || n.provider == nil {
		return id
	}
	switch id {
	case UserDefault:
		return n.provider.UserDefaultID()
	case SystemDefault:
		return n.provider.SystemDefaultID()
	}
	return id
}

// IsNeutral reports whether id names a language without a region. Custom
// ids are never neutral.
func IsNeutral(id LocaleID) bool {
	if id.IsCustom() {
		return false
	}
	return id&0xFF00 == 0
}

// checkNameLength applies the host name limit: at most 255 characters, and a
// name of exactly 255 characters must end in ".".
func checkNameLength(name string) error {
	count := utf8.RuneCountInString(name)
	switch {
	case count > maxLocaleNameLength:
		return ErrNameTooLong
	case count == maxLocaleNameLength && !strings.HasSuffix(name, "."):
		return ErrNameTooLong
	}
	return nil
}

func canonicalLocaleName(name string) string {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	if err != nil {
		return ""
	}
	return tag.String()
}
