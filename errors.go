package culture

import (
	"errors"
	"fmt"
)

// ErrInvalidLocaleIdentifier indicates the host does not know the requested locale.
var ErrInvalidLocaleIdentifier = errors.New("culture: invalid locale identifier")

// ErrNameTooLong indicates a locale name longer than the host accepts.
var ErrNameTooLong = errors.New("culture: locale name too long")

var (
	errFieldUnavailable    = errors.New("culture: field unavailable")
	errCalendarProbeFailed = errors.New("culture: calendar probe failed")
)

// maxLocaleNameLength is the host limit on locale names, in characters.
const maxLocaleNameLength = 255

// CultureError carries the identifier a resolution failed for.
type CultureError struct {
	Op   string
	ID   LocaleID
	Name string
	Err  error
}

func (e *CultureError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Name != "" {
		return fmt.Sprintf("culture: %s %q: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("culture: %s %s: %v", e.Op, e.ID, e.Err)
}

func (e *CultureError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
