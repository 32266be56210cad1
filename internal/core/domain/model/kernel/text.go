package kernel

import (
	"fmt"
	"unicode/utf8"

	"orderdesk/internal/pkg/errs"
)

// Widths of the VARCHAR columns text fields are stored in.
const (
	MaxNameLength = 255
	MaxUnitLength = 32
)

// CheckLength rejects values longer than maxChars characters.
func CheckLength(paramName, value string, maxChars int) error {
	if n := utf8.RuneCountInString(value); n > maxChars {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%d characters, at most %d allowed", n, maxChars),
		)
	}
	return nil
}
