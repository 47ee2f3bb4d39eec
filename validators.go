package gridin

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Validator checks a pending cell entry before it is committed.
// A nil return accepts the value; the error message is shown to the user.
//
// For KindInt and KindFloat a custom validator only ever sees text that
// already parses as a number, since the numeric precondition runs first. For
// KindSymbol a custom validator replaces the single-character check entirely
// and receives the raw text as typed.
type Validator func(value string) error

var (
	errNotNumber = errors.New("enter a valid number")
	errNotSymbol = errors.New("enter a single character")
)

// VNumber rejects text that does not parse as a number.
func VNumber(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errNotNumber
	}
	return nil
}

// VSymbol rejects text that is not exactly one character.
func VSymbol(s string) error {
	if utf8.RuneCountInString(s) != 1 {
		return errNotSymbol
	}
	return nil
}

// VRange rejects numbers outside [min, max].
func VRange(min, max float64) Validator {
	return func(s string) error {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errNotNumber
		}
		if n < min || n > max {
			return fmt.Errorf("value must be between %g and %g", min, max)
		}
		return nil
	}
}
