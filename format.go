package gridin

import "strconv"

// Kind selects how cell values are validated and formatted.
type Kind uint8

const (
	// KindInt truncates entries toward zero and stores them as decimal integers.
	KindInt Kind = iota
	// KindFloat stores entries in their shortest round-trip decimal form.
	KindFloat
	// KindSymbol stores entries verbatim; a cell holds exactly one character.
	KindSymbol
)

// FormatValue normalizes raw entry text into its canonical cell form.
// Integers lose leading zeros and any fractional part ("3.7" -> "3");
// floats lose trailing fractional zeros and a bare decimal point
// ("3.500" -> "3.5", "4.0" -> "4"); symbols pass through untouched.
// Text that fails to parse is returned unchanged; callers validate before
// formatting, so that path only guards against misuse.
func FormatValue(raw string, kind Kind) string {
	switch kind {
	case KindSymbol:
		return raw
	case KindInt:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return raw
		}
		return strconv.FormatInt(int64(f), 10)
	default:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return raw
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
