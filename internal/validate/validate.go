package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reID     = regexp.MustCompile(`^[A-Za-z0-9_:.x-]{1,200}$`)
	reOption = regexp.MustCompile(`^[A-Za-z0-9_-]{1,40}$`)
)

// Qty parses a quantity form value, clamping to [1,50].
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	} // clamp to avoid abuse
	return n
}

// ID validates a resource identifier (product ids, saved-cart ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// ItemID validates a cart-line identity key. Keys embed option values,
// so the charset is looser than ID; only length is enforced.
func ItemID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= 500
}

// Dimension parses a width or height in inches. Made-to-order coverings
// run 6 to 200 inches; zero means "not dimensioned".
func Dimension(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 6 || v > 200 {
		return 0, false
	}
	return v, true
}

// OptionName validates a single option-bag key. Values are free-form
// but length-capped.
func OptionName(s string) bool { return reOption.MatchString(s) }

// OptionValue caps option values; returns the trimmed value.
func OptionValue(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= 60
}

// Name validates a displayable snapshot name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 60 {
		return "", false
	}
	return s, true
}

// Notes caps free-form snapshot notes.
func Notes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 500 {
		s = s[:500]
	}
	return s
}
