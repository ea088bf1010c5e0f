package shared

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

var decimalIDPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)

// ParseID coerces a path parameter to an int64 identifier.
// Surrounding whitespace is ignored. Only base-10 digits are accepted and
// leading zeros are insignificant, so "010" is 10 and "0x2a" is an error.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty id")
	}
	if !decimalIDPattern.MatchString(raw) {
		return 0, fmt.Errorf("invalid id %q: not a base-10 integer", raw)
	}

	id, err := cast.ToInt64E(trimLeadingZeros(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return id, nil
}

// trimLeadingZeros keeps cast from reading a leading 0 as an octal prefix.
func trimLeadingZeros(s string) string {
	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return sign + s
}
