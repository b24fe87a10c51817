package svgdoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrLength is returned by ParseLength for a value with no leading number.
var ErrLength = errors.New("invalid length")

// ParseLength reads the longest numeric prefix of value, such as
// 2.5 in "2.5px", and returns the rest, trimmed, as units.
func ParseLength(value string) (float64, string, error) {
	s := strings.TrimSpace(value)
	end := numericPrefix(s)
	if end == 0 {
		return 0, "", fmt.Errorf("%w: %q is not a number", ErrLength, value)
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %s", ErrLength, err)
	}
	return v, strings.TrimSpace(s[end:]), nil
}

// numericPrefix returns the length of the longest prefix of s
// which is a decimal number, or 0.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for ; i < len(s) && isDigit(s[i]); i++ {
		}
		if i > start {
			end = i
		}
	}
	return end
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
