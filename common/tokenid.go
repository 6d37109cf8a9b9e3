package common

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeTokenID normalizes and validates an authored token id.
//
// Ids are dot-separated paths like "color.dark.primary". Authors tend to
// paste them with stray whitespace, so that is stripped rather than
// rejected; everything else must be plain id characters.
func NormalizeTokenID(in string) (string, error) {
	s := strings.TrimSpace(in)
	if s == "" {
		return "", fmt.Errorf("token id is empty")
	}

	// Be forgiving about whitespace inside a pasted id.
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") || strings.Contains(s, "..") {
		return "", fmt.Errorf("token id %q has an empty path segment", s)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isDigit := c >= '0' && c <= '9'
		isLower := c >= 'a' && c <= 'z'
		isUpper := c >= 'A' && c <= 'Z'
		if !isDigit && !isLower && !isUpper && c != '.' && c != '-' && c != '_' {
			return "", fmt.Errorf("token id %q contains unsupported character %q", s, c)
		}
	}

	return s, nil
}
