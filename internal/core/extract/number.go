package extract

import (
	"strconv"
	"strings"
)

// ParseNumber parses a raw numeric token from filing text: thousands
// separators and currency symbols are stripped, enclosing parentheses negate.
// The second return is false on any non-numeric remainder.
func ParseNumber(token string) (float64, bool) {
	cleaned := strings.TrimSpace(token)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.TrimSpace(cleaned)

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") && len(cleaned) > 2 {
		negative = true
		cleaned = strings.TrimSpace(cleaned[1 : len(cleaned)-1])
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		value = -value
	}
	return value, true
}
