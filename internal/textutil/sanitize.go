package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// EscapeName converts a specification name into a filesystem-safe path
// segment. Letters and digits in any script pass through, as do underscores
// and hyphens; every other rune becomes an underscore. Leading and trailing
// whitespace is trimmed before escaping. An error is returned when nothing
// usable survives.
func EscapeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	var b strings.Builder
	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		case r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	escaped := strings.TrimSpace(b.String())
	if escaped == "" {
		return "", fmt.Errorf("name %q escapes to nothing usable", name)
	}
	return escaped, nil
}
