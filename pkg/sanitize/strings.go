package sanitize

import (
	"strings"
)

// RemoveDangerousChars strips ASCII control characters (0x00-0x1F except tab,
// line feed and carriage return, plus DEL) from s.
func RemoveDangerousChars(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		default:
			return r
		}
	}, s)
}

var displayEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EscapeForDisplay HTML-escapes a theme string for rendering as page text.
func EscapeForDisplay(s string) string {
	return displayEscaper.Replace(s)
}

// truncate caps s at limit runes. A non-positive limit disables the cap.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
