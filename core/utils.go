package core

import (
	"strings"
	"time"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// FormatDate renders `t` as YYYY-MM-DD, the date format used throughout
// the attendance document.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
