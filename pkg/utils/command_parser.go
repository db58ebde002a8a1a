package utils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts accepted in commands
const (
	DATE_LAYOUT     = "2006/01/02"
	DATE_LAYOUT_ALT = "2006-01-02"
)

// SplitCommand splits a command message on single spaces. Consecutive
// spaces produce empty tokens, matching the wire format users actually type.
func SplitCommand(text string) []string {
	return strings.Split(text, " ")
}

// ParseDate parses a calendar date token into midnight UTC. Both the
// reserve and cancel paths go through here so stored and queried dates
// always compare equal for the same day.
func ParseDate(token string) (time.Time, error) {
	for _, layout := range []string{DATE_LAYOUT, DATE_LAYOUT_ALT} {
		if t, err := time.ParseInLocation(layout, token, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", token)
}

// FormatDate renders a stored date back into the reply locale's layout
func FormatDate(t time.Time) string {
	return t.UTC().Format(DATE_LAYOUT)
}
