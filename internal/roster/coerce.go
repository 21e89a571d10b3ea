package roster

import (
	"strconv"
	"strings"
	"time"
)

// Int parses value as a base-10 integer; blank or invalid input yields 0.
func Int(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

// Bool treats any non-zero integer as true.
func Bool(value string) bool {
	return Int(value) != 0
}

// Date converts a D/M/YYYY date to YYYY-MM-DD. When value does not parse it
// is returned unchanged with ok false.
func Date(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	parsed, err := time.Parse("2/1/2006", trimmed)
	if err != nil {
		return trimmed, false
	}
	return parsed.Format(time.DateOnly), true
}
