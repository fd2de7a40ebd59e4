package report

import (
	"strconv"
	"strings"
)

// FormatDuration renders seconds as "1 hour, 2 minutes, 3 seconds", leaving
// out zero clauses. Zero renders as "0 seconds". Negative values keep their
// sign in front of the formatted magnitude.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		return "-" + FormatDuration(-seconds)
	}

	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60

	parts := make([]string, 0, 3)
	parts = appendUnit(parts, h, "hour")
	parts = appendUnit(parts, m, "minute")
	parts = appendUnit(parts, s, "second")
	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.Join(parts, ", ")
}

func appendUnit(parts []string, n int64, unit string) []string {
	switch n {
	case 0:
		return parts
	case 1:
		return append(parts, "1 "+unit)
	default:
		return append(parts, strconv.FormatInt(n, 10)+" "+unit+"s")
	}
}
