package install

import (
	"regexp"
	"strconv"
	"time"
)

var currentRe = regexp.MustCompile(`^(\d+): starting install of package (\S*) \(\d+ of \d+\)$`)

// Current is an install that has started but not yet finished.
type Current struct {
	Name  string
	Start int64
}

// Elapsed returns the seconds between the install start and now.
func (c Current) Elapsed(now time.Time) int64 {
	return now.Unix() - c.Start
}

// StartTime returns the start timestamp as a UTC time.
func (c Current) StartTime() time.Time {
	return time.Unix(c.Start, 0).UTC()
}

// ProbeLine reports the install in progress when line, the last line of the
// log, is a bare starting line. Filters are not applied.
func ProbeLine(line string) (Current, bool) {
	m := currentRe.FindStringSubmatch(line)
	if m == nil {
		return Current{}, false
	}
	start, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Current{}, false
	}
	return Current{Name: m[2], Start: start}, true
}
