package install

import "time"

// Event is one completed install transaction found in the log.
type Event struct {
	Name   string // package identifier, e.g. sys-apps/foo-1.0::gentoo
	Start  int64  // epoch seconds of the starting line
	Finish int64  // epoch seconds of the finished line
}

// Duration returns the install time in seconds. It is negative when the log
// timestamps run backwards.
func (e Event) Duration() int64 {
	return e.Finish - e.Start
}

// StartTime returns the start timestamp as a UTC time.
func (e Event) StartTime() time.Time {
	return time.Unix(e.Start, 0).UTC()
}

// FilterSpec narrows which installs are reported.
type FilterSpec struct {
	Terms      []string // substrings (or regex fragments) of the package identifier
	Repository string   // comma-separated repository names; empty matches any
	UseRegex   bool     // treat Terms and Repository as regular expressions
}
