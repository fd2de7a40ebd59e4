// Package install extracts package install transactions from a Paludis log.
//
// # Log Format
//
// Paludis appends one line per event, prefixed with the epoch timestamp:
//
//	1209315600: starting install of package sys-apps/foo-1.0::gentoo (1 of 2)
//	1209315605: starting clean of package sys-apps/foo-0.9::installed (1 of 1)
//	1209315610: finished clean of package sys-apps/foo-0.9::installed (1 of 1)
//	1209315620: finished install of package sys-apps/foo-1.0::gentoo (1 of 2)
//
// A transaction is a starting line, an optional clean block for the version
// being replaced, and a finished line repeating the starting line's text.
//
// # Matching
//
// Build turns a FilterSpec into a Pattern. The pattern locates starting lines
// with a regular expression and then pairs the finished line by comparing its
// text against the starting line, because RE2 has no back-references.
//
// Scanner drives Pattern.MatchFrom with an explicit cursor, moving past each
// matched transaction so nested clean lines are never reported on their own:
//
//	pattern, err := install.Build(install.FilterSpec{Terms: []string{"foo"}})
//	if err != nil {
//		return err
//	}
//	s := install.NewScanner(text, pattern)
//	for s.Scan() {
//		e := s.Event()
//		fmt.Println(e.Name, e.Duration())
//	}
//
// ProbeLine checks the final log line for an install still in progress.
package install
