// Package logtail reads the Paludis log from disk.
//
// Load returns the entire file as one string; the scanner works on that
// snapshot and never touches the file again. Tail keeps only the last lines
// in a ring buffer, so the current-install probe does not hold the whole log
// in memory:
//
//	line, err := logtail.LastLine("/var/log/paludis.log")
//	if err != nil {
//		return err
//	}
//
// A missing or unreadable file is an error in both cases.
package logtail
