// Package app wires the log loader, install scanner, and report together.
//
// Run is the composition root. It picks one of two paths:
//
//  1. Full scan: load the whole log, build the pattern from the filters, feed
//     every matched install to the report aggregator, then let the
//     aggregator print the mean when requested.
//  2. Current: read only the last log line and report the install in
//     progress, optionally through the live view in package ui.
//
// An unreadable log or an invalid filter regex is returned before any report
// output is written. Empty results are not errors.
package app
