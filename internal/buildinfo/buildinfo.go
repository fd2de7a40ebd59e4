// Package buildinfo holds version information injected at build time via ldflags.
package buildinfo

// Version is overridden with -ldflags "-X github.com/five82/pint/internal/buildinfo.Version=...".
var Version = "0.10"
