// Package atom parses the package identifiers Paludis writes to its log.
package atom

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalid is returned when an identifier cannot be parsed.
var ErrInvalid = errors.New("invalid package identifier")

// versionRe matches a Gentoo version suffix, including the leading dash.
var versionRe = regexp.MustCompile(`-((?:\d+(?:\.\d+)*[a-z]?|scm)(?:_(?:alpha|beta|pre|rc|p)\d*)*(?:-r\d+)?)$`)

// Atom is a fully qualified package identifier.
type Atom struct {
	Category   string
	Package    string
	Version    string
	Slot       string
	Repository string
}

// Name returns the qualified package name without version.
func (a Atom) Name() string {
	return a.Category + "/" + a.Package
}

// Suffix returns everything after the name: -version, :slot and ::repository.
func (a Atom) Suffix() string {
	var b strings.Builder
	b.WriteString("-" + a.Version)
	if a.Slot != "" {
		b.WriteString(":" + a.Slot)
	}
	b.WriteString("::" + a.Repository)
	return b.String()
}

// String returns the identifier in log form.
func (a Atom) String() string {
	return a.Name() + a.Suffix()
}

// Parse splits an identifier of the form category/package-version[:slot]::repository.
func Parse(ident string) (Atom, error) {
	ident = strings.TrimSpace(ident)
	i := strings.LastIndex(ident, "::")
	if i < 0 || i+2 == len(ident) {
		return Atom{}, fmt.Errorf("%w %q: missing repository", ErrInvalid, ident)
	}
	a := Atom{Repository: ident[i+2:]}
	rest := ident[:i]

	if j := strings.LastIndexByte(rest, ':'); j >= 0 {
		a.Slot = rest[j+1:]
		rest = rest[:j]
		if a.Slot == "" {
			return Atom{}, fmt.Errorf("%w %q: empty slot", ErrInvalid, ident)
		}
	}

	loc := versionRe.FindStringSubmatchIndex(rest)
	if loc == nil {
		return Atom{}, fmt.Errorf("%w %q: missing version", ErrInvalid, ident)
	}
	a.Version = rest[loc[2]:loc[3]]
	name := rest[:loc[0]]

	category, pkg, ok := strings.Cut(name, "/")
	if !ok || category == "" || pkg == "" || strings.Contains(pkg, "/") {
		return Atom{}, fmt.Errorf("%w %q: want category/package", ErrInvalid, ident)
	}
	a.Category = category
	a.Package = pkg
	return a, nil
}
