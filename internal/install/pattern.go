package install

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	anyRepository       = `\S+`
	installedRepository = "installed"
)

// finishRe matches any "finished" line. Both "finished install of ..." and
// "finished starting install of ..." close a transaction.
var finishRe = regexp.MustCompile(`^(?P<ts>\d+): finished(?: starting)?(?P<body> .*)$`)

// Pattern recognizes a complete install transaction: a starting line, an
// optional clean block for the replaced package, and the finished line that
// repeats the starting line's text.
type Pattern struct {
	start *regexp.Regexp
	clean *regexp.Regexp

	startTS, startBody, startName int
	cleanBody                     int
}

// Match is one transaction found by Pattern.MatchFrom.
type Match struct {
	Event Event
	Begin int // offset of the starting line
	End   int // offset just past the finished line
}

// Build compiles the extraction pattern for spec. In literal mode every term
// and repository name is escaped. An invalid regex in regex mode is returned
// as an error.
func Build(spec FilterSpec) (*Pattern, error) {
	terms := make([]string, 0, len(spec.Terms))
	for _, term := range spec.Terms {
		if !spec.UseRegex {
			term = regexp.QuoteMeta(term)
		}
		terms = append(terms, term)
	}
	filter := strings.Join(terms, "|")

	repos := anyRepository
	if r := strings.TrimSpace(spec.Repository); r != "" {
		names := strings.Split(r, ",")
		for i, name := range names {
			name = strings.TrimSpace(name)
			if !spec.UseRegex {
				name = regexp.QuoteMeta(name)
			}
			names[i] = name
		}
		repos = strings.Join(names, "|")
	}

	start, err := regexp.Compile(`(?m)^(?P<ts>\d+): starting(?P<body> install of package (?P<name>` +
		ident(filter, repos) + `) \(\d+ of \d+\))$`)
	if err != nil {
		return nil, fmt.Errorf("compile install pattern: %w", err)
	}
	clean, err := regexp.Compile(`^\d+: starting(?P<body> clean of package ` +
		ident(filter, installedRepository) + ` \(\d+ of \d+\))$`)
	if err != nil {
		return nil, fmt.Errorf("compile clean pattern: %w", err)
	}

	return &Pattern{
		start:     start,
		clean:     clean,
		startTS:   start.SubexpIndex("ts"),
		startBody: start.SubexpIndex("body"),
		startName: start.SubexpIndex("name"),
		cleanBody: clean.SubexpIndex("body"),
	}, nil
}

func ident(filter, repos string) string {
	return `\S*(?:` + filter + `)\S*::(?:` + repos + `)`
}

// MatchFrom finds the first complete transaction whose starting line begins
// at or after pos, which must be the start of a line. Starting lines that are
// not followed by their finished line are skipped.
func (p *Pattern) MatchFrom(text string, pos int) (Match, bool) {
	for pos < len(text) {
		loc := p.start.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			return Match{}, false
		}
		group := func(i int) string {
			return text[pos+loc[2*i] : pos+loc[2*i+1]]
		}
		begin := pos + loc[0]
		lineEnd := pos + loc[1]
		if lineEnd >= len(text) {
			// The starting line is the last line; nothing can finish it.
			return Match{}, false
		}
		next := lineEnd + 1

		start, err := strconv.ParseInt(group(p.startTS), 10, 64)
		if err == nil {
			if finish, end, ok := p.complete(text, next, group(p.startBody)); ok {
				return Match{
					Event: Event{Name: group(p.startName), Start: start, Finish: finish},
					Begin: begin,
					End:   end,
				}, true
			}
		}
		pos = next
	}
	return Match{}, false
}

// complete checks the lines following a starting line whose text is body and
// returns the finish timestamp and the offset past the transaction.
func (p *Pattern) complete(text string, pos int, body string) (int64, int, bool) {
	line, after, ok := nextLine(text, pos)
	if !ok {
		return 0, 0, false
	}
	if finish, ok := finished(line, body); ok {
		return finish, after, true
	}

	m := p.clean.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	line, after, ok = nextLine(text, after)
	if !ok {
		return 0, 0, false
	}
	if _, ok := finished(line, m[p.cleanBody]); !ok {
		return 0, 0, false
	}
	line, after, ok = nextLine(text, after)
	if !ok {
		return 0, 0, false
	}
	finish, ok := finished(line, body)
	if !ok {
		return 0, 0, false
	}
	return finish, after, true
}

// finished reports whether line closes the transaction whose starting text
// was body, returning its timestamp.
func finished(line, body string) (int64, bool) {
	m := finishRe.FindStringSubmatch(line)
	if m == nil || m[2] != body {
		return 0, false
	}
	ts, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}

// nextLine returns the line starting at pos without its newline, and the
// offset of the line after it.
func nextLine(text string, pos int) (string, int, bool) {
	if pos >= len(text) {
		return "", len(text), false
	}
	if i := strings.IndexByte(text[pos:], '\n'); i >= 0 {
		return text[pos : pos+i], pos + i + 1, true
	}
	return text[pos:], len(text), true
}
