package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func ansiFormatter() *ColouredFormatter {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI)
	return NewColouredFormatter(r)
}

func TestPlainFormatter(t *testing.T) {
	f := PlainFormatter{}
	if got := f.Name("sys-apps/foo-1.0::gentoo"); got != "sys-apps/foo-1.0::gentoo" {
		t.Errorf("Name = %q", got)
	}
	if got := f.Date(time.Unix(1209315600, 0)); got != "2008-04-27 17:00:00 UTC" {
		t.Errorf("Date = %q", got)
	}
	if got := f.Duration("5 seconds"); got != "5 seconds" {
		t.Errorf("Duration = %q", got)
	}
}

func TestColouredFormatter_Name(t *testing.T) {
	f := ansiFormatter()

	got := f.Name("sys-apps/foo-1.0::gentoo")
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("Name = %q, want ANSI escape", got)
	}
	if !strings.Contains(got, "sys-apps/foo") || !strings.HasSuffix(got, "-1.0::gentoo") {
		t.Fatalf("Name = %q, want styled name followed by plain suffix", got)
	}
}

func TestColouredFormatter_UnparsableNameIsRaw(t *testing.T) {
	f := ansiFormatter()
	if got := f.Name("foo-1.0::main"); got != "foo-1.0::main" {
		t.Fatalf("Name = %q, want raw identifier", got)
	}
}

func TestColouredFormatter_DateAndDuration(t *testing.T) {
	f := ansiFormatter()
	date := f.Date(time.Unix(0, 0))
	if !strings.Contains(date, "1970-01-01 00:00:00 UTC") || !strings.Contains(date, "\x1b[") {
		t.Errorf("Date = %q", date)
	}
	dur := f.Duration("1 minute")
	if !strings.Contains(dur, "1 minute") || !strings.Contains(dur, "\x1b[") {
		t.Errorf("Duration = %q", dur)
	}
}

func TestNewFormatter_NoColour(t *testing.T) {
	if _, ok := NewFormatter(&bytes.Buffer{}, false).(PlainFormatter); !ok {
		t.Fatal("NewFormatter(colour=false) did not return PlainFormatter")
	}
	if _, ok := NewFormatter(&bytes.Buffer{}, true).(*ColouredFormatter); !ok {
		t.Fatal("NewFormatter(colour=true) did not return *ColouredFormatter")
	}
}
