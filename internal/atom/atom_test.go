package atom

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		ident string
		want  Atom
	}{
		{
			ident: "sys-apps/paludis-0.26.0_alpha12::paludis-overlay",
			want:  Atom{Category: "sys-apps", Package: "paludis", Version: "0.26.0_alpha12", Repository: "paludis-overlay"},
		},
		{
			ident: "dev-libs/libxml2-2.6.31-r1::gentoo",
			want:  Atom{Category: "dev-libs", Package: "libxml2", Version: "2.6.31-r1", Repository: "gentoo"},
		},
		{
			ident: "x11-libs/gtk+-2.12.9:2::gentoo",
			want:  Atom{Category: "x11-libs", Package: "gtk+", Version: "2.12.9", Slot: "2", Repository: "gentoo"},
		},
		{
			ident: "app-misc/foo-bar-1.0b_pre2_p3::installed",
			want:  Atom{Category: "app-misc", Package: "foo-bar", Version: "1.0b_pre2_p3", Repository: "installed"},
		},
		{
			ident: "dev-vcs/git-scm::local",
			want:  Atom{Category: "dev-vcs", Package: "git", Version: "scm", Repository: "local"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			got, err := Parse(tt.ident)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.ident, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.ident, got, tt.want)
			}
			if got.String() != tt.ident {
				t.Fatalf("String() = %q, want %q", got.String(), tt.ident)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, ident := range []string{
		"",
		"foo-1.0",
		"foo-1.0::main",
		"sys-apps/foo::main",
		"sys-apps/foo-1.0::",
		"/foo-1.0::main",
		"sys-apps/foo-1.0:::main",
	} {
		t.Run(ident, func(t *testing.T) {
			if _, err := Parse(ident); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalid", ident, err)
			}
		})
	}
}
