package profile

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/lixenwraith/nyancat/sprite"
)

// TestKnownProfilesTotal verifies every known identifier yields a complete table
func TestKnownProfilesTotal(t *testing.T) {
	for _, name := range Known() {
		p := Resolve(name, 40)
		for _, c := range sprite.All() {
			if p.Escapes[c] == "" {
				t.Errorf("%s (%v): no escape for code %v", name, p.Class, c)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		term string
		cols int
		want Class
	}{
		{"xterm-256color", 80, ClassXterm256},
		{"XTERM", 80, ClassXterm256},
		{"linux", 80, ClassLinux},
		{"vtnt", 80, ClassCP437},
		{"cygwin", 80, ClassCP437},
		{"vt220", 80, ClassVT220},
		{"fallback", 80, ClassFallback},
		{"rxvt-256color", 80, ClassXterm256},
		{"rxvt-unicode", 80, ClassLinux},
		{"vt100", 40, ClassVT100},
		{"vt100", 80, ClassANSI},
		{"st-256color", 80, ClassXterm256},
		{"screen", 80, ClassANSI},
		{"", 80, ClassANSI},
		{"xyz123", 80, ClassANSI},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			p := Resolve(tt.term, tt.cols)
			if p.Class != tt.want {
				t.Errorf("Resolve(%q, %d) = %v, want %v", tt.term, tt.cols, p.Class, tt.want)
			}
		})
	}
}

// TestResolveOrder verifies specific identifiers are not shadowed by generic ones
func TestResolveOrder(t *testing.T) {
	// rxvt-256color contains rxvt; the 256-color entry must win
	if got := Classify("rxvt-256color", 80); got != ClassXterm256 {
		t.Errorf("rxvt-256color classified as %v", got)
	}
	// xterm is matched before the st prefix would apply to nothing else
	if got := Classify("stterm-xterm", 80); got != ClassXterm256 {
		t.Errorf("stterm-xterm classified as %v", got)
	}
}

// TestUnknownIsDefault verifies unknown terminals fall back to coalescing ANSI
func TestUnknownIsDefault(t *testing.T) {
	p := Resolve("xyz123", 132)
	if p.Class != ClassANSI {
		t.Errorf("Expected ClassANSI, got %v", p.Class)
	}
	if p.ForceEscape {
		t.Error("Default profile must not force escapes")
	}
	if p.FixedWidth != 0 {
		t.Errorf("Default profile must not fix the width, got %d", p.FixedWidth)
	}
}

func TestEscapeTables(t *testing.T) {
	xterm := ForClass(ClassXterm256)
	if got := xterm.Escape(sprite.Background); got != "\x1b[48;5;17m" {
		t.Errorf("xterm background = %q", got)
	}
	if got := xterm.Escape(sprite.Red); got != "\x1b[48;5;196m" {
		t.Errorf("xterm red = %q", got)
	}

	basic := ForClass(ClassANSI)
	tests := []struct {
		code sprite.Code
		want string
	}{
		{sprite.Background, "\x1b[104m"},
		{sprite.White, "\x1b[107m"},
		{sprite.Black, "\x1b[40m"},
		{sprite.Crust, "\x1b[47m"},
		{sprite.Orange, "\x1b[43m"},
		{sprite.Violet, "\x1b[44m"},
		{sprite.Gray, "\x1b[100m"},
	}
	for _, tt := range tests {
		if got := basic.Escape(tt.code); got != tt.want {
			t.Errorf("ansi %v = %q, want %q", tt.code, got, tt.want)
		}
	}

	// None is not part of any table and falls back to background
	if got := basic.Escape(sprite.None); got != basic.Escape(sprite.Background) {
		t.Errorf("Escape(None) = %q, want background", got)
	}
}

func TestCellWidth(t *testing.T) {
	for _, c := range Classes() {
		p := ForClass(c)
		want := 2
		if c == ClassVT100 {
			want = 1
		}
		if p.CellWidth != want {
			t.Errorf("%v: CellWidth = %d, want %d", c, p.CellWidth, want)
		}
	}
}

func TestGlyphs(t *testing.T) {
	if got := ForClass(ClassCP437).Glyph; got != "\xdb\xdb" {
		t.Errorf("CP437 glyph = % x, want db db", got)
	}
	if got := ForClass(ClassFallback).Glyph; got != "██" {
		t.Errorf("Fallback glyph = %q", got)
	}

	// Text-only profiles carry no escape sequences at all
	for _, c := range []Class{ClassVT220, ClassVT100} {
		p := ForClass(c)
		if !p.ForceEscape {
			t.Errorf("%v must force escapes", c)
		}
		for _, code := range sprite.All() {
			u := p.Unit(code)
			if ansi.Strip(u) != u || strings.ContainsRune(u, '\x1b') {
				t.Errorf("%v: unit %q contains escapes", c, u)
			}
		}
	}

	if got := ForClass(ClassVT100).FixedWidth; got != 40 {
		t.Errorf("VT100 FixedWidth = %d, want 40", got)
	}
}

func TestClassString(t *testing.T) {
	if ClassXterm256.String() != "xterm-256" {
		t.Errorf("Unexpected name %q", ClassXterm256.String())
	}
	if Class(99).String() != "unknown" {
		t.Errorf("Unexpected name %q", Class(99).String())
	}
	if ForClass(Class(99)).Class != ClassANSI {
		t.Error("Out-of-range class should map to ANSI")
	}
}
