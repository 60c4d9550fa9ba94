package sprite

import (
	"errors"
	"strings"
	"testing"
)

// TestParseCodeRoundTrip verifies every code survives Byte/ParseCode
func TestParseCodeRoundTrip(t *testing.T) {
	for _, c := range All() {
		got, ok := ParseCode(c.Byte())
		if !ok {
			t.Fatalf("ParseCode(%q) not recognized", c.Byte())
		}
		if got != c {
			t.Errorf("ParseCode(%q) = %d, want %d", c.Byte(), got, c)
		}
	}

	if _, ok := ParseCode('x'); ok {
		t.Error("Expected 'x' to be rejected")
	}
	if None.Valid() {
		t.Error("None must not be a valid code")
	}
}

// TestDefaultStore verifies the embedded animation parses with the expected geometry
func TestDefaultStore(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if s.Len() != 12 {
		t.Errorf("Expected 12 frames, got %d", s.Len())
	}
	if s.Width() != 64 || s.Height() != 64 {
		t.Errorf("Expected 64x64 frames, got %dx%d", s.Width(), s.Height())
	}

	// Same pointer on second call
	s2, _ := Default()
	if s != s2 {
		t.Error("Expected Default() to return the cached store")
	}
}

// TestStoreNextCycles verifies the index returns to 0 after Len advances
func TestStoreNextCycles(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	i := 0
	for n := 0; n < s.Len(); n++ {
		i = s.Next(i)
		if i < 0 || i >= s.Len() {
			t.Fatalf("Next produced out-of-range index %d", i)
		}
	}
	if i != 0 {
		t.Errorf("Expected index 0 after %d advances, got %d", s.Len(), i)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "\n\n", ErrNoFrames},
		{"ragged", ",,,\n,,\n", ErrRagged},
		{"size changed", ",,\n,,\n\n,,,\n,,,\n", ErrSizeChanged},
		{"unknown code", ",x\n,,\n", ErrUnknownCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.text)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadFrames(t *testing.T) {
	text := strings.Join([]string{
		",.",
		"'@",
		"",
		"$-",
		">&",
		"",
	}, "\r\n")

	s, err := Load(text)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.Len() != 2 || s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("Expected 2 frames of 2x2, got %d of %dx%d", s.Len(), s.Width(), s.Height())
	}
	if got := s.Frame(0).At(1, 1); got != Crust {
		t.Errorf("Frame 0 (1,1) = %v, want %v", got, Crust)
	}
	if got := s.Frame(1).At(0, 1); got != Red {
		t.Errorf("Frame 1 (0,1) = %v, want %v", got, Red)
	}
}

// TestPhaseRange verifies the stripe offset is always 0 or 1
func TestPhaseRange(t *testing.T) {
	for x := -200; x < 0; x++ {
		for tick := uint64(0); tick < 8; tick++ {
			m := Phase(x, tick)
			if m != 0 && m != 1 {
				t.Fatalf("Phase(%d, %d) = %d, want 0 or 1", x, tick, m)
			}
		}
	}
}

// TestPhaseFlip verifies the pattern flips exactly once between tick pairs
func TestPhaseFlip(t *testing.T) {
	for x := -40; x < 0; x++ {
		for tick := uint64(0); tick < 16; tick += 2 {
			if Phase(x, tick) != Phase(x, tick+1) {
				t.Errorf("x=%d: ticks %d and %d should share a phase", x, tick, tick+1)
			}
			if Phase(x, tick) == Phase(x, tick+2) {
				t.Errorf("x=%d: ticks %d and %d should have opposite phases", x, tick, tick+2)
			}
		}
	}
}

// TestTailPure verifies identical inputs give identical codes
func TestTailPure(t *testing.T) {
	for x := -64; x < 0; x++ {
		for row := 0; row < 64; row++ {
			a := Tail(x, row, 5)
			b := Tail(x, row, 5)
			if a != b {
				t.Fatalf("Tail(%d, %d, 5) not deterministic", x, row)
			}
			if !a.Valid() {
				t.Fatalf("Tail(%d, %d, 5) = %d, not a valid code", x, row, a)
			}
		}
	}
}

func TestTailBand(t *testing.T) {
	tests := []struct {
		name string
		x    int
		row  int
		tick uint64
		want Code
	}{
		{"above band", -1, TailTop - 1, 0, Background},
		{"below band", -1, TailBottom + 1, 0, Background},
		{"first red row phase 0", -1, 25, 0, Red},
		{"last violet row phase 0", -1, 40, 0, Violet},
		// x = -7: (7+2)%16 = 9 -> phase 1, shifts the stripe up one row
		{"red row phase 1", -7, 24, 0, Red},
		{"phase 1 flipped by tick", -7, 24, 2, Background},
		{"past stripe end", -7, TailBottom, 0, Background},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tail(tt.x, tt.row, tt.tick); got != tt.want {
				t.Errorf("Tail(%d, %d, %d) = %v, want %v", tt.x, tt.row, tt.tick, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	s, err := Load(",.\n'@\n")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	f := s.Frame(0)

	if got := Resolve(f, 1, 1, 0); got != Crust {
		t.Errorf("Inside frame: got %v, want %v", got, Crust)
	}
	if got := Resolve(f, 5, 1, 0); got != Background {
		t.Errorf("Right of frame: got %v, want %v", got, Background)
	}
	if got := Resolve(f, 0, -3, 0); got != Background {
		t.Errorf("Above frame: got %v, want %v", got, Background)
	}
	if got := Resolve(f, -1, 25, 0); got != Red {
		t.Errorf("Tail band: got %v, want %v", got, Red)
	}
}
