package profile

import "strings"

// matcher classifies a lowercased terminal identifier
type matcher struct {
	name  string
	match func(term string, cols int) bool
	class Class
}

func contains(s string) func(string, int) bool {
	return func(term string, _ int) bool { return strings.Contains(term, s) }
}

// matchers is evaluated in order, first hit wins.
// Generic names follow the specific names they are substrings of
// (rxvt-256color before rxvt).
var matchers = []matcher{
	{"xterm", contains("xterm"), ClassXterm256},
	{"linux", contains("linux"), ClassLinux},
	{"vtnt", contains("vtnt"), ClassCP437},
	{"cygwin", contains("cygwin"), ClassCP437},
	{"vt220", contains("vt220"), ClassVT220},
	{"fallback", contains("fallback"), ClassFallback},
	{"rxvt-256color", contains("rxvt-256color"), ClassXterm256},
	{"rxvt", contains("rxvt"), ClassLinux},
	{"vt100", func(term string, cols int) bool {
		return strings.Contains(term, "vt100") && cols == vt100Width
	}, ClassVT100},
	{"st", func(term string, _ int) bool { return strings.HasPrefix(term, "st") }, ClassXterm256},
}

// Resolve maps a terminal type (typically $TERM) and the detected column
// count to a profile. Unknown or empty types get the ANSI profile.
func Resolve(term string, cols int) Profile {
	return ForClass(Classify(term, cols))
}

// Classify returns the terminal class without building the profile
func Classify(term string, cols int) Class {
	term = strings.ToLower(term)
	if term == "" {
		return ClassANSI
	}
	for _, m := range matchers {
		if m.match(term, cols) {
			return m.class
		}
	}
	return ClassANSI
}

// ForClass returns the profile of a class; out-of-range classes get ANSI
func ForClass(c Class) Profile {
	if c >= classCount {
		c = ClassANSI
	}
	return profiles[c]
}

// Known returns the identifiers recognized by Resolve, in match order
func Known() []string {
	names := make([]string, len(matchers))
	for i, m := range matchers {
		names[i] = m.name
	}
	return names
}

// Classes returns every terminal class
func Classes() []Class {
	out := make([]Class, classCount)
	for i := range out {
		out[i] = Class(i)
	}
	return out
}
