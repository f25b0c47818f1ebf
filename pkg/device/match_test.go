package device

import "testing"

func TestMatchExactEntry(t *testing.T) {
	cases := []struct {
		name string
		list string
		want bool
	}{
		{"LPC17xx", "LPC17xx", true},
		{"lpc17XX", "LPC17xx", true},
		{"STM32F103", "STM32F03,STM32F05,STM32F1*", true},
		{"STM32F05", "STM32F03,STM32F05,STM32F07", true},
		{"STM32F06", "STM32F03,STM32F05,STM32F07", false},
		{"", "*", false},
	}
	for _, tc := range cases {
		if got := Match(tc.name, tc.list); got != tc.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.name, tc.list, got, tc.want)
		}
	}
}

func TestMatchWildcardPrefix(t *testing.T) {
	if !Match("STM32F407", "STM32F4*,STM32F7*") {
		t.Error("STM32F407 should match STM32F4*")
	}
	if Match("STM32F1", "STM32F4*,STM32F7*") {
		t.Error("STM32F1 should not match STM32F4* or STM32F7*")
	}
	// the universal wildcard is an unconditional fallback
	if !Match("XMC4500", "*") {
		t.Error("any name should match the universal wildcard")
	}
	// a name equal to the prefix itself is not a prefix match
	if Match("LPC43xx", "LPC43xx*") {
		t.Error("prefix match requires the name to be longer than the prefix")
	}
}

func TestMatchCharacterWildcard(t *testing.T) {
	if !Match("LPC1114", "LPC11xx") {
		t.Error("LPC1114 should match LPC11xx ('x' wildcards positions 6 and 7)")
	}
	if Match("LPC111", "LPC11xx") {
		t.Error("LPC111 should not match LPC11xx (length mismatch)")
	}
	// the wildcard must be lowercase in the pattern, but the name side
	// remains case-insensitive
	if !Match("LPC11U24", "LPC11Uxx") {
		t.Error("LPC11U24 should match LPC11Uxx")
	}
}

func TestMatchStripsArchitectureSuffix(t *testing.T) {
	if !Match("LPC1114 M0", "LPC11xx") {
		t.Error("architecture suffix should be stripped before matching")
	}
	if !Match("STM32F103 M3/M4", "STM32F1*") {
		t.Error("combined core qualifier should be stripped before matching")
	}
	if got := StripArchitecture("LPC1114 M0"); got != "LPC1114" {
		t.Errorf("StripArchitecture = %q, want %q", got, "LPC1114")
	}
	// a trailing word that is not a core qualifier stays put
	if got := StripArchitecture("SOME NAME"); got != "SOME NAME" {
		t.Errorf("StripArchitecture = %q, want %q", got, "SOME NAME")
	}
}

func TestMatchExactBeatsWildcard(t *testing.T) {
	// both entries could apply; the exact-length pass must win first and
	// report a match without consulting the '*' entry
	if !Match("LPC1343", "LPC13xx,LPC1*") {
		t.Error("expected a match")
	}
	// architecture tags are matched as plain bracketed entries
	if !Match("[M0]", "[M0]") {
		t.Error("architecture tag should match itself")
	}
	if Match("[M3]", "[M0]") {
		t.Error("architecture tags should not cross-match")
	}
}

func TestPatternMatch(t *testing.T) {
	cases := []struct {
		pattern, name string
		want          bool
	}{
		{"LPC11xx", "LPC1114", true},
		{"LPC11xx", "LPC111", false},
		{"stm32f1", "STM32F1", true},
		{"STM32x1", "STM32F1", true},
		{"STM32X1", "STM32F1", false}, // uppercase X is a literal
	}
	for _, tc := range cases {
		if got := PatternMatch(tc.pattern, tc.name); got != tc.want {
			t.Errorf("PatternMatch(%q, %q) = %v, want %v", tc.pattern, tc.name, got, tc.want)
		}
	}
}
