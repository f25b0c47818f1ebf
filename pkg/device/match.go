package device

import "strings"

// StripArchitecture removes a trailing Cortex core qualifier from an MCU
// family name. Device probes report names such as "LPC1114 M0" or
// "STM32F1 M3/M4"; matching always operates on the base family name.
func StripArchitecture(name string) string {
	idx := strings.LastIndexByte(name, ' ')
	if idx < 0 {
		return name
	}
	rest := name[idx+1:]
	if len(rest) >= 2 && rest[0] == 'M' && rest[1] >= '0' && rest[1] <= '9' {
		return strings.TrimRight(name[:idx], " \t")
	}
	return name
}

// PatternMatch compares an MCU family name against a single pattern entry.
// The comparison is case-insensitive, except that a lowercase 'x' in the
// pattern is a wildcard matching any one character of the name. Both strings
// must have the same length for the match to succeed.
func PatternMatch(pattern, name string) bool {
	if len(pattern) != len(name) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == 'x' {
			continue
		}
		if upper(pattern[i]) != upper(name[i]) {
			return false
		}
	}
	return true
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Match reports whether an MCU family name applies to a comma-separated
// pattern list. Entries may be exact names, names with 'x' wildcards, or
// prefixes terminated by '*' ('*' alone matches everything). Exact-length
// entries are tried before wildcard-prefix entries, so a precise entry beats
// a broader '*' entry elsewhere in the same list.
func Match(name, list string) bool {
	name = StripArchitecture(name)
	if name == "" {
		return false
	}

	entries := splitList(list)

	// first pass: entries of the same length as the name
	for _, entry := range entries {
		if PatternMatch(entry, name) {
			return true
		}
	}

	// second pass: prefix entries with a trailing '*'
	for _, entry := range entries {
		star := strings.IndexByte(entry, '*')
		if star < 0 {
			continue
		}
		// the wildcard is only meaningful as the last character
		prefix := entry[:star]
		if prefix == "" {
			return true
		}
		if len(name) > len(prefix) && PatternMatch(prefix, name[:len(prefix)]) {
			return true
		}
	}

	return false
}

func splitList(list string) []string {
	parts := strings.Split(list, ",")
	entries := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			entries = append(entries, p)
		}
	}
	return entries
}
