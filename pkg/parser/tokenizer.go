package parser

import (
	"sort"
	"strings"
)

type occurrence struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into a preamble and prefixed values.
//
// A prefix is recognised, ignoring ASCII case, at the start of args or right
// after a space or tab. Each value runs from the end of its prefix to the
// next recognised prefix and is trimmed. Text before the first prefix is the
// preamble. Every call returns a new ArgumentMultimap.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMultimap {
	found := findOccurrences(args, prefixes)

	m := NewArgumentMultimap()
	end := len(args)
	if len(found) > 0 {
		end = found[0].start
	}
	m.Put(preamblePrefix, strings.TrimSpace(args[:end]))

	for i, occ := range found {
		next := len(args)
		if i+1 < len(found) {
			next = found[i+1].start
		}
		m.Put(occ.prefix, strings.TrimSpace(args[occ.start+len(occ.prefix):next]))
	}
	return m
}

func findOccurrences(args string, prefixes []Prefix) []occurrence {
	// Longest first so that a longer prefix wins over one it starts with.
	ordered := make([]Prefix, 0, len(prefixes))
	for _, p := range prefixes {
		if p != preamblePrefix {
			ordered = append(ordered, p)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	var found []occurrence
	for i := 0; i < len(args); i++ {
		if i > 0 && args[i-1] != ' ' && args[i-1] != '\t' {
			continue
		}
		for _, p := range ordered {
			if matchesAt(args, i, p) {
				found = append(found, occurrence{prefix: p, start: i})
				i += len(p) - 1
				break
			}
		}
	}
	return found
}

func matchesAt(args string, i int, p Prefix) bool {
	if i+len(p) > len(args) {
		return false
	}
	return strings.EqualFold(args[i:i+len(p)], string(p))
}
