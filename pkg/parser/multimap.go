package parser

import "strings"

// ArgumentMultimap stores the values given for each prefix in input order.
// The same value may appear more than once for a prefix.
type ArgumentMultimap struct {
	values map[Prefix][]string
}

func NewArgumentMultimap() *ArgumentMultimap {
	return &ArgumentMultimap{values: make(map[Prefix][]string)}
}

// Put appends value to the values of p.
func (m *ArgumentMultimap) Put(p Prefix, value string) {
	m.values[p] = append(m.values[p], value)
}

// Value returns the last value given for p.
func (m *ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// ValueOrEmpty returns the last value given for p, or "".
func (m *ArgumentMultimap) ValueOrEmpty(p Prefix) string {
	v, _ := m.Value(p)
	return v
}

// AllValues returns a copy of every value given for p.
func (m *ArgumentMultimap) AllValues(p Prefix) []string {
	vs := m.values[p]
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

// Preamble returns the trimmed text before the first prefix.
func (m *ArgumentMultimap) Preamble() string {
	return m.ValueOrEmpty(preamblePrefix)
}

func (m *ArgumentMultimap) IsPreambleEmpty() bool { return m.Preamble() == "" }

// PreambleSegmentCount returns the number of whitespace separated words in
// the preamble.
func (m *ArgumentMultimap) PreambleSegmentCount() int {
	return len(strings.Fields(m.Preamble()))
}

func (m *ArgumentMultimap) HasOnlyOnePreambleSegment() bool {
	return m.PreambleSegmentCount() == 1
}

// Contains reports whether p was given at least once.
func (m *ArgumentMultimap) Contains(p Prefix) bool {
	return len(m.values[p]) > 0
}

// ContainsAny reports whether any of prefixes was given.
func (m *ArgumentMultimap) ContainsAny(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if m.Contains(p) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every one of prefixes was given.
func (m *ArgumentMultimap) ContainsAll(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if !m.Contains(p) {
			return false
		}
	}
	return true
}

// VerifyNoDuplicatePrefixesFor fails if any of prefixes was given more than
// once. The error lists every such prefix.
func (m *ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	seen := make(map[Prefix]bool, len(prefixes))
	var dups []string
	for _, p := range prefixes {
		if seen[p] {
			continue
		}
		seen[p] = true
		if len(m.values[p]) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) > 0 {
		return newParseError(MessageDuplicateFields + strings.Join(dups, " "))
	}
	return nil
}

// HasArgumentValueForPrefixes reports whether any of prefixes carries a
// non-empty value. Used to reject values on flag-like prefixes.
func (m *ArgumentMultimap) HasArgumentValueForPrefixes(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		for _, v := range m.values[p] {
			if v != "" {
				return true
			}
		}
	}
	return false
}
