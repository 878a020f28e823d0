package person

import (
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Weight messages shown to the user.
const (
	WeightConstraints     = "Weight value can only be a number between 0 and 5000 (inclusive)."
	WeightDateConstraints = "Date value is invalid. Should follow the format YYYY-MM-DDTHH:mm:ss, e.g. 2024-03-27T10:15:30"
	MessageEmptyWeightMap = "There are no more weight values to be removed."

	// MaxWeight is the largest accepted weight in kilograms.
	MaxWeight = 5000

	// WeightDateLayout is the storage format of weight timestamps.
	WeightDateLayout = "2006-01-02T15:04:05"
)

var weightRegex = regexp.MustCompile(`^([0-9]+([.][0-9]*)?|[.][0-9]+)$`)

// Weight is a body weight in kilograms. Zero is a sentinel: a weight
// command carrying it removes the most recent entry instead of storing it.
type Weight float64

// IsValidWeight reports whether s is a decimal in [0, MaxWeight].
func IsValidWeight(s string) bool {
	if !weightRegex.MatchString(s) {
		return false
	}
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v >= 0 && v <= MaxWeight
}

// IsZero reports whether w is the delete sentinel.
func (w Weight) IsZero() bool { return w == 0 }

// InRange reports whether w lies within r, bounds inclusive.
func (w Weight) InRange(r WeightRange) bool {
	return float64(w) >= r.Min && float64(w) <= r.Max
}

func (w Weight) String() string {
	return strconv.FormatFloat(float64(w), 'f', -1, 64)
}

// WeightRange is an inclusive [Min, Max] interval.
type WeightRange struct {
	Min float64
	Max float64
}

// WeightEntry is a single timestamped measurement.
type WeightEntry struct {
	Time  time.Time
	Value Weight
}

// NewWeightEntry stamps w with t truncated to whole seconds.
func NewWeightEntry(t time.Time, w Weight) WeightEntry {
	return WeightEntry{Time: t.Truncate(time.Second), Value: w}
}

// WeightMap is an immutable, time-ordered weight history. Keys are unique;
// putting an existing timestamp replaces its value.
type WeightMap struct {
	entries []WeightEntry
}

// NewWeightMap builds a history from entries in any order.
func NewWeightMap(entries ...WeightEntry) WeightMap {
	var m WeightMap
	for _, e := range entries {
		m = m.Put(e.Time, e.Value)
	}
	return m
}

// Len returns the number of entries.
func (m WeightMap) Len() int { return len(m.entries) }

// IsEmpty reports whether the history holds no entries.
func (m WeightMap) IsEmpty() bool { return len(m.entries) == 0 }

// Entries returns the history in chronological order. The slice is a copy.
func (m WeightMap) Entries() []WeightEntry {
	out := make([]WeightEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Latest returns the chronologically last entry.
func (m WeightMap) Latest() (WeightEntry, bool) {
	if len(m.entries) == 0 {
		return WeightEntry{}, false
	}
	return m.entries[len(m.entries)-1], true
}

// Put returns a copy of m with (t, w) inserted in order. t is truncated to
// whole seconds, so a second put within the same second replaces the first.
func (m WeightMap) Put(t time.Time, w Weight) WeightMap {
	t = t.Truncate(time.Second)
	i := sort.Search(len(m.entries), func(i int) bool {
		return !m.entries[i].Time.Before(t)
	})

	out := make([]WeightEntry, 0, len(m.entries)+1)
	out = append(out, m.entries[:i]...)
	out = append(out, WeightEntry{Time: t, Value: w})
	if i < len(m.entries) && m.entries[i].Time.Equal(t) {
		out = append(out, m.entries[i+1:]...)
	} else {
		out = append(out, m.entries[i:]...)
	}
	return WeightMap{entries: out}
}

// WithoutLatest returns a copy of m without its last entry. It reports
// false when m is empty.
func (m WeightMap) WithoutLatest() (WeightMap, bool) {
	if len(m.entries) == 0 {
		return m, false
	}
	out := make([]WeightEntry, len(m.entries)-1)
	copy(out, m.entries)
	return WeightMap{entries: out}, true
}

// Equal reports whether both histories hold the same entries.
func (m WeightMap) Equal(o WeightMap) bool {
	if len(m.entries) != len(o.entries) {
		return false
	}
	for i := range m.entries {
		if !m.entries[i].Time.Equal(o.entries[i].Time) || m.entries[i].Value != o.entries[i].Value {
			return false
		}
	}
	return true
}
