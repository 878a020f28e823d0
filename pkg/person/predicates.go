package person

import (
	"strings"

	"golang.org/x/text/cases"
)

// CombinedPredicates is the search filter built by the find command. Every
// non-empty criterion must hold for a person to match; text criteria are
// case-insensitive substring matches.
type CombinedPredicates struct {
	Name        string
	Phone       string
	Email       string
	Address     string
	Note        string
	Tags        []Tag
	WeightRange *WeightRange
	HeightRange *HeightRange
}

// IsEmpty reports whether no criterion is set.
func (c CombinedPredicates) IsEmpty() bool {
	return c.Name == "" && c.Phone == "" && c.Email == "" && c.Address == "" && c.Note == "" &&
		len(c.Tags) == 0 && c.WeightRange == nil && c.HeightRange == nil
}

// Test reports whether p satisfies every criterion.
func (c CombinedPredicates) Test(p *Person) bool {
	fold := cases.Fold()
	contains := func(field, search string) bool {
		return search == "" || strings.Contains(fold.String(field), fold.String(search))
	}

	if !contains(string(p.name), c.Name) ||
		!contains(string(p.phone), c.Phone) ||
		!contains(string(p.email), c.Email) ||
		!contains(string(p.address), c.Address) ||
		!contains(string(p.note), c.Note) {
		return false
	}

	if len(c.Tags) > 0 && !c.matchesAnyTag(p) {
		return false
	}

	if c.WeightRange != nil {
		latest, ok := p.LatestWeight()
		if !ok || !latest.Value.InRange(*c.WeightRange) {
			return false
		}
	}

	if c.HeightRange != nil {
		if !p.height.IsSet() || !p.height.InRange(*c.HeightRange) {
			return false
		}
	}

	return true
}

func (c CombinedPredicates) matchesAnyTag(p *Person) bool {
	for _, want := range c.Tags {
		for _, have := range p.tags {
			if strings.EqualFold(string(want), string(have)) {
				return true
			}
		}
	}
	return false
}
