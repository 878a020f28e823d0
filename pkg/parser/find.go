package parser

import (
	"github.com/aretw0/fitbook/pkg/command"
	"github.com/aretw0/fitbook/pkg/person"
)

var findPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixAddress,
	PrefixTag, PrefixWeight, PrefixHeight, PrefixNote,
}

// FindCommandParser parses a find request. Every given field must match.
type FindCommandParser struct{}

func (p *FindCommandParser) Parse(args string) (*command.FindCommand, error) {
	m := Tokenize(args, findPrefixes...)

	if !m.IsPreambleEmpty() || !m.ContainsAny(findPrefixes...) {
		return nil, invalidFormat(command.FindUsage)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress,
		PrefixWeight, PrefixHeight, PrefixNote); err != nil {
		return nil, err
	}

	pred := person.CombinedPredicates{
		Name:    ParseSearchString(m.ValueOrEmpty(PrefixName)),
		Phone:   ParseSearchString(m.ValueOrEmpty(PrefixPhone)),
		Email:   ParseSearchString(m.ValueOrEmpty(PrefixEmail)),
		Address: ParseSearchString(m.ValueOrEmpty(PrefixAddress)),
		Note:    ParseSearchString(m.ValueOrEmpty(PrefixNote)),
	}
	for _, v := range m.AllValues(PrefixTag) {
		if tag := ParseSearchString(v); tag != "" {
			pred.Tags = append(pred.Tags, person.Tag(tag))
		}
	}
	if v, ok := m.Value(PrefixWeight); ok {
		r, err := ParseWeightRange(v)
		if err != nil {
			return nil, err
		}
		pred.WeightRange = &r
	}
	if v, ok := m.Value(PrefixHeight); ok {
		r, err := ParseHeightRange(v)
		if err != nil {
			return nil, err
		}
		pred.HeightRange = &r
	}
	if pred.IsEmpty() {
		return nil, invalidFormat(command.FindUsage)
	}
	return &command.FindCommand{Predicates: pred}, nil
}
