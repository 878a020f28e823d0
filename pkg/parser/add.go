package parser

import (
	"time"

	"github.com/aretw0/fitbook/pkg/command"
	"github.com/aretw0/fitbook/pkg/person"
)

// AddCommandParser parses "n/NAME p/PHONE [e/] [a/] [w/] [h/] [nt/] [t/]...".
type AddCommandParser struct {
	Now func() time.Time
}

func (p *AddCommandParser) Parse(args string) (*command.AddCommand, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress,
		PrefixWeight, PrefixHeight, PrefixNote, PrefixTag)

	if !m.ContainsAll(PrefixName, PrefixPhone) || !m.IsPreambleEmpty() {
		return nil, invalidFormat(command.AddUsage)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress,
		PrefixWeight, PrefixHeight, PrefixNote); err != nil {
		return nil, err
	}

	name, err := ParseName(m.ValueOrEmpty(PrefixName))
	if err != nil {
		return nil, err
	}
	phone, err := ParsePhone(m.ValueOrEmpty(PrefixPhone))
	if err != nil {
		return nil, err
	}
	email, err := ParseEmail(m.Value(PrefixEmail))
	if err != nil {
		return nil, err
	}
	address, err := ParseAddress(m.Value(PrefixAddress))
	if err != nil {
		return nil, err
	}
	weight, err := ParseWeight(m.ValueOrEmpty(PrefixWeight))
	if err != nil {
		return nil, err
	}
	height, err := ParseHeight(m.ValueOrEmpty(PrefixHeight))
	if err != nil {
		return nil, err
	}
	tags, err := ParseTags(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	b := person.NewBuilder(name, phone).
		Email(email).
		Address(address).
		Height(height).
		Note(ParseNote(m.ValueOrEmpty(PrefixNote))).
		Tags(tags...)
	if !weight.IsZero() {
		b.Weights(person.NewWeightMap(person.NewWeightEntry(now(p.Now), weight)))
	}
	return &command.AddCommand{Person: b.Build()}, nil
}

func now(clock func() time.Time) time.Time {
	if clock != nil {
		return clock()
	}
	return time.Now()
}
