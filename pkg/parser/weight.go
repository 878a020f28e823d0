package parser

import (
	"time"

	"github.com/aretw0/fitbook/pkg/command"
)

// WeightCommandParser parses "INDEX w/WEIGHT". An empty or zero weight
// removes the latest entry.
type WeightCommandParser struct {
	Now func() time.Time
}

func (p *WeightCommandParser) Parse(args string) (*command.WeightCommand, error) {
	m := Tokenize(args, PrefixWeight)

	idx, err := parseIndexPreamble(m, indexMessages{
		noIndex:      command.MessageNoIndexWeight,
		invalidIndex: command.MessageInvalidIndexWeight,
		usage:        command.WeightUsage,
	})
	if err != nil {
		return nil, err
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixWeight); err != nil {
		return nil, err
	}
	if !m.Contains(PrefixWeight) {
		return nil, newParseError(command.MessageMissingWeight)
	}

	w, err := ParseWeight(m.ValueOrEmpty(PrefixWeight))
	if err != nil {
		return nil, err
	}
	return &command.WeightCommand{Index: idx, Weight: w, Now: p.Now}, nil
}
