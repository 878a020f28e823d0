package parser

import "github.com/aretw0/fitbook/pkg/command"

// HeightCommandParser parses "INDEX [h/HEIGHT]". A missing or empty height
// unsets it.
type HeightCommandParser struct{}

func (p *HeightCommandParser) Parse(args string) (*command.HeightCommand, error) {
	m := Tokenize(args, PrefixHeight)

	idx, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormatWrap(command.HeightUsage, err)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixHeight); err != nil {
		return nil, err
	}

	h, err := ParseHeight(m.ValueOrEmpty(PrefixHeight))
	if err != nil {
		return nil, err
	}
	return &command.HeightCommand{Index: idx, Height: h}, nil
}
