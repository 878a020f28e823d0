package parser

import "github.com/aretw0/fitbook/pkg/command"

type DeleteCommandParser struct{}

func (p *DeleteCommandParser) Parse(args string) (*command.DeleteCommand, error) {
	idx, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormatWrap(command.DeleteUsage, err)
	}
	return &command.DeleteCommand{Index: idx}, nil
}
