package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/aretw0/fitbook/pkg/command"
	"github.com/aretw0/fitbook/pkg/core"
)

const (
	MessageInvalidCommandFormat = command.MessageInvalidCommandFormat
	MessageUnknownCommand       = command.MessageUnknownCommand
	MessageDuplicateFields      = command.MessageDuplicateFields
)

// Parser builds a command of type T from the arguments that follow the
// command word.
type Parser[T command.Command] interface {
	Parse(args string) (T, error)
}

var basicCommandFormat = regexp.MustCompile(`(?s)^(\S+)(.*)$`)

// AddressBookParser dispatches a full command line to the parser of its
// command word.
type AddressBookParser struct {
	// Now stamps weights recorded by add and weight. Defaults to time.Now.
	Now func() time.Time
}

// ParseCommand parses a full line such as "weight 1 w/70.5".
func (p *AddressBookParser) ParseCommand(input string) (command.Command, error) {
	match := basicCommandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return nil, invalidFormat(command.HelpUsage)
	}
	word, args := match[1], match[2]

	switch word {
	case command.AddWord:
		return parseWith[*command.AddCommand](&AddCommandParser{Now: p.Now}, args)
	case command.EditWord:
		return parseWith[*command.EditCommand](&EditCommandParser{}, args)
	case command.DeleteWord:
		return parseWith[*command.DeleteCommand](&DeleteCommandParser{}, args)
	case command.ClearWord:
		return &command.ClearCommand{}, nil
	case command.ListWord:
		return &command.ListCommand{}, nil
	case command.FindWord:
		return parseWith[*command.FindCommand](&FindCommandParser{}, args)
	case command.WeightWord:
		return parseWith[*command.WeightCommand](&WeightCommandParser{Now: p.Now}, args)
	case command.HeightWord:
		return parseWith[*command.HeightCommand](&HeightCommandParser{}, args)
	case command.NoteWord:
		return parseWith[*command.NoteCommand](&NoteCommandParser{}, args)
	case command.FitAddWord:
		return parseWith[*command.FitAddCommand](&FitAddCommandParser{}, args)
	case command.FitDeleteWord:
		return parseWith[*command.FitDeleteCommand](&FitDeleteCommandParser{}, args)
	case command.HelpWord:
		return &command.HelpCommand{}, nil
	case command.ExitWord:
		return &command.ExitCommand{}, nil
	default:
		return nil, newParseError(MessageUnknownCommand)
	}
}

// CommandWord returns the first word of input, or "".
func CommandWord(input string) string {
	match := basicCommandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return ""
	}
	return match[1]
}

func parseWith[T command.Command](p Parser[T], args string) (command.Command, error) {
	c, err := p.Parse(args)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// indexMessages are the preamble errors of a parser that expects a lone
// index before its prefixes.
type indexMessages struct {
	noIndex      string
	invalidIndex string
	usage        string
}

func parseIndexPreamble(m *ArgumentMultimap, msgs indexMessages) (core.Index, error) {
	if m.IsPreambleEmpty() {
		return core.Index{}, newParseError(msgs.noIndex)
	}
	if !m.HasOnlyOnePreambleSegment() {
		return core.Index{}, invalidFormat(msgs.usage)
	}
	idx, err := ParseIndex(m.Preamble())
	if err != nil {
		return core.Index{}, wrapParseError(msgs.invalidIndex, err)
	}
	return idx, nil
}
