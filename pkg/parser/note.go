package parser

import (
	"github.com/aretw0/fitbook/pkg/command"
	"github.com/aretw0/fitbook/pkg/person"
)

// NoteCommandParser parses "INDEX [nt/NOTE]". Without nt/ the command asks
// for the current note to be loaded for editing.
type NoteCommandParser struct{}

func (p *NoteCommandParser) Parse(args string) (*command.NoteCommand, error) {
	m := Tokenize(args, PrefixNote)

	idx, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormatWrap(command.NoteUsage, err)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixNote); err != nil {
		return nil, err
	}

	var note *person.Note
	if v, ok := m.Value(PrefixNote); ok {
		n := ParseNote(v)
		note = &n
	}
	return &command.NoteCommand{Index: idx, Note: note}, nil
}
