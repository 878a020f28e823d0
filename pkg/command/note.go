package command

import (
	"fmt"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

const (
	NoteWord  = "note"
	NoteUsage = NoteWord + ": Edits the note of the client identified by the index number " +
		"used in the displayed client list. Without nt/ the current note is loaded for editing; " +
		"an empty nt/ removes it.\n" +
		"Parameters: INDEX (must be a positive integer) [nt/NOTE]\n" +
		"Example: " + NoteWord + " 1 nt/Likes to swim."

	MessageAddNoteSuccess    = "Added note to Client: %s"
	MessageDeleteNoteSuccess = "Removed note from Client: %s"
	MessageEditNote          = "Editing note of Client: %s"
)

// NoteCommand replaces the note of a person. A nil Note asks the front end
// to load the current note into the input line instead.
type NoteCommand struct {
	Index core.Index
	Note  *person.Note
}

func (c *NoteCommand) Execute(m core.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	if c.Note == nil {
		return Result{
			Kind:     KindNoteEditRequested,
			Feedback: fmt.Sprintf(MessageEditNote, target.Formatted()),
			Prefill:  NotePrefill(c.Index, target.Note()),
		}, nil
	}

	edited := person.From(target).Note(*c.Note).Build()
	if err := replace(m, target, edited); err != nil {
		return Result{}, err
	}
	format := MessageAddNoteSuccess
	if *c.Note == "" {
		format = MessageDeleteNoteSuccess
	}
	return personEdited(EditNote, fmt.Sprintf(format, edited.Formatted())), nil
}

// NotePrefill renders the command line that re-submits note for idx.
func NotePrefill(idx core.Index, note person.Note) string {
	return fmt.Sprintf("%s %d nt/%s", NoteWord, idx.OneBased(), note)
}
