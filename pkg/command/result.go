package command

import "fmt"

// Kind tags a Result so front ends can branch on what happened instead of
// inspecting the feedback text.
type Kind int

const (
	KindInfo Kind = iota
	KindHelpRequested
	KindExitRequested
	KindPersonAdded
	KindPersonEdited
	KindPersonDeleted
	KindPersonsListed
	KindExercisesAdded
	KindExercisesDeleted
	KindNoteEditRequested
	KindCleared
)

var kindNames = map[Kind]string{
	KindInfo:              "info",
	KindHelpRequested:     "help",
	KindExitRequested:     "exit",
	KindPersonAdded:       "person-added",
	KindPersonEdited:      "person-edited",
	KindPersonDeleted:     "person-deleted",
	KindPersonsListed:     "persons-listed",
	KindExercisesAdded:    "exercises-added",
	KindExercisesDeleted:  "exercises-deleted",
	KindNoteEditRequested: "note-edit-requested",
	KindCleared:           "cleared",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// EditKind qualifies a KindPersonEdited result.
type EditKind int

const (
	EditNone EditKind = iota
	EditFields
	EditWeight
	EditHeight
	EditNote
)

// Result is the outcome of a successfully executed command.
type Result struct {
	Kind     Kind
	Edit     EditKind
	Feedback string

	// Prefill is the command text to put back in the input line. Only set
	// for KindNoteEditRequested.
	Prefill string
}

// ShowHelp reports whether help should be displayed.
func (r Result) ShowHelp() bool { return r.Kind == KindHelpRequested }

// Exit reports whether the application should exit.
func (r Result) Exit() bool { return r.Kind == KindExitRequested }

// Mutates reports whether the address book may have changed and should be
// persisted.
func (r Result) Mutates() bool {
	switch r.Kind {
	case KindPersonAdded, KindPersonEdited, KindPersonDeleted,
		KindExercisesAdded, KindExercisesDeleted, KindCleared:
		return true
	}
	return false
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %s", r.Kind, r.Feedback)
}

// Info builds a plain informational result.
func Info(feedback string) Result {
	return Result{Kind: KindInfo, Feedback: feedback}
}

func personEdited(kind EditKind, feedback string) Result {
	return Result{Kind: KindPersonEdited, Edit: kind, Feedback: feedback}
}
