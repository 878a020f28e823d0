package command

import (
	"errors"
	"fmt"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

// Command is a single validated user request. Execute either applies the
// whole change to the model or returns an error having changed nothing.
type Command interface {
	Execute(m core.Model) (Result, error)
}

// ExecutionError reports a request that is well-formed but cannot be
// applied to the current model state.
type ExecutionError struct {
	Msg string
	Err error
}

func (e *ExecutionError) Error() string { return e.Msg }
func (e *ExecutionError) Unwrap() error { return e.Err }

func executionErrorf(format string, args ...any) *ExecutionError {
	return &ExecutionError{Msg: fmt.Sprintf(format, args...)}
}

// personAt resolves idx against the displayed list.
func personAt(m core.Model, idx core.Index) (*person.Person, error) {
	shown := m.FilteredPersonList()
	if idx.ZeroBased() < 0 || idx.ZeroBased() >= len(shown) {
		return nil, &ExecutionError{Msg: MessageInvalidPersonDisplayedIndex}
	}
	return shown[idx.ZeroBased()], nil
}

// replace writes edited over target and resets the filter.
func replace(m core.Model, target, edited *person.Person) error {
	if err := m.SetPerson(target, edited); err != nil {
		if errors.Is(err, core.ErrDuplicatePerson) {
			return &ExecutionError{Msg: MessageDuplicatePerson, Err: err}
		}
		return &ExecutionError{Msg: err.Error(), Err: err}
	}
	m.UpdateFilteredPersonList(core.ShowAllPersons)
	return nil
}
