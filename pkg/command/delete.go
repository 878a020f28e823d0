package command

import (
	"fmt"

	"github.com/aretw0/fitbook/pkg/core"
)

const (
	DeleteWord  = "delete"
	DeleteUsage = DeleteWord + ": Deletes the client identified by the index number used in the displayed client list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteWord + " 1"

	MessageDeletePersonSuccess = "Deleted Client: %s"
)

// DeleteCommand removes the person at Index of the displayed list.
type DeleteCommand struct {
	Index core.Index
}

func (c *DeleteCommand) Execute(m core.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePerson(target); err != nil {
		return Result{}, &ExecutionError{Msg: err.Error(), Err: err}
	}
	return Result{
		Kind:     KindPersonDeleted,
		Feedback: fmt.Sprintf(MessageDeletePersonSuccess, target.Formatted()),
	}, nil
}
