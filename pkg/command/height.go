package command

import (
	"fmt"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

const (
	HeightWord  = "height"
	HeightUsage = HeightWord + ": Sets the height of the client identified by the index number " +
		"used in the displayed client list. Leaving the height out, or giving 0, removes it.\n" +
		"Parameters: INDEX (must be a positive integer) [h/HEIGHT]\n" +
		"Example: " + HeightWord + " 1 h/175.5"

	MessageAddHeightSuccess    = "Added height to Client: %s"
	MessageDeleteHeightSuccess = "Removed height from Client: %s"
	MessageNoHeightToRemove    = "There is no height value to be removed."
)

type HeightCommand struct {
	Index  core.Index
	Height person.Height
}

func (c *HeightCommand) Execute(m core.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	format := MessageAddHeightSuccess
	if !c.Height.IsSet() {
		if !target.Height().IsSet() {
			return Result{}, &ExecutionError{Msg: MessageNoHeightToRemove}
		}
		format = MessageDeleteHeightSuccess
	}

	edited := person.From(target).Height(c.Height).Build()
	if err := replace(m, target, edited); err != nil {
		return Result{}, err
	}
	return personEdited(EditHeight, fmt.Sprintf(format, edited.Formatted())), nil
}
