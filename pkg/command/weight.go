package command

import (
	"fmt"
	"time"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

const (
	WeightWord  = "weight"
	WeightUsage = WeightWord + ": Records a weight value for the client identified by the index number " +
		"used in the displayed client list. A weight of 0 removes the most recent value.\n" +
		"Parameters: INDEX (must be a positive integer) w/WEIGHT\n" +
		"Example: " + WeightWord + " 1 w/70.5"

	MessageAddWeightSuccess    = "Added weight to Client: %s"
	MessageDeleteWeightSuccess = "Removed most recent weight from Client: %s"
	MessageNoIndexWeight       = "Please provide the index of the client whose weight should be recorded.\n" + WeightUsage
	MessageInvalidIndexWeight  = "The index provided for the weight command is invalid. It must be a positive integer.\n" + WeightUsage
	MessageMissingWeight       = "Please provide a weight value using the w/ prefix.\n" + WeightUsage
)

// WeightCommand records Weight at the time of execution. A zero Weight
// removes the latest entry instead.
type WeightCommand struct {
	Index  core.Index
	Weight person.Weight

	// Now defaults to time.Now.
	Now func() time.Time
}

func (c *WeightCommand) Execute(m core.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	history := target.Weights()
	format := MessageAddWeightSuccess
	if c.Weight.IsZero() {
		trimmed, ok := history.WithoutLatest()
		if !ok {
			return Result{}, &ExecutionError{Msg: person.MessageEmptyWeightMap}
		}
		history = trimmed
		format = MessageDeleteWeightSuccess
	} else {
		history = history.Put(c.now(), c.Weight)
	}

	edited := person.From(target).Weights(history).Build()
	if err := replace(m, target, edited); err != nil {
		return Result{}, err
	}
	return personEdited(EditWeight, fmt.Sprintf(format, edited.Formatted())), nil
}

func (c *WeightCommand) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
