package command

import (
	"fmt"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

const (
	FitDeleteWord  = "fitdelete"
	FitDeleteUsage = FitDeleteWord + ": Deletes an exercise, or every exercise, of the client identified " +
		"by the index number used in the displayed client list.\n" +
		"Parameters: INDEX (must be a positive integer) n/EXERCISE_NAME\n" +
		"or: INDEX all/\n" +
		"Example: " + FitDeleteWord + " 1 n/burpees\n" +
		"Example: " + FitDeleteWord + " 1 all/"

	MessageDeleteExerciseSuccess     = "Deleted exercise '%s' from Client: %s"
	MessageDeleteAllExercisesSuccess = "Deleted all exercises from Client: %s"
	MessageExerciseNotFound          = "Exercise '%s' was not found for this client."
	MessageNoExercisesToDelete       = "This client has no exercises to delete."

	MessageNoIndexFitDelete        = "Please provide the index of the client to delete exercises from.\n" + FitDeleteUsage
	MessageInvalidIndexFitDelete   = "The index provided for the fitdelete command is invalid. It must be a positive integer.\n" + FitDeleteUsage
	MessageFitDeletePrefixConflict = "The exercise name parameter and the all/ prefix cannot be used together.\n" + FitDeleteUsage
	MessageFitDeleteMissing        = "Please provide either an exercise name or the all/ prefix.\n" + FitDeleteUsage
)

// FitDeleteCommand removes ExerciseName from a person, or every exercise
// when ExerciseName is empty.
type FitDeleteCommand struct {
	Index        core.Index
	ExerciseName string
}

func (c *FitDeleteCommand) Execute(m core.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	var (
		remaining person.ExerciseSet
		feedback  string
	)
	if c.ExerciseName == "" {
		if target.Exercises().IsEmpty() {
			return Result{}, &ExecutionError{Msg: MessageNoExercisesToDelete}
		}
		remaining = person.NewExerciseSet()
		feedback = fmt.Sprintf(MessageDeleteAllExercisesSuccess, target.Name())
	} else {
		if !target.Exercises().Contains(c.ExerciseName) {
			return Result{}, executionErrorf(MessageExerciseNotFound, c.ExerciseName)
		}
		remaining = target.Exercises().Without(c.ExerciseName)
		feedback = fmt.Sprintf(MessageDeleteExerciseSuccess, c.ExerciseName, target.Name())
	}

	edited := person.From(target).Exercises(remaining).Build()
	if err := replace(m, target, edited); err != nil {
		return Result{}, err
	}
	return Result{Kind: KindExercisesDeleted, Feedback: feedback}, nil
}
