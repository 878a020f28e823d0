package command

import (
	"fmt"
	"strings"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

const (
	FitAddWord  = "fitadd"
	FitAddUsage = FitAddWord + ": Adds an exercise, or a bundle of default exercises, to the client " +
		"identified by the index number used in the displayed client list. " +
		"Adding an exercise that already exists overwrites the given values.\n" +
		"Parameters: INDEX (must be a positive integer) n/EXERCISE_NAME [s/SETS] [r/REPS] [b/BREAK_BETWEEN_SETS_IN_SECONDS]\n" +
		"or: INDEX [arm/] [leg/] [chest/] [back/] [shoulder/] [abs/] [all/]\n" +
		"Example: " + FitAddWord + " 1 n/burpees s/3 r/5 b/30\n" +
		"Example: " + FitAddWord + " 1 arm/ leg/"

	MessageAddExerciseSuccess = "Added exercise(s) to Client: %s"

	MessageNoIndexFitAdd        = "Please provide the index of the client to add exercises to.\n" + FitAddUsage
	MessageInvalidIndexFitAdd   = "The index provided for the fitadd command is invalid. It must be a positive integer.\n" + FitAddUsage
	MessageFitAddPrefixConflict = "The exercise name parameter cannot be used together with default exercise prefixes.\n" + FitAddUsage
	MessageFitAddMissing        = "Please provide either an exercise name or at least one default exercise prefix.\n" + FitAddUsage
	MessageFitAddOptionsNoName  = "Sets, reps and break can only be given together with an exercise name.\n" + FitAddUsage
)

// FitAddCommand adds or updates exercises of a person. Unset fields of each
// ExerciseToAdd fall back to the person's existing exercise, then to the
// defaults.
type FitAddCommand struct {
	Index     core.Index
	Exercises []person.ExerciseToAdd
}

func (c *FitAddCommand) Execute(m core.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	edited := person.From(target).Exercises(target.Exercises().With(c.Exercises...)).Build()
	if err := replace(m, target, edited); err != nil {
		return Result{}, err
	}
	return Result{
		Kind:     KindExercisesAdded,
		Feedback: fmt.Sprintf(MessageAddExerciseSuccess, exerciseNames(c.Exercises, edited)),
	}, nil
}

func exerciseNames(toAdd []person.ExerciseToAdd, p *person.Person) string {
	names := make([]string, 0, len(toAdd))
	for _, e := range toAdd {
		names = append(names, e.Name)
	}
	return fmt.Sprintf("%s (%s)", p.Name(), strings.Join(names, ", "))
}
