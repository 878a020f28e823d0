package command_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fitbook/pkg/command"
	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

var (
	t0     = time.Date(2024, 3, 27, 10, 15, 30, 0, time.UTC)
	first  = core.IndexFromOneBased(1)
	second = core.IndexFromOneBased(2)
)

func fixedClock() time.Time { return t0 }

func typicalModel(t *testing.T) *core.ModelManager {
	t.Helper()
	alice := person.NewBuilder("Alice Pauline", "94351253").
		Email("alice@example.com").
		Address("123, Jurong West Ave 6, #08-111").
		Tags("friends").
		Build()
	benson := person.NewBuilder("Benson Meier", "98765432").
		Email("johnd@example.com").
		Weights(person.NewWeightMap().Put(t0.Add(-48*time.Hour), 80).Put(t0.Add(-24*time.Hour), 79)).
		Height(180).
		Tags("owesMoney", "friends").
		Build()
	carl := person.NewBuilder("Carl Kurz", "95352563").
		Exercises(person.NewExerciseSet(person.Exercise{Name: "squats", Sets: 4, Reps: 8, BreakSeconds: 90})).
		Note("Knee injury").
		Build()

	ab, err := core.NewAddressBook(alice, benson, carl)
	require.NoError(t, err)
	return core.NewModelManager(ab, nil)
}

func execute(t *testing.T, m core.Model, c command.Command) command.Result {
	t.Helper()
	res, err := c.Execute(m)
	require.NoError(t, err)
	return res
}

func assertExecutionError(t *testing.T, m core.Model, c command.Command, msg string) {
	t.Helper()
	before := m.AddressBook().Persons()
	_, err := c.Execute(m)
	var execErr *command.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, msg, execErr.Error())
	assert.Equal(t, before, m.AddressBook().Persons(), "failed command must not change the model")
}

func TestWeightCommand(t *testing.T) {
	t.Run("Adds entry at execution time", func(t *testing.T) {
		m := typicalModel(t)
		res := execute(t, m, &command.WeightCommand{Index: first, Weight: 70.5, Now: fixedClock})

		alice := m.FilteredPersonList()[0]
		entries := alice.Weights().Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, person.WeightEntry{Time: t0, Value: 70.5}, entries[0])

		assert.Equal(t, command.KindPersonEdited, res.Kind)
		assert.Equal(t, command.EditWeight, res.Edit)
		assert.Contains(t, res.Feedback, "Alice Pauline")
		assert.True(t, res.Mutates())
	})

	t.Run("Keeps earlier entries", func(t *testing.T) {
		m := typicalModel(t)
		execute(t, m, &command.WeightCommand{Index: second, Weight: 78, Now: fixedClock})

		entries := m.FilteredPersonList()[1].Weights().Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, person.Weight(80), entries[0].Value)
		assert.Equal(t, person.Weight(79), entries[1].Value)
		assert.Equal(t, person.Weight(78), entries[2].Value)
	})

	t.Run("Same second replaces entry", func(t *testing.T) {
		m := typicalModel(t)
		at := func(nsec int) func() time.Time {
			return func() time.Time { return time.Date(2024, 3, 27, 10, 15, 30, nsec, time.UTC) }
		}
		execute(t, m, &command.WeightCommand{Index: first, Weight: 70, Now: at(100_000_000)})
		execute(t, m, &command.WeightCommand{Index: first, Weight: 71, Now: at(400_000_000)})

		entries := m.FilteredPersonList()[0].Weights().Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, person.WeightEntry{Time: t0, Value: 71}, entries[0])
	})

	t.Run("Zero removes latest", func(t *testing.T) {
		m := typicalModel(t)
		res := execute(t, m, &command.WeightCommand{Index: second, Weight: 0})

		benson := m.FilteredPersonList()[1]
		latest, ok := benson.LatestWeight()
		require.True(t, ok)
		assert.Equal(t, person.Weight(80), latest.Value)
		assert.Equal(t, 1, benson.Weights().Len())
		assert.Contains(t, res.Feedback, "Removed")
	})

	t.Run("Zero on empty history", func(t *testing.T) {
		m := typicalModel(t)
		assertExecutionError(t, m, &command.WeightCommand{Index: first, Weight: 0}, person.MessageEmptyWeightMap)
	})

	t.Run("Index out of filtered list", func(t *testing.T) {
		m := typicalModel(t)
		m.UpdateFilteredPersonList(func(p *person.Person) bool { return p.Name() == "Carl Kurz" })
		assertExecutionError(t, m, &command.WeightCommand{Index: second, Weight: 70},
			command.MessageInvalidPersonDisplayedIndex)
	})

	t.Run("Resets filter after edit", func(t *testing.T) {
		m := typicalModel(t)
		m.UpdateFilteredPersonList(func(p *person.Person) bool { return p.Name() == "Carl Kurz" })
		execute(t, m, &command.WeightCommand{Index: first, Weight: 70, Now: fixedClock})
		assert.Len(t, m.FilteredPersonList(), 3)
		assert.True(t, m.FilteredPersonList()[2].HasWeight())
	})
}

func TestFindCommand(t *testing.T) {
	tests := []struct {
		name string
		pred person.CombinedPredicates
		want string
		n    int
	}{
		{"none", person.CombinedPredicates{Name: "zed"}, "No clients found!", 0},
		{"one", person.CombinedPredicates{Name: "carl"}, "1 client listed!", 1},
		{"many", person.CombinedPredicates{Tags: []person.Tag{"friends"}}, "2 clients listed!", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := typicalModel(t)
			res := execute(t, m, &command.FindCommand{Predicates: tc.pred})
			assert.Equal(t, tc.want, res.Feedback)
			assert.Equal(t, command.KindPersonsListed, res.Kind)
			assert.Len(t, m.FilteredPersonList(), tc.n)
			assert.False(t, res.Mutates())
		})
	}

	t.Run("List restores all", func(t *testing.T) {
		m := typicalModel(t)
		execute(t, m, &command.FindCommand{Predicates: person.CombinedPredicates{Name: "zed"}})
		res := execute(t, m, &command.ListCommand{})
		assert.Equal(t, command.MessageListSuccess, res.Feedback)
		assert.Len(t, m.FilteredPersonList(), 3)
	})
}

func TestHeightCommand(t *testing.T) {
	m := typicalModel(t)

	res := execute(t, m, &command.HeightCommand{Index: first, Height: 165.5})
	assert.Equal(t, command.EditHeight, res.Edit)
	assert.Equal(t, person.Height(165.5), m.FilteredPersonList()[0].Height())

	res = execute(t, m, &command.HeightCommand{Index: first})
	assert.False(t, m.FilteredPersonList()[0].Height().IsSet())
	assert.Contains(t, res.Feedback, "Removed height")

	assertExecutionError(t, m, &command.HeightCommand{Index: first}, command.MessageNoHeightToRemove)
}

func TestNoteCommand(t *testing.T) {
	third := core.IndexFromOneBased(3)

	t.Run("No note requests edit", func(t *testing.T) {
		m := typicalModel(t)
		res := execute(t, m, &command.NoteCommand{Index: third})
		assert.Equal(t, command.KindNoteEditRequested, res.Kind)
		assert.Equal(t, "note 3 nt/Knee injury", res.Prefill)
		assert.False(t, res.Mutates())
	})

	t.Run("Replaces note", func(t *testing.T) {
		m := typicalModel(t)
		note := person.Note("Prefers mornings")
		res := execute(t, m, &command.NoteCommand{Index: third, Note: &note})
		assert.Equal(t, command.EditNote, res.Edit)
		assert.Equal(t, note, m.FilteredPersonList()[2].Note())
	})

	t.Run("Empty note removes", func(t *testing.T) {
		m := typicalModel(t)
		empty := person.Note("")
		res := execute(t, m, &command.NoteCommand{Index: third, Note: &empty})
		assert.Empty(t, m.FilteredPersonList()[2].Note())
		assert.Contains(t, res.Feedback, "Removed note")
	})
}

func TestEditCommand(t *testing.T) {
	t.Run("Overwrites given fields only", func(t *testing.T) {
		m := typicalModel(t)
		phone := person.Phone("91234567")
		tags := []person.Tag{}
		res := execute(t, m, &command.EditCommand{
			Index:      second,
			Descriptor: command.EditDescriptor{Phone: &phone, Tags: &tags},
		})

		benson := m.FilteredPersonList()[1]
		assert.Equal(t, phone, benson.Phone())
		assert.Empty(t, benson.Tags())
		assert.Equal(t, person.Height(180), benson.Height(), "fitness fields survive edits")
		assert.Equal(t, 2, benson.Weights().Len())
		assert.Equal(t, command.EditFields, res.Edit)
	})

	t.Run("Duplicate name", func(t *testing.T) {
		m := typicalModel(t)
		name := person.Name("alice pauline")
		assertExecutionError(t, m, &command.EditCommand{
			Index:      second,
			Descriptor: command.EditDescriptor{Name: &name},
		}, command.MessageDuplicatePerson)
	})
}

func TestAddDeleteClear(t *testing.T) {
	m := typicalModel(t)

	daniel := person.NewBuilder("Daniel Meier", "87652533").Build()
	res := execute(t, m, &command.AddCommand{Person: daniel})
	assert.Equal(t, command.KindPersonAdded, res.Kind)
	assert.Len(t, m.FilteredPersonList(), 4)

	assertExecutionError(t, m, &command.AddCommand{Person: person.NewBuilder("DANIEL MEIER", "1234").Build()},
		command.MessageDuplicatePerson)

	res = execute(t, m, &command.DeleteCommand{Index: core.IndexFromOneBased(4)})
	assert.Equal(t, command.KindPersonDeleted, res.Kind)
	assert.False(t, m.HasPerson(daniel))

	assertExecutionError(t, m, &command.DeleteCommand{Index: core.IndexFromOneBased(4)},
		command.MessageInvalidPersonDisplayedIndex)

	res = execute(t, m, &command.ClearCommand{})
	assert.Equal(t, command.KindCleared, res.Kind)
	assert.Empty(t, m.FilteredPersonList())
}

func TestFitAddCommand(t *testing.T) {
	third := core.IndexFromOneBased(3)

	t.Run("Partial update keeps existing values", func(t *testing.T) {
		m := typicalModel(t)
		sets := 5
		res := execute(t, m, &command.FitAddCommand{
			Index:     third,
			Exercises: []person.ExerciseToAdd{{Name: "squats", Sets: &sets}},
		})
		assert.Equal(t, command.KindExercisesAdded, res.Kind)

		ex, ok := m.FilteredPersonList()[2].Exercises().Get("squats")
		require.True(t, ok)
		assert.Equal(t, person.Exercise{Name: "squats", Sets: 5, Reps: 8, BreakSeconds: 90}, ex)
	})

	t.Run("Default bundle", func(t *testing.T) {
		m := typicalModel(t)
		execute(t, m, &command.FitAddCommand{Index: first, Exercises: person.DefaultExercises(person.GroupArm)})
		assert.Equal(t, len(person.DefaultExercises(person.GroupArm)), m.FilteredPersonList()[0].Exercises().Len())
	})

	t.Run("Bundle keeps customised exercise", func(t *testing.T) {
		m := typicalModel(t)
		execute(t, m, &command.FitAddCommand{Index: third, Exercises: person.DefaultExercises(person.GroupLeg)})

		exercises := m.FilteredPersonList()[2].Exercises()
		squats, ok := exercises.Get("squats")
		require.True(t, ok)
		assert.Equal(t, person.Exercise{Name: "squats", Sets: 4, Reps: 8, BreakSeconds: 90}, squats)

		lunges, ok := exercises.Get("lunges")
		require.True(t, ok)
		assert.Equal(t, person.Exercise{
			Name: "lunges", Sets: person.DefaultSets, Reps: person.DefaultReps, BreakSeconds: person.DefaultBreakSeconds,
		}, lunges)
	})
}

func TestFitDeleteCommand(t *testing.T) {
	third := core.IndexFromOneBased(3)

	t.Run("By name", func(t *testing.T) {
		m := typicalModel(t)
		res := execute(t, m, &command.FitDeleteCommand{Index: third, ExerciseName: "squats"})
		assert.Equal(t, command.KindExercisesDeleted, res.Kind)
		assert.True(t, m.FilteredPersonList()[2].Exercises().IsEmpty())
	})

	t.Run("Unknown name", func(t *testing.T) {
		m := typicalModel(t)
		assertExecutionError(t, m, &command.FitDeleteCommand{Index: third, ExerciseName: "lunges"},
			"Exercise 'lunges' was not found for this client.")
	})

	t.Run("All on empty set", func(t *testing.T) {
		m := typicalModel(t)
		assertExecutionError(t, m, &command.FitDeleteCommand{Index: first}, command.MessageNoExercisesToDelete)
	})

	t.Run("All", func(t *testing.T) {
		m := typicalModel(t)
		execute(t, m, &command.FitDeleteCommand{Index: third})
		assert.True(t, m.FilteredPersonList()[2].Exercises().IsEmpty())
	})
}

func TestHelpExit(t *testing.T) {
	m := typicalModel(t)
	assert.True(t, execute(t, m, &command.HelpCommand{}).ShowHelp())
	assert.True(t, execute(t, m, &command.ExitCommand{}).Exit())
	assert.Contains(t, command.HelpText(), command.FitAddUsage)
}
