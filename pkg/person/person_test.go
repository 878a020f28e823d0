package person_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fitbook/pkg/person"
)

var t0 = time.Date(2024, 3, 27, 10, 15, 30, 0, time.UTC)

func TestValidators(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string) bool
		valid []string
		bad   []string
	}{
		{"name", person.IsValidName, []string{"Alex Yeoh", "peter jack 2"}, []string{"", " ", "^", "peter*"}},
		{"phone", person.IsValidPhone, []string{"911", "93121534"}, []string{"", "91", "phone", "9011p041", "9312 1534"}},
		{"email", person.IsValidEmail, []string{"alex@example.com", "a+b.c@my-site.co", "PeterJack_1190@example.com"},
			[]string{"", "@example.com", "peterjack@", "peter jack@example.com", "peterjack@-example.com", "a@b"}},
		{"address", person.IsValidAddress, []string{"Blk 456, Den Road, #01-355", "-"}, []string{"", " "}},
		{"tag", person.IsValidTag, []string{"friends", "gym2"}, []string{"", "best friend", "#"}},
		{"height", person.IsValidHeight, []string{"170", "170.5", ".5", "0"}, []string{"", "-1", "abc", "1.2.3"}},
		{"weight", person.IsValidWeight, []string{"70.5", "0", "5000"}, []string{"", "-1", "5000.1", "seventy"}},
		{"sets", person.IsValidSets, []string{"1", "12"}, []string{"0", "-1", "", "1.5"}},
		{"break", person.IsValidBreak, []string{"0", "90"}, []string{"-1", "", "a"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range tc.valid {
				assert.True(t, tc.fn(v), "expected %q to be valid", v)
			}
			for _, v := range tc.bad {
				assert.False(t, tc.fn(v), "expected %q to be invalid", v)
			}
		})
	}
}

func TestWeightMap(t *testing.T) {
	t.Run("Put keeps chronological order", func(t *testing.T) {
		m := person.NewWeightMap(
			person.WeightEntry{Time: t0.Add(2 * time.Hour), Value: 72},
			person.WeightEntry{Time: t0, Value: 70},
			person.WeightEntry{Time: t0.Add(time.Hour), Value: 71},
		)

		entries := m.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, person.Weight(70), entries[0].Value)
		assert.Equal(t, person.Weight(71), entries[1].Value)
		assert.Equal(t, person.Weight(72), entries[2].Value)

		latest, ok := m.Latest()
		require.True(t, ok)
		assert.Equal(t, person.Weight(72), latest.Value)
	})

	t.Run("Put replaces same timestamp", func(t *testing.T) {
		m := person.NewWeightMap().Put(t0, 70).Put(t0, 75)
		require.Equal(t, 1, m.Len())
		latest, _ := m.Latest()
		assert.Equal(t, person.Weight(75), latest.Value)
	})

	t.Run("Put truncates to seconds", func(t *testing.T) {
		m := person.NewWeightMap().
			Put(t0.Add(100*time.Millisecond), 70).
			Put(t0.Add(400*time.Millisecond), 75)
		require.Equal(t, 1, m.Len())
		latest, _ := m.Latest()
		assert.Equal(t, person.WeightEntry{Time: t0, Value: 75}, latest)
	})

	t.Run("Put does not mutate receiver", func(t *testing.T) {
		base := person.NewWeightMap().Put(t0, 70)
		_ = base.Put(t0.Add(time.Hour), 80)
		assert.Equal(t, 1, base.Len())
	})

	t.Run("WithoutLatest removes last entry only", func(t *testing.T) {
		m := person.NewWeightMap().Put(t0, 70).Put(t0.Add(time.Hour), 71)
		trimmed, ok := m.WithoutLatest()
		require.True(t, ok)
		assert.Equal(t, 1, trimmed.Len())
		latest, _ := trimmed.Latest()
		assert.Equal(t, person.Weight(70), latest.Value)
		assert.Equal(t, 2, m.Len())
	})

	t.Run("WithoutLatest on empty history", func(t *testing.T) {
		_, ok := person.NewWeightMap().WithoutLatest()
		assert.False(t, ok)
	})
}

func TestExerciseSet(t *testing.T) {
	sets := 5
	set := person.NewExerciseSet().With(person.NewExerciseToAdd("Squats", 4, 8, 90))

	ex, ok := set.Get("squats")
	require.True(t, ok)
	assert.Equal(t, person.Exercise{Name: "squats", Sets: 4, Reps: 8, BreakSeconds: 90}, ex)

	// Partial update keeps existing values.
	updated := set.With(person.ExerciseToAdd{Name: "squats", Sets: &sets})
	ex, _ = updated.Get("squats")
	assert.Equal(t, person.Exercise{Name: "squats", Sets: 5, Reps: 8, BreakSeconds: 90}, ex)

	// New exercise falls back to defaults.
	withNew := updated.With(person.ExerciseToAdd{Name: "lunges"})
	ex, _ = withNew.Get("lunges")
	assert.Equal(t, person.DefaultSets, ex.Sets)
	assert.Equal(t, person.DefaultReps, ex.Reps)
	assert.Equal(t, person.DefaultBreakSeconds, ex.BreakSeconds)

	assert.False(t, withNew.Without("lunges").Contains("lunges"))
	assert.True(t, withNew.Contains("lunges"), "Without must not mutate receiver")
}

func TestDefaultExercises(t *testing.T) {
	total := 0
	for _, g := range person.MuscleGroups {
		bundle := person.DefaultExercises(g)
		assert.NotEmpty(t, bundle, g)
		total += len(bundle)
	}
	assert.Len(t, person.DefaultExercises(person.GroupAll), total)
	assert.Nil(t, person.DefaultExercises("neck"))
}

func TestBuilder(t *testing.T) {
	alice := person.NewBuilder("Alice Pauline", "94351253").
		Email("alice@example.com").
		Tags("friends", "friends", "gym").
		Build()

	assert.Equal(t, []person.Tag{"friends", "gym"}, alice.Tags())
	assert.Equal(t, "Alice Pauline; Phone: 94351253; Email: alice@example.com; Tags: [friends][gym]",
		alice.Formatted())

	edited := person.From(alice).Height(165).Build()
	assert.NotSame(t, alice, edited)
	assert.False(t, alice.Height().IsSet())
	assert.Equal(t, person.Height(165), edited.Height())
	assert.True(t, alice.IsSamePerson(edited))
	assert.False(t, alice.Equal(edited))

	other := person.NewBuilder("ALICE PAULINE", "1234").Build()
	assert.True(t, alice.IsSamePerson(other))
}

func TestHeightFormatting(t *testing.T) {
	assert.Equal(t, "N/A", person.Height(0).Formatted())
	assert.Equal(t, "Height: 170.5", person.Height(170.5).Formatted())
	assert.True(t, person.Height(170).InRange(person.HeightRange{Min: 160, Max: 170}))
	assert.False(t, person.Height(171).InRange(person.HeightRange{Min: 160, Max: 170}))
}

func TestCombinedPredicates(t *testing.T) {
	alice := person.NewBuilder("Alice Pauline", "94351253").
		Tags("friends").
		Height(165).
		Weights(person.NewWeightMap().Put(t0, 60)).
		Build()
	bob := person.NewBuilder("Bob Choo", "22222222").Build()

	tests := []struct {
		name  string
		pred  person.CombinedPredicates
		alice bool
		bob   bool
	}{
		{"name substring ignores case", person.CombinedPredicates{Name: "PAUL"}, true, false},
		{"phone substring", person.CombinedPredicates{Phone: "222"}, false, true},
		{"tag", person.CombinedPredicates{Tags: []person.Tag{"Friends"}}, true, false},
		{"weight range", person.CombinedPredicates{WeightRange: &person.WeightRange{Min: 50, Max: 65}}, true, false},
		{"height range miss", person.CombinedPredicates{HeightRange: &person.HeightRange{Min: 170, Max: 180}}, false, false},
		{"conjunction", person.CombinedPredicates{Name: "alice", Phone: "222"}, false, false},
		{"empty matches all", person.CombinedPredicates{}, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.alice, tc.pred.Test(alice))
			assert.Equal(t, tc.bob, tc.pred.Test(bob))
		})
	}
}
