package parser

import (
	"github.com/aretw0/fitbook/pkg/command"
	"github.com/aretw0/fitbook/pkg/person"
)

func defaultPrefixes() []Prefix {
	out := make([]Prefix, 0, len(defaultExercisePrefixes))
	for _, d := range defaultExercisePrefixes {
		out = append(out, d.prefix)
	}
	return out
}

// FitAddCommandParser parses either a named exercise
// "INDEX n/NAME [s/] [r/] [b/]" or default bundles "INDEX arm/ leg/ ...".
type FitAddCommandParser struct{}

func (p *FitAddCommandParser) Parse(args string) (*command.FitAddCommand, error) {
	bundles := defaultPrefixes()
	prefixes := append([]Prefix{PrefixExerciseName, PrefixExerciseSets, PrefixExerciseReps, PrefixExerciseBreak},
		bundles...)
	m := Tokenize(args, prefixes...)

	idx, err := parseIndexPreamble(m, indexMessages{
		noIndex:      command.MessageNoIndexFitAdd,
		invalidIndex: command.MessageInvalidIndexFitAdd,
		usage:        command.FitAddUsage,
	})
	if err != nil {
		return nil, err
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixExerciseName, PrefixExerciseSets,
		PrefixExerciseReps, PrefixExerciseBreak); err != nil {
		return nil, err
	}
	if m.HasArgumentValueForPrefixes(bundles...) {
		return nil, invalidFormat(command.FitAddUsage)
	}

	hasName := m.Contains(PrefixExerciseName)
	hasBundle := m.ContainsAny(bundles...)
	hasOptions := m.ContainsAny(PrefixExerciseSets, PrefixExerciseReps, PrefixExerciseBreak)
	switch {
	case hasName && hasBundle:
		return nil, newParseError(command.MessageFitAddPrefixConflict)
	case hasOptions && !hasName:
		return nil, newParseError(command.MessageFitAddOptionsNoName)
	case !hasName && !hasBundle:
		return nil, newParseError(command.MessageFitAddMissing)
	}

	if hasBundle {
		return &command.FitAddCommand{Index: idx, Exercises: bundleExercises(m)}, nil
	}

	toAdd, err := parseExerciseToAdd(m)
	if err != nil {
		return nil, err
	}
	return &command.FitAddCommand{Index: idx, Exercises: []person.ExerciseToAdd{toAdd}}, nil
}

func parseExerciseToAdd(m *ArgumentMultimap) (person.ExerciseToAdd, error) {
	name, err := ParseExerciseName(m.ValueOrEmpty(PrefixExerciseName))
	if err != nil {
		return person.ExerciseToAdd{}, err
	}
	sets, err := ParseExerciseSets(m.Value(PrefixExerciseSets))
	if err != nil {
		return person.ExerciseToAdd{}, err
	}
	reps, err := ParseExerciseReps(m.Value(PrefixExerciseReps))
	if err != nil {
		return person.ExerciseToAdd{}, err
	}
	rest, err := ParseExerciseBreak(m.Value(PrefixExerciseBreak))
	if err != nil {
		return person.ExerciseToAdd{}, err
	}
	return person.ExerciseToAdd{Name: name, Sets: sets, Reps: reps, BreakSeconds: rest}, nil
}

// bundleExercises merges the bundles of every given group prefix. An
// exercise listed by two bundles is added once.
func bundleExercises(m *ArgumentMultimap) []person.ExerciseToAdd {
	seen := make(map[string]bool)
	var out []person.ExerciseToAdd
	for _, d := range defaultExercisePrefixes {
		if !m.Contains(d.prefix) {
			continue
		}
		for _, e := range person.DefaultExercises(d.group) {
			if !seen[e.Name] {
				seen[e.Name] = true
				out = append(out, e)
			}
		}
	}
	return out
}
