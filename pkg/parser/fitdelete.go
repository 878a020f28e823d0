package parser

import "github.com/aretw0/fitbook/pkg/command"

// FitDeleteCommandParser parses "INDEX n/NAME" or "INDEX all/".
type FitDeleteCommandParser struct{}

func (p *FitDeleteCommandParser) Parse(args string) (*command.FitDeleteCommand, error) {
	m := Tokenize(args, PrefixExerciseName, PrefixExerciseAll)

	idx, err := parseIndexPreamble(m, indexMessages{
		noIndex:      command.MessageNoIndexFitDelete,
		invalidIndex: command.MessageInvalidIndexFitDelete,
		usage:        command.FitDeleteUsage,
	})
	if err != nil {
		return nil, err
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixExerciseName, PrefixExerciseAll); err != nil {
		return nil, err
	}
	if m.HasArgumentValueForPrefixes(PrefixExerciseAll) {
		return nil, invalidFormat(command.FitDeleteUsage)
	}

	hasName, hasAll := m.Contains(PrefixExerciseName), m.Contains(PrefixExerciseAll)
	switch {
	case hasName && hasAll:
		return nil, newParseError(command.MessageFitDeletePrefixConflict)
	case !hasName && !hasAll:
		return nil, newParseError(command.MessageFitDeleteMissing)
	case hasAll:
		return &command.FitDeleteCommand{Index: idx}, nil
	}

	name, err := ParseExerciseName(m.ValueOrEmpty(PrefixExerciseName))
	if err != nil {
		return nil, err
	}
	return &command.FitDeleteCommand{Index: idx, ExerciseName: name}, nil
}
