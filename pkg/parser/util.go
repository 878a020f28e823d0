package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

const (
	MessageInvalidIndex       = "Index is not a non-zero unsigned integer."
	MessageInvalidWeightRange = "Weight range should be MIN-MAX or a single value, " +
		"with MIN not greater than MAX. " + person.WeightConstraints
	MessageInvalidHeightRange = "Height range should be MIN-MAX or a single value, " +
		"with MIN not greater than MAX. " + person.HeightConstraints
)

// ParseIndex parses a one-based index. Leading and trailing whitespace is
// ignored; signs are not allowed.
func ParseIndex(oneBased string) (core.Index, error) {
	s := strings.TrimSpace(oneBased)
	if strings.HasPrefix(s, "+") {
		return core.Index{}, newParseError(MessageInvalidIndex)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return core.Index{}, wrapParseError(MessageInvalidIndex, err)
	}
	if n <= 0 {
		return core.Index{}, newParseError(MessageInvalidIndex)
	}
	return core.IndexFromOneBased(n), nil
}

func ParseName(s string) (person.Name, error) {
	s = strings.TrimSpace(s)
	if !person.IsValidName(s) {
		return "", newParseError(person.NameConstraints)
	}
	return person.Name(s), nil
}

// ParsePhone removes every whitespace character before validating, so
// "9123 4567" is accepted.
func ParsePhone(s string) (person.Phone, error) {
	s = strings.Join(strings.Fields(s), "")
	if !person.IsValidPhone(s) {
		return "", newParseError(person.PhoneConstraints)
	}
	return person.Phone(s), nil
}

// ParseEmail returns the empty Email when the prefix was not given.
func ParseEmail(s string, given bool) (person.Email, error) {
	if !given {
		return "", nil
	}
	s = strings.TrimSpace(s)
	if !person.IsValidEmail(s) {
		return "", newParseError(person.EmailConstraints)
	}
	return person.Email(s), nil
}

// ParseAddress returns the empty Address when the prefix was not given.
func ParseAddress(s string, given bool) (person.Address, error) {
	if !given {
		return "", nil
	}
	s = strings.TrimSpace(s)
	if !person.IsValidAddress(s) {
		return "", newParseError(person.AddressConstraints)
	}
	return person.Address(s), nil
}

// ParseNote accepts any text, including the empty note.
func ParseNote(s string) person.Note {
	return person.Note(strings.TrimSpace(s))
}

// ParseHeight returns the unset Height for empty input.
func ParseHeight(s string) (person.Height, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if !person.IsValidHeight(s) {
		return 0, newParseError(person.HeightConstraints)
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, wrapParseError(person.HeightConstraints, err)
	}
	return person.Height(h), nil
}

// ParseWeight returns the zero Weight for empty input.
func ParseWeight(s string) (person.Weight, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if !person.IsValidWeight(s) {
		return 0, newParseError(person.WeightConstraints)
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, wrapParseError(person.WeightConstraints, err)
	}
	return person.Weight(w), nil
}

func ParseTag(s string) (person.Tag, error) {
	s = strings.TrimSpace(s)
	if !person.IsValidTag(s) {
		return "", newParseError(person.TagConstraints)
	}
	return person.Tag(s), nil
}

func ParseTags(values []string) ([]person.Tag, error) {
	tags := make([]person.Tag, 0, len(values))
	for _, v := range values {
		t, err := ParseTag(v)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// ParseExerciseName returns the lower-cased, trimmed name.
func ParseExerciseName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !person.IsValidExerciseName(s) {
		return "", newParseError(person.ExerciseNameConstraint)
	}
	return strings.ToLower(s), nil
}

// ParseExerciseSets returns nil when the prefix was not given.
func ParseExerciseSets(s string, given bool) (*int, error) {
	return parseOptionalInt(s, given, person.IsValidSets, person.ExerciseSetsConstraint)
}

// ParseExerciseReps returns nil when the prefix was not given.
func ParseExerciseReps(s string, given bool) (*int, error) {
	return parseOptionalInt(s, given, person.IsValidReps, person.ExerciseRepsConstraint)
}

// ParseExerciseBreak returns nil when the prefix was not given.
func ParseExerciseBreak(s string, given bool) (*int, error) {
	return parseOptionalInt(s, given, person.IsValidBreak, person.ExerciseBreakConstraint)
}

func parseOptionalInt(s string, given bool, valid func(string) bool, constraint string) (*int, error) {
	if !given {
		return nil, nil
	}
	s = strings.TrimSpace(s)
	if !valid(s) {
		return nil, newParseError(constraint)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, wrapParseError(constraint, err)
	}
	return &n, nil
}

// ParseWeightRange parses "MIN-MAX" or a single value meaning MIN = MAX.
func ParseWeightRange(s string) (person.WeightRange, error) {
	lo, hi, err := parseRange(s, ParseWeight)
	if err != nil {
		return person.WeightRange{}, wrapParseError(MessageInvalidWeightRange, err)
	}
	return person.WeightRange{Min: float64(lo), Max: float64(hi)}, nil
}

// ParseHeightRange parses "MIN-MAX" or a single value meaning MIN = MAX.
func ParseHeightRange(s string) (person.HeightRange, error) {
	lo, hi, err := parseRange(s, ParseHeight)
	if err != nil {
		return person.HeightRange{}, wrapParseError(MessageInvalidHeightRange, err)
	}
	return person.HeightRange{Min: float64(lo), Max: float64(hi)}, nil
}

func parseRange[T ~float64](s string, parse func(string) (T, error)) (T, T, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, errors.New("empty range")
	}
	loText, hiText, isRange := strings.Cut(s, "-")
	if !isRange {
		hiText = loText
	}
	if strings.TrimSpace(loText) == "" || strings.TrimSpace(hiText) == "" {
		return 0, 0, fmt.Errorf("range %q: missing bound", s)
	}
	lo, err := parse(loText)
	if err != nil {
		return 0, 0, err
	}
	hi, err := parse(hiText)
	if err != nil {
		return 0, 0, err
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("range %q: min above max", s)
	}
	return lo, hi, nil
}

// ParseSearchString trims a find keyword.
func ParseSearchString(s string) string {
	return strings.TrimSpace(s)
}
