package person

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Exercise constraint messages.
const (
	ExerciseNameConstraint  = "Exercise name cannot be empty"
	ExerciseSetsConstraint  = "Exercise sets must be a positive integer"
	ExerciseRepsConstraint  = "Exercise reps must be a positive integer"
	ExerciseBreakConstraint = "Exercise break time must be a non-negative integer (seconds)"
)

// Values used when an exercise is first added without explicit fields.
const (
	DefaultSets         = 3
	DefaultReps         = 10
	DefaultBreakSeconds = 60
)

var (
	positiveIntRegex    = regexp.MustCompile(`^[1-9][0-9]{0,8}$`)
	nonNegativeIntRegex = regexp.MustCompile(`^[0-9]{1,9}$`)
)

// IsValidExerciseName reports whether s is a usable exercise name.
func IsValidExerciseName(s string) bool { return strings.TrimSpace(s) != "" }

// IsValidSets reports whether s is a positive integer.
func IsValidSets(s string) bool { return positiveIntRegex.MatchString(s) }

// IsValidReps reports whether s is a positive integer.
func IsValidReps(s string) bool { return positiveIntRegex.MatchString(s) }

// IsValidBreak reports whether s is a non-negative integer.
func IsValidBreak(s string) bool { return nonNegativeIntRegex.MatchString(s) }

// Exercise is a routine assigned to a client. Names are stored lower-case
// and identify the exercise within a client's set.
type Exercise struct {
	Name         string
	Sets         int
	Reps         int
	BreakSeconds int
}

func (e Exercise) String() string {
	return fmt.Sprintf("%s (sets: %d, reps: %d, break: %ds)", e.Name, e.Sets, e.Reps, e.BreakSeconds)
}

// ExerciseToAdd describes an exercise to create or update. Nil fields keep
// the current value of an existing exercise, or take the defaults.
type ExerciseToAdd struct {
	Name         string
	Sets         *int
	Reps         *int
	BreakSeconds *int
}

// NewExerciseToAdd builds a fully specified ExerciseToAdd.
func NewExerciseToAdd(name string, sets, reps, breakSeconds int) ExerciseToAdd {
	return ExerciseToAdd{
		Name:         strings.ToLower(name),
		Sets:         &sets,
		Reps:         &reps,
		BreakSeconds: &breakSeconds,
	}
}

// Resolve merges e over base. base may be nil when the exercise is new.
func (e ExerciseToAdd) Resolve(base *Exercise) Exercise {
	out := Exercise{
		Name:         e.Name,
		Sets:         DefaultSets,
		Reps:         DefaultReps,
		BreakSeconds: DefaultBreakSeconds,
	}
	if base != nil {
		out.Sets, out.Reps, out.BreakSeconds = base.Sets, base.Reps, base.BreakSeconds
	}
	if e.Sets != nil {
		out.Sets = *e.Sets
	}
	if e.Reps != nil {
		out.Reps = *e.Reps
	}
	if e.BreakSeconds != nil {
		out.BreakSeconds = *e.BreakSeconds
	}
	return out
}

// ExerciseSet is an immutable set of exercises keyed by name.
type ExerciseSet struct {
	byName map[string]Exercise
}

// NewExerciseSet builds a set; later duplicates replace earlier ones.
func NewExerciseSet(exercises ...Exercise) ExerciseSet {
	s := ExerciseSet{byName: make(map[string]Exercise, len(exercises))}
	for _, e := range exercises {
		s.byName[e.Name] = e
	}
	return s
}

// Len returns the number of exercises.
func (s ExerciseSet) Len() int { return len(s.byName) }

// IsEmpty reports whether the set holds no exercises.
func (s ExerciseSet) IsEmpty() bool { return len(s.byName) == 0 }

// Get looks up an exercise by name.
func (s ExerciseSet) Get(name string) (Exercise, bool) {
	e, ok := s.byName[strings.ToLower(name)]
	return e, ok
}

// Contains reports whether name is in the set.
func (s ExerciseSet) Contains(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Sorted returns the exercises ordered by name.
func (s ExerciseSet) Sorted() []Exercise {
	out := make([]Exercise, 0, len(s.byName))
	for _, e := range s.byName {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// With returns a copy of s with every exercise in toAdd merged in.
func (s ExerciseSet) With(toAdd ...ExerciseToAdd) ExerciseSet {
	out := s.clone()
	for _, add := range toAdd {
		var base *Exercise
		if cur, ok := out.byName[add.Name]; ok {
			base = &cur
		}
		out.byName[add.Name] = add.Resolve(base)
	}
	return out
}

// Without returns a copy of s with name removed.
func (s ExerciseSet) Without(name string) ExerciseSet {
	out := s.clone()
	delete(out.byName, strings.ToLower(name))
	return out
}

func (s ExerciseSet) clone() ExerciseSet {
	out := ExerciseSet{byName: make(map[string]Exercise, len(s.byName)+1)}
	for k, v := range s.byName {
		out.byName[k] = v
	}
	return out
}

// Muscle groups with a default exercise bundle.
const (
	GroupArm      = "arm"
	GroupLeg      = "leg"
	GroupChest    = "chest"
	GroupBack     = "back"
	GroupShoulder = "shoulder"
	GroupAbs      = "abs"
	GroupAll      = "all"
)

// MuscleGroups lists the bundles in display order. GroupAll is not included.
var MuscleGroups = []string{GroupArm, GroupLeg, GroupChest, GroupBack, GroupShoulder, GroupAbs}

var defaultBundles = map[string][]string{
	GroupArm:      {"bicep curls", "tricep extensions", "hammer curls"},
	GroupLeg:      {"squats", "lunges", "leg press"},
	GroupChest:    {"bench press", "push ups", "chest fly"},
	GroupBack:     {"deadlifts", "pull ups", "bent over rows"},
	GroupShoulder: {"shoulder press", "lateral raises", "front raises"},
	GroupAbs:      {"crunches", "planks", "leg raises"},
}

// DefaultExercises returns the bundle for a muscle group. GroupAll returns
// the union of every bundle. Unknown groups return nil. Entries carry only
// a name, so an exercise the person already has keeps its values.
func DefaultExercises(group string) []ExerciseToAdd {
	if group == GroupAll {
		var out []ExerciseToAdd
		for _, g := range MuscleGroups {
			out = append(out, DefaultExercises(g)...)
		}
		return out
	}
	names, ok := defaultBundles[group]
	if !ok {
		return nil
	}
	out := make([]ExerciseToAdd, 0, len(names))
	for _, n := range names {
		out = append(out, ExerciseToAdd{Name: n})
	}
	return out
}
