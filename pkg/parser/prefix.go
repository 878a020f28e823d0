package parser

// Prefix marks the start of an argument, such as "n/" in "add n/James".
// The empty prefix keys the preamble.
type Prefix string

func (p Prefix) String() string { return string(p) }

const preamblePrefix Prefix = ""

// Command line prefixes.
const (
	PrefixName    Prefix = "n/"
	PrefixPhone   Prefix = "p/"
	PrefixEmail   Prefix = "e/"
	PrefixAddress Prefix = "a/"
	PrefixTag     Prefix = "t/"
	PrefixWeight  Prefix = "w/"
	PrefixHeight  Prefix = "h/"
	PrefixNote    Prefix = "nt/"

	PrefixExerciseName  Prefix = "n/"
	PrefixExerciseSets  Prefix = "s/"
	PrefixExerciseReps  Prefix = "r/"
	PrefixExerciseBreak Prefix = "b/"

	PrefixExerciseArm      Prefix = "arm/"
	PrefixExerciseLeg      Prefix = "leg/"
	PrefixExerciseChest    Prefix = "chest/"
	PrefixExerciseBack     Prefix = "back/"
	PrefixExerciseShoulder Prefix = "shoulder/"
	PrefixExerciseAbs      Prefix = "abs/"
	PrefixExerciseAll      Prefix = "all/"
)

// defaultExercisePrefixes maps each bundle prefix to its muscle group, in
// display order.
var defaultExercisePrefixes = []struct {
	prefix Prefix
	group  string
}{
	{PrefixExerciseArm, "arm"},
	{PrefixExerciseLeg, "leg"},
	{PrefixExerciseChest, "chest"},
	{PrefixExerciseBack, "back"},
	{PrefixExerciseShoulder, "shoulder"},
	{PrefixExerciseAbs, "abs"},
	{PrefixExerciseAll, "all"},
}
