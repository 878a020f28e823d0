// Package person holds the client domain values of FitBook.
//
// Every value is immutable. A Person is rebuilt through Builder on each
// edit, and the weight history (WeightMap) and exercise set (ExerciseSet)
// return modified copies instead of mutating in place. Zero-valued Weight
// and Height act as sentinels: a zero Weight asks for the latest entry to be
// removed, and a zero Height means "not recorded".
package person
