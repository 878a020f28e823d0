// Package command holds the executable FitBook commands.
//
// A command is produced by package parser after all user input has been
// validated. Executing it against a core.Model either applies the whole
// change and returns a tagged Result, or fails with an *ExecutionError and
// leaves the model untouched.
package command
