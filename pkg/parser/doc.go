// Package parser turns a command line into a command.Command.
//
// Arguments are split by Tokenize into a preamble and an ArgumentMultimap
// keyed by Prefix. Each command parser then validates the tokens with the
// Parse* helpers and builds its command, failing with a *ParseError on the
// first problem found.
package parser
