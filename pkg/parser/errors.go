package parser

import "fmt"

// ParseError reports input that does not follow the expected format. Msg is
// shown to the user as is.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string { return e.Msg }
func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(msg string) *ParseError {
	return &ParseError{Msg: msg}
}

func wrapParseError(msg string, err error) *ParseError {
	return &ParseError{Msg: msg, Err: err}
}

func invalidFormat(usage string) *ParseError {
	return newParseError(fmt.Sprintf(MessageInvalidCommandFormat, usage))
}

func invalidFormatWrap(usage string, err error) *ParseError {
	return wrapParseError(fmt.Sprintf(MessageInvalidCommandFormat, usage), err)
}
