package core

import "errors"

// Common errors.
var (
	ErrReadOnly        = errors.New("repository is in read-only mode")
	ErrDuplicatePerson = errors.New("person already exists in the address book")
	ErrPersonNotFound  = errors.New("person not found in the address book")
	ErrNoData          = errors.New("no address book data found")
)
