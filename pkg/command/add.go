package command

import (
	"errors"
	"fmt"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

const (
	AddWord  = "add"
	AddUsage = AddWord + ": Adds a client to FitBook.\n" +
		"Parameters: n/NAME p/PHONE [e/EMAIL] [a/ADDRESS] [w/WEIGHT] [h/HEIGHT] [nt/NOTE] [t/TAG]...\n" +
		"Example: " + AddWord + " n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 " +
		"w/70.5 h/175 nt/Prefers morning sessions t/friends"

	MessageAddSuccess = "New client added: %s"
)

// AddCommand adds a new person to the address book.
type AddCommand struct {
	Person *person.Person
}

func (c *AddCommand) Execute(m core.Model) (Result, error) {
	if err := m.AddPerson(c.Person); err != nil {
		if errors.Is(err, core.ErrDuplicatePerson) {
			return Result{}, &ExecutionError{Msg: MessageDuplicatePerson, Err: err}
		}
		return Result{}, &ExecutionError{Msg: err.Error(), Err: err}
	}
	return Result{
		Kind:     KindPersonAdded,
		Feedback: fmt.Sprintf(MessageAddSuccess, c.Person.Formatted()),
	}, nil
}
