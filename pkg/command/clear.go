package command

import "github.com/aretw0/fitbook/pkg/core"

const (
	ClearWord  = "clear"
	ClearUsage = ClearWord + ": Removes every client from FitBook.\n" +
		"Example: " + ClearWord

	MessageClearSuccess = "FitBook has been cleared!"
)

type ClearCommand struct{}

func (c *ClearCommand) Execute(m core.Model) (Result, error) {
	empty, err := core.NewAddressBook()
	if err != nil {
		return Result{}, &ExecutionError{Msg: err.Error(), Err: err}
	}
	m.SetAddressBook(empty)
	return Result{Kind: KindCleared, Feedback: MessageClearSuccess}, nil
}
