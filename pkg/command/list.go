package command

import "github.com/aretw0/fitbook/pkg/core"

const (
	ListWord  = "list"
	ListUsage = ListWord + ": Lists all clients.\n" +
		"Example: " + ListWord

	MessageListSuccess = "Listed all clients"
)

type ListCommand struct{}

func (c *ListCommand) Execute(m core.Model) (Result, error) {
	m.UpdateFilteredPersonList(core.ShowAllPersons)
	return Result{Kind: KindPersonsListed, Feedback: MessageListSuccess}, nil
}
