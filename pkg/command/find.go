package command

import (
	"fmt"

	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/person"
)

const (
	FindWord  = "find"
	FindUsage = FindWord + ": Finds all clients matching every given field (case-insensitive substring match) " +
		"and displays them as a list with index numbers.\n" +
		"Parameters: [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]... [w/MIN-MAX] [h/MIN-MAX] [nt/NOTE]\n" +
		"Example: " + FindWord + " n/alice t/friends w/50-70"
)

// FindCommand filters the displayed list down to persons matching
// Predicates.
type FindCommand struct {
	Predicates person.CombinedPredicates
}

func (c *FindCommand) Execute(m core.Model) (Result, error) {
	m.UpdateFilteredPersonList(c.Predicates.Test)
	return Result{Kind: KindPersonsListed, Feedback: findMessage(len(m.FilteredPersonList()))}, nil
}

func findMessage(n int) string {
	switch n {
	case 0:
		return MessageNoClientsFound
	case 1:
		return MessageOneClientFound
	default:
		return fmt.Sprintf(MessagePersonsFoundOverview, n)
	}
}
