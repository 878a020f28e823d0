package command

import "strings"

// Messages shared by several commands and parsers.
const (
	MessageUnknownCommand              = "Unknown command"
	MessageInvalidCommandFormat        = "Invalid command format! \n%s"
	MessageInvalidPersonDisplayedIndex = "The client index provided is invalid"
	MessageDuplicatePerson             = "This client already exists in FitBook"
	MessageDuplicateFields             = "Multiple values specified for the following single-valued field(s): "

	MessageNoClientsFound       = "No clients found!"
	MessageOneClientFound       = "1 client listed!"
	MessagePersonsFoundOverview = "%d clients listed!"
)

// Usages lists every command's usage text in help order.
var Usages = []string{
	AddUsage,
	EditUsage,
	DeleteUsage,
	ListUsage,
	FindUsage,
	WeightUsage,
	HeightUsage,
	NoteUsage,
	FitAddUsage,
	FitDeleteUsage,
	ClearUsage,
	HelpUsage,
	ExitUsage,
}

// HelpText renders the usage of every command.
func HelpText() string {
	return strings.Join(Usages, "\n\n")
}
