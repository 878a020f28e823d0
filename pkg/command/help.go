package command

import "github.com/aretw0/fitbook/pkg/core"

const (
	HelpWord  = "help"
	HelpUsage = HelpWord + ": Shows program usage instructions.\n" +
		"Example: " + HelpWord

	MessageShowingHelp = "Opened help window."

	ExitWord  = "exit"
	ExitUsage = ExitWord + ": Exits the program.\n" +
		"Example: " + ExitWord

	MessageExitAcknowledgement = "Exiting FitBook as requested ..."
)

type HelpCommand struct{}

func (c *HelpCommand) Execute(core.Model) (Result, error) {
	return Result{Kind: KindHelpRequested, Feedback: MessageShowingHelp}, nil
}

type ExitCommand struct{}

func (c *ExitCommand) Execute(core.Model) (Result, error) {
	return Result{Kind: KindExitRequested, Feedback: MessageExitAcknowledgement}, nil
}
