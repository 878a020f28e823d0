package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/fitbook/pkg/command"
	"github.com/aretw0/fitbook/pkg/parser"
)

var execCmd = &cobra.Command{
	Use:   "exec <command line>",
	Short: "Run a single FitBook command",
	Long: `Run one command exactly as it would be typed in the shell and exit.
Arguments are joined with spaces, so quoting is optional:

  fitbook exec add n/Alex Yeoh p/87438807
  fitbook exec "weight 1 w/72.5"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd.Context(), cmd)

		res, err := app.Execute(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			printError(os.Stderr, err)
			var pe *parser.ParseError
			var ee *command.ExecutionError
			if errors.As(err, &pe) || errors.As(err, &ee) {
				os.Exit(2)
			}
			os.Exit(1)
		}
		printResult(os.Stdout, res, app.FilteredPersonList())
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
