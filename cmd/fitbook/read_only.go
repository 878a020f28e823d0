package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/fitbook"
)

// withReadOnlyDefault opens the data file read-only for commands that only
// inspect it, unless --read-only was given explicitly.
func withReadOnlyDefault(cmd *cobra.Command) fitbook.Option {
	if cmd.Flags().Changed("read-only") {
		return fitbook.WithReadOnly(readOnly)
	}
	return fitbook.WithReadOnly(true)
}
