package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/fitbook"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fitbook",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fitbook version %s\n", strings.TrimSpace(fitbook.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
