package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/fitbook"
	"github.com/aretw0/fitbook/pkg/adapters/fs"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recorded changes of the data file",
	Long:  `List the git commits recording each change to the data file. Requires --versioned (or versioned: true in the config file).`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd.Context(), cmd, fitbook.WithMustExist(true))

		repo, ok := app.Repository.(*fs.Repository)
		if !ok {
			fatal("History unavailable", errors.New("storage does not keep history"))
		}

		revs, err := repo.History(cmd.Context(), historyLimit)
		if err != nil {
			fatal("Failed to read history", err)
		}
		for _, r := range revs {
			fmt.Printf("%s  %s  %s\n", r.Hash, r.When.Format("2006-01-02 15:04"), r.Message)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of entries (0 for all)")
}
