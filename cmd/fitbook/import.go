package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/fitbook/pkg/adapters/fs"
)

var importRoot string

var importCmd = &cobra.Command{
	Use:   "import <pattern>",
	Short: "Merge clients from other data files",
	Long: `Import every client found in the JSON, YAML or CSV files matching a glob
pattern (doublestar syntax, e.g. 'exports/**/*.csv'). Clients already in the
address book, by name, are skipped.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		files, err := fs.Discover(importRoot, args[0])
		if err != nil {
			fatal("Failed to find files", err)
		}
		if len(files) == 0 {
			fmt.Println("No data files matched", args[0])
			return
		}

		app := openApp(ctx, cmd)
		total, skippedTotal := 0, 0
		for _, f := range files {
			book, err := fs.ReadFile(f)
			if err != nil {
				fatal("Failed to read "+f, err)
			}
			added, skipped, err := app.Import(ctx, book)
			if err != nil {
				fatal("Failed to import "+f, err)
			}
			slog.Debug("imported file", "file", f, "added", added, "skipped", skipped)
			total += added
			skippedTotal += skipped
		}

		fmt.Printf("Imported %d clients from %d files (%d duplicates skipped).\n", total, len(files), skippedTotal)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importRoot, "root", ".", "Directory the pattern is relative to")
}
