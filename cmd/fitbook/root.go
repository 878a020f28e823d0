package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/fitbook"
	"github.com/aretw0/fitbook/internal/platform"
)

var (
	verbose   bool
	dataFile  string
	format    string
	readOnly  bool
	versioned bool
	watch     bool
	sample    bool

	// cfg is the preferences file merged with the environment. Loaded in
	// PersistentPreRun.
	cfg = &fitbook.Config{}
)

// rootCmd represents the base command when called without any subcommands.
// On its own it starts the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "fitbook",
	Short: "A contact manager for fitness coaches",
	Long: `FitBook keeps your clients' contact details, weight history, height,
notes and exercise plans in a single data file, driven by short text commands.

Run without arguments to start the interactive shell, or use 'fitbook exec'
for one-off commands.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loaded, err := fitbook.LoadConfig(".env")
		if err != nil {
			fatal("Failed to load configuration", err)
		}
		cfg = loaded

		level, err := platform.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			fatal("Invalid log level", err)
		}
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		if cfg.Source != "" {
			logger.Debug("configuration loaded", "file", cfg.Source)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(cmd.Context(), cmd)
		if err := runREPL(cmd.Context(), app); err != nil {
			fatal("Shell stopped", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVarP(&dataFile, "data-file", "f", "", "Address book file (default "+fitbook.DefaultDataFile+")")
	flags.StringVar(&format, "format", "", "Data file format: json, yaml or csv (default from extension)")
	flags.BoolVar(&readOnly, "read-only", false, "Never write the data file")
	flags.BoolVar(&versioned, "versioned", false, "Commit every change of the data file to git")
	flags.BoolVar(&watch, "watch", false, "Reload when the data file is edited by another process")
	flags.BoolVar(&sample, "sample", false, "Start with sample clients when no data file exists")
}

// options merges defaults, the config file, the environment and the flags,
// in increasing order of precedence.
func options(cmd *cobra.Command) []fitbook.Option {
	opts := []fitbook.Option{fitbook.WithLogger(slog.Default())}
	opts = append(opts, cfg.Options()...)

	flags := cmd.Flags()
	if flags.Changed("data-file") {
		opts = append(opts, fitbook.WithDataFile(dataFile))
	}
	if flags.Changed("format") {
		opts = append(opts, fitbook.WithFormat(format))
	}
	if flags.Changed("read-only") {
		opts = append(opts, fitbook.WithReadOnly(readOnly))
	}
	if flags.Changed("versioned") {
		opts = append(opts, fitbook.WithVersioning(versioned))
	}
	if flags.Changed("watch") {
		opts = append(opts, fitbook.WithWatch(watch))
	}
	if flags.Changed("sample") {
		opts = append(opts, fitbook.WithSampleData(sample))
	}
	return opts
}

func openApp(ctx context.Context, cmd *cobra.Command, extra ...fitbook.Option) *fitbook.App {
	app, err := fitbook.New(ctx, append(options(cmd), extra...)...)
	if err != nil {
		fatal("Failed to open address book", err)
	}
	return app
}
