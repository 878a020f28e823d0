package fitbook

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/fitbook/internal/platform"
	"github.com/aretw0/fitbook/pkg/core"
)

// --- Types ---

// App is a FitBook instance: storage, model and command execution wired
// together.
type App = platform.App

// Config is the user preferences file (fitbook.yaml or fitbook.toml).
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring FitBook.
type Option = platform.Option

// DefaultDataFile is used when no data file is configured.
const DefaultDataFile = platform.DefaultDataFile

// WithLogger sets the logger shared by storage and command execution.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithDataFile sets the path of the address book file.
func WithDataFile(path string) Option {
	return platform.WithDataFile(path)
}

// WithFormat forces the data file format (json, yaml or csv).
func WithFormat(format string) Option {
	return platform.WithFormat(format)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithAutoInit creates the data directory if missing.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist fails startup when the data file does not exist yet.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithVersioning commits every save of the data file to git.
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithWatch reloads the address book when another process edits it.
func WithWatch(enabled bool) Option {
	return platform.WithWatch(enabled)
}

// WithWatchErrorHandler registers a callback for watcher errors.
func WithWatchErrorHandler(fn func(error)) Option {
	return platform.WithWatchErrorHandler(fn)
}

// WithLockTimeout bounds how long a save waits for another process.
func WithLockTimeout(d time.Duration) Option {
	return platform.WithLockTimeout(d)
}

// WithClock sets the time source used to stamp weight entries.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithSampleData seeds example clients when no data file exists.
func WithSampleData(enabled bool) Option {
	return platform.WithSampleData(enabled)
}

// WithDevSafety controls the `go run` sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithRepository injects a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// LoadConfig finds the config file in the working directory or
// $HOME/.fitbook, loads envFiles and applies FITBOOK_* variables.
func LoadConfig(envFiles ...string) (*Config, error) {
	return platform.LoadConfig(platform.ConfigDirs(), envFiles...)
}

// --- Factory ---

// New opens the configured address book.
func New(ctx context.Context, opts ...Option) (*App, error) {
	return platform.New(ctx, opts...)
}

// Init prepares the storage without loading it.
func Init(ctx context.Context, opts ...Option) (core.Repository, error) {
	return platform.Init(ctx, opts...)
}

// --- Safety & Utils ---

// ResolveDataPath determines the data file actually used, based on the
// dev sandbox rules.
func ResolveDataPath(userPath string, forceTemp bool) string {
	return platform.ResolveDataPath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
