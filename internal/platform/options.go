package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/fitbook/pkg/core"
)

// DefaultDataFile is used when no data file is configured.
const DefaultDataFile = "data/fitbook.json"

// options holds the internal configuration for a FitBook instance.
type options struct {
	repository  core.Repository
	logger      *slog.Logger
	dataFile    string
	format      string
	readOnly    bool
	autoInit    bool
	mustExist   bool
	versioned   bool
	watch       bool
	watchErr    func(error)
	lockTimeout time.Duration
	clock       func() time.Time
	sampleData  bool
	devSafety   bool
}

// Option defines a functional option for configuring FitBook.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		dataFile:  DefaultDataFile,
		autoInit:  true,
		devSafety: true,
	}
}

// WithLogger sets the logger shared by storage and command execution.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDataFile sets the path of the address book file.
func WithDataFile(path string) Option {
	return func(o *options) {
		if path != "" {
			o.dataFile = path
		}
	}
}

// WithFormat forces the data file format (json, yaml or csv) instead of
// deriving it from the file extension.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Mutating commands still run against the in-memory book but saving fails with core.ErrReadOnly.
// 2. Initialization (mkdir, git init) is skipped.
// 3. The dev sandbox is bypassed, so the real file is read.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithAutoInit creates the data directory (and git repository when
// versioned) if missing. Enabled by default.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist fails startup when the data file does not exist yet.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithVersioning commits every save of the data file to git.
func WithVersioning(enabled bool) Option {
	return func(o *options) {
		o.versioned = enabled
	}
}

// WithWatch reloads the address book when the data file is changed by
// another process.
func WithWatch(enabled bool) Option {
	return func(o *options) {
		o.watch = enabled
	}
}

// WithWatchErrorHandler registers a callback for errors raised by the
// watcher loop, which are otherwise only logged.
func WithWatchErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.watchErr = fn
	}
}

// WithLockTimeout bounds how long a save waits for another process.
func WithLockTimeout(d time.Duration) Option {
	return func(o *options) {
		o.lockTimeout = d
	}
}

// WithClock sets the time source used to stamp weight entries.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithSampleData seeds a few example clients when no data file exists.
func WithSampleData(enabled bool) Option {
	return func(o *options) {
		o.sampleData = enabled
	}
}

// WithDevSafety controls the sandbox used when running via `go run`.
// By default (true) the data file is redirected to a temporary directory.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithRepository injects a custom storage adapter. The data file options
// are ignored when set.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}
