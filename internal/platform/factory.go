package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/lifecycle"

	fblifecycle "github.com/aretw0/fitbook/pkg/adapters/lifecycle"
	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/logic"
)

// App is a ready-to-use FitBook instance: storage, model and command
// execution wired together.
type App struct {
	*logic.Manager
	Repository core.Repository
	Model      *core.ModelManager
	Logger     *slog.Logger

	watch bool
}

// New opens the configured data file and returns an App.
//
//	app, err := platform.New(ctx, platform.WithDataFile("clients.yaml"))
//
// A missing data file yields an empty address book, or the sample clients
// when WithSampleData is set. A malformed one is an error.
func New(ctx context.Context, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, err := initRepository(ctx, o)
	if err != nil {
		return nil, err
	}

	book, err := repo.Load(ctx)
	switch {
	case errors.Is(err, core.ErrNoData):
		book, err = startingBook(o)
		if err != nil {
			return nil, err
		}
		if o.logger != nil {
			o.logger.Info("no data file found, starting fresh", "clients", book.Len())
		}
	case err != nil:
		return nil, fmt.Errorf("could not load data file: %w", err)
	}

	model := core.NewModelManager(book, o.logger)
	mopts := []logic.Option{logic.WithLogger(o.logger)}
	if o.clock != nil {
		mopts = append(mopts, logic.WithClock(o.clock))
	}

	return &App{
		Manager:    logic.NewManager(model, repo, mopts...),
		Repository: repo,
		Model:      model,
		Logger:     o.logger,
		watch:      o.watch,
	}, nil
}

func startingBook(o *options) (*core.AddressBook, error) {
	if o.sampleData {
		return SampleAddressBook()
	}
	return core.NewAddressBook()
}

// Changes returns a source of external data file changes. ok is false when
// watching is disabled or the storage cannot be watched.
func (a *App) Changes() (lifecycle.Source, bool) {
	if !a.watch {
		return nil, false
	}
	w, ok := a.Repository.(core.Watchable)
	if !ok {
		return nil, false
	}
	return fblifecycle.NewSource(w), true
}
