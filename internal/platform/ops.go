package platform

import (
	"context"

	"github.com/aretw0/fitbook/pkg/adapters/fs"
	"github.com/aretw0/fitbook/pkg/core"
)

// Init builds the storage described by opts and prepares it for use
// (directories, git repository). It returns the configured
// core.Repository.
func Init(ctx context.Context, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initRepository(ctx, o)
}

func initRepository(ctx context.Context, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}

	repo, err := initFS(o)
	if err != nil {
		return nil, err
	}
	if err := repo.Initialize(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// initFS handles the path resolution and configuration of the file adapter.
func initFS(o *options) (*fs.Repository, error) {
	// Read-only runs cannot damage the real file.
	bypassSafety := o.readOnly || !o.devSafety
	useTemp := IsDevRun() && !bypassSafety
	path := ResolveDataPath(o.dataFile, useTemp)

	if IsDevRun() && o.logger != nil {
		switch {
		case o.readOnly:
			o.logger.Debug("running in READ-ONLY mode (bypassing dev sandbox)", "path", path)
		case bypassSafety:
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", path)
		default:
			o.logger.Debug("running in SAFE mode (dev sandbox enabled)", "original_path", o.dataFile, "path", path)
		}
	}

	return fs.NewRepository(fs.Config{
		Path:         path,
		Format:       o.format,
		ReadOnly:     o.readOnly,
		MustExist:    o.mustExist,
		Versioned:    o.versioned,
		AutoInit:     o.autoInit,
		LockTimeout:  o.lockTimeout,
		Logger:       o.logger,
		ErrorHandler: o.watchErr,
	})
}
