package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/fitbook/pkg/core"
)

// debounceDelay coalesces the burst of events produced by a single atomic
// write (create temp, write, rename).
const debounceDelay = 50 * time.Millisecond

// Watch reports changes made to the data file by other processes. Writes
// performed through this Repository are not reported. The channel is
// closed once ctx is cancelled.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// The directory is watched rather than the file because atomic
	// renames replace the inode.
	if err := watcher.Add(r.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", r.dir, err)
	}

	events := make(chan core.Event)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.reportWatchError(fmt.Errorf("watcher stopped: %w", err))
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, out chan<- core.Event) error {
	var (
		pending core.EventType
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Base(event.Name) != r.file {
				continue
			}
			eType := mapEventType(event)
			if eType == "" {
				continue
			}
			if r.config.Logger != nil {
				r.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())
			}

			// Keep the strongest change seen during the burst.
			if pending == "" || eType == core.EventDelete || pending == core.EventModify {
				pending = eType
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			e, ok := r.settle(pending)
			pending = ""
			if !ok {
				continue
			}
			select {
			case out <- e:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.reportWatchError(wErr)
		}
	}
}

// settle inspects the data file once a burst has quieted down and decides
// whether it amounts to an external change.
func (r *Repository) settle(pending core.EventType) (core.Event, bool) {
	e := core.Event{Type: pending, Path: r.Path, Timestamp: time.Now().Unix()}

	data, err := os.ReadFile(r.Path)
	if os.IsNotExist(err) {
		e.Type = core.EventDelete
		return e, true
	}
	if err != nil {
		r.reportWatchError(fmt.Errorf("failed to read %s: %w", r.Path, err))
		return e, false
	}
	if r.isOwnWrite(data) {
		return e, false
	}
	if e.Type == core.EventDelete {
		e.Type = core.EventModify
	}
	return e, true
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}

func (r *Repository) reportWatchError(err error) {
	if r.config.Logger != nil {
		r.config.Logger.Error("watcher error", "error", err)
	}
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
	}
}
