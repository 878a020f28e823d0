// Package lifecycle exposes repository change notifications as a
// lifecycle.Source so front ends can react to edits made by other
// processes.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/fitbook/pkg/core"
)

// DataChanged is emitted when the stored address book changed outside this
// process.
type DataChanged struct {
	core.Event
}

func (e DataChanged) String() string {
	if e.Type == core.EventDelete {
		return fmt.Sprintf("data file %s was removed", e.Path)
	}
	return fmt.Sprintf("data file %s changed on disk", e.Path)
}

type watchSource struct {
	repo core.Watchable
	out  chan lifecycle.Event
}

// NewSource creates a lifecycle.Source backed by repo.Watch. Nothing is
// watched until Start is called.
func NewSource(repo core.Watchable) lifecycle.Source {
	return &watchSource{
		repo: repo,
		out:  make(chan lifecycle.Event),
	}
}

func (s *watchSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start begins watching. The event channel is closed when ctx is cancelled
// or the repository stops reporting.
func (s *watchSource) Start(ctx context.Context) error {
	events, err := s.repo.Watch(ctx)
	if err != nil {
		close(s.out)
		return fmt.Errorf("failed to start watching: %w", err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				select {
				case s.out <- DataChanged{Event: e}:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
