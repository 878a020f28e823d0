package core

import "context"

// Repository defines the contract for loading and storing the address book.
// Adhering to this interface keeps the model independent of the file format
// and location.
type Repository interface {
	// Load reads the stored address book. It returns ErrNoData when nothing
	// has been stored yet.
	Load(ctx context.Context) (*AddressBook, error)

	// Save persists the whole address book, replacing what was stored.
	Save(ctx context.Context, ab *AddressBook) error

	// Initialize ensures the underlying storage is ready (e.g. create directories).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that can report changes
// made to the stored data by other processes.
type Watchable interface {
	// Watch emits an Event each time the stored data changes externally.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
