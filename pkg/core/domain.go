package core

import (
	"context"
	"fmt"

	"github.com/aretw0/fitbook/pkg/person"
)

// AddressBook is the ordered list of clients. Duplicates, as defined by
// person.IsSamePerson, are rejected. Entries are matched by pointer
// identity when replacing or removing.
type AddressBook struct {
	persons []*person.Person
}

// NewAddressBook builds a book from persons, rejecting duplicates.
func NewAddressBook(persons ...*person.Person) (*AddressBook, error) {
	ab := &AddressBook{}
	for _, p := range persons {
		if err := ab.Add(p); err != nil {
			return nil, err
		}
	}
	return ab, nil
}

// Persons returns the clients in insertion order. The slice is a copy.
func (ab *AddressBook) Persons() []*person.Person {
	out := make([]*person.Person, len(ab.persons))
	copy(out, ab.persons)
	return out
}

// Len returns the number of clients.
func (ab *AddressBook) Len() int { return len(ab.persons) }

// Has reports whether a client equivalent to p exists.
func (ab *AddressBook) Has(p *person.Person) bool {
	for _, cur := range ab.persons {
		if cur.IsSamePerson(p) {
			return true
		}
	}
	return false
}

// Add appends p.
func (ab *AddressBook) Add(p *person.Person) error {
	if ab.Has(p) {
		return fmt.Errorf("add %s: %w", p.Name(), ErrDuplicatePerson)
	}
	ab.persons = append(ab.persons, p)
	return nil
}

// Set replaces target with edited in place. edited must not duplicate any
// client other than target.
func (ab *AddressBook) Set(target, edited *person.Person) error {
	idx := ab.indexOf(target)
	if idx < 0 {
		return ErrPersonNotFound
	}
	if !target.IsSamePerson(edited) && ab.Has(edited) {
		return fmt.Errorf("set %s: %w", edited.Name(), ErrDuplicatePerson)
	}
	ab.persons[idx] = edited
	return nil
}

// Remove deletes target.
func (ab *AddressBook) Remove(target *person.Person) error {
	idx := ab.indexOf(target)
	if idx < 0 {
		return ErrPersonNotFound
	}
	ab.persons = append(ab.persons[:idx:idx], ab.persons[idx+1:]...)
	return nil
}

// Reset replaces the whole content with other's clients.
func (ab *AddressBook) Reset(other *AddressBook) {
	if other == nil {
		ab.persons = nil
		return
	}
	ab.persons = other.Persons()
}

func (ab *AddressBook) indexOf(target *person.Person) int {
	for i, cur := range ab.persons {
		if cur == target {
			return i
		}
	}
	return -1
}

// EventType represents the type of change in the data file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an external change to the stored address book.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}

type contextKey string

// ChangeReasonKey carries the reason for a save, recorded as the commit
// message when the data file is versioned.
const ChangeReasonKey contextKey = "change_reason"

// WithChangeReason returns a context carrying reason.
func WithChangeReason(ctx context.Context, reason string) context.Context {
	return context.WithValue(ctx, ChangeReasonKey, reason)
}

// ChangeReason returns the reason stored by WithChangeReason, or "".
func ChangeReason(ctx context.Context) string {
	reason, _ := ctx.Value(ChangeReasonKey).(string)
	return reason
}
