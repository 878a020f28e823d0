package core

import (
	"log/slog"

	"github.com/aretw0/fitbook/pkg/person"
)

// Predicate selects the persons shown in the filtered list.
type Predicate func(*person.Person) bool

// ShowAllPersons is the predicate that accepts every person.
func ShowAllPersons(*person.Person) bool { return true }

// Model is the in-memory state that commands read and mutate.
type Model interface {
	// AddressBook returns the backing address book.
	AddressBook() *AddressBook
	// SetAddressBook replaces the content of the address book.
	SetAddressBook(ab *AddressBook)

	HasPerson(p *person.Person) bool
	AddPerson(p *person.Person) error
	DeletePerson(target *person.Person) error
	// SetPerson replaces target, matched by identity, with edited.
	SetPerson(target, edited *person.Person) error

	// FilteredPersonList returns the persons matching the current predicate,
	// in address-book order.
	FilteredPersonList() []*person.Person
	// UpdateFilteredPersonList sets the predicate of the filtered list.
	UpdateFilteredPersonList(pred Predicate)
}

// ModelManager is the default Model implementation.
type ModelManager struct {
	book   *AddressBook
	filter Predicate
	logger *slog.Logger
}

// NewModelManager creates a model around book. A nil book starts empty.
func NewModelManager(book *AddressBook, logger *slog.Logger) *ModelManager {
	if book == nil {
		book = &AddressBook{}
	}
	return &ModelManager{
		book:   book,
		filter: ShowAllPersons,
		logger: logger,
	}
}

func (m *ModelManager) AddressBook() *AddressBook { return m.book }

func (m *ModelManager) SetAddressBook(ab *AddressBook) {
	m.book.Reset(ab)
	if m.logger != nil {
		m.logger.Debug("address book replaced", "persons", m.book.Len())
	}
}

func (m *ModelManager) HasPerson(p *person.Person) bool { return m.book.Has(p) }

func (m *ModelManager) AddPerson(p *person.Person) error {
	if err := m.book.Add(p); err != nil {
		return err
	}
	m.UpdateFilteredPersonList(ShowAllPersons)
	return nil
}

func (m *ModelManager) DeletePerson(target *person.Person) error {
	return m.book.Remove(target)
}

func (m *ModelManager) SetPerson(target, edited *person.Person) error {
	return m.book.Set(target, edited)
}

func (m *ModelManager) FilteredPersonList() []*person.Person {
	all := m.book.Persons()
	out := all[:0]
	for _, p := range all {
		if m.filter(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m *ModelManager) UpdateFilteredPersonList(pred Predicate) {
	if pred == nil {
		pred = ShowAllPersons
	}
	m.filter = pred
}

var _ Model = (*ModelManager)(nil)
