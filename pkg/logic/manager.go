// Package logic wires parsing, command execution and persistence together.
package logic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/fitbook/pkg/command"
	"github.com/aretw0/fitbook/pkg/core"
	"github.com/aretw0/fitbook/pkg/parser"
	"github.com/aretw0/fitbook/pkg/person"
)

// Manager executes command lines against a model and persists the address
// book after every successful mutating command.
type Manager struct {
	model  core.Model
	repo   core.Repository
	parser *parser.AddressBookParser
	logger *slog.Logger

	session uuid.UUID

	mu       sync.Mutex
	executed int
	failed   int
	lastWord string
	lastErr  error
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The session id is attached to every record.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithClock sets the time source used to stamp weight entries.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.parser.Now = now }
}

// NewManager creates a Manager. repo may be nil, in which case nothing is
// persisted.
func NewManager(model core.Model, repo core.Repository, opts ...Option) *Manager {
	m := &Manager{
		model:   model,
		repo:    repo,
		parser:  &parser.AddressBookParser{},
		session: uuid.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger != nil {
		m.logger = m.logger.With("session", m.session.String())
	}
	return m
}

// Execute parses input, runs the resulting command and saves the address
// book when the command changed it. Parse and execution failures are
// returned as *parser.ParseError and *command.ExecutionError and leave the
// storage untouched.
func (m *Manager) Execute(ctx context.Context, input string) (command.Result, error) {
	word := parser.CommandWord(input)
	if m.logger != nil {
		m.logger.Debug("executing command", "word", word)
	}

	res, err := m.run(ctx, input)

	m.mu.Lock()
	m.executed++
	m.lastWord = word
	m.lastErr = err
	if err != nil {
		m.failed++
	}
	m.mu.Unlock()

	if err != nil && m.logger != nil {
		var pe *parser.ParseError
		var ee *command.ExecutionError
		switch {
		case errors.As(err, &pe), errors.As(err, &ee):
			m.logger.Debug("command rejected", "word", word, "reason", err)
		default:
			m.logger.Warn("command failed", "word", word, "error", err)
		}
	}
	return res, err
}

func (m *Manager) run(ctx context.Context, input string) (command.Result, error) {
	c, err := m.parser.ParseCommand(input)
	if err != nil {
		return command.Result{}, err
	}
	res, err := c.Execute(m.model)
	if err != nil {
		return command.Result{}, err
	}
	if res.Mutates() {
		if err := m.save(core.WithChangeReason(ctx, strings.TrimSpace(input))); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (m *Manager) save(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	if err := m.repo.Save(ctx, m.model.AddressBook()); err != nil {
		return fmt.Errorf("could not save data file: %w", err)
	}
	return nil
}

// Reload replaces the model's address book with the stored one and shows
// every person again. Used after the data file changed on disk.
func (m *Manager) Reload(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	ab, err := m.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	m.model.SetAddressBook(ab)
	m.model.UpdateFilteredPersonList(core.ShowAllPersons)
	if m.logger != nil {
		m.logger.Info("address book reloaded", "persons", ab.Len())
	}
	return nil
}

// Import adds every person of other that is not already in the model and
// saves once. It returns how many were added and how many were skipped as
// duplicates.
func (m *Manager) Import(ctx context.Context, other *core.AddressBook) (added, skipped int, err error) {
	for _, p := range other.Persons() {
		if m.model.HasPerson(p) {
			skipped++
			continue
		}
		if err := m.model.AddPerson(p); err != nil {
			return added, skipped, fmt.Errorf("import %s: %w", p.Name(), err)
		}
		added++
	}
	if added > 0 {
		reason := fmt.Sprintf("import %d clients", added)
		if err := m.save(core.WithChangeReason(ctx, reason)); err != nil {
			return added, skipped, err
		}
	}
	if m.logger != nil {
		m.logger.Info("import finished", "added", added, "skipped", skipped)
	}
	return added, skipped, nil
}

// FilteredPersonList returns the persons currently displayed.
func (m *Manager) FilteredPersonList() []*person.Person {
	return m.model.FilteredPersonList()
}

// Session identifies this manager in logs and state dumps.
func (m *Manager) Session() uuid.UUID { return m.session }

// Repository returns the storage the manager saves to, or nil.
func (m *Manager) Repository() core.Repository { return m.repo }
