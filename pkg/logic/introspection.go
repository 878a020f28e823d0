package logic

import (
	"github.com/aretw0/introspection"
)

// State exposes internal state for observability.
type State struct {
	Session        string `json:"session"`
	Executed       int    `json:"executed"`
	Failed         int    `json:"failed"`
	LastCommand    string `json:"last_command,omitempty"`
	LastError      string `json:"last_error,omitempty"`
	RepositoryType string `json:"repository_type"`
	Model          any    `json:"model,omitempty"`
}

// State implements introspection.Introspectable.
func (m *Manager) State() any {
	m.mu.Lock()
	defer m.mu.Unlock()

	repoType := "none"
	if m.repo != nil {
		repoType = "repository"
		if comp, ok := m.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	var model any
	if in, ok := m.model.(introspection.Introspectable); ok {
		model = in.State()
	}

	s := State{
		Session:        m.session.String(),
		Executed:       m.executed,
		Failed:         m.failed,
		LastCommand:    m.lastWord,
		RepositoryType: repoType,
		Model:          model,
	}
	if m.lastErr != nil {
		s.LastError = m.lastErr.Error()
	}
	return s
}

// ComponentType implements introspection.Component.
func (m *Manager) ComponentType() string {
	return "logic"
}

var _ introspection.Introspectable = (*Manager)(nil)
var _ introspection.Component = (*Manager)(nil)
