package core

import (
	"github.com/aretw0/introspection"
)

// ModelState exposes internal state for observability.
type ModelState struct {
	Persons  int `json:"persons"`
	Filtered int `json:"filtered"`
}

// State implements introspection.Introspectable.
func (m *ModelManager) State() any {
	return ModelState{
		Persons:  m.book.Len(),
		Filtered: len(m.FilteredPersonList()),
	}
}

// ComponentType implements introspection.Component.
func (m *ModelManager) ComponentType() string {
	return "model"
}

var _ introspection.Introspectable = (*ModelManager)(nil)
var _ introspection.Component = (*ModelManager)(nil)
