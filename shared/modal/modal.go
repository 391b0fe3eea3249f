// Package modal tracks open/close state and payload of the dialogs of a view.
package modal

import "sync"

type Kind string

const (
	KindView   Kind = "view"
	KindAdd    Kind = "add"
	KindEdit   Kind = "edit"
	KindDelete Kind = "delete"
)

func ParseKind(value string) (Kind, bool) {
	switch Kind(value) {
	case KindView, KindAdd, KindEdit, KindDelete:
		return Kind(value), true
	default:
		return "", false
	}
}

// Modal is an open flag plus the payload shown in the dialog.
// Closing always clears the payload so the next open never shows stale data.
type Modal[T any] struct {
	mu      sync.RWMutex
	open    bool
	payload *T
}

type State[T any] struct {
	Open    bool `json:"open"`
	Payload *T   `json:"payload,omitempty"`
}

func (m *Modal[T]) Open(payload T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.open = true
	m.payload = &payload
}

// OpenEmpty opens the dialog without a payload, e.g. a blank Add form.
func (m *Modal[T]) OpenEmpty() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.open = true
	m.payload = nil
}

func (m *Modal[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.open = false
	m.payload = nil
}

func (m *Modal[T]) IsOpen() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.open
}

func (m *Modal[T]) Payload() (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.payload == nil {
		var zero T

		return zero, false
	}

	return *m.payload, true
}

func (m *Modal[T]) State() State[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state := State[T]{Open: m.open}
	if m.payload != nil {
		payload := *m.payload
		state.Payload = &payload
	}

	return state
}

// Set groups the four dialogs of a resource view. V is the record shown by View and
// Delete, F is the form model used by Add and Edit.
type Set[V, F any] struct {
	View   Modal[V]
	Add    Modal[F]
	Edit   Modal[F]
	Delete Modal[V]
}

type SetState[V, F any] struct {
	View   State[V] `json:"view"`
	Add    State[F] `json:"add"`
	Edit   State[F] `json:"edit"`
	Delete State[V] `json:"delete"`
}

func (s *Set[V, F]) State() SetState[V, F] {
	return SetState[V, F]{
		View:   s.View.State(),
		Add:    s.Add.State(),
		Edit:   s.Edit.State(),
		Delete: s.Delete.State(),
	}
}

func (s *Set[V, F]) Close(kind Kind) {
	switch kind {
	case KindView:
		s.View.Close()
	case KindAdd:
		s.Add.Close()
	case KindEdit:
		s.Edit.Close()
	case KindDelete:
		s.Delete.Close()
	}
}

func (s *Set[V, F]) CloseAll() {
	s.View.Close()
	s.Add.Close()
	s.Edit.Close()
	s.Delete.Close()
}
