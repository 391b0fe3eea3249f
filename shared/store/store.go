// Package store keeps the in-memory collection of one dashboard resource.
//
// The backend is the source of truth: Refresh replaces the whole collection with the
// server's current list and mutations patch the local copy only after the backend
// accepted them. Failures never escape as panics or partial state; they are reported
// through the notifier and the last known good collection stays in place.
package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"dinedesk/infras/metrics"
	"dinedesk/infras/otel"
	"dinedesk/shared/constant"
	"dinedesk/shared/notify"

	"github.com/rs/zerolog/log"
)

type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Messages are the toast texts of a mutation. Title overrides the default success title.
type Messages struct {
	Title   string
	Success string
	Failure string
}

func (m Messages) success() notify.Notification {
	n := notify.Success(m.Success)
	if m.Title != "" {
		n.Title = m.Title
	}

	return n
}

type Store[T any] struct {
	name     string
	id       func(T) string
	fetch    FetchFunc[T]
	notifier notify.Notifier
	otel     otel.Otel

	mu        sync.RWMutex
	items     []T
	loaded    bool
	attempted bool

	listenerMu   sync.Mutex
	listeners    map[int]func([]T)
	nextListener int
}

func New[T any](name string, id func(T) string, fetch FetchFunc[T], notifier notify.Notifier, ot otel.Otel) *Store[T] {
	if notifier == nil {
		notifier = notify.Discard
	}

	return &Store[T]{
		name:      name,
		id:        id,
		fetch:     fetch,
		notifier:  notifier,
		otel:      ot,
		items:     []T{},
		listeners: map[int]func([]T){},
	}
}

func (s *Store[T]) Name() string {
	return s.name
}

// Refresh fetches the full collection and replaces the local one.
// The request itself is never cancelled; if ctx is done by the time the response
// arrives the view that asked for it is gone and the response is dropped.
// A returned error has already been surfaced as a notification.
func (s *Store[T]) Refresh(ctx context.Context) (err error) {
	fetchCtx, scope := s.otel.NewScope(context.WithoutCancel(ctx), constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute("store.name", s.name)

	start := time.Now()
	items, err := s.fetch(fetchCtx)
	metrics.ObserveRefresh(s.name, err, time.Since(start))

	if ctx.Err() != nil {
		log.Debug().Str("store", s.name).Msg("discarding refresh response after unmount")

		return nil
	}

	if err != nil {
		s.mu.Lock()
		s.attempted = true
		s.mu.Unlock()

		log.Error().Err(err).Str("store", s.name).Msg("failed to refresh collection")
		s.notifyError(err, fmt.Sprintf("Failed to load %s", s.name))

		return fmt.Errorf("failed to refresh %s: %w", s.name, err)
	}

	if items == nil {
		items = []T{}
	}

	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.attempted = true
	s.mu.Unlock()

	s.publish()

	return nil
}

// Create calls the backend and on success puts the returned record at the front.
func (s *Store[T]) Create(ctx context.Context, msgs Messages, call func(ctx context.Context) (T, error)) (res T, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute("store.name", s.name)

	res, err = call(ctx)
	metrics.ObserveMutation(s.name, "create", err)

	if err != nil {
		log.Error().Err(err).Str("store", s.name).Msg("failed to create record")
		s.notifyError(err, msgs.Failure)

		return res, fmt.Errorf("failed to create %s: %w", s.name, err)
	}

	s.mu.Lock()
	s.items = append([]T{res}, s.items...)
	s.mu.Unlock()

	s.notifier.Notify(msgs.success())
	s.publish()

	return res, nil
}

// Update calls the backend and on success replaces the record with the same id.
func (s *Store[T]) Update(ctx context.Context, id string, msgs Messages, call func(ctx context.Context) (T, error)) (res T, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttributes(map[string]any{
		"store.name": s.name,
		"record.id":  id,
	})

	res, err = call(ctx)
	metrics.ObserveMutation(s.name, "update", err)

	if err != nil {
		log.Error().Err(err).Str("store", s.name).Str("id", id).Msg("failed to update record")
		s.notifyError(err, msgs.Failure)

		return res, fmt.Errorf("failed to update %s: %w", s.name, err)
	}

	s.mu.Lock()
	if idx := s.indexOf(id); idx >= 0 {
		s.items = slices.Clone(s.items)
		s.items[idx] = res
	}
	s.mu.Unlock()

	s.notifier.Notify(msgs.success())
	s.publish()

	return res, nil
}

// Remove calls the backend and on success drops the record. On failure the record stays
// and the call can simply be retried.
func (s *Store[T]) Remove(ctx context.Context, id string, msgs Messages, call func(ctx context.Context) error) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttributes(map[string]any{
		"store.name": s.name,
		"record.id":  id,
	})

	err = call(ctx)
	metrics.ObserveMutation(s.name, "remove", err)

	if err != nil {
		log.Error().Err(err).Str("store", s.name).Str("id", id).Msg("failed to remove record")
		s.notifyError(err, msgs.Failure)

		return fmt.Errorf("failed to remove %s: %w", s.name, err)
	}

	s.RemoveLocal(id)
	s.notifier.Notify(msgs.success())

	return nil
}

// Send calls the backend for a write that returns no record and then refetches the
// collection so the new state comes from the server.
func (s *Store[T]) Send(ctx context.Context, msgs Messages, call func(ctx context.Context) error) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute("store.name", s.name)

	err = call(ctx)
	metrics.ObserveMutation(s.name, "send", err)

	if err != nil {
		log.Error().Err(err).Str("store", s.name).Msg("failed to send record")
		s.notifyError(err, msgs.Failure)

		return fmt.Errorf("failed to send %s: %w", s.name, err)
	}

	s.notifier.Notify(msgs.success())

	_ = s.Refresh(ctx)

	return nil
}

// Patch mutates a record locally without calling the backend. The change is lost on the next refresh.
func (s *Store[T]) Patch(id string, fn func(item *T)) (T, bool) {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()

		var zero T

		return zero, false
	}

	s.items = slices.Clone(s.items)
	fn(&s.items[idx])
	patched := s.items[idx]
	s.mu.Unlock()

	s.publish()

	return patched, true
}

// RemoveLocal drops a record without calling the backend.
func (s *Store[T]) RemoveLocal(id string) bool {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()

		return false
	}

	s.items = slices.Delete(slices.Clone(s.items), idx, idx+1)
	s.mu.Unlock()

	s.publish()

	return true
}

// Replace installs a collection received through a channel other than Refresh.
func (s *Store[T]) Replace(items []T) {
	if items == nil {
		items = []T{}
	}

	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.attempted = true
	s.mu.Unlock()

	s.publish()
}

// Snapshot returns the current collection. Callers must not modify it.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.items
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.items[idx], true
	}

	var zero T

	return zero, false
}

// Loading is true until the first refresh attempt has finished. Background refreshes never set it again.
func (s *Store[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return !s.attempted
}

// Loaded reports whether at least one refresh succeeded.
func (s *Store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

// OnUpdate registers fn to receive the collection after every change.
func (s *Store[T]) OnUpdate(fn func(items []T)) (cancel func()) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn

	return func() {
		s.listenerMu.Lock()
		defer s.listenerMu.Unlock()

		delete(s.listeners, id)
	}
}

func (s *Store[T]) publish() {
	s.listenerMu.Lock()
	listeners := make([]func([]T), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.listenerMu.Unlock()

	snapshot := s.Snapshot()
	for _, fn := range listeners {
		fn(snapshot)
	}
}

// indexOf must be called with mu held.
func (s *Store[T]) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(item T) bool {
		return s.id(item) == id
	})
}

func (s *Store[T]) notifyError(err error, description string) {
	s.notifier.Notify(notify.FromError(err, description))
}
