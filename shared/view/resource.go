// Package view binds one resource store to the list cursor, the dialogs and the poller
// of the screen that shows it.
package view

import (
	"context"
	"sync"
	"time"

	"dinedesk/shared/failure"
	"dinedesk/shared/modal"
	"dinedesk/shared/poller"
	"dinedesk/shared/query"
	"dinedesk/shared/store"
)

// Resource is mounted by every live connection showing the screen. The poller runs
// while at least one mount is held; reads without a mount do a one-shot refresh.
type Resource[T, F any] struct {
	Store  *store.Store[T]
	Query  *query.State
	Modals *modal.Set[T, F]

	spec   query.Spec[T]
	poller *poller.Poller
	ctx    context.Context

	mu     sync.Mutex
	mounts int
}

// New ties the poller to ctx, which should live as long as the owning workspace.
func New[T, F any](ctx context.Context, st *store.Store[T], spec query.Spec[T], interval time.Duration) *Resource[T, F] {
	return &Resource[T, F]{
		Store:  st,
		Query:  query.NewState(spec),
		Modals: &modal.Set[T, F]{},
		spec:   spec,
		poller: poller.New(st.Name(), interval, st.Refresh),
		ctx:    ctx,
	}
}

func (r *Resource[T, F]) Spec() query.Spec[T] {
	return r.spec
}

func (r *Resource[T, F]) Mount() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mounts++
	if r.mounts == 1 {
		r.poller.Start(r.ctx)
	}
}

// Unmount stops polling when the last mount goes away and closes every dialog.
func (r *Resource[T, F]) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mounts == 0 {
		return
	}

	r.mounts--
	if r.mounts == 0 {
		r.poller.Stop()
		r.Modals.CloseAll()
	}
}

func (r *Resource[T, F]) Mounted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mounts > 0
}

// Sync refreshes the store unless a poller already keeps it current.
func (r *Resource[T, F]) Sync(ctx context.Context) {
	if r.Mounted() {
		return
	}

	_ = r.Store.Refresh(ctx)
}

// Ensure loads the collection once when nothing has loaded it yet.
func (r *Resource[T, F]) Ensure(ctx context.Context) {
	if r.Store.Loaded() {
		return
	}

	r.Sync(ctx)
}

// List runs the query pipeline over the current collection.
func (r *Resource[T, F]) List(ctx context.Context, params query.Params) query.Result[T] {
	r.Sync(ctx)

	return r.Result(params)
}

// Result runs the pipeline without touching the backend.
func (r *Resource[T, F]) Result(params query.Params) query.Result[T] {
	result := query.Run(r.Store.Snapshot(), r.spec, params)
	result.Loading = r.Store.Loading()
	result.Empty = !result.Loading && result.TotalData == 0

	return result
}

// Current lists with the screen's stored cursor.
func (r *Resource[T, F]) Current(ctx context.Context) query.Result[T] {
	return r.List(ctx, r.Query.Params())
}

// Close stops polling regardless of outstanding mounts.
func (r *Resource[T, F]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mounts = 0
	r.poller.Stop()
	r.Modals.CloseAll()
}

// Update changes the stored cursor. Nil fields are left as they are; a filter with an
// empty value is cleared.
type Update struct {
	Search  *string
	Filters map[string]string
	SortBy  *string
	SortDir query.Direction
	Page    *int
}

// Read lists with explicit params, or with the stored cursor when params is nil.
func (r *Resource[T, F]) Read(ctx context.Context, params *query.Params) (query.Result[T], error) {
	if params == nil {
		return r.Current(ctx), nil
	}

	if params.SortBy != "" && !r.spec.HasSort(params.SortBy) {
		return query.Result[T]{}, failure.InvalidSortField
	}

	return r.List(ctx, *params), nil
}

// Apply moves the stored cursor and returns the page it now points at.
func (r *Resource[T, F]) Apply(ctx context.Context, update Update) (query.Result[T], error) {
	if update.SortBy != nil {
		if err := r.Query.SetSort(*update.SortBy, update.SortDir); err != nil {
			return query.Result[T]{}, err //nolint:wrapcheck
		}
	}

	if update.Search != nil {
		r.Query.SetSearch(*update.Search)
	}

	for key, value := range update.Filters {
		if _, ok := r.spec.Filters[key]; !ok {
			return query.Result[T]{}, failure.BadRequestFromString("unknown filter " + key)
		}

		r.Query.SetFilter(key, value)
	}

	if update.Page != nil {
		r.Query.SetPage(*update.Page)
	}

	return r.Current(ctx), nil
}

// ToggleSort flips or selects the sort field of the stored cursor.
func (r *Resource[T, F]) ToggleSort(ctx context.Context, field string) (query.Result[T], error) {
	if _, err := r.Query.ToggleSort(field); err != nil {
		return query.Result[T]{}, err //nolint:wrapcheck
	}

	return r.Current(ctx), nil
}
