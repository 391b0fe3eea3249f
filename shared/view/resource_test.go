package view_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"dinedesk/infras/otel/mocks"
	"dinedesk/shared/notify"
	"dinedesk/shared/query"
	"dinedesk/shared/store"
	"dinedesk/shared/view"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID   string
	Name string
}

func newResource(calls *atomic.Int32, rows []row) *view.Resource[row, row] {
	return newOwnedResource(context.Background(), calls, rows)
}

func newOwnedResource(ctx context.Context, calls *atomic.Int32, rows []row) *view.Resource[row, row] {
	st := store.New("rows", func(r row) string { return r.ID }, func(context.Context) ([]row, error) {
		calls.Add(1)

		return rows, nil
	}, notify.Discard, mocks.NewOtel())

	spec := query.Spec[row]{
		Search:   func(r row) []string { return []string{r.Name} },
		Sorts:    map[string]query.SortField[row]{"name": {Compare: query.ByText(func(r row) string { return r.Name }), DefaultDir: query.Asc}},
		PageSize: 2,
	}

	return view.New[row, row](ctx, st, spec, time.Hour)
}

func TestListWithoutMountRefreshesOnce(t *testing.T) {
	var calls atomic.Int32
	res := newResource(&calls, []row{{ID: "1", Name: "b"}, {ID: "2", Name: "a"}, {ID: "3", Name: "c"}})

	result := res.List(context.Background(), query.Params{SortBy: "name", SortDir: query.Asc, Page: 1})

	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, result.Loading)
	assert.Equal(t, 3, result.TotalData)
	assert.Equal(t, 2, result.TotalPage)
	assert.Equal(t, []row{{ID: "2", Name: "a"}, {ID: "1", Name: "b"}}, result.Items)
}

func TestResultBeforeFirstLoad(t *testing.T) {
	var calls atomic.Int32
	res := newResource(&calls, nil)

	result := res.Result(query.Params{Page: 1})

	assert.True(t, result.Loading)
	assert.False(t, result.Empty)
	assert.Equal(t, int32(0), calls.Load())
}

func TestEmptyAfterLoad(t *testing.T) {
	var calls atomic.Int32
	res := newResource(&calls, nil)

	result := res.List(context.Background(), query.Params{Page: 1})

	assert.True(t, result.Empty)
	assert.Equal(t, 1, result.TotalPage)
}

func TestMountSharesPoller(t *testing.T) {
	var calls atomic.Int32
	res := newResource(&calls, []row{{ID: "1"}})

	res.Mount()
	res.Mount()
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	res.List(context.Background(), query.Params{Page: 1})
	assert.Equal(t, int32(1), calls.Load())

	res.Unmount()
	assert.True(t, res.Mounted())

	res.Modals.View.Open(row{ID: "1"})
	res.Unmount()
	assert.False(t, res.Mounted())
	assert.False(t, res.Modals.View.IsOpen())

	res.Unmount()
	assert.False(t, res.Mounted())
}

func TestReadRejectsUnknownSort(t *testing.T) {
	var calls atomic.Int32
	res := newResource(&calls, []row{{ID: "1", Name: "a"}})

	_, err := res.Read(context.Background(), &query.Params{SortBy: "age", Page: 1})

	assert.Error(t, err)
	assert.Equal(t, int32(0), calls.Load())
}

func TestApplyMovesStoredCursor(t *testing.T) {
	var calls atomic.Int32
	res := newResource(&calls, []row{{ID: "1", Name: "b"}, {ID: "2", Name: "a"}, {ID: "3", Name: "c"}})

	page := 2
	result, err := res.Apply(context.Background(), view.Update{Page: &page})
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Page)

	result, err = res.ToggleSort(context.Background(), "name")
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, []row{{ID: "2", Name: "a"}, {ID: "1", Name: "b"}}, result.Items)

	result, err = res.ToggleSort(context.Background(), "name")
	assert.NoError(t, err)
	assert.Equal(t, []row{{ID: "3", Name: "c"}, {ID: "1", Name: "b"}}, result.Items)

	search := "c"
	result, err = res.Read(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, result.TotalData)

	result, err = res.Apply(context.Background(), view.Update{Search: &search})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.TotalData)

	_, err = res.Apply(context.Background(), view.Update{Filters: map[string]string{"color": "red"}})
	assert.Error(t, err)
}

func TestMountAfterWorkspaceClosed(t *testing.T) {
	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	res := newOwnedResource(ctx, &calls, []row{{ID: "1"}})
	cancel()

	res.Mount()
	defer res.Unmount()

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, calls.Load())
	assert.True(t, res.Result(query.Params{Page: 1}).Loading)
}
