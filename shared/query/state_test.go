package query_test

import (
	"testing"

	"dinedesk/shared/failure"
	"dinedesk/shared/query"

	"github.com/stretchr/testify/assert"
)

func TestStateToggleSort(t *testing.T) {
	state := query.NewState(rowSpec(5))

	dir, err := state.ToggleSort("datetime")
	assert.NoError(t, err)
	assert.Equal(t, query.Desc, dir)

	dir, err = state.ToggleSort("datetime")
	assert.NoError(t, err)
	assert.Equal(t, query.Asc, dir)

	dir, err = state.ToggleSort("customer")
	assert.NoError(t, err)
	assert.Equal(t, query.Asc, dir, "a new field starts from its own default")

	dir, err = state.ToggleSort("customer")
	assert.NoError(t, err)
	assert.Equal(t, query.Desc, dir)

	_, err = state.ToggleSort("unknown")
	assert.ErrorIs(t, err, failure.InvalidSortField)
	assert.Equal(t, "customer", state.Params().SortBy)
}

func TestStateChangesResetPage(t *testing.T) {
	tests := []struct {
		name   string
		change func(s *query.State)
		page   int
	}{
		{name: "search", change: func(s *query.State) { s.SetSearch("asha") }, page: 1},
		{name: "filter", change: func(s *query.State) { s.SetFilter("status", "pending") }, page: 1},
		{name: "sort toggle", change: func(s *query.State) { _, _ = s.ToggleSort("partySize") }, page: 1},
		{name: "explicit sort", change: func(s *query.State) { _ = s.SetSort("partySize", query.Asc) }, page: 1},
		{name: "same search keeps page", change: func(s *query.State) { s.SetSearch("") }, page: 3},
		{name: "same filter keeps page", change: func(s *query.State) { s.SetFilter("status", "") }, page: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := query.NewState(rowSpec(5))
			state.SetPage(3)

			tt.change(state)

			assert.Equal(t, tt.page, state.Params().Page)
		})
	}
}

func TestStateParamsIsACopy(t *testing.T) {
	state := query.NewState(rowSpec(5))
	state.SetFilter("status", "pending")

	params := state.Params()
	params.Filters["status"] = "confirmed"

	assert.Equal(t, "pending", state.Params().Filters["status"])
}

func TestStateSetPageFloor(t *testing.T) {
	state := query.NewState(rowSpec(5))
	state.SetPage(-4)

	assert.Equal(t, 1, state.Params().Page)
}

func TestStateReset(t *testing.T) {
	state := query.NewState(rowSpec(5))
	state.SetSearch("asha")
	state.SetFilter("status", "pending")
	_, _ = state.ToggleSort("datetime")
	state.SetPage(2)

	state.Reset()

	params := state.Params()
	assert.Empty(t, params.Search)
	assert.Empty(t, params.Filters)
	assert.Empty(t, params.SortBy)
	assert.Equal(t, 1, params.Page)
}

func TestStateSetSortClears(t *testing.T) {
	state := query.NewState(rowSpec(5))
	assert.NoError(t, state.SetSort("datetime", ""))
	assert.Equal(t, query.Desc, state.Params().SortDir)

	assert.NoError(t, state.SetSort("", ""))
	assert.Empty(t, state.Params().SortBy)

	assert.ErrorIs(t, state.SetSort("unknown", query.Asc), failure.InvalidSortField)
}
