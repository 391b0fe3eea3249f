package query

import (
	"maps"
	"sync"

	"dinedesk/shared/constant"
	"dinedesk/shared/failure"
)

// State is the mutable list cursor of one mounted view.
// Any change to search, filters or sort sends the view back to page 1.
type State struct {
	mu       sync.Mutex
	params   Params
	defaults map[string]Direction
}

func NewState[T any](spec Spec[T]) *State {
	defaults := make(map[string]Direction, len(spec.Sorts))
	for field, sortField := range spec.Sorts {
		defaults[field] = sortField.DefaultDir
	}

	return &State{
		params: Params{
			Filters: map[string]string{},
			Page:    constant.DefaultValuePage,
		},
		defaults: defaults,
	}
}

// Params returns a copy that is safe to hand to Run.
func (s *State) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()

	params := s.params
	params.Filters = maps.Clone(s.params.Filters)

	return params
}

func (s *State) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.params.Search == search {
		return
	}

	s.params.Search = search
	s.params.Page = constant.DefaultValuePage
}

func (s *State) SetFilter(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.params.Filters[key] == value {
		return
	}

	if value == "" {
		delete(s.params.Filters, key)
	} else {
		s.params.Filters[key] = value
	}

	s.params.Page = constant.DefaultValuePage
}

// ToggleSort flips the direction when field is already selected,
// otherwise selects it with the field's default direction.
func (s *State) ToggleSort(field string) (Direction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaultDir, ok := s.defaults[field]
	if !ok {
		return "", failure.InvalidSortField
	}

	if s.params.SortBy == field {
		s.params.SortDir = s.params.SortDir.Reverse()
	} else {
		s.params.SortBy = field
		s.params.SortDir = defaultDir
	}

	s.params.Page = constant.DefaultValuePage

	return s.params.SortDir, nil
}

// SetSort selects a field and direction explicitly. An empty field clears sorting.
func (s *State) SetSort(field string, dir Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if field == "" {
		s.params.SortBy = ""
		s.params.SortDir = ""
		s.params.Page = constant.DefaultValuePage

		return nil
	}

	defaultDir, ok := s.defaults[field]
	if !ok {
		return failure.InvalidSortField
	}

	if dir == "" {
		dir = defaultDir
	}

	if s.params.SortBy == field && s.params.SortDir == dir {
		return nil
	}

	s.params.SortBy = field
	s.params.SortDir = dir
	s.params.Page = constant.DefaultValuePage

	return nil
}

func (s *State) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.params.Page = max(page, constant.DefaultValuePage)
}

func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.params = Params{
		Filters: map[string]string{},
		Page:    constant.DefaultValuePage,
	}
}
