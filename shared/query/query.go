// Package query implements the list pipeline shared by every dashboard resource:
// free-text search and discrete filters, a stable sort and fixed-size pagination.
// Run is pure; State keeps the per-view cursor (search, filters, sort, page).
package query

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"dinedesk/shared"
	"dinedesk/shared/constant"
)

type Direction string

const (
	Asc  Direction = constant.SortDirAsc
	Desc Direction = constant.SortDirDesc
)

func (d Direction) Reverse() Direction {
	if d == Asc {
		return Desc
	}

	return Asc
}

func ParseDirection(value string) (Direction, bool) {
	switch Direction(strings.ToLower(value)) {
	case Asc:
		return Asc, true
	case Desc:
		return Desc, true
	default:
		return "", false
	}
}

// SortField orders two records ascending. DefaultDir is applied when the field is newly selected.
type SortField[T any] struct {
	Compare    func(a, b T) int
	DefaultDir Direction
}

type Spec[T any] struct {
	// Search returns the texts a search term is matched against.
	Search func(item T) []string
	// Filters maps a filter key to the record's value for it.
	Filters  map[string]func(item T) string
	Sorts    map[string]SortField[T]
	PageSize int
}

func (s Spec[T]) HasSort(field string) bool {
	_, ok := s.Sorts[field]

	return ok
}

type Params struct {
	Search  string            `json:"search"`
	Filters map[string]string `json:"filters,omitempty"`
	SortBy  string            `json:"sort_by,omitempty"`
	SortDir Direction         `json:"sort_dir,omitempty"`
	Page    int               `json:"page"`
}

type Result[T any] struct {
	Items     []T  `json:"items"`
	Page      int  `json:"page"`
	PageSize  int  `json:"page_size"`
	TotalPage int  `json:"total_page"`
	TotalData int  `json:"total_data"`
	Loading   bool `json:"loading"`
	Empty     bool `json:"empty"`
}

// Run filters, sorts and paginates items. The input slice is never modified.
func Run[T any](items []T, spec Spec[T], params Params) Result[T] {
	filtered := Filter(items, spec, params.Search, params.Filters)
	sorted := Sort(filtered, spec, params.SortBy, params.SortDir)

	page, totalPage := ClampPage(params.Page, len(sorted), spec.PageSize)

	return Result[T]{
		Items:     Paginate(sorted, page, spec.PageSize),
		Page:      page,
		PageSize:  spec.PageSize,
		TotalPage: totalPage,
		TotalData: len(sorted),
		Empty:     len(sorted) == 0,
	}
}

// Filter keeps the records matching the search text in at least one searchable field
// and matching every active filter. An empty value or "all" disables a filter.
func Filter[T any](items []T, spec Spec[T], search string, filters map[string]string) []T {
	term := strings.ToLower(strings.TrimSpace(search))
	result := make([]T, 0, len(items))

	for _, item := range items {
		if term != "" && !matchesSearch(item, spec, term) {
			continue
		}

		if !matchesFilters(item, spec, filters) {
			continue
		}

		result = append(result, item)
	}

	return result
}

func matchesSearch[T any](item T, spec Spec[T], term string) bool {
	if spec.Search == nil {
		return true
	}

	for _, text := range spec.Search(item) {
		if strings.Contains(strings.ToLower(text), term) {
			return true
		}
	}

	return false
}

func matchesFilters[T any](item T, spec Spec[T], filters map[string]string) bool {
	for key, want := range filters {
		if want == "" || want == constant.FilterAll {
			continue
		}

		value, ok := spec.Filters[key]
		if !ok {
			continue
		}

		if value(item) != want {
			return false
		}
	}

	return true
}

// Sort returns a stably sorted copy. Unknown or empty fields keep the original order.
func Sort[T any](items []T, spec Spec[T], field string, dir Direction) []T {
	sorted := slices.Clone(items)

	sortField, ok := spec.Sorts[field]
	if !ok || sortField.Compare == nil {
		return sorted
	}

	if dir == "" {
		dir = sortField.DefaultDir
	}

	slices.SortStableFunc(sorted, func(a, b T) int {
		if dir == Desc {
			return -sortField.Compare(a, b)
		}

		return sortField.Compare(a, b)
	})

	return sorted
}

// ClampPage bounds page to [1, totalPage]. An empty collection has exactly one empty page.
func ClampPage(page, total, pageSize int) (int, int) {
	totalPage := shared.CalculateTotalPage(total, pageSize)

	if page < constant.DefaultValuePage {
		page = constant.DefaultValuePage
	}

	if page > totalPage {
		page = totalPage
	}

	return page, totalPage
}

func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return slices.Clone(items)
	}

	start := (page - 1) * pageSize
	if start < 0 || start >= len(items) {
		return []T{}
	}

	end := min(start+pageSize, len(items))

	return slices.Clone(items[start:end])
}

// Comparators used by the resource specs.

func ByTime[T any](get func(T) time.Time) func(a, b T) int {
	return func(a, b T) int {
		return get(a).Compare(get(b))
	}
}

func ByNumber[T any, N cmp.Ordered](get func(T) N) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(get(a), get(b))
	}
}

func ByText[T any](get func(T) string) func(a, b T) int {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}
