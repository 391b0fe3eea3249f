package dto

import (
	"net/http"
	"strconv"
	"strings"

	"dinedesk/shared/constant"
	"dinedesk/shared/query"
	"dinedesk/shared/view"
)

// QueryParams is the list cursor a request may carry in its query string.
type QueryParams struct {
	Page    int
	Search  string
	SortBy  string
	SortDir query.Direction
	Filters map[string]string

	explicit bool
}

// FromRequest reads page, search, sort and the given filter keys. A request that
// carries none of them asks for the stored cursor instead.
// Example:
//
//	q := dto.QueryParams{}
//	q.FromRequest(req, constant.RequestParamStatus)
func (q *QueryParams) FromRequest(r *http.Request, filterKeys ...string) {
	queryParams := r.URL.Query()

	q.Page = constant.DefaultValuePage
	q.Filters = map[string]string{}

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		q.explicit = true

		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if queryParams.Has(constant.RequestParamSearch) {
		q.explicit = true
		q.Search = strings.TrimSpace(queryParams.Get(constant.RequestParamSearch))
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.explicit = true
		q.SortBy = sortBy
	}

	if sortDir, ok := query.ParseDirection(queryParams.Get(constant.RequestParamSortDir)); ok {
		q.explicit = true
		q.SortDir = sortDir
	}

	for _, key := range filterKeys {
		if value := queryParams.Get(key); value != "" {
			q.explicit = true
			q.Filters[key] = value
		}
	}
}

// ToParams returns nil when the request did not carry a cursor.
func (q QueryParams) ToParams() *query.Params {
	if !q.explicit {
		return nil
	}

	return &query.Params{
		Search:  q.Search,
		Filters: q.Filters,
		SortBy:  q.SortBy,
		SortDir: q.SortDir,
		Page:    q.Page,
	}
}

// QueryUpdateRequest moves the stored cursor of a view.
type QueryUpdateRequest struct {
	Search  *string           `json:"search"   validate:"omitempty,max=100"`
	Filters map[string]string `json:"filters"`
	SortBy  *string           `json:"sort_by"`
	SortDir string            `json:"sort_dir" validate:"omitempty,oneof=asc desc"`
	Page    *int              `json:"page"     validate:"omitempty,gte=1"`
}

func (q QueryUpdateRequest) ToUpdate() view.Update {
	return view.Update{
		Search:  q.Search,
		Filters: q.Filters,
		SortBy:  q.SortBy,
		SortDir: query.Direction(q.SortDir),
		Page:    q.Page,
	}
}
