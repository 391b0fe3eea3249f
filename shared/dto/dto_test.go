package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dinedesk/shared/constant"
	"dinedesk/shared/dto"
	"dinedesk/shared/query"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want *query.Params
	}{
		{
			name: "no cursor",
			url:  "/v1/bookings",
			want: nil,
		},
		{
			name: "full cursor",
			url:  "/v1/bookings?page=2&search=%20ann%20&sort_by=datetime&sort_dir=ASC&status=confirmed",
			want: &query.Params{
				Search:  "ann",
				Filters: map[string]string{constant.RequestParamStatus: "confirmed"},
				SortBy:  "datetime",
				SortDir: query.Asc,
				Page:    2,
			},
		},
		{
			name: "invalid page falls back to first",
			url:  "/v1/bookings?page=abc",
			want: &query.Params{Filters: map[string]string{}, Page: 1},
		},
		{
			name: "unknown filter key ignored",
			url:  "/v1/bookings?rating=5",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)

			q := dto.QueryParams{}
			q.FromRequest(req, constant.RequestParamStatus)

			assert.Equal(t, tt.want, q.ToParams())
		})
	}
}

func TestQueryUpdateRequest_ToUpdate(t *testing.T) {
	search := "tea"
	page := 3

	update := dto.QueryUpdateRequest{Search: &search, Page: &page, SortDir: "desc"}.ToUpdate()

	assert.Equal(t, &search, update.Search)
	assert.Equal(t, &page, update.Page)
	assert.Equal(t, query.Desc, update.SortDir)
	assert.Nil(t, update.SortBy)
}
