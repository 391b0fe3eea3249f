package model

import (
	"time"

	"dinedesk/shared/query"
)

const (
	EntityName        = "menu item"
	StoreName         = "menu items"
	CategoryStoreName = "categories"

	FieldCategory = "category"
	FieldName     = "name"
	FieldPrice    = "price"
)

type Category struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Active       bool      `json:"active"`
	CreatedBy    string    `json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func CategoryID(c Category) string {
	return c.ID
}

type Item struct {
	ID           string  `json:"id"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Available    bool    `json:"available"`
}

func ID(i Item) string {
	return i.ID
}

type Counts struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

func CountItems(items []Item) Counts {
	counts := Counts{Total: len(items)}
	for _, item := range items {
		if item.Available {
			counts.Available++
		}
	}

	return counts
}

// QuerySpec filters on the category name and sorts names case-insensitively.
func QuerySpec(pageSize int) query.Spec[Item] {
	return query.Spec[Item]{
		Search: func(i Item) []string {
			return []string{i.Name}
		},
		Filters: map[string]func(Item) string{
			FieldCategory: func(i Item) string { return i.CategoryName },
		},
		Sorts: map[string]query.SortField[Item]{
			FieldName: {
				Compare:    query.ByText(func(i Item) string { return i.Name }),
				DefaultDir: query.Asc,
			},
			FieldPrice: {
				Compare:    query.ByNumber(func(i Item) float64 { return i.Price }),
				DefaultDir: query.Asc,
			},
		},
		PageSize: pageSize,
	}
}
