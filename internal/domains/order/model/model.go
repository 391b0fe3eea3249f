package model

import (
	"strings"
	"time"

	"dinedesk/shared/query"
)

const (
	EntityName = "order"
	StoreName  = "orders"

	FieldStatus = "status"
	FieldDate   = "date"
	FieldTotal  = "total"
)

type Status string

const (
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{StatusDelivered, StatusPreparing, StatusReady, StatusCancelled}

func ParseStatus(value string) (Status, bool) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Statuses {
		if status == known {
			return status, true
		}
	}

	return "", false
}

type Item struct {
	MenuID string  `json:"menu_id,omitempty"`
	Name   string  `json:"name"`
	Qty    int     `json:"qty"`
	Price  float64 `json:"price"`
}

func (i Item) Subtotal() float64 {
	return float64(i.Qty) * i.Price
}

type Order struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id,omitempty"`
	Customer    string    `json:"customer"`
	Phone       string    `json:"phone,omitempty"`
	TableNumber string    `json:"table_number,omitempty"`
	Items       []Item    `json:"items"`
	Total       float64   `json:"total"`
	Status      Status    `json:"status"`
	Datetime    time.Time `json:"datetime"`
}

func ID(o Order) string {
	return o.ID
}

func Sum(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	return total
}

func QuerySpec(pageSize int) query.Spec[Order] {
	return query.Spec[Order]{
		Search: func(o Order) []string {
			return []string{o.Customer}
		},
		Filters: map[string]func(Order) string{
			FieldStatus: func(o Order) string { return string(o.Status) },
		},
		Sorts: map[string]query.SortField[Order]{
			FieldDate: {
				Compare:    query.ByTime(func(o Order) time.Time { return o.Datetime }),
				DefaultDir: query.Desc,
			},
			FieldTotal: {
				Compare:    query.ByNumber(func(o Order) float64 { return o.Total }),
				DefaultDir: query.Desc,
			},
		},
		PageSize: pageSize,
	}
}
