package model

import (
	"strconv"
	"time"

	"dinedesk/shared/query"
)

const (
	EntityName = "feedback"
	StoreName  = "feedbacks"

	FieldStatus = "status"
	FieldRating = "rating"
	FieldDate   = "date"
)

type Status string

const (
	StatusNew      Status = "new"
	StatusResolved Status = "resolved"
)

// Feedback status lives only in the gateway and is reset to new by every refresh.
type Feedback struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
	Status    Status    `json:"status"`
	IsVisible bool      `json:"is_visible"`
}

func ID(f Feedback) string {
	return f.ID
}

func QuerySpec(pageSize int) query.Spec[Feedback] {
	return query.Spec[Feedback]{
		Search: func(f Feedback) []string {
			return []string{f.Customer}
		},
		Filters: map[string]func(Feedback) string{
			FieldStatus: func(f Feedback) string { return string(f.Status) },
			FieldRating: func(f Feedback) string { return strconv.Itoa(f.Rating) },
		},
		Sorts: map[string]query.SortField[Feedback]{
			FieldDate: {
				Compare:    query.ByTime(func(f Feedback) time.Time { return f.Date }),
				DefaultDir: query.Desc,
			},
			FieldRating: {
				Compare:    query.ByNumber(func(f Feedback) int { return f.Rating }),
				DefaultDir: query.Desc,
			},
		},
		PageSize: pageSize,
	}
}
