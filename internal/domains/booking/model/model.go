package model

import (
	"strings"
	"time"

	"dinedesk/shared/query"
)

const (
	EntityName = "booking"
	StoreName  = "bookings"

	FieldID        = "id"
	FieldStatus    = "status"
	FieldDatetime  = "datetime"
	FieldPartySize = "partySize"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(value string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusPending:
		return StatusPending, true
	case StatusConfirmed:
		return StatusConfirmed, true
	case StatusCancelled:
		return StatusCancelled, true
	default:
		return "", false
	}
}

type Booking struct {
	ID          string    `json:"id"`
	BookingID   int       `json:"booking_id,omitempty"`
	Customer    string    `json:"customer"`
	Phone       string    `json:"phone"`
	Datetime    time.Time `json:"datetime"`
	PartySize   int       `json:"party_size"`
	Status      Status    `json:"status"`
	BookingTime string    `json:"booking_time"`
	TableNumber string    `json:"table_number"`
}

func ID(b Booking) string {
	return b.ID
}

// QuerySpec lists bookings by customer or phone, newest first when sorted by date.
func QuerySpec(pageSize int) query.Spec[Booking] {
	return query.Spec[Booking]{
		Search: func(b Booking) []string {
			return []string{b.Customer, b.Phone}
		},
		Filters: map[string]func(Booking) string{
			FieldStatus: func(b Booking) string { return string(b.Status) },
		},
		Sorts: map[string]query.SortField[Booking]{
			FieldDatetime: {
				Compare:    query.ByTime(func(b Booking) time.Time { return b.Datetime }),
				DefaultDir: query.Desc,
			},
			FieldPartySize: {
				Compare:    query.ByNumber(func(b Booking) int { return b.PartySize }),
				DefaultDir: query.Desc,
			},
		},
		PageSize: pageSize,
	}
}

type Table struct {
	Number int    `json:"number"`
	Booked bool   `json:"booked"`
	Label  string `json:"label"`
}

type TableGroup struct {
	TypeID   string  `json:"type_id"`
	TypeName string  `json:"type_name"`
	Tables   []Table `json:"tables"`
}
