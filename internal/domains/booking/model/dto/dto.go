package dto

import (
	"encoding/json"
	"net/url"
	"strconv"

	"dinedesk/internal/domains/booking/model"
	"dinedesk/shared"
	"dinedesk/shared/constant"
	"dinedesk/shared/timezone"
)

const (
	defaultPartySize = 2
	clockLayout      = "15:04"
)

// BookingRecord is a booking as the backend returns it from list, view, create and update.
type BookingRecord struct {
	ID            string          `json:"_id"`
	BookingID     json.RawMessage `json:"bookingId"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	CreatedAt     string          `json:"createdAt"`
	NoOfPerson    json.RawMessage `json:"noOfPerson"`
	Status        json.RawMessage `json:"status"`
	BookingTime   string          `json:"bookingTime"`
	TableNo       string          `json:"tableNo"`
}

// StatusFromWire maps the backend's boolean-as-string. Cancelled never comes from the backend.
func StatusFromWire(value string) model.Status {
	if shared.IsTrueString(value) {
		return model.StatusConfirmed
	}

	return model.StatusPending
}

func StatusToWire(status model.Status) string {
	if status == model.StatusConfirmed {
		return constant.BoolStringTrue
	}

	return constant.BoolStringFalse
}

func (r BookingRecord) ToModel() model.Booking {
	return model.Booking{
		ID:          r.ID,
		BookingID:   int(shared.ParseNumber(r.BookingID)),
		Customer:    r.CustomerName,
		Phone:       r.CustomerPhone,
		Datetime:    timezone.ParseTimestamp(r.CreatedAt),
		PartySize:   int(shared.ParseNumber(r.NoOfPerson)),
		Status:      StatusFromWire(shared.ParseString(r.Status)),
		BookingTime: r.BookingTime,
		TableNumber: r.TableNo,
	}
}

func ToModels(records []BookingRecord) []model.Booking {
	res := make([]model.Booking, 0, len(records))
	for _, record := range records {
		res = append(res, record.ToModel())
	}

	return res
}

// BookingForm backs the Add and Edit dialogs.
type BookingForm struct {
	Customer    string       `json:"customer"     validate:"notblank,max=100"`
	Phone       string       `json:"phone"        validate:"notblank,phone"`
	PartySize   int          `json:"party_size"   validate:"gte=1,lte=100"`
	Status      model.Status `json:"status"       validate:"required,oneof=pending confirmed cancelled"`
	BookingTime string       `json:"booking_time" validate:"notblank"`
	TableNumber string       `json:"table_number" validate:"omitempty,max=20"`
}

func NewForm() BookingForm {
	return BookingForm{PartySize: defaultPartySize, Status: model.StatusPending}
}

// FormFromModel reshapes a booking for editing. A missing booking time falls back to
// the clock time of the booking's timestamp.
func FormFromModel(b model.Booking) BookingForm {
	form := BookingForm{
		Customer:    b.Customer,
		Phone:       b.Phone,
		PartySize:   b.PartySize,
		Status:      b.Status,
		BookingTime: b.BookingTime,
		TableNumber: b.TableNumber,
	}

	if form.PartySize == 0 {
		form.PartySize = defaultPartySize
	}

	if form.BookingTime == "" && !b.Datetime.IsZero() {
		form.BookingTime = timezone.Format(b.Datetime, clockLayout)
	}

	return form
}

func (f BookingForm) ToCreateForm(restaurantID string) url.Values {
	return url.Values{
		"userRestaurantId": {restaurantID},
		"created_by":       {restaurantID},
		"status":           {StatusToWire(f.Status)},
		"tableNumber":      {f.TableNumber},
		"customerPhone":    {f.Phone},
		"customerName":     {f.Customer},
		"noOfPerson":       {strconv.Itoa(f.PartySize)},
		"bookingTime":      {f.BookingTime},
	}
}

func (f BookingForm) ToUpdateForm() url.Values {
	return url.Values{
		"customerName":  {f.Customer},
		"customerPhone": {f.Phone},
		"bookingTime":   {f.BookingTime},
		"noOfPerson":    {strconv.Itoa(f.PartySize)},
		"tableNo":       {f.TableNumber},
		"status":        {StatusToWire(f.Status)},
	}
}

// Merge fills the fields the backend left out of a write response from the submitted form.
func (f BookingForm) Merge(b model.Booking, id string) model.Booking {
	if b.ID == "" {
		b.ID = id
	}

	if b.Customer == "" {
		b.Customer = f.Customer
	}

	if b.Phone == "" {
		b.Phone = f.Phone
	}

	if b.Datetime.IsZero() {
		b.Datetime = timezone.Now()
	}

	if b.PartySize == 0 {
		b.PartySize = f.PartySize
	}

	if b.TableNumber == "" {
		b.TableNumber = f.TableNumber
	}

	if b.BookingTime == "" {
		b.BookingTime = f.BookingTime
	}

	return b
}

type TableLayoutResponse struct {
	Groups []model.TableGroup `json:"groups"`
}
