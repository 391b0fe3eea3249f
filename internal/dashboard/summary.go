package dashboard

import (
	"context"
	"sync"
	"time"

	bookingModel "dinedesk/internal/domains/booking/model"
	calllogModel "dinedesk/internal/domains/calllog/model"
	orderModel "dinedesk/internal/domains/order/model"
	"dinedesk/shared/session"
	"dinedesk/shared/timezone"
)

const chartMonths = 12

type Restaurant struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	OwnerName string `json:"owner_name"`
	Address   string `json:"address"`
}

type KPIs struct {
	CallsToday         int `json:"calls_today"`
	MissedCallsToday   int `json:"missed_calls_today"`
	AttendedCallsTotal int `json:"attended_calls_total"`
	TableBookingsTotal int `json:"table_bookings_total"`
	OrdersTotal        int `json:"orders_total"`
}

type MonthPoint struct {
	Month    string `json:"month"`
	Year     int    `json:"year"`
	Orders   int    `json:"orders"`
	Bookings int    `json:"bookings"`
}

type Summary struct {
	Restaurant Restaurant   `json:"restaurant"`
	KPIs       KPIs         `json:"kpis"`
	Chart      []MonthPoint `json:"chart"`
	Loading    bool         `json:"loading"`
}

// Summarize computes the dashboard cards and the last twelve months of orders and
// bookings, oldest month first. "Today" is the calendar day of now in the app timezone.
func Summarize(now time.Time, profile session.Profile, calls []calllogModel.CallLog, bookings []bookingModel.Booking, orders []orderModel.Order) Summary {
	res := Summary{
		Restaurant: Restaurant{
			Name:      profile.RestaurantName,
			Email:     profile.Email,
			Phone:     profile.PhoneNumber,
			OwnerName: profile.Username,
			Address:   profile.RestaurantAddress,
		},
	}

	for _, call := range calls {
		today := !call.CalledAt.IsZero() && timezone.SameDay(call.CalledAt, now)
		if today {
			res.KPIs.CallsToday++
		}

		if today && call.Missed() {
			res.KPIs.MissedCallsToday++
		}

		if call.Attended() {
			res.KPIs.AttendedCallsTotal++
		}
	}

	res.KPIs.TableBookingsTotal = len(bookings)
	res.KPIs.OrdersTotal = len(orders)

	now = timezone.ToAppTime(now)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(chartMonths - 1), 0)

	res.Chart = make([]MonthPoint, chartMonths)
	for i := range res.Chart {
		start := first.AddDate(0, i, 0)
		res.Chart[i] = MonthPoint{Month: start.Month().String()[:3], Year: start.Year()}
	}

	bucket := func(t time.Time) int {
		if t.IsZero() {
			return -1
		}

		t = timezone.ToAppTime(t)
		idx := (t.Year()-first.Year())*12 + int(t.Month()) - int(first.Month())
		if idx < 0 || idx >= chartMonths {
			return -1
		}

		return idx
	}

	for _, order := range orders {
		if idx := bucket(order.Datetime); idx >= 0 {
			res.Chart[idx].Orders++
		}
	}

	for _, booking := range bookings {
		if idx := bucket(booking.Datetime); idx >= 0 {
			res.Chart[idx].Bookings++
		}
	}

	return res
}

// Summary brings the call log, booking and order stores up to date and summarizes them.
func (w *Workspace) Summary(ctx context.Context) Summary {
	var wg sync.WaitGroup

	for _, refresh := range []func(context.Context){w.CallLogs.Sync, w.Bookings.Sync, w.Orders.Sync} {
		wg.Add(1)

		go func() {
			defer wg.Done()

			refresh(ctx)
		}()
	}

	wg.Wait()

	res := Summarize(timezone.Now(), w.Session().Profile, w.CallLogs.Store.Snapshot(), w.Bookings.Store.Snapshot(), w.Orders.Store.Snapshot())
	res.Loading = w.CallLogs.Store.Loading() || w.Bookings.Store.Loading() || w.Orders.Store.Loading()

	return res
}
