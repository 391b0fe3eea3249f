package dashboard_test

import (
	"testing"
	"time"

	"dinedesk/internal/dashboard"
	bookingModel "dinedesk/internal/domains/booking/model"
	calllogModel "dinedesk/internal/domains/calllog/model"
	orderModel "dinedesk/internal/domains/order/model"
	"dinedesk/shared/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestSummarizeKPIs(t *testing.T) {
	now := at(2026, time.March, 15, 12)

	calls := []calllogModel.CallLog{
		{ID: "c1", Purpose: calllogModel.PurposeComplete, CalledAt: at(2026, time.March, 15, 9)},
		{ID: "c2", Purpose: calllogModel.PurposeIncomplete, CalledAt: at(2026, time.March, 15, 10)},
		{ID: "c3", Purpose: calllogModel.PurposeIncomplete, CalledAt: at(2026, time.March, 14, 10)},
		{ID: "c4", Purpose: calllogModel.PurposeComplete, CalledAt: at(2026, time.February, 1, 10)},
		{ID: "c5", Purpose: calllogModel.PurposeComplete},
	}

	profile := session.Profile{Username: "Owner", RestaurantName: "Blue Door", PhoneNumber: "+15550100"}

	res := dashboard.Summarize(now, profile, calls, []bookingModel.Booking{{ID: "b1"}, {ID: "b2"}}, []orderModel.Order{{ID: "o1"}})

	assert.Equal(t, dashboard.KPIs{
		CallsToday:         2,
		MissedCallsToday:   1,
		AttendedCallsTotal: 3,
		TableBookingsTotal: 2,
		OrdersTotal:        1,
	}, res.KPIs)
	assert.Equal(t, "Blue Door", res.Restaurant.Name)
	assert.Equal(t, "Owner", res.Restaurant.OwnerName)
	assert.Equal(t, "+15550100", res.Restaurant.Phone)
}

func TestSummarizeChart(t *testing.T) {
	now := at(2026, time.March, 15, 12)

	orders := []orderModel.Order{
		{ID: "o1", Datetime: at(2026, time.March, 10, 12)},
		{ID: "o2", Datetime: at(2026, time.March, 11, 12)},
		{ID: "o3", Datetime: at(2025, time.April, 15, 12)},
		{ID: "o4", Datetime: at(2025, time.March, 15, 12)},
		{ID: "o5"},
	}
	bookings := []bookingModel.Booking{
		{ID: "b1", Datetime: at(2026, time.February, 15, 12)},
		{ID: "b2", Datetime: at(2026, time.April, 2, 12)},
	}

	res := dashboard.Summarize(now, session.Profile{}, nil, bookings, orders)

	require.Len(t, res.Chart, 12)
	assert.Equal(t, dashboard.MonthPoint{Month: "Apr", Year: 2025, Orders: 1}, res.Chart[0], "oldest month first")
	assert.Equal(t, dashboard.MonthPoint{Month: "Feb", Year: 2026, Bookings: 1}, res.Chart[10])
	assert.Equal(t, dashboard.MonthPoint{Month: "Mar", Year: 2026, Orders: 2}, res.Chart[11])

	var orderTotal, bookingTotal int
	for _, point := range res.Chart {
		orderTotal += point.Orders
		bookingTotal += point.Bookings
	}

	assert.Equal(t, 3, orderTotal, "orders outside the window or without a date are left out")
	assert.Equal(t, 1, bookingTotal, "future months are not charted")
	assert.Equal(t, 5, res.KPIs.OrdersTotal)
}

func TestSummarizeEmpty(t *testing.T) {
	res := dashboard.Summarize(at(2026, time.January, 5, 12), session.Profile{}, nil, nil, nil)

	assert.Equal(t, dashboard.KPIs{}, res.KPIs)
	require.Len(t, res.Chart, 12)
	assert.Equal(t, "Feb", res.Chart[0].Month)
	assert.Equal(t, 2025, res.Chart[0].Year)
	assert.Equal(t, "Jan", res.Chart[11].Month)
	assert.Equal(t, 2026, res.Chart[11].Year)
}
