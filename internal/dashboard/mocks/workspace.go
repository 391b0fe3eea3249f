package mocks

import (
	"context"
	"testing"

	"dinedesk/config"
	otelMocks "dinedesk/infras/otel/mocks"
	"dinedesk/internal/dashboard"
	"dinedesk/shared/session"
)

// Session is the signed-in operator used by workspace tests.
var Session = &session.Session{
	ID:           "session-1",
	RestaurantID: "rest-1",
	Email:        "owner@example.com",
	Token:        "upstream-token",
	Profile: session.Profile{
		ID:             "rest-1",
		Username:       "Owner",
		Email:          "owner@example.com",
		RestaurantName: "Blue Door",
		TableTypes: []session.TableType{
			{ID: "tt-1", Name: "Indoor", Active: true, NoOfTables: 3},
			{ID: "tt-2", Name: "Patio", Active: false, NoOfTables: 2},
		},
	},
}

// Config has short polls and small pages so paging is visible in tests.
func Config() *config.Config {
	cfg := &config.Config{}

	cfg.Dashboard.Poll.CallLogSeconds = 3600
	cfg.Dashboard.Poll.BookingSeconds = 3600
	cfg.Dashboard.Poll.OrderSeconds = 3600
	cfg.Dashboard.Poll.FeedbackSeconds = 3600
	cfg.Dashboard.Poll.MenuSeconds = 3600
	cfg.Dashboard.PageSize.CallLog = 10
	cfg.Dashboard.PageSize.Booking = 5
	cfg.Dashboard.PageSize.Order = 10
	cfg.Dashboard.PageSize.Feedback = 10
	cfg.Dashboard.PageSize.Menu = 10
	cfg.Dashboard.NotificationBufferSize = 50

	return cfg
}

// NewContext builds a workspace over deps for Session and attaches it to a context.
// Unset dependencies are only a problem when a test reaches them.
func NewContext(t *testing.T, deps dashboard.Dependencies) (context.Context, *dashboard.Workspace) {
	t.Helper()

	if deps.Otel == nil {
		deps.Otel = otelMocks.NewOtel()
	}

	sess := *Session
	ws := dashboard.NewWorkspace(context.Background(), Config(), &sess, deps)
	t.Cleanup(ws.Close)

	ctx := session.WithContext(context.Background(), &sess)

	return dashboard.WithContext(ctx, ws), ws
}
