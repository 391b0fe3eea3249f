// Package service serves the overview screen and the header bell: the summary cards,
// the unseen-record badges and the pending toasts of the session.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dinedesk/config"
	"dinedesk/infras/otel"
	"dinedesk/internal/dashboard"
	bookingModel "dinedesk/internal/domains/booking/model"
	calllogModel "dinedesk/internal/domains/calllog/model"
	feedbackModel "dinedesk/internal/domains/feedback/model"
	orderModel "dinedesk/internal/domains/order/model"
	"dinedesk/internal/domains/overview/model"
	"dinedesk/shared/cache"
	"dinedesk/shared/constant"
	"dinedesk/shared/failure"
	"dinedesk/shared/notify"
	"dinedesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

// BadgeViews are the views the bell counts unseen records for.
var BadgeViews = []string{dashboard.ViewCallLogs, dashboard.ViewBookings, dashboard.ViewOrders, dashboard.ViewFeedbacks}

type Overview interface {
	Summary(ctx context.Context) (dashboard.Summary, error)
	Badges(ctx context.Context) (model.Badges, error)
	MarkSeen(ctx context.Context, view string) error
	Notifications(ctx context.Context) ([]notify.Notification, error)
}

type serviceImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Overview {
	return &serviceImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func badgeKey(ws *dashboard.Workspace, view string) string {
	return fmt.Sprintf("badge:%s:%s:%s", ws.RestaurantID, ws.Session().Email, view)
}

func countSince[T any](items []T, since time.Time, at func(T) time.Time) int {
	n := 0

	for _, item := range items {
		if at(item).After(since) {
			n++
		}
	}

	return n
}

func (s *serviceImpl) Summary(ctx context.Context) (res dashboard.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview.Summary")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Summary(ctx), nil
}

// lastSeen falls back to the sign-in time when nothing is stored, so a fresh session
// only counts what arrived after it started.
func (s *serviceImpl) lastSeen(ctx context.Context, ws *dashboard.Workspace, view string) time.Time {
	var seen time.Time

	err := s.cache.Get(ctx, badgeKey(ws, view), &seen)
	if err == nil {
		return seen
	}

	if !cache.IsMiss(err) {
		log.Warn().Err(err).Str("view", view).Msg("failed to read last seen time")
	}

	return ws.Session().CreatedAt
}

func (s *serviceImpl) Badges(ctx context.Context) (res model.Badges, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview.Badges")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	var wg sync.WaitGroup

	for _, ensure := range []func(context.Context){ws.CallLogs.Ensure, ws.Bookings.Ensure, ws.Orders.Ensure, ws.Feedbacks.Ensure} {
		wg.Add(1)

		go func() {
			defer wg.Done()

			ensure(ctx)
		}()
	}

	wg.Wait()

	res.CallLogs = countSince(ws.CallLogs.Store.Snapshot(), s.lastSeen(ctx, ws, dashboard.ViewCallLogs), func(c calllogModel.CallLog) time.Time { return c.CalledAt })
	res.Bookings = countSince(ws.Bookings.Store.Snapshot(), s.lastSeen(ctx, ws, dashboard.ViewBookings), func(b bookingModel.Booking) time.Time { return b.Datetime })
	res.Orders = countSince(ws.Orders.Store.Snapshot(), s.lastSeen(ctx, ws, dashboard.ViewOrders), func(o orderModel.Order) time.Time { return o.Datetime })
	res.Feedbacks = countSince(ws.Feedbacks.Store.Snapshot(), s.lastSeen(ctx, ws, dashboard.ViewFeedbacks), func(f feedbackModel.Feedback) time.Time { return f.Date })

	return res, nil
}

func (s *serviceImpl) MarkSeen(ctx context.Context, view string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview.MarkSeen")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	known := false

	for _, v := range BadgeViews {
		if v == view {
			known = true

			break
		}
	}

	if !known {
		return failure.BadRequestFromString("unknown view " + view)
	}

	err = s.cache.Save(ctx, badgeKey(ws, view), timezone.Now(), s.cfg.Dashboard.SessionTTLSeconds)
	if err != nil {
		log.Error().Err(err).Str("view", view).Msg("failed to save last seen time")

		return fmt.Errorf("failed to save last seen time: %w", err)
	}

	return nil
}

func (s *serviceImpl) Notifications(ctx context.Context) ([]notify.Notification, error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return ws.Notifications.Drain(), nil
}
