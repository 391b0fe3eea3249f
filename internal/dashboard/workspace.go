// Package dashboard holds the per-session state of the operator dashboard: one
// resource view per screen, the order wizard and the notification feed.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"dinedesk/config"
	"dinedesk/infras/kafka"
	"dinedesk/infras/otel"
	bookingModel "dinedesk/internal/domains/booking/model"
	bookingDto "dinedesk/internal/domains/booking/model/dto"
	bookingRepo "dinedesk/internal/domains/booking/repository"
	calllogModel "dinedesk/internal/domains/calllog/model"
	calllogDto "dinedesk/internal/domains/calllog/model/dto"
	calllogRepo "dinedesk/internal/domains/calllog/repository"
	feedbackModel "dinedesk/internal/domains/feedback/model"
	feedbackDto "dinedesk/internal/domains/feedback/model/dto"
	feedbackRepo "dinedesk/internal/domains/feedback/repository"
	menuModel "dinedesk/internal/domains/menu/model"
	menuDto "dinedesk/internal/domains/menu/model/dto"
	menuRepo "dinedesk/internal/domains/menu/repository"
	orderModel "dinedesk/internal/domains/order/model"
	orderDto "dinedesk/internal/domains/order/model/dto"
	orderRepo "dinedesk/internal/domains/order/repository"
	"dinedesk/internal/domains/order/workflow"
	"dinedesk/shared/constant"
	"dinedesk/shared/failure"
	"dinedesk/shared/logger"
	"dinedesk/shared/notify"
	"dinedesk/shared/query"
	"dinedesk/shared/session"
	"dinedesk/shared/store"
	"dinedesk/shared/timezone"
	"dinedesk/shared/view"
)

// View names, also used as the resource of change events.
const (
	ViewCallLogs  = "call-logs"
	ViewBookings  = "bookings"
	ViewOrders    = "orders"
	ViewFeedbacks = "feedbacks"
	ViewMenu      = "menu"
)

var Views = []string{ViewCallLogs, ViewBookings, ViewOrders, ViewFeedbacks, ViewMenu}

type Dependencies struct {
	CallLogs  calllogRepo.CallLog
	Bookings  bookingRepo.Booking
	Orders    orderRepo.Order
	Feedbacks feedbackRepo.Feedback
	Menu      menuRepo.Menu
	Feed      kafka.Feed
	Otel      otel.Otel
}

type (
	CallLogView  = view.Resource[calllogModel.CallLog, calllogDto.CallLogForm]
	BookingView  = view.Resource[bookingModel.Booking, bookingDto.BookingForm]
	OrderView    = view.Resource[orderModel.Order, orderDto.OrderDetails]
	FeedbackView = view.Resource[feedbackModel.Feedback, feedbackDto.FeedbackForm]
	MenuView     = view.Resource[menuModel.Item, menuDto.ItemForm]
)

// binding erases the record type of a view for the live connection.
type binding struct {
	mount   func()
	unmount func()
	close   func()
	mounted func() bool
	refresh func(ctx context.Context) error
	current func() any
	watch   func(fn func()) (cancel func())
}

func bind[T, F any](r *view.Resource[T, F]) binding {
	return binding{
		mount:   r.Mount,
		unmount: r.Unmount,
		close:   r.Close,
		mounted: r.Mounted,
		refresh: r.Store.Refresh,
		current: func() any { return r.Result(r.Query.Params()) },
		watch: func(fn func()) func() {
			return r.Store.OnUpdate(func([]T) { fn() })
		},
	}
}

type Workspace struct {
	ID           string
	RestaurantID string

	CallLogs      *CallLogView
	Bookings      *BookingView
	Orders        *OrderView
	Feedbacks     *FeedbackView
	Menu          *MenuView
	Categories    *store.Store[menuModel.Category]
	OrderWorkflow *workflow.Machine
	Notifications *notify.Center

	feed     kafka.Feed
	bindings map[string]binding
	ctx      context.Context
	cancel   context.CancelFunc
	session  atomic.Pointer[session.Session]
	lastUsed atomic.Int64
	live     atomic.Int32
	closed   sync.Once
}

func seconds(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}

	return time.Duration(value) * time.Second
}

// NewWorkspace builds every store of the session. Nothing is fetched until a view is
// read or mounted.
func NewWorkspace(ctx context.Context, cfg *config.Config, sess *session.Session, deps Dependencies) *Workspace {
	ctx, cancel := context.WithCancel(ctx)

	ws := &Workspace{
		ID:            sess.ID,
		RestaurantID:  sess.RestaurantID,
		Notifications: notify.NewCenter(cfg.Dashboard.NotificationBufferSize),
		feed:          deps.Feed,
		ctx:           ctx,
		cancel:        cancel,
	}
	ws.session.Store(sess)
	ws.Touch()

	poll := cfg.Dashboard.Poll
	pageSize := cfg.Dashboard.PageSize

	callLogs := store.New(calllogModel.StoreName, calllogModel.ID, func(ctx context.Context) ([]calllogModel.CallLog, error) {
		return deps.CallLogs.List(ctx, ws.Session())
	}, ws.Notifications, deps.Otel)
	ws.CallLogs = view.New[calllogModel.CallLog, calllogDto.CallLogForm](ctx, callLogs, calllogModel.QuerySpec(pageSize.CallLog), seconds(poll.CallLogSeconds, 5))

	bookings := store.New(bookingModel.StoreName, bookingModel.ID, func(ctx context.Context) ([]bookingModel.Booking, error) {
		return deps.Bookings.List(ctx, ws.Session())
	}, ws.Notifications, deps.Otel)
	ws.Bookings = view.New[bookingModel.Booking, bookingDto.BookingForm](ctx, bookings, bookingModel.QuerySpec(pageSize.Booking), seconds(poll.BookingSeconds, 5))

	orders := store.New(orderModel.StoreName, orderModel.ID, func(ctx context.Context) ([]orderModel.Order, error) {
		return deps.Orders.List(ctx, ws.Session())
	}, ws.Notifications, deps.Otel)
	ws.Orders = view.New[orderModel.Order, orderDto.OrderDetails](ctx, orders, orderModel.QuerySpec(pageSize.Order), seconds(poll.OrderSeconds, 10))

	feedbacks := store.New(feedbackModel.StoreName, feedbackModel.ID, func(ctx context.Context) ([]feedbackModel.Feedback, error) {
		return deps.Feedbacks.List(ctx, ws.Session())
	}, ws.Notifications, deps.Otel)
	ws.Feedbacks = view.New[feedbackModel.Feedback, feedbackDto.FeedbackForm](ctx, feedbacks, feedbackModel.QuerySpec(pageSize.Feedback), seconds(poll.FeedbackSeconds, 20))

	ws.Categories = store.New(menuModel.CategoryStoreName, menuModel.CategoryID, func(ctx context.Context) ([]menuModel.Category, error) {
		return deps.Menu.ListCategories(ctx, ws.Session())
	}, ws.Notifications, deps.Otel)

	items := store.New(menuModel.StoreName, menuModel.ID, func(ctx context.Context) ([]menuModel.Item, error) {
		return ws.fetchMenu(ctx, deps.Menu)
	}, ws.Notifications, deps.Otel)
	ws.Menu = view.New[menuModel.Item, menuDto.ItemForm](ctx, items, menuModel.QuerySpec(pageSize.Menu), seconds(poll.MenuSeconds, 20))

	if err := ws.Menu.Query.SetSort(menuModel.FieldName, query.Asc); err != nil {
		l := logger.ForSession(sess)
		l.Warn().Err(err).Msg("failed to set initial menu sort")
	}

	ws.OrderWorkflow = workflow.New(func(ctx context.Context, category menuModel.Category) ([]menuModel.Item, error) {
		return deps.Menu.ListItems(ctx, ws.Session(), category)
	}, ws.Notifications, deps.Otel)

	ws.bindings = map[string]binding{
		ViewCallLogs:  bind(ws.CallLogs),
		ViewBookings:  bind(ws.Bookings),
		ViewOrders:    bind(ws.Orders),
		ViewFeedbacks: bind(ws.Feedbacks),
		ViewMenu:      bind(ws.Menu),
	}

	return ws
}

// fetchMenu loads the categories and then the items of every category. Any failed
// request fails the whole load so a partial menu never replaces a complete one.
func (w *Workspace) fetchMenu(ctx context.Context, repo menuRepo.Menu) ([]menuModel.Item, error) {
	sess := w.Session()

	categories, err := repo.ListCategories(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	w.Categories.Replace(categories)

	items := make([]menuModel.Item, 0)

	for _, category := range categories {
		categoryItems, err := repo.ListItems(ctx, sess, category)
		if err != nil {
			return nil, fmt.Errorf("failed to list items of category %s: %w", category.ID, err)
		}

		items = append(items, categoryItems...)
	}

	return items, nil
}

func (w *Workspace) Session() *session.Session {
	return w.session.Load()
}

// SetSession swaps in a newer copy of the session, e.g. after a profile update.
func (w *Workspace) SetSession(sess *session.Session) {
	if sess == nil || sess.ID != w.ID {
		return
	}

	w.session.Store(sess)
}

func (w *Workspace) Touch() {
	w.lastUsed.Store(timezone.Now().UnixNano())
}

func (w *Workspace) LastUsed() time.Time {
	return time.Unix(0, w.lastUsed.Load())
}

// Live reports whether a live connection currently holds views of this workspace.
func (w *Workspace) Live() bool {
	return w.live.Load() > 0
}

// Mount starts the pollers of the named views. The returned func releases them.
func (w *Workspace) Mount(views []string) (unmount func(), err error) {
	bindings := make([]binding, 0, len(views))

	for _, name := range views {
		b, ok := w.bindings[name]
		if !ok {
			return nil, failure.BadRequestFromString("unknown view " + name)
		}

		bindings = append(bindings, b)
	}

	w.live.Add(1)

	for _, b := range bindings {
		b.mount()
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			for _, b := range bindings {
				b.unmount()
			}

			w.live.Add(-1)
			w.Touch()
		})
	}, nil
}

// Snapshot is the current page of a view under its stored cursor.
func (w *Workspace) Snapshot(name string) (any, bool) {
	b, ok := w.bindings[name]
	if !ok {
		return nil, false
	}

	return b.current(), true
}

// Watch calls fn with the view name after every store update of the named views.
func (w *Workspace) Watch(views []string, fn func(name string)) (cancel func()) {
	cancels := make([]func(), 0, len(views))

	for _, name := range views {
		b, ok := w.bindings[name]
		if !ok {
			continue
		}

		cancels = append(cancels, b.watch(func() { fn(name) }))
	}

	return func() {
		for _, c := range cancels {
			c()
		}
	}
}

// RefreshView refreshes a mounted view now instead of waiting for its next tick.
// Unmounted views refresh on their next read anyway.
func (w *Workspace) RefreshView(ctx context.Context, name string) {
	b, ok := w.bindings[name]
	if !ok || !b.mounted() {
		return
	}

	_ = b.refresh(ctx)
}

// Announce tells the other sessions of the restaurant that a view changed.
func (w *Workspace) Announce(ctx context.Context, name, action string) {
	if w.feed == nil {
		return
	}

	w.feed.Publish(ctx, kafka.ChangeEvent{
		RestaurantID: w.RestaurantID,
		Resource:     name,
		Action:       action,
		Origin:       w.ID,
		OccurredAt:   timezone.Now(),
	})
}

// Context lives as long as the workspace and outlives single requests.
func (w *Workspace) Context() context.Context {
	return w.ctx
}

func (w *Workspace) Close() {
	w.closed.Do(func() {
		for _, b := range w.bindings {
			b.close()
		}

		w.OrderWorkflow.Cancel()
		w.cancel()
	})
}

func WithContext(ctx context.Context, ws *Workspace) context.Context {
	return context.WithValue(ctx, constant.ContextKeyWorkspace, ws)
}

// FromContext returns the workspace the auth middleware attached, or an unauthorized
// failure when the request carries none.
func FromContext(ctx context.Context) (*Workspace, error) {
	ws, ok := ctx.Value(constant.ContextKeyWorkspace).(*Workspace)
	if !ok || ws == nil {
		return nil, failure.Unauthorized("session expired, please login again")
	}

	return ws, nil
}
