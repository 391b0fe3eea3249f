package router

import (
	"dinedesk/internal/handlers/auth"
	"dinedesk/internal/handlers/booking"
	"dinedesk/internal/handlers/calllog"
	"dinedesk/internal/handlers/feedback"
	"dinedesk/internal/handlers/live"
	"dinedesk/internal/handlers/menu"
	"dinedesk/internal/handlers/order"
	"dinedesk/internal/handlers/overview"
	"dinedesk/internal/handlers/settings"
	"dinedesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Overview overview.Handler
	CallLog  calllog.Handler
	Booking  booking.Handler
	Order    order.Handler
	Feedback feedback.Handler
	Menu     menu.Handler
	Settings settings.Handler
	Live     live.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.Auth)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Overview.Router(routerGroup)
		r.DomainHandlers.CallLog.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Feedback.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Live.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
