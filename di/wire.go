//go:build wireinject
// +build wireinject

package di

import (
	"dinedesk/config"
	"dinedesk/infras/api"
	"dinedesk/infras/jwt"
	"dinedesk/infras/kafka"
	"dinedesk/infras/otel"
	"dinedesk/infras/redis"
	"dinedesk/infras/s3"
	"dinedesk/internal/dashboard"
	"dinedesk/permissions"
	"dinedesk/shared/cache"
	"dinedesk/shared/session"
	"dinedesk/transport/http"
	"dinedesk/transport/http/middleware"
	"dinedesk/transport/http/router"

	"github.com/google/wire"

	authRepository "dinedesk/internal/domains/auth/repository"
	authService "dinedesk/internal/domains/auth/service"
	bookingRepository "dinedesk/internal/domains/booking/repository"
	bookingService "dinedesk/internal/domains/booking/service"
	calllogRepository "dinedesk/internal/domains/calllog/repository"
	calllogService "dinedesk/internal/domains/calllog/service"
	feedbackRepository "dinedesk/internal/domains/feedback/repository"
	feedbackService "dinedesk/internal/domains/feedback/service"
	menuRepository "dinedesk/internal/domains/menu/repository"
	menuService "dinedesk/internal/domains/menu/service"
	orderRepository "dinedesk/internal/domains/order/repository"
	orderService "dinedesk/internal/domains/order/service"
	overviewService "dinedesk/internal/domains/overview/service"
	settingsService "dinedesk/internal/domains/settings/service"

	authHandler "dinedesk/internal/handlers/auth"
	bookingHandler "dinedesk/internal/handlers/booking"
	calllogHandler "dinedesk/internal/handlers/calllog"
	feedbackHandler "dinedesk/internal/handlers/feedback"
	liveHandler "dinedesk/internal/handlers/live"
	menuHandler "dinedesk/internal/handlers/menu"
	orderHandler "dinedesk/internal/handlers/order"
	overviewHandler "dinedesk/internal/handlers/overview"
	settingsHandler "dinedesk/internal/handlers/settings"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	api.New,
	s3.New,
	kafka.NewFeed,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	session.NewStorage,
)

var repositories = wire.NewSet(
	authRepository.New,
	calllogRepository.New,
	bookingRepository.New,
	orderRepository.New,
	feedbackRepository.New,
	menuRepository.New,
)

var workspaces = wire.NewSet(
	wire.Struct(new(dashboard.Dependencies), "CallLogs", "Bookings", "Orders", "Feedbacks", "Menu", "Feed", "Otel"),
	dashboard.NewRegistry,
)

var domains = wire.NewSet(
	authService.New,
	calllogService.New,
	bookingService.New,
	orderService.New,
	feedbackService.New,
	menuService.New,
	settingsService.New,
	overviewService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	overviewHandler.New,
	calllogHandler.New,
	bookingHandler.New,
	orderHandler.New,
	feedbackHandler.New,
	menuHandler.New,
	settingsHandler.New,
	liveHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		workspaces,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
