package overview

import (
	"net/http"

	"dinedesk/infras/otel"
	"dinedesk/internal/domains/overview/model"
	"dinedesk/internal/domains/overview/service"
	"dinedesk/internal/handlers/common"
	"dinedesk/shared/constant"
	"dinedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const requestParamView = "view"

type Handler struct {
	service service.Overview
	otel    otel.Otel
}

func New(service service.Overview, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.GetSummary)
	router.Get("/badges", handler.GetBadges)
	router.Post("/badges/{view}/seen", handler.MarkSeen)
	router.Get("/notifications", handler.GetNotifications)
}

// GetSummary returns the overview cards and the monthly chart.
// @Summary Dashboard summary
// @Tags Overview
// @Produce json
// @Success 200 {object} response.Data[dashboard.Summary]
// @Failure 401 {object} response.Error
// @Router /v1/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	res, err := handler.service.Summary(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to get dashboard summary")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBadges counts the records that arrived since each view was last opened.
// @Summary Unseen record badges
// @Tags Overview
// @Produce json
// @Success 200 {object} response.Data[model.BadgesResponse]
// @Router /v1/badges [get]
// @Security BearerAuth
func (handler *Handler) GetBadges(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBadges")
	defer scope.End()

	badges, err := handler.service.Badges(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to count badges")

		return
	}

	response.WithJSON(w, http.StatusOK, model.BadgesResponse{Badges: badges, Total: badges.Total()})
}

func (handler *Handler) MarkSeen(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkSeen")
	defer scope.End()

	if err := handler.service.MarkSeen(ctx, chi.URLParam(r, requestParamView)); err != nil {
		common.Fail(w, scope, err, "failed to mark view seen")

		return
	}

	response.WithMessage(w, http.StatusOK, "Marked as seen")
}

// GetNotifications drains the pending toasts of the session.
// @Summary Pending notifications
// @Tags Overview
// @Produce json
// @Success 200 {object} response.Data[model.NotificationsResponse]
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	res, err := handler.service.Notifications(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to get notifications")

		return
	}

	response.WithJSON(w, http.StatusOK, model.NotificationsResponse{Notifications: res})
}
