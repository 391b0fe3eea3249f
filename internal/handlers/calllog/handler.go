package calllog

import (
	"net/http"

	"dinedesk/infras/otel"
	"dinedesk/internal/domains/calllog/model/dto"
	"dinedesk/internal/domains/calllog/service"
	"dinedesk/internal/handlers/common"
	"dinedesk/shared/constant"
	"dinedesk/shared/validator"
	"dinedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.CallLog
	otel    otel.Otel
}

func New(service service.CallLog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/call-logs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCallLogs)
		routerGroup.Post("/", handler.CreateCallLog)
		routerGroup.Put("/query", handler.UpdateQuery)
		routerGroup.Post("/sort/{field}", handler.ToggleSort)
		routerGroup.Get("/modals", handler.GetModals)
		routerGroup.Post("/modals/add", handler.OpenAdd)
		routerGroup.Delete("/modals/{kind}", handler.CloseModal)
		routerGroup.Get("/{id}", handler.GetCallLog)
		routerGroup.Get("/{id}/audio", handler.GetAudio)
	})
}

// GetCallLogs lists call logs.
// @Summary List call logs
// @Description Without cursor parameters the stored cursor of the screen is used.
// @Tags CallLog
// @Produce json
// @Param page query int false "Page"
// @Param search query string false "Caller name or number"
// @Param sort_by query string false "date or duration"
// @Param sort_dir query string false "asc or desc"
// @Success 200 {object} response.Data[query.Result[model.CallLog]]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/call-logs [get]
// @Security BearerAuth
func (handler *Handler) GetCallLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCallLogs")
	defer scope.End()

	res, err := handler.service.List(ctx, common.Params(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to list call logs")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateQuery moves the stored cursor.
// @Summary Update call log cursor
// @Tags CallLog
// @Accept json
// @Produce json
// @Param request body gDto.QueryUpdateRequest true "Cursor change"
// @Success 200 {object} response.Data[query.Result[model.CallLog]]
// @Failure 400 {object} response.Error
// @Router /v1/call-logs/query [put]
// @Security BearerAuth
func (handler *Handler) UpdateQuery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCallLogQuery")
	defer scope.End()

	update, err := common.QueryUpdate(r)
	if err != nil {
		common.Fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.UpdateQuery(ctx, update)
	if err != nil {
		common.Fail(w, scope, err, "failed to update call log query")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ToggleSort flips the sort direction, or selects a new sort field.
// @Summary Toggle call log sort
// @Tags CallLog
// @Produce json
// @Param field path string true "date or duration"
// @Success 200 {object} response.Data[query.Result[model.CallLog]]
// @Failure 400 {object} response.Error
// @Router /v1/call-logs/sort/{field} [post]
// @Security BearerAuth
func (handler *Handler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleCallLogSort")
	defer scope.End()

	res, err := handler.service.ToggleSort(ctx, chi.URLParam(r, constant.RequestParamField))
	if err != nil {
		common.Fail(w, scope, err, "failed to toggle call log sort")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) GetModals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCallLogModals")
	defer scope.End()

	res, err := handler.service.Modals(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to get call log dialogs")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) OpenAdd(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenAddCallLog")
	defer scope.End()

	res, err := handler.service.OpenAdd(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to open add call log dialog")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) CloseModal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseCallLogModal")
	defer scope.End()

	kind, err := common.Kind(r)
	if err != nil {
		common.Fail(w, scope, err, "failed to parse dialog kind")

		return
	}

	if err := handler.service.CloseModal(ctx, kind); err != nil {
		common.Fail(w, scope, err, "failed to close call log dialog")

		return
	}

	response.WithMessage(w, http.StatusOK, "Dialog closed")
}

// GetCallLog opens the detail dialog of a call log.
// @Summary Get call log
// @Tags CallLog
// @Produce json
// @Param id path string true "Call log ID"
// @Success 200 {object} response.Data[model.CallLog]
// @Failure 404 {object} response.Error
// @Router /v1/call-logs/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCallLog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCallLog")
	defer scope.End()

	res, err := handler.service.View(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to get call log")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateCallLog records a call manually.
// @Summary Create call log
// @Tags CallLog
// @Accept json
// @Produce json
// @Param request body dto.CallLogForm true "Call log"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/call-logs [post]
// @Security BearerAuth
func (handler *Handler) CreateCallLog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCallLog")
	defer scope.End()

	req := dto.CallLogForm{}

	if err := validator.Decode(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to decode request body")

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		common.Fail(w, scope, err, "failed to create call log")

		return
	}

	scope.AddEvent("Call log created")

	response.WithMessage(w, http.StatusCreated, "Call log added successfully.")
}

// GetAudio returns a playable URL for the call recording.
// @Summary Get call recording
// @Tags CallLog
// @Produce json
// @Param id path string true "Call log ID"
// @Success 200 {object} response.Data[dto.AudioResponse]
// @Failure 404 {object} response.Error
// @Router /v1/call-logs/{id}/audio [get]
// @Security BearerAuth
func (handler *Handler) GetAudio(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCallLogAudio")
	defer scope.End()

	res, err := handler.service.Audio(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to get call recording")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
