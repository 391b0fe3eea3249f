package feedback

import (
	"net/http"

	"dinedesk/infras/otel"
	"dinedesk/internal/domains/feedback/model"
	"dinedesk/internal/domains/feedback/model/dto"
	"dinedesk/internal/domains/feedback/service"
	"dinedesk/internal/handlers/common"
	"dinedesk/shared/constant"
	"dinedesk/shared/validator"
	"dinedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Feedback
	otel    otel.Otel
}

func New(service service.Feedback, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/feedbacks", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFeedbacks)
		routerGroup.Put("/query", handler.UpdateQuery)
		routerGroup.Post("/sort/{field}", handler.ToggleSort)
		routerGroup.Get("/modals", handler.GetModals)
		routerGroup.Delete("/modals/{kind}", handler.CloseModal)
		routerGroup.Get("/{id}", handler.GetFeedback)
		routerGroup.Put("/{id}", handler.EditFeedback)
		routerGroup.Delete("/{id}", handler.DeleteFeedback)
		routerGroup.Patch("/{id}/visibility", handler.SetVisibility)
		routerGroup.Patch("/{id}/status", handler.SetStatus)
		routerGroup.Post("/{id}/modals/edit", handler.OpenEdit)
		routerGroup.Post("/{id}/modals/delete", handler.OpenDelete)
	})
}

// GetFeedbacks retrieves customer feedback.
// @Summary Get feedback
// @Description Without cursor parameters the stored cursor of the screen is used.
// @Tags Feedback
// @Produce json
// @Param page query int false "Page"
// @Param search query string false "Customer name"
// @Param status query string false "new, resolved or all"
// @Param rating query string false "1 to 5 or all"
// @Param sort_by query string false "date or rating"
// @Param sort_dir query string false "asc or desc"
// @Success 200 {object} response.Data[query.Result[model.Feedback]]
// @Failure 400 {object} response.Error
// @Router /v1/feedbacks [get]
// @Security BearerAuth
func (handler *Handler) GetFeedbacks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeedbacks")
	defer scope.End()

	res, err := handler.service.List(ctx, common.Params(r, model.FieldStatus, model.FieldRating))
	if err != nil {
		common.Fail(w, scope, err, "failed to get feedback")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) UpdateQuery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFeedbackQuery")
	defer scope.End()

	update, err := common.QueryUpdate(r)
	if err != nil {
		common.Fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.UpdateQuery(ctx, update)
	if err != nil {
		common.Fail(w, scope, err, "failed to update feedback query")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleFeedbackSort")
	defer scope.End()

	res, err := handler.service.ToggleSort(ctx, chi.URLParam(r, constant.RequestParamField))
	if err != nil {
		common.Fail(w, scope, err, "failed to toggle feedback sort")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) GetModals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeedbackModals")
	defer scope.End()

	res, err := handler.service.Modals(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to get feedback dialogs")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) CloseModal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseFeedbackModal")
	defer scope.End()

	kind, err := common.Kind(r)
	if err != nil {
		common.Fail(w, scope, err, "failed to parse dialog kind")

		return
	}

	if err := handler.service.CloseModal(ctx, kind); err != nil {
		common.Fail(w, scope, err, "failed to close feedback dialog")

		return
	}

	response.WithMessage(w, http.StatusOK, "Dialog closed")
}

func (handler *Handler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeedbackByID")
	defer scope.End()

	res, err := handler.service.View(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to get feedback")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) OpenEdit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenEditFeedback")
	defer scope.End()

	res, err := handler.service.OpenEdit(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to open edit feedback dialog")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) OpenDelete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenDeleteFeedback")
	defer scope.End()

	res, err := handler.service.OpenDelete(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to open delete feedback dialog")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetVisibility shows or hides a feedback entry on the public page.
// @Summary Set feedback visibility
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param request body dto.VisibilityRequest true "Visibility"
// @Success 200 {object} response.Data[model.Feedback]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/feedbacks/{id}/visibility [patch]
// @Security BearerAuth
func (handler *Handler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetFeedbackVisibility")
	defer scope.End()

	req := dto.VisibilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.SetVisibility(ctx, common.ID(r), *req.IsVisible)
	if err != nil {
		common.Fail(w, scope, err, "failed to set feedback visibility")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetStatus marks a feedback entry new or resolved. The status is kept by the gateway only.
// @Summary Set feedback status
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param request body dto.StatusRequest true "Status"
// @Success 200 {object} response.Data[model.Feedback]
// @Router /v1/feedbacks/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetFeedbackStatus")
	defer scope.End()

	req := dto.StatusRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to decode request body")

		return
	}

	res, err := handler.service.SetStatus(ctx, common.ID(r), req.Status)
	if err != nil {
		common.Fail(w, scope, err, "failed to set feedback status")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) EditFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditFeedback")
	defer scope.End()

	req := dto.FeedbackForm{}

	if err := validator.Decode(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to decode request body")

		return
	}

	res, err := handler.service.Edit(ctx, common.ID(r), req)
	if err != nil {
		common.Fail(w, scope, err, "failed to edit feedback")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFeedback")
	defer scope.End()

	if err := handler.service.Delete(ctx, common.ID(r)); err != nil {
		common.Fail(w, scope, err, "failed to delete feedback")

		return
	}

	response.WithMessage(w, http.StatusOK, "Feedback deleted")
}
