package booking

import (
	"net/http"

	"dinedesk/infras/otel"
	"dinedesk/internal/domains/booking/model"
	"dinedesk/internal/domains/booking/model/dto"
	"dinedesk/internal/domains/booking/service"
	"dinedesk/internal/handlers/common"
	"dinedesk/shared/constant"
	"dinedesk/shared/validator"
	"dinedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const requestParamTable = "table"

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/tables", handler.GetTables)
		routerGroup.Put("/query", handler.UpdateQuery)
		routerGroup.Post("/sort/{field}", handler.ToggleSort)
		routerGroup.Get("/modals", handler.GetModals)
		routerGroup.Post("/modals/add", handler.OpenAdd)
		routerGroup.Delete("/modals/{kind}", handler.CloseModal)
		routerGroup.Get("/{id}", handler.GetBooking)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
		routerGroup.Post("/{id}/modals/edit", handler.OpenEdit)
		routerGroup.Post("/{id}/modals/delete", handler.OpenDelete)
	})
}

// GetBookings retrieves bookings.
// @Summary Get bookings
// @Description Without cursor parameters the stored cursor of the screen is used.
// @Tags Booking
// @Produce json
// @Param page query int false "Page"
// @Param search query string false "Customer name or phone"
// @Param status query string false "pending, confirmed, cancelled or all"
// @Param sort_by query string false "id, datetime or partySize"
// @Param sort_dir query string false "asc or desc"
// @Success 200 {object} response.Data[query.Result[model.Booking]] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	res, err := handler.service.List(ctx, common.Params(r, model.FieldStatus))
	if err != nil {
		common.Fail(w, scope, err, "failed to get bookings")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTables lays the restaurant's tables out by table type.
// @Summary Get table layout
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.TableLayoutResponse]
// @Router /v1/bookings/tables [get]
// @Security BearerAuth
func (handler *Handler) GetTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTables")
	defer scope.End()

	res, err := handler.service.Tables(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to get table layout")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) UpdateQuery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingQuery")
	defer scope.End()

	update, err := common.QueryUpdate(r)
	if err != nil {
		common.Fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.UpdateQuery(ctx, update)
	if err != nil {
		common.Fail(w, scope, err, "failed to update booking query")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleBookingSort")
	defer scope.End()

	res, err := handler.service.ToggleSort(ctx, chi.URLParam(r, constant.RequestParamField))
	if err != nil {
		common.Fail(w, scope, err, "failed to toggle booking sort")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) GetModals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingModals")
	defer scope.End()

	res, err := handler.service.Modals(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to get booking dialogs")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// OpenAdd opens the add dialog, prefilled with a table when one is given.
// @Summary Open add booking dialog
// @Tags Booking
// @Produce json
// @Param table query string false "Table number picked from the layout"
// @Success 200 {object} response.Data[dto.BookingForm]
// @Router /v1/bookings/modals/add [post]
// @Security BearerAuth
func (handler *Handler) OpenAdd(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenAddBooking")
	defer scope.End()

	res, err := handler.service.OpenAdd(ctx, r.URL.Query().Get(requestParamTable))
	if err != nil {
		common.Fail(w, scope, err, "failed to open add booking dialog")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) CloseModal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseBookingModal")
	defer scope.End()

	kind, err := common.Kind(r)
	if err != nil {
		common.Fail(w, scope, err, "failed to parse dialog kind")

		return
	}

	if err := handler.service.CloseModal(ctx, kind); err != nil {
		common.Fail(w, scope, err, "failed to close booking dialog")

		return
	}

	response.WithMessage(w, http.StatusOK, "Dialog closed")
}

// GetBooking loads a booking into the detail dialog.
// @Summary Get booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[model.Booking]
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	res, err := handler.service.View(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to get booking")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) OpenEdit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenEditBooking")
	defer scope.End()

	res, err := handler.service.OpenEdit(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to open edit booking dialog")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) OpenDelete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenDeleteBooking")
	defer scope.End()

	res, err := handler.service.OpenDelete(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to open delete booking dialog")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookingForm true "Booking"
// @Success 201 {object} response.Data[model.Booking] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.BookingForm{}

	if err := validator.Decode(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to decode request body")

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		common.Fail(w, scope, err, "failed to create booking")

		return
	}

	scope.AddEvent("Booking created")

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateBooking handles updating an existing booking.
// @Summary Update a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.BookingForm true "Booking"
// @Success 200 {object} response.Data[model.Booking] "Booking updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	req := dto.BookingForm{}

	if err := validator.Decode(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to decode request body")

		return
	}

	res, err := handler.service.Update(ctx, common.ID(r), req)
	if err != nil {
		common.Fail(w, scope, err, "failed to update booking")

		return
	}

	scope.AddEvent("Booking updated")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteBooking handles deleting a booking.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	if err := handler.service.Delete(ctx, common.ID(r)); err != nil {
		common.Fail(w, scope, err, "failed to delete booking")

		return
	}

	scope.AddEvent("Booking deleted")

	response.WithMessage(w, http.StatusOK, "Booking deleted")
}
