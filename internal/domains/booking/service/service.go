package service

import (
	"context"

	"dinedesk/infras/otel"
	"dinedesk/internal/dashboard"
	"dinedesk/internal/domains/booking/model"
	"dinedesk/internal/domains/booking/model/dto"
	"dinedesk/internal/domains/booking/repository"
	"dinedesk/shared/constant"
	"dinedesk/shared/failure"
	"dinedesk/shared/modal"
	"dinedesk/shared/notify"
	"dinedesk/shared/query"
	"dinedesk/shared/store"
	"dinedesk/shared/validator"
	"dinedesk/shared/view"

	"github.com/rs/zerolog/log"
)

const messageViewFailed = "Failed to load booking details"

var (
	createMessages = store.Messages{
		Title:   "Booking created",
		Success: "New booking has been successfully created.",
		Failure: "Failed to create booking",
	}
	updateMessages = store.Messages{
		Title:   "Booking updated",
		Success: "The booking has been successfully updated.",
		Failure: "Failed to update booking",
	}
	deleteMessages = store.Messages{
		Title:   "Booking deleted",
		Success: "The booking has been successfully deleted.",
		Failure: "Failed to delete booking",
	}
)

type Booking interface {
	List(ctx context.Context, params *query.Params) (query.Result[model.Booking], error)
	UpdateQuery(ctx context.Context, update view.Update) (query.Result[model.Booking], error)
	ToggleSort(ctx context.Context, field string) (query.Result[model.Booking], error)
	Modals(ctx context.Context) (modal.SetState[model.Booking, dto.BookingForm], error)
	CloseModal(ctx context.Context, kind modal.Kind) error
	View(ctx context.Context, id string) (model.Booking, error)
	OpenAdd(ctx context.Context, tableNumber string) (dto.BookingForm, error)
	OpenEdit(ctx context.Context, id string) (dto.BookingForm, error)
	OpenDelete(ctx context.Context, id string) (model.Booking, error)
	Create(ctx context.Context, form dto.BookingForm) (model.Booking, error)
	Update(ctx context.Context, id string, form dto.BookingForm) (model.Booking, error)
	Delete(ctx context.Context, id string) error
	Tables(ctx context.Context) (dto.TableLayoutResponse, error)
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, params *query.Params) (res query.Result[model.Booking], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Bookings.Read(ctx, params) //nolint:wrapcheck
}

func (s *serviceImpl) UpdateQuery(ctx context.Context, update view.Update) (res query.Result[model.Booking], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Bookings.Apply(ctx, update) //nolint:wrapcheck
}

func (s *serviceImpl) ToggleSort(ctx context.Context, field string) (res query.Result[model.Booking], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Bookings.ToggleSort(ctx, field) //nolint:wrapcheck
}

func (s *serviceImpl) Modals(ctx context.Context) (res modal.SetState[model.Booking, dto.BookingForm], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Bookings.Modals.State(), nil
}

func (s *serviceImpl) CloseModal(ctx context.Context, kind modal.Kind) error {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	ws.Bookings.Modals.Close(kind)

	return nil
}

// View fetches the booking detail from the backend before opening the dialog.
func (s *serviceImpl) View(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.View")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.View(ctx, ws.Session(), id)
	if err != nil {
		ws.Notifications.Notify(notify.FromError(err, messageViewFailed))

		return res, err //nolint:wrapcheck
	}

	ws.Bookings.Modals.View.Open(res)

	return res, nil
}

// OpenAdd opens a blank booking form, prefilled with the table picked from the layout.
func (s *serviceImpl) OpenAdd(ctx context.Context, tableNumber string) (dto.BookingForm, error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return dto.BookingForm{}, err //nolint:wrapcheck
	}

	form := dto.NewForm()
	form.TableNumber = tableNumber
	ws.Bookings.Modals.Add.Open(form)

	return form, nil
}

func (s *serviceImpl) OpenEdit(ctx context.Context, id string) (dto.BookingForm, error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return dto.BookingForm{}, err //nolint:wrapcheck
	}

	ws.Bookings.Ensure(ctx)

	booking, ok := ws.Bookings.Store.Get(id)
	if !ok {
		return dto.BookingForm{}, failure.NotFound(model.EntityName)
	}

	form := dto.FormFromModel(booking)
	ws.Bookings.Modals.Edit.Open(form)

	return form, nil
}

func (s *serviceImpl) OpenDelete(ctx context.Context, id string) (res model.Booking, err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.Bookings.Ensure(ctx)

	res, ok := ws.Bookings.Store.Get(id)
	if !ok {
		return res, failure.NotFound(model.EntityName)
	}

	ws.Bookings.Modals.Delete.Open(res)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, form dto.BookingForm) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&form); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = ws.Bookings.Store.Create(ctx, createMessages, func(ctx context.Context) (model.Booking, error) {
		return s.repo.Create(ctx, ws.Session(), form)
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.Bookings.Modals.Add.Close()
	ws.Announce(ctx, dashboard.ViewBookings, constant.ActionCreate)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, form dto.BookingForm) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&form); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = ws.Bookings.Store.Update(ctx, id, updateMessages, func(ctx context.Context) (model.Booking, error) {
		return s.repo.Update(ctx, ws.Session(), id, form)
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.Bookings.Modals.Edit.Close()
	ws.Announce(ctx, dashboard.ViewBookings, constant.ActionUpdate)

	return res, nil
}

// Delete keeps the dialog open on failure so the user can retry.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = ws.Bookings.Store.Remove(ctx, id, deleteMessages, func(ctx context.Context) error {
		return s.repo.Delete(ctx, ws.Session(), id)
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	ws.Bookings.Modals.Delete.Close()
	ws.Announce(ctx, dashboard.ViewBookings, constant.ActionDelete)

	return nil
}

// Tables lays out the active table types of the profile against the current bookings.
func (s *serviceImpl) Tables(ctx context.Context) (res dto.TableLayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Tables")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.Bookings.Sync(ctx)

	if !ws.Bookings.Store.Loaded() {
		log.Warn().Str("restaurant_id", ws.RestaurantID).Msg("laying out tables without bookings")
	}

	res.Groups = model.Layout(ws.Session().Profile.TableTypes, ws.Bookings.Store.Snapshot())

	return res, nil
}
