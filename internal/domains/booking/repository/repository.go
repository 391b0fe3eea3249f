package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"dinedesk/infras/api"
	"dinedesk/infras/otel"
	"dinedesk/internal/domains/booking/model"
	"dinedesk/internal/domains/booking/model/dto"
	"dinedesk/shared/constant"
	"dinedesk/shared/session"

	"github.com/rs/zerolog/log"
)

const (
	pathList   = "/booking/booking_list"
	pathView   = "/booking/view_booking/"
	pathCreate = "/booking/create_booking"
	pathUpdate = "/booking/update_booking/"
	pathDelete = "/booking/delete_booking/"
)

type Booking interface {
	List(ctx context.Context, sess *session.Session) ([]model.Booking, error)
	View(ctx context.Context, sess *session.Session, id string) (model.Booking, error)
	Create(ctx context.Context, sess *session.Session, form dto.BookingForm) (model.Booking, error)
	Update(ctx context.Context, sess *session.Session, id string, form dto.BookingForm) (model.Booking, error)
	Delete(ctx context.Context, sess *session.Session, id string) error
}

type repositoryImpl struct {
	client api.Client
	otel   otel.Otel
}

func New(client api.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) List(ctx context.Context, sess *session.Session) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	var records []dto.BookingRecord

	err = r.client.Do(ctx, api.Get(pathList, token, url.Values{"restaurantId": {sess.RestaurantID}}), &records)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return dto.ToModels(records), nil
}

func (r *repositoryImpl) View(ctx context.Context, sess *session.Session, id string) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.View")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	var record dto.BookingRecord

	err = r.client.Do(ctx, api.PostForm(pathView+url.PathEscape(id), token, nil), &record)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to view booking")

		return res, fmt.Errorf("failed to view booking: %w", err)
	}

	res = record.ToModel()
	if res.ID == "" {
		res.ID = id
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, sess *session.Session, form dto.BookingForm) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	var record dto.BookingRecord

	err = r.client.Do(ctx, api.PostForm(pathCreate, token, form.ToCreateForm(sess.RestaurantID)), &record)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res = record.ToModel()
	res.TableNumber = form.TableNumber
	res.BookingTime = form.BookingTime

	return form.Merge(res, record.ID), nil
}

func (r *repositoryImpl) Update(ctx context.Context, sess *session.Session, id string, form dto.BookingForm) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	var record dto.BookingRecord

	err = r.client.Do(ctx, api.PutForm(pathUpdate+url.PathEscape(id), token, form.ToUpdateForm()), &record)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	return form.Merge(record.ToModel(), id), nil
}

func (r *repositoryImpl) Delete(ctx context.Context, sess *session.Session, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = r.client.Do(ctx, api.Delete(pathDelete+url.PathEscape(id), token), nil)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}
