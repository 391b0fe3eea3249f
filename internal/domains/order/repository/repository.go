package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"dinedesk/infras/api"
	"dinedesk/infras/otel"
	"dinedesk/internal/domains/order/model"
	"dinedesk/internal/domains/order/model/dto"
	"dinedesk/shared/constant"
	"dinedesk/shared/session"
	"dinedesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	pathList   = "/order/order_list"
	pathView   = "/order/view_order/"
	pathCreate = "/order/create_order"
	pathUpdate = "/order/update_order/"
	pathDelete = "/order/delete_order/"
)

type Order interface {
	List(ctx context.Context, sess *session.Session) ([]model.Order, error)
	View(ctx context.Context, sess *session.Session, id string) (model.Order, error)
	Create(ctx context.Context, sess *session.Session, payload dto.OrderPayload) (model.Order, error)
	Update(ctx context.Context, sess *session.Session, id string, payload dto.OrderPayload) error
	Delete(ctx context.Context, sess *session.Session, id string) error
}

type repositoryImpl struct {
	client api.Client
	otel   otel.Otel
}

func New(client api.Client, otel otel.Otel) Order {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) List(ctx context.Context, sess *session.Session) (res []model.Order, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Order.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	var records []dto.OrderRecord

	err = r.client.Do(ctx, api.Get(pathList, token, url.Values{"restaurant_id": {sess.RestaurantID}}), &records)
	if err != nil {
		log.Error().Err(err).Msg("failed to list orders")

		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return dto.ToModels(records), nil
}

func (r *repositoryImpl) View(ctx context.Context, sess *session.Session, id string) (res model.Order, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Order.View")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	var record dto.OrderRecord

	err = r.client.Do(ctx, api.PostForm(pathView+url.PathEscape(id), token, url.Values{"_id": {id}}), &record)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to view order")

		return res, fmt.Errorf("failed to view order: %w", err)
	}

	res = record.ToModel()
	if res.ID == "" {
		res.ID = id
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, sess *session.Session, payload dto.OrderPayload) (res model.Order, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Order.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	var record dto.OrderRecord

	err = r.client.Do(ctx, api.PostForm(pathCreate, token, payload.ToCreateForm(sess.RestaurantID)), &record)
	if err != nil {
		log.Error().Err(err).Msg("failed to create order")

		return res, fmt.Errorf("failed to create order: %w", err)
	}

	res = record.ToModel()
	payload.Details.Status = model.StatusPreparing
	res = payload.Apply(res)

	if res.Datetime.IsZero() {
		res.Datetime = timezone.Now()
	}

	return res, nil
}

// Update sends the full order; the backend's response body is not used.
func (r *repositoryImpl) Update(ctx context.Context, sess *session.Session, id string, payload dto.OrderPayload) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Order.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = r.client.Do(ctx, api.PutForm(pathUpdate+url.PathEscape(id), token, payload.ToUpdateForm()), nil)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update order")

		return fmt.Errorf("failed to update order: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, sess *session.Session, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Order.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = r.client.Do(ctx, api.Delete(pathDelete+url.PathEscape(id), token), nil)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete order")

		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
