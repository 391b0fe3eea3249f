package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"dinedesk/infras/api"
	"dinedesk/infras/otel"
	"dinedesk/internal/domains/calllog/model"
	"dinedesk/internal/domains/calllog/model/dto"
	"dinedesk/shared/constant"
	"dinedesk/shared/session"

	"github.com/rs/zerolog/log"
)

const (
	pathList   = "/calllog/calllog_list"
	pathCreate = "/calllog/create_calllog"
)

type CallLog interface {
	List(ctx context.Context, sess *session.Session) ([]model.CallLog, error)
	Create(ctx context.Context, sess *session.Session, form dto.CallLogForm) error
}

type repositoryImpl struct {
	client api.Client
	otel   otel.Otel
}

func New(client api.Client, otel otel.Otel) CallLog {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) List(ctx context.Context, sess *session.Session) (res []model.CallLog, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CallLog.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	var records []dto.CallLogRecord

	err = r.client.Do(ctx, api.Get(pathList, token, url.Values{"restaurant_id": {sess.RestaurantID}}), &records)
	if err != nil {
		log.Error().Err(err).Msg("failed to list call logs")

		return nil, fmt.Errorf("failed to list call logs: %w", err)
	}

	return dto.ToModels(records), nil
}

// Create does not return the stored record; callers refetch the list.
func (r *repositoryImpl) Create(ctx context.Context, sess *session.Session, form dto.CallLogForm) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CallLog.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = r.client.Do(ctx, api.PostForm(pathCreate, token, form.ToCreateForm(sess.RestaurantID)), nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to create call log")

		return fmt.Errorf("failed to create call log: %w", err)
	}

	return nil
}
