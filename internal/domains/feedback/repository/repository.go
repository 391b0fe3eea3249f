package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"dinedesk/infras/api"
	"dinedesk/infras/otel"
	"dinedesk/internal/domains/feedback/model"
	"dinedesk/internal/domains/feedback/model/dto"
	"dinedesk/shared/constant"
	"dinedesk/shared/session"

	"github.com/rs/zerolog/log"
)

const (
	pathList       = "/feedback/feedback_list"
	pathVisibility = "/feedback/hide_show_feedback/"
)

type Feedback interface {
	List(ctx context.Context, sess *session.Session) ([]model.Feedback, error)
	SetVisibility(ctx context.Context, sess *session.Session, id string, visible bool) error
}

type repositoryImpl struct {
	client api.Client
	otel   otel.Otel
}

func New(client api.Client, otel otel.Otel) Feedback {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) List(ctx context.Context, sess *session.Session) (res []model.Feedback, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Feedback.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	var records []dto.FeedbackRecord

	err = r.client.Do(ctx, api.Get(pathList, token, url.Values{"restaurantId": {sess.RestaurantID}}), &records)
	if err != nil {
		log.Error().Err(err).Msg("failed to list feedbacks")

		return nil, fmt.Errorf("failed to list feedbacks: %w", err)
	}

	return dto.ToModels(records), nil
}

func (r *repositoryImpl) SetVisibility(ctx context.Context, sess *session.Session, id string, visible bool) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Feedback.SetVisibility")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = r.client.Do(ctx, api.PutForm(pathVisibility+url.PathEscape(id), token, dto.VisibilityForm(visible)), nil)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update feedback visibility")

		return fmt.Errorf("failed to update feedback visibility: %w", err)
	}

	return nil
}
