package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"dinedesk/config"
	"dinedesk/infras/api"
	"dinedesk/infras/otel"
	"dinedesk/internal/domains/auth/model"
	"dinedesk/internal/domains/auth/model/dto"
	"dinedesk/shared/constant"
	"dinedesk/shared/session"

	"github.com/rs/zerolog/log"
)

const (
	pathSignIn         = "/auth/sign_in"
	pathProfile        = "/auth/user_profile"
	pathUpdateProfile  = "/auth/update_user_profile/"
	pathChangePassword = "/auth/change_password"
	pathTableTypes     = "/tabletype/tabletype_list"
)

type Account interface {
	SignIn(ctx context.Context, req dto.LoginRequest) (dto.SignInRecord, error)
	Profile(ctx context.Context, token string) (session.Profile, error)
	UpdateProfile(ctx context.Context, sess *session.Session, form dto.ProfileForm) error
	ChangePassword(ctx context.Context, sess *session.Session, req dto.ChangePasswordRequest) error
	TableTypes(ctx context.Context, sess *session.Session) ([]model.TableTypeOption, error)
}

type repositoryImpl struct {
	client       api.Client
	otel         otel.Otel
	userRoleType int
}

func New(cfg *config.Config, client api.Client, otel otel.Otel) Account {
	return &repositoryImpl{
		client:       client,
		otel:         otel,
		userRoleType: cfg.Upstream.UserRoleType,
	}
}

func (r *repositoryImpl) SignIn(ctx context.Context, req dto.LoginRequest) (res dto.SignInRecord, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Account.SignIn")
	defer scope.End()
	defer scope.TraceIfError(&err)

	body := dto.SignInBody{Email: req.Email, Password: req.Password, UserRoleType: r.userRoleType}

	err = r.client.Do(ctx, api.Request{Method: http.MethodPost, Path: pathSignIn, JSON: body, Anonymous: true}, &res)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to sign in")

		return dto.SignInRecord{}, fmt.Errorf("failed to sign in: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Profile(ctx context.Context, token string) (res session.Profile, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Account.Profile")
	defer scope.End()
	defer scope.TraceIfError(&err)

	var record dto.ProfileRecord

	err = r.client.Do(ctx, api.PostForm(pathProfile, token, nil), &record)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return session.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return record.ToModel(), nil
}

func (r *repositoryImpl) UpdateProfile(ctx context.Context, sess *session.Session, form dto.ProfileForm) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Account.UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = r.client.Do(ctx, api.PutForm(pathUpdateProfile+url.PathEscape(sess.RestaurantID), token, form.ToUpdateForm()), nil)
	if err != nil {
		log.Error().Err(err).Str("restaurant_id", sess.RestaurantID).Msg("failed to update profile")

		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

func (r *repositoryImpl) ChangePassword(ctx context.Context, sess *session.Session, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Account.ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = r.client.Do(ctx, api.PutForm(pathChangePassword, token, req.ToForm()), nil)
	if err != nil {
		log.Error().Err(err).Str("restaurant_id", sess.RestaurantID).Msg("failed to change password")

		return fmt.Errorf("failed to change password: %w", err)
	}

	return nil
}

func (r *repositoryImpl) TableTypes(ctx context.Context, sess *session.Session) (res []model.TableTypeOption, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Account.TableTypes")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	var records []dto.TableTypeOptionRecord

	err = r.client.Do(ctx, api.Get(pathTableTypes, token, nil), &records)
	if err != nil {
		log.Error().Err(err).Msg("failed to list table types")

		return nil, fmt.Errorf("failed to list table types: %w", err)
	}

	return dto.TableTypeOptionsToModels(records), nil
}
