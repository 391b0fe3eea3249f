// Package service manages the restaurant profile and the operator's password.
package service

import (
	"context"
	"fmt"

	"dinedesk/infras/otel"
	"dinedesk/internal/dashboard"
	"dinedesk/internal/domains/auth/model"
	"dinedesk/internal/domains/auth/model/dto"
	"dinedesk/internal/domains/auth/repository"
	"dinedesk/shared/constant"
	"dinedesk/shared/failure"
	"dinedesk/shared/notify"
	"dinedesk/shared/session"
	"dinedesk/shared/validator"

	"github.com/rs/zerolog/log"
)

const minPasswordLength = 8

const (
	MessageMissingFields    = "Please fill in all fields"
	MessagePasswordMismatch = "New password and confirm password do not match."
	MessagePasswordTooShort = "Password must be at least 8 characters long."
)

type Settings interface {
	Profile(ctx context.Context) (dto.ProfileForm, error)
	UpdateProfile(ctx context.Context, form dto.ProfileForm) (dto.ProfileForm, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	TableTypes(ctx context.Context) ([]model.TableTypeOption, error)
}

type serviceImpl struct {
	repo    repository.Account
	storage session.Storage
	otel    otel.Otel
}

func New(repo repository.Account, storage session.Storage, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		otel:    otel,
	}
}

// failed titles a backend rejection after the form it came from. Expired credentials
// keep the authorization title.
func failed(err error, title string) notify.Notification {
	n := notify.FromError(err, err.Error())
	if n.Title == notify.TitleError {
		n.Title = title
	}

	return n
}

// saveProfile keeps the stored session and the live workspace on the same profile.
func (s *serviceImpl) saveProfile(ctx context.Context, ws *dashboard.Workspace, profile session.Profile) error {
	sess := ws.Session().WithProfile(profile)

	if err := s.storage.Save(ctx, sess); err != nil {
		log.Error().Err(err).Str("session_id", sess.ID).Msg("failed to save session profile")

		return fmt.Errorf("failed to save session profile: %w", err)
	}

	ws.SetSession(sess)

	return nil
}

// Profile reloads the profile from the backend. When that fails the profile from
// sign-in is returned after notifying.
func (s *serviceImpl) Profile(ctx context.Context) (res dto.ProfileForm, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Settings.Profile")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	sess := ws.Session()

	token, err := sess.UpstreamToken()
	if err != nil {
		ws.Notifications.Notify(notify.Unauthorized(err.Error()))

		return res, err //nolint:wrapcheck
	}

	profile, err := s.repo.Profile(ctx, token)
	if err != nil {
		ws.Notifications.Notify(notify.FromError(err, "Failed to load profile data."))

		return dto.ProfileFormFromModel(sess.Profile), nil
	}

	if profile.ID == "" {
		profile.ID = sess.RestaurantID
	}

	if err = s.saveProfile(ctx, ws, profile); err != nil {
		return res, err
	}

	return dto.ProfileFormFromModel(profile), nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, form dto.ProfileForm) (res dto.ProfileForm, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Settings.UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&form); err != nil {
		return res, err //nolint:wrapcheck
	}

	sess := ws.Session()

	if err = s.repo.UpdateProfile(ctx, sess, form); err != nil {
		ws.Notifications.Notify(failed(err, "Profile Update Failed"))

		return res, err //nolint:wrapcheck
	}

	profile := form.Apply(sess.Profile)
	if err = s.saveProfile(ctx, ws, profile); err != nil {
		return res, err
	}

	ws.Notifications.Notify(notify.Success("Your restaurant profile has been updated successfully.").WithTitle("Profile Updated"))

	return dto.ProfileFormFromModel(profile), nil
}

func validatePassword(req dto.ChangePasswordRequest) (notify.Notification, error) {
	switch {
	case req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "":
		return notify.Invalid(MessageMissingFields), failure.BadRequestFromString(MessageMissingFields)
	case req.NewPassword != req.ConfirmPassword:
		return notify.Invalid(MessagePasswordMismatch).WithTitle("Password Mismatch"), failure.BadRequestFromString(MessagePasswordMismatch)
	case len(req.NewPassword) < minPasswordLength:
		return notify.Invalid(MessagePasswordTooShort).WithTitle("Password Too Short"), failure.BadRequestFromString(MessagePasswordTooShort)
	default:
		return notify.Notification{}, nil
	}
}

// ChangePassword checks the form before anything reaches the backend.
func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Settings.ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if n, err := validatePassword(req); err != nil {
		ws.Notifications.Notify(n)

		return err
	}

	if err = s.repo.ChangePassword(ctx, ws.Session(), req); err != nil {
		ws.Notifications.Notify(failed(err, "Password Change Failed"))

		return err //nolint:wrapcheck
	}

	ws.Notifications.Notify(notify.Success("Your password has been changed successfully.").WithTitle("Password Changed"))

	return nil
}

func (s *serviceImpl) TableTypes(ctx context.Context) (res []model.TableTypeOption, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Settings.TableTypes")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	res, err = s.repo.TableTypes(ctx, ws.Session())
	if err != nil {
		ws.Notifications.Notify(notify.FromError(err, "Failed to load table types."))

		return nil, err //nolint:wrapcheck
	}

	return res, nil
}
