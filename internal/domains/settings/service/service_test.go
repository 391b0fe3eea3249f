package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	otelMocks "dinedesk/infras/otel/mocks"
	"dinedesk/internal/dashboard"
	dashboardMocks "dinedesk/internal/dashboard/mocks"
	authMocks "dinedesk/internal/domains/auth/mocks"
	"dinedesk/internal/domains/auth/model"
	"dinedesk/internal/domains/auth/model/dto"
	"dinedesk/internal/domains/settings/service"
	"dinedesk/shared/failure"
	"dinedesk/shared/notify"
	"dinedesk/shared/session"
	sessionMocks "dinedesk/shared/session/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := authMocks.NewMockAccount(ctrl)
	mockStorage := sessionMocks.NewMockStorage(ctrl)
	svc := service.New(mockRepo, mockStorage, otelMocks.NewOtel())

	fresh := dashboardMocks.Session.Profile
	fresh.RestaurantName = "Blue Door Bistro"

	tests := []struct {
		name      string
		setupMock func()
		wantName  string
		wantToast string
	}{
		{
			name: "fresh profile replaces the session copy",
			setupMock: func() {
				mockRepo.EXPECT().Profile(gomock.Any(), "upstream-token").Return(fresh, nil)
				mockStorage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantName: "Blue Door Bistro",
		},
		{
			name: "backend failure falls back to the session copy",
			setupMock: func() {
				mockRepo.EXPECT().Profile(gomock.Any(), "upstream-token").Return(session.Profile{}, failure.BadGateway("down"))
			},
			wantName:  "Blue Door",
			wantToast: "Failed to load profile data.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{})

			tt.setupMock()

			res, err := svc.Profile(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, res.RestaurantName)
			assert.Equal(t, tt.wantName, ws.Session().Profile.RestaurantName)

			notes := ws.Notifications.Drain()
			if tt.wantToast == "" {
				assert.Empty(t, notes)

				return
			}

			require.Len(t, notes, 1)
			assert.Equal(t, tt.wantToast, notes[0].Description)
		})
	}
}

func TestSettingsService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := authMocks.NewMockAccount(ctrl)
	mockStorage := sessionMocks.NewMockStorage(ctrl)
	svc := service.New(mockRepo, mockStorage, otelMocks.NewOtel())

	form := dto.ProfileFormFromModel(dashboardMocks.Session.Profile)
	form.TableTypes[1].Active = true
	form.TableTypes[1].NoOfTables = 5

	tests := []struct {
		name      string
		form      dto.ProfileForm
		setupMock func()
		wantErr   bool
		wantTitle string
	}{
		{
			name: "saved to backend and session",
			form: form,
			setupMock: func() {
				mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), form).Return(nil)
				mockStorage.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sess *session.Session) error {
					assert.Equal(t, 8, sess.Profile.NoOfTables)

					return nil
				})
			},
			wantTitle: "Profile Updated",
		},
		{
			name: "backend rejection",
			form: form,
			setupMock: func() {
				mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), form).Return(failure.FromUpstream(http.StatusBadRequest, "email already used"))
			},
			wantErr:   true,
			wantTitle: "Profile Update Failed",
		},
		{
			name: "expired credential",
			form: form,
			setupMock: func() {
				mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), form).Return(failure.MissingUpstreamToken)
			},
			wantErr:   true,
			wantTitle: notify.TitleAuthorizationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{})

			tt.setupMock()

			_, err := svc.UpdateProfile(ctx, tt.form)

			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, ws.Session().Profile.TableTypes[1].Active)
			} else {
				require.NoError(t, err)
				assert.True(t, ws.Session().Profile.TableTypes[1].Active)
			}

			notes := ws.Notifications.Drain()
			require.Len(t, notes, 1)
			assert.Equal(t, tt.wantTitle, notes[0].Title)
		})
	}
}

func TestSettingsService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := authMocks.NewMockAccount(ctrl)
	svc := service.New(mockRepo, sessionMocks.NewMockStorage(ctrl), otelMocks.NewOtel())

	tests := []struct {
		name        string
		req         dto.ChangePasswordRequest
		setupMock   func()
		wantMessage string
		wantTitle   string
	}{
		{
			name: "changed",
			req:  dto.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "new-secret", ConfirmPassword: "new-secret"},
			setupMock: func() {
				mockRepo.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTitle: "Password Changed",
		},
		{
			name:        "missing field",
			req:         dto.ChangePasswordRequest{NewPassword: "new-secret", ConfirmPassword: "new-secret"},
			setupMock:   func() {},
			wantMessage: service.MessageMissingFields,
			wantTitle:   notify.TitleValidationError,
		},
		{
			name:        "mismatch",
			req:         dto.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "new-secret", ConfirmPassword: "new-secrets"},
			setupMock:   func() {},
			wantMessage: service.MessagePasswordMismatch,
			wantTitle:   "Password Mismatch",
		},
		{
			name:        "too short",
			req:         dto.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "short", ConfirmPassword: "short"},
			setupMock:   func() {},
			wantMessage: service.MessagePasswordTooShort,
			wantTitle:   "Password Too Short",
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "new-secret", ConfirmPassword: "new-secret"},
			setupMock: func() {
				mockRepo.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("old password is incorrect"))
			},
			wantMessage: "old password is incorrect",
			wantTitle:   "Password Change Failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{})

			tt.setupMock()

			err := svc.ChangePassword(ctx, tt.req)

			if tt.wantMessage != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantMessage, err.Error())
			} else {
				assert.NoError(t, err)
			}

			notes := ws.Notifications.Drain()
			require.Len(t, notes, 1)
			assert.Equal(t, tt.wantTitle, notes[0].Title)
		})
	}
}

func TestSettingsService_TableTypes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := authMocks.NewMockAccount(ctrl)
	svc := service.New(mockRepo, sessionMocks.NewMockStorage(ctrl), otelMocks.NewOtel())
	ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{})

	options := []model.TableTypeOption{{ID: "tt-1", Name: "Indoor"}, {ID: "tt-3", Name: "Rooftop"}}

	mockRepo.EXPECT().TableTypes(gomock.Any(), gomock.Any()).Return(options, nil)

	res, err := svc.TableTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, options, res)

	mockRepo.EXPECT().TableTypes(gomock.Any(), gomock.Any()).Return(nil, failure.BadGateway("down"))

	_, err = svc.TableTypes(ctx)
	assert.Error(t, err)

	notes := ws.Notifications.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, "Failed to load table types.", notes[0].Description)
}
