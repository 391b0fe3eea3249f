package session_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"dinedesk/config"
	"dinedesk/shared/cache"
	"dinedesk/shared/cache/mocks"
	"dinedesk/shared/failure"
	"dinedesk/shared/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUpstreamToken(t *testing.T) {
	var nilSession *session.Session

	_, err := nilSession.UpstreamToken()
	assert.ErrorIs(t, err, failure.MissingUpstreamToken)

	_, err = (&session.Session{}).UpstreamToken()
	assert.ErrorIs(t, err, failure.MissingUpstreamToken)

	token, err := (&session.Session{Token: "abc"}).UpstreamToken()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestTokenExpired(t *testing.T) {
	assert.False(t, (&session.Session{}).TokenExpired(), "unknown expiry never expires")
	assert.True(t, (&session.Session{TokenExpiresAt: time.Now().Add(-time.Minute)}).TokenExpired())
	assert.False(t, (&session.Session{TokenExpiresAt: time.Now().Add(time.Hour)}).TokenExpired())
}

func TestContext(t *testing.T) {
	_, ok := session.FromContext(context.Background())
	assert.False(t, ok)

	s := &session.Session{ID: "s1", RestaurantID: "r1"}
	got, ok := session.FromContext(session.WithContext(context.Background(), s))

	assert.True(t, ok)
	assert.Equal(t, "r1", got.RestaurantID)
}

func TestWithProfileDoesNotMutate(t *testing.T) {
	s := &session.Session{ID: "s1", Profile: session.Profile{RestaurantName: "old"}}
	updated := s.WithProfile(session.Profile{RestaurantName: "new"})

	assert.Equal(t, "old", s.Profile.RestaurantName)
	assert.Equal(t, "new", updated.Profile.RestaurantName)
}

func TestStorage(t *testing.T) {
	cfg := &config.Config{}
	cfg.Dashboard.SessionTTLSeconds = 60

	tests := []struct {
		name      string
		setupMock func(m *mocks.MockRedisCache)
		run       func(s session.Storage) error
		wantCode  int
		wantErr   bool
	}{
		{
			name: "save uses the session key and ttl",
			setupMock: func(m *mocks.MockRedisCache) {
				m.EXPECT().Save(gomock.Any(), "session:s1", gomock.Any(), 60).Return(nil)
			},
			run: func(s session.Storage) error {
				return s.Save(context.Background(), &session.Session{ID: "s1"})
			},
		},
		{
			name: "load miss is unauthorized",
			setupMock: func(m *mocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), "session:gone", gomock.Any()).Return(cache.Nil)
			},
			run: func(s session.Storage) error {
				_, err := s.Load(context.Background(), "gone")

				return err
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "load backend failure",
			setupMock: func(m *mocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), "session:s1", gomock.Any()).Return(errors.New("connection refused"))
			},
			run: func(s session.Storage) error {
				_, err := s.Load(context.Background(), "s1")

				return err
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "load fills the session",
			setupMock: func(m *mocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), "session:s1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
					value.(*session.Session).RestaurantID = "r1"

					return nil
				})
			},
			run: func(s session.Storage) error {
				res, err := s.Load(context.Background(), "s1")
				if err == nil && res.RestaurantID != "r1" {
					return errors.New("restaurant id not loaded")
				}

				return err
			},
		},
		{
			name: "touch and delete",
			setupMock: func(m *mocks.MockRedisCache) {
				m.EXPECT().Touch(gomock.Any(), "session:s1", 60).Return(nil)
				m.EXPECT().Delete(gomock.Any(), "session:s1").Return(nil)
			},
			run: func(s session.Storage) error {
				if err := s.Touch(context.Background(), "s1"); err != nil {
					return err
				}

				return s.Delete(context.Background(), "s1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := mocks.NewMockRedisCache(ctrl)
			tt.setupMock(redisCache)

			err := tt.run(session.NewStorage(cfg, redisCache))
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
