package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dinedesk/infras/jwt"
	jwtMocks "dinedesk/infras/jwt/mocks"
	otelMocks "dinedesk/infras/otel/mocks"
	"dinedesk/internal/dashboard"
	dashboardMocks "dinedesk/internal/dashboard/mocks"
	"dinedesk/permissions"
	"dinedesk/shared/failure"
	"dinedesk/shared/session"
	sessionMocks "dinedesk/shared/session/mocks"
	"dinedesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	jwt      *jwtMocks.MockJWT
	storage  *sessionMocks.MockStorage
	registry *dashboardMocks.MockRegistry
	router   chi.Router
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := authFixture{
		jwt:      jwtMocks.NewMockJWT(ctrl),
		storage:  sessionMocks.NewMockStorage(ctrl),
		registry: dashboardMocks.NewMockRegistry(ctrl),
	}

	perms := &permissions.PermissionData{Endpoints: []permissions.Permission{
		{Path: "/v1/auth/login", Method: http.MethodPost, Skip: true},
	}}
	auth := middleware.NewAuthMiddleware(f.jwt, f.storage, f.registry, otelMocks.NewOtel(), perms)

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Use(auth.Auth)
		r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		r.Get("/bookings", func(w http.ResponseWriter, r *http.Request) {
			sess, ok := session.FromContext(r.Context())
			_, err := dashboard.FromContext(r.Context())

			if !ok || err != nil {
				w.WriteHeader(http.StatusInternalServerError)

				return
			}

			w.Header().Set("X-Session", sess.ID)
			w.WriteHeader(http.StatusOK)
		})
	})
	f.router = r

	return f
}

func (f authFixture) do(method, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func validClaims() *jwt.Claims {
	return &jwt.Claims{RestaurantID: "rest-1", Email: "owner@example.com", SessionID: "session-1", Type: jwt.AccessToken}
}

func TestAuthSkipsPublicRoutes(t *testing.T) {
	f := newAuthFixture(t)

	rec := f.do(http.MethodPost, "/v1/auth/login", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthAttachesSessionAndWorkspace(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		authorization string
		token         string
	}{
		{name: "bearer header", target: "/v1/bookings", authorization: "Bearer gateway-token", token: "gateway-token"},
		{name: "query token", target: "/v1/bookings?access_token=ws-token", token: "ws-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			sess := &session.Session{ID: "session-1", RestaurantID: "rest-1", Token: "upstream"}

			f.jwt.EXPECT().ValidateToken(tt.token, jwt.AccessToken).Return(validClaims(), nil)
			f.storage.EXPECT().Load(gomock.Any(), "session-1").Return(sess, nil)
			f.storage.EXPECT().Touch(gomock.Any(), "session-1").Return(nil)
			f.registry.EXPECT().Acquire(sess).Return(&dashboard.Workspace{ID: "session-1"})

			rec := f.do(http.MethodGet, tt.target, tt.authorization)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "session-1", rec.Header().Get("X-Session"))
		})
	}
}

func TestAuthRejects(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		setup         func(f authFixture)
	}{
		{
			name: "missing token",
		},
		{
			name:          "wrong scheme",
			authorization: "Basic abc",
		},
		{
			name:          "expired gateway token",
			authorization: "Bearer old",
			setup: func(f authFixture) {
				f.jwt.EXPECT().ValidateToken("old", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
		},
		{
			name:          "claims without session",
			authorization: "Bearer token",
			setup: func(f authFixture) {
				f.jwt.EXPECT().ValidateToken("token", jwt.AccessToken).Return(&jwt.Claims{RestaurantID: "rest-1"}, nil)
			},
		},
		{
			name:          "session gone",
			authorization: "Bearer token",
			setup: func(f authFixture) {
				f.jwt.EXPECT().ValidateToken("token", jwt.AccessToken).Return(validClaims(), nil)
				f.storage.EXPECT().Load(gomock.Any(), "session-1").Return(nil, failure.Unauthorized("session expired, please login again"))
			},
		},
		{
			name:          "session of another restaurant",
			authorization: "Bearer token",
			setup: func(f authFixture) {
				f.jwt.EXPECT().ValidateToken("token", jwt.AccessToken).Return(validClaims(), nil)
				f.storage.EXPECT().Load(gomock.Any(), "session-1").Return(&session.Session{ID: "session-1", RestaurantID: "rest-2"}, nil)
			},
		},
		{
			name:          "upstream token expired",
			authorization: "Bearer token",
			setup: func(f authFixture) {
				sess := &session.Session{ID: "session-1", RestaurantID: "rest-1", TokenExpiresAt: time.Now().Add(-time.Minute)}

				f.jwt.EXPECT().ValidateToken("token", jwt.AccessToken).Return(validClaims(), nil)
				f.storage.EXPECT().Load(gomock.Any(), "session-1").Return(sess, nil)
				f.registry.EXPECT().Close("session-1")
				f.storage.EXPECT().Delete(gomock.Any(), "session-1").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			rec := f.do(http.MethodGet, "/v1/bookings", tt.authorization)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
