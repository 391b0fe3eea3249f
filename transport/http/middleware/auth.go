package middleware

import (
	"errors"
	"net/http"

	"dinedesk/infras/jwt"
	"dinedesk/infras/otel"
	"dinedesk/internal/dashboard"
	"dinedesk/permissions"
	"dinedesk/shared/constant"
	"dinedesk/shared/failure"
	"dinedesk/shared/session"
	"dinedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageSessionExpired = "session expired, please login again"

// Auth guards the dashboard routes.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	storage    session.Storage
	registry   dashboard.Registry
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthMiddleware(jwtService jwt.JWT, storage session.Storage, registry dashboard.Registry, otel otel.Otel, permissions *permissions.PermissionData) Auth {
	return &authImpl{
		jwtService: jwtService,
		storage:    storage,
		registry:   registry,
		otel:       otel,
		permission: permissions,
	}
}

// token reads the bearer token, falling back to the access_token query parameter for
// clients that cannot set headers, such as a browser websocket.
func token(request *http.Request) (string, error) {
	authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
	if authHeader == "" {
		if queryToken := request.URL.Query().Get(constant.RequestParamToken); queryToken != "" {
			return queryToken, nil
		}

		return "", failure.Unauthorized("Missing authorization header")
	}

	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return "", failure.Unauthorized("Invalid authorization header format")
	}

	return tokenString, nil
}

func claimsMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	default:
		return "Token validation failed"
	}
}

// Auth validates the gateway token, loads its session and attaches the session and its
// workspace to the request. Endpoints marked skip in the permissions file pass through.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		rctx := chi.RouteContext(ctx)
		method := request.Method
		path := request.URL.Path

		if rctx != nil && rctx.Routes != nil {
			if pattern := rctx.Routes.Find(chi.NewRouteContext(), method, request.URL.Path); pattern != "" {
				path = pattern
			}
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     method,
		})

		if m.permission != nil && (m.permission.Skip || m.permission.FindPermissions(path, method).Skip) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		fail := func(err error) {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)
		}

		tokenString, err := token(request)
		if err != nil {
			fail(err)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			fail(failure.Unauthorized(claimsMessage(err)))

			return
		}

		if claims.SessionID == "" || claims.RestaurantID == "" {
			log.Error().Msg("JWT claims: session or restaurant is empty")
			fail(failure.Unauthorized("Invalid token claims"))

			return
		}

		sess, err := m.storage.Load(ctx, claims.SessionID)
		if err != nil {
			fail(err)

			return
		}

		if sess.RestaurantID != claims.RestaurantID {
			fail(failure.Unauthorized("Invalid token claims"))

			return
		}

		if sess.TokenExpired() {
			m.registry.Close(sess.ID)

			if err := m.storage.Delete(ctx, sess.ID); err != nil {
				log.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to delete expired session")
			}

			fail(failure.Unauthorized(messageSessionExpired))

			return
		}

		if err := m.storage.Touch(ctx, sess.ID); err != nil {
			log.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to extend session")
		}

		ws := m.registry.Acquire(sess)

		ctx = session.WithContext(request.Context(), sess)
		ctx = dashboard.WithContext(ctx, ws)

		scope.SetAttribute("session.id", sess.ID)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
