package service

import (
	"context"
	"fmt"

	"dinedesk/infras/jwt"
	"dinedesk/infras/otel"
	"dinedesk/internal/dashboard"
	"dinedesk/internal/domains/auth/model/dto"
	"dinedesk/internal/domains/auth/repository"
	"dinedesk/shared/constant"
	"dinedesk/shared/failure"
	"dinedesk/shared/session"
	"dinedesk/shared/timezone"
	"dinedesk/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	MessageMissingFields = "Please fill in all fields"
	MessageInvalidEmail  = "Please enter a valid email address"
	MessageLoginFailed   = "Invalid email or password"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, sessionID string) error
}

type serviceImpl struct {
	accountRepo repository.Account
	storage     session.Storage
	registry    dashboard.Registry
	otel        otel.Otel
	jwtService  jwt.JWT
}

func New(accountRepo repository.Account, storage session.Storage, registry dashboard.Registry, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		accountRepo: accountRepo,
		storage:     storage,
		registry:    registry,
		otel:        otel,
		jwtService:  jwt,
	}
}

func validateLogin(req dto.LoginRequest) error {
	if req.Email == "" || req.Password == "" {
		return failure.BadRequestFromString(MessageMissingFields)
	}

	if err := validator.ValidateVar(req.Email, "email"); err != nil {
		return failure.BadRequestFromString(MessageInvalidEmail)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = validateLogin(req); err != nil {
		return res, err
	}

	signIn, err := s.accountRepo.SignIn(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("sign in rejected by backend")

		if code := failure.GetCode(err); code >= 400 && code < 500 {
			return res, failure.Unauthorized(MessageLoginFailed)
		}

		return res, err //nolint:wrapcheck
	}

	if signIn.Token == "" {
		return res, failure.Unauthorized(MessageLoginFailed)
	}

	profile, err := s.accountRepo.Profile(ctx, signIn.Token)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("falling back to sign in profile")

		profile = signIn.UserDetails.ToModel()
	}

	if profile.ID == "" {
		return res, failure.Unauthorized(MessageLoginFailed)
	}

	sess := &session.Session{
		ID:           uuid.NewString(),
		RestaurantID: profile.ID,
		Email:        req.Email,
		Token:        signIn.Token,
		Profile:      profile,
		CreatedAt:    timezone.Now(),
	}

	if expiresAt, ok := jwt.InspectUpstream(signIn.Token); ok {
		sess.TokenExpiresAt = expiresAt
	}

	if err = s.storage.Save(ctx, sess); err != nil {
		log.Error().Err(err).Msg("failed to save session")

		return res, fmt.Errorf("failed to save session: %w", err)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(sess.RestaurantID, sess.Email, sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.Profile = profile

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(&err)

	tokenPair, claims, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	if _, err = s.storage.Load(ctx, claims.SessionID); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.storage.Touch(ctx, claims.SessionID); err != nil {
		log.Error().Err(err).Str("session_id", claims.SessionID).Msg("failed to extend session")

		return res, fmt.Errorf("failed to extend session: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(&err)

	s.registry.Close(sessionID)

	if err = s.storage.Delete(ctx, sessionID); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
