package session

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=./mocks/storage_mock.go -package=mocks

import (
	"context"
	"fmt"

	"dinedesk/config"
	"dinedesk/shared"
	"dinedesk/shared/cache"
	"dinedesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const keyPrefix = "session"

type Storage interface {
	Save(ctx context.Context, s *Session) (err error)
	Load(ctx context.Context, id string) (res *Session, err error)
	Touch(ctx context.Context, id string) (err error)
	Delete(ctx context.Context, id string) (err error)
}

type redisStorage struct {
	cache cache.RedisCache
	ttl   int
}

func NewStorage(cfg *config.Config, redisCache cache.RedisCache) Storage {
	return &redisStorage{
		cache: redisCache,
		ttl:   cfg.Dashboard.SessionTTLSeconds,
	}
}

func Key(id string) string {
	return shared.BuildCacheKey(keyPrefix, id)
}

func (r *redisStorage) Save(ctx context.Context, s *Session) (err error) {
	if err = r.cache.Save(ctx, Key(s.ID), s, r.ttl); err != nil {
		log.Error().Err(err).Str("session_id", s.ID).Msg("failed to save session")

		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Load returns an unauthorized failure when the session is gone, which the
// route guard turns into a redirect to login.
func (r *redisStorage) Load(ctx context.Context, id string) (res *Session, err error) {
	res = &Session{}

	err = r.cache.Get(ctx, Key(id), res)
	if cache.IsMiss(err) {
		return nil, failure.Unauthorized("session expired, please login again") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("session_id", id).Msg("failed to load session")

		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return res, nil
}

func (r *redisStorage) Touch(ctx context.Context, id string) (err error) {
	if err = r.cache.Touch(ctx, Key(id), r.ttl); err != nil {
		log.Warn().Err(err).Str("session_id", id).Msg("failed to extend session")

		return fmt.Errorf("failed to extend session: %w", err)
	}

	return nil
}

func (r *redisStorage) Delete(ctx context.Context, id string) (err error) {
	if err = r.cache.Delete(ctx, Key(id)); err != nil {
		log.Error().Err(err).Str("session_id", id).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
