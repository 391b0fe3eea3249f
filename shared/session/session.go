// Package session carries the signed-in operator: restaurant id, backend token and the
// profile snapshot taken at sign in. It is passed explicitly to every store and view.
package session

import (
	"context"
	"time"

	"dinedesk/shared/constant"
	"dinedesk/shared/failure"
	"dinedesk/shared/timezone"
)

type TableType struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Active     bool   `json:"status"`
	NoOfTables int    `json:"noOfTables"`
}

type Profile struct {
	ID                string      `json:"_id"`
	Username          string      `json:"username"`
	Email             string      `json:"email"`
	PhoneNumber       string      `json:"phoneNumber"`
	RestaurantName    string      `json:"restaurantName"`
	RestaurantAddress string      `json:"restaurantAddress"`
	NoOfTables        int         `json:"noOfTables"`
	TableTypes        []TableType `json:"tableTypes"`
}

type Session struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Email        string    `json:"email"`
	Token        string    `json:"token"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	// TokenExpiresAt is zero when the backend token carries no readable expiry.
	TokenExpiresAt time.Time `json:"token_expires_at,omitzero"`
}

// UpstreamToken returns the backend credential or the missing-token failure.
func (s *Session) UpstreamToken() (string, error) {
	if s == nil || s.Token == "" {
		return "", failure.MissingUpstreamToken
	}

	return s.Token, nil
}

func (s *Session) TokenExpired() bool {
	if s.TokenExpiresAt.IsZero() {
		return false
	}

	return !timezone.Now().Before(s.TokenExpiresAt)
}

func (s *Session) WithProfile(profile Profile) *Session {
	clone := *s
	clone.Profile = profile

	return &clone
}

func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, constant.ContextKeySession, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(constant.ContextKeySession).(*Session)

	return s, ok && s != nil
}
