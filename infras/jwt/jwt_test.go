package jwt_test

import (
	"testing"
	"time"

	"dinedesk/config"
	"dinedesk/infras/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "dinedesk"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair("r1", "owner@resto.co", "s1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "r1", claims.RestaurantID)
	assert.Equal(t, "s1", claims.SessionID)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken, "signed with the access secret")

	_, err = svc.ValidateToken("garbage", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestRefreshKeepsSession(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair("r1", "owner@resto.co", "s1")
	require.NoError(t, err)

	refreshed, claims, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "s1", claims.SessionID)

	access, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "s1", access.SessionID)

	_, _, err = svc.RefreshTokens(pair.AccessToken)
	assert.Error(t, err)
}

func TestInspectUpstream(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"exp": exp.Unix(),
		"_id": "r1",
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	got, ok := jwt.InspectUpstream(token)
	assert.True(t, ok)
	assert.True(t, exp.Equal(got))

	_, ok = jwt.InspectUpstream("not-a-jwt")
	assert.False(t, ok)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("JWT abc")
	assert.Error(t, err)
}
