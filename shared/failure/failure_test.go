package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"dinedesk/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFromUpstream(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		msg      string
		wantCode int
		wantMsg  string
	}{
		{name: "expired session", status: http.StatusUnauthorized, msg: "jwt expired", wantCode: http.StatusUnauthorized, wantMsg: "jwt expired"},
		{name: "unknown booking", status: http.StatusNotFound, msg: "booking not found", wantCode: http.StatusNotFound, wantMsg: "booking not found"},
		{name: "rejected payload", status: http.StatusBadRequest, msg: "phone is required", wantCode: http.StatusBadRequest, wantMsg: "phone is required"},
		{name: "throttled", status: http.StatusTooManyRequests, wantCode: http.StatusTooManyRequests, wantMsg: "Too Many Requests"},
		{name: "backend crashed", status: http.StatusInternalServerError, msg: "db down", wantCode: http.StatusBadGateway, wantMsg: "db down"},
		{name: "backend unavailable without body", status: http.StatusServiceUnavailable, wantCode: http.StatusBadGateway, wantMsg: "Service Unavailable"},
		{name: "unexpected redirect", status: http.StatusFound, msg: "moved", wantCode: http.StatusBadGateway, wantMsg: "moved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.FromUpstream(tt.status, tt.msg)

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestBadGateway(t *testing.T) {
	err := failure.BadGateway("restaurant backend unreachable")

	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.EqualError(t, err, "restaurant backend unreachable")
}

func TestBadRequest(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))

	err := failure.BadRequest(errors.New("table number must be positive"))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.EqualError(t, err, "table number must be positive")
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "failure", err: failure.NotFound("order"), expected: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("refresh orders: %w", failure.FromUpstream(http.StatusUnauthorized, "")), expected: http.StatusUnauthorized},
		{name: "predefined", err: failure.MissingUpstreamToken, expected: http.StatusUnauthorized},
		{name: "conflict", err: failure.Conflict("cart is empty"), expected: http.StatusConflict},
		{name: "plain error", err: errors.New("dial tcp: refused"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.err))
		})
	}
}
