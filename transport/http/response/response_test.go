package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dinedesk/shared/failure"
	"dinedesk/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "expired upstream session", err: failure.FromUpstream(http.StatusUnauthorized, "jwt expired"), wantCode: http.StatusUnauthorized, wantMsg: "jwt expired"},
		{name: "backend down", err: fmt.Errorf("refresh bookings: %w", failure.BadGateway("connection refused")), wantCode: http.StatusBadGateway, wantMsg: "refresh bookings: connection refused"},
		{name: "plain error is masked", err: errors.New("nil map write in cart"), wantCode: http.StatusInternalServerError, wantMsg: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantMsg, *body.Error)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestWithJSONWrapsData(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusOK, map[string]int{"calls_today": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"calls_today":3}}`, rec.Body.String())
}
