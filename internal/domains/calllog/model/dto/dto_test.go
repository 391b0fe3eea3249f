package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"dinedesk/internal/domains/calllog/model"
	"dinedesk/internal/domains/calllog/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePurpose(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "complete", expected: model.PurposeComplete},
		{input: "c0mplete", expected: model.PurposeComplete},
		{input: " C0MPLETE ", expected: model.PurposeComplete},
		{input: "Incomplete", expected: model.PurposeIncomplete},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, dto.NormalizePurpose(tt.input))
		})
	}
}

func TestCallLogRecordToModel(t *testing.T) {
	body := `{
		"_id":"c1",
		"userRestaurantId":"rest-1",
		"callerName":"Ann",
		"callerNumber":"+15550100",
		"callDuration":"42",
		"callType":"incoming",
		"purpose":"c0mplete",
		"calledAt":"2026-03-02T18:30:00Z",
		"createdAt":"2026-03-02T18:31:00Z",
		"restaurantDetails":[{"_id":"rest-1","restaurantName":"Blue Door"}],
		"audioUrl":" calls/c1.mp3 "
	}`

	var record dto.CallLogRecord
	require.NoError(t, json.Unmarshal([]byte(body), &record))

	call := record.ToModel()

	assert.Equal(t, "c1", call.ID)
	assert.Equal(t, "rest-1", call.RestaurantID)
	assert.Equal(t, model.PurposeComplete, call.Purpose)
	assert.Equal(t, "Blue Door", call.RestaurantName)
	assert.Equal(t, "calls/c1.mp3", call.AudioRef)
	assert.True(t, call.CalledAt.Equal(time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)))
}

func TestCallLogRecordWithoutRestaurantDetails(t *testing.T) {
	call := dto.CallLogRecord{ID: "c1", Purpose: "incomplete"}.ToModel()

	assert.Empty(t, call.RestaurantName)
	assert.True(t, call.CalledAt.IsZero())
	assert.Equal(t, model.PurposeIncomplete, call.Purpose)
}

func TestFormWithDefaults(t *testing.T) {
	form := dto.CallLogForm{CallerName: "Ann"}.WithDefaults()
	assert.Equal(t, model.TypeIncoming, form.Type)
	assert.Equal(t, model.PurposeComplete, form.Purpose)

	legacy := dto.CallLogForm{Type: "outgoing", Purpose: "c0mplete"}.WithDefaults()
	assert.Equal(t, "outgoing", legacy.Type)
	assert.Equal(t, model.PurposeComplete, legacy.Purpose)
	assert.Equal(t, "complete", legacy.ToCreateForm("rest-1").Get("purpose"))
}
