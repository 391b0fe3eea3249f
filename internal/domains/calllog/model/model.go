package model

import (
	"time"

	"dinedesk/shared"
	"dinedesk/shared/query"
)

const (
	EntityName = "call log"
	StoreName  = "call logs"

	FieldDate     = "date"
	FieldDuration = "duration"
)

const (
	TypeIncoming = "incoming"
	TypeOutgoing = "outgoing"

	PurposeComplete   = "complete"
	PurposeIncomplete = "incomplete"
)

type CallLog struct {
	ID             string    `json:"id"`
	RestaurantID   string    `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	CallerName     string    `json:"caller_name"`
	CallerNumber   string    `json:"caller_number"`
	Duration       string    `json:"duration"`
	Conversation   string    `json:"conversation"`
	Type           string    `json:"type"`
	Purpose        string    `json:"purpose"`
	Status         string    `json:"status"`
	CalledAt       time.Time `json:"called_at"`
	CreatedAt      time.Time `json:"created_at"`
	AudioRef       string    `json:"audio_ref,omitempty"`
}

func ID(c CallLog) string {
	return c.ID
}

// DurationSeconds reads the text duration, zero when it is not a number.
func (c CallLog) DurationSeconds() int {
	return shared.AtoiOrZero(c.Duration)
}

func (c CallLog) HasAudio() bool {
	return c.AudioRef != ""
}

func (c CallLog) Missed() bool {
	return c.Purpose == PurposeIncomplete
}

func (c CallLog) Attended() bool {
	return c.Purpose == PurposeComplete
}

func QuerySpec(pageSize int) query.Spec[CallLog] {
	return query.Spec[CallLog]{
		Search: func(c CallLog) []string {
			return []string{c.CallerName, c.CallerNumber, c.Conversation, c.Type, c.Purpose}
		},
		Sorts: map[string]query.SortField[CallLog]{
			FieldDate: {
				Compare:    query.ByTime(func(c CallLog) time.Time { return c.CalledAt }),
				DefaultDir: query.Desc,
			},
			FieldDuration: {
				Compare:    query.ByNumber(func(c CallLog) int { return c.DurationSeconds() }),
				DefaultDir: query.Desc,
			},
		},
		PageSize: pageSize,
	}
}
