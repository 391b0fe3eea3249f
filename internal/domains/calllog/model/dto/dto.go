package dto

import (
	"net/url"
	"strings"

	"dinedesk/internal/domains/calllog/model"
	"dinedesk/shared/timezone"
)

// legacyComplete is how older records spell the complete purpose.
const legacyComplete = "c0mplete"

type RestaurantDetail struct {
	ID                string `json:"_id"`
	RestaurantName    string `json:"restaurantName"`
	RestaurantAddress string `json:"restaurantAddress"`
}

type CallLogRecord struct {
	ID                string             `json:"_id"`
	UserRestaurantID  string             `json:"userRestaurantId"`
	CallerName        string             `json:"callerName"`
	CallerNumber      string             `json:"callerNumber"`
	CallDuration      string             `json:"callDuration"`
	CallConversation  string             `json:"callConversation"`
	CallType          string             `json:"callType"`
	Purpose           string             `json:"purpose"`
	CalledAt          string             `json:"calledAt"`
	CreatedAt         string             `json:"createdAt"`
	Status            string             `json:"status"`
	RestaurantDetails []RestaurantDetail `json:"restaurantDetails"`
	AudioURL          string             `json:"audioUrl"`
}

func NormalizePurpose(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == legacyComplete {
		return model.PurposeComplete
	}

	return value
}

func (r CallLogRecord) ToModel() model.CallLog {
	res := model.CallLog{
		ID:           r.ID,
		RestaurantID: r.UserRestaurantID,
		CallerName:   r.CallerName,
		CallerNumber: r.CallerNumber,
		Duration:     r.CallDuration,
		Conversation: r.CallConversation,
		Type:         r.CallType,
		Purpose:      NormalizePurpose(r.Purpose),
		Status:       r.Status,
		CalledAt:     timezone.ParseTimestamp(r.CalledAt),
		CreatedAt:    timezone.ParseTimestamp(r.CreatedAt),
		AudioRef:     strings.TrimSpace(r.AudioURL),
	}

	if len(r.RestaurantDetails) > 0 {
		res.RestaurantName = r.RestaurantDetails[0].RestaurantName
	}

	return res
}

func ToModels(records []CallLogRecord) []model.CallLog {
	res := make([]model.CallLog, 0, len(records))
	for _, record := range records {
		res = append(res, record.ToModel())
	}

	return res
}

// CallLogForm backs the Add dialog.
type CallLogForm struct {
	CallerName   string `json:"caller_name"   validate:"notblank,max=100"`
	CallerNumber string `json:"caller_number" validate:"notblank,phone"`
	Duration     string `json:"duration"      validate:"required,numeric"`
	Conversation string `json:"conversation"  validate:"omitempty,max=5000"`
	Type         string `json:"type"          validate:"required,oneof=incoming outgoing"`
	Purpose      string `json:"purpose"       validate:"required,oneof=complete incomplete"`
}

func NewForm() CallLogForm {
	return CallLogForm{Type: model.TypeIncoming, Purpose: model.PurposeComplete}
}

// WithDefaults fills the call type and purpose a blank form starts with.
func (f CallLogForm) WithDefaults() CallLogForm {
	if f.Type == "" {
		f.Type = model.TypeIncoming
	}

	if f.Purpose == "" {
		f.Purpose = model.PurposeComplete
	}

	f.Purpose = NormalizePurpose(f.Purpose)

	return f
}

func (f CallLogForm) ToCreateForm(restaurantID string) url.Values {
	return url.Values{
		"callerName":       {f.CallerName},
		"callerNumber":     {f.CallerNumber},
		"callDuration":     {f.Duration},
		"callConversation": {f.Conversation},
		"callType":         {f.Type},
		"purpose":          {f.Purpose},
		"userRestaurantId": {restaurantID},
	}
}

type AudioResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
