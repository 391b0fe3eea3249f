package dto

import (
	"encoding/json"
	"net/url"

	"dinedesk/internal/domains/feedback/model"
	"dinedesk/shared"
	"dinedesk/shared/timezone"
)

type FeedbackRecord struct {
	ID        string          `json:"_id"`
	CreatedBy json.RawMessage `json:"createdBy"`
	Rating    json.RawMessage `json:"rating"`
	Comment   string          `json:"comment"`
	CreatedAt string          `json:"createdAt"`
	IsVisible *bool           `json:"isVisible"`
}

// ToModel treats a missing visibility flag as visible and starts every record as new.
func (r FeedbackRecord) ToModel() model.Feedback {
	visible := true
	if r.IsVisible != nil {
		visible = *r.IsVisible
	}

	return model.Feedback{
		ID:        r.ID,
		Customer:  shared.ParseString(r.CreatedBy),
		Rating:    int(shared.ParseNumber(r.Rating)),
		Comment:   r.Comment,
		Date:      timezone.ParseTimestamp(r.CreatedAt),
		Status:    model.StatusNew,
		IsVisible: visible,
	}
}

func ToModels(records []FeedbackRecord) []model.Feedback {
	res := make([]model.Feedback, 0, len(records))
	for _, record := range records {
		res = append(res, record.ToModel())
	}

	return res
}

func VisibilityForm(visible bool) url.Values {
	return url.Values{"isVisible": {shared.BoolToString(visible)}}
}

// FeedbackForm backs the Edit dialog. Edits stay local.
type FeedbackForm struct {
	Customer string       `json:"customer" validate:"notblank,max=100"`
	Rating   int          `json:"rating"   validate:"gte=1,lte=5"`
	Comment  string       `json:"comment"  validate:"max=2000"`
	Status   model.Status `json:"status"   validate:"required,oneof=new resolved"`
}

func FormFromModel(f model.Feedback) FeedbackForm {
	return FeedbackForm{
		Customer: f.Customer,
		Rating:   f.Rating,
		Comment:  f.Comment,
		Status:   f.Status,
	}
}

func (f FeedbackForm) Apply(item *model.Feedback) {
	item.Customer = f.Customer
	item.Rating = f.Rating
	item.Comment = f.Comment
	item.Status = f.Status
}

type VisibilityRequest struct {
	IsVisible *bool `json:"is_visible" validate:"required"`
}

type StatusRequest struct {
	Status model.Status `json:"status" validate:"required,oneof=new resolved"`
}
