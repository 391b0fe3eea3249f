package service

import (
	"context"
	"strconv"

	"dinedesk/infras/otel"
	"dinedesk/internal/dashboard"
	"dinedesk/internal/domains/feedback/model"
	"dinedesk/internal/domains/feedback/model/dto"
	"dinedesk/internal/domains/feedback/repository"
	"dinedesk/shared/constant"
	"dinedesk/shared/failure"
	"dinedesk/shared/modal"
	"dinedesk/shared/notify"
	"dinedesk/shared/query"
	"dinedesk/shared/store"
	"dinedesk/shared/validator"
	"dinedesk/shared/view"
)

const (
	titleUpdated = "Feedback updated"
	titleDeleted = "Feedback deleted"

	messageUpdated          = "The feedback has been successfully updated."
	messageDeleted          = "The feedback has been removed from the list."
	messageVisibilityFailed = "Failed to update feedback visibility"
)

// Feedback status, edits and deletes stay in the gateway because the backend only
// stores visibility. They are lost on the next refresh.
type Feedback interface {
	List(ctx context.Context, params *query.Params) (query.Result[model.Feedback], error)
	UpdateQuery(ctx context.Context, update view.Update) (query.Result[model.Feedback], error)
	ToggleSort(ctx context.Context, field string) (query.Result[model.Feedback], error)
	Modals(ctx context.Context) (modal.SetState[model.Feedback, dto.FeedbackForm], error)
	CloseModal(ctx context.Context, kind modal.Kind) error
	View(ctx context.Context, id string) (model.Feedback, error)
	OpenEdit(ctx context.Context, id string) (dto.FeedbackForm, error)
	OpenDelete(ctx context.Context, id string) (model.Feedback, error)
	SetVisibility(ctx context.Context, id string, visible bool) (model.Feedback, error)
	SetStatus(ctx context.Context, id string, status model.Status) (model.Feedback, error)
	Edit(ctx context.Context, id string, form dto.FeedbackForm) (model.Feedback, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Feedback
	otel otel.Otel
}

func New(repo repository.Feedback, otel otel.Otel) Feedback {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, params *query.Params) (res query.Result[model.Feedback], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Feedback.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Feedbacks.Read(ctx, params) //nolint:wrapcheck
}

func (s *serviceImpl) UpdateQuery(ctx context.Context, update view.Update) (res query.Result[model.Feedback], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Feedbacks.Apply(ctx, update) //nolint:wrapcheck
}

func (s *serviceImpl) ToggleSort(ctx context.Context, field string) (res query.Result[model.Feedback], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Feedbacks.ToggleSort(ctx, field) //nolint:wrapcheck
}

func (s *serviceImpl) Modals(ctx context.Context) (res modal.SetState[model.Feedback, dto.FeedbackForm], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Feedbacks.Modals.State(), nil
}

func (s *serviceImpl) CloseModal(ctx context.Context, kind modal.Kind) error {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	ws.Feedbacks.Modals.Close(kind)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (*dashboard.Workspace, model.Feedback, error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return nil, model.Feedback{}, err //nolint:wrapcheck
	}

	ws.Feedbacks.Ensure(ctx)

	feedback, ok := ws.Feedbacks.Store.Get(id)
	if !ok {
		return ws, feedback, failure.NotFound(model.EntityName)
	}

	return ws, feedback, nil
}

func (s *serviceImpl) View(ctx context.Context, id string) (model.Feedback, error) {
	ws, res, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	ws.Feedbacks.Modals.View.Open(res)

	return res, nil
}

func (s *serviceImpl) OpenEdit(ctx context.Context, id string) (dto.FeedbackForm, error) {
	ws, feedback, err := s.find(ctx, id)
	if err != nil {
		return dto.FeedbackForm{}, err
	}

	form := dto.FormFromModel(feedback)
	ws.Feedbacks.Modals.Edit.Open(form)

	return form, nil
}

func (s *serviceImpl) OpenDelete(ctx context.Context, id string) (model.Feedback, error) {
	ws, res, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	ws.Feedbacks.Modals.Delete.Open(res)

	return res, nil
}

// SetVisibility is the only feedback change the backend keeps.
func (s *serviceImpl) SetVisibility(ctx context.Context, id string, visible bool) (res model.Feedback, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Feedback.SetVisibility")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	msgs := store.Messages{
		Success: "Feedback visibility set to " + strconv.FormatBool(visible),
		Failure: messageVisibilityFailed,
	}

	res, err = ws.Feedbacks.Store.Update(ctx, id, msgs, func(ctx context.Context) (model.Feedback, error) {
		if err := s.repo.SetVisibility(ctx, ws.Session(), id, visible); err != nil {
			return model.Feedback{}, err //nolint:wrapcheck
		}

		current.IsVisible = visible

		return current, nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.Announce(ctx, dashboard.ViewFeedbacks, constant.ActionUpdate)

	return res, nil
}

func (s *serviceImpl) SetStatus(ctx context.Context, id string, status model.Status) (model.Feedback, error) {
	req := dto.StatusRequest{Status: status}
	if err := validator.ValidateStruct(&req); err != nil {
		return model.Feedback{}, err //nolint:wrapcheck
	}

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return model.Feedback{}, err //nolint:wrapcheck
	}

	res, ok := ws.Feedbacks.Store.Patch(id, func(item *model.Feedback) {
		item.Status = status
	})
	if !ok {
		return res, failure.NotFound(model.EntityName)
	}

	return res, nil
}

func (s *serviceImpl) Edit(ctx context.Context, id string, form dto.FeedbackForm) (model.Feedback, error) {
	if err := validator.ValidateStruct(&form); err != nil {
		return model.Feedback{}, err //nolint:wrapcheck
	}

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return model.Feedback{}, err //nolint:wrapcheck
	}

	res, ok := ws.Feedbacks.Store.Patch(id, form.Apply)
	if !ok {
		return res, failure.NotFound(model.EntityName)
	}

	ws.Feedbacks.Modals.Edit.Close()

	ws.Notifications.Notify(notify.Success(messageUpdated).WithTitle(titleUpdated))

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !ws.Feedbacks.Store.RemoveLocal(id) {
		return failure.NotFound(model.EntityName)
	}

	ws.Feedbacks.Modals.Delete.Close()

	ws.Notifications.Notify(notify.Success(messageDeleted).WithTitle(titleDeleted))

	return nil
}
