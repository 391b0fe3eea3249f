package service

import (
	"context"
	"fmt"

	"dinedesk/infras/otel"
	"dinedesk/infras/s3"
	"dinedesk/internal/dashboard"
	"dinedesk/internal/domains/calllog/model"
	"dinedesk/internal/domains/calllog/model/dto"
	"dinedesk/internal/domains/calllog/repository"
	"dinedesk/shared/constant"
	"dinedesk/shared/failure"
	"dinedesk/shared/modal"
	"dinedesk/shared/query"
	"dinedesk/shared/store"
	"dinedesk/shared/validator"
	"dinedesk/shared/view"

	"github.com/rs/zerolog/log"
)

var createMessages = store.Messages{
	Success: "Call log added successfully.",
	Failure: "Failed to add call log.",
}

type CallLog interface {
	List(ctx context.Context, params *query.Params) (query.Result[model.CallLog], error)
	UpdateQuery(ctx context.Context, update view.Update) (query.Result[model.CallLog], error)
	ToggleSort(ctx context.Context, field string) (query.Result[model.CallLog], error)
	Modals(ctx context.Context) (modal.SetState[model.CallLog, dto.CallLogForm], error)
	CloseModal(ctx context.Context, kind modal.Kind) error
	View(ctx context.Context, id string) (model.CallLog, error)
	OpenAdd(ctx context.Context) (dto.CallLogForm, error)
	Create(ctx context.Context, form dto.CallLogForm) error
	Audio(ctx context.Context, id string) (dto.AudioResponse, error)
}

type serviceImpl struct {
	repo repository.CallLog
	s3   s3.S3
	otel otel.Otel
}

func New(repo repository.CallLog, s3 s3.S3, otel otel.Otel) CallLog {
	return &serviceImpl{
		repo: repo,
		s3:   s3,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, params *query.Params) (res query.Result[model.CallLog], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CallLog.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.CallLogs.Read(ctx, params) //nolint:wrapcheck
}

func (s *serviceImpl) UpdateQuery(ctx context.Context, update view.Update) (res query.Result[model.CallLog], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.CallLogs.Apply(ctx, update) //nolint:wrapcheck
}

func (s *serviceImpl) ToggleSort(ctx context.Context, field string) (res query.Result[model.CallLog], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.CallLogs.ToggleSort(ctx, field) //nolint:wrapcheck
}

func (s *serviceImpl) Modals(ctx context.Context) (res modal.SetState[model.CallLog, dto.CallLogForm], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.CallLogs.Modals.State(), nil
}

func (s *serviceImpl) CloseModal(ctx context.Context, kind modal.Kind) error {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	ws.CallLogs.Modals.Close(kind)

	return nil
}

// View opens the detail dialog with the record as it is in the list.
func (s *serviceImpl) View(ctx context.Context, id string) (res model.CallLog, err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.CallLogs.Ensure(ctx)

	res, ok := ws.CallLogs.Store.Get(id)
	if !ok {
		return res, failure.NotFound(model.EntityName)
	}

	ws.CallLogs.Modals.View.Open(res)

	return res, nil
}

func (s *serviceImpl) OpenAdd(ctx context.Context) (dto.CallLogForm, error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return dto.CallLogForm{}, err //nolint:wrapcheck
	}

	form := dto.NewForm()
	ws.CallLogs.Modals.Add.Open(form)

	return form, nil
}

// Create sends the new call log and reloads the list, since the backend does not
// return the created record.
func (s *serviceImpl) Create(ctx context.Context, form dto.CallLogForm) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CallLog.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	form = form.WithDefaults()
	if err = validator.ValidateStruct(&form); err != nil {
		return err //nolint:wrapcheck
	}

	err = ws.CallLogs.Store.Send(ctx, createMessages, func(ctx context.Context) error {
		return s.repo.Create(ctx, ws.Session(), form)
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	ws.CallLogs.Modals.Add.Close()
	ws.Announce(ctx, dashboard.ViewCallLogs, constant.ActionCreate)

	return nil
}

// Audio returns a playable link for the call recording. Object keys are presigned,
// absolute links are returned as they are.
func (s *serviceImpl) Audio(ctx context.Context, id string) (res dto.AudioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CallLog.Audio")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.CallLogs.Ensure(ctx)

	callLog, ok := ws.CallLogs.Store.Get(id)
	if !ok {
		return res, failure.NotFound(model.EntityName)
	}

	if !callLog.HasAudio() {
		return res, failure.NotFound("call recording")
	}

	res.ID = callLog.ID
	res.URL = callLog.AudioRef

	if !s3.IsObjectKey(callLog.AudioRef) {
		return res, nil
	}

	res.URL, err = s.s3.PresignGetObject(ctx, callLog.AudioRef)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to presign call recording")

		return res, fmt.Errorf("failed to presign call recording: %w", err)
	}

	return res, nil
}
