package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"dinedesk/infras/otel"
	"dinedesk/internal/dashboard"
	menuModel "dinedesk/internal/domains/menu/model"
	"dinedesk/internal/domains/order/model"
	"dinedesk/internal/domains/order/model/dto"
	"dinedesk/internal/domains/order/repository"
	"dinedesk/internal/domains/order/workflow"
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
	messageViewFailed = "Failed to load order details"
	messageEditFailed = "Failed to load order details for editing"
)

var (
	createMessages = store.Messages{
		Title:   "Order Created",
		Success: "New order has been successfully created.",
		Failure: "Failed to create order",
	}
	updateMessages = store.Messages{
		Title:   "Order Updated",
		Success: "The order has been successfully updated.",
		Failure: "Failed to update order",
	}
	deleteMessages = store.Messages{
		Title:   "Order deleted",
		Success: "The order has been successfully deleted.",
		Failure: "Failed to delete order",
	}
)

type Order interface {
	List(ctx context.Context, params *query.Params) (query.Result[model.Order], error)
	UpdateQuery(ctx context.Context, update view.Update) (query.Result[model.Order], error)
	ToggleSort(ctx context.Context, field string) (query.Result[model.Order], error)
	Modals(ctx context.Context) (modal.SetState[model.Order, dto.OrderDetails], error)
	CloseModal(ctx context.Context, kind modal.Kind) error
	View(ctx context.Context, id string) (model.Order, error)
	OpenDelete(ctx context.Context, id string) (model.Order, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, req dto.StatusRequest) (model.Order, error)

	Workflow(ctx context.Context) (workflow.State, error)
	Start(ctx context.Context) (workflow.State, error)
	StartEdit(ctx context.Context, id string) (workflow.State, error)
	SelectCategory(ctx context.Context, categoryID string) (workflow.State, error)
	Back(ctx context.Context) (workflow.State, error)
	AddItem(ctx context.Context, menuItemID string) (workflow.State, error)
	Increment(ctx context.Context, menuItemID string) (workflow.State, error)
	Decrement(ctx context.Context, menuItemID string) (workflow.State, error)
	RemoveLine(ctx context.Context, menuItemID string) (workflow.State, error)
	Proceed(ctx context.Context) (workflow.State, error)
	SetDetails(ctx context.Context, details dto.OrderDetails) (workflow.State, error)
	Submit(ctx context.Context) (workflow.State, error)
	Cancel(ctx context.Context) (workflow.State, error)
}

type serviceImpl struct {
	repo repository.Order
	otel otel.Otel
}

func New(repo repository.Order, otel otel.Otel) Order {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, params *query.Params) (res query.Result[model.Order], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Order.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Orders.Read(ctx, params) //nolint:wrapcheck
}

func (s *serviceImpl) UpdateQuery(ctx context.Context, update view.Update) (res query.Result[model.Order], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Orders.Apply(ctx, update) //nolint:wrapcheck
}

func (s *serviceImpl) ToggleSort(ctx context.Context, field string) (res query.Result[model.Order], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Orders.ToggleSort(ctx, field) //nolint:wrapcheck
}

func (s *serviceImpl) Modals(ctx context.Context) (res modal.SetState[model.Order, dto.OrderDetails], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Orders.Modals.State(), nil
}

// CloseModal abandons the wizard together with the Add or Edit dialog that hosts it.
func (s *serviceImpl) CloseModal(ctx context.Context, kind modal.Kind) error {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	ws.Orders.Modals.Close(kind)

	if kind == modal.KindAdd || kind == modal.KindEdit {
		ws.OrderWorkflow.Cancel()
	}

	return nil
}

func (s *serviceImpl) detail(ctx context.Context, ws *dashboard.Workspace, id, failed string) (model.Order, error) {
	res, err := s.repo.View(ctx, ws.Session(), id)
	if err != nil {
		ws.Notifications.Notify(notify.FromError(err, failed))

		return res, err //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) View(ctx context.Context, id string) (res model.Order, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Order.View")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.detail(ctx, ws, id, messageViewFailed)
	if err != nil {
		return res, err
	}

	ws.Orders.Modals.View.Open(res)

	return res, nil
}

func (s *serviceImpl) OpenDelete(ctx context.Context, id string) (res model.Order, err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.Orders.Ensure(ctx)

	res, ok := ws.Orders.Store.Get(id)
	if !ok {
		return res, failure.NotFound(model.EntityName)
	}

	ws.Orders.Modals.Delete.Open(res)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Order.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = ws.Orders.Store.Remove(ctx, id, deleteMessages, func(ctx context.Context) error {
		return s.repo.Delete(ctx, ws.Session(), id)
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	ws.Orders.Modals.Delete.Close()
	ws.Announce(ctx, dashboard.ViewOrders, constant.ActionDelete)

	return nil
}

// update sends the full order, since the backend has no partial update, and keeps
// the submitted values in the list.
func (s *serviceImpl) update(ctx context.Context, ws *dashboard.Workspace, id string, payload dto.OrderPayload) (model.Order, error) {
	current, ok := ws.Orders.Store.Get(id)
	if !ok {
		current = model.Order{ID: id, Datetime: ws.Session().CreatedAt}
	}

	res, err := ws.Orders.Store.Update(ctx, id, updateMessages, func(ctx context.Context) (model.Order, error) {
		if err := s.repo.Update(ctx, ws.Session(), id, payload); err != nil {
			return model.Order{}, err //nolint:wrapcheck
		}

		return payload.Apply(current), nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.Announce(ctx, dashboard.ViewOrders, constant.ActionUpdate)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.StatusRequest) (res model.Order, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Order.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.Orders.Ensure(ctx)

	current, ok := ws.Orders.Store.Get(id)
	if !ok {
		return res, failure.NotFound(model.EntityName)
	}

	details := dto.DetailsFromModel(current)
	details.Status = req.Status

	return s.update(ctx, ws, id, dto.OrderPayload{Details: details, Items: current.Items})
}

func (s *serviceImpl) Workflow(ctx context.Context) (workflow.State, error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return workflow.State{}, err //nolint:wrapcheck
	}

	return ws.OrderWorkflow.State(), nil
}

// Start opens the New Order dialog on the category step.
func (s *serviceImpl) Start(ctx context.Context) (workflow.State, error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return workflow.State{}, err //nolint:wrapcheck
	}

	ws.Orders.Modals.Edit.Close()
	ws.Orders.Modals.Add.OpenEmpty()

	return ws.OrderWorkflow.Start(), nil
}

// StartEdit loads the order detail into the edit cart and opens the Edit dialog.
func (s *serviceImpl) StartEdit(ctx context.Context, id string) (res workflow.State, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Order.StartEdit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	order, err := s.detail(ctx, ws, id, messageEditFailed)
	if err != nil {
		return res, err
	}

	details := dto.DetailsFromModel(order)

	ws.Orders.Modals.Add.Close()
	ws.Orders.Modals.Edit.Open(details)

	return ws.OrderWorkflow.StartEdit(id, details, order.Items), nil
}

func (s *serviceImpl) category(ctx context.Context, ws *dashboard.Workspace, id string) (menuModel.Category, error) {
	if category, ok := ws.Categories.Get(id); ok {
		return category, nil
	}

	if err := ws.Categories.Refresh(ctx); err != nil {
		return menuModel.Category{}, err //nolint:wrapcheck
	}

	category, ok := ws.Categories.Get(id)
	if !ok {
		return category, failure.NotFound("category")
	}

	return category, nil
}

func (s *serviceImpl) SelectCategory(ctx context.Context, categoryID string) (res workflow.State, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Order.SelectCategory")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	category, err := s.category(ctx, ws, categoryID)
	if err != nil {
		return ws.OrderWorkflow.State(), err
	}

	return ws.OrderWorkflow.SelectCategory(ctx, category) //nolint:wrapcheck
}

func (s *serviceImpl) step(ctx context.Context, fn func(m *workflow.Machine) (workflow.State, error)) (workflow.State, error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return workflow.State{}, err //nolint:wrapcheck
	}

	return fn(ws.OrderWorkflow)
}

func (s *serviceImpl) Back(ctx context.Context) (workflow.State, error) {
	return s.step(ctx, func(m *workflow.Machine) (workflow.State, error) { return m.Back() })
}

func (s *serviceImpl) AddItem(ctx context.Context, menuItemID string) (workflow.State, error) {
	return s.step(ctx, func(m *workflow.Machine) (workflow.State, error) { return m.AddItem(menuItemID) })
}

func (s *serviceImpl) Increment(ctx context.Context, menuItemID string) (workflow.State, error) {
	return s.step(ctx, func(m *workflow.Machine) (workflow.State, error) { return m.Increment(menuItemID) })
}

func (s *serviceImpl) Decrement(ctx context.Context, menuItemID string) (workflow.State, error) {
	return s.step(ctx, func(m *workflow.Machine) (workflow.State, error) { return m.Decrement(menuItemID) })
}

func (s *serviceImpl) RemoveLine(ctx context.Context, menuItemID string) (workflow.State, error) {
	return s.step(ctx, func(m *workflow.Machine) (workflow.State, error) { return m.RemoveLine(menuItemID) })
}

func (s *serviceImpl) Proceed(ctx context.Context) (workflow.State, error) {
	return s.step(ctx, func(m *workflow.Machine) (workflow.State, error) { return m.Proceed() })
}

func (s *serviceImpl) SetDetails(ctx context.Context, details dto.OrderDetails) (workflow.State, error) {
	return s.step(ctx, func(m *workflow.Machine) (workflow.State, error) { return m.SetDetails(details) })
}

// Submit creates or updates the order depending on the wizard mode. On success the
// wizard resets and its dialog closes; on failure the cart is kept for another try.
func (s *serviceImpl) Submit(ctx context.Context) (res workflow.State, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Order.Submit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = ws.OrderWorkflow.Submit(ctx, func(ctx context.Context, mode workflow.Mode, orderID string, payload dto.OrderPayload) error {
		if mode == workflow.ModeEdit {
			_, err := s.update(ctx, ws, orderID, payload)

			return err
		}

		_, err := ws.Orders.Store.Create(ctx, createMessages, func(ctx context.Context) (model.Order, error) {
			return s.repo.Create(ctx, ws.Session(), payload)
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		ws.Announce(ctx, dashboard.ViewOrders, constant.ActionCreate)

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.Orders.Modals.Add.Close()
	ws.Orders.Modals.Edit.Close()

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context) (workflow.State, error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return workflow.State{}, err //nolint:wrapcheck
	}

	ws.Orders.Modals.Add.Close()
	ws.Orders.Modals.Edit.Close()

	return ws.OrderWorkflow.Cancel(), nil
}
