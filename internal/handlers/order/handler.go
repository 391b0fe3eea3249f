package order

import (
	"context"
	"net/http"

	"dinedesk/infras/otel"
	"dinedesk/internal/domains/order/model"
	"dinedesk/internal/domains/order/model/dto"
	"dinedesk/internal/domains/order/service"
	"dinedesk/internal/domains/order/workflow"
	"dinedesk/internal/handlers/common"
	"dinedesk/shared/constant"
	"dinedesk/shared/validator"
	"dinedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Order
	otel    otel.Otel
}

func New(service service.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetOrders)
		routerGroup.Put("/query", handler.UpdateQuery)
		routerGroup.Post("/sort/{field}", handler.ToggleSort)
		routerGroup.Get("/modals", handler.GetModals)
		routerGroup.Delete("/modals/{kind}", handler.CloseModal)

		routerGroup.Route("/workflow", func(wizard chi.Router) {
			wizard.Get("/", handler.step("GetWorkflow", service.Order.Workflow))
			wizard.Post("/", handler.step("StartWorkflow", service.Order.Start))
			wizard.Delete("/", handler.step("CancelWorkflow", service.Order.Cancel))
			wizard.Post("/categories/{id}", handler.SelectCategory)
			wizard.Post("/back", handler.step("WorkflowBack", service.Order.Back))
			wizard.Post("/items/{itemId}", handler.item("AddItem", service.Order.AddItem))
			wizard.Post("/items/{itemId}/increment", handler.item("IncrementItem", service.Order.Increment))
			wizard.Post("/items/{itemId}/decrement", handler.item("DecrementItem", service.Order.Decrement))
			wizard.Delete("/items/{itemId}", handler.item("RemoveItem", service.Order.RemoveLine))
			wizard.Post("/proceed", handler.step("WorkflowProceed", service.Order.Proceed))
			wizard.Put("/details", handler.SetDetails)
			wizard.Post("/submit", handler.SubmitOrder)
		})

		routerGroup.Get("/{id}", handler.GetOrder)
		routerGroup.Delete("/{id}", handler.DeleteOrder)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
		routerGroup.Post("/{id}/workflow", handler.EditOrder)
		routerGroup.Post("/{id}/modals/delete", handler.OpenDelete)
	})
}

// GetOrders retrieves orders.
// @Summary Get orders
// @Description Without cursor parameters the stored cursor of the screen is used.
// @Tags Order
// @Produce json
// @Param page query int false "Page"
// @Param search query string false "Customer name"
// @Param status query string false "preparing, ready, delivered, cancelled or all"
// @Param sort_by query string false "date or total"
// @Param sort_dir query string false "asc or desc"
// @Success 200 {object} response.Data[query.Result[model.Order]]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	res, err := handler.service.List(ctx, common.Params(r, model.FieldStatus))
	if err != nil {
		common.Fail(w, scope, err, "failed to get orders")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) UpdateQuery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrderQuery")
	defer scope.End()

	update, err := common.QueryUpdate(r)
	if err != nil {
		common.Fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.UpdateQuery(ctx, update)
	if err != nil {
		common.Fail(w, scope, err, "failed to update order query")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleOrderSort")
	defer scope.End()

	res, err := handler.service.ToggleSort(ctx, chi.URLParam(r, constant.RequestParamField))
	if err != nil {
		common.Fail(w, scope, err, "failed to toggle order sort")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) GetModals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrderModals")
	defer scope.End()

	res, err := handler.service.Modals(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to get order dialogs")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) CloseModal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseOrderModal")
	defer scope.End()

	kind, err := common.Kind(r)
	if err != nil {
		common.Fail(w, scope, err, "failed to parse dialog kind")

		return
	}

	if err := handler.service.CloseModal(ctx, kind); err != nil {
		common.Fail(w, scope, err, "failed to close order dialog")

		return
	}

	response.WithMessage(w, http.StatusOK, "Dialog closed")
}

// GetOrder loads the details of an order into the detail dialog.
// @Summary Get order by ID
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Data[model.Order]
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrderByID")
	defer scope.End()

	res, err := handler.service.View(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to get order")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) OpenDelete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenDeleteOrder")
	defer scope.End()

	res, err := handler.service.OpenDelete(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to open delete order dialog")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteOrder deletes an order.
// @Summary Delete an order
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/orders/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOrder")
	defer scope.End()

	if err := handler.service.Delete(ctx, common.ID(r)); err != nil {
		common.Fail(w, scope, err, "failed to delete order")

		return
	}

	scope.AddEvent("Order deleted")

	response.WithMessage(w, http.StatusOK, "Order deleted")
}

// UpdateStatus changes the status of an order.
// @Summary Update order status
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.StatusRequest true "Status"
// @Success 200 {object} response.Data[model.Order]
// @Failure 400 {object} response.Error
// @Router /v1/orders/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrderStatus")
	defer scope.End()

	req := dto.StatusRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to decode request body")

		return
	}

	res, err := handler.service.UpdateStatus(ctx, common.ID(r), req)
	if err != nil {
		common.Fail(w, scope, err, "failed to update order status")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// step serves one workflow transition. fn is a method expression resolved against the
// handler's service per request.
func (handler *Handler) step(name string, fn func(svc service.Order, ctx context.Context) (workflow.State, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
		defer scope.End()

		res, err := fn(handler.service, ctx)
		if err != nil {
			common.Fail(w, scope, err, "failed to run order workflow step")

			return
		}

		response.WithJSON(w, http.StatusOK, res)
	}
}

// item serves the cart changes keyed by a menu item.
func (handler *Handler) item(name string, fn func(svc service.Order, ctx context.Context, menuItemID string) (workflow.State, error)) http.HandlerFunc {
	return handler.step(name, func(svc service.Order, ctx context.Context) (workflow.State, error) {
		return fn(svc, ctx, chi.URLParamFromCtx(ctx, constant.RequestParamItemID))
	})
}

// EditOrder starts the order wizard on an existing order.
// @Summary Edit an order
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Data[workflow.State]
// @Failure 502 {object} response.Error
// @Router /v1/orders/{id}/workflow [post]
// @Security BearerAuth
func (handler *Handler) EditOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditOrder")
	defer scope.End()

	res, err := handler.service.StartEdit(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to start order edit")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectCategory")
	defer scope.End()

	res, err := handler.service.SelectCategory(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to select category")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) SetDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetOrderDetails")
	defer scope.End()

	req := dto.OrderDetails{}

	if err := validator.Decode(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to decode request body")

		return
	}

	res, err := handler.service.SetDetails(ctx, req)
	if err != nil {
		common.Fail(w, scope, err, "failed to set order details")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SubmitOrder creates or updates the order held by the wizard.
// @Summary Submit the order wizard
// @Tags Order
// @Produce json
// @Success 200 {object} response.Data[workflow.State]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/orders/workflow/submit [post]
// @Security BearerAuth
func (handler *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitOrder")
	defer scope.End()

	res, err := handler.service.Submit(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to submit order")

		return
	}

	scope.AddEvent("Order submitted")

	response.WithJSON(w, http.StatusOK, res)
}
