package menu

import (
	"net/http"

	"dinedesk/infras/otel"
	"dinedesk/internal/domains/menu/model"
	"dinedesk/internal/domains/menu/model/dto"
	"dinedesk/internal/domains/menu/service"
	"dinedesk/internal/handlers/common"
	"dinedesk/shared/constant"
	"dinedesk/shared/validator"
	"dinedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Menu
	otel    otel.Otel
}

func New(service service.Menu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Put("/query", handler.UpdateQuery)
		routerGroup.Post("/sort/{field}", handler.ToggleSort)
		routerGroup.Get("/modals", handler.GetModals)
		routerGroup.Post("/modals/add", handler.OpenAdd)
		routerGroup.Delete("/modals/{kind}", handler.CloseModal)

		routerGroup.Get("/categories", handler.GetCategories)
		routerGroup.Post("/categories", handler.CreateCategory)
		routerGroup.Get("/categories/counts", handler.GetCounts)
		routerGroup.Get("/categories/{id}/items", handler.GetCategoryItems)

		routerGroup.Post("/items", handler.CreateItem)
		routerGroup.Get("/items/{id}", handler.GetItem)
		routerGroup.Put("/items/{id}", handler.EditItem)
		routerGroup.Delete("/items/{id}", handler.DeleteItem)
		routerGroup.Patch("/items/{id}/availability", handler.SetAvailability)
		routerGroup.Post("/items/{id}/modals/edit", handler.OpenEdit)
		routerGroup.Post("/items/{id}/modals/delete", handler.OpenDelete)
	})
}

// GetItems lists the menu items of every category.
// @Summary Get menu items
// @Description Without cursor parameters the stored cursor of the screen is used.
// @Tags Menu
// @Produce json
// @Param page query int false "Page"
// @Param search query string false "Item name"
// @Param category query string false "Category name or all"
// @Param sort_by query string false "name or price"
// @Param sort_dir query string false "asc or desc"
// @Success 200 {object} response.Data[query.Result[model.Item]]
// @Failure 400 {object} response.Error
// @Router /v1/menu [get]
// @Security BearerAuth
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItems")
	defer scope.End()

	res, err := handler.service.List(ctx, common.Params(r, model.FieldCategory))
	if err != nil {
		common.Fail(w, scope, err, "failed to get menu items")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) UpdateQuery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenuQuery")
	defer scope.End()

	update, err := common.QueryUpdate(r)
	if err != nil {
		common.Fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.UpdateQuery(ctx, update)
	if err != nil {
		common.Fail(w, scope, err, "failed to update menu query")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleMenuSort")
	defer scope.End()

	res, err := handler.service.ToggleSort(ctx, chi.URLParam(r, constant.RequestParamField))
	if err != nil {
		common.Fail(w, scope, err, "failed to toggle menu sort")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) GetModals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuModals")
	defer scope.End()

	res, err := handler.service.Modals(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to get menu dialogs")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) OpenAdd(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenAddMenuItem")
	defer scope.End()

	res, err := handler.service.OpenAdd(ctx, r.URL.Query().Get(constant.RequestParamCategory))
	if err != nil {
		common.Fail(w, scope, err, "failed to open add item dialog")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) CloseModal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseMenuModal")
	defer scope.End()

	kind, err := common.Kind(r)
	if err != nil {
		common.Fail(w, scope, err, "failed to parse dialog kind")

		return
	}

	if err := handler.service.CloseModal(ctx, kind); err != nil {
		common.Fail(w, scope, err, "failed to close menu dialog")

		return
	}

	response.WithMessage(w, http.StatusOK, "Dialog closed")
}

// GetCategories lists the menu categories.
// @Summary Get categories
// @Tags Menu
// @Produce json
// @Success 200 {object} response.Data[[]model.Category]
// @Router /v1/menu/categories [get]
// @Security BearerAuth
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	res, err := handler.service.Categories(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to get categories")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateCategory adds a menu category.
// @Summary Create category
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body dto.CategoryForm true "Category"
// @Success 201 {object} response.Data[model.Category]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/menu/categories [post]
// @Security BearerAuth
func (handler *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	req := dto.CategoryForm{}

	if err := validator.Decode(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to decode request body")

		return
	}

	res, err := handler.service.CreateCategory(ctx, req)
	if err != nil {
		common.Fail(w, scope, err, "failed to create category")

		return
	}

	scope.AddEvent("Category created")

	response.WithJSON(w, http.StatusCreated, res)
}

func (handler *Handler) GetCounts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategoryCounts")
	defer scope.End()

	res, err := handler.service.Counts(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to count category items")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) GetCategoryItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategoryItems")
	defer scope.End()

	res, err := handler.service.CategoryItems(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to get category items")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateItem adds a menu item to a category.
// @Summary Create menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body dto.ItemForm true "Menu item"
// @Success 201 {object} response.Data[model.Item]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/menu/items [post]
// @Security BearerAuth
func (handler *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenuItem")
	defer scope.End()

	req := dto.ItemForm{}

	if err := validator.Decode(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to decode request body")

		return
	}

	res, err := handler.service.CreateItem(ctx, req)
	if err != nil {
		common.Fail(w, scope, err, "failed to create menu item")

		return
	}

	scope.AddEvent("Menu item created")

	response.WithJSON(w, http.StatusCreated, res)
}

func (handler *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItem")
	defer scope.End()

	res, err := handler.service.View(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to get menu item")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) OpenEdit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenEditMenuItem")
	defer scope.End()

	res, err := handler.service.OpenEdit(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to open edit item dialog")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) OpenDelete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenDeleteMenuItem")
	defer scope.End()

	res, err := handler.service.OpenDelete(ctx, common.ID(r))
	if err != nil {
		common.Fail(w, scope, err, "failed to open delete item dialog")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetAvailability marks a menu item available or unavailable.
// @Summary Set item availability
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body dto.AvailabilityRequest true "Availability"
// @Success 200 {object} response.Data[model.Item]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/menu/items/{id}/availability [patch]
// @Security BearerAuth
func (handler *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetItemAvailability")
	defer scope.End()

	req := dto.AvailabilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.SetAvailability(ctx, common.ID(r), *req.Available)
	if err != nil {
		common.Fail(w, scope, err, "failed to set item availability")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) EditItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditMenuItem")
	defer scope.End()

	req := dto.ItemForm{}

	if err := validator.Decode(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to decode request body")

		return
	}

	res, err := handler.service.EditItem(ctx, common.ID(r), req)
	if err != nil {
		common.Fail(w, scope, err, "failed to edit menu item")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenuItem")
	defer scope.End()

	if err := handler.service.DeleteItem(ctx, common.ID(r)); err != nil {
		common.Fail(w, scope, err, "failed to delete menu item")

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu item deleted")
}
