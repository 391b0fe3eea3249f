package service

import (
	"context"
	"sync"

	"dinedesk/infras/otel"
	"dinedesk/internal/dashboard"
	"dinedesk/internal/domains/menu/model"
	"dinedesk/internal/domains/menu/model/dto"
	"dinedesk/internal/domains/menu/repository"
	"dinedesk/shared/constant"
	"dinedesk/shared/failure"
	"dinedesk/shared/modal"
	"dinedesk/shared/notify"
	"dinedesk/shared/query"
	"dinedesk/shared/store"
	"dinedesk/shared/validator"
	"dinedesk/shared/view"

	"github.com/rs/zerolog/log"
)

const categoryEntityName = "category"

var (
	createCategoryMessages = store.Messages{
		Title:   "Category added",
		Success: "New category has been successfully created.",
		Failure: "Failed to add category",
	}
	createItemMessages = store.Messages{
		Title:   "Menu item added",
		Success: "New menu item has been successfully created.",
		Failure: "Failed to add menu item",
	}
)

type Menu interface {
	List(ctx context.Context, params *query.Params) (query.Result[model.Item], error)
	UpdateQuery(ctx context.Context, update view.Update) (query.Result[model.Item], error)
	ToggleSort(ctx context.Context, field string) (query.Result[model.Item], error)
	Modals(ctx context.Context) (modal.SetState[model.Item, dto.ItemForm], error)
	CloseModal(ctx context.Context, kind modal.Kind) error
	View(ctx context.Context, id string) (model.Item, error)
	OpenAdd(ctx context.Context, categoryID string) (dto.ItemForm, error)
	OpenEdit(ctx context.Context, id string) (dto.ItemForm, error)
	OpenDelete(ctx context.Context, id string) (model.Item, error)

	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, form dto.CategoryForm) (model.Category, error)
	CategoryItems(ctx context.Context, categoryID string) ([]model.Item, error)
	Counts(ctx context.Context) ([]dto.CategoryCounts, error)

	CreateItem(ctx context.Context, form dto.ItemForm) (model.Item, error)
	SetAvailability(ctx context.Context, id string, available bool) (model.Item, error)
	EditItem(ctx context.Context, id string, form dto.ItemForm) (model.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Menu
	otel otel.Otel
}

func New(repo repository.Menu, otel otel.Otel) Menu {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, params *query.Params) (res query.Result[model.Item], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Menu.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Menu.Read(ctx, params) //nolint:wrapcheck
}

func (s *serviceImpl) UpdateQuery(ctx context.Context, update view.Update) (res query.Result[model.Item], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Menu.Apply(ctx, update) //nolint:wrapcheck
}

func (s *serviceImpl) ToggleSort(ctx context.Context, field string) (res query.Result[model.Item], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Menu.ToggleSort(ctx, field) //nolint:wrapcheck
}

func (s *serviceImpl) Modals(ctx context.Context) (res modal.SetState[model.Item, dto.ItemForm], err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return ws.Menu.Modals.State(), nil
}

func (s *serviceImpl) CloseModal(ctx context.Context, kind modal.Kind) error {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	ws.Menu.Modals.Close(kind)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (*dashboard.Workspace, model.Item, error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return nil, model.Item{}, err //nolint:wrapcheck
	}

	ws.Menu.Ensure(ctx)

	item, ok := ws.Menu.Store.Get(id)
	if !ok {
		return ws, item, failure.NotFound(model.EntityName)
	}

	return ws, item, nil
}

func (s *serviceImpl) View(ctx context.Context, id string) (model.Item, error) {
	ws, res, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	ws.Menu.Modals.View.Open(res)

	return res, nil
}

func (s *serviceImpl) OpenAdd(ctx context.Context, categoryID string) (dto.ItemForm, error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return dto.ItemForm{}, err //nolint:wrapcheck
	}

	form := dto.NewItemForm(categoryID)
	ws.Menu.Modals.Add.Open(form)

	return form, nil
}

func (s *serviceImpl) OpenEdit(ctx context.Context, id string) (dto.ItemForm, error) {
	ws, item, err := s.find(ctx, id)
	if err != nil {
		return dto.ItemForm{}, err
	}

	form := dto.ItemFormFromModel(item)
	ws.Menu.Modals.Edit.Open(form)

	return form, nil
}

func (s *serviceImpl) OpenDelete(ctx context.Context, id string) (model.Item, error) {
	ws, res, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	ws.Menu.Modals.Delete.Open(res)

	return res, nil
}

// Categories lists the categories, loading them when the menu was never fetched.
func (s *serviceImpl) Categories(ctx context.Context) (res []model.Category, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Menu.Categories")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if !ws.Categories.Loaded() {
		_ = ws.Categories.Refresh(ctx)
	}

	return ws.Categories.Snapshot(), nil
}

func (s *serviceImpl) category(ctx context.Context, ws *dashboard.Workspace, id string) (model.Category, error) {
	if category, ok := ws.Categories.Get(id); ok {
		return category, nil
	}

	if err := ws.Categories.Refresh(ctx); err != nil {
		return model.Category{}, err //nolint:wrapcheck
	}

	category, ok := ws.Categories.Get(id)
	if !ok {
		return category, failure.NotFound(categoryEntityName)
	}

	return category, nil
}

func (s *serviceImpl) CreateCategory(ctx context.Context, form dto.CategoryForm) (res model.Category, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Menu.CreateCategory")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&form); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = ws.Categories.Create(ctx, createCategoryMessages, func(ctx context.Context) (model.Category, error) {
		return s.repo.CreateCategory(ctx, ws.Session(), form)
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.Announce(ctx, dashboard.ViewMenu, constant.ActionCreate)

	return res, nil
}

// CategoryItems fetches the items of one category straight from the backend.
func (s *serviceImpl) CategoryItems(ctx context.Context, categoryID string) (res []model.Item, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Menu.CategoryItems")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	category, err := s.category(ctx, ws, categoryID)
	if err != nil {
		return nil, err
	}

	res, err = s.repo.ListItems(ctx, ws.Session(), category)
	if err != nil {
		ws.Notifications.Notify(notify.FromError(err, "Failed to load menu items"))

		return nil, err //nolint:wrapcheck
	}

	return res, nil
}

// Counts fetches every category's items concurrently. A category that fails to load
// counts as empty.
func (s *serviceImpl) Counts(ctx context.Context) (res []dto.CategoryCounts, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Menu.Counts")
	defer scope.End()
	defer scope.TraceIfError(&err)

	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	sess := ws.Session()
	res = make([]dto.CategoryCounts, len(categories))

	var wg sync.WaitGroup

	for i, category := range categories {
		wg.Add(1)

		go func() {
			defer wg.Done()

			res[i].Category = category

			items, err := s.repo.ListItems(ctx, sess, category)
			if err != nil {
				log.Warn().Err(err).Str("category_id", category.ID).Msg("failed to count category items")

				return
			}

			res[i].Counts = model.CountItems(items)
		}()
	}

	wg.Wait()

	return res, nil
}

func (s *serviceImpl) CreateItem(ctx context.Context, form dto.ItemForm) (res model.Item, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Menu.CreateItem")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&form); err != nil {
		return res, err //nolint:wrapcheck
	}

	category, err := s.category(ctx, ws, form.CategoryID)
	if err != nil {
		return res, err
	}

	res, err = ws.Menu.Store.Create(ctx, createItemMessages, func(ctx context.Context) (model.Item, error) {
		item, err := s.repo.CreateItem(ctx, ws.Session(), form)
		if err != nil {
			return item, err //nolint:wrapcheck
		}

		item.CategoryName = category.Name

		return item, nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.Menu.Modals.Add.Close()
	ws.Announce(ctx, dashboard.ViewMenu, constant.ActionCreate)

	return res, nil
}

func (s *serviceImpl) SetAvailability(ctx context.Context, id string, available bool) (res model.Item, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Menu.SetAvailability")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ws, current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	state := "unavailable"
	if available {
		state = "available"
	}

	msgs := store.Messages{
		Title:   "Availability updated",
		Success: "Menu item is now " + state + ".",
		Failure: "Failed to update item availability",
	}

	res, err = ws.Menu.Store.Update(ctx, id, msgs, func(ctx context.Context) (model.Item, error) {
		if err := s.repo.SetAvailability(ctx, ws.Session(), id, available); err != nil {
			return model.Item{}, err //nolint:wrapcheck
		}

		current.Available = available

		return current, nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	ws.Announce(ctx, dashboard.ViewMenu, constant.ActionUpdate)

	return res, nil
}

// EditItem changes the item in the list only; the backend has no item update.
func (s *serviceImpl) EditItem(ctx context.Context, id string, form dto.ItemForm) (res model.Item, err error) {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&form); err != nil {
		return res, err //nolint:wrapcheck
	}

	categoryName := ""
	if category, ok := ws.Categories.Get(form.CategoryID); ok {
		categoryName = category.Name
	}

	res, ok := ws.Menu.Store.Patch(id, func(item *model.Item) {
		*item = form.Apply(*item, categoryName)
	})
	if !ok {
		return res, failure.NotFound(model.EntityName)
	}

	ws.Menu.Modals.Edit.Close()

	ws.Notifications.Notify(notify.Success("The menu item has been successfully updated.").WithTitle("Menu item updated"))

	return res, nil
}

// DeleteItem drops the item from the list only; the backend has no item delete.
func (s *serviceImpl) DeleteItem(ctx context.Context, id string) error {
	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !ws.Menu.Store.RemoveLocal(id) {
		return failure.NotFound(model.EntityName)
	}

	ws.Menu.Modals.Delete.Close()

	ws.Notifications.Notify(notify.Success("The menu item has been successfully deleted.").WithTitle("Menu item deleted"))

	return nil
}
