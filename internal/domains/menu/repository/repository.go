package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"dinedesk/infras/api"
	"dinedesk/infras/otel"
	"dinedesk/internal/domains/menu/model"
	"dinedesk/internal/domains/menu/model/dto"
	"dinedesk/shared/constant"
	"dinedesk/shared/session"

	"github.com/rs/zerolog/log"
)

const (
	pathCategoryList   = "/menucategory/menucategory_list"
	pathCategoryCreate = "/menucategory/create_menucategory"
	pathItemList       = "/menuitem/menuitem_list"
	pathItemCreate     = "/menuitem/create_menuitem"
	pathItemStatus     = "/menuitem/update_menuitem_status"
)

type Menu interface {
	ListCategories(ctx context.Context, sess *session.Session) ([]model.Category, error)
	CreateCategory(ctx context.Context, sess *session.Session, form dto.CategoryForm) (model.Category, error)
	ListItems(ctx context.Context, sess *session.Session, category model.Category) ([]model.Item, error)
	CreateItem(ctx context.Context, sess *session.Session, form dto.ItemForm) (model.Item, error)
	SetAvailability(ctx context.Context, sess *session.Session, itemID string, available bool) error
}

type repositoryImpl struct {
	client api.Client
	otel   otel.Otel
}

func New(client api.Client, otel otel.Otel) Menu {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) ListCategories(ctx context.Context, sess *session.Session) (res []model.Category, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Menu.ListCategories")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	var records []dto.CategoryRecord

	err = r.client.Do(ctx, api.PostForm(pathCategoryList, token, url.Values{"restaurant_id": {sess.RestaurantID}}), &records)
	if err != nil {
		log.Error().Err(err).Msg("failed to list menu categories")

		return nil, fmt.Errorf("failed to list menu categories: %w", err)
	}

	return dto.CategoriesToModels(records), nil
}

func (r *repositoryImpl) CreateCategory(ctx context.Context, sess *session.Session, form dto.CategoryForm) (res model.Category, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Menu.CreateCategory")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	var record dto.CategoryRecord

	err = r.client.Do(ctx, api.PostForm(pathCategoryCreate, token, form.ToCreateForm(sess.RestaurantID)), &record)
	if err != nil {
		log.Error().Err(err).Msg("failed to create menu category")

		return res, fmt.Errorf("failed to create menu category: %w", err)
	}

	res = record.ToModel()
	if res.Name == "" {
		res.Name = strings.TrimSpace(form.Name)
	}

	return res, nil
}

func (r *repositoryImpl) ListItems(ctx context.Context, sess *session.Session, category model.Category) (res []model.Item, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Menu.ListItems")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	form := url.Values{
		"restaurant_id": {sess.RestaurantID},
		"category_id":   {category.ID},
	}

	var list []dto.ItemListRecord

	err = r.client.Do(ctx, api.PostForm(pathItemList, token, form), &list)
	if err != nil {
		log.Error().Err(err).Str("category", category.ID).Msg("failed to list menu items")

		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	res = dto.ItemsFromList(list, category.Name)
	for i := range res {
		if res[i].CategoryID == "" {
			res[i].CategoryID = category.ID
		}
	}

	return res, nil
}

func (r *repositoryImpl) CreateItem(ctx context.Context, sess *session.Session, form dto.ItemForm) (res model.Item, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Menu.CreateItem")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	var record dto.ItemRecord

	err = r.client.Do(ctx, api.PostForm(pathItemCreate, token, form.ToCreateForm(sess.RestaurantID)), &record)
	if err != nil {
		log.Error().Err(err).Msg("failed to create menu item")

		return res, fmt.Errorf("failed to create menu item: %w", err)
	}

	res = record.ToModel("")
	if res.CategoryID == "" {
		res.CategoryID = form.CategoryID
	}

	if res.Name == "" {
		res.Name = strings.TrimSpace(form.Name)
		res.Price = form.Price
		res.Available = form.Available
	}

	return res, nil
}

func (r *repositoryImpl) SetAvailability(ctx context.Context, sess *session.Session, itemID string, available bool) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Menu.SetAvailability")
	defer scope.End()
	defer scope.TraceIfError(&err)

	token, err := sess.UpstreamToken()
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = r.client.Do(ctx, api.PostForm(pathItemStatus, token, dto.AvailabilityForm(itemID, available)), nil)
	if err != nil {
		log.Error().Err(err).Str("id", itemID).Msg("failed to update menu item availability")

		return fmt.Errorf("failed to update menu item availability: %w", err)
	}

	return nil
}
