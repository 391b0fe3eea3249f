package dto

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"dinedesk/internal/domains/menu/model"
	"dinedesk/shared"
	"dinedesk/shared/constant"
	"dinedesk/shared/timezone"
)

type CategoryRecord struct {
	ID               string          `json:"_id"`
	UserRestaurantID string          `json:"userRestaurantId"`
	CategoryName     string          `json:"categoryName"`
	Status           json.RawMessage `json:"status"`
	CreatedBy        json.RawMessage `json:"createdBy"`
	CreatedAt        string          `json:"createdAt"`
}

func (r CategoryRecord) ToModel() model.Category {
	return model.Category{
		ID:           r.ID,
		RestaurantID: r.UserRestaurantID,
		Name:         r.CategoryName,
		Active:       shared.IsTrueString(shared.ParseString(r.Status)),
		CreatedBy:    shared.ParseString(r.CreatedBy),
		CreatedAt:    timezone.ParseTimestamp(r.CreatedAt),
	}
}

func CategoriesToModels(records []CategoryRecord) []model.Category {
	res := make([]model.Category, 0, len(records))
	for _, record := range records {
		res = append(res, record.ToModel())
	}

	return res
}

type ItemRecord struct {
	ID         string          `json:"_id"`
	CategoryID string          `json:"categoryId"`
	ItemName   string          `json:"itemName"`
	Price      json.RawMessage `json:"price"`
	Status     json.RawMessage `json:"status"`
}

func (r ItemRecord) ToModel(categoryName string) model.Item {
	return model.Item{
		ID:           r.ID,
		CategoryID:   r.CategoryID,
		CategoryName: categoryName,
		Name:         r.ItemName,
		Price:        shared.ParseNumber(r.Price),
		Available:    shared.IsTrueString(shared.ParseString(r.Status)),
	}
}

// ItemListRecord is one element of the item list response; only the first one is read.
type ItemListRecord struct {
	MenuList []ItemRecord `json:"menulist"`
}

func ItemsFromList(list []ItemListRecord, categoryName string) []model.Item {
	if len(list) == 0 {
		return []model.Item{}
	}

	res := make([]model.Item, 0, len(list[0].MenuList))
	for _, record := range list[0].MenuList {
		res = append(res, record.ToModel(categoryName))
	}

	return res
}

// ItemForm backs the Add and Edit dialogs of a menu item.
type ItemForm struct {
	Name       string  `json:"name"        validate:"notblank,max=100"`
	CategoryID string  `json:"category_id" validate:"required"`
	Price      float64 `json:"price"       validate:"gte=0"`
	Available  bool    `json:"available"`
}

func NewItemForm(categoryID string) ItemForm {
	return ItemForm{CategoryID: categoryID, Available: true}
}

func ItemFormFromModel(i model.Item) ItemForm {
	return ItemForm{
		Name:       i.Name,
		CategoryID: i.CategoryID,
		Price:      i.Price,
		Available:  i.Available,
	}
}

func (f ItemForm) ToCreateForm(restaurantID string) url.Values {
	return url.Values{
		"userRestaurantId": {restaurantID},
		"itemName":         {strings.TrimSpace(f.Name)},
		"status":           {shared.BoolToString(f.Available)},
		"price":            {strconv.FormatFloat(f.Price, 'f', -1, 64)},
		"created_by":       {restaurantID},
		"categoryId":       {f.CategoryID},
	}
}

// Apply copies the form onto an item, used for local edits.
func (f ItemForm) Apply(i model.Item, categoryName string) model.Item {
	i.Name = strings.TrimSpace(f.Name)
	i.Price = f.Price
	i.Available = f.Available

	if f.CategoryID != "" && f.CategoryID != i.CategoryID {
		i.CategoryID = f.CategoryID
		i.CategoryName = categoryName
	}

	return i
}

type CategoryForm struct {
	Name   string `json:"name"   validate:"notblank,max=100"`
	Status string `json:"status" validate:"omitempty,oneof=true false"`
}

func (f CategoryForm) ToCreateForm(restaurantID string) url.Values {
	status := f.Status
	if status == "" {
		status = constant.BoolStringTrue
	}

	return url.Values{
		"userRestaurantId": {restaurantID},
		"categoryName":     {strings.TrimSpace(f.Name)},
		"status":           {status},
		"created_by":       {restaurantID},
	}
}

func AvailabilityForm(itemID string, available bool) url.Values {
	return url.Values{
		"itemId": {itemID},
		"status": {shared.BoolToString(available)},
	}
}

type CategoryCounts struct {
	Category model.Category `json:"category"`
	Counts   model.Counts   `json:"counts"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}
