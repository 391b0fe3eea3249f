package dto_test

import (
	"encoding/json"
	"testing"

	"dinedesk/internal/domains/menu/model"
	"dinedesk/internal/domains/menu/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRecordStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		active bool
	}{
		{name: "string true", status: `"true"`, active: true},
		{name: "boolean true", status: `true`, active: true},
		{name: "string false", status: `"false"`, active: false},
		{name: "upper case", status: `"TRUE"`, active: false},
		{name: "missing", status: `null`, active: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record dto.CategoryRecord
			require.NoError(t, json.Unmarshal([]byte(`{"_id":"cat-1","categoryName":"Drinks","status":`+tt.status+`}`), &record))

			category := record.ToModel()

			assert.Equal(t, "Drinks", category.Name)
			assert.Equal(t, tt.active, category.Active)
		})
	}
}

func TestItemsFromList(t *testing.T) {
	var list []dto.ItemListRecord
	require.NoError(t, json.Unmarshal([]byte(`[
		{"menulist":[
			{"_id":"m-1","categoryId":"cat-1","itemName":"Tea","price":"2.5","status":"true"},
			{"_id":"m-2","categoryId":"cat-1","itemName":"Shake","price":4,"status":false}
		]},
		{"menulist":[{"_id":"ignored"}]}
	]`), &list))

	items := dto.ItemsFromList(list, "Drinks")

	require.Len(t, items, 2)
	assert.Equal(t, model.Item{ID: "m-1", CategoryID: "cat-1", CategoryName: "Drinks", Name: "Tea", Price: 2.5, Available: true}, items[0])
	assert.False(t, items[1].Available)
	assert.InDelta(t, 4.0, items[1].Price, 0.001)

	assert.Empty(t, dto.ItemsFromList(nil, "Drinks"))
	assert.NotNil(t, dto.ItemsFromList(nil, "Drinks"))
}

func TestItemFormApply(t *testing.T) {
	item := model.Item{ID: "m-1", CategoryID: "cat-1", CategoryName: "Drinks", Name: "Tea", Price: 2}

	moved := dto.ItemForm{Name: " Iced tea ", CategoryID: "cat-2", Price: 3, Available: true}.Apply(item, "Cold drinks")
	assert.Equal(t, "Iced tea", moved.Name)
	assert.Equal(t, "cat-2", moved.CategoryID)
	assert.Equal(t, "Cold drinks", moved.CategoryName)

	kept := dto.ItemForm{Name: "Tea", CategoryID: "cat-1", Price: 2}.Apply(item, "ignored")
	assert.Equal(t, "Drinks", kept.CategoryName)
}

func TestCategoryFormDefaultsToActive(t *testing.T) {
	assert.Equal(t, "true", dto.CategoryForm{Name: "Desserts"}.ToCreateForm("rest-1").Get("status"))
	assert.Equal(t, "false", dto.CategoryForm{Name: "Desserts", Status: "false"}.ToCreateForm("rest-1").Get("status"))
	assert.Equal(t, "false", dto.AvailabilityForm("m-1", false).Get("status"))
}
