package service_test

import (
	"net/http"
	"testing"

	otelMocks "dinedesk/infras/otel/mocks"
	"dinedesk/internal/dashboard"
	dashboardMocks "dinedesk/internal/dashboard/mocks"
	"dinedesk/internal/domains/menu/mocks"
	"dinedesk/internal/domains/menu/model"
	"dinedesk/internal/domains/menu/model/dto"
	"dinedesk/internal/domains/menu/service"
	"dinedesk/shared/failure"
	"dinedesk/shared/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	mains    = model.Category{ID: "cat-1", Name: "Mains", Active: true}
	desserts = model.Category{ID: "cat-2", Name: "Desserts", Active: true}
)

func mainItems() []model.Item {
	return []model.Item{
		{ID: "m1", CategoryID: "cat-1", CategoryName: "Mains", Name: "burger", Price: 10, Available: true},
		{ID: "m2", CategoryID: "cat-1", CategoryName: "Mains", Name: "Apple pie", Price: 6, Available: false},
	}
}

func dessertItems() []model.Item {
	return []model.Item{
		{ID: "d1", CategoryID: "cat-2", CategoryName: "Desserts", Name: "Cake", Price: 4, Available: true},
	}
}

func expectMenu(repo *mocks.MockMenu) {
	repo.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return([]model.Category{mains, desserts}, nil)
	repo.EXPECT().ListItems(gomock.Any(), gomock.Any(), mains).Return(mainItems(), nil)
	repo.EXPECT().ListItems(gomock.Any(), gomock.Any(), desserts).Return(dessertItems(), nil)
}

func TestMenuService_List(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockMenu(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())

	tests := []struct {
		name    string
		params  *query.Params
		wantIDs []string
	}{
		{
			name:    "stored cursor sorts by name",
			wantIDs: []string{"m2", "m1", "d1"},
		},
		{
			name:    "category filter",
			params:  &query.Params{Filters: map[string]string{model.FieldCategory: "Desserts"}, Page: 1},
			wantIDs: []string{"d1"},
		},
		{
			name:    "price descending",
			params:  &query.Params{SortBy: model.FieldPrice, SortDir: query.Desc, Page: 1},
			wantIDs: []string{"m1", "m2", "d1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{Menu: mockRepo})

			expectMenu(mockRepo)

			res, err := svc.List(ctx, tt.params)
			require.NoError(t, err)

			ids := make([]string, 0, len(res.Items))
			for _, item := range res.Items {
				ids = append(ids, item.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
			assert.Len(t, ws.Categories.Snapshot(), 2)
		})
	}
}

func TestMenuService_FailedCategoryFailsTheLoad(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockMenu(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())
	ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{Menu: mockRepo})

	mockRepo.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return([]model.Category{mains, desserts}, nil)
	mockRepo.EXPECT().ListItems(gomock.Any(), gomock.Any(), mains).Return(mainItems(), nil)
	mockRepo.EXPECT().ListItems(gomock.Any(), gomock.Any(), desserts).Return(nil, failure.BadGateway("down"))

	res, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalData)
	assert.False(t, ws.Menu.Store.Loaded())

	notes := ws.Notifications.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, "Failed to load menu items", notes[0].Description)
}

func TestMenuService_Counts(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockMenu(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())
	ctx, _ := dashboardMocks.NewContext(t, dashboard.Dependencies{Menu: mockRepo})

	mockRepo.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return([]model.Category{mains, desserts}, nil)
	mockRepo.EXPECT().ListItems(gomock.Any(), gomock.Any(), mains).Return(mainItems(), nil)
	mockRepo.EXPECT().ListItems(gomock.Any(), gomock.Any(), desserts).Return(nil, failure.BadGateway("down"))

	res, err := svc.Counts(ctx)
	require.NoError(t, err)

	assert.Equal(t, []dto.CategoryCounts{
		{Category: mains, Counts: model.Counts{Total: 2, Available: 1}},
		{Category: desserts, Counts: model.Counts{}},
	}, res)
}

func TestMenuService_CreateCategory(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockMenu(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())

	tests := []struct {
		name      string
		form      dto.CategoryForm
		setupMock func()
		wantErr   bool
	}{
		{
			name: "created",
			form: dto.CategoryForm{Name: "Drinks"},
			setupMock: func() {
				mockRepo.EXPECT().CreateCategory(gomock.Any(), gomock.Any(), dto.CategoryForm{Name: "Drinks"}).Return(model.Category{ID: "cat-3", Name: "Drinks", Active: true}, nil)
			},
		},
		{
			name:      "blank name",
			form:      dto.CategoryForm{Name: "  "},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{Menu: mockRepo})

			tt.setupMock()

			res, err := svc.CreateCategory(ctx, tt.form)

			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "cat-3", res.ID)

			_, ok := ws.Categories.Get("cat-3")
			assert.True(t, ok)
		})
	}
}

func TestMenuService_Items(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockMenu(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())
	ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{Menu: mockRepo})

	expectMenu(mockRepo)

	_, err := svc.List(ctx, nil)
	require.NoError(t, err)

	_, err = svc.OpenAdd(ctx, "cat-2")
	require.NoError(t, err)

	form := dto.ItemForm{Name: "Sorbet", CategoryID: "cat-2", Price: 3.5, Available: true}
	mockRepo.EXPECT().CreateItem(gomock.Any(), gomock.Any(), form).Return(model.Item{ID: "d2", CategoryID: "cat-2", Name: "Sorbet", Price: 3.5, Available: true}, nil)

	created, err := svc.CreateItem(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "Desserts", created.CategoryName)
	assert.False(t, ws.Menu.Modals.Add.IsOpen())

	mockRepo.EXPECT().SetAvailability(gomock.Any(), gomock.Any(), "m2", true).Return(nil)

	item, err := svc.SetAvailability(ctx, "m2", true)
	require.NoError(t, err)
	assert.True(t, item.Available)

	editForm, err := svc.OpenEdit(ctx, "m1")
	require.NoError(t, err)

	editForm.Price = 12
	editForm.CategoryID = "cat-2"

	item, err = svc.EditItem(ctx, "m1", editForm)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, item.Price, 0.001)
	assert.Equal(t, "Desserts", item.CategoryName)

	require.NoError(t, svc.DeleteItem(ctx, "d1"))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(svc.DeleteItem(ctx, "d1")))
	assert.Len(t, ws.Menu.Store.Snapshot(), 3)

	notes := ws.Notifications.Drain()
	require.Len(t, notes, 4)
	assert.Equal(t, "Menu item added", notes[0].Title)
	assert.Equal(t, "Menu item is now available.", notes[1].Description)
	assert.Equal(t, "Menu item updated", notes[2].Title)
	assert.Equal(t, "Menu item deleted", notes[3].Title)
}
