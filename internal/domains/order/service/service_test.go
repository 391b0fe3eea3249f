package service_test

import (
	"net/http"
	"testing"
	"time"

	otelMocks "dinedesk/infras/otel/mocks"
	"dinedesk/internal/dashboard"
	dashboardMocks "dinedesk/internal/dashboard/mocks"
	menuMocks "dinedesk/internal/domains/menu/mocks"
	menuModel "dinedesk/internal/domains/menu/model"
	"dinedesk/internal/domains/order/mocks"
	"dinedesk/internal/domains/order/model"
	"dinedesk/internal/domains/order/model/dto"
	"dinedesk/internal/domains/order/service"
	"dinedesk/internal/domains/order/workflow"
	"dinedesk/shared/failure"
	"dinedesk/shared/modal"
	"dinedesk/shared/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	mains     = menuModel.Category{ID: "cat-1", Name: "Mains", Active: true}
	mainItems = []menuModel.Item{
		{ID: "m1", CategoryID: "cat-1", CategoryName: "Mains", Name: "Burger", Price: 10, Available: true},
		{ID: "m2", CategoryID: "cat-1", CategoryName: "Mains", Name: "Fries", Price: 5, Available: true},
	}
	details   = dto.OrderDetails{Customer: "Ann", Phone: "555-0101", TableNumber: "4"}
)

func orders() []model.Order {
	return []model.Order{
		{ID: "o1", Customer: "Ann", Total: 25, Status: model.StatusPreparing, Items: []model.Item{{MenuID: "m1", Name: "Burger", Qty: 2, Price: 10}, {MenuID: "m2", Name: "Fries", Qty: 1, Price: 5}}, Datetime: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		{ID: "o2", Customer: "Bob", Total: 40, Status: model.StatusDelivered, Datetime: time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)},
	}
}

func TestOrderService_List(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockOrder(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())
	ctx, _ := dashboardMocks.NewContext(t, dashboard.Dependencies{Orders: mockRepo})

	mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(orders(), nil).Times(2)

	res, err := svc.List(ctx, &query.Params{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)

	res, err = svc.ToggleSort(ctx, model.FieldTotal)
	require.NoError(t, err)
	assert.Equal(t, "o2", res.Items[0].ID)
}

func TestOrderService_Workflow(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(orderRepo *mocks.MockOrder)
		wantErr   bool
		wantStep  workflow.Step
		wantCart  int
		wantToast string
	}{
		{
			name: "order created",
			setupMock: func(orderRepo *mocks.MockOrder) {
				orderRepo.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_, _ any, payload dto.OrderPayload) (model.Order, error) {
						assert.InDelta(t, 25.0, payload.Total(), 0.001)

						return model.Order{ID: "o3", Customer: payload.Details.Customer, Items: payload.Items, Total: payload.Total()}, nil
					})
			},
			wantStep:  workflow.StepSubmitted,
			wantCart:  0,
			wantToast: "New order has been successfully created.",
		},
		{
			name: "failed submit keeps the cart",
			setupMock: func(orderRepo *mocks.MockOrder) {
				orderRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Order{}, failure.BadGateway("down"))
			},
			wantErr:   true,
			wantStep:  workflow.StepConfirm,
			wantCart:  2,
			wantToast: "Failed to create order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			orderRepo := mocks.NewMockOrder(ctrl)
			menuRepo := menuMocks.NewMockMenu(ctrl)
			svc := service.New(orderRepo, otelMocks.NewOtel())
			ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{Orders: orderRepo, Menu: menuRepo})

			menuRepo.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return([]menuModel.Category{mains}, nil)
			menuRepo.EXPECT().ListItems(gomock.Any(), gomock.Any(), mains).Return(mainItems, nil)
			tt.setupMock(orderRepo)

			state, err := svc.Start(ctx)
			require.NoError(t, err)
			assert.True(t, ws.Orders.Modals.Add.IsOpen())
			assert.Equal(t, workflow.StepSelectCategory, state.Step)

			state, err = svc.SelectCategory(ctx, "cat-1")
			require.NoError(t, err)
			assert.Len(t, state.Items, 2)

			_, err = svc.AddItem(ctx, "m1")
			require.NoError(t, err)
			_, err = svc.AddItem(ctx, "m1")
			require.NoError(t, err)
			state, err = svc.AddItem(ctx, "m2")
			require.NoError(t, err)
			assert.InDelta(t, 25.0, state.Total, 0.001)

			_, err = svc.Proceed(ctx)
			require.NoError(t, err)
			_, err = svc.SetDetails(ctx, details)
			require.NoError(t, err)

			state, err = svc.Submit(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, ws.Orders.Modals.Add.IsOpen())
			} else {
				require.NoError(t, err)
				assert.False(t, ws.Orders.Modals.Add.IsOpen())

				created, ok := ws.Orders.Store.Get("o3")
				require.True(t, ok)
				assert.Equal(t, "Ann", created.Customer)
			}

			assert.Equal(t, tt.wantStep, state.Step)
			assert.Len(t, state.Cart, tt.wantCart)

			notes := ws.Notifications.Drain()
			require.Len(t, notes, 1)
			assert.Equal(t, tt.wantToast, notes[0].Description)
		})
	}
}

func TestOrderService_SelectUnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)

	menuRepo := menuMocks.NewMockMenu(ctrl)
	svc := service.New(mocks.NewMockOrder(ctrl), otelMocks.NewOtel())
	ctx, _ := dashboardMocks.NewContext(t, dashboard.Dependencies{Menu: menuRepo})

	menuRepo.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return([]menuModel.Category{mains}, nil)

	_, err := svc.Start(ctx)
	require.NoError(t, err)

	state, err := svc.SelectCategory(ctx, "cat-9")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, workflow.StepSelectCategory, state.Step)
}

func TestOrderService_EditOrder(t *testing.T) {
	ctrl := gomock.NewController(t)

	orderRepo := mocks.NewMockOrder(ctrl)
	svc := service.New(orderRepo, otelMocks.NewOtel())
	ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{Orders: orderRepo})

	orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(orders(), nil)
	ws.Orders.Sync(ctx)

	orderRepo.EXPECT().View(gomock.Any(), gomock.Any(), "o1").Return(orders()[0], nil)

	state, err := svc.StartEdit(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, workflow.ModeEdit, state.Mode)
	assert.Equal(t, workflow.StepEnterDetails, state.Step)
	assert.Len(t, state.Cart, 2)
	assert.True(t, ws.Orders.Modals.Edit.IsOpen())

	_, err = svc.Decrement(ctx, "m1")
	require.NoError(t, err)

	edited := details
	edited.Status = model.StatusReady

	_, err = svc.SetDetails(ctx, edited)
	require.NoError(t, err)

	orderRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), "o1", gomock.Any()).
		DoAndReturn(func(_, _, _ any, payload dto.OrderPayload) error {
			assert.Equal(t, model.StatusReady, payload.Details.Status)
			assert.InDelta(t, 15.0, payload.Total(), 0.001)

			return nil
		})

	state, err = svc.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, workflow.StepSubmitted, state.Step)
	assert.False(t, ws.Orders.Modals.Edit.IsOpen())

	updated, ok := ws.Orders.Store.Get("o1")
	require.True(t, ok)
	assert.Equal(t, model.StatusReady, updated.Status)
	assert.InDelta(t, 15.0, updated.Total, 0.001)

	notes := ws.Notifications.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, "Order Updated", notes[0].Title)
}

func TestOrderService_StartEditFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	orderRepo := mocks.NewMockOrder(ctrl)
	svc := service.New(orderRepo, otelMocks.NewOtel())
	ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{Orders: orderRepo})

	orderRepo.EXPECT().View(gomock.Any(), gomock.Any(), "o1").Return(model.Order{}, failure.BadGateway("down"))

	_, err := svc.StartEdit(ctx, "o1")
	assert.Error(t, err)
	assert.False(t, ws.Orders.Modals.Edit.IsOpen())

	notes := ws.Notifications.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, "Failed to load order details for editing", notes[0].Description)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)

	orderRepo := mocks.NewMockOrder(ctrl)
	svc := service.New(orderRepo, otelMocks.NewOtel())

	tests := []struct {
		name      string
		id        string
		req       dto.StatusRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "status sent with the full order",
			id:   "o1",
			req:  dto.StatusRequest{Status: model.StatusDelivered},
			setupMock: func() {
				orderRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), "o1", gomock.Any()).
					DoAndReturn(func(_, _, _ any, payload dto.OrderPayload) error {
						assert.Len(t, payload.Items, 2)
						assert.Equal(t, "Ann", payload.Details.Customer)

						return nil
					})
			},
		},
		{
			name:      "unknown status",
			id:        "o1",
			req:       dto.StatusRequest{Status: "lost"},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown order",
			id:        "o9",
			req:       dto.StatusRequest{Status: model.StatusDelivered},
			setupMock: func() {},
			wantCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{Orders: orderRepo})

			orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(orders(), nil)
			ws.Orders.Sync(ctx)

			tt.setupMock()

			res, err := svc.UpdateStatus(ctx, tt.id, tt.req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusDelivered, res.Status)
		})
	}
}

func TestOrderService_DeleteAndModals(t *testing.T) {
	ctrl := gomock.NewController(t)

	orderRepo := mocks.NewMockOrder(ctrl)
	svc := service.New(orderRepo, otelMocks.NewOtel())
	ctx, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{Orders: orderRepo})

	orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(orders(), nil)

	_, err := svc.OpenDelete(ctx, "o2")
	require.NoError(t, err)

	orderRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), "o2").Return(nil)

	require.NoError(t, svc.Delete(ctx, "o2"))
	assert.Len(t, ws.Orders.Store.Snapshot(), 1)
	assert.False(t, ws.Orders.Modals.Delete.IsOpen())

	_, err = svc.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.CloseModal(ctx, modal.KindAdd))

	state, err := svc.Workflow(ctx)
	require.NoError(t, err)
	assert.False(t, state.Active)
}
