package order_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "dinedesk/infras/otel/mocks"
	"dinedesk/internal/domains/order/service/mocks"
	"dinedesk/internal/domains/order/workflow"
	"dinedesk/internal/handlers/order"
	"dinedesk/shared/failure"
	"dinedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, svc *mocks.MockOrder) (chi.Router, *otelMocks.Otel) {
	t.Helper()

	ot := otelMocks.NewOtel()
	handler := order.New(svc, ot)

	router := chi.NewRouter()
	handler.Router(router)

	return router, ot
}

func TestRouterWithoutService(t *testing.T) {
	handler := order.New(nil, otelMocks.NewOtel())

	assert.NotPanics(t, func() {
		handler.Router(chi.NewRouter())
	})
}

func TestWorkflowRoutes(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		setup    func(svc *mocks.MockOrder)
		span     string
		wantCode int
		wantStep workflow.Step
	}{
		{
			name:   "get state",
			method: http.MethodGet,
			path:   "/orders/workflow/",
			setup: func(svc *mocks.MockOrder) {
				svc.EXPECT().Workflow(gomock.Any()).Return(workflow.State{Step: workflow.StepSelectCategory}, nil)
			},
			wantCode: http.StatusOK,
			wantStep: workflow.StepSelectCategory,
		},
		{
			name:   "start",
			method: http.MethodPost,
			path:   "/orders/workflow/",
			setup: func(svc *mocks.MockOrder) {
				svc.EXPECT().Start(gomock.Any()).Return(workflow.State{Step: workflow.StepSelectCategory, Active: true}, nil)
			},
			wantCode: http.StatusOK,
			wantStep: workflow.StepSelectCategory,
		},
		{
			name:   "add item reads path param",
			method: http.MethodPost,
			path:   "/orders/workflow/items/item-7",
			setup: func(svc *mocks.MockOrder) {
				svc.EXPECT().AddItem(gomock.Any(), "item-7").Return(workflow.State{Step: workflow.StepSelectItems, Active: true}, nil)
			},
			wantCode: http.StatusOK,
			wantStep: workflow.StepSelectItems,
		},
		{
			name:   "decrement reads path param",
			method: http.MethodPost,
			path:   "/orders/workflow/items/item-7/decrement",
			setup: func(svc *mocks.MockOrder) {
				svc.EXPECT().Decrement(gomock.Any(), "item-7").Return(workflow.State{Step: workflow.StepSelectItems, Active: true}, nil)
			},
			wantCode: http.StatusOK,
			wantStep: workflow.StepSelectItems,
		},
		{
			name:   "proceed rejected",
			method: http.MethodPost,
			path:   "/orders/workflow/proceed",
			span:   "handler.WorkflowProceed",
			setup: func(svc *mocks.MockOrder) {
				svc.EXPECT().Proceed(gomock.Any()).Return(workflow.State{}, failure.Conflict("cart is empty"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockOrder(ctrl)
			tt.setup(svc)

			router, ot := newRouter(t, svc)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				scope := ot.Scope(tt.span)
				require.NotNil(t, scope)
				assert.True(t, scope.Ended())
				require.Len(t, scope.Errors(), 1)
				assert.Equal(t, http.StatusConflict, failure.GetCode(scope.Errors()[0]))

				return
			}

			var body response.Data[workflow.State]
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Data)
			assert.Equal(t, tt.wantStep, body.Data.Step)
		})
	}
}
