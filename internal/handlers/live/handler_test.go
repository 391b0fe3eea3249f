package live_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	otelMocks "dinedesk/infras/otel/mocks"
	"dinedesk/internal/dashboard"
	dashboardMocks "dinedesk/internal/dashboard/mocks"
	calllogMocks "dinedesk/internal/domains/calllog/mocks"
	calllogModel "dinedesk/internal/domains/calllog/model"
	"dinedesk/internal/handlers/live"
	"dinedesk/shared/notify"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, ws *dashboard.Workspace) *httptest.Server {
	t.Helper()

	handler := live.New(dashboardMocks.Config(), otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(dashboard.WithContext(r.Context(), ws)))
		})
	})
	handler.Router(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func dial(t *testing.T, server *httptest.Server, query string) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/live" + query

	return websocket.DefaultDialer.Dial(url, nil)
}

func TestLive_PushesSnapshotsAndNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)

	calls := calllogMocks.NewMockCallLog(ctrl)
	calls.EXPECT().List(gomock.Any(), gomock.Any()).Return([]calllogModel.CallLog{{ID: "c1"}}, nil).AnyTimes()

	_, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{CallLogs: calls})
	server := newServer(t, ws)

	conn, _, err := dial(t, server, "?views=call-logs")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var first live.Message
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, live.MessageSnapshot, first.Type)
	assert.Equal(t, dashboard.ViewCallLogs, first.View)

	assert.Eventually(t, ws.Live, time.Second, 10*time.Millisecond)

	ws.Notifications.Notify(notify.Success("Call log added successfully."))

	for {
		var msg live.Message
		require.NoError(t, conn.ReadJSON(&msg))

		if msg.Type == live.MessageNotification {
			data, ok := msg.Data.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "Call log added successfully.", data["description"])

			break
		}
	}

	conn.Close()

	assert.Eventually(t, func() bool { return !ws.Live() }, time.Second, 10*time.Millisecond)
}

func TestLive_UnknownView(t *testing.T) {
	_, ws := dashboardMocks.NewContext(t, dashboard.Dependencies{})
	server := newServer(t, ws)

	_, resp, err := dial(t, server, "?views=kitchen")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, ws.Live())
}
