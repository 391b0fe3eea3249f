// Package live pushes view snapshots and toasts to the browser over a websocket while
// the screens showing them are open.
package live

import (
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"dinedesk/config"
	"dinedesk/infras/metrics"
	"dinedesk/infras/otel"
	"dinedesk/internal/dashboard"
	"dinedesk/shared/constant"
	"dinedesk/shared/notify"
	"dinedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	MessageSnapshot     = "snapshot"
	MessageNotification = "notification"

	outboxSize = 64
)

type Message struct {
	Type string `json:"type"`
	View string `json:"view,omitempty"`
	Data any    `json:"data"`
}

type Handler struct {
	cfg      *config.Config
	otel     otel.Otel
	upgrader websocket.Upgrader
}

func New(cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		cfg:  cfg,
		otel: otel,
		upgrader: websocket.Upgrader{
			CheckOrigin: checkOrigin(cfg.App.CORS.AllowedOrigins),
		},
	}
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 || slices.Contains(allowed, constant.Asterix) {
			return true
		}

		return slices.Contains(allowed, origin)
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/live", handler.Live)
}

// parseViews reads the comma separated view list, defaulting to every view.
func parseViews(r *http.Request) []string {
	raw := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamViews))
	if raw == "" {
		return dashboard.Views
	}

	views := make([]string, 0)

	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" && !slices.Contains(views, name) {
			views = append(views, name)
		}
	}

	return views
}

// Live mounts the requested views for as long as the socket stays open. Every store
// update sends the view's current page; every toast is forwarded as it is raised.
// @Summary Live view updates
// @Tags Live
// @Param views query string false "Comma separated views, all by default"
// @Param access_token query string false "Gateway token when headers cannot be set"
// @Success 101
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/live [get]
// @Security BearerAuth
func (handler *Handler) Live(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Live")

	ws, err := dashboard.FromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		scope.End()
		response.WithError(w, err)

		return
	}

	views := parseViews(r)

	unmount, err := ws.Mount(views)
	if err != nil {
		scope.TraceError(err)
		scope.End()
		response.WithError(w, err)

		return
	}
	defer unmount()

	conn, err := handler.upgrader.Upgrade(w, r, nil)
	if err != nil {
		scope.TraceError(err)
		scope.End()
		log.Error().Err(err).Msg("failed to upgrade live connection")

		return
	}

	scope.SetAttribute("live.views", strings.Join(views, ","))
	scope.End()

	metrics.LiveConnections.Inc()
	defer metrics.LiveConnections.Dec()

	c := newClient(conn, time.Duration(handler.cfg.Dashboard.LiveWriteTimeoutSeconds)*time.Second)
	go c.writeLoop()
	defer c.close()

	stopWatch := ws.Watch(views, func(name string) {
		if snapshot, ok := ws.Snapshot(name); ok {
			c.send(Message{Type: MessageSnapshot, View: name, Data: snapshot})
		}
	})
	defer stopWatch()

	stopNotify := ws.Notifications.Subscribe(func(n notify.Notification) {
		c.send(Message{Type: MessageNotification, Data: n})
	})
	defer stopNotify()

	for _, name := range views {
		if snapshot, ok := ws.Snapshot(name); ok {
			c.send(Message{Type: MessageSnapshot, View: name, Data: snapshot})
		}
	}

	log.Debug().Str("session_id", ws.ID).Strs("views", views).Msg("live connection opened")

	// Incoming frames carry nothing; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}

		ws.Touch()
	}

	log.Debug().Str("session_id", ws.ID).Msg("live connection closed")
}

// client serializes writes to one socket. A slow reader loses messages instead of
// blocking the store that produced them.
type client struct {
	conn    *websocket.Conn
	timeout time.Duration
	outbox  chan Message
	done    chan struct{}
	once    sync.Once
}

func newClient(conn *websocket.Conn, timeout time.Duration) *client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &client{
		conn:    conn,
		timeout: timeout,
		outbox:  make(chan Message, outboxSize),
		done:    make(chan struct{}),
	}
}

func (c *client) send(msg Message) {
	select {
	case <-c.done:
	case c.outbox <- msg:
	default:
		log.Warn().Str("type", msg.Type).Str("view", msg.View).Msg("live outbox full, dropping message")
	}
}

func (c *client) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.outbox:
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
				c.close()

				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				log.Debug().Err(err).Msg("failed to write live message")
				c.close()

				return
			}
		}
	}
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}
