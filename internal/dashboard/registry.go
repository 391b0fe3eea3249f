package dashboard

//go:generate go run go.uber.org/mock/mockgen -source=./registry.go -destination=./mocks/registry_mock.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"dinedesk/config"
	"dinedesk/infras/kafka"
	"dinedesk/infras/metrics"
	"dinedesk/shared/logger"
	"dinedesk/shared/session"
	"dinedesk/shared/timezone"
)

const (
	minSweepInterval = time.Second
	maxSweepInterval = time.Minute
)

// Registry owns the workspaces of the sessions served by this replica.
type Registry interface {
	Acquire(sess *session.Session) *Workspace
	Close(sessionID string)
	Run(ctx context.Context)
	Shutdown()
}

type registryImpl struct {
	cfg  *config.Config
	deps Dependencies
	idle time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

func NewRegistry(cfg *config.Config, deps Dependencies) Registry {
	ctx, cancel := context.WithCancel(context.Background())

	return &registryImpl{
		cfg:        cfg,
		deps:       deps,
		idle:       seconds(cfg.Dashboard.WorkspaceIdleSeconds, 1800),
		ctx:        ctx,
		cancel:     cancel,
		workspaces: map[string]*Workspace{},
	}
}

// Acquire returns the workspace of the session, creating it on first use. The stored
// session replaces the workspace's copy so token and profile changes are picked up.
func (r *registryImpl) Acquire(sess *session.Session) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ws, ok := r.workspaces[sess.ID]; ok {
		ws.SetSession(sess)
		ws.Touch()

		return ws
	}

	ws := NewWorkspace(r.ctx, r.cfg, sess, r.deps)
	r.workspaces[sess.ID] = ws
	metrics.ActiveWorkspaces.Inc()

	l := logger.ForSession(sess)
	l.Debug().Msg("workspace created")

	return ws
}

func (r *registryImpl) Close(sessionID string) {
	r.mu.Lock()
	ws, ok := r.workspaces[sessionID]
	delete(r.workspaces, sessionID)
	r.mu.Unlock()

	if !ok {
		return
	}

	ws.Close()
	metrics.ActiveWorkspaces.Dec()

	l := logger.ForSession(ws.Session())
	l.Debug().Msg("workspace closed")
}

// Run consumes the change feed and evicts idle workspaces until ctx is done.
func (r *registryImpl) Run(ctx context.Context) {
	go r.deps.Feed.Subscribe(ctx, r.handleEvent)

	interval := min(max(r.idle/4, minSweepInterval), maxSweepInterval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *registryImpl) sweep() {
	cutoff := timezone.Now().Add(-r.idle)

	r.mu.Lock()

	stale := make([]string, 0)
	for id, ws := range r.workspaces {
		if !ws.Live() && ws.LastUsed().Before(cutoff) {
			stale = append(stale, id)
		}
	}

	r.mu.Unlock()

	for _, id := range stale {
		r.Close(id)
	}
}

// handleEvent refreshes the matching view in every other session of the restaurant.
func (r *registryImpl) handleEvent(event kafka.ChangeEvent) {
	metrics.ChangeEventsTotal.WithLabelValues(event.Resource).Inc()

	r.mu.Lock()

	targets := make([]*Workspace, 0)
	for _, ws := range r.workspaces {
		if ws.RestaurantID == event.RestaurantID && ws.ID != event.Origin {
			targets = append(targets, ws)
		}
	}

	r.mu.Unlock()

	for _, ws := range targets {
		ws.RefreshView(ws.Context(), event.Resource)
	}
}

func (r *registryImpl) Shutdown() {
	r.mu.Lock()
	ids := make([]string, 0, len(r.workspaces))
	for id := range r.workspaces {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.Close(id)
	}

	r.cancel()
}
