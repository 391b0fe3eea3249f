// Package poller drives a refresh function on a fixed interval while a view is mounted.
package poller

import (
	"context"
	"sync"
	"time"

	"dinedesk/infras/metrics"

	"github.com/rs/zerolog/log"
)

type RefreshFunc func(ctx context.Context) error

// Poller runs refresh once immediately on Start and then on every tick until Stop.
// Failed ticks are not retried early and do not slow the schedule down.
type Poller struct {
	name     string
	interval time.Duration
	refresh  RefreshFunc

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	gen     uint64
}

func New(name string, interval time.Duration, refresh RefreshFunc) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
		refresh:  refresh,
	}
}

// Start is a no-op when the poller is already running or ctx is already done.
// The refresh context is derived from ctx and cancelled by Stop, which is how
// responses arriving after unmount get discarded. Cancelling ctx stops the poller.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	if ctx.Err() != nil {
		log.Debug().Str("poller", p.name).Msg("owner gone, poller not started")

		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.running = true
	p.gen++

	metrics.ActivePollers.WithLabelValues(p.name).Inc()
	log.Debug().Str("poller", p.name).Dur("interval", p.interval).Msg("poller started")

	go p.loop(ctx, p.gen)
}

// Stop cancels the schedule without waiting. An in-flight refresh is not interrupted
// but its result is dropped by the store.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	p.cancel()
	p.running = false

	metrics.ActivePollers.WithLabelValues(p.name).Dec()
	log.Debug().Str("poller", p.name).Msg("poller stopped")
}

func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.running
}

// release marks the run identified by gen as stopped when its context ended
// without a Stop, so a later Start can run again.
func (p *Poller) release(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running || p.gen != gen {
		return
	}

	p.cancel()
	p.running = false

	metrics.ActivePollers.WithLabelValues(p.name).Dec()
	log.Debug().Str("poller", p.name).Msg("poller stopped with its owner")
}

func (p *Poller) loop(ctx context.Context, gen uint64) {
	defer p.release(gen)

	p.tick(ctx)

	if p.interval <= 0 {
		<-ctx.Done()

		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}

			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if err := p.refresh(ctx); err != nil {
		log.Debug().Err(err).Str("poller", p.name).Msg("poll tick failed")
	}
}
