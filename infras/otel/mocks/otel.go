// Package mocks provides an in-memory otel.Otel that remembers the scopes it opened.
package mocks

import (
	"context"
	"sync"

	"dinedesk/infras/otel"
)

type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := &Scope{owner: o, Name: spanName, attributes: map[string]any{}}

	o.mu.Lock()
	o.scopes = append(o.scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

// Scope returns the most recent scope opened with spanName, or nil.
func (o *Otel) Scope(spanName string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := len(o.scopes) - 1; i >= 0; i-- {
		if o.scopes[i].Name == spanName {
			return o.scopes[i]
		}
	}

	return nil
}

// Errors lists every error traced in any scope, in order.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var errs []error
	for _, s := range o.scopes {
		errs = append(errs, s.errors...)
	}

	return errs
}
