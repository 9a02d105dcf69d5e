/*
Package app assembles handlers, decorators and a store into a runnable
engine.

The standard assembly registers all extension routes on a Router, wraps
it with the Logging, Recovery and Savepoint decorators and hands the
result to an App. The App serializes all operations: each Check or
Deliver runs alone against a cache wrapped store that is committed on
success and discarded on error, so callers observe operations as atomic
and sequential.
*/
package app

import (
	"sync"

	"github.com/dappr-network/dappr"
	"go.uber.org/zap"
)

// App dispatches transactions against a single store, one at a time.
type App struct {
	mu      sync.Mutex
	store   dappr.CacheableKVStore
	handler dappr.Handler
	logger  *zap.SugaredLogger
}

// NewApp combines a store with a handler stack.
func NewApp(store dappr.CacheableKVStore, handler dappr.Handler) *App {
	return &App{
		store:   store,
		handler: handler,
		logger:  dappr.DefaultLogger,
	}
}

// WithLogger sets the logger attached to every operation context.
func (a *App) WithLogger(logger *zap.SugaredLogger) *App {
	a.logger = logger
	return a
}

// Check runs a dry validation of the transaction. Any writes the
// handler stack makes are always discarded.
func (a *App) Check(ctx dappr.Context, tx dappr.Tx) (*dappr.CheckResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cache := a.store.CacheWrap()
	defer cache.Discard()

	return a.handler.Check(dappr.WithLogger(ctx, a.logger), cache, tx)
}

// Deliver executes the transaction. All writes are committed together
// on success and discarded together on error, other callers never see
// a partial state.
func (a *App) Deliver(ctx dappr.Context, tx dappr.Tx) (*dappr.DeliverResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cache := a.store.CacheWrap()
	res, err := a.handler.Deliver(dappr.WithLogger(ctx, a.logger), cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	cache.Write()
	return res, nil
}
