package app

import (
	"fmt"
	"regexp"

	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/errors"
)

// isPath ensures path in the form of <extension>/<operation>
var isPath = regexp.MustCompile(`^[a-z0-9_]+/[a-z0-9_]+$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the registered handler themed.
type Router struct {
	handlers map[string]dappr.Handler
}

var _ dappr.Registry = (*Router)(nil)
var _ dappr.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]dappr.Handler),
	}
}

// Handle implements dappr.Registry interface. It panics when a handler
// for given message type was already registered or when the message
// path is malformed.
func (r *Router) Handle(m dappr.Msg, h dappr.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("handler for %q is already registered", path))
	}
	r.handlers[path] = h
}

// handler returns the registered Handler for this message, or a
// noSuchPathHandler when none was registered.
func (r *Router) handler(m dappr.Msg) dappr.Handler {
	path := m.Path()
	if h, ok := r.handlers[path]; ok {
		return h
	}
	return noSuchPathHandler{path: path}
}

// Check dispatches to the proper handler based on message path
func (r *Router) Check(ctx dappr.Context, store dappr.KVStore, tx dappr.Tx) (*dappr.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on message path
func (r *Router) Deliver(ctx dappr.Context, store dappr.KVStore, tx dappr.Tx) (*dappr.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// noSuchPathHandler always returns ErrNotFound for the path it was
// created with.
type noSuchPathHandler struct {
	path string
}

var _ dappr.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(dappr.Context, dappr.KVStore, dappr.Tx) (*dappr.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

func (h noSuchPathHandler) Deliver(dappr.Context, dappr.KVStore, dappr.Tx) (*dappr.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}
