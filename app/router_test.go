package app

import (
	"context"
	"testing"

	"github.com/dappr-network/dappr/dapprtest"
	"github.com/dappr-network/dappr/dapprtest/assert"
	"github.com/dappr-network/dappr/errors"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()

	var handler dapprtest.Handler
	r.Handle(&dapprtest.Msg{RoutePath: "test/good"}, &handler)

	tx := &dapprtest.Tx{Msg: &dapprtest.Msg{RoutePath: "test/good"}}
	_, err := r.Check(context.Background(), nil, tx)
	assert.Nil(t, err)
	_, err = r.Deliver(context.Background(), nil, tx)
	assert.Nil(t, err)
	assert.Equal(t, 2, handler.CallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()

	tx := &dapprtest.Tx{Msg: &dapprtest.Msg{RoutePath: "test/secret"}}
	_, err := r.Check(context.Background(), nil, tx)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = r.Deliver(context.Background(), nil, tx)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle(&dapprtest.Msg{RoutePath: "test/good"}, &dapprtest.Handler{})

	assert.Panics(t, func() {
		// Path taken.
		r.Handle(&dapprtest.Msg{RoutePath: "test/good"}, &dapprtest.Handler{})
	})
	assert.Panics(t, func() {
		// Malformed path.
		r.Handle(&dapprtest.Msg{RoutePath: "not a path"}, &dapprtest.Handler{})
	})
}

func TestChainDecorators(t *testing.T) {
	d1 := &dapprtest.Decorator{}
	d2 := &dapprtest.Decorator{}
	handler := &dapprtest.Handler{}

	stack := ChainDecorators(d1, nil, d2).WithHandler(handler)

	_, err := stack.Deliver(context.Background(), nil, &dapprtest.Tx{})
	assert.Nil(t, err)
	assert.Equal(t, 1, d1.DeliverCallCount())
	assert.Equal(t, 1, d2.DeliverCallCount())
	assert.Equal(t, 1, handler.DeliverCallCount())

	// An error on top of the chain stops the dispatch.
	d1.CheckErr = errors.ErrUnauthorized
	_, err = stack.Check(context.Background(), nil, &dapprtest.Tx{})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 0, d2.CheckCallCount())
	assert.Equal(t, 0, handler.CheckCallCount())
}
