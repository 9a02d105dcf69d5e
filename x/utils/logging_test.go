package utils

import (
	"context"
	"testing"

	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/dapprtest"
	"github.com/dappr-network/dappr/dapprtest/assert"
	"github.com/dappr-network/dappr/errors"
	"github.com/dappr-network/dappr/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core).Sugar()

	ctx := dappr.WithLogger(context.Background(), logger)
	db := store.MemStore()
	tx := &dapprtest.Tx{Msg: &dapprtest.Msg{RoutePath: "test/op"}}

	l := NewLogging()

	// Successful delivery logs at info level.
	next := &dapprtest.Handler{DeliverResult: dappr.DeliverResult{Log: "all good"}}
	_, err := l.Deliver(ctx, db, tx, next)
	assert.Nil(t, err)

	entries := logs.TakeAll()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "all good", entries[0].Message)

	// Failing delivery logs at error level and keeps the error.
	next = &dapprtest.Handler{DeliverErr: errors.ErrState}
	_, err = l.Deliver(ctx, db, tx, next)
	assert.IsErr(t, errors.ErrState, err)

	entries = logs.TakeAll()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)

	// Failing check is low priority.
	next = &dapprtest.Handler{CheckErr: errors.ErrState}
	_, err = l.Check(ctx, db, tx, next)
	assert.IsErr(t, errors.ErrState, err)

	entries = logs.TakeAll()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
}
