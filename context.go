package dappr

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Context is just an alias for the standard implementation.
// We use functions to extract data from the context, so
// we can set up a consistent interface regardless of the
// keys used internally.
type Context = context.Context

type contextKey int // local to the dappr module

const (
	contextKeyBlockTime contextKey = iota
	contextKeyLogger
	contextKeyChainID
)

// DefaultLogger is used for all contexts that have not
// set anything themselves
var DefaultLogger = zap.NewNop().Sugar()

// WithBlockTime sets the block time for the context. The block time is the
// engine clock: a monotonically non-decreasing timestamp used for deadline
// checks and for stamping records.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyBlockTime, t.UTC())
}

// BlockTime returns the block time as declared for this context. Returns
// false if the block time was not provided.
func BlockTime(ctx Context) (time.Time, bool) {
	t, ok := ctx.Value(contextKeyBlockTime).(time.Time)
	return t, ok
}

// IsExpired returns true if given time is in the past as compared to the
// "now" as declared for the context. Expiration is inclusive, meaning that
// if current time is equal to the expiration time than this function
// returns true.
//
// This function panics if the block time is not present in the context.
func IsExpired(ctx Context, t UnixTime) bool {
	now, ok := BlockTime(ctx)
	if !ok {
		panic("block time is not present in the context")
	}
	return t <= AsUnixTime(now)
}

// InTheFuture returns true if given time is in the future compared to the
// current time as declared in the context. This function is not inclusive
// of the current time.
//
// This function panics if the block time is not present in the context.
func InTheFuture(ctx Context, t UnixTime) bool {
	now, ok := BlockTime(ctx)
	if !ok {
		panic("block time is not present in the context")
	}
	return t > AsUnixTime(now)
}

// WithLogger sets the logger for this context.
func WithLogger(ctx Context, logger *zap.SugaredLogger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger stored in this context, or a Nop logger when
// none was set.
func GetLogger(ctx Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(contextKeyLogger).(*zap.SugaredLogger); ok {
		return logger
	}
	return DefaultLogger
}

// WithChainID sets the chain id for the context.
func WithChainID(ctx Context, chainID string) Context {
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id from the context, or an empty string when
// none was set.
func GetChainID(ctx Context) string {
	id, _ := ctx.Value(contextKeyChainID).(string)
	return id
}
