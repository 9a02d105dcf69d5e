package utils

import (
	"time"

	"github.com/dappr-network/dappr"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ dappr.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> warn, success -> debug
func (r Logging) Check(ctx dappr.Context, store dappr.KVStore, tx dappr.Tx, next dappr.Checker) (*dappr.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx dappr.Context, store dappr.KVStore, tx dappr.Tx, next dappr.Deliverer) (*dappr.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx dappr.Context, tx dappr.Tx, start time.Time, msg string, err error, lowPrio bool) {
	logger := dappr.GetLogger(ctx).With(
		"path", dappr.GetPath(tx),
		"duration", time.Since(start),
	)

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.

	if err != nil {
		logger = logger.With("err", err)
		if lowPrio {
			logger.Warn(msg)
		} else {
			logger.Error(msg)
		}
		return
	}
	if lowPrio {
		logger.Debug(msg)
	} else {
		logger.Info(msg)
	}
}
