package utils

import (
	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ dappr.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx dappr.Context, store dappr.KVStore, tx dappr.Tx, next dappr.Checker) (_ *dappr.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx dappr.Context, store dappr.KVStore, tx dappr.Tx, next dappr.Deliverer) (_ *dappr.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
