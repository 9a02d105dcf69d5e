package dapprtest

import "github.com/dappr-network/dappr"

// Handler is a mock implementation of the dappr.Handler interface. It
// counts calls and returns declared results.
type Handler struct {
	checkCall   int
	CheckResult dappr.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult dappr.DeliverResult
	DeliverErr    error
}

var _ dappr.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.CheckResult, error) {
	h.checkCall++
	return &h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.DeliverResult, error) {
	h.deliverCall++
	return &h.DeliverResult, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// Decorator is a mock implementation of the dappr.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response. Otherwise the
// call is passed down the stack.
type Decorator struct {
	checkCall   int
	CheckErr    error
	deliverCall int
	DeliverErr  error
}

var _ dappr.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx, next dappr.Checker) (*dappr.CheckResult, error) {
	d.checkCall++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx, next dappr.Deliverer) (*dappr.DeliverResult, error) {
	d.deliverCall++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}
