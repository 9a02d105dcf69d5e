package multisig

import (
	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/coin"
	"github.com/dappr-network/dappr/errors"
	"github.com/dappr-network/dappr/orm"
	"github.com/dappr-network/dappr/x"
	"github.com/dappr-network/dappr/x/cash"
	"github.com/dappr-network/dappr/x/escrow"
)

// ErrExecuted is returned when a withdrawal round that was already
// executed is asked to execute again.
var ErrExecuted = errors.Register(1020, "already executed")

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r dappr.Registry, auth x.Authenticator, ctrl cash.Controller) {
	escrows := escrow.NewBucket()
	withdrawals := NewBucket()

	r.Handle(&InitiateWithdrawalMsg{}, InitiateWithdrawalHandler{auth, escrows, withdrawals})
	r.Handle(&SignWithdrawalMsg{}, SignWithdrawalHandler{auth, withdrawals})
	r.Handle(&ExecuteWithdrawalMsg{}, ExecuteWithdrawalHandler{auth, escrows, withdrawals, ctrl})
}

// blockNow returns the current block time as UnixTime.
func blockNow(ctx dappr.Context) (dappr.UnixTime, error) {
	t, ok := dappr.BlockTime(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrHuman, "block time not present in context")
	}
	return dappr.AsUnixTime(t), nil
}

// InitiateWithdrawalHandler starts withdrawal rounds.
type InitiateWithdrawalHandler struct {
	auth        x.Authenticator
	escrows     orm.ModelBucket
	withdrawals orm.ModelBucket
}

var _ dappr.Handler = InitiateWithdrawalHandler{}

func (h InitiateWithdrawalHandler) Check(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dappr.CheckResult{}, nil
}

func (h InitiateWithdrawalHandler) Deliver(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.DeliverResult, error) {
	msg, esc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	threshold := msg.Threshold
	if threshold == 0 {
		threshold = defaultThreshold(len(msg.Signers))
	}

	// A fresh round replaces whatever came before, approvals included.
	w := &Withdrawal{
		Escrow:    msg.EscrowID,
		Signers:   msg.Signers,
		Approvals: make([]bool, len(msg.Signers)),
		Threshold: threshold,
		CreatedAt: now,
	}
	if err := h.withdrawals.Put(db, msg.EscrowID, w); err != nil {
		return nil, errors.Wrap(err, "cannot store withdrawal")
	}
	return &dappr.DeliverResult{
		Data: msg.EscrowID,
		Events: []dappr.Event{
			dappr.EmergencyWithdrawalRequested{
				Escrow:    msg.EscrowID,
				Requester: esc.Creator,
				Amount:    esc.TotalAmount - esc.ReleasedAmount,
			},
		},
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h InitiateWithdrawalHandler) validate(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*InitiateWithdrawalMsg, *escrow.Escrow, error) {
	var msg InitiateWithdrawalMsg
	if err := dappr.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var esc escrow.Escrow
	if err := h.escrows.One(db, msg.EscrowID, &esc); err != nil {
		return nil, nil, errors.Wrap(err, "escrow")
	}
	if !h.auth.HasAddress(ctx, esc.Creator) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the creator can initiate a withdrawal")
	}
	if esc.Status != escrow.EscrowStatusFunded {
		return nil, nil, errors.Wrapf(errors.ErrState, "escrow is %s", esc.Status)
	}
	return &msg, &esc, nil
}

// defaultThreshold is ceil(2N/3), a two thirds majority.
func defaultThreshold(n int) uint32 {
	return uint32((2*n + 2) / 3)
}

// SignWithdrawalHandler records approvals.
type SignWithdrawalHandler struct {
	auth        x.Authenticator
	withdrawals orm.ModelBucket
}

var _ dappr.Handler = SignWithdrawalHandler{}

func (h SignWithdrawalHandler) Check(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dappr.CheckResult{}, nil
}

func (h SignWithdrawalHandler) Deliver(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.DeliverResult, error) {
	msg, w, pos, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Signing an executed round or signing twice changes nothing, both
	// report success so that retries are harmless.
	if w.Executed || w.Approvals[pos] {
		return &dappr.DeliverResult{Data: msg.EscrowID}, nil
	}

	w.Approvals[pos] = true
	if err := h.withdrawals.Put(db, msg.EscrowID, w); err != nil {
		return nil, errors.Wrap(err, "cannot update withdrawal")
	}
	return &dappr.DeliverResult{Data: msg.EscrowID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SignWithdrawalHandler) validate(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*SignWithdrawalMsg, *Withdrawal, int, error) {
	var msg SignWithdrawalMsg
	if err := dappr.LoadMsg(tx, &msg); err != nil {
		return nil, nil, 0, errors.Wrap(err, "load msg")
	}

	var w Withdrawal
	if err := h.withdrawals.One(db, msg.EscrowID, &w); err != nil {
		return nil, nil, 0, errors.Wrap(err, "withdrawal")
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, 0, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	pos := w.SignerIndex(signer.Address())
	if pos < 0 {
		return nil, nil, 0, errors.Wrap(errors.ErrUnauthorized, "not in the signer group")
	}
	return &msg, &w, pos, nil
}

// ExecuteWithdrawalHandler drains the escrow once the threshold is met.
type ExecuteWithdrawalHandler struct {
	auth        x.Authenticator
	escrows     orm.ModelBucket
	withdrawals orm.ModelBucket
	ctrl        cash.Controller
}

var _ dappr.Handler = ExecuteWithdrawalHandler{}

func (h ExecuteWithdrawalHandler) Check(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dappr.CheckResult{}, nil
}

func (h ExecuteWithdrawalHandler) Deliver(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.DeliverResult, error) {
	msg, w, esc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	// The transfer, the executed flag and the escrow cancellation all
	// land in the same store transaction.
	remaining := esc.TotalAmount - esc.ReleasedAmount
	if remaining > 0 {
		amount := coin.NewCoin(remaining, esc.Ticker)
		if err := h.ctrl.MoveCoins(db, esc.Address, esc.Creator, amount); err != nil {
			return nil, err
		}
	}

	w.Executed = true
	if err := h.withdrawals.Put(db, msg.EscrowID, w); err != nil {
		return nil, errors.Wrap(err, "cannot update withdrawal")
	}

	esc.Status = escrow.EscrowStatusCancelled
	esc.UpdatedAt = now
	if err := h.escrows.Put(db, msg.EscrowID, esc); err != nil {
		return nil, errors.Wrap(err, "cannot update escrow")
	}
	return &dappr.DeliverResult{Data: msg.EscrowID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ExecuteWithdrawalHandler) validate(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*ExecuteWithdrawalMsg, *Withdrawal, *escrow.Escrow, error) {
	var msg ExecuteWithdrawalMsg
	if err := dappr.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	var w Withdrawal
	if err := h.withdrawals.One(db, msg.EscrowID, &w); err != nil {
		return nil, nil, nil, errors.Wrap(err, "withdrawal")
	}
	if w.Executed {
		return nil, nil, nil, errors.Wrap(ErrExecuted, "withdrawal")
	}
	if got := w.ApprovalCount(); uint32(got) < w.Threshold {
		return nil, nil, nil, errors.Wrapf(errors.ErrInput, "%d of %d approvals", got, w.Threshold)
	}

	var esc escrow.Escrow
	if err := h.escrows.One(db, msg.EscrowID, &esc); err != nil {
		return nil, nil, nil, errors.Wrap(err, "escrow")
	}
	if esc.Status != escrow.EscrowStatusFunded {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "escrow is %s", esc.Status)
	}
	return &msg, &w, &esc, nil
}
