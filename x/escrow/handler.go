package escrow

import (
	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/coin"
	"github.com/dappr-network/dappr/errors"
	"github.com/dappr-network/dappr/orm"
	"github.com/dappr-network/dappr/x"
	"github.com/dappr-network/dappr/x/cash"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r dappr.Registry, auth x.Authenticator, ctrl cash.Controller) {
	bucket := NewBucket()
	milestones := NewMilestoneBucket()

	r.Handle(&InitializeMsg{}, InitializeHandler{auth, bucket})
	r.Handle(&AddMilestoneMsg{}, AddMilestoneHandler{auth, bucket, milestones})
	r.Handle(&FundMsg{}, FundHandler{auth, bucket, ctrl})
	r.Handle(&CompleteMilestoneMsg{}, CompleteMilestoneHandler{auth, bucket, milestones})
	r.Handle(&ReleaseFundsMsg{}, ReleaseFundsHandler{auth, bucket, milestones, ctrl})
}

// blockNow returns the current block time as UnixTime. All lifecycle
// timestamps come from here, never from the wall clock.
func blockNow(ctx dappr.Context) (dappr.UnixTime, error) {
	t, ok := dappr.BlockTime(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrHuman, "block time not present in context")
	}
	return dappr.AsUnixTime(t), nil
}

// InitializeHandler opens new escrows.
type InitializeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ dappr.Handler = InitializeHandler{}

func (h InitializeHandler) Check(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dappr.CheckResult{}, nil
}

func (h InitializeHandler) Deliver(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.DeliverResult, error) {
	msg, creator, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	key := Key(creator, msg.Recipient)
	esc := &Escrow{
		Creator:         creator,
		Recipient:       msg.Recipient,
		Ticker:          msg.Ticker,
		Address:         Condition(key).Address(),
		MilestonesCount: msg.MilestonesCount,
		Status:          EscrowStatusInitialized,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.bucket.Put(db, key, esc); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	return &dappr.DeliverResult{
		Data: key,
		Events: []dappr.Event{
			dappr.EscrowCreated{Escrow: key, Creator: creator, Recipient: msg.Recipient},
		},
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h InitializeHandler) validate(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*InitializeMsg, dappr.Address, error) {
	var msg InitializeMsg
	if err := dappr.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	creator := signer.Address()
	if creator.Equals(msg.Recipient) {
		return nil, nil, errors.Wrap(errors.ErrInput, "recipient is the creator")
	}

	key := Key(creator, msg.Recipient)
	switch err := h.bucket.Has(db, key); {
	case err == nil:
		return nil, nil, errors.Wrap(errors.ErrDuplicate, "escrow exists for this pair")
	case !errors.ErrNotFound.Is(err):
		return nil, nil, err
	}
	return &msg, creator, nil
}

// AddMilestoneHandler attaches milestones to unfunded escrows.
type AddMilestoneHandler struct {
	auth       x.Authenticator
	bucket     orm.ModelBucket
	milestones orm.ModelBucket
}

var _ dappr.Handler = AddMilestoneHandler{}

func (h AddMilestoneHandler) Check(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dappr.CheckResult{}, nil
}

func (h AddMilestoneHandler) Deliver(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.DeliverResult, error) {
	msg, esc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	key := MilestoneKey(msg.EscrowID, msg.Index)
	mst := &Milestone{
		Escrow:      msg.EscrowID,
		Index:       msg.Index,
		Amount:      msg.Amount,
		Deadline:    msg.Deadline,
		Description: msg.Description,
		Status:      MilestoneStatusPending,
		CreatedAt:   now,
	}
	if err := h.milestones.Put(db, key, mst); err != nil {
		return nil, errors.Wrap(err, "cannot store milestone")
	}

	esc.UpdatedAt = now
	if err := h.bucket.Put(db, msg.EscrowID, esc); err != nil {
		return nil, errors.Wrap(err, "cannot update escrow")
	}
	return &dappr.DeliverResult{Data: key}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h AddMilestoneHandler) validate(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*AddMilestoneMsg, *Escrow, error) {
	var msg AddMilestoneMsg
	if err := dappr.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var esc Escrow
	if err := h.bucket.One(db, msg.EscrowID, &esc); err != nil {
		return nil, nil, errors.Wrap(err, "escrow")
	}
	if !h.auth.HasAddress(ctx, esc.Creator) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the creator can add milestones")
	}

	// The index bound holds regardless of the escrow status.
	if msg.Index >= esc.MilestonesCount {
		return nil, nil, errors.Wrapf(errors.ErrInput, "index %d out of declared %d", msg.Index, esc.MilestonesCount)
	}
	if esc.Status != EscrowStatusInitialized {
		return nil, nil, errors.Wrapf(errors.ErrState, "escrow is %s", esc.Status)
	}
	if dappr.IsExpired(ctx, msg.Deadline) {
		return nil, nil, errors.Wrap(errors.ErrInput, "deadline in the past")
	}

	switch err := h.milestones.Has(db, MilestoneKey(msg.EscrowID, msg.Index)); {
	case err == nil:
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "milestone %d", msg.Index)
	case !errors.ErrNotFound.Is(err):
		return nil, nil, err
	}
	return &msg, &esc, nil
}

// FundHandler locks the agreed amount in the escrow account.
type FundHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   cash.Controller
}

var _ dappr.Handler = FundHandler{}

func (h FundHandler) Check(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dappr.CheckResult{}, nil
}

func (h FundHandler) Deliver(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.DeliverResult, error) {
	msg, esc, funder, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	amount := coin.NewCoin(msg.Amount, esc.Ticker)
	if err := h.ctrl.MoveCoins(db, funder, esc.Address, amount); err != nil {
		return nil, err
	}

	esc.TotalAmount = msg.Amount
	esc.Status = EscrowStatusFunded
	esc.UpdatedAt = now
	if err := h.bucket.Put(db, msg.EscrowID, esc); err != nil {
		return nil, errors.Wrap(err, "cannot update escrow")
	}
	return &dappr.DeliverResult{Data: msg.EscrowID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h FundHandler) validate(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*FundMsg, *Escrow, dappr.Address, error) {
	var msg FundMsg
	if err := dappr.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	var esc Escrow
	if err := h.bucket.One(db, msg.EscrowID, &esc); err != nil {
		return nil, nil, nil, errors.Wrap(err, "escrow")
	}
	if esc.Status != EscrowStatusInitialized {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "escrow is %s", esc.Status)
	}
	return &msg, &esc, signer.Address(), nil
}

// CompleteMilestoneHandler records that the work of a milestone was
// verified. No funds move here.
type CompleteMilestoneHandler struct {
	auth       x.Authenticator
	bucket     orm.ModelBucket
	milestones orm.ModelBucket
}

var _ dappr.Handler = CompleteMilestoneHandler{}

func (h CompleteMilestoneHandler) Check(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dappr.CheckResult{}, nil
}

func (h CompleteMilestoneHandler) Deliver(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.DeliverResult, error) {
	msg, mst, verifier, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	mst.Status = MilestoneStatusCompleted
	mst.CompletedAt = now
	mst.VerifiedBy = verifier
	key := MilestoneKey(msg.EscrowID, msg.Index)
	if err := h.milestones.Put(db, key, mst); err != nil {
		return nil, errors.Wrap(err, "cannot update milestone")
	}
	return &dappr.DeliverResult{
		Data: key,
		Events: []dappr.Event{
			dappr.MilestoneCompleted{Escrow: msg.EscrowID, Milestone: key, Index: msg.Index, Amount: mst.Amount},
		},
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CompleteMilestoneHandler) validate(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*CompleteMilestoneMsg, *Milestone, dappr.Address, error) {
	var msg CompleteMilestoneMsg
	if err := dappr.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	// Any authenticated caller may verify work, but the record keeps
	// track of who it was.
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	var esc Escrow
	if err := h.bucket.One(db, msg.EscrowID, &esc); err != nil {
		return nil, nil, nil, errors.Wrap(err, "escrow")
	}
	if esc.Status != EscrowStatusFunded {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "escrow is %s", esc.Status)
	}

	var mst Milestone
	if err := h.milestones.One(db, MilestoneKey(msg.EscrowID, msg.Index), &mst); err != nil {
		return nil, nil, nil, errors.Wrap(err, "milestone")
	}
	if mst.Status != MilestoneStatusPending {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "milestone is %s", mst.Status)
	}
	return &msg, &mst, signer.Address(), nil
}

// ReleaseFundsHandler pays a completed milestone out to the recipient.
type ReleaseFundsHandler struct {
	auth       x.Authenticator
	bucket     orm.ModelBucket
	milestones orm.ModelBucket
	ctrl       cash.Controller
}

var _ dappr.Handler = ReleaseFundsHandler{}

func (h ReleaseFundsHandler) Check(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dappr.CheckResult{}, nil
}

func (h ReleaseFundsHandler) Deliver(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*dappr.DeliverResult, error) {
	msg, esc, mst, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	amount := coin.NewCoin(mst.Amount, esc.Ticker)
	if err := h.ctrl.MoveCoins(db, esc.Address, esc.Recipient, amount); err != nil {
		return nil, err
	}

	key := MilestoneKey(msg.EscrowID, msg.Index)
	mst.Status = MilestoneStatusPaid
	mst.PaidAt = now
	if err := h.milestones.Put(db, key, mst); err != nil {
		return nil, errors.Wrap(err, "cannot update milestone")
	}

	esc.ReleasedAmount += mst.Amount
	esc.MilestonesPaid++
	if esc.MilestonesPaid == esc.MilestonesCount {
		esc.Status = EscrowStatusCompleted
	}
	esc.UpdatedAt = now
	if err := h.bucket.Put(db, msg.EscrowID, esc); err != nil {
		return nil, errors.Wrap(err, "cannot update escrow")
	}
	return &dappr.DeliverResult{
		Data: key,
		Events: []dappr.Event{
			dappr.FundsReleased{Escrow: msg.EscrowID, Milestone: key, Amount: mst.Amount, Recipient: esc.Recipient},
		},
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ReleaseFundsHandler) validate(ctx dappr.Context, db dappr.KVStore, tx dappr.Tx) (*ReleaseFundsMsg, *Escrow, *Milestone, error) {
	var msg ReleaseFundsMsg
	if err := dappr.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	var esc Escrow
	if err := h.bucket.One(db, msg.EscrowID, &esc); err != nil {
		return nil, nil, nil, errors.Wrap(err, "escrow")
	}
	if esc.Status != EscrowStatusFunded {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "escrow is %s", esc.Status)
	}
	if msg.Destination != nil && !msg.Destination.Equals(esc.Recipient) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "destination is not the recipient")
	}

	var mst Milestone
	if err := h.milestones.One(db, MilestoneKey(msg.EscrowID, msg.Index), &mst); err != nil {
		return nil, nil, nil, errors.Wrap(err, "milestone")
	}
	if mst.Status != MilestoneStatusCompleted {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "milestone is %s", mst.Status)
	}

	sum := esc.ReleasedAmount + mst.Amount
	if sum < esc.ReleasedAmount {
		return nil, nil, nil, errors.Wrap(errors.ErrOverflow, "released amount")
	}
	if sum > esc.TotalAmount {
		return nil, nil, nil, errors.Wrapf(errors.ErrAmount, "release of %d exceeds remaining funds", mst.Amount)
	}
	return &msg, &esc, &mst, nil
}
