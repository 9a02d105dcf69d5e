package escrow

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/coin"
	"github.com/dappr-network/dappr/dapprtest"
	"github.com/dappr-network/dappr/dapprtest/assert"
	"github.com/dappr-network/dappr/errors"
	"github.com/dappr-network/dappr/orm"
	"github.com/dappr-network/dappr/store"
	"github.com/dappr-network/dappr/x/cash"
)

var blockTime = time.Unix(1700000000, 0)

// ctxAuth keeps signers on the context so every delivery can come from a
// different caller.
var ctxAuth = &dapprtest.CtxAuth{Key: "auth"}

func authCtx(signers ...dappr.Condition) dappr.Context {
	ctx := dappr.WithBlockTime(context.Background(), blockTime)
	return ctxAuth.SetConditions(ctx, signers...)
}

type testHandlers struct {
	escrows    orm.ModelBucket
	milestones orm.ModelBucket
	ctrl       cash.BaseController

	init     InitializeHandler
	add      AddMilestoneHandler
	fund     FundHandler
	complete CompleteMilestoneHandler
	release  ReleaseFundsHandler
}

func newTestHandlers() testHandlers {
	escrows := NewBucket()
	milestones := NewMilestoneBucket()
	ctrl := cash.NewController(cash.NewBucket())
	return testHandlers{
		escrows:    escrows,
		milestones: milestones,
		ctrl:       ctrl,
		init:       InitializeHandler{ctxAuth, escrows},
		add:        AddMilestoneHandler{ctxAuth, escrows, milestones},
		fund:       FundHandler{ctxAuth, escrows, ctrl},
		complete:   CompleteMilestoneHandler{ctxAuth, escrows, milestones},
		release:    ReleaseFundsHandler{ctxAuth, escrows, milestones, ctrl},
	}
}

func (h testHandlers) escrow(t testing.TB, db dappr.KVStore, key []byte) *Escrow {
	t.Helper()
	var esc Escrow
	if err := h.escrows.One(db, key, &esc); err != nil {
		t.Fatalf("cannot load escrow: %+v", err)
	}
	return &esc
}

func (h testHandlers) milestone(t testing.TB, db dappr.KVStore, key []byte, index uint32) *Milestone {
	t.Helper()
	var mst Milestone
	if err := h.milestones.One(db, MilestoneKey(key, index), &mst); err != nil {
		t.Fatalf("cannot load milestone %d: %+v", index, err)
	}
	return &mst
}

func (h testHandlers) balance(t testing.TB, db dappr.KVStore, addr dappr.Address) uint64 {
	t.Helper()
	amount, err := h.ctrl.Balance(db, addr, "FUD")
	if err != nil {
		t.Fatalf("cannot read balance: %+v", err)
	}
	return amount
}

func TestEscrowLifecycle(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()
	verifier := dapprtest.NewCondition()

	db := store.MemStore()
	h := newTestHandlers()

	// Initialize with three declared milestones.
	res, err := h.init.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitializeMsg{
		Recipient:       recipient.Address(),
		Ticker:          "FUD",
		MilestonesCount: 3,
	}})
	assert.Nil(t, err)
	key := res.Data
	assert.Equal(t, Key(creator.Address(), recipient.Address()), key)

	esc := h.escrow(t, db, key)
	assert.Equal(t, EscrowStatusInitialized, esc.Status)
	assert.Equal(t, Condition(key).Address(), esc.Address)
	assert.Equal(t, dappr.AsUnixTime(blockTime), esc.CreatedAt)

	// Describe the work.
	week := dappr.AsUnixTime(blockTime)
	for i, m := range []struct {
		amount uint64
		desc   string
	}{
		{100000, "design"},
		{200000, "build"},
		{300000, "ship"},
	} {
		_, err := h.add.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &AddMilestoneMsg{
			EscrowID:    key,
			Index:       uint32(i),
			Amount:      m.amount,
			Deadline:    week.Add(time.Duration(i+1) * 7 * 24 * time.Hour),
			Description: m.desc,
		}})
		assert.Nil(t, err)
	}

	// Fund the whole amount at once.
	assert.Nil(t, h.ctrl.IssueCoins(db, creator.Address(), coin.NewCoin(600000, "FUD")))
	_, err = h.fund.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &FundMsg{
		EscrowID: key,
		Amount:   600000,
	}})
	assert.Nil(t, err)

	esc = h.escrow(t, db, key)
	assert.Equal(t, EscrowStatusFunded, esc.Status)
	assert.Equal(t, uint64(600000), esc.TotalAmount)
	assert.Equal(t, uint64(600000), h.balance(t, db, esc.Address))
	assert.Equal(t, uint64(0), h.balance(t, db, creator.Address()))

	// Releasing before completion must not move anything.
	_, err = h.release.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &ReleaseFundsMsg{
		EscrowID: key, Index: 1, Destination: recipient.Address(),
	}})
	assert.IsErr(t, errors.ErrState, err)
	assert.Equal(t, uint64(0), h.balance(t, db, recipient.Address()))

	// Verify and pay out the first milestone.
	_, err = h.complete.Deliver(authCtx(verifier), db, &dapprtest.Tx{Msg: &CompleteMilestoneMsg{
		EscrowID: key, Index: 0,
	}})
	assert.Nil(t, err)
	assert.Equal(t, MilestoneStatusCompleted, h.milestone(t, db, key, 0).Status)

	_, err = h.release.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &ReleaseFundsMsg{
		EscrowID: key, Index: 0, Destination: recipient.Address(),
	}})
	assert.Nil(t, err)
	assert.Equal(t, uint64(100000), h.balance(t, db, recipient.Address()))
	assert.Equal(t, MilestoneStatusPaid, h.milestone(t, db, key, 0).Status)
	assert.Equal(t, uint64(100000), h.escrow(t, db, key).ReleasedAmount)

	// A second release of the same milestone never succeeds.
	_, err = h.release.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &ReleaseFundsMsg{
		EscrowID: key, Index: 0,
	}})
	assert.IsErr(t, errors.ErrState, err)
	assert.Equal(t, uint64(100000), h.balance(t, db, recipient.Address()))

	// Pay the remaining milestones; the escrow closes with the last one.
	for _, index := range []uint32{1, 2} {
		_, err = h.complete.Deliver(authCtx(verifier), db, &dapprtest.Tx{Msg: &CompleteMilestoneMsg{
			EscrowID: key, Index: index,
		}})
		assert.Nil(t, err)
		_, err = h.release.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &ReleaseFundsMsg{
			EscrowID: key, Index: index,
		}})
		assert.Nil(t, err)
	}

	esc = h.escrow(t, db, key)
	assert.Equal(t, EscrowStatusCompleted, esc.Status)
	assert.Equal(t, uint64(600000), esc.ReleasedAmount)
	assert.Equal(t, uint32(3), esc.MilestonesPaid)
	assert.Equal(t, uint64(600000), h.balance(t, db, recipient.Address()))
	assert.Equal(t, uint64(0), h.balance(t, db, esc.Address))
}

func TestInitializeEscrow(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()

	cases := map[string]struct {
		signers []dappr.Condition
		msg     *InitializeMsg
		setup   func(t *testing.T, db dappr.KVStore, h testHandlers)
		wantErr *errors.Error
	}{
		"happy path": {
			signers: []dappr.Condition{creator},
			msg:     &InitializeMsg{Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 5},
		},
		"no signer": {
			msg:     &InitializeMsg{Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 5},
			wantErr: errors.ErrUnauthorized,
		},
		"creator as recipient": {
			signers: []dappr.Condition{creator},
			msg:     &InitializeMsg{Recipient: creator.Address(), Ticker: "FUD", MilestonesCount: 5},
			wantErr: errors.ErrInput,
		},
		"second escrow for the same pair": {
			signers: []dappr.Condition{creator},
			msg:     &InitializeMsg{Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 5},
			setup: func(t *testing.T, db dappr.KVStore, h testHandlers) {
				_, err := h.init.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitializeMsg{
					Recipient: recipient.Address(), Ticker: "BTC", MilestonesCount: 1,
				}})
				assert.Nil(t, err)
			},
			wantErr: errors.ErrDuplicate,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			h := newTestHandlers()
			if tc.setup != nil {
				tc.setup(t, db, h)
			}

			ctx := authCtx(tc.signers...)
			if _, err := h.init.Check(ctx, db, &dapprtest.Tx{Msg: tc.msg}); tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
			} else {
				assert.Nil(t, err)
			}
			_, err := h.init.Deliver(ctx, db, &dapprtest.Tx{Msg: tc.msg})
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
		})
	}
}

func TestAddMilestone(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()
	stranger := dapprtest.NewCondition()

	deadline := dappr.AsUnixTime(blockTime.Add(7 * 24 * time.Hour))

	cases := map[string]struct {
		signers []dappr.Condition
		msg     *AddMilestoneMsg
		fund    bool
		setup   func(t *testing.T, db dappr.KVStore, h testHandlers, key []byte)
		wantErr *errors.Error
	}{
		"happy path": {
			signers: []dappr.Condition{creator},
			msg:     &AddMilestoneMsg{Index: 0, Amount: 100, Deadline: deadline, Description: "design"},
		},
		"not the creator": {
			signers: []dappr.Condition{stranger},
			msg:     &AddMilestoneMsg{Index: 0, Amount: 100, Deadline: deadline},
			wantErr: errors.ErrUnauthorized,
		},
		"unknown escrow": {
			signers: []dappr.Condition{creator},
			msg:     &AddMilestoneMsg{EscrowID: []byte("no-such-escrow"), Index: 0, Amount: 100, Deadline: deadline},
			wantErr: errors.ErrNotFound,
		},
		"index out of declared range": {
			signers: []dappr.Condition{creator},
			msg:     &AddMilestoneMsg{Index: 3, Amount: 100, Deadline: deadline},
			wantErr: errors.ErrInput,
		},
		"index out of range wins over status": {
			signers: []dappr.Condition{creator},
			msg:     &AddMilestoneMsg{Index: 3, Amount: 100, Deadline: deadline},
			fund:    true,
			wantErr: errors.ErrInput,
		},
		"funded escrow rejects new milestones": {
			signers: []dappr.Condition{creator},
			msg:     &AddMilestoneMsg{Index: 0, Amount: 100, Deadline: deadline},
			fund:    true,
			wantErr: errors.ErrState,
		},
		"deadline not in the future": {
			signers: []dappr.Condition{creator},
			msg:     &AddMilestoneMsg{Index: 0, Amount: 100, Deadline: dappr.AsUnixTime(blockTime)},
			wantErr: errors.ErrInput,
		},
		"duplicate milestone": {
			signers: []dappr.Condition{creator},
			msg:     &AddMilestoneMsg{Index: 0, Amount: 100, Deadline: deadline},
			setup: func(t *testing.T, db dappr.KVStore, h testHandlers, key []byte) {
				_, err := h.add.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &AddMilestoneMsg{
					EscrowID: key, Index: 0, Amount: 50, Deadline: deadline,
				}})
				assert.Nil(t, err)
			},
			wantErr: errors.ErrDuplicate,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			h := newTestHandlers()

			res, err := h.init.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitializeMsg{
				Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 3,
			}})
			assert.Nil(t, err)
			key := res.Data

			if tc.fund {
				assert.Nil(t, h.ctrl.IssueCoins(db, creator.Address(), coin.NewCoin(1000, "FUD")))
				_, err := h.fund.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &FundMsg{EscrowID: key, Amount: 1000}})
				assert.Nil(t, err)
			}
			if tc.setup != nil {
				tc.setup(t, db, h, key)
			}

			msg := *tc.msg
			if msg.EscrowID == nil {
				msg.EscrowID = key
			}
			_, err = h.add.Deliver(authCtx(tc.signers...), db, &dapprtest.Tx{Msg: &msg})
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)

			mst := h.milestone(t, db, key, msg.Index)
			assert.Equal(t, MilestoneStatusPending, mst.Status)
			assert.Equal(t, msg.Amount, mst.Amount)
			assert.Equal(t, dappr.AsUnixTime(blockTime), mst.CreatedAt)
		})
	}
}

func TestFundEscrow(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()
	funder := dapprtest.NewCondition()

	cases := map[string]struct {
		balance uint64
		amount  uint64
		refund  bool
		wantErr *errors.Error
	}{
		"happy path": {
			balance: 1000,
			amount:  600,
		},
		"third party funder with exact balance": {
			balance: 600,
			amount:  600,
		},
		"insufficient balance": {
			balance: 100,
			amount:  600,
			wantErr: errors.ErrAmount,
		},
		"already funded": {
			balance: 2000,
			amount:  600,
			refund:  true,
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			h := newTestHandlers()

			res, err := h.init.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitializeMsg{
				Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 1,
			}})
			assert.Nil(t, err)
			key := res.Data

			assert.Nil(t, h.ctrl.IssueCoins(db, funder.Address(), coin.NewCoin(tc.balance, "FUD")))
			if tc.refund {
				_, err := h.fund.Deliver(authCtx(funder), db, &dapprtest.Tx{Msg: &FundMsg{EscrowID: key, Amount: tc.amount}})
				assert.Nil(t, err)
			}

			_, err = h.fund.Deliver(authCtx(funder), db, &dapprtest.Tx{Msg: &FundMsg{EscrowID: key, Amount: tc.amount}})
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)

			esc := h.escrow(t, db, key)
			assert.Equal(t, EscrowStatusFunded, esc.Status)
			assert.Equal(t, tc.amount, esc.TotalAmount)
			assert.Equal(t, tc.amount, h.balance(t, db, esc.Address))
			assert.Equal(t, tc.balance-tc.amount, h.balance(t, db, funder.Address()))
		})
	}
}

func TestCompleteMilestone(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()
	verifier := dapprtest.NewCondition()

	db := store.MemStore()
	h := newTestHandlers()

	res, err := h.init.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitializeMsg{
		Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 2,
	}})
	assert.Nil(t, err)
	key := res.Data

	deadline := dappr.AsUnixTime(blockTime.Add(24 * time.Hour))
	_, err = h.add.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &AddMilestoneMsg{
		EscrowID: key, Index: 0, Amount: 100, Deadline: deadline,
	}})
	assert.Nil(t, err)

	// Completion requires a funded escrow.
	_, err = h.complete.Deliver(authCtx(verifier), db, &dapprtest.Tx{Msg: &CompleteMilestoneMsg{EscrowID: key, Index: 0}})
	assert.IsErr(t, errors.ErrState, err)

	assert.Nil(t, h.ctrl.IssueCoins(db, creator.Address(), coin.NewCoin(100, "FUD")))
	_, err = h.fund.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &FundMsg{EscrowID: key, Amount: 100}})
	assert.Nil(t, err)

	// A milestone that was never added cannot be completed.
	_, err = h.complete.Deliver(authCtx(verifier), db, &dapprtest.Tx{Msg: &CompleteMilestoneMsg{EscrowID: key, Index: 1}})
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = h.complete.Deliver(authCtx(verifier), db, &dapprtest.Tx{Msg: &CompleteMilestoneMsg{EscrowID: key, Index: 0}})
	assert.Nil(t, err)
	mst := h.milestone(t, db, key, 0)
	assert.Equal(t, MilestoneStatusCompleted, mst.Status)
	assert.Equal(t, dappr.AsUnixTime(blockTime), mst.CompletedAt)

	// Completing twice is rejected.
	_, err = h.complete.Deliver(authCtx(verifier), db, &dapprtest.Tx{Msg: &CompleteMilestoneMsg{EscrowID: key, Index: 0}})
	assert.IsErr(t, errors.ErrState, err)
}

func TestCompleteMilestoneRequiresSigner(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()

	db := store.MemStore()
	h := newTestHandlers()

	res, err := h.init.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitializeMsg{
		Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 1,
	}})
	assert.Nil(t, err)
	key := res.Data

	deadline := dappr.AsUnixTime(blockTime.Add(24 * time.Hour))
	_, err = h.add.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &AddMilestoneMsg{
		EscrowID: key, Index: 0, Amount: 100, Deadline: deadline,
	}})
	assert.Nil(t, err)
	assert.Nil(t, h.ctrl.IssueCoins(db, creator.Address(), coin.NewCoin(100, "FUD")))
	_, err = h.fund.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &FundMsg{EscrowID: key, Amount: 100}})
	assert.Nil(t, err)

	// An anonymous caller cannot verify work.
	_, err = h.complete.Deliver(authCtx(), db, &dapprtest.Tx{Msg: &CompleteMilestoneMsg{EscrowID: key, Index: 0}})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, MilestoneStatusPending, h.milestone(t, db, key, 0).Status)
}

// TestLifecycleEmitsEvents walks one milestone from creation to payout
// and asserts every state change is reported back to the caller.
func TestLifecycleEmitsEvents(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()
	verifier := dapprtest.NewCondition()

	db := store.MemStore()
	h := newTestHandlers()

	res, err := h.init.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitializeMsg{
		Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 1,
	}})
	assert.Nil(t, err)
	key := res.Data
	assert.Equal(t, []dappr.Event{
		dappr.EscrowCreated{Escrow: key, Creator: creator.Address(), Recipient: recipient.Address()},
	}, res.Events)

	deadline := dappr.AsUnixTime(blockTime.Add(24 * time.Hour))
	_, err = h.add.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &AddMilestoneMsg{
		EscrowID: key, Index: 0, Amount: 700, Deadline: deadline,
	}})
	assert.Nil(t, err)
	assert.Nil(t, h.ctrl.IssueCoins(db, creator.Address(), coin.NewCoin(700, "FUD")))
	_, err = h.fund.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &FundMsg{EscrowID: key, Amount: 700}})
	assert.Nil(t, err)

	mstKey := MilestoneKey(key, 0)
	res, err = h.complete.Deliver(authCtx(verifier), db, &dapprtest.Tx{Msg: &CompleteMilestoneMsg{EscrowID: key, Index: 0}})
	assert.Nil(t, err)
	assert.Equal(t, []dappr.Event{
		dappr.MilestoneCompleted{Escrow: key, Milestone: mstKey, Index: 0, Amount: 700},
	}, res.Events)
	// The record keeps who verified the work.
	assert.Equal(t, verifier.Address(), h.milestone(t, db, key, 0).VerifiedBy)

	res, err = h.release.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &ReleaseFundsMsg{EscrowID: key, Index: 0}})
	assert.Nil(t, err)
	assert.Equal(t, []dappr.Event{
		dappr.FundsReleased{Escrow: key, Milestone: mstKey, Amount: 700, Recipient: recipient.Address()},
	}, res.Events)
}

func TestReleaseDestinationMustBeRecipient(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()
	other := dapprtest.NewCondition()

	db := store.MemStore()
	h := newTestHandlers()

	res, err := h.init.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitializeMsg{
		Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 1,
	}})
	assert.Nil(t, err)
	key := res.Data

	deadline := dappr.AsUnixTime(blockTime.Add(24 * time.Hour))
	_, err = h.add.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &AddMilestoneMsg{
		EscrowID: key, Index: 0, Amount: 100, Deadline: deadline,
	}})
	assert.Nil(t, err)
	assert.Nil(t, h.ctrl.IssueCoins(db, creator.Address(), coin.NewCoin(100, "FUD")))
	_, err = h.fund.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &FundMsg{EscrowID: key, Amount: 100}})
	assert.Nil(t, err)
	_, err = h.complete.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &CompleteMilestoneMsg{EscrowID: key, Index: 0}})
	assert.Nil(t, err)

	_, err = h.release.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &ReleaseFundsMsg{
		EscrowID: key, Index: 0, Destination: other.Address(),
	}})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, uint64(0), h.balance(t, db, other.Address()))
	assert.Equal(t, uint64(0), h.balance(t, db, recipient.Address()))
}

// TestReleasedNeverExceedsTotal runs a random sequence of operations and
// asserts the accounting invariant after every step: the sum released
// can never pass the frozen total, no matter the order or outcome of
// the calls.
func TestReleasedNeverExceedsTotal(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()

	db := store.MemStore()
	h := newTestHandlers()

	const count = 8
	res, err := h.init.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitializeMsg{
		Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: count,
	}})
	assert.Nil(t, err)
	key := res.Data

	deadline := dappr.AsUnixTime(blockTime.Add(24 * time.Hour))
	for i := uint32(0); i < count; i++ {
		_, err := h.add.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &AddMilestoneMsg{
			EscrowID: key, Index: i, Amount: 300, Deadline: deadline,
		}})
		assert.Nil(t, err)
	}

	// Milestones sum to 2400 but only 1000 is locked. Only three of the
	// eight releases can ever go through.
	assert.Nil(t, h.ctrl.IssueCoins(db, creator.Address(), coin.NewCoin(1000, "FUD")))
	_, err = h.fund.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &FundMsg{EscrowID: key, Amount: 1000}})
	assert.Nil(t, err)

	rng := rand.New(rand.NewSource(42))
	released := 0
	for i := 0; i < 500; i++ {
		index := uint32(rng.Intn(count + 2)) // includes out-of-range indexes
		var opErr error
		if rng.Intn(2) == 0 {
			_, opErr = h.complete.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &CompleteMilestoneMsg{EscrowID: key, Index: index}})
		} else {
			_, opErr = h.release.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &ReleaseFundsMsg{EscrowID: key, Index: index}})
			if opErr == nil {
				released++
			}
		}
		_ = opErr // failures are expected, the invariant must hold regardless

		esc := h.escrow(t, db, key)
		if esc.ReleasedAmount > esc.TotalAmount {
			t.Fatalf("step %d: released %d exceeds total %d", i, esc.ReleasedAmount, esc.TotalAmount)
		}
	}

	if released != 3 {
		t.Fatalf("want 3 successful releases, got %d", released)
	}
	esc := h.escrow(t, db, key)
	assert.Equal(t, uint64(900), esc.ReleasedAmount)
	assert.Equal(t, uint64(900), h.balance(t, db, recipient.Address()))
}
