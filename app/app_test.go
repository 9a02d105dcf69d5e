package app

import (
	"context"
	"testing"
	"time"

	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/coin"
	"github.com/dappr-network/dappr/dapprtest"
	"github.com/dappr-network/dappr/dapprtest/assert"
	"github.com/dappr-network/dappr/errors"
	"github.com/dappr-network/dappr/store"
	"github.com/dappr-network/dappr/x/cash"
	"github.com/dappr-network/dappr/x/escrow"
	"github.com/dappr-network/dappr/x/multisig"
	"github.com/dappr-network/dappr/x/utils"
	"golang.org/x/sync/errgroup"
)

var blockTime = time.Unix(1700000000, 0)

var ctxAuth = &dapprtest.CtxAuth{Key: "auth"}

func authCtx(signers ...dappr.Condition) dappr.Context {
	ctx := dappr.WithBlockTime(context.Background(), blockTime)
	return ctxAuth.SetConditions(ctx, signers...)
}

// newTestApp assembles the full engine: all extension routes behind the
// standard decorator stack on a fresh in-memory store.
func newTestApp() (*App, dappr.CacheableKVStore, cash.BaseController) {
	db := store.MemStore()
	ctrl := cash.NewController(cash.NewBucket())

	r := NewRouter()
	escrow.RegisterRoutes(r, ctxAuth, ctrl)
	multisig.RegisterRoutes(r, ctxAuth, ctrl)

	stack := ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewSavepoint().OnCheck().OnDeliver(),
	).WithHandler(r)

	return NewApp(db, stack), db, ctrl
}

// fundedEscrow drives the engine through initialize, milestone setup and
// funding, returning the escrow key.
func fundedEscrow(t testing.TB, a *App, ctrl cash.BaseController, db dappr.KVStore, creator, recipient dappr.Condition, amounts ...uint64) []byte {
	t.Helper()

	res, err := a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: &escrow.InitializeMsg{
		Recipient:       recipient.Address(),
		Ticker:          "FUD",
		MilestonesCount: uint32(len(amounts)),
	}})
	if err != nil {
		t.Fatalf("cannot initialize: %+v", err)
	}
	key := res.Data

	deadline := dappr.AsUnixTime(blockTime.Add(24 * time.Hour))
	var total uint64
	for i, amount := range amounts {
		_, err := a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: &escrow.AddMilestoneMsg{
			EscrowID: key, Index: uint32(i), Amount: amount, Deadline: deadline,
		}})
		if err != nil {
			t.Fatalf("cannot add milestone %d: %+v", i, err)
		}
		total += amount
	}

	if err := ctrl.IssueCoins(db, creator.Address(), coin.NewCoin(total, "FUD")); err != nil {
		t.Fatalf("cannot seed creator balance: %+v", err)
	}
	if _, err := a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: &escrow.FundMsg{EscrowID: key, Amount: total}}); err != nil {
		t.Fatalf("cannot fund: %+v", err)
	}
	return key
}

func TestAppCheckDiscardsWrites(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()

	a, db, _ := newTestApp()

	msg := &escrow.InitializeMsg{Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 1}
	_, err := a.Check(authCtx(creator), &dapprtest.Tx{Msg: msg})
	assert.Nil(t, err)

	// A dry run must not create the escrow, so delivery still can.
	key := escrow.Key(creator.Address(), recipient.Address())
	var esc escrow.Escrow
	assert.IsErr(t, errors.ErrNotFound, escrow.NewBucket().One(db, key, &esc))

	_, err = a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: msg})
	assert.Nil(t, err)
	assert.Nil(t, escrow.NewBucket().One(db, key, &esc))
}

func TestAppDiscardsFailedDelivery(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()

	a, db, _ := newTestApp()

	// Funding without balance must fail and leave no trace of the
	// attempt, the escrow stays fundable.
	res, err := a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: &escrow.InitializeMsg{
		Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 1,
	}})
	assert.Nil(t, err)
	key := res.Data

	_, err = a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: &escrow.FundMsg{EscrowID: key, Amount: 100}})
	assert.IsErr(t, errors.ErrEmpty, err)

	var esc escrow.Escrow
	assert.Nil(t, escrow.NewBucket().One(db, key, &esc))
	assert.Equal(t, escrow.EscrowStatusInitialized, esc.Status)
	assert.Equal(t, uint64(0), esc.TotalAmount)
}

func TestAppRecoversPanics(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()

	a, _, _ := newTestApp()

	res, err := a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: &escrow.InitializeMsg{
		Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 1,
	}})
	assert.Nil(t, err)

	// Deadline checks panic without a block time on the context; the
	// Recovery decorator turns that into an error response.
	ctx := ctxAuth.SetConditions(context.Background(), creator)
	_, err = a.Deliver(ctx, &dapprtest.Tx{Msg: &escrow.AddMilestoneMsg{
		EscrowID: res.Data, Index: 0, Amount: 100, Deadline: dappr.AsUnixTime(blockTime),
	}})
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestConcurrentFundHasOneWinner(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()

	a, db, ctrl := newTestApp()

	res, err := a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: &escrow.InitializeMsg{
		Recipient: recipient.Address(), Ticker: "FUD", MilestonesCount: 1,
	}})
	assert.Nil(t, err)
	key := res.Data

	deadline := dappr.AsUnixTime(blockTime.Add(24 * time.Hour))
	_, err = a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: &escrow.AddMilestoneMsg{
		EscrowID: key, Index: 0, Amount: 500, Deadline: deadline,
	}})
	assert.Nil(t, err)

	const racers = 8
	// Every attempt is backed by enough funds, so only the escrow status
	// decides who wins.
	assert.Nil(t, ctrl.IssueCoins(db, creator.Address(), coin.NewCoin(racers*500, "FUD")))

	wins := make(chan struct{}, racers)
	var g errgroup.Group
	for i := 0; i < racers; i++ {
		g.Go(func() error {
			_, err := a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: &escrow.FundMsg{EscrowID: key, Amount: 500}})
			switch {
			case err == nil:
				wins <- struct{}{}
				return nil
			case errors.ErrState.Is(err):
				// Lost the race, the escrow was already funded.
				return nil
			default:
				return err
			}
		})
	}
	assert.Nil(t, g.Wait())
	close(wins)

	var won int
	for range wins {
		won++
	}
	assert.Equal(t, 1, won)

	var esc escrow.Escrow
	assert.Nil(t, escrow.NewBucket().One(db, key, &esc))
	assert.Equal(t, escrow.EscrowStatusFunded, esc.Status)
	assert.Equal(t, uint64(500), esc.TotalAmount)

	// Exactly one transfer went through.
	locked, err := ctrl.Balance(db, esc.Address, "FUD")
	assert.Nil(t, err)
	assert.Equal(t, uint64(500), locked)
	left, err := ctrl.Balance(db, creator.Address(), "FUD")
	assert.Nil(t, err)
	assert.Equal(t, uint64((racers-1)*500), left)
}

func TestConcurrentReleaseHasOneWinner(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()
	verifier := dapprtest.NewCondition()

	a, db, ctrl := newTestApp()
	key := fundedEscrow(t, a, ctrl, db, creator, recipient, 500)

	_, err := a.Deliver(authCtx(verifier), &dapprtest.Tx{Msg: &escrow.CompleteMilestoneMsg{EscrowID: key, Index: 0}})
	assert.Nil(t, err)

	const racers = 8
	wins := make(chan struct{}, racers)
	var g errgroup.Group
	for i := 0; i < racers; i++ {
		g.Go(func() error {
			_, err := a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: &escrow.ReleaseFundsMsg{EscrowID: key, Index: 0}})
			switch {
			case err == nil:
				wins <- struct{}{}
				return nil
			case errors.ErrState.Is(err):
				// Lost the race, the milestone was already paid.
				return nil
			default:
				return err
			}
		})
	}
	assert.Nil(t, g.Wait())
	close(wins)

	var won int
	for range wins {
		won++
	}
	assert.Equal(t, 1, won)

	got, err := ctrl.Balance(db, recipient.Address(), "FUD")
	assert.Nil(t, err)
	assert.Equal(t, uint64(500), got)
}

func TestConcurrentSigningLosesNoApprovals(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()

	a, db, ctrl := newTestApp()
	key := fundedEscrow(t, a, ctrl, db, creator, recipient, 1000)

	const group = 5
	signers := make([]dappr.Condition, group)
	addrs := make([]dappr.Address, group)
	for i := range signers {
		signers[i] = dapprtest.NewCondition()
		addrs[i] = signers[i].Address()
	}

	_, err := a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: &multisig.InitiateWithdrawalMsg{
		EscrowID: key, Signers: addrs, Threshold: group,
	}})
	assert.Nil(t, err)

	var g errgroup.Group
	for _, s := range signers {
		s := s
		g.Go(func() error {
			_, err := a.Deliver(authCtx(s), &dapprtest.Tx{Msg: &multisig.SignWithdrawalMsg{EscrowID: key}})
			return err
		})
	}
	assert.Nil(t, g.Wait())

	var w multisig.Withdrawal
	assert.Nil(t, multisig.NewBucket().One(db, key, &w))
	assert.Equal(t, group, w.ApprovalCount())

	// With every approval in place the withdrawal executes.
	_, err = a.Deliver(authCtx(creator), &dapprtest.Tx{Msg: &multisig.ExecuteWithdrawalMsg{EscrowID: key}})
	assert.Nil(t, err)
	got, err := ctrl.Balance(db, creator.Address(), "FUD")
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000), got)
}
