package multisig

import (
	"context"
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
	"github.com/dappr-network/dappr/x/escrow"
)

var blockTime = time.Unix(1700000000, 0)

var ctxAuth = &dapprtest.CtxAuth{Key: "auth"}

func authCtx(signers ...dappr.Condition) dappr.Context {
	ctx := dappr.WithBlockTime(context.Background(), blockTime)
	return ctxAuth.SetConditions(ctx, signers...)
}

type testHandlers struct {
	escrows     orm.ModelBucket
	withdrawals orm.ModelBucket
	ctrl        cash.BaseController

	initiate InitiateWithdrawalHandler
	sign     SignWithdrawalHandler
	execute  ExecuteWithdrawalHandler
}

func newTestHandlers() testHandlers {
	escrows := escrow.NewBucket()
	withdrawals := NewBucket()
	ctrl := cash.NewController(cash.NewBucket())
	return testHandlers{
		escrows:     escrows,
		withdrawals: withdrawals,
		ctrl:        ctrl,
		initiate:    InitiateWithdrawalHandler{ctxAuth, escrows, withdrawals},
		sign:        SignWithdrawalHandler{ctxAuth, withdrawals},
		execute:     ExecuteWithdrawalHandler{ctxAuth, escrows, withdrawals, ctrl},
	}
}

// fundedEscrow stores a funded escrow with given total/released amounts
// and seeds the escrow account balance with the difference.
func (h testHandlers) fundedEscrow(t testing.TB, db dappr.KVStore, creator, recipient dappr.Condition, total, released uint64) []byte {
	t.Helper()

	key := escrow.Key(creator.Address(), recipient.Address())
	esc := &escrow.Escrow{
		Creator:         creator.Address(),
		Recipient:       recipient.Address(),
		Ticker:          "FUD",
		Address:         escrow.Condition(key).Address(),
		TotalAmount:     total,
		ReleasedAmount:  released,
		MilestonesCount: 3,
		Status:          escrow.EscrowStatusFunded,
		CreatedAt:       dappr.AsUnixTime(blockTime),
		UpdatedAt:       dappr.AsUnixTime(blockTime),
	}
	if err := h.escrows.Put(db, key, esc); err != nil {
		t.Fatalf("cannot store escrow: %+v", err)
	}
	if remaining := total - released; remaining > 0 {
		if err := h.ctrl.IssueCoins(db, esc.Address, coin.NewCoin(remaining, "FUD")); err != nil {
			t.Fatalf("cannot seed escrow account: %+v", err)
		}
	}
	return key
}

func (h testHandlers) withdrawal(t testing.TB, db dappr.KVStore, key []byte) *Withdrawal {
	t.Helper()
	var w Withdrawal
	if err := h.withdrawals.One(db, key, &w); err != nil {
		t.Fatalf("cannot load withdrawal: %+v", err)
	}
	return &w
}

func TestEmergencyWithdrawal(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()
	s1, s2, s3 := dapprtest.NewCondition(), dapprtest.NewCondition(), dapprtest.NewCondition()
	signers := []dappr.Address{s1.Address(), s2.Address(), s3.Address()}

	db := store.MemStore()
	h := newTestHandlers()

	// 600000 locked, 100000 already paid out.
	key := h.fundedEscrow(t, db, creator, recipient, 600000, 100000)

	res, err := h.initiate.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitiateWithdrawalMsg{
		EscrowID: key, Signers: signers, Threshold: 2,
	}})
	assert.Nil(t, err)
	// The request reports how much is still up for grabs.
	assert.Equal(t, []dappr.Event{
		dappr.EmergencyWithdrawalRequested{Escrow: key, Requester: creator.Address(), Amount: 500000},
	}, res.Events)
	w := h.withdrawal(t, db, key)
	assert.Equal(t, uint32(2), w.Threshold)
	assert.Equal(t, 0, w.ApprovalCount())

	// One approval is below the threshold.
	_, err = h.sign.Deliver(authCtx(s1), db, &dapprtest.Tx{Msg: &SignWithdrawalMsg{EscrowID: key}})
	assert.Nil(t, err)
	_, err = h.execute.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &ExecuteWithdrawalMsg{EscrowID: key}})
	assert.IsErr(t, errors.ErrInput, err)

	// Signing twice with the same signer changes nothing and succeeds.
	_, err = h.sign.Deliver(authCtx(s1), db, &dapprtest.Tx{Msg: &SignWithdrawalMsg{EscrowID: key}})
	assert.Nil(t, err)
	assert.Equal(t, 1, h.withdrawal(t, db, key).ApprovalCount())

	_, err = h.sign.Deliver(authCtx(s2), db, &dapprtest.Tx{Msg: &SignWithdrawalMsg{EscrowID: key}})
	assert.Nil(t, err)

	_, err = h.execute.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &ExecuteWithdrawalMsg{EscrowID: key}})
	assert.Nil(t, err)

	// The creator got the remaining funds and the escrow is closed.
	got, err := h.ctrl.Balance(db, creator.Address(), "FUD")
	assert.Nil(t, err)
	assert.Equal(t, uint64(500000), got)
	var esc escrow.Escrow
	assert.Nil(t, h.escrows.One(db, key, &esc))
	assert.Equal(t, escrow.EscrowStatusCancelled, esc.Status)
	assert.Equal(t, true, h.withdrawal(t, db, key).Executed)

	// A late signature is accepted but has no effect.
	_, err = h.sign.Deliver(authCtx(s3), db, &dapprtest.Tx{Msg: &SignWithdrawalMsg{EscrowID: key}})
	assert.Nil(t, err)
	assert.Equal(t, 2, h.withdrawal(t, db, key).ApprovalCount())

	// Execution happens exactly once.
	_, err = h.execute.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &ExecuteWithdrawalMsg{EscrowID: key}})
	assert.IsErr(t, ErrExecuted, err)
	got, err = h.ctrl.Balance(db, creator.Address(), "FUD")
	assert.Nil(t, err)
	assert.Equal(t, uint64(500000), got)
}

func TestInitiateWithdrawal(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()
	stranger := dapprtest.NewCondition()
	s1, s2, s3 := dapprtest.NewCondition(), dapprtest.NewCondition(), dapprtest.NewCondition()

	cases := map[string]struct {
		signers       []dappr.Address
		threshold     uint32
		requester     dappr.Condition
		status        escrow.EscrowStatus
		wantErr       *errors.Error
		wantThreshold uint32
	}{
		"explicit threshold": {
			signers:       []dappr.Address{s1.Address(), s2.Address(), s3.Address()},
			threshold:     3,
			requester:     creator,
			wantThreshold: 3,
		},
		"default threshold of three signers": {
			signers:       []dappr.Address{s1.Address(), s2.Address(), s3.Address()},
			requester:     creator,
			wantThreshold: 2,
		},
		"default threshold of two signers": {
			signers:       []dappr.Address{s1.Address(), s2.Address()},
			requester:     creator,
			wantThreshold: 2,
		},
		"not the creator": {
			signers:   []dappr.Address{s1.Address(), s2.Address()},
			requester: stranger,
			wantErr:   errors.ErrUnauthorized,
		},
		"single signer": {
			signers:   []dappr.Address{s1.Address()},
			requester: creator,
			wantErr:   errors.ErrMsg,
		},
		"duplicate signer": {
			signers:   []dappr.Address{s1.Address(), s1.Address()},
			requester: creator,
			wantErr:   errors.ErrMsg,
		},
		"threshold of one": {
			signers:   []dappr.Address{s1.Address(), s2.Address()},
			threshold: 1,
			requester: creator,
			wantErr:   errors.ErrMsg,
		},
		"threshold above the group size": {
			signers:   []dappr.Address{s1.Address(), s2.Address()},
			threshold: 3,
			requester: creator,
			wantErr:   errors.ErrMsg,
		},
		"unfunded escrow": {
			signers:   []dappr.Address{s1.Address(), s2.Address()},
			requester: creator,
			status:    escrow.EscrowStatusInitialized,
			wantErr:   errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			h := newTestHandlers()

			key := h.fundedEscrow(t, db, creator, recipient, 1000, 0)
			if tc.status != 0 {
				var esc escrow.Escrow
				assert.Nil(t, h.escrows.One(db, key, &esc))
				esc.Status = tc.status
				assert.Nil(t, h.escrows.Put(db, key, &esc))
			}

			_, err := h.initiate.Deliver(authCtx(tc.requester), db, &dapprtest.Tx{Msg: &InitiateWithdrawalMsg{
				EscrowID: key, Signers: tc.signers, Threshold: tc.threshold,
			}})
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			w := h.withdrawal(t, db, key)
			assert.Equal(t, tc.wantThreshold, w.Threshold)
			assert.Equal(t, len(tc.signers), len(w.Approvals))
			assert.Equal(t, false, w.Executed)
		})
	}
}

func TestInitiateReplacesEarlierRound(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()
	s1, s2, s3 := dapprtest.NewCondition(), dapprtest.NewCondition(), dapprtest.NewCondition()

	db := store.MemStore()
	h := newTestHandlers()
	key := h.fundedEscrow(t, db, creator, recipient, 1000, 0)

	_, err := h.initiate.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitiateWithdrawalMsg{
		EscrowID: key, Signers: []dappr.Address{s1.Address(), s2.Address()},
	}})
	assert.Nil(t, err)
	_, err = h.sign.Deliver(authCtx(s1), db, &dapprtest.Tx{Msg: &SignWithdrawalMsg{EscrowID: key}})
	assert.Nil(t, err)
	assert.Equal(t, 1, h.withdrawal(t, db, key).ApprovalCount())

	// Starting over drops collected approvals and the old group.
	_, err = h.initiate.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitiateWithdrawalMsg{
		EscrowID: key, Signers: []dappr.Address{s2.Address(), s3.Address()}, Threshold: 2,
	}})
	assert.Nil(t, err)
	w := h.withdrawal(t, db, key)
	assert.Equal(t, 0, w.ApprovalCount())
	assert.Equal(t, -1, w.SignerIndex(s1.Address()))

	// The replaced signer can no longer sign.
	_, err = h.sign.Deliver(authCtx(s1), db, &dapprtest.Tx{Msg: &SignWithdrawalMsg{EscrowID: key}})
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestSignWithdrawal(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()
	s1, s2 := dapprtest.NewCondition(), dapprtest.NewCondition()
	stranger := dapprtest.NewCondition()

	db := store.MemStore()
	h := newTestHandlers()
	key := h.fundedEscrow(t, db, creator, recipient, 1000, 0)

	// Without a round there is nothing to sign.
	_, err := h.sign.Deliver(authCtx(s1), db, &dapprtest.Tx{Msg: &SignWithdrawalMsg{EscrowID: key}})
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = h.initiate.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitiateWithdrawalMsg{
		EscrowID: key, Signers: []dappr.Address{s1.Address(), s2.Address()},
	}})
	assert.Nil(t, err)

	_, err = h.sign.Deliver(authCtx(stranger), db, &dapprtest.Tx{Msg: &SignWithdrawalMsg{EscrowID: key}})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	_, err = h.sign.Deliver(authCtx(s2), db, &dapprtest.Tx{Msg: &SignWithdrawalMsg{EscrowID: key}})
	assert.Nil(t, err)
	w := h.withdrawal(t, db, key)
	assert.Equal(t, 1, w.ApprovalCount())
	assert.Equal(t, false, w.Approvals[0])
	assert.Equal(t, true, w.Approvals[1])
}

func TestExecuteRequiresFundedEscrow(t *testing.T) {
	creator := dapprtest.NewCondition()
	recipient := dapprtest.NewCondition()
	s1, s2 := dapprtest.NewCondition(), dapprtest.NewCondition()

	db := store.MemStore()
	h := newTestHandlers()
	key := h.fundedEscrow(t, db, creator, recipient, 1000, 0)

	_, err := h.initiate.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &InitiateWithdrawalMsg{
		EscrowID: key, Signers: []dappr.Address{s1.Address(), s2.Address()},
	}})
	assert.Nil(t, err)
	for _, s := range []dappr.Condition{s1, s2} {
		_, err = h.sign.Deliver(authCtx(s), db, &dapprtest.Tx{Msg: &SignWithdrawalMsg{EscrowID: key}})
		assert.Nil(t, err)
	}

	// Flip the escrow out of Funded behind the round's back.
	var esc escrow.Escrow
	assert.Nil(t, h.escrows.One(db, key, &esc))
	esc.Status = escrow.EscrowStatusCompleted
	esc.ReleasedAmount = esc.TotalAmount
	assert.Nil(t, h.escrows.Put(db, key, &esc))

	_, err = h.execute.Deliver(authCtx(creator), db, &dapprtest.Tx{Msg: &ExecuteWithdrawalMsg{EscrowID: key}})
	assert.IsErr(t, errors.ErrState, err)
}

func TestWithdrawalConditionIsDeterministic(t *testing.T) {
	key := []byte("some-escrow-key")
	a := Condition(key).Address()
	b := Condition(key).Address()
	assert.Equal(t, a, b)
	if a.Equals(Condition([]byte("other-escrow-key")).Address()) {
		t.Fatal("different escrows must derive different addresses")
	}
}

func TestDefaultThreshold(t *testing.T) {
	cases := map[int]uint32{
		2: 2,
		3: 2,
		4: 3,
		5: 4,
		6: 4,
	}
	for n, want := range cases {
		if got := defaultThreshold(n); got != want {
			t.Errorf("defaultThreshold(%d): want %d, got %d", n, want, got)
		}
	}
}
