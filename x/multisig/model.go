package multisig

import (
	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/errors"
	"github.com/dappr-network/dappr/orm"
)

// minSigners is the smallest allowed signer group.
const minSigners = 2

var _ orm.Model = (*Withdrawal)(nil)

// Condition returns the condition the withdrawal account of an escrow is
// derived from.
func Condition(escrowKey []byte) dappr.Condition {
	return dappr.NewCondition("multisig", "seed", escrowKey)
}

// Validate ensures the withdrawal record is well formed.
func (w *Withdrawal) Validate() error {
	if len(w.Escrow) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow key")
	}
	if len(w.Signers) < minSigners {
		return errors.Wrapf(errors.ErrModel, "at least %d signers required", minSigners)
	}
	for i, s := range w.Signers {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "signer %d", i)
		}
	}
	if len(w.Approvals) != len(w.Signers) {
		return errors.Wrap(errors.ErrModel, "one approval slot per signer required")
	}
	if w.Threshold < minSigners || int(w.Threshold) > len(w.Signers) {
		return errors.Wrapf(errors.ErrModel, "threshold %d", w.Threshold)
	}
	if w.CreatedAt.IsZero() {
		return errors.Wrap(errors.ErrEmpty, "created at")
	}
	return nil
}

// Copy produces an independent copy of the withdrawal.
func (w *Withdrawal) Copy() orm.CloneableData {
	signers := make([]dappr.Address, len(w.Signers))
	for i, s := range w.Signers {
		signers[i] = s.Clone()
	}
	return &Withdrawal{
		Escrow:    append([]byte(nil), w.Escrow...),
		Signers:   signers,
		Approvals: append([]bool(nil), w.Approvals...),
		Threshold: w.Threshold,
		CreatedAt: w.CreatedAt,
		Executed:  w.Executed,
	}
}

// SignerIndex returns the position of an address within the signer
// group, or -1 when the address is not part of it.
func (w *Withdrawal) SignerIndex(addr dappr.Address) int {
	for i, s := range w.Signers {
		if s.Equals(addr) {
			return i
		}
	}
	return -1
}

// ApprovalCount returns how many signers approved so far.
func (w *Withdrawal) ApprovalCount() int {
	var n int
	for _, ok := range w.Approvals {
		if ok {
			n++
		}
	}
	return n
}

// NewBucket returns a bucket for keeping withdrawal records, one per
// escrow key.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(orm.NewBucket("wdraw", orm.NewSimpleObj(nil, &Withdrawal{})))
}
