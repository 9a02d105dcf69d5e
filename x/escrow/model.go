package escrow

import (
	"encoding/binary"

	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/errors"
	"github.com/dappr-network/dappr/orm"
)

const (
	// maxMilestones bounds the milestone count of a single escrow.
	maxMilestones = 255
	// maxDescriptionSize bounds milestone descriptions, in bytes.
	maxDescriptionSize = 256
)

var _ orm.Model = (*Escrow)(nil)
var _ orm.Model = (*Milestone)(nil)

// Key returns the store key of the escrow for a creator/recipient pair.
// One pair owns at most one escrow.
func Key(creator, recipient dappr.Address) []byte {
	key := make([]byte, 0, len(creator)+len(recipient))
	key = append(key, creator...)
	return append(key, recipient...)
}

// Condition returns the condition the escrow-held account is derived
// from. It is a pure function of the escrow key.
func Condition(key []byte) dappr.Condition {
	return dappr.NewCondition("escrow", "pair", key)
}

// MilestoneKey returns the store key of one milestone, the escrow key
// extended with the big endian index.
func MilestoneKey(escrowKey []byte, index uint32) []byte {
	key := make([]byte, 0, len(escrowKey)+4)
	key = append(key, escrowKey...)
	return binary.BigEndian.AppendUint32(key, index)
}

// Validate ensures the escrow record is well formed.
func (e *Escrow) Validate() error {
	if err := e.Creator.Validate(); err != nil {
		return errors.Wrap(err, "creator")
	}
	if err := e.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if e.Creator.Equals(e.Recipient) {
		return errors.Wrap(errors.ErrModel, "creator and recipient are the same")
	}
	if e.Ticker == "" {
		return errors.Wrap(errors.ErrEmpty, "ticker")
	}
	if err := e.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if e.MilestonesCount == 0 || e.MilestonesCount > maxMilestones {
		return errors.Wrapf(errors.ErrModel, "milestones count %d", e.MilestonesCount)
	}
	if e.MilestonesPaid > e.MilestonesCount {
		return errors.Wrap(errors.ErrModel, "more milestones paid than declared")
	}
	if e.ReleasedAmount > e.TotalAmount {
		return errors.Wrap(errors.ErrModel, "released more than total")
	}
	if e.Status < EscrowStatusInitialized || e.Status > EscrowStatusCancelled {
		return errors.Wrapf(errors.ErrModel, "status %d", e.Status)
	}
	if e.CreatedAt.IsZero() {
		return errors.Wrap(errors.ErrEmpty, "created at")
	}
	return nil
}

// Copy produces an independent copy of the escrow.
func (e *Escrow) Copy() orm.CloneableData {
	return &Escrow{
		Creator:         e.Creator.Clone(),
		Recipient:       e.Recipient.Clone(),
		Ticker:          e.Ticker,
		Address:         e.Address.Clone(),
		TotalAmount:     e.TotalAmount,
		ReleasedAmount:  e.ReleasedAmount,
		MilestonesCount: e.MilestonesCount,
		MilestonesPaid:  e.MilestonesPaid,
		Status:          e.Status,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// Validate ensures the milestone record is well formed.
func (m *Milestone) Validate() error {
	if len(m.Escrow) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow key")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrModel, "zero amount")
	}
	if len(m.Description) > maxDescriptionSize {
		return errors.Wrap(errors.ErrModel, "description too long")
	}
	if m.Status < MilestoneStatusPending || m.Status > MilestoneStatusPaid {
		return errors.Wrapf(errors.ErrModel, "status %d", m.Status)
	}
	if m.CreatedAt.IsZero() {
		return errors.Wrap(errors.ErrEmpty, "created at")
	}
	return nil
}

// Copy produces an independent copy of the milestone.
func (m *Milestone) Copy() orm.CloneableData {
	return &Milestone{
		Escrow:      append([]byte(nil), m.Escrow...),
		Index:       m.Index,
		Amount:      m.Amount,
		Deadline:    m.Deadline,
		Description: m.Description,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		CompletedAt: m.CompletedAt,
		PaidAt:      m.PaidAt,
		VerifiedBy:  m.VerifiedBy.Clone(),
	}
}

// NewBucket returns a bucket for keeping escrow records.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(orm.NewBucket("esc", orm.NewSimpleObj(nil, &Escrow{})))
}

// NewMilestoneBucket returns a bucket for keeping milestone records.
func NewMilestoneBucket() orm.ModelBucket {
	return orm.NewModelBucket(orm.NewBucket("mstone", orm.NewSimpleObj(nil, &Milestone{})))
}
