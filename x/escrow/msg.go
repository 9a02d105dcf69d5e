package escrow

import (
	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/errors"
)

const (
	pathInitialize        = "escrow/initialize"
	pathAddMilestone      = "escrow/add_milestone"
	pathFund              = "escrow/fund"
	pathCompleteMilestone = "escrow/complete_milestone"
	pathReleaseFunds      = "escrow/release_funds"
)

var _ dappr.Msg = (*InitializeMsg)(nil)
var _ dappr.Msg = (*AddMilestoneMsg)(nil)
var _ dappr.Msg = (*FundMsg)(nil)
var _ dappr.Msg = (*CompleteMilestoneMsg)(nil)
var _ dappr.Msg = (*ReleaseFundsMsg)(nil)

// Path fulfills dappr.Msg interface to allow routing
func (InitializeMsg) Path() string {
	return pathInitialize
}

// Validate makes sure that this is sensible
func (m *InitializeMsg) Validate() error {
	if err := m.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if m.Ticker == "" {
		return errors.Wrap(errors.ErrEmpty, "ticker")
	}
	if m.MilestonesCount == 0 || m.MilestonesCount > maxMilestones {
		return errors.Wrapf(errors.ErrMsg, "milestones count %d", m.MilestonesCount)
	}
	return nil
}

// Path fulfills dappr.Msg interface to allow routing
func (AddMilestoneMsg) Path() string {
	return pathAddMilestone
}

// Validate makes sure that this is sensible
func (m *AddMilestoneMsg) Validate() error {
	if len(m.EscrowID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrMsg, "zero amount")
	}
	if m.Deadline == 0 {
		// Zero deadline dates to 1970-01-01 which is always in the
		// past. Most likely the value was simply not provided.
		return errors.Wrap(errors.ErrInput, "deadline is required")
	}
	if err := m.Deadline.Validate(); err != nil {
		return errors.Wrap(err, "deadline")
	}
	if len(m.Description) > maxDescriptionSize {
		return errors.Wrapf(errors.ErrMsg, "description longer than %d bytes", maxDescriptionSize)
	}
	return nil
}

// Path fulfills dappr.Msg interface to allow routing
func (FundMsg) Path() string {
	return pathFund
}

// Validate makes sure that this is sensible
func (m *FundMsg) Validate() error {
	if len(m.EscrowID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrMsg, "zero amount")
	}
	return nil
}

// Path fulfills dappr.Msg interface to allow routing
func (CompleteMilestoneMsg) Path() string {
	return pathCompleteMilestone
}

// Validate makes sure that this is sensible
func (m *CompleteMilestoneMsg) Validate() error {
	if len(m.EscrowID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	return nil
}

// Path fulfills dappr.Msg interface to allow routing
func (ReleaseFundsMsg) Path() string {
	return pathReleaseFunds
}

// Validate makes sure that this is sensible
func (m *ReleaseFundsMsg) Validate() error {
	if len(m.EscrowID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	if m.Destination != nil {
		if err := m.Destination.Validate(); err != nil {
			return errors.Wrap(err, "destination")
		}
	}
	return nil
}
