package multisig

import (
	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/errors"
)

const (
	pathInitiateWithdrawal = "multisig/initiate_withdrawal"
	pathSignWithdrawal     = "multisig/sign_withdrawal"
	pathExecuteWithdrawal  = "multisig/execute_withdrawal"
)

var _ dappr.Msg = (*InitiateWithdrawalMsg)(nil)
var _ dappr.Msg = (*SignWithdrawalMsg)(nil)
var _ dappr.Msg = (*ExecuteWithdrawalMsg)(nil)

// Path fulfills dappr.Msg interface to allow routing
func (InitiateWithdrawalMsg) Path() string {
	return pathInitiateWithdrawal
}

// Validate makes sure that this is sensible
func (m *InitiateWithdrawalMsg) Validate() error {
	if len(m.EscrowID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	if len(m.Signers) < minSigners {
		return errors.Wrapf(errors.ErrMsg, "at least %d signers required", minSigners)
	}
	for i, s := range m.Signers {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "signer %d", i)
		}
		for _, prev := range m.Signers[:i] {
			if prev.Equals(s) {
				return errors.Wrapf(errors.ErrMsg, "duplicate signer %s", s)
			}
		}
	}
	if m.Threshold != 0 {
		if m.Threshold < minSigners || int(m.Threshold) > len(m.Signers) {
			return errors.Wrapf(errors.ErrMsg, "threshold %d outside of [%d, %d]", m.Threshold, minSigners, len(m.Signers))
		}
	}
	return nil
}

// Path fulfills dappr.Msg interface to allow routing
func (SignWithdrawalMsg) Path() string {
	return pathSignWithdrawal
}

// Validate makes sure that this is sensible
func (m *SignWithdrawalMsg) Validate() error {
	if len(m.EscrowID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	return nil
}

// Path fulfills dappr.Msg interface to allow routing
func (ExecuteWithdrawalMsg) Path() string {
	return pathExecuteWithdrawal
}

// Validate makes sure that this is sensible
func (m *ExecuteWithdrawalMsg) Validate() error {
	if len(m.EscrowID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	return nil
}
