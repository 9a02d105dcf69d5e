package dappr

// Event describes one state change produced by a successful Deliver.
// The variant set is closed: a consumer switching over all types below
// has covered every event the engine emits.
type Event interface {
	// isEvent restricts implementations to this package.
	isEvent()
}

// EscrowCreated is emitted when a new escrow record is opened. Amount
// is zero until the escrow is funded.
type EscrowCreated struct {
	Escrow    []byte
	Creator   Address
	Recipient Address
	Amount    uint64
}

// MilestoneCompleted is emitted when a milestone's work is verified.
type MilestoneCompleted struct {
	Escrow    []byte
	Milestone []byte
	Index     uint32
	Amount    uint64
}

// FundsReleased is emitted when a completed milestone is paid out.
type FundsReleased struct {
	Escrow    []byte
	Milestone []byte
	Amount    uint64
	Recipient Address
}

// EmergencyWithdrawalRequested is emitted when a withdrawal round is
// initiated. Amount is the balance still held by the escrow.
type EmergencyWithdrawalRequested struct {
	Escrow    []byte
	Requester Address
	Amount    uint64
}

func (EscrowCreated) isEvent()                {}
func (MilestoneCompleted) isEvent()           {}
func (FundsReleased) isEvent()                {}
func (EmergencyWithdrawalRequested) isEvent() {}
