package escrow

// Status strings show up in error messages and logs, keep them short
// and lowercase.

func (s EscrowStatus) String() string {
	switch s {
	case EscrowStatusInitialized:
		return "initialized"
	case EscrowStatusFunded:
		return "funded"
	case EscrowStatusCompleted:
		return "completed"
	case EscrowStatusDisputed:
		return "disputed"
	case EscrowStatusCancelled:
		return "cancelled"
	default:
		return "invalid"
	}
}

func (s MilestoneStatus) String() string {
	switch s {
	case MilestoneStatusPending:
		return "pending"
	case MilestoneStatusCompleted:
		return "completed"
	case MilestoneStatusPaid:
		return "paid"
	default:
		return "invalid"
	}
}
