package domain

// EscrowState is derived from the clock and the escrow record; it is never
// stored.
type EscrowState string

const (
	EscrowOpen       EscrowState = "open"
	EscrowReleasable EscrowState = "releasable"
)

// Escrow is the single campaign of an escrow deployment. Deadline is a
// ledger timestamp in unix seconds.
type Escrow struct {
	Recipient Address
	Asset     Address
	Deadline  uint64
	Target    Amount
	Raised    Amount
}

// State reports whether funds may be released at ledger time now.
func (e Escrow) State(now uint64) EscrowState {
	if now >= e.Deadline && e.Raised.Cmp(e.Target) >= 0 {
		return EscrowReleasable
	}
	return EscrowOpen
}

// CampaignInfo is the public summary of an escrow. All fields are zero when
// the escrow was never initialized.
type CampaignInfo struct {
	Raised   Amount `json:"raised"`
	Target   Amount `json:"target"`
	Deadline uint64 `json:"deadline"`
}
