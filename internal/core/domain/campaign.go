package domain

import "math/big"

// Campaign is a funding goal in the multi-campaign registry.
// Amounts are stored in the smallest asset unit (stroops).
type Campaign struct {
	ID      uint32  `json:"id"`
	Creator Address `json:"creator"`
	Title   string  `json:"title"`
	Target  Amount  `json:"target"`
	Raised  Amount  `json:"raised"` // only ever increases
}

// Progress returns raised as a whole percentage of target, floored. It may
// exceed 100 since donations past the goal are accepted.
func (c Campaign) Progress() int64 {
	if !c.Target.IsPositive() || c.Raised.Sign() <= 0 {
		return 0
	}
	p := new(big.Int).Mul(c.Raised.Big(), big.NewInt(100))
	p.Quo(p, c.Target.Big())
	if !p.IsInt64() {
		return 1<<63 - 1
	}
	return p.Int64()
}
