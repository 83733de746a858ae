package configs

import "nova-fund/internal/core/domain"

// Ledger holds the identities the contracts are deployed with. Issuer is
// the only identity allowed to mint tokens; when unset nobody can. Escrow
// names the escrow contract, whose custody address is derived from it.
type Ledger struct {
	Issuer domain.Address `env:"ISSUER"`
	Escrow string         `env:"ESCROW_CONTRACT" envDefault:"escrow" validate:"required"`
}
