package configs

import "time"

// Auth configures verification of the EdDSA bearer tokens that authorize
// ledger calls. Audience must match the token's aud claim. Leeway absorbs
// clock skew when checking exp, nbf and iat. MaxTTL rejects tokens whose
// lifetime is longer than allowed.
type Auth struct {
	Audience string        `env:"AUDIENCE" envDefault:"nova-fund" validate:"required"`
	Leeway   time.Duration `env:"LEEWAY" envDefault:"30s" validate:"gte=0"`
	MaxTTL   time.Duration `env:"MAX_TTL" envDefault:"1h" validate:"gt=0"`
}
