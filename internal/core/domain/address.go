package domain

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
)

// AddressSize is the decoded length of an address.
const AddressSize = 32

// Address identifies an account, an asset or a contract on the ledger. It is
// the base58 encoding of 32 bytes: an ed25519 public key for accounts, a
// SHA-256 digest for contracts.
type Address string

// ParseAddress validates s and returns it as an Address.
func ParseAddress(s string) (Address, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(raw) != AddressSize {
		return "", fmt.Errorf("%w: decoded length %d", ErrInvalidAddress, len(raw))
	}
	return Address(base58.Encode(raw)), nil
}

// AddressFromPublicKey returns the account address of an ed25519 key.
func AddressFromPublicKey(pub ed25519.PublicKey) Address {
	return Address(base58.Encode(pub))
}

// ContractAddress returns the custody address of a named contract. Nobody
// holds a private key for it, so it can only be moved by contract logic.
func ContractAddress(name string) Address {
	sum := sha256.Sum256([]byte("nova-fund/contract/" + name))
	return Address(base58.Encode(sum[:]))
}

// PublicKey returns the ed25519 key that signs for the address.
func (a Address) PublicKey() (ed25519.PublicKey, error) {
	raw, err := base58.Decode(string(a))
	if err != nil || len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, string(a))
	}
	return ed25519.PublicKey(raw), nil
}

func (a Address) String() string { return string(a) }

// UnmarshalText validates addresses decoded from JSON and flags.
func (a *Address) UnmarshalText(text []byte) error {
	v, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
