package domain

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"
	"math/bits"
)

// StroopsPerUnit is the number of indivisible units in one whole asset unit.
const StroopsPerUnit = 10_000_000

// AmountSize is the length of an Amount in its binary form.
const AmountSize = 16

// Amount is a signed 128-bit quantity of the smallest indivisible unit of an
// asset. The zero value is a valid amount of zero. Arithmetic never wraps:
// Add and Sub return ErrArithmeticOverflow instead.
type Amount struct {
	hi int64
	lo uint64
}

var (
	// MaxAmount is the largest representable amount, 2^127-1.
	MaxAmount = Amount{hi: 1<<63 - 1, lo: 1<<64 - 1}
	// MinAmount is the smallest representable amount, -2^127.
	MinAmount = Amount{hi: -1 << 63, lo: 0}

	minBig = MinAmount.Big()
	maxBig = MaxAmount.Big()
)

// NewAmount returns the amount equal to v.
func NewAmount(v int64) Amount {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return Amount{hi: hi, lo: uint64(v)}
}

// ParseAmount parses a base 10 integer. Values outside the signed 128-bit
// range fail with ErrArithmeticOverflow.
func ParseAmount(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidAmount, s)
	}
	return AmountFromBig(v)
}

// AmountFromBig converts v, failing when it does not fit in 128 bits.
func AmountFromBig(v *big.Int) (Amount, error) {
	if v.Cmp(minBig) < 0 || v.Cmp(maxBig) > 0 {
		return Amount{}, ErrArithmeticOverflow
	}
	// two's complement modulo 2^128
	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		u.Add(u, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	var buf [AmountSize]byte
	u.FillBytes(buf[:])
	return AmountFromBytes(buf[:])
}

// AmountFromBytes decodes the 16 byte big endian two's complement form.
func AmountFromBytes(b []byte) (Amount, error) {
	if len(b) != AmountSize {
		return Amount{}, fmt.Errorf("amount: expected %d bytes, got %d", AmountSize, len(b))
	}
	return Amount{
		hi: int64(binary.BigEndian.Uint64(b[:8])),
		lo: binary.BigEndian.Uint64(b[8:]),
	}, nil
}

// Bytes returns the 16 byte big endian two's complement form.
func (a Amount) Bytes() []byte {
	buf := make([]byte, AmountSize)
	binary.BigEndian.PutUint64(buf[:8], uint64(a.hi))
	binary.BigEndian.PutUint64(buf[8:], a.lo)
	return buf
}

// Add returns a+b or ErrArithmeticOverflow.
func (a Amount) Add(b Amount) (Amount, error) {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hiU, _ := bits.Add64(uint64(a.hi), uint64(b.hi), carry)
	hi := int64(hiU)
	if (a.hi < 0) == (b.hi < 0) && (hi < 0) != (a.hi < 0) {
		return Amount{}, ErrArithmeticOverflow
	}
	return Amount{hi: hi, lo: lo}, nil
}

// Sub returns a-b or ErrArithmeticOverflow.
func (a Amount) Sub(b Amount) (Amount, error) {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hiU, _ := bits.Sub64(uint64(a.hi), uint64(b.hi), borrow)
	hi := int64(hiU)
	if (a.hi < 0) != (b.hi < 0) && (hi < 0) != (a.hi < 0) {
		return Amount{}, ErrArithmeticOverflow
	}
	return Amount{hi: hi, lo: lo}, nil
}

// Sign returns -1, 0 or +1.
func (a Amount) Sign() int {
	switch {
	case a.hi < 0:
		return -1
	case a.hi == 0 && a.lo == 0:
		return 0
	default:
		return 1
	}
}

// IsZero reports whether a is zero.
func (a Amount) IsZero() bool { return a.Sign() == 0 }

// IsPositive reports whether a > 0.
func (a Amount) IsPositive() bool { return a.Sign() > 0 }

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.hi < b.hi:
		return -1
	case a.hi > b.hi:
		return 1
	case a.lo < b.lo:
		return -1
	case a.lo > b.lo:
		return 1
	}
	return 0
}

// Big returns a as a new big.Int.
func (a Amount) Big() *big.Int {
	v := big.NewInt(a.hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(a.lo))
}

func (a Amount) String() string {
	return a.Big().String()
}

// MarshalJSON encodes the amount as a decimal string so that clients
// without 128-bit integers do not lose precision.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts either a decimal string or a bare JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
		}
		s = n.String()
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
