package fixedpoint

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

// ParseChainAmount converts a raw on-chain amount to a decimal with the given
// precision, which is usually the number of decimals of the token.
// The amount is an unscaled integer in decimal or 0x-prefixed hexadecimal
// notation that fits into 256 bits, as found in event logs and RPC responses:
//
//	ParseChainAmount("1500000", 6)              -> 1.5
//	ParseChainAmount("0xde0b6b3a7640000", 18)   -> 1.0
//
// ParseChainAmount returns a [ParseError] if the amount is empty, negative,
// or cannot be parsed.
func ParseChainAmount(s string, precision int) (Decimal, error) {
	if err := checkPrecision(precision); err != nil {
		return Decimal{}, err
	}
	value, ok := math.ParseBig256(s)
	if !ok || s == "" || value.Sign() < 0 {
		return Decimal{}, ParseError.New("invalid chain amount %q", s)
	}
	return newDecimal(value, precision), nil
}

// ParseHex converts a JSON-RPC hex quantity ("0x" followed by hex digits
// without leading zeros) to a decimal with the given precision.
//
// ParseHex returns a [ParseError] if the quantity cannot be decoded.
func ParseHex(s string, precision int) (Decimal, error) {
	if err := checkPrecision(precision); err != nil {
		return Decimal{}, err
	}
	value, err := hexutil.DecodeBig(s)
	if err != nil {
		return Decimal{}, ParseError.New("invalid hex quantity %q: %v", s, err)
	}
	return newDecimal(value, precision), nil
}

// Hex returns the value of d scaled to the given precision as a JSON-RPC
// hex quantity. Digits beyond the precision are discarded.
//
// Hex returns a [RangeError] if the scaled value is negative.
func (d Decimal) Hex(precision int) (string, error) {
	if err := checkPrecision(precision); err != nil {
		return "", err
	}
	x := d.BigInt(precision)
	if x.Sign() < 0 {
		return "", RangeError.New("negative hex quantity %v", d)
	}
	return hexutil.EncodeBig(x), nil
}

// NewFromUint256 returns a decimal equal to value / 10^precision.
//
// NewFromUint256 returns a [ParseError] if the value is nil.
func NewFromUint256(value *uint256.Int, precision int) (Decimal, error) {
	if err := checkPrecision(precision); err != nil {
		return Decimal{}, err
	}
	if value == nil {
		return Decimal{}, ParseError.New("nil %T", value)
	}
	return newDecimal(value.ToBig(), precision), nil
}

// Uint256 returns the value of d scaled to the given precision as
// a 256-bit unsigned integer. Digits beyond the precision are discarded.
//
// Uint256 returns a [RangeError] if the scaled value is negative or
// does not fit into 256 bits.
func (d Decimal) Uint256(precision int) (*uint256.Int, error) {
	if err := checkPrecision(precision); err != nil {
		return nil, err
	}
	x := d.BigInt(precision)
	if x.Sign() < 0 {
		return nil, RangeError.New("negative uint256 %v", d)
	}
	z, overflow := uint256.FromBig(x)
	if overflow {
		return nil, RangeError.New("uint256 overflow %v", d)
	}
	return z, nil
}
