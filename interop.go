package fixedpoint

import (
	"math"
	"math/big"

	govalues "github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"
)

// NewFromShopspring converts a [shopspring.Decimal] to a decimal with the
// given precision. Digits beyond the precision are discarded.
// If precision is negative, the result is unpredictable.
func NewFromShopspring(s shopspring.Decimal, precision int) Decimal {
	coef := s.Coefficient()
	shift := int(s.Exponent()) + precision
	if shift >= 0 {
		return newDecimal(lsh(coef, shift), precision)
	}
	return newDecimal(rshDown(coef, -shift), precision)
}

// Shopspring converts d to a [shopspring.Decimal] with the same value.
//
// Shopspring returns a [RangeError] if the precision of d does not fit
// into a shopspring exponent.
func (d Decimal) Shopspring() (shopspring.Decimal, error) {
	if d.prec > math.MaxInt32 {
		return shopspring.Decimal{}, RangeError.New("precision %d", d.prec)
	}
	return shopspring.NewFromBigInt(d.Scaled(), -int32(d.prec)), nil
}

// NewFromGovalues converts a [govalues.Decimal] to a decimal with the given
// precision. Digits beyond the precision are discarded.
func NewFromGovalues(g govalues.Decimal, precision int) (Decimal, error) {
	if err := checkPrecision(precision); err != nil {
		return Decimal{}, err
	}
	coef := new(big.Int).SetUint64(g.Coef())
	if g.IsNeg() {
		coef.Neg(coef)
	}
	return newDecimal(rescale(coef, g.Scale(), precision), precision), nil
}

// Govalues converts d to a [govalues.Decimal].
// Since govalues decimals hold at most 19 significant digits, the result
// may be rounded.
//
// Govalues returns a [RangeError] if the integer part of d does not fit.
func (d Decimal) Govalues() (govalues.Decimal, error) {
	g, err := govalues.Parse(d.String())
	if err != nil {
		return govalues.Decimal{}, RangeError.Wrap(err)
	}
	return g, nil
}
