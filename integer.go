package fixedpoint

import (
	"math/big"
	"strings"
)

// maxPow10 is the largest cached power of ten.
// 10^77 is the largest power of ten that fits into 256 bits,
// which covers every on-chain amount.
const maxPow10 = 77

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)
)

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
// The cached values are shared and must never be modified.
var bpow10 = newPow10Table(maxPow10)

func newPow10Table(n int) []*big.Int {
	t := make([]*big.Int, n+1)
	t[0] = big.NewInt(1)
	for i := 1; i <= n; i++ {
		t[i] = new(big.Int).Mul(t[i-1], bigTen)
	}
	return t
}

// pow10 returns 10^power.
// If power is negative, the result is unpredictable.
// The result may be shared and must not be modified.
func pow10(power int) *big.Int {
	if power < len(bpow10) {
		return bpow10[power]
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(power)), nil)
}

// lsh (Left Shift) returns a new integer equal to x * 10^shift.
func lsh(x *big.Int, shift int) *big.Int {
	z := new(big.Int)
	switch {
	case x.Sign() == 0:
		return z
	case shift <= 0:
		return z.Set(x)
	}
	return z.Mul(x, pow10(shift))
}

// rshDown (Right Shift) returns a new integer equal to x / 10^shift,
// rounded towards zero.
func rshDown(x *big.Int, shift int) *big.Int {
	z := new(big.Int)
	switch {
	case x.Sign() == 0:
		return z
	case shift <= 0:
		return z.Set(x)
	}
	return z.Quo(x, pow10(shift))
}

// rescale returns x, which has from fractional digits, re-expressed with
// to fractional digits. Extra digits are discarded, not rounded.
func rescale(x *big.Int, from, to int) *big.Int {
	if to >= from {
		return lsh(x, to-from)
	}
	return rshDown(x, from-to)
}

// split returns the integral and fractional digits of |x| / 10^prec.
// The fractional part always has exactly prec digits.
func split(x *big.Int, prec int) (intpart, frac string) {
	abs := new(big.Int).Abs(x)
	if prec <= 0 {
		return abs.String(), ""
	}
	q, r := new(big.Int).QuoRem(abs, pow10(prec), new(big.Int))
	frac = r.String()
	if n := prec - len(frac); n > 0 {
		frac = strings.Repeat("0", n) + frac
	}
	return q.String(), frac
}

// format renders |x| / 10^prec with exactly prec fractional digits.
// The minus sign is added only if neg is set and x is not zero.
func format(neg bool, x *big.Int, prec int) string {
	intpart, frac := split(x, prec)
	var b strings.Builder
	b.Grow(len(intpart) + len(frac) + 2)
	if neg && x.Sign() != 0 {
		b.WriteByte('-')
	}
	b.WriteString(intpart)
	if prec > 0 {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
