package fixedpoint

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	govalues "github.com/govalues/decimal"
	"github.com/holiman/uint256"
	shopspring "github.com/shopspring/decimal"
)

// Decimal type is a representation of a fixed-point decimal number.
// The zero value is the numeric value of 0 with precision 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is a struct with two parameters:
//
//   - Value: an arbitrary-precision integer equal to the number
//     multiplied by 10^Precision.
//   - Precision: the number of implied fractional digits in the value.
//
// For example, the number 123.123 with a precision of 10 has a value of
// 1231230000000.
//
// Decimals are immutable: all methods return new decimals and never
// modify their receivers or arguments.
type Decimal struct {
	value *big.Int // scaled value, never modified after construction
	prec  int      // number of implied fractional digits
}

// DefaultPrecision is the precision used when none is given.
// It matches the number of decimals of most on-chain tokens.
const DefaultPrecision = 18

func newDecimal(value *big.Int, prec int) Decimal {
	return Decimal{value: value, prec: prec}
}

// bint returns the scaled value of d.
// The result is shared and must not be modified.
func (d Decimal) bint() *big.Int {
	if d.value == nil {
		return bigZero
	}
	return d.value
}

// New returns a decimal converted from v.
// The following types are supported:
//
//   - string: parsed with [Parse].
//   - float32, float64: see [NewFromFloat64].
//   - signed and unsigned integers: the integer value, see [NewFromInt64].
//   - *big.Int, big.Int, *uint256.Int: a value already scaled by
//     10^[DefaultPrecision], see [NewFromBigInt].
//   - shopspring and govalues decimals: the same numeric value.
//   - Decimal, *Decimal: an exact copy, including the precision.
//
// Unless v is a decimal, the result has [DefaultPrecision].
func New(v any) (Decimal, error) {
	switch v := v.(type) {
	case Decimal:
		return v, nil
	case *Decimal:
		if v == nil {
			return Decimal{}, ParseError.New("nil %T", v)
		}
		return *v, nil
	}
	return NewWithPrecision(v, DefaultPrecision)
}

// NewWithPrecision is similar to [New], but the result always has the given
// precision.
// Real values are scaled to the precision, integers of type *big.Int,
// big.Int and *uint256.Int are taken as already scaled to it, and decimals
// are rescaled to it with [Decimal.Rescale].
func NewWithPrecision(v any, precision int) (Decimal, error) {
	if err := checkPrecision(precision); err != nil {
		return Decimal{}, err
	}
	switch v := v.(type) {
	case Decimal:
		return v.Rescale(precision), nil
	case *Decimal:
		if v == nil {
			return Decimal{}, ParseError.New("nil %T", v)
		}
		return v.Rescale(precision), nil
	case string:
		return ParseWithPrecision(v, precision)
	case float64:
		return NewFromFloat64WithPrecision(v, precision)
	case float32:
		return parseFloat(float64(v), 32, precision)
	case int:
		return NewFromInt64WithPrecision(int64(v), precision)
	case int8:
		return NewFromInt64WithPrecision(int64(v), precision)
	case int16:
		return NewFromInt64WithPrecision(int64(v), precision)
	case int32:
		return NewFromInt64WithPrecision(int64(v), precision)
	case int64:
		return NewFromInt64WithPrecision(v, precision)
	case uint:
		return newFromUint64(uint64(v), precision), nil
	case uint8:
		return newFromUint64(uint64(v), precision), nil
	case uint16:
		return newFromUint64(uint64(v), precision), nil
	case uint32:
		return newFromUint64(uint64(v), precision), nil
	case uint64:
		return newFromUint64(v, precision), nil
	case *big.Int:
		return NewFromScaled(v, precision)
	case big.Int:
		return NewFromScaled(&v, precision)
	case *uint256.Int:
		return NewFromUint256(v, precision)
	case shopspring.Decimal:
		return NewFromShopspring(v, precision), nil
	case govalues.Decimal:
		return NewFromGovalues(v, precision)
	}
	return Decimal{}, ParseError.New("unsupported type %T", v)
}

// NewLegacyCopy returns a decimal with the scaled value of d and
// [DefaultPrecision], regardless of the precision of d.
// It reproduces the copy semantics of older tooling and changes the
// numeric value whenever d.Precision() != DefaultPrecision.
// Use [New] for an exact copy.
func NewLegacyCopy(d Decimal) Decimal {
	return newDecimal(d.bint(), DefaultPrecision)
}

// NewFromBigInt returns a decimal equal to value / 10^[DefaultPrecision].
// The value is copied. A nil value is treated as 0.
// See [NewFromScaled] for a version that rejects nil.
func NewFromBigInt(value *big.Int) Decimal {
	if value == nil {
		return newDecimal(new(big.Int), DefaultPrecision)
	}
	return newDecimal(new(big.Int).Set(value), DefaultPrecision)
}

// NewFromScaled returns a decimal equal to value / 10^precision.
// The value is copied.
//
// NewFromScaled returns an error if the value is nil or the precision is
// negative.
func NewFromScaled(value *big.Int, precision int) (Decimal, error) {
	if err := checkPrecision(precision); err != nil {
		return Decimal{}, err
	}
	if value == nil {
		return Decimal{}, ParseError.New("nil %T", value)
	}
	return newDecimal(new(big.Int).Set(value), precision), nil
}

// NewFromInt64 converts an integer to a decimal with [DefaultPrecision].
func NewFromInt64(i int64) Decimal {
	return newDecimal(lsh(big.NewInt(i), DefaultPrecision), DefaultPrecision)
}

// NewFromInt64WithPrecision converts an integer to a decimal with the given
// precision.
func NewFromInt64WithPrecision(i int64, precision int) (Decimal, error) {
	if err := checkPrecision(precision); err != nil {
		return Decimal{}, err
	}
	return newDecimal(lsh(big.NewInt(i), precision), precision), nil
}

func newFromUint64(u uint64, prec int) Decimal {
	return newDecimal(lsh(new(big.Int).SetUint64(u), prec), prec)
}

// NewFromFloat64 converts a float to a decimal with [DefaultPrecision].
// The float is first formatted as the shortest decimal string that
// round-trips to the same float, without an exponent, and then parsed.
// Digits beyond the precision are truncated.
//
// NewFromFloat64 returns an error if f is NaN or infinite.
func NewFromFloat64(f float64) (Decimal, error) {
	return NewFromFloat64WithPrecision(f, DefaultPrecision)
}

// NewFromFloat64WithPrecision is similar to [NewFromFloat64], but the result
// has the given precision.
func NewFromFloat64WithPrecision(f float64, precision int) (Decimal, error) {
	return parseFloat(f, 64, precision)
}

func parseFloat(f float64, bitSize, prec int) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, ParseError.New("invalid decimal %v", f)
	}
	return ParseWithPrecision(strconv.FormatFloat(f, 'f', -1, bitSize), prec)
}

// Parse converts a string to a decimal with [DefaultPrecision].
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	.5
//	12.
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// At least one digit is required.
// A leading '+', an exponent, and surrounding whitespace are rejected.
// Fractional digits beyond the precision are truncated.
//
// Parse returns a [ParseError] if the string does not represent a decimal.
func Parse(s string) (Decimal, error) {
	return ParseWithPrecision(s, DefaultPrecision)
}

// ParseWithPrecision is similar to [Parse], but the result has the given
// precision.
func ParseWithPrecision(s string, precision int) (Decimal, error) {
	if err := checkPrecision(precision); err != nil {
		return Decimal{}, err
	}

	var (
		pos     int
		width   = len(s)
		neg     bool
		intpart string
		frac    string
	)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// Integer
	start := pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	intpart = s[start:pos]

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		start = pos
		for pos < width && isDigit(s[pos]) {
			pos++
		}
		frac = s[start:pos]
	}

	switch {
	case pos != width:
		return Decimal{}, ParseError.New("invalid character %q in %q", s[pos], s)
	case intpart == "" && frac == "":
		return Decimal{}, ParseError.New("no digits in %q", s)
	}

	if len(frac) > precision {
		frac = frac[:precision]
	}

	var b strings.Builder
	b.Grow(len(intpart) + precision + 2)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intpart)
	b.WriteString(frac)
	for i := len(frac); i < precision; i++ {
		b.WriteByte('0')
	}
	if intpart == "" && precision == 0 {
		b.WriteByte('0')
	}

	value, ok := new(big.Int).SetString(b.String(), 10)
	if !ok {
		return Decimal{}, ParseError.New("invalid decimal %q", s)
	}
	return newDecimal(value, precision), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// Trailing zeros of the fractional part are removed, but at least one
// fractional digit is kept if the precision is greater than 0:
//
//	123.123 at precision 10 -> "123.123"
//	123     at precision 18 -> "123.0"
//	123     at precision 0  -> "123"
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	intpart, frac := split(d.bint(), d.prec)
	var b strings.Builder
	if d.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(intpart)
	if d.prec > 0 {
		frac = strings.TrimRight(frac, "0")
		if frac == "" {
			frac = "0"
		}
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// Truncated returns a string representation of d with exactly
// fractionDigits digits after the decimal point.
// Extra digits are discarded and missing digits are filled with zeros.
// If fractionDigits is 0 or negative, only the integer part is returned.
//
//	789.789 -> Truncated(2) -> "789.78"
//	789.789 -> Truncated(0) -> "789"
func (d Decimal) Truncated(fractionDigits int) string {
	if fractionDigits < 0 {
		fractionDigits = 0
	}
	x := rescale(d.bint(), d.prec, fractionDigits)
	return format(d.Sign() < 0, x, fractionDigits)
}

// Rounded returns a string representation of d rounded to exactly
// fractionDigits digits after the decimal point.
// Only the first discarded digit is inspected: if it is 5 or greater,
// the magnitude is rounded up, otherwise it is truncated.
// Digits after the first discarded one are ignored, so 0.449 rounded to
// 1 digit is "0.4".
// If fractionDigits is 0 or negative, only the integer part is returned.
//
//	789.789 -> Rounded(2) -> "789.79"
//	789.789 -> Rounded(0) -> "790"
//	999.96  -> Rounded(0) -> "1000"
func (d Decimal) Rounded(fractionDigits int) string {
	if fractionDigits < 0 {
		fractionDigits = 0
	}
	if fractionDigits >= d.prec {
		return d.Truncated(fractionDigits)
	}
	shift := d.prec - fractionDigits
	abs := new(big.Int).Abs(d.bint())
	q, r := new(big.Int).QuoRem(abs, pow10(shift), new(big.Int))
	next := r.Quo(r, pow10(shift-1)) // first discarded digit
	if next.Int64() >= 5 {
		q.Add(q, bigOne)
	}
	return format(d.Sign() < 0, q, fractionDigits)
}

// Precision returns the number of implied fractional digits of d.
func (d Decimal) Precision() int {
	return d.prec
}

// Scaled returns the scaled value of d, that is d * 10^d.Precision().
// The result is a copy and can be modified freely.
func (d Decimal) Scaled() *big.Int {
	return new(big.Int).Set(d.bint())
}

// BigInt returns the value of d scaled to the given precision, that is
// d * 10^precision, discarding any digits beyond the precision.
//
//	123.123 -> BigInt(6)  -> 123123000
//	123.123 -> BigInt(18) -> 123123000000000000000
//
// If precision is negative, the result is unpredictable.
func (d Decimal) BigInt(precision int) *big.Int {
	return rescale(d.bint(), d.prec, precision)
}

// Rescale returns a decimal numerically equal to d with the given precision.
// If the precision is reduced, extra digits are discarded.
//
// If precision is negative, the result is unpredictable.
func (d Decimal) Rescale(precision int) Decimal {
	return newDecimal(d.BigInt(precision), precision)
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.bint().Sign()
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// Neg returns a decimal with the opposite sign.
func (d Decimal) Neg() Decimal {
	return newDecimal(new(big.Int).Neg(d.bint()), d.prec)
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	return newDecimal(new(big.Int).Abs(d.bint()), d.prec)
}

// Cmp compares decimals numerically and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// Decimals with different precisions are compared by value,
// so 1.5 at precision 1 is equal to 1.50 at precision 2.
func (d Decimal) Cmp(e Decimal) int {
	if d.prec == e.prec {
		return d.bint().Cmp(e.bint())
	}
	prec := max(d.prec, e.prec)
	return d.BigInt(prec).Cmp(e.BigInt(prec))
}

// Equal returns true if d and e are numerically equal.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Add returns the (exact) sum of decimals d and e.
// The scaled values are added directly and the result has the precision of d,
// so both decimals are expected to share the same precision.
// See [Decimal.AddStrict] for a checked version.
func (d Decimal) Add(e Decimal) Decimal {
	return newDecimal(new(big.Int).Add(d.bint(), e.bint()), d.prec)
}

// Sub returns the (exact) difference between decimals d and e.
// The same precision rules as for [Decimal.Add] apply.
func (d Decimal) Sub(e Decimal) Decimal {
	return newDecimal(new(big.Int).Sub(d.bint(), e.bint()), d.prec)
}

// Mul returns the product of decimals d and e with the precision of d.
// Digits beyond the precision are discarded, not rounded.
// e is expected to share the precision of d.
func (d Decimal) Mul(e Decimal) Decimal {
	z := new(big.Int).Mul(d.bint(), e.bint())
	return newDecimal(rshDown(z, d.prec), d.prec)
}

// Div returns the quotient of decimals d and e with the precision of d.
// Digits beyond the precision are discarded, not rounded.
// e is expected to share the precision of d.
//
// Div returns a [DivisionByZero] error if e is zero.
func (d Decimal) Div(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, DivisionByZero.New("%v / %v", d, e)
	}
	z := lsh(d.bint(), d.prec)
	z.Quo(z, e.bint())
	return newDecimal(z, d.prec), nil
}

// AddStrict is like [Decimal.Add], but returns a [PrecisionMismatch] error
// if d and e have different precisions.
func (d Decimal) AddStrict(e Decimal) (Decimal, error) {
	if err := d.samePrecision(e, "+"); err != nil {
		return Decimal{}, err
	}
	return d.Add(e), nil
}

// SubStrict is like [Decimal.Sub], but returns a [PrecisionMismatch] error
// if d and e have different precisions.
func (d Decimal) SubStrict(e Decimal) (Decimal, error) {
	if err := d.samePrecision(e, "-"); err != nil {
		return Decimal{}, err
	}
	return d.Sub(e), nil
}

// MulStrict is like [Decimal.Mul], but returns a [PrecisionMismatch] error
// if d and e have different precisions.
func (d Decimal) MulStrict(e Decimal) (Decimal, error) {
	if err := d.samePrecision(e, "*"); err != nil {
		return Decimal{}, err
	}
	return d.Mul(e), nil
}

// DivStrict is like [Decimal.Div], but returns a [PrecisionMismatch] error
// if d and e have different precisions.
func (d Decimal) DivStrict(e Decimal) (Decimal, error) {
	if err := d.samePrecision(e, "/"); err != nil {
		return Decimal{}, err
	}
	return d.Div(e)
}

func (d Decimal) samePrecision(e Decimal, op string) error {
	if d.prec != e.prec {
		return PrecisionMismatch.New("%v (precision %d) %s %v (precision %d)", d, d.prec, op, e, e.prec)
	}
	return nil
}

// AddValue converts v with [NewWithPrecision] using the precision of d
// and returns the sum of d and the converted value.
func (d Decimal) AddValue(v any) (Decimal, error) {
	e, err := NewWithPrecision(v, d.prec)
	if err != nil {
		return Decimal{}, err
	}
	return d.Add(e), nil
}

// SubValue converts v with [NewWithPrecision] using the precision of d
// and returns the difference between d and the converted value.
func (d Decimal) SubValue(v any) (Decimal, error) {
	e, err := NewWithPrecision(v, d.prec)
	if err != nil {
		return Decimal{}, err
	}
	return d.Sub(e), nil
}

// MulValue converts v with [NewWithPrecision] using the precision of d
// and returns the product of d and the converted value.
func (d Decimal) MulValue(v any) (Decimal, error) {
	e, err := NewWithPrecision(v, d.prec)
	if err != nil {
		return Decimal{}, err
	}
	return d.Mul(e), nil
}

// DivValue converts v with [NewWithPrecision] using the precision of d
// and returns the quotient of d and the converted value.
func (d Decimal) DivValue(v any) (Decimal, error) {
	e, err := NewWithPrecision(v, d.prec)
	if err != nil {
		return Decimal{}, err
	}
	return d.Div(e)
}
