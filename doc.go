/*
Package fixedpoint implements immutable fixed-point decimal numbers backed by
arbitrary-precision integers.
It is designed for amounts, exchange rates, APRs and fees in on-chain
finance, where values are exchanged with smart contracts as integers scaled
by 10^decimals and displayed to users with a handful of fractional digits.

# Representation

[Decimal] is a struct with two fields:

  - Value: a [big.Int] equal to the number multiplied by 10^Precision.
  - Precision: a non-negative integer, the number of implied fractional
    digits in the value.
    For example, a decimal with a value of 1231230000000 and a precision of 10
    represents the number 123.123.

The numerical value of a decimal is calculated as:

  - Value / 10^Precision

Most decimals use [DefaultPrecision], which is 18, the number of decimals
of the majority of ERC-20 tokens.
Values are unbounded, so there is no overflow.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [Decimal.String], [Decimal.Truncated], [Decimal.Rounded].
  - from float64:
    [NewFromFloat64].
  - from int64:
    [NewFromInt64].
  - from/to scaled integers:
    [NewFromBigInt], [NewFromScaled], [Decimal.Scaled], [Decimal.BigInt].
  - from/to on-chain amounts:
    [ParseChainAmount], [ParseHex], [Decimal.Hex],
    [NewFromUint256], [Decimal.Uint256].
  - from/to other decimal libraries:
    [NewFromShopspring], [Decimal.Shopspring],
    [NewFromGovalues], [Decimal.Govalues].
  - from anything above:
    [New], [NewWithPrecision].

Parsing accepts an optional leading minus sign, digits, and an optional
decimal point: "1.5", "-2", ".5" and "5." are valid, whereas "+1", "1e8",
"." and "" are not.
Fractional digits beyond the precision are truncated.

# Operations

[Decimal.Add] and [Decimal.Sub] add and subtract scaled values directly.
[Decimal.Mul] multiplies scaled values and divides the product by
10^Precision.
[Decimal.Div] multiplies the dividend by 10^Precision before dividing,
to keep the fractional digits of the quotient.

All results have the precision of the receiver, and digits beyond it are
discarded (rounded towards zero).
Operands are expected to share the precision of the receiver.
The strict variants [Decimal.AddStrict], [Decimal.SubStrict],
[Decimal.MulStrict] and [Decimal.DivStrict] verify this, while
[Decimal.AddValue], [Decimal.SubValue], [Decimal.MulValue] and
[Decimal.DivValue] convert their operand to the precision of the receiver.

# Rounding

Arithmetic never rounds, it truncates.
For display, [Decimal.Truncated] cuts the fractional part to the requested
number of digits, and [Decimal.Rounded] rounds it half up, looking only at the
first discarded digit:

	| Value   | Truncated(2) | Rounded(2) | Truncated(0) | Rounded(0) |
	| ------- | ------------ | ---------- | ------------ | ---------- |
	| 789.789 | 789.78       | 789.79     | 789          | 790        |
	| 999.96  | 999.96       | 999.96     | 999          | 1000       |
	| -1.255  | -1.25        | -1.26      | -1           | -1         |
	| 0.449   | 0.44         | 0.45       | 0            | 0          |

Negative numbers are rounded by magnitude.
A result with only zero digits never has a minus sign.

# Errors

All methods are pure and panic-free, except for the Must* helpers.
Nil pointers passed to constructors that return an error are rejected with
a [ParseError]; [NewFromBigInt] treats nil as 0.
Errors belong to one of the following classes:

  - [ParseError]: input is not a decimal number.
  - [DivisionByZero]: the divisor is zero.
  - [PrecisionMismatch]: a strict operation got operands with different precisions.
  - [PrecisionError]: a precision is negative.
  - [RangeError]: a decimal does not fit into the target representation.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package fixedpoint
