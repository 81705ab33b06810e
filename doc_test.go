package fixedpoint_test

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/govalues/fixedpoint"
	shopspring "github.com/shopspring/decimal"
)

func approximate(terms int) (fixedpoint.Decimal, error) {
	pi := fixedpoint.NewFromInt64(0)
	denominator := fixedpoint.NewFromInt64(1)
	increment := fixedpoint.NewFromInt64(2)
	multiplier := fixedpoint.NewFromInt64(4)

	for i := 0; i < terms; i++ {
		term, err := multiplier.Div(denominator)
		if err != nil {
			return fixedpoint.Decimal{}, err
		}
		if i%2 == 1 {
			term = term.Neg()
		}
		pi = pi.Add(term)
		denominator = denominator.Add(increment)
	}
	return pi, nil
}

// This example calculates an approximate value of pi using the Leibniz formula for pi.
// The Leibniz formula is an infinite series that converges to pi/4, and is
// given by the equation: 1 - 1/3 + 1/5 - 1/7 + 1/9 - 1/11 + ... = pi/4.
// Every term is truncated to 18 fractional digits.
func Example_piApproximation() {
	pi, err := approximate(50000)
	if err != nil {
		panic(err)
	}
	fmt.Println(pi)
	fmt.Println(pi.Rounded(4))
	// Output:
	// 3.141572653589795207
	// 3.1416
}

// This example compounds a deposit monthly for a year at 5% APR
// and prints the balance as it would be shown to a user.
func Example_compoundInterest() {
	balance := fixedpoint.MustParse("1000")
	rate := fixedpoint.MustParse("0.05").MustDivValue(12)
	for month := 0; month < 12; month++ {
		balance = balance.Add(balance.Mul(rate))
	}
	fmt.Println(rate)
	fmt.Println(balance)
	fmt.Println(balance.Rounded(2))
	// Output:
	// 0.004166666666666666
	// 1051.161897881733181424
	// 1051.16
}

// This example converts a USDC transfer amount, which has 6 decimals on chain,
// to an 18-decimal amount and back.
func Example_tokenAmounts() {
	usdc, err := fixedpoint.ParseChainAmount("2500000", 6)
	if err != nil {
		panic(err)
	}
	d := usdc.Rescale(fixedpoint.DefaultPrecision)
	fmt.Println(d)
	fmt.Println(d.BigInt(18))
	fmt.Println(d.BigInt(6))
	// Output:
	// 2.5
	// 2500000000000000000
	// 2500000
}

func ExampleNew() {
	fmt.Println(fixedpoint.New("-1.23"))
	fmt.Println(fixedpoint.New(5))
	fmt.Println(fixedpoint.New(1.5))
	fmt.Println(fixedpoint.New(big.NewInt(1230000000000000000)))
	// Output:
	// -1.23 <nil>
	// 5.0 <nil>
	// 1.5 <nil>
	// 1.23 <nil>
}

func ExampleNewWithPrecision() {
	d, err := fixedpoint.NewWithPrecision("123.123", 10)
	if err != nil {
		panic(err)
	}
	fmt.Println(d, d.Precision(), d.Scaled())
	// Output:
	// 123.123 10 1231230000000
}

func ExampleNewLegacyCopy() {
	d, err := fixedpoint.NewWithPrecision("123.123", 10)
	if err != nil {
		panic(err)
	}
	e, err := fixedpoint.New(d)
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	fmt.Println(fixedpoint.NewLegacyCopy(d))
	// Output:
	// 123.123
	// 0.00000123123
}

func ExampleNewFromInt64() {
	fmt.Println(fixedpoint.NewFromInt64(-123))
	fmt.Println(fixedpoint.NewFromInt64WithPrecision(-123, 0))
	// Output:
	// -123.0
	// -123 <nil>
}

func ExampleNewFromFloat64() {
	fmt.Println(fixedpoint.NewFromFloat64(1.23e-2))
	fmt.Println(fixedpoint.NewFromFloat64(1.23e2))
	fmt.Println(fixedpoint.NewFromFloat64WithPrecision(1.239, 2))
	// Output:
	// 0.0123 <nil>
	// 123.0 <nil>
	// 1.23 <nil>
}

func ExampleNewFromBigInt() {
	fmt.Println(fixedpoint.NewFromBigInt(big.NewInt(-1)))
	fmt.Println(fixedpoint.NewFromScaled(big.NewInt(-1), 2))
	// Output:
	// -0.000000000000000001
	// -0.01 <nil>
}

func ExampleParse() {
	fmt.Println(fixedpoint.Parse("-1.23"))
	fmt.Println(fixedpoint.Parse(".5"))
	fmt.Println(fixedpoint.Parse("5."))
	_, err := fixedpoint.Parse("1e8")
	fmt.Println(fixedpoint.ParseError.Has(err))
	// Output:
	// -1.23 <nil>
	// 0.5 <nil>
	// 5.0 <nil>
	// true
}

func ExampleParseWithPrecision() {
	fmt.Println(fixedpoint.ParseWithPrecision("1.239", 2))
	fmt.Println(fixedpoint.ParseWithPrecision("1.239", 0))
	// Output:
	// 1.23 <nil>
	// 1 <nil>
}

func ExampleMustParse() {
	fmt.Println(fixedpoint.MustParse("-1.23"))
	// Output: -1.23
}

func ExampleParseChainAmount() {
	fmt.Println(fixedpoint.ParseChainAmount("1500000", 6))
	fmt.Println(fixedpoint.ParseChainAmount("0xde0b6b3a7640000", 18))
	// Output:
	// 1.5 <nil>
	// 1.0 <nil>
}

func ExampleParseHex() {
	fmt.Println(fixedpoint.ParseHex("0x16345785d8a0000", 18))
	// Output: 0.1 <nil>
}

func ExampleDecimal_Hex() {
	d := fixedpoint.MustParse("0.1")
	fmt.Println(d.Hex(18))
	// Output: 0x16345785d8a0000 <nil>
}

func ExampleDecimal_String() {
	fmt.Println(fixedpoint.MustParse("123.123").String())
	fmt.Println(fixedpoint.MustParse("123").String())
	fmt.Println(fixedpoint.MustParse("123").Rescale(0).String())
	// Output:
	// 123.123
	// 123.0
	// 123
}

func ExampleDecimal_Truncated() {
	d := fixedpoint.MustParse("789.789")
	fmt.Println(d.Truncated(4))
	fmt.Println(d.Truncated(2))
	fmt.Println(d.Truncated(0))
	// Output:
	// 789.7890
	// 789.78
	// 789
}

func ExampleDecimal_Rounded() {
	d := fixedpoint.MustParse("789.789")
	e := fixedpoint.MustParse("999.96")
	f := fixedpoint.MustParse("-1.255")
	fmt.Println(d.Rounded(2))
	fmt.Println(d.Rounded(0))
	fmt.Println(e.Rounded(0))
	fmt.Println(f.Rounded(2))
	// Output:
	// 789.79
	// 790
	// 1000
	// -1.26
}

func ExampleDecimal_BigInt() {
	d, err := fixedpoint.NewWithPrecision("123.123", 10)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.BigInt(6))
	fmt.Println(d.BigInt(18))
	fmt.Println(d.BigInt(0))
	// Output:
	// 123123000
	// 123123000000000000000
	// 123
}

func ExampleDecimal_Rescale() {
	d := fixedpoint.MustParse("1.239")
	e := d.Rescale(2)
	fmt.Println(e, e.Precision())
	// Output: 1.23 2
}

func ExampleDecimal_Add() {
	d := fixedpoint.MustParse("5.67")
	e := fixedpoint.MustParse("-8")
	fmt.Println(d.Add(e))
	// Output: -2.33
}

func ExampleDecimal_Sub() {
	d := fixedpoint.MustParse("-5.67")
	e := fixedpoint.MustParse("8")
	fmt.Println(d.Sub(e))
	// Output: -13.67
}

func ExampleDecimal_Mul() {
	d := fixedpoint.MustParse("123.123")
	e := fixedpoint.MustParse("12.12")
	fmt.Println(d.Mul(e))
	// Output: 1492.25076
}

func ExampleDecimal_Div() {
	d := fixedpoint.MustParse("123.123")
	e := fixedpoint.MustParse("12.12")
	fmt.Println(d.Div(e))
	_, err := d.Div(fixedpoint.MustParse("0"))
	fmt.Println(fixedpoint.DivisionByZero.Has(err))
	// Output:
	// 10.158663366336633663 <nil>
	// true
}

func ExampleDecimal_AddStrict() {
	d := fixedpoint.MustParse("1.5")
	e := d.Rescale(2)
	fmt.Println(d.AddStrict(d))
	_, err := d.AddStrict(e)
	fmt.Println(fixedpoint.PrecisionMismatch.Has(err))
	// Output:
	// 3.0 <nil>
	// true
}

func ExampleDecimal_MulValue() {
	d := fixedpoint.MustParse("2.5")
	fmt.Println(d.MulValue("4"))
	fmt.Println(d.MulValue(3))
	// Output:
	// 10.0 <nil>
	// 7.5 <nil>
}

func ExampleDecimal_Cmp() {
	d := fixedpoint.MustParse("1.5")
	e := d.Rescale(1)
	f := fixedpoint.MustParse("2")
	fmt.Println(d.Cmp(e))
	fmt.Println(d.Cmp(f))
	fmt.Println(f.Cmp(d))
	// Output:
	// 0
	// -1
	// 1
}

func ExampleDecimal_Sign() {
	fmt.Println(fixedpoint.MustParse("-1.23").Sign())
	fmt.Println(fixedpoint.MustParse("0").Sign())
	fmt.Println(fixedpoint.MustParse("1.23").Sign())
	// Output:
	// -1
	// 0
	// 1
}

func ExampleDecimal_MarshalJSON() {
	type Fee struct {
		Amount fixedpoint.Decimal `json:"amount"`
	}
	b, err := json.Marshal(Fee{Amount: fixedpoint.MustParse("0.003")})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: {"amount":"0.003"}
}

func ExampleDecimal_UnmarshalJSON() {
	type Fee struct {
		Amount fixedpoint.Decimal `json:"amount"`
	}
	var f Fee
	err := json.Unmarshal([]byte(`{"amount":0.003}`), &f)
	fmt.Println(f.Amount, err)
	// Output: 0.003 <nil>
}

func ExampleDecimal_Scan() {
	var d fixedpoint.Decimal
	err := d.Scan("5.67")
	fmt.Println(d, err)
	// Output: 5.67 <nil>
}

func ExampleNullDecimal_Scan() {
	var n fixedpoint.NullDecimal
	err := n.Scan(nil)
	fmt.Println(n.Valid, err)
	// Output: false <nil>
}

func ExampleNewFromShopspring() {
	s := shopspring.RequireFromString("1.239")
	fmt.Println(fixedpoint.NewFromShopspring(s, 2))
	fmt.Println(fixedpoint.NewFromShopspring(s, 18))
	// Output:
	// 1.23
	// 1.239
}
