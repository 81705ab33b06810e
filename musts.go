package fixedpoint

import "fmt"

// MustNew is like [New] but panics if the value cannot be converted.
func MustNew(v any) Decimal {
	d, err := New(v)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v) failed: %v", v, err))
	}
	return d
}

// MustDiv is like [Decimal.Div] but panics if computing error.
func (d Decimal) MustDiv(e Decimal) Decimal {
	f, err := d.Div(e)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", e, err))
	}
	return f
}

// MustAddValue is like [Decimal.AddValue] but panics if computing error.
func (d Decimal) MustAddValue(v any) Decimal {
	f, err := d.AddValue(v)
	if err != nil {
		panic(fmt.Sprintf("MustAddValue(%v) failed: %v", v, err))
	}
	return f
}

// MustSubValue is like [Decimal.SubValue] but panics if computing error.
func (d Decimal) MustSubValue(v any) Decimal {
	f, err := d.SubValue(v)
	if err != nil {
		panic(fmt.Sprintf("MustSubValue(%v) failed: %v", v, err))
	}
	return f
}

// MustMulValue is like [Decimal.MulValue] but panics if computing error.
func (d Decimal) MustMulValue(v any) Decimal {
	f, err := d.MulValue(v)
	if err != nil {
		panic(fmt.Sprintf("MustMulValue(%v) failed: %v", v, err))
	}
	return f
}

// MustDivValue is like [Decimal.DivValue] but panics if computing error.
func (d Decimal) MustDivValue(v any) Decimal {
	f, err := d.DivValue(v)
	if err != nil {
		panic(fmt.Sprintf("MustDivValue(%v) failed: %v", v, err))
	}
	return f
}
