package rational

import "math/big"

// Add returns a + b. A nil operand acts as the identity: the non-nil
// operand is returned as-is, and Add(nil, nil) is nil. Inputs are already
// canonical, so the result only needs one normalization.
func Add(a, b *Rational) *Rational {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	var num, t, den big.Int
	num.Mul(&a.num, &b.den)
	t.Mul(&b.num, &a.den)
	num.Add(&num, &t)
	den.Mul(&a.den, &b.den)
	r, _ := normalize(&num, &den)
	return r
}

// Sub returns a - b, with nil treated as in Add: Sub(a, nil) is a,
// Sub(nil, b) is -b, and Sub(nil, nil) is nil.
func Sub(a, b *Rational) *Rational {
	if b == nil {
		return a
	}
	return Add(a, Neg(b))
}

// Neg returns -r.
func Neg(r *Rational) *Rational {
	if r == nil {
		return nil
	}
	out := &Rational{}
	out.num.Neg(&r.num)
	out.den.Set(&r.den)
	return out
}

// Mul returns a * b. A zero operand short-circuits to the canonical zero
// without performing the big-integer multiplication.
func Mul(a, b *Rational) *Rational {
	if a == nil || b == nil {
		return nil
	}
	if a.num.Sign() == 0 || b.num.Sign() == 0 {
		return Zero()
	}
	var num, den big.Int
	num.Mul(&a.num, &b.num)
	den.Mul(&a.den, &b.den)
	r, _ := normalize(&num, &den)
	return r
}

// Div returns a / b. A divisor with a zero numerator fails with
// ErrDivisionByZero. A zero dividend returns the canonical zero without
// touching the divisor.
func Div(a, b *Rational) (*Rational, error) {
	if b == nil || b.num.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if a == nil {
		return nil, ErrInvalidValue
	}
	if a.num.Sign() == 0 {
		return Zero(), nil
	}
	var num, den big.Int
	num.Mul(&a.num, &b.den)
	den.Mul(&a.den, &b.num)
	return normalize(&num, &den)
}
