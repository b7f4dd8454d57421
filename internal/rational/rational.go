// Package rational implements exact arbitrary-precision fraction arithmetic
// for unit conversion. Values are immutable: every operation returns a new
// Rational in lowest terms with a strictly positive denominator, so repeated
// round-trip conversions never accumulate floating-point error.
package rational

import (
	"errors"
	"math/big"
)

var (
	// ErrDivisionByZero is returned when a divisor's numerator is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidValue is returned when a value's denominator is zero.
	ErrInvalidValue = errors.New("invalid rational value")
)

// Rational is an exact fraction. The zero value of the struct is not valid;
// values are built through Parse, FromInt, FromFrac, or an arithmetic
// operation, all of which normalize their result.
type Rational struct {
	num big.Int
	den big.Int
}

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// Zero returns the canonical zero value {0, 1}.
func Zero() *Rational {
	r := &Rational{}
	r.den.SetInt64(1)
	return r
}

// FromInt returns the rational n/1.
func FromInt(n int64) *Rational {
	r := &Rational{}
	r.num.SetInt64(n)
	r.den.SetInt64(1)
	return r
}

// FromFrac returns the normalized rational num/den.
func FromFrac(num, den int64) (*Rational, error) {
	return normalize(big.NewInt(num), big.NewInt(den))
}

// normalize reduces num/den to canonical form: lowest terms, positive
// denominator, sign carried by the numerator. A zero denominator is
// rejected with ErrInvalidValue.
func normalize(num, den *big.Int) (*Rational, error) {
	if den.Sign() == 0 {
		return nil, ErrInvalidValue
	}
	r := &Rational{}
	r.num.Set(num)
	r.den.Set(den)
	if r.den.Sign() < 0 {
		r.num.Neg(&r.num)
		r.den.Neg(&r.den)
	}
	if r.num.Sign() == 0 {
		r.den.SetInt64(1)
		return r, nil
	}
	var abs, gcd big.Int
	abs.Abs(&r.num)
	gcd.GCD(nil, nil, &abs, &r.den)
	if gcd.Cmp(bigOne) != 0 {
		r.num.Quo(&r.num, &gcd)
		r.den.Quo(&r.den, &gcd)
	}
	return r, nil
}

// Sign reports -1, 0, or +1 depending on the sign of r.
func (r *Rational) Sign() int {
	return r.num.Sign()
}

// IsZero reports whether r is exactly zero.
func (r *Rational) IsZero() bool {
	return r.num.Sign() == 0
}

// Equal reports whether r and o represent the same number. Both are in
// canonical form, so component-wise comparison suffices.
func (r *Rational) Equal(o *Rational) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.num.Cmp(&o.num) == 0 && r.den.Cmp(&o.den) == 0
}

// Num returns a copy of the numerator.
func (r *Rational) Num() *big.Int {
	return new(big.Int).Set(&r.num)
}

// Den returns a copy of the denominator.
func (r *Rational) Den() *big.Int {
	return new(big.Int).Set(&r.den)
}

// Float64 returns the nearest native float to r. It is lossy and intended
// only for non-authoritative display, such as seeding a numeric input
// widget; canonical output goes through DecimalString.
func (r *Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(&r.num, &r.den).Float64()
	return f
}

// String returns the canonical decimal form of r.
func (r *Rational) String() string {
	return r.DecimalString()
}
