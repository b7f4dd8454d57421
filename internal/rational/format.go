package rational

import (
	"math/big"
	"strings"
)

// maxFractionDigits caps long division so that non-terminating repeating
// fractions (thirds, sevenths, ...) still format in bounded time.
const maxFractionDigits = 24

// DecimalString renders r as its canonical decimal form: long division of
// the magnitude, at most maxFractionDigits generated fractional digits
// with half-up rounding on the digit that follows, trailing zeros
// trimmed, and no "-0". This is the single serialization of a Rational;
// display or storage must never substitute a float's own formatting.
func (r *Rational) DecimalString() string {
	if r.num.Sign() == 0 {
		return "0"
	}
	neg := r.num.Sign() < 0

	var num big.Int
	num.Abs(&r.num)

	var intPart, rem big.Int
	intPart.QuoRem(&num, &r.den, &rem)

	digits := make([]byte, 0, maxFractionDigits)
	var digit big.Int
	for i := 0; i < maxFractionDigits && rem.Sign() != 0; i++ {
		rem.Mul(&rem, bigTen)
		digit.QuoRem(&rem, &r.den, &rem)
		digits = append(digits, byte('0'+digit.Int64()))
	}

	if rem.Sign() != 0 {
		// One more digit decides the rounding direction.
		rem.Mul(&rem, bigTen)
		digit.Quo(&rem, &r.den)
		if digit.Int64() >= 5 {
			digits = roundUp(digits, &intPart)
		}
	}

	for len(digits) > 0 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}

	var b strings.Builder
	if neg && !(intPart.Sign() == 0 && len(digits) == 0) {
		b.WriteByte('-')
	}
	b.WriteString(intPart.String())
	if len(digits) > 0 {
		b.WriteByte('.')
		b.Write(digits)
	}
	return b.String()
}

// FractionString renders r as exact fraction text: the plain numerator
// when the denominator is 1, "num/den" otherwise. Both forms re-parse to
// the identical value, which DecimalString cannot guarantee for
// non-terminating expansions.
func (r *Rational) FractionString() string {
	if r.den.Cmp(bigOne) == 0 {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

// roundUp propagates a carry through the generated digit sequence. A
// carry past the most significant fractional digit increments the
// integer part and zeroes the fraction.
func roundUp(digits []byte, intPart *big.Int) []byte {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] != '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	intPart.Add(intPart, bigOne)
	return digits
}
