package rational

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Parse converts a numeric literal to an exact Rational. It accepts an
// optional leading sign, an integer part, an optional decimal point and
// fractional part, an optional e/E exponent with its own sign, and the
// fraction form "num/den" where both sides are themselves full literals.
//
// The second return value is false when the input carries no value: empty
// text, a malformed literal, or a fraction whose denominator is zero.
// Absence is distinct from numeric zero; callers that require a value must
// treat false as a missing number, not as 0.
func Parse(input string) (*Rational, bool) {
	s := input
	if s == "" {
		return nil, false
	}
	if sep := strings.IndexByte(s, '/'); sep >= 0 {
		num, ok := parseDecimal(s[:sep])
		if !ok {
			return nil, false
		}
		den, ok := parseDecimal(s[sep+1:])
		if !ok || den.IsZero() {
			return nil, false
		}
		r, err := Div(num, den)
		if err != nil {
			return nil, false
		}
		return r, true
	}
	return parseDecimal(s)
}

// ParseFloat converts a native float to an exact Rational. Non-finite
// inputs carry no value. Zero maps directly to the canonical zero, since
// its default text form is not reliably re-parseable. Every other finite
// input is rendered to its shortest decimal text and parsed through the
// string path, accepting whatever rounding the float representation
// already introduced rather than inventing extra precision.
func ParseFloat(f float64) (*Rational, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	if f == 0 {
		return Zero(), true
	}
	return Parse(strconv.FormatFloat(f, 'g', -1, 64))
}

// parseDecimal handles a single signed decimal literal with an optional
// exponent: [+-]digits[.digits][(e|E)[+-]digits].
func parseDecimal(s string) (*Rational, bool) {
	if s == "" {
		return nil, false
	}
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}

	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return nil, false
		}
		exp = e
		s = s[:i]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return nil, false
		}
	}
	digits := intPart + fracPart
	if digits == "" || !allDigits(digits) {
		return nil, false
	}
	if allZeros(digits) {
		// No non-zero digit: exact zero regardless of exponent size.
		return Zero(), true
	}

	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, false
	}
	if neg {
		num.Neg(num)
	}

	// Effective power-of-ten scale: exponent minus fractional digit count.
	den := bigOne
	if scale := exp - len(fracPart); scale > 0 {
		num.Mul(num, pow10(scale))
	} else if scale < 0 {
		den = pow10(-scale)
	}
	r, err := normalize(num, den)
	if err != nil {
		return nil, false
	}
	return r, true
}

// pow10 returns 10^k for k >= 0 using exact big-integer exponentiation.
func pow10(k int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(k)), nil)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
