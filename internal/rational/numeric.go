package rational

// Numeric is a tagged value accepted at conversion entry points: an
// already-parsed Rational, raw text, or a raw native float. It replaces
// ad-hoc detection of "does this look like a fraction already" at each
// call site with one explicit resolution path.
type Numeric struct {
	kind numericKind
	rat  *Rational
	text string
	f    float64
}

type numericKind int

const (
	numericAbsent numericKind = iota
	numericRational
	numericText
	numericFloat
)

// FromRational wraps an already-parsed value.
func FromRational(r *Rational) Numeric {
	if r == nil {
		return Numeric{}
	}
	return Numeric{kind: numericRational, rat: r}
}

// FromText wraps a raw numeric literal.
func FromText(s string) Numeric {
	return Numeric{kind: numericText, text: s}
}

// FromFloat wraps a raw native float.
func FromFloat(f float64) Numeric {
	return Numeric{kind: numericFloat, f: f}
}

// Resolve produces the exact Rational for n. The second return value is
// false when n carries no value or its payload does not parse.
func (n Numeric) Resolve() (*Rational, bool) {
	switch n.kind {
	case numericRational:
		return n.rat, true
	case numericText:
		return Parse(n.text)
	case numericFloat:
		return ParseFloat(n.f)
	default:
		return nil, false
	}
}
