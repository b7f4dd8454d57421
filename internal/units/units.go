// Package units defines the affine unit record and the stateless
// conversion protocol between a displayed value and its unit-independent
// reference quantity: reference = value*multiplier + offset.
package units

import (
	"errors"

	"unitconv/internal/rational"
)

// Failure taxonomy for the conversion protocol. Callers classify with
// errors.Is; concrete messages carry the offending unit or value.
var (
	// ErrInvalidNumber marks input that did not parse to a value where
	// one was required.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrDivisionByZero covers a conversion through a zero multiplier.
	// It is the same sentinel the arithmetic layer uses.
	ErrDivisionByZero = rational.ErrDivisionByZero
	// ErrIncompatibleUnits marks a conversion between units that do not
	// share a reference unit and quantity kind.
	ErrIncompatibleUnits = errors.New("incompatible units")
	// ErrUnsupportedUnitKind marks a unit outside the affine family,
	// such as a logarithmic scale.
	ErrUnsupportedUnitKind = errors.New("unsupported unit kind")
	// ErrDataIntegrity marks a malformed unit record, such as a missing
	// multiplier.
	ErrDataIntegrity = errors.New("unit record integrity")
)

// Unit is an immutable catalog record relating a unit to the reference
// unit of its quantity-kind family. Records are built once by catalog
// resolution and never mutated.
type Unit struct {
	// ID is the catalog identifier, e.g. "MilliM" or "DEG_F".
	ID string
	// Multiplier and Offset define the affine relation to the
	// reference unit. Offset may be nil, meaning zero.
	Multiplier *rational.Rational
	Offset     *rational.Rational
	// ReferenceID names the family's reference unit; units convert
	// into one another only within the same ReferenceID and
	// QuantityKindID.
	ReferenceID    string
	QuantityKindID string
	// Logarithmic units are not affine and are rejected by the
	// conversion protocol.
	Logarithmic bool

	// Display metadata, opaque to conversion.
	UCUMCode  string
	Label     string
	Dimension string
	URI       string
}

// ConvertibleTo reports whether values can be converted between u and v:
// both affine, same reference unit, same quantity kind.
func (u *Unit) ConvertibleTo(v *Unit) bool {
	if u == nil || v == nil || u.Logarithmic || v.Logarithmic {
		return false
	}
	if u.ReferenceID == "" || v.ReferenceID == "" {
		return false
	}
	return u.ReferenceID == v.ReferenceID && u.QuantityKindID == v.QuantityKindID
}
