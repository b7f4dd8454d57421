package units

import (
	"fmt"

	"unitconv/internal/rational"
)

// ToReference converts a displayed value to the unit-independent
// reference quantity: value*multiplier + offset.
func ToReference(value rational.Numeric, u *Unit) (*rational.Rational, error) {
	if err := checkAffine(u); err != nil {
		return nil, err
	}
	v, ok := value.Resolve()
	if !ok {
		return nil, fmt.Errorf("%w: value for unit %s", ErrInvalidNumber, u.ID)
	}
	return rational.Add(rational.Mul(v, u.Multiplier), u.Offset), nil
}

// FromReference converts a reference quantity back to the unit's display
// scale: (value - offset) / multiplier. A zero multiplier is a catalog
// defect and surfaces as ErrDivisionByZero rather than being absorbed.
func FromReference(value rational.Numeric, u *Unit) (*rational.Rational, error) {
	if err := checkAffine(u); err != nil {
		return nil, err
	}
	v, ok := value.Resolve()
	if !ok {
		return nil, fmt.Errorf("%w: reference value for unit %s", ErrInvalidNumber, u.ID)
	}
	out, err := rational.Div(rational.Sub(v, u.Offset), u.Multiplier)
	if err != nil {
		return nil, fmt.Errorf("%w: multiplier of unit %s", ErrDivisionByZero, u.ID)
	}
	return out, nil
}

// Convert moves a value from one unit to another through the reference
// quantity. Callers are expected to have checked ConvertibleTo already;
// the check is repeated here so an incompatible pair can never yield a
// number.
func Convert(value rational.Numeric, from, to *Unit) (*rational.Rational, error) {
	if err := checkAffine(from); err != nil {
		return nil, err
	}
	if err := checkAffine(to); err != nil {
		return nil, err
	}
	if !from.ConvertibleTo(to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIncompatibleUnits, from.ID, to.ID)
	}
	ref, err := ToReference(value, from)
	if err != nil {
		return nil, err
	}
	return FromReference(rational.FromRational(ref), to)
}

// checkAffine rejects records the affine formula cannot serve before any
// arithmetic happens.
func checkAffine(u *Unit) error {
	if u == nil {
		return fmt.Errorf("%w: missing unit record", ErrDataIntegrity)
	}
	if u.Logarithmic {
		return fmt.Errorf("%w: %s is logarithmic", ErrUnsupportedUnitKind, u.ID)
	}
	if u.Multiplier == nil {
		return fmt.Errorf("%w: unit %s has no multiplier", ErrDataIntegrity, u.ID)
	}
	return nil
}
