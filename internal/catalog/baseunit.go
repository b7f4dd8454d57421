package catalog

import (
	"strings"

	"unitconv/internal/rational"
	"unitconv/internal/units"
)

var one = rational.FromInt(1)

// siPrefixes are penalized when choosing a base unit for a dimension.
// KiloGM is exempt: the kilogram is itself the SI base unit for mass.
var siPrefixes = []string{
	"Milli", "Micro", "Nano", "Pico", "Femto", "Atto",
	"Centi", "Deci", "Deca", "Hecto",
	"Mega", "Giga", "Tera", "Peta",
}

// inferBaseUnits fills in the reference unit for records that do not
// declare one. For each dimension vector, the identity-scaled unit
// (multiplier 1, no offset) with the lowest score becomes the family's
// reference; records whose dimension has no such candidate keep an
// empty reference and stay unconvertible.
func inferBaseUnits(all map[string]*units.Unit) {
	best := make(map[string]*units.Unit)
	bestScore := make(map[string]int)

	for _, u := range all {
		if !isIdentityScaled(u) {
			continue
		}
		s := scoreBaseCandidate(u)
		if cur, ok := bestScore[u.Dimension]; !ok || s < cur {
			best[u.Dimension] = u
			bestScore[u.Dimension] = s
		}
	}

	for _, u := range all {
		if u.ReferenceID != "" {
			continue
		}
		if b, ok := best[u.Dimension]; ok {
			u.ReferenceID = b.ID
		} else if isIdentityScaled(u) {
			u.ReferenceID = u.ID
		}
	}
}

func isIdentityScaled(u *units.Unit) bool {
	return u.Multiplier != nil && u.Offset == nil && u.Multiplier.Equal(one)
}

// scoreBaseCandidate ranks a base-unit candidate; lower is better.
// Logarithmic scales, derived "PER" compounds, prefixed names, decibel
// families, and long or hyphenated names all rank worse.
func scoreBaseCandidate(u *units.Unit) int {
	score := 0
	name := u.ID

	if u.Logarithmic {
		score += 1000
	}
	score += strings.Count(name, "-PER-") * 50
	if strings.HasPrefix(name, "PER-") {
		score += 50
	}
	for _, prefix := range siPrefixes {
		if strings.Contains(name, prefix) {
			if name == "KiloGM" || strings.HasPrefix(name, "KiloGM-") {
				continue
			}
			score += 100
		}
	}
	if strings.Contains(name, "DeciB") {
		score += 500
	}
	score += strings.Count(name, "-") * 10
	score += len(name)
	return score
}
