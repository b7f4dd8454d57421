package catalog

import (
	"strings"

	"unitconv/internal/units"
)

// The micro prefix appears in the wild as both the micro sign and the
// Greek small mu; catalogs and user input disagree on which.
const (
	microSign = "µ"
	greekMu   = "μ"
)

// ResolveCode maps a UCUM display code to its unit, trying the exact
// code first and then its micro-sign spelling variants. The lookup is
// opaque to conversion; it only selects a record.
func (c *Catalog) ResolveCode(code string) (*units.Unit, bool) {
	for _, variant := range codeVariants(code) {
		if id, found := c.aliases[variant]; found {
			return c.units[id], true
		}
	}
	return nil, false
}

// codeVariants returns the code plus its Unicode-normalization variants,
// exact form first.
func codeVariants(code string) []string {
	variants := []string{code}
	if strings.Contains(code, microSign) {
		variants = append(variants, strings.ReplaceAll(code, microSign, greekMu))
	}
	if strings.Contains(code, greekMu) {
		variants = append(variants, strings.ReplaceAll(code, greekMu, microSign))
	}
	return variants
}
