// Package catalog resolves unit catalog documents into immutable
// units.Unit records and owns the boundary concerns around them: source
// loading with memoization, alias lookup for UCUM display codes, and
// base-unit inference for catalogs that do not declare one.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"unitconv/internal/rational"
	"unitconv/internal/units"
)

// rawUnit is one catalog entry as serialized by the QUDT export tooling.
// quantityKind may be a single string or a list; multiplier and offset
// may be JSON numbers or exact decimal/fraction text.
type rawUnit struct {
	URI          string       `json:"uri" yaml:"uri"`
	UCUMCode     string       `json:"ucumCode" yaml:"ucumCode"`
	Label        string       `json:"label" yaml:"label"`
	QuantityKind kindList     `json:"quantityKind" yaml:"quantityKind"`
	Dimension    string       `json:"dimension" yaml:"dimension"`
	Multiplier   exactLiteral `json:"multiplier" yaml:"multiplier"`
	Offset       exactLiteral `json:"offset" yaml:"offset"`
	BaseUnit     string       `json:"baseUnit" yaml:"baseUnit"`
	Logarithmic  bool         `json:"logarithmic" yaml:"logarithmic"`
}

// exactLiteral keeps a numeric field as its source text so values like
// 0.001 or 5/9 reach the rational parser without a float detour.
type exactLiteral string

func (e *exactLiteral) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*e = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = exactLiteral(s)
		return nil
	}
	// Unquoted JSON number: the raw token is already decimal text.
	*e = exactLiteral(data)
	return nil
}

func (e *exactLiteral) UnmarshalYAML(node *yaml.Node) error {
	*e = exactLiteral(node.Value)
	return nil
}

// kindList accepts "Length" as well as ["Length", "Distance"].
type kindList []string

func (k *kindList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*k = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s != "" {
		*k = []string{s}
	}
	return nil
}

func (k *kindList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*k = list
		return nil
	}
	if node.Value != "" {
		*k = []string{node.Value}
	}
	return nil
}

// Catalog is a fully resolved, immutable unit set. A Catalog is only
// ever published complete: Resolve either returns every record resolved
// or an error, never a partial set.
type Catalog struct {
	units   map[string]*units.Unit
	aliases map[string]string   // UCUM code -> identifier
	byKind  map[string][]string // quantity kind -> identifiers
}

// Resolve parses a catalog document (JSON by default, YAML when yamlDoc
// is set) into a Catalog. A record whose multiplier or offset does not
// parse is a data-integrity failure naming the unit and field.
func Resolve(data []byte, yamlDoc bool) (*Catalog, error) {
	raw := make(map[string]rawUnit)
	if yamlDoc {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", units.ErrDataIntegrity, err)
		}
	} else {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", units.ErrDataIntegrity, err)
		}
	}

	c := &Catalog{
		units:   make(map[string]*units.Unit, len(raw)),
		aliases: make(map[string]string, len(raw)),
		byKind:  make(map[string][]string),
	}

	for id, r := range raw {
		u, err := resolveUnit(id, r)
		if err != nil {
			return nil, err
		}
		c.units[id] = u
		if u.UCUMCode != "" {
			c.aliases[u.UCUMCode] = id
		}
		for _, kind := range sortedKinds(r.QuantityKind) {
			c.byKind[kind] = append(c.byKind[kind], id)
		}
	}

	inferBaseUnits(c.units)

	for _, ids := range c.byKind {
		sort.Strings(ids)
	}
	return c, nil
}

func resolveUnit(id string, r rawUnit) (*units.Unit, error) {
	mult := string(r.Multiplier)
	if mult == "" {
		mult = "1"
	}
	m, ok := rational.Parse(mult)
	if !ok {
		return nil, fmt.Errorf("%w: unit %s: bad multiplier %q", units.ErrDataIntegrity, id, mult)
	}

	var offset *rational.Rational
	if o := string(r.Offset); o != "" {
		v, ok := rational.Parse(o)
		if !ok {
			return nil, fmt.Errorf("%w: unit %s: bad offset %q", units.ErrDataIntegrity, id, o)
		}
		if !v.IsZero() {
			offset = v
		}
	}

	kinds := sortedKinds(r.QuantityKind)
	kindID := ""
	if len(kinds) > 0 {
		kindID = kinds[0]
	}

	return &units.Unit{
		ID:             id,
		Multiplier:     m,
		Offset:         offset,
		ReferenceID:    r.BaseUnit,
		QuantityKindID: kindID,
		Logarithmic:    r.Logarithmic,
		UCUMCode:       r.UCUMCode,
		Label:          r.Label,
		Dimension:      r.Dimension,
		URI:            r.URI,
	}, nil
}

func sortedKinds(kinds []string) []string {
	out := append([]string(nil), kinds...)
	sort.Strings(out)
	return out
}

// Lookup returns the unit with the given catalog identifier.
func (c *Catalog) Lookup(id string) (*units.Unit, bool) {
	u, ok := c.units[id]
	return u, ok
}

// Len reports the number of resolved units.
func (c *Catalog) Len() int {
	return len(c.units)
}

// Units returns all resolved units ordered by identifier.
func (c *Catalog) Units() []*units.Unit {
	ids := make([]string, 0, len(c.units))
	for id := range c.units {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*units.Unit, len(ids))
	for i, id := range ids {
		out[i] = c.units[id]
	}
	return out
}

// QuantityKinds returns the sorted quantity-kind identifiers present in
// the catalog.
func (c *Catalog) QuantityKinds() []string {
	kinds := make([]string, 0, len(c.byKind))
	for k := range c.byKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// UnitsOfKind returns the units carrying the given quantity kind,
// ordered by identifier.
func (c *Catalog) UnitsOfKind(kind string) []*units.Unit {
	ids := c.byKind[kind]
	out := make([]*units.Unit, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.units[id])
	}
	return out
}
