package catalog

import (
	"encoding/json"
	"sort"
)

// CompactUnit is the [code, label, multiplier] triple of the compact
// catalog format, serialized as a JSON array.
type CompactUnit struct {
	Code       string
	Label      string
	Multiplier string
}

func (u CompactUnit) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]string{u.Code, u.Label, u.Multiplier})
}

func (u *CompactUnit) UnmarshalJSON(data []byte) error {
	var triple [3]string
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}
	u.Code, u.Label, u.Multiplier = triple[0], triple[1], triple[2]
	return nil
}

// CompactCatalog is the trimmed-down projection served to size-sensitive
// consumers: just categories and per-kind display triples.
type CompactCatalog struct {
	Categories map[string]string        `json:"categories"`
	Units      map[string][]CompactUnit `json:"units"`
}

// Compact projects the catalog down to the given quantity kinds. Units
// without a UCUM code are skipped; within a kind, units sort by label.
// An empty kinds list keeps every kind.
func (c *Catalog) Compact(kinds []string) *CompactCatalog {
	keep := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		keep[k] = true
	}

	out := &CompactCatalog{
		Categories: make(map[string]string),
		Units:      make(map[string][]CompactUnit),
	}
	for kind, ids := range c.byKind {
		if len(keep) > 0 && !keep[kind] {
			continue
		}
		var list []CompactUnit
		for _, id := range ids {
			u := c.units[id]
			if u.UCUMCode == "" {
				continue
			}
			list = append(list, CompactUnit{
				Code:       u.UCUMCode,
				Label:      u.Label,
				Multiplier: u.Multiplier.FractionString(),
			})
		}
		if len(list) == 0 {
			continue
		}
		sort.Slice(list, func(i, j int) bool { return list[i].Label < list[j].Label })
		out.Categories[kind] = kind
		out.Units[kind] = list
	}
	return out
}
