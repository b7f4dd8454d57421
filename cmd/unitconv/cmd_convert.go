package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitconv/internal/catalog"
	"unitconv/internal/rational"
	"unitconv/internal/units"
)

var approximate bool

// convertCmd converts a value between two units by UCUM code or
// catalog identifier.
var convertCmd = &cobra.Command{
	Use:   "convert [value] [from] [to]",
	Short: "Convert a value between two compatible units",
	Long: `Converts a value from one unit to another through the family's
reference unit. The value may be an integer, a decimal, scientific
notation, or an exact fraction like 5/9. Units are given as UCUM codes
(mm, [degF]) or catalog identifiers (MilliM, DEG_F).

Example:
  unitconv convert 32 [degF] Cel
  unitconv convert 1/3 m mm --approx`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, fromCode, toCode := args[0], args[1], args[2]

	cats, err := loader.LoadAll(cmd.Context(), cfg.Catalog.Sources...)
	if err != nil {
		return err
	}

	from, err := findUnit(cats, fromCode)
	if err != nil {
		return err
	}
	to, err := findUnit(cats, toCode)
	if err != nil {
		return err
	}

	logger.Debug("converting",
		zap.String("value", value),
		zap.String("from", from.ID),
		zap.String("to", to.ID))

	result, err := units.Convert(rational.FromText(value), from, to)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.DecimalString())
	if approximate {
		fmt.Fprintf(cmd.OutOrStdout(), "~ %g\n", result.Float64())
	}
	return nil
}

// findUnit resolves a UCUM code or identifier against the loaded
// catalogs, code lookup first.
func findUnit(cats []*catalog.Catalog, code string) (*units.Unit, error) {
	for _, c := range cats {
		if u, ok := c.ResolveCode(code); ok {
			return u, nil
		}
	}
	for _, c := range cats {
		if u, ok := c.Lookup(code); ok {
			return u, nil
		}
	}
	return nil, fmt.Errorf("unknown unit %q", code)
}
