package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listKind string

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Inspect the resolved unit catalog",
}

var unitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resolved units, optionally restricted to one quantity kind",
	RunE:  runUnitsList,
}

var unitsShowCmd = &cobra.Command{
	Use:   "show [unit]",
	Short: "Show one unit's conversion record",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnitsShow,
}

func runUnitsList(cmd *cobra.Command, args []string) error {
	cats, err := loader.LoadAll(cmd.Context(), cfg.Catalog.Sources...)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tKIND\tREFERENCE\tLABEL")
	for _, c := range cats {
		list := c.Units()
		if listKind != "" {
			list = c.UnitsOfKind(listKind)
		}
		for _, u := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				u.ID, u.UCUMCode, u.QuantityKindID, u.ReferenceID, u.Label)
		}
	}
	return w.Flush()
}

func runUnitsShow(cmd *cobra.Command, args []string) error {
	cats, err := loader.LoadAll(cmd.Context(), cfg.Catalog.Sources...)
	if err != nil {
		return err
	}

	u, err := findUnit(cats, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:          %s\n", u.ID)
	fmt.Fprintf(out, "UCUM code:   %s\n", u.UCUMCode)
	fmt.Fprintf(out, "Label:       %s\n", u.Label)
	fmt.Fprintf(out, "Kind:        %s\n", u.QuantityKindID)
	fmt.Fprintf(out, "Reference:   %s\n", u.ReferenceID)
	fmt.Fprintf(out, "Dimension:   %s\n", u.Dimension)
	fmt.Fprintf(out, "Multiplier:  %s\n", u.Multiplier.FractionString())
	if u.Offset != nil {
		fmt.Fprintf(out, "Offset:      %s\n", u.Offset.FractionString())
	}
	if u.Logarithmic {
		fmt.Fprintln(out, "Logarithmic: true (not convertible)")
	}
	return nil
}
