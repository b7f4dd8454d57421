package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitconv/internal/catalog"
)

var (
	compactOut   string
	compactKinds []string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog maintenance commands",
}

var catalogCompactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Project the catalog down to a compact per-kind listing",
	Long: `Builds the compact catalog served to size-sensitive consumers:
per quantity kind, a label-sorted list of [code, label, multiplier]
triples. Multipliers are emitted as exact text, fractions included, so
consumers can re-parse them without precision loss.`,
	RunE: runCatalogCompact,
}

func runCatalogCompact(cmd *cobra.Command, args []string) error {
	cats, err := loader.LoadAll(cmd.Context(), cfg.Catalog.Sources...)
	if err != nil {
		return err
	}

	kinds := compactKinds
	if len(kinds) == 0 {
		kinds = cfg.Catalog.CommonKinds
	}

	merged := &catalog.CompactCatalog{
		Categories: make(map[string]string),
		Units:      make(map[string][]catalog.CompactUnit),
	}
	total := 0
	for _, c := range cats {
		compact := c.Compact(kinds)
		for kind, label := range compact.Categories {
			merged.Categories[kind] = label
		}
		for kind, list := range compact.Units {
			merged.Units[kind] = append(merged.Units[kind], list...)
			total += len(list)
		}
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	logger.Info("compact catalog built",
		zap.Int("kinds", len(merged.Units)), zap.Int("units", total))

	if compactOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(compactOut, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", compactOut, err)
	}
	return nil
}
