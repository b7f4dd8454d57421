package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitconv/internal/catalog"
	"unitconv/internal/config"
	"unitconv/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	catalogs   []string

	// Shared state built in PersistentPreRunE
	logger *zap.Logger
	cfg    *config.Config
	loader *catalog.Loader
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "unitconv",
	Short: "unitconv - exact unit conversion on rational arithmetic",
	Long: `unitconv converts physical quantities between units of the same
quantity kind using exact rational arithmetic, so repeated round trips
never drift. Unit definitions come from a QUDT-derived catalog keyed by
identifier, with UCUM display codes as aliases.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if len(catalogs) > 0 {
			cfg.Catalog.Sources = catalogs
		}

		logger, err = logging.New(cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}
		var runID string
		logger, runID = logging.WithRunID(logger)
		logger.Debug("starting", zap.String("run_id", runID))

		loader = catalog.NewLoader(logger)
		if cfg.Catalog.Watch {
			if err := loader.Watch(cfg.Catalog.Sources...); err != nil {
				return fmt.Errorf("failed to watch catalog sources: %w", err)
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if loader != nil {
			_ = loader.Close()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "unitconv.yaml", "Config file path")
	rootCmd.PersistentFlags().StringSliceVar(&catalogs, "catalog", nil, "Catalog source file(s), overriding the config")

	convertCmd.Flags().BoolVar(&approximate, "approx", false, "Also print a lossy float approximation")

	unitsCmd.AddCommand(unitsListCmd)
	unitsCmd.AddCommand(unitsShowCmd)
	unitsListCmd.Flags().StringVar(&listKind, "kind", "", "Restrict to one quantity kind")

	catalogCmd.AddCommand(catalogCompactCmd)
	catalogCompactCmd.Flags().StringVarP(&compactOut, "out", "o", "", "Output file (default: stdout)")
	catalogCompactCmd.Flags().StringSliceVar(&compactKinds, "kinds", nil, "Quantity kinds to keep (default: config common_kinds)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
