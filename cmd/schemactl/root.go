package main

import (
	"github.com/spf13/cobra"

	"github.com/tradyon/schema-api/pkg/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "schemactl",
		Short:         "Inspección de exportaciones y catálogo de Tradyon Schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newOutputsCmd())
	root.AddCommand(newCatalogCmd())
	return root
}

// defaultOutputDir carpeta de salida configurada (EXPORT_OUTPUT_DIR o ./output).
func defaultOutputDir() string {
	cfg, err := config.Load()
	if err != nil {
		return "output"
	}
	return cfg.Export.OutputDir
}
