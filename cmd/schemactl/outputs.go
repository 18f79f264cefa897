package main

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tradyon/schema-api/internal/application/export"
	"github.com/tradyon/schema-api/internal/infrastructure/exportfs"
)

func newOutputsCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "outputs",
		Short: "Lista los JSON exportados y su contenido",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = defaultOutputDir()
			}
			return printOutputs(cmd, exportfs.New(afero.NewOsFs(), dir))
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "carpeta de salida (default: EXPORT_OUTPUT_DIR)")
	return cmd
}

func printOutputs(cmd *cobra.Command, store *exportfs.Store) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Carpeta de salida: %s\n", store.Dir())
	if !store.Exists() {
		fmt.Fprintln(w, "La carpeta no existe todavía.")
		return nil
	}

	summaries, err := export.Outputs(store)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Archivos JSON: %d\n", len(summaries))
	for _, s := range summaries {
		fmt.Fprintf(w, "\n%s\n", s.FileName)
		if s.Err != nil {
			fmt.Fprintf(w, "  Error de lectura: %v\n", s.Err)
			continue
		}
		fmt.Fprintf(w, "  Company: %s\n", s.CompanyName)
		fmt.Fprintf(w, "  Contact: %s\n", s.ContactPerson)
		fmt.Fprintf(w, "  Products: %d\n", s.ProductCount)
		fmt.Fprintf(w, "  Export Date: %s\n", s.ExportDate)
		if len(s.Products) > 0 {
			fmt.Fprintf(w, "  Product Names: %s\n", strings.Join(s.Products, ", "))
		}
	}
	return nil
}
