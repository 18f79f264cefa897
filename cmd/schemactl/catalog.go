package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tradyon/schema-api/internal/domain/catalog"
)

func newCatalogCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Consulta el catálogo de productos predefinidos",
	}
	cmd.PersistentFlags().StringVar(&file, "file", "", "catálogo YAML alternativo (default: embebido)")

	load := func() (*catalog.Catalog, error) {
		if file == "" {
			return catalog.Default(), nil
		}
		return catalog.LoadFile(file)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "products",
		Short: "Lista los productos predefinidos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range c.Products() {
				if len(p.Varieties) > 0 {
					fmt.Fprintf(w, "%s (%s)\n", p.Name, strings.Join(p.Varieties, ", "))
					continue
				}
				fmt.Fprintln(w, p.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "categories <product>",
		Short: "Muestra las categorías y opciones por defecto de un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			p, ok := c.Product(args[0])
			if !ok {
				return fmt.Errorf("producto %q no está en el catálogo", args[0])
			}
			w := cmd.OutOrStdout()
			for _, cat := range p.Categories {
				fmt.Fprintf(w, "%s: %s\n", cat.Name, strings.Join(cat.Options, ", "))
			}
			return nil
		},
	})
	return cmd
}
