// schemactl herramientas de consola para inspeccionar la carpeta de salida y
// el catálogo de productos.
//
// Uso:
//
//	go run ./cmd/schemactl outputs [--dir ./output]
//	go run ./cmd/schemactl catalog products [--file catalog.yaml]
//	go run ./cmd/schemactl catalog categories Cloves
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
