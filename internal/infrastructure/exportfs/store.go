// Package exportfs implementa la carpeta de salida de los exports sobre afero,
// lo que permite usar un sistema de archivos en memoria en pruebas.
package exportfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/tradyon/schema-api/internal/application/export"
)

// Asegura que Store implementa export.FileStore.
var _ export.FileStore = (*Store)(nil)

// Store carpeta de salida dir dentro de fs.
type Store struct {
	fs  afero.Fs
	dir string
}

// New crea el store sobre el sistema de archivos dado.
func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: filepath.Clean(dir)}
}

// NewOS store sobre el disco real; dir relativo se resuelve contra el directorio de trabajo.
func NewOS(dir string) *Store {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return New(afero.NewOsFs(), dir)
}

// Dir ruta de la carpeta de salida.
func (s *Store) Dir() string { return s.dir }

// WriteFile escribe name en la carpeta (creándola si no existe).
func (s *Store) WriteFile(name string, data []byte) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("crear carpeta %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, name)
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ReadFile lee name desde la carpeta.
func (s *Store) ReadFile(name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return afero.ReadFile(s.fs, filepath.Join(s.dir, name))
}

// List archivos con el sufijo dado; vacío si la carpeta todavía no existe.
func (s *Store) List(suffix string) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer carpeta %s: %w", s.dir, err)
	}
	names := []string{}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Exists true si la carpeta de salida existe.
func (s *Store) Exists() bool {
	ok, err := afero.DirExists(s.fs, s.dir)
	return err == nil && ok
}

func checkName(name string) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("nombre de archivo inválido %q", name)
	}
	return nil
}
