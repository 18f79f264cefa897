package export

import "context"

// Renderer convierte un documento a un formato descargable (xlsx, pdf, xml...).
type Renderer interface {
	Format() string
	Extension() string
	ContentType() string
	Render(ctx context.Context, doc Document) ([]byte, error)
}

// SheetPublisher publica el documento en un proveedor de hojas de cálculo y
// devuelve la URL resultante.
type SheetPublisher interface {
	Publish(ctx context.Context, doc Document) (string, error)
}

// FileStore carpeta de salida de los exports.
type FileStore interface {
	// WriteFile escribe name (creando la carpeta si falta) y devuelve la ruta completa.
	WriteFile(name string, data []byte) (string, error)
	ReadFile(name string) ([]byte, error)
	// List nombres de archivo con el sufijo dado, ordenados; vacío si la carpeta no existe.
	List(suffix string) ([]string, error)
	Dir() string
}
