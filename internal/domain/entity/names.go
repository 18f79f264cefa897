package entity

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lowerCaser = cases.Lower(language.Und)

// NormalizeName recorta espacios y lleva a forma NFC. Se usa para nombres de
// producto, categoría y valores de opción, que conservan mayúsculas.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeCompanyID clave de búsqueda de una empresa: NormalizeName en minúsculas.
// "  Acme " y "ACME" producen la misma clave.
func NormalizeCompanyID(s string) string {
	return lowerCaser.String(NormalizeName(s))
}

// SanitizeFileName reemplaza todo carácter fuera de [A-Za-z0-9] por "_".
// Cuenta unidades UTF-16, como el cliente web: un emoji fuera del BMP produce "__".
func SanitizeFileName(s string) string {
	units := utf16.Encode([]rune(s))
	var b strings.Builder
	b.Grow(len(units))
	for _, u := range units {
		switch {
		case u >= 'a' && u <= 'z', u >= 'A' && u <= 'Z', u >= '0' && u <= '9':
			b.WriteByte(byte(u))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
