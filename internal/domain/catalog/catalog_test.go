package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradyon/schema-api/internal/domain/catalog"
)

func TestDefault_ClovesColor(t *testing.T) {
	c := catalog.Default()
	assert.Equal(t, []string{"Red", "Brown", "Yellow", "Black", "White"}, c.Options("Cloves", "Color"))
}

func TestDefault_EntradaInexistenteDevuelveVacio(t *testing.T) {
	c := catalog.Default()
	opts := c.Options("Cloves", "Flavour")
	require.NotNil(t, opts)
	assert.Empty(t, opts)
	assert.Empty(t, c.Options("Saffron", "Color"))
	assert.Nil(t, c.Categories("Saffron"))
}

func TestDefault_VariedadesAgrupadas(t *testing.T) {
	c := catalog.Default()
	p, ok := c.Product("Cloves")
	require.True(t, ok)
	assert.Contains(t, p.Varieties, "Clove Buds")

	buds, ok := c.Product("Clove Buds")
	require.True(t, ok)
	assert.NotEmpty(t, buds.Categories)
}

func TestOptions_DevuelveCopia(t *testing.T) {
	c := catalog.Default()
	opts := c.Options("Cloves", "Color")
	opts[0] = "Mutado"
	assert.Equal(t, "Red", c.Options("Cloves", "Color")[0])
}

func TestLoad_DeduplicaOpciones(t *testing.T) {
	src := `
products:
  - name: " Saffron "
    categories:
      - name: Grade
        options: [A, B, A]
`
	c, err := catalog.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, c.Options("Saffron", "Grade"))
	assert.Equal(t, []string{"A", "B"}, c.Options("Saffron ", " Grade"))
}

func TestLoad_ProductoDuplicadoEsError(t *testing.T) {
	src := `
products:
  - name: Saffron
  - name: Saffron
`
	_, err := catalog.Load(strings.NewReader(src))
	assert.Error(t, err)
}
