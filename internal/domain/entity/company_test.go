package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradyon/schema-api/internal/domain/entity"
)

func TestValueSet_AddIgnoraDuplicados(t *testing.T) {
	s := entity.NewValueSet("Red", "Brown", "Red")
	assert.Equal(t, []string{"Red", "Brown"}, s.Values())

	assert.False(t, s.Add("Brown"))
	assert.True(t, s.Add("Teal"))
	assert.Equal(t, []string{"Red", "Brown", "Teal"}, s.Values())
}

func TestValueSet_ToggleDosVecesRestaura(t *testing.T) {
	s := entity.NewValueSet("Red")
	before := s.Values()

	assert.True(t, s.Toggle("Brown"))
	assert.False(t, s.Toggle("Brown"))
	assert.Equal(t, before, s.Values())

	assert.False(t, s.Toggle("Red"))
	assert.True(t, s.Toggle("Red"))
	assert.Equal(t, before, s.Values())
}

func TestValueSet_RemoveConservaOrden(t *testing.T) {
	s := entity.NewValueSet("a", "b", "c")
	assert.True(t, s.Remove("b"))
	assert.False(t, s.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, s.Values())
	assert.False(t, s.Contains("b"))
}

func TestValueSet_JSON(t *testing.T) {
	var empty entity.ValueSet
	b, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	var s entity.ValueSet
	require.NoError(t, json.Unmarshal([]byte(`["x","y","x"]`), &s))
	assert.Equal(t, []string{"x", "y"}, s.Values())
	assert.True(t, s.Contains("y"))
}

func TestCategory_ToggleValueAgregaOpcionDesconocida(t *testing.T) {
	cat := entity.NewCategory("Red", "Brown")

	selected, added := cat.ToggleValue("Teal")
	assert.True(t, selected)
	assert.True(t, added)
	assert.Equal(t, []string{"Red", "Brown", "Teal"}, cat.Options.Values())
	assert.Equal(t, []string{"Teal"}, cat.SelectedValues.Values())

	selected, added = cat.ToggleValue("Teal")
	assert.False(t, selected)
	assert.False(t, added)
	assert.Empty(t, cat.SelectedValues.Values())
	// las opciones nunca se reducen
	assert.Equal(t, []string{"Red", "Brown", "Teal"}, cat.Options.Values())
}

func TestCompany_NormalizeRestableceInvariantes(t *testing.T) {
	raw := `{
		"companyName": "  Acme ",
		"products": {
			"Cloves": {"categories": {
				"Color": {"options": ["Red"], "selectedValues": ["Teal", "Red"]},
				"Size": null
			}},
			"Pepper": {}
		}
	}`
	var c entity.Company
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	c.Normalize()

	assert.Equal(t, "acme", c.ID)
	color := c.Products["Cloves"].Categories["Color"]
	assert.Equal(t, []string{"Red", "Teal"}, color.Options.Values())
	for _, v := range color.SelectedValues.Values() {
		assert.True(t, color.Options.Contains(v))
	}
	require.NotNil(t, c.Products["Cloves"].Categories["Size"])
	require.NotNil(t, c.Products["Pepper"].Categories)
}

func TestCompany_CloneEsProfundo(t *testing.T) {
	c := entity.NewCompany("Acme", "Jane", time.Now())
	c.Products["Cloves"] = entity.NewProduct()
	c.Products["Cloves"].Categories["Color"] = entity.NewCategory("Red")

	cp := c.Clone()
	cp.Products["Cloves"].Categories["Color"].AddOption("Teal")
	cp.Products["Pepper"] = entity.NewProduct()

	assert.Equal(t, []string{"Red"}, c.Products["Cloves"].Categories["Color"].Options.Values())
	assert.NotContains(t, c.Products, "Pepper")
}

func TestCompany_ProductNamesOrdenados(t *testing.T) {
	c := entity.NewCompany("Acme", "Jane", time.Now())
	c.Products["Pepper"] = entity.NewProduct()
	c.Products["Cloves"] = entity.NewProduct()
	assert.Equal(t, []string{"Cloves", "Pepper"}, c.ProductNames())
}

func TestNormalizeCompanyID(t *testing.T) {
	cases := map[string]string{
		"Acme":        "acme",
		"  ACME  ":    "acme",
		"acme":        "acme",
		"Café Ltd":    "café ltd",
		"Cafe\u0301": "café", // forma descompuesta → NFC
	}
	for in, want := range cases {
		assert.Equal(t, want, entity.NormalizeCompanyID(in), "entrada %q", in)
	}
	assert.Equal(t, entity.NormalizeCompanyID("MiXeD"), entity.NormalizeCompanyID("mixed"))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "Acme_Spices_Ltd_", entity.SanitizeFileName("Acme Spices Ltd."))
	assert.Equal(t, "caf_", entity.SanitizeFileName("café"))
	assert.Equal(t, "abc123", entity.SanitizeFileName("abc123"))
	// fuera del BMP: dos unidades UTF-16, dos guiones bajos
	assert.Equal(t, "Acme__", entity.SanitizeFileName("Acme\U0001F336"))
}
