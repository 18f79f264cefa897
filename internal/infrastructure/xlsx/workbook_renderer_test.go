package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tradyon/schema-api/internal/application/export"
	"github.com/tradyon/schema-api/internal/domain/entity"
	"github.com/tradyon/schema-api/internal/infrastructure/xlsx"
)

func sampleDocument() export.Document {
	c := entity.NewCompany("Acme", "Jane", time.Now())
	cloves := entity.NewProduct()
	color := entity.NewCategory("Red", "Brown")
	color.ToggleValue("Brown")
	cloves.Categories["Color"] = color
	cloves.Categories["Size"] = entity.NewCategory("Small", "Large")
	c.Products["Cloves"] = cloves
	c.Products["Anise"] = entity.NewProduct()
	return export.BuildDocument(c, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
}

func TestWorkbookRenderer_UnaHojaPorProducto(t *testing.T) {
	data, err := xlsx.NewWorkbookRenderer().Render(context.Background(), sampleDocument())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Anise", "Cloves"}, f.GetSheetList())

	rows, err := f.GetRows("Cloves")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, export.SheetHeader, rows[0])
	assert.Equal(t, []string{"Color", "Brown", "Red, Brown"}, rows[1])
	assert.Equal(t, []string{"Size", "Not selected", "Small, Large"}, rows[2])

	anise, err := f.GetRows("Anise")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Anise"}}, anise)
}
