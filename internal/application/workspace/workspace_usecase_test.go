package workspace_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradyon/schema-api/internal/application/dto"
	"github.com/tradyon/schema-api/internal/application/workspace"
	"github.com/tradyon/schema-api/internal/domain"
	"github.com/tradyon/schema-api/internal/domain/catalog"
	"github.com/tradyon/schema-api/internal/domain/entity"
	"github.com/tradyon/schema-api/internal/domain/repository"
	"github.com/tradyon/schema-api/internal/infrastructure/memory"
	"github.com/tradyon/schema-api/pkg/logger"
)

var clovesColor = []string{"Red", "Brown", "Yellow", "Black", "White"}

func newUseCase(t *testing.T) (*workspace.WorkspaceUseCase, *memory.WorkspaceRepo) {
	t.Helper()
	repo := memory.NewWorkspaceRepository()
	return workspace.NewWorkspaceUseCase(repo, catalog.Default(), logger.Nop()), repo
}

func TestCreateCompany_ConflictoSinDistinguirMayusculas(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	out, err := uc.CreateCompany(ctx, dto.CreateCompanyRequest{CompanyName: "Acme", ContactPerson: "Jane"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Acme", out.CompanyName)
	assert.Equal(t, "Jane", out.ContactPerson)

	_, err = uc.CreateCompany(ctx, dto.CreateCompanyRequest{CompanyName: "acme", ContactPerson: "Bob"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateCompany_CamposRequeridos(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.CreateCompany(context.Background(), dto.CreateCompanyRequest{CompanyName: "  ", ContactPerson: "Jane"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "companyName")

	_, err = uc.CreateCompany(context.Background(), dto.CreateCompanyRequest{CompanyName: "Acme"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "contactPerson")
}

func TestAddProduct_RecreaEmpresaYDetectaDuplicado(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()

	out, err := uc.AddProduct(ctx, dto.AddProductRequest{CompanyName: "Acme", ProductName: "Cloves"})
	require.NoError(t, err)
	assert.Equal(t, "Cloves", out.ProductName)

	c, err := repo.Get(ctx, "ACME")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Contains(t, c.Products, "Cloves")

	_, err = uc.AddProduct(ctx, dto.AddProductRequest{CompanyName: "acme", ProductName: "Cloves"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAddCategory_SinProductoPrevioSiembraCatalogo(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()

	out, err := uc.AddCategory(ctx, dto.AddCategoryRequest{CompanyName: "acme", ProductName: "Cloves", CategoryName: "Color"})
	require.NoError(t, err)
	assert.Equal(t, clovesColor, out.Options)

	c, err := repo.Get(ctx, "acme")
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Contains(t, c.Products, "Cloves")
	assert.Empty(t, c.Products["Cloves"].Categories["Color"].SelectedValues.Values())

	_, err = uc.AddCategory(ctx, dto.AddCategoryRequest{CompanyName: "acme", ProductName: "Cloves", CategoryName: "Color"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAddCategory_SinEntradaEnCatalogoQuedaVacia(t *testing.T) {
	uc, _ := newUseCase(t)
	out, err := uc.AddCategory(context.Background(), dto.AddCategoryRequest{CompanyName: "acme", ProductName: "Saffron", CategoryName: "Grade"})
	require.NoError(t, err)
	require.NotNil(t, out.Options)
	assert.Empty(t, out.Options)
}

func TestAddOption_EsIdempotente(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	in := dto.AddOptionRequest{CompanyName: "acme", ProductName: "Cloves", CategoryName: "Color", Option: "Teal"}

	first, err := uc.AddOption(ctx, in)
	require.NoError(t, err)
	assert.True(t, first.Added)

	second, err := uc.AddOption(ctx, in)
	require.NoError(t, err)
	assert.False(t, second.Added)
	assert.Equal(t, first.Options, second.Options)

	count := 0
	for _, o := range second.Options {
		if o == "Teal" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSelectValue_ValorDesconocidoSeAgregaYSelecciona(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	_, err := uc.AddCategory(ctx, dto.AddCategoryRequest{CompanyName: "acme", ProductName: "Cloves", CategoryName: "Color"})
	require.NoError(t, err)

	out, err := uc.SelectValue(ctx, dto.SelectValueRequest{CompanyName: "acme", ProductName: "Cloves", CategoryName: "Color", Value: "Teal"})
	require.NoError(t, err)
	assert.True(t, out.Selected)
	assert.Equal(t, append(append([]string{}, clovesColor...), "Teal"), out.Options)
	assert.Equal(t, []string{"Teal"}, out.SelectedValues)
}

func TestSelectValue_DosVecesRestauraSeleccion(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	in := dto.SelectValueRequest{CompanyName: "acme", ProductName: "Cloves", CategoryName: "Color", Value: "Red"}

	_, err := uc.SelectValue(ctx, dto.SelectValueRequest{CompanyName: "acme", ProductName: "Cloves", CategoryName: "Color", Value: "Brown"})
	require.NoError(t, err)
	before, err := uc.GetCompany(ctx, "acme")
	require.NoError(t, err)

	_, err = uc.SelectValue(ctx, in)
	require.NoError(t, err)
	out, err := uc.SelectValue(ctx, in)
	require.NoError(t, err)
	assert.False(t, out.Selected)
	assert.Equal(t, before.Products["Cloves"].Categories["Color"].SelectedValues, out.SelectedValues)
}

func TestSecuencia_SeleccionSiempreSubconjuntoDeOpciones(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()
	values := []string{"Red", "Teal", "Red", "Magenta", "Brown", "Teal", "Ochre"}
	for i, v := range values {
		if i%2 == 0 {
			_, err := uc.AddOption(ctx, dto.AddOptionRequest{CompanyName: "Acme", ProductName: "Cloves", CategoryName: "Color", Option: v + "-extra"})
			require.NoError(t, err)
		}
		_, err := uc.SelectValue(ctx, dto.SelectValueRequest{CompanyName: "Acme", ProductName: "Cloves", CategoryName: "Color", Value: v})
		require.NoError(t, err)

		c, err := repo.Get(ctx, "acme")
		require.NoError(t, err)
		cat := c.Products["Cloves"].Categories["Color"]
		for _, sel := range cat.SelectedValues.Values() {
			assert.True(t, cat.Options.Contains(sel), "%q seleccionado sin estar en opciones", sel)
		}
	}
}

func TestGetCompany_InexistenteEsNotFound(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.GetCompany(context.Background(), "nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCompanyYListCompanies(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	for _, name := range []string{"Beta", "Alpha"} {
		_, err := uc.CreateCompany(ctx, dto.CreateCompanyRequest{CompanyName: name, ContactPerson: "X"})
		require.NoError(t, err)
	}
	list, err := uc.ListCompanies(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "alpha", list.Items[0].ID)

	require.NoError(t, uc.DeleteCompany(ctx, "BETA"))
	assert.ErrorIs(t, uc.DeleteCompany(ctx, "beta"), domain.ErrNotFound)
}

func TestRestoreCompany_InstalaSnapshotSoloSiFalta(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	data := []byte(`{"companyName":"Acme","contactPerson":"Jane","products":{"Cloves":{"categories":{"Color":{"options":["Red"],"selectedValues":["Teal"]}}}}}`)

	c, err := uc.RestoreCompany(ctx, "acme", data)
	require.NoError(t, err)
	assert.Equal(t, "acme", c.ID)
	assert.Equal(t, []string{"Red", "Teal"}, c.Products["Cloves"].Categories["Color"].Options.Values())

	// ya existe: se conserva la versión del servidor
	again, err := uc.RestoreCompany(ctx, "ACME", []byte(`{"companyName":"Acme","products":{}}`))
	require.NoError(t, err)
	assert.Contains(t, again.Products, "Cloves")
}

func TestRestoreCompany_SnapshotDeOtraEmpresa(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.RestoreCompany(context.Background(), "acme", []byte(`{"companyName":"Globex"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RestoreCompany(context.Background(), "acme", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// staleReadRepo simula una lectura desactualizada: Get nunca ve la empresa.
type staleReadRepo struct{ repository.WorkspaceRepository }

func (staleReadRepo) Get(context.Context, string) (*entity.Company, error) { return nil, nil }

func TestAddProduct_RecreacionNoPisaEmpresaExistente(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWorkspaceRepository()
	seed := entity.NewCompany("Acme", "Jane", time.Now())
	seed.Products["Pepper"] = entity.NewProduct()
	require.NoError(t, repo.Set(ctx, seed))

	uc := workspace.NewWorkspaceUseCase(staleReadRepo{repo}, catalog.Default(), logger.Nop())
	_, err := uc.AddProduct(ctx, dto.AddProductRequest{CompanyName: "acme", ProductName: "Cloves"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.ContactPerson)
	assert.Contains(t, got.Products, "Pepper")
	assert.Contains(t, got.Products, "Cloves")
}

func TestCreateCompany_ConflictoAunqueLaLecturaNoLaVea(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWorkspaceRepository()
	require.NoError(t, repo.Set(ctx, entity.NewCompany("Acme", "Jane", time.Now())))

	uc := workspace.NewWorkspaceUseCase(staleReadRepo{repo}, catalog.Default(), logger.Nop())
	_, err := uc.CreateCompany(ctx, dto.CreateCompanyRequest{CompanyName: "ACME", ContactPerson: "Bob"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := repo.Get(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.ContactPerson)
}
