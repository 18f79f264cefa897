package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradyon/schema-api/internal/application/export"
	"github.com/tradyon/schema-api/internal/application/workspace"
	"github.com/tradyon/schema-api/internal/domain/catalog"
	"github.com/tradyon/schema-api/internal/domain/entity"
	"github.com/tradyon/schema-api/internal/domain/repository"
	"github.com/tradyon/schema-api/internal/infrastructure/exportfs"
	"github.com/tradyon/schema-api/internal/infrastructure/memory"
	"github.com/tradyon/schema-api/internal/infrastructure/xlsx"
	apphttp "github.com/tradyon/schema-api/internal/interfaces/http"
	"github.com/tradyon/schema-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testApp struct {
	app   *fiber.App
	files *exportfs.Store
}

// buildTestApp arma la API completa sobre el store en memoria y un sistema de
// archivos en memoria para los exports.
func buildTestApp(t *testing.T, repo repository.WorkspaceRepository) testApp {
	t.Helper()
	log := logger.Nop()
	cat := catalog.Default()
	files := exportfs.New(afero.NewMemMapFs(), "/output")
	ws := workspace.NewWorkspaceUseCase(repo, cat, log)
	ex := export.NewExportUseCase(ws, files, []export.Renderer{xlsx.NewWorkbookRenderer()}, nil,
		export.Config{Workbook: true}, log)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{WorkspaceUC: ws, ExportUC: ex, Catalog: cat, Log: log})
	return testApp{app: app, files: files}
}

func (a testApp) do(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

type failingRepo struct{ repository.WorkspaceRepository }

func (failingRepo) Get(context.Context, string) (*entity.Company, error) {
	return nil, errors.New("conexión rechazada: 10.0.0.1:5432")
}

func (failingRepo) Create(context.Context, *entity.Company) (bool, error) {
	return false, errors.New("conexión rechazada: 10.0.0.1:5432")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCompany_DuplicadoDevuelve409(t *testing.T) {
	a := buildTestApp(t, memory.NewWorkspaceRepository())

	resp, body := a.do(t, http.MethodPost, "/api/company/create", map[string]string{"companyName": "Acme", "contactPerson": "Jane"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Acme", body["companyName"])

	resp, body = a.do(t, http.MethodPost, "/api/company/create", map[string]string{"companyName": "acme", "contactPerson": "Bob"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["code"])
	assert.NotEmpty(t, body["error"])
}

func TestCreateCompany_CampoFaltanteDevuelve400(t *testing.T) {
	a := buildTestApp(t, memory.NewWorkspaceRepository())
	resp, body := a.do(t, http.MethodPost, "/api/company/create", map[string]string{"companyName": "Acme"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", body["code"])
	assert.Contains(t, body["error"], "contactPerson")
}

func TestCuerpoInvalidoDevuelve400(t *testing.T) {
	a := buildTestApp(t, memory.NewWorkspaceRepository())

	resp, body := a.do(t, http.MethodPost, "/api/company/add-product", `{"companyName": "Acme",`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", body["code"])

	resp, body = a.do(t, http.MethodPost, "/api/company/add-product", `{"companyName": 42, "productName": "Cloves"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", body["code"])
}

func TestAddCategoryYSelectValue_FlujoCompleto(t *testing.T) {
	a := buildTestApp(t, memory.NewWorkspaceRepository())

	resp, body := a.do(t, http.MethodPost, "/api/company/add-category",
		map[string]string{"companyName": "acme", "productName": "Cloves", "categoryName": "Color"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{"Red", "Brown", "Yellow", "Black", "White"}, body["options"])

	resp, body = a.do(t, http.MethodPost, "/api/company/select-value",
		map[string]string{"companyName": "acme", "productName": "Cloves", "categoryName": "Color", "value": "Teal"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["selected"])
	assert.Equal(t, []any{"Teal"}, body["selectedValues"])
	assert.Contains(t, body["options"], "Teal")

	resp, body = a.do(t, http.MethodPost, "/api/company/add-option",
		map[string]string{"companyName": "acme", "productName": "Cloves", "categoryName": "Color", "option": "Teal"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["added"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Export y lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_SinProductosDevuelve400(t *testing.T) {
	a := buildTestApp(t, memory.NewWorkspaceRepository())
	a.do(t, http.MethodPost, "/api/company/create", map[string]string{"companyName": "Acme", "contactPerson": "Jane"})

	resp, body := a.do(t, http.MethodPost, "/api/company/export", map[string]string{"companyName": "Acme"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", body["code"])
	assert.False(t, a.files.Exists())
}

func TestExport_EscribeArchivos(t *testing.T) {
	a := buildTestApp(t, memory.NewWorkspaceRepository())
	a.do(t, http.MethodPost, "/api/company/create", map[string]string{"companyName": "Acme Spices", "contactPerson": "Jane"})
	a.do(t, http.MethodPost, "/api/company/add-product", map[string]string{"companyName": "Acme Spices", "productName": "Cloves"})

	resp, body := a.do(t, http.MethodPost, "/api/company/export", map[string]string{"companyName": "acme spices"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Acme_Spices.json", body["jsonFileName"])
	assert.Equal(t, "Acme_Spices.xlsx", body["workbookFileName"])
	assert.EqualValues(t, 1, body["productCount"])

	names, err := a.files.List("")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme_Spices.json", "Acme_Spices.xlsx"}, names)
}

func TestExport_RestauraSnapshotDelCliente(t *testing.T) {
	a := buildTestApp(t, memory.NewWorkspaceRepository())
	resp, body := a.do(t, http.MethodPost, "/api/company/export", map[string]any{
		"companyName": "Globex",
		"companyData": map[string]any{
			"companyName":   "Globex",
			"contactPerson": "Hank",
			"products":      map[string]any{"Pepper": map[string]any{"categories": map[string]any{}}},
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hank", body["contactPerson"])

	resp, _ = a.do(t, http.MethodGet, "/api/companies/globex", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetCompany_NombreConEspacios(t *testing.T) {
	a := buildTestApp(t, memory.NewWorkspaceRepository())
	a.do(t, http.MethodPost, "/api/company/create", map[string]string{"companyName": "Acme Spices", "contactPerson": "Jane"})

	resp, body := a.do(t, http.MethodGet, "/api/companies/ACME%20SPICES", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "acme spices", body["id"])

	resp, _ = a.do(t, http.MethodDelete, "/api/companies/acme%20spices", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp, body = a.do(t, http.MethodGet, "/api/companies/acme%20spices", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestDownload_Xlsx(t *testing.T) {
	a := buildTestApp(t, memory.NewWorkspaceRepository())
	a.do(t, http.MethodPost, "/api/company/add-category",
		map[string]string{"companyName": "Acme", "productName": "Cloves", "categoryName": "Color"})

	resp, _ := a.do(t, http.MethodGet, "/api/companies/acme/export/xlsx", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="Acme.xlsx"`)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")

	resp, body := a.do(t, http.MethodGet, "/api/companies/acme/export/docx", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", body["code"])
}

func TestCatalog(t *testing.T) {
	a := buildTestApp(t, memory.NewWorkspaceRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.NotEmpty(t, list)

	resp, body := a.do(t, http.MethodGet, "/api/catalog/Clove%20Buds", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Clove Buds", body["name"])

	resp, _ = a.do(t, http.MethodGet, "/api/catalog/Saffron", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transversales
// ──────────────────────────────────────────────────────────────────────────────

func TestErrorInterno_MensajeGenerico(t *testing.T) {
	a := buildTestApp(t, failingRepo{})
	resp, body := a.do(t, http.MethodPost, "/api/company/create", map[string]string{"companyName": "Acme", "contactPerson": "Jane"})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.Equal(t, "error interno del servidor", body["error"])
}

func TestRequestLogger_PropagaRequestID(t *testing.T) {
	a := buildTestApp(t, memory.NewWorkspaceRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	req.Header.Set("X-Request-ID", "req-123")
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))

	resp, _ = a.do(t, http.MethodGet, "/api/companies", nil)
	assert.Len(t, resp.Header.Get("X-Request-ID"), 36)
}

func TestOpenAPI_DocumentoRegistrado(t *testing.T) {
	a := buildTestApp(t, memory.NewWorkspaceRepository())
	resp, body := a.do(t, http.MethodGet, "/openapi.json", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "2.0", body["swagger"])
	paths, ok := body["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/company/select-value")
}
