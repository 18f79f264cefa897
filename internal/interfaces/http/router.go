package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	"github.com/tradyon/schema-api/docs"
	"github.com/tradyon/schema-api/internal/application/export"
	"github.com/tradyon/schema-api/internal/application/workspace"
	"github.com/tradyon/schema-api/internal/domain/catalog"
	"github.com/tradyon/schema-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WorkspaceUC *workspace.WorkspaceUseCase
	ExportUC    *export.ExportUseCase
	Catalog     *catalog.Catalog
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/openapi.json", OpenAPI)

	api := app.Group("/api")

	// Mutaciones del espacio de trabajo (formato de la UI)
	company := api.Group("/company")
	workspaceHandler := NewWorkspaceHandler(deps.WorkspaceUC, deps.Log)
	exportHandler := NewExportHandler(deps.ExportUC, deps.Log)
	company.Post("/create", workspaceHandler.CreateCompany)
	company.Post("/add-product", workspaceHandler.AddProduct)
	company.Post("/add-category", workspaceHandler.AddCategory)
	company.Post("/add-option", workspaceHandler.AddOption)
	company.Post("/select-value", workspaceHandler.SelectValue)
	company.Post("/export", exportHandler.Export)

	// Lecturas
	companies := api.Group("/companies")
	companies.Get("/", workspaceHandler.List)
	companies.Get("/:name", workspaceHandler.Get)
	companies.Delete("/:name", workspaceHandler.Delete)
	companies.Get("/:name/export/:format", exportHandler.Download)

	// Catálogo
	catalogGroup := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.Catalog)
	catalogGroup.Get("/", catalogHandler.List)
	catalogGroup.Get("/:product", catalogHandler.Get)
}

// OpenAPI godoc
// @Summary      Documento OpenAPI de la API
// @Tags         docs
// @Produce      json
// @Success      200
// @Router       /openapi.json [get]
func OpenAPI(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(doc)
}
