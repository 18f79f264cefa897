package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tradyon/schema-api/internal/application/dto"
	"github.com/tradyon/schema-api/internal/application/export"
	"github.com/tradyon/schema-api/pkg/logger"
)

// ExportHandler maneja el export a disco/Google Sheets y las descargas.
type ExportHandler struct {
	uc  *export.ExportUseCase
	log *logger.Logger
}

// NewExportHandler construye el handler inyectando el caso de uso.
func NewExportHandler(uc *export.ExportUseCase, log *logger.Logger) *ExportHandler {
	return &ExportHandler{uc: uc, log: log}
}

// Export godoc
// @Summary      Exportar empresa (JSON en disco, libro y Google Sheets si están habilitados)
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ExportRequest  true  "Empresa y snapshot opcional del cliente"
// @Success      200   {object}  dto.ExportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/company/export [post]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	var in dto.ExportRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Export(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Descargar el export en un formato (xlsx, pdf, xml, json)
// @Tags         companies
// @Produce      octet-stream
// @Param        name    path  string  true  "Nombre de la empresa"
// @Param        format  path  string  true  "Formato"  Enums(xlsx, pdf, xml, json)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{name}/export/{format} [get]
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	out, err := h.uc.Render(c.UserContext(), pathParam(c, "name"), c.Params("format"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, out.FileName))
	return c.Send(out.Data)
}
