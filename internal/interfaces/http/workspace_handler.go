package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tradyon/schema-api/internal/application/dto"
	"github.com/tradyon/schema-api/internal/application/workspace"
	"github.com/tradyon/schema-api/pkg/logger"
)

// WorkspaceHandler maneja las mutaciones y lecturas del espacio de trabajo.
type WorkspaceHandler struct {
	uc  *workspace.WorkspaceUseCase
	log *logger.Logger
}

// NewWorkspaceHandler construye el handler inyectando el caso de uso.
func NewWorkspaceHandler(uc *workspace.WorkspaceUseCase, log *logger.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{uc: uc, log: log}
}

// CreateCompany godoc
// @Summary      Crear empresa
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCompanyRequest  true  "Empresa y contacto"
// @Success      200   {object}  dto.CreateCompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/company/create [post]
func (h *WorkspaceHandler) CreateCompany(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCompany(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// AddProduct godoc
// @Summary      Agregar producto
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddProductRequest  true  "Empresa y producto"
// @Success      200   {object}  dto.AddProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/company/add-product [post]
func (h *WorkspaceHandler) AddProduct(c *fiber.Ctx) error {
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddProduct(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// AddCategory godoc
// @Summary      Agregar categoría (opciones sembradas desde el catálogo)
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddCategoryRequest  true  "Empresa, producto y categoría"
// @Success      200   {object}  dto.AddCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/company/add-category [post]
func (h *WorkspaceHandler) AddCategory(c *fiber.Ctx) error {
	var in dto.AddCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddCategory(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// AddOption godoc
// @Summary      Agregar opción personalizada
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddOptionRequest  true  "Opción"
// @Success      200   {object}  dto.AddOptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/company/add-option [post]
func (h *WorkspaceHandler) AddOption(c *fiber.Ctx) error {
	var in dto.AddOptionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddOption(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SelectValue godoc
// @Summary      Alternar selección de un valor
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SelectValueRequest  true  "Valor"
// @Success      200   {object}  dto.SelectValueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/company/select-value [post]
func (h *WorkspaceHandler) SelectValue(c *fiber.Ctx) error {
	var in dto.SelectValueRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SelectValue(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *WorkspaceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListCompanies(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener el árbol de una empresa
// @Tags         companies
// @Produce      json
// @Param        name  path      string  true  "Nombre de la empresa"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{name} [get]
func (h *WorkspaceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetCompany(c.UserContext(), pathParam(c, "name"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa
// @Tags         companies
// @Param        name  path  string  true  "Nombre de la empresa"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{name} [delete]
func (h *WorkspaceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteCompany(c.UserContext(), pathParam(c, "name")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
