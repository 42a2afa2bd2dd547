package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gescop/gescop-api/internal/application/dto"
	"github.com/gescop/gescop-api/internal/application/usecase"
)

// ProveedorHandler maneja las peticiones HTTP para proveedores (protegido).
type ProveedorHandler struct {
	uc *usecase.ProveedorUseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *usecase.ProveedorUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear proveedor
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProveedorRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.APIResponse{data=dto.ProveedorResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/proveedores [post]
func (h *ProveedorHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return fallarPorError(c, err)
	}
	return creado(c, "proveedor creado", out)
}

// ObtenerPorID godoc
// @Summary      Obtener proveedor por ID
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.APIResponse{data=dto.ProveedorResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/proveedores/{id} [get]
func (h *ProveedorHandler) ObtenerPorID(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerPorID(c.Context(), c.Params("id"))
	if err != nil {
		return fallarPorError(c, err)
	}
	if out == nil {
		return fallar(c, fiber.StatusNotFound, "NOT_FOUND", "proveedor no encontrado")
	}
	return exito(c, "proveedor", out, nil)
}

// Listar godoc
// @Summary      Listar proveedores
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        q          query  string  false  "Texto libre sobre cuit/razón social/rubro"
// @Param        page       query  int     false  "Página"           default(1)
// @Param        page_size  query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.APIResponse{data=dto.ListaProveedoresResponse}
// @Router       /api/proveedores [get]
func (h *ProveedorHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fallar(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.Listar(c.Context(), c.Query("q"), page)
	if err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "proveedores", out, nil)
}

// Actualizar godoc
// @Summary      Actualizar proveedor
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.ActualizarProveedorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.APIResponse{data=dto.ProveedorResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/proveedores/{id} [put]
func (h *ProveedorHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return fallarPorError(c, err)
	}
	if out == nil {
		return fallar(c, fiber.StatusNotFound, "NOT_FOUND", "proveedor no encontrado")
	}
	return exito(c, "proveedor actualizado", out, nil)
}

// Eliminar godoc
// @Summary      Eliminar proveedor
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/proveedores/{id} [delete]
func (h *ProveedorHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "proveedor eliminado", nil, nil)
}
