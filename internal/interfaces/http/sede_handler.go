package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gescop/gescop-api/internal/application/dto"
	"github.com/gescop/gescop-api/internal/application/usecase"
)

// SedeHandler maneja las peticiones HTTP para sedes (protegido).
type SedeHandler struct {
	uc *usecase.SedeUseCase
}

// NewSedeHandler construye el handler.
func NewSedeHandler(uc *usecase.SedeUseCase) *SedeHandler {
	return &SedeHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear sede
// @Tags         sedes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearSedeRequest  true  "Datos de la sede"
// @Success      201   {object}  dto.APIResponse{data=dto.SedeResponse}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/sedes [post]
func (h *SedeHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearSedeRequest
	if err := c.BodyParser(&in); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return fallarPorError(c, err)
	}
	return creado(c, "sede creada", out)
}

// ObtenerPorID godoc
// @Summary      Obtener sede por ID
// @Tags         sedes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sede"
// @Success      200  {object}  dto.APIResponse{data=dto.SedeResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/sedes/{id} [get]
func (h *SedeHandler) ObtenerPorID(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerPorID(c.Context(), c.Params("id"))
	if err != nil {
		return fallarPorError(c, err)
	}
	if out == nil {
		return fallar(c, fiber.StatusNotFound, "NOT_FOUND", "sede no encontrada")
	}
	return exito(c, "sede", out, nil)
}

// Listar godoc
// @Summary      Listar sedes
// @Tags         sedes
// @Security     Bearer
// @Produce      json
// @Param        q          query  string  false  "Texto libre sobre nombre/localidad"
// @Param        page       query  int     false  "Página"           default(1)
// @Param        page_size  query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.APIResponse{data=dto.ListaSedesResponse}
// @Router       /api/sedes [get]
func (h *SedeHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fallar(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.Listar(c.Context(), c.Query("q"), page)
	if err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "sedes", out, nil)
}

// Actualizar godoc
// @Summary      Actualizar sede
// @Tags         sedes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sede"
// @Param        body  body  dto.ActualizarSedeRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.APIResponse{data=dto.SedeResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/sedes/{id} [put]
func (h *SedeHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarSedeRequest
	if err := c.BodyParser(&in); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return fallarPorError(c, err)
	}
	if out == nil {
		return fallar(c, fiber.StatusNotFound, "NOT_FOUND", "sede no encontrada")
	}
	return exito(c, "sede actualizada", out, nil)
}

// Eliminar godoc
// @Summary      Eliminar sede
// @Tags         sedes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sede"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/sedes/{id} [delete]
func (h *SedeHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "sede eliminada", nil, nil)
}
