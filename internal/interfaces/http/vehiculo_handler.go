package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gescop/gescop-api/internal/application/dto"
	"github.com/gescop/gescop-api/internal/application/usecase"
)

// VehiculoHandler maneja las peticiones HTTP para la flota (protegido).
type VehiculoHandler struct {
	uc *usecase.VehiculoUseCase
}

// NewVehiculoHandler construye el handler.
func NewVehiculoHandler(uc *usecase.VehiculoUseCase) *VehiculoHandler {
	return &VehiculoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear vehículo
// @Tags         vehiculos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearVehiculoRequest  true  "Datos del vehículo"
// @Success      201   {object}  dto.APIResponse{data=dto.VehiculoResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/vehiculos [post]
func (h *VehiculoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearVehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return fallarPorError(c, err)
	}
	return creado(c, "vehículo creado", out)
}

// ObtenerPorID godoc
// @Summary      Obtener vehículo por ID
// @Tags         vehiculos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vehículo"
// @Success      200  {object}  dto.APIResponse{data=dto.VehiculoResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/vehiculos/{id} [get]
func (h *VehiculoHandler) ObtenerPorID(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerPorID(c.Context(), c.Params("id"))
	if err != nil {
		return fallarPorError(c, err)
	}
	if out == nil {
		return fallar(c, fiber.StatusNotFound, "NOT_FOUND", "vehículo no encontrado")
	}
	return exito(c, "vehículo", out, nil)
}

// Listar godoc
// @Summary      Listar vehículos
// @Tags         vehiculos
// @Security     Bearer
// @Produce      json
// @Param        q          query  string  false  "Texto libre sobre patente/marca/modelo"
// @Param        page       query  int     false  "Página"           default(1)
// @Param        page_size  query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.APIResponse{data=dto.ListaVehiculosResponse}
// @Router       /api/vehiculos [get]
func (h *VehiculoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fallar(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.Listar(c.Context(), c.Query("q"), page)
	if err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "vehículos", out, nil)
}

// Actualizar godoc
// @Summary      Actualizar vehículo
// @Tags         vehiculos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del vehículo"
// @Param        body  body  dto.ActualizarVehiculoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.APIResponse{data=dto.VehiculoResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/vehiculos/{id} [put]
func (h *VehiculoHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarVehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return fallarPorError(c, err)
	}
	if out == nil {
		return fallar(c, fiber.StatusNotFound, "NOT_FOUND", "vehículo no encontrado")
	}
	return exito(c, "vehículo actualizado", out, nil)
}

// Eliminar godoc
// @Summary      Eliminar vehículo
// @Tags         vehiculos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vehículo"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/vehiculos/{id} [delete]
func (h *VehiculoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "vehículo eliminado", nil, nil)
}

// Importar godoc
// @Summary      Importación masiva de vehículos
// @Description  Cada fila confirma o falla por separado; el resultado detalla
// @Description  los errores por número de fila.
// @Tags         vehiculos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.CrearVehiculoRequest  true  "Filas a importar"
// @Success      200   {object}  dto.APIResponse{data=dto.ImportarResultado}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/vehiculos/importar [post]
func (h *VehiculoHandler) Importar(c *fiber.Ctx) error {
	var filas []dto.CrearVehiculoRequest
	if err := c.BodyParser(&filas); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "se espera un array de vehículos")
	}
	if len(filas) == 0 {
		return fallar(c, fiber.StatusBadRequest, "VALIDATION", "el array no puede estar vacío")
	}
	out, err := h.uc.Importar(c.Context(), filas)
	if err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "importación procesada", out, nil)
}
