package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gescop/gescop-api/internal/application/dto"
	"github.com/gescop/gescop-api/internal/application/usecase"
)

// PersonalHandler maneja las peticiones HTTP para el personal (protegido).
type PersonalHandler struct {
	uc *usecase.PersonalUseCase
}

// NewPersonalHandler construye el handler.
func NewPersonalHandler(uc *usecase.PersonalUseCase) *PersonalHandler {
	return &PersonalHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear registro de personal
// @Tags         personal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPersonalRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.APIResponse{data=dto.PersonalResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/personal [post]
func (h *PersonalHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPersonalRequest
	if err := c.BodyParser(&in); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return fallarPorError(c, err)
	}
	return creado(c, "personal creado", out)
}

// ObtenerPorID godoc
// @Summary      Obtener registro de personal por ID
// @Tags         personal
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {object}  dto.APIResponse{data=dto.PersonalResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/personal/{id} [get]
func (h *PersonalHandler) ObtenerPorID(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerPorID(c.Context(), c.Params("id"))
	if err != nil {
		return fallarPorError(c, err)
	}
	if out == nil {
		return fallar(c, fiber.StatusNotFound, "NOT_FOUND", "personal no encontrado")
	}
	return exito(c, "personal", out, nil)
}

// Listar godoc
// @Summary      Listar personal
// @Tags         personal
// @Security     Bearer
// @Produce      json
// @Param        q          query  string  false  "Texto libre sobre legajo/nombre/apellido/dni"
// @Param        page       query  int     false  "Página"           default(1)
// @Param        page_size  query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.APIResponse{data=dto.ListaPersonalResponse}
// @Router       /api/personal [get]
func (h *PersonalHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fallar(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.Listar(c.Context(), c.Query("q"), page)
	if err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "personal", out, nil)
}

// Actualizar godoc
// @Summary      Actualizar registro de personal
// @Tags         personal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del empleado"
// @Param        body  body  dto.ActualizarPersonalRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.APIResponse{data=dto.PersonalResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/personal/{id} [put]
func (h *PersonalHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarPersonalRequest
	if err := c.BodyParser(&in); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return fallarPorError(c, err)
	}
	if out == nil {
		return fallar(c, fiber.StatusNotFound, "NOT_FOUND", "personal no encontrado")
	}
	return exito(c, "personal actualizado", out, nil)
}

// Eliminar godoc
// @Summary      Eliminar registro de personal
// @Tags         personal
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/personal/{id} [delete]
func (h *PersonalHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "personal eliminado", nil, nil)
}

// Importar godoc
// @Summary      Importación masiva de personal
// @Description  Cada fila confirma o falla por separado; el resultado detalla
// @Description  los errores por número de fila.
// @Tags         personal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.CrearPersonalRequest  true  "Filas a importar"
// @Success      200   {object}  dto.APIResponse{data=dto.ImportarResultado}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/personal/importar [post]
func (h *PersonalHandler) Importar(c *fiber.Ctx) error {
	var filas []dto.CrearPersonalRequest
	if err := c.BodyParser(&filas); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "se espera un array de personal")
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
