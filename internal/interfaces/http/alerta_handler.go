package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gescop/gescop-api/internal/application/alertas"
	"github.com/gescop/gescop-api/internal/application/dto"
	"github.com/gescop/gescop-api/internal/application/reportes"
	"github.com/gescop/gescop-api/internal/domain/entity"
)

// AlertaHandler expone el motor de alertas de vencimiento (protegido).
type AlertaHandler struct {
	agregador *alertas.Agregador
	consulta  *alertas.Consulta
	ciclo     *alertas.Ciclo
	stats     *alertas.Estadisticas
	pdf       *reportes.PDFUseCase
}

// NewAlertaHandler construye el handler.
func NewAlertaHandler(
	agregador *alertas.Agregador,
	consulta *alertas.Consulta,
	ciclo *alertas.Ciclo,
	stats *alertas.Estadisticas,
	pdf *reportes.PDFUseCase,
) *AlertaHandler {
	return &AlertaHandler{agregador: agregador, consulta: consulta, ciclo: ciclo, stats: stats, pdf: pdf}
}

// Listar godoc
// @Summary      Listar alertas vigentes con filtros
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        categoria     query  string  false  "Categoría exacta"
// @Param        severidad     query  string  false  "Severidad exacta"
// @Param        estado        query  string  false  "Estado exacto (Archivada las recupera)"
// @Param        tipo_entidad  query  string  false  "vehiculo|personal|proveedor|sede"
// @Param        fecha_venc    query  string  false  "Fecha exacta YYYY-MM-DD"
// @Param        q             query  string  false  "Texto libre sobre título/descripción/elemento/id"
// @Param        dias_max      query  int     false  "Sólo alertas con días restantes <= dias_max"
// @Param        page          query  int     false  "Página"           default(1)
// @Param        page_size     query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.APIResponse{data=dto.ListaAlertasResponse}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/alertas [get]
func (h *AlertaHandler) Listar(c *fiber.Ctx) error {
	f := alertas.Filtros{
		Categoria:   entity.Categoria(c.Query("categoria")),
		Severidad:   entity.Severidad(c.Query("severidad")),
		Estado:      entity.EstadoAlerta(c.Query("estado")),
		TipoEntidad: entity.TipoEntidad(c.Query("tipo_entidad")),
		Texto:       c.Query("q"),
	}
	if s := c.Query("fecha_venc"); s != "" {
		fecha, err := time.ParseInLocation(dto.FormatoFecha, s, h.agregador.Ubicacion())
		if err != nil {
			return fallar(c, fiber.StatusBadRequest, "VALIDATION", "fecha_venc debe tener formato YYYY-MM-DD")
		}
		f.FechaVenc = &fecha
	}
	if c.Query("dias_max") != "" {
		d := c.QueryInt("dias_max")
		f.DiasMax = &d
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fallar(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()

	res, err := h.consulta.Consultar(c.Context(), h.agregador.Hoy(), f, alertas.Paginacion{
		Page:     page.Page,
		PageSize: page.PageSize,
	})
	if err != nil {
		return fallarPorError(c, err)
	}

	items := make([]dto.AlertaResponse, 0, len(res.Items))
	for _, al := range res.Items {
		items = append(items, *dto.ToAlertaResponse(al))
	}
	out := dto.ListaAlertasResponse{
		Items: items,
		Page: dto.PageResponse{
			TotalCount:  res.TotalCount,
			TotalPages:  res.TotalPages,
			CurrentPage: res.CurrentPage,
			PageSize:    res.PageSize,
		},
	}
	return exito(c, "alertas", out, res.Warnings)
}

// Estadisticas godoc
// @Summary      Resumen de alertas por severidad y categoría
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.EstadisticasResponse}
// @Router       /api/alertas/estadisticas [get]
func (h *AlertaHandler) Estadisticas(c *fiber.Ctx) error {
	resumen, warnings, err := h.stats.Resumir(c.Context(), h.agregador.Hoy())
	if err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "estadísticas de alertas", toEstadisticasResponse(resumen), warnings)
}

// Proximas godoc
// @Summary      Alertas que vencen dentro de una ventana ad hoc
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Ventana en días"  default(30)
// @Success      200  {object}  dto.APIResponse{data=[]dto.AlertaResponse}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/alertas/proximas [get]
func (h *AlertaHandler) Proximas(c *fiber.Ctx) error {
	dias := c.QueryInt("dias", h.agregador.Ventana())
	if dias < 0 {
		return fallar(c, fiber.StatusBadRequest, "VALIDATION", "dias no puede ser negativo")
	}
	proximas, warnings, err := h.agregador.Proximas(c.Context(), h.agregador.Hoy(), dias)
	if err != nil {
		return fallarPorError(c, err)
	}
	items := make([]dto.AlertaResponse, 0, len(proximas))
	for _, al := range proximas {
		items = append(items, *dto.ToAlertaResponse(al))
	}
	return exito(c, "próximos vencimientos", items, warnings)
}

// Reporte godoc
// @Summary      Reporte PDF de vencimientos vigentes
// @Tags         alertas
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/alertas/reporte [get]
func (h *AlertaHandler) Reporte(c *fiber.Ctx) error {
	pdfBytes, _, err := h.pdf.Generar(c.Context())
	if err != nil {
		return fallarPorError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-vencimientos.pdf"`)
	return c.Send(pdfBytes)
}

// ObtenerPorID godoc
// @Summary      Obtener una alerta por ID (derivada o manual)
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.APIResponse{data=dto.AlertaResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/alertas/{id} [get]
func (h *AlertaHandler) ObtenerPorID(c *fiber.Ctx) error {
	id := c.Params("id")
	al, err := h.agregador.BuscarPorID(c.Context(), h.agregador.Hoy(), id)
	if err != nil {
		return fallarPorError(c, err)
	}
	if al == nil {
		return fallar(c, fiber.StatusNotFound, "NOT_FOUND", "alerta no encontrada")
	}
	return exito(c, "alerta", dto.ToAlertaResponse(al), nil)
}

// Crear godoc
// @Summary      Crear alerta manual
// @Tags         alertas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearAlertaRequest  true  "Datos de la alerta"
// @Success      201   {object}  dto.APIResponse{data=dto.AlertaResponse}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/alertas [post]
func (h *AlertaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearAlertaRequest
	if err := c.BodyParser(&in); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	al, err := h.ciclo.CrearManual(c.Context(), in)
	if err != nil {
		return fallarPorError(c, err)
	}
	return creado(c, "alerta creada", dto.ToAlertaResponse(al))
}

// Actualizar godoc
// @Summary      Actualizar alerta o aplicar una acción de ciclo de vida
// @Description  Sin query accion edita una alerta manual. Con accion=resolver,
// @Description  posponer o archivar aplica la transición (vale también para derivadas).
// @Tags         alertas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path   string  true   "ID de la alerta"
// @Param        accion  query  string  false  "resolver | posponer | archivar"
// @Param        body    body   dto.AccionAlertaRequest  false  "Datos de la acción"
// @Success      200  {object}  dto.APIResponse{data=dto.AlertaResponse}
// @Failure      400  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Failure      409  {object}  dto.APIResponse
// @Router       /api/alertas/{id} [put]
func (h *AlertaHandler) Actualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	accion := c.Query("accion")

	if accion == "" {
		var in dto.ActualizarAlertaRequest
		if err := c.BodyParser(&in); err != nil {
			return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
		}
		al, err := h.ciclo.Actualizar(c.Context(), id, in)
		if err != nil {
			return fallarPorError(c, err)
		}
		return exito(c, "alerta actualizada", dto.ToAlertaResponse(al), nil)
	}

	var in dto.AccionAlertaRequest
	if err := c.BodyParser(&in); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.ResueltaPor == "" {
		in.ResueltaPor = GetUserID(c)
	}

	var (
		al  *entity.Alerta
		err error
	)
	switch accion {
	case "resolver":
		al, err = h.ciclo.Resolver(c.Context(), id, in.ResueltaPor, in.Notas)
	case "posponer":
		if in.NuevaFecha == "" {
			return fallar(c, fiber.StatusBadRequest, "VALIDATION", "nueva_fecha es requerida para posponer")
		}
		nueva, perr := time.ParseInLocation(dto.FormatoFecha, in.NuevaFecha, h.agregador.Ubicacion())
		if perr != nil {
			return fallar(c, fiber.StatusBadRequest, "VALIDATION", "nueva_fecha debe tener formato YYYY-MM-DD")
		}
		al, err = h.ciclo.Posponer(c.Context(), id, nueva, in.ResueltaPor, in.Notas)
	case "archivar":
		al, err = h.ciclo.Archivar(c.Context(), id)
	default:
		return fallar(c, fiber.StatusBadRequest, "VALIDATION", "accion debe ser resolver, posponer o archivar")
	}
	if err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "acción "+accion+" aplicada", dto.ToAlertaResponse(al), nil)
}

// Eliminar godoc
// @Summary      Eliminar alerta manual
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Failure      409  {object}  dto.APIResponse
// @Router       /api/alertas/{id} [delete]
func (h *AlertaHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.ciclo.Eliminar(c.Context(), c.Params("id")); err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "alerta eliminada", nil, nil)
}

func toEstadisticasResponse(r *alertas.Resumen) dto.EstadisticasResponse {
	out := dto.EstadisticasResponse{
		Total:              r.Total,
		PorSeveridad:       make(map[string]int, len(r.PorSeveridad)),
		PorCategoria:       make(map[string]int, len(r.PorCategoria)),
		ResueltasEnPeriodo: r.ResueltasEnPeriodo,
	}
	for sev, n := range r.PorSeveridad {
		out.PorSeveridad[string(sev)] = n
	}
	for cat, n := range r.PorCategoria {
		out.PorCategoria[string(cat)] = n
	}
	return out
}
