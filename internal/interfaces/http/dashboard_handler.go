package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gescop/gescop-api/internal/application/alertas"
	"github.com/gescop/gescop-api/internal/application/dto"
)

// topProximas cantidad de próximos vencimientos que muestran las cards.
const topProximas = 10

// DashboardHandler arma el resumen del dashboard en una sola llamada.
type DashboardHandler struct {
	agregador *alertas.Agregador
	stats     *alertas.Estadisticas
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(agregador *alertas.Agregador, stats *alertas.Estadisticas) *DashboardHandler {
	return &DashboardHandler{agregador: agregador, stats: stats}
}

// Resumen godoc
// @Summary      Resumen del dashboard: estadísticas + próximos vencimientos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.DashboardResumenResponse}
// @Router       /api/dashboard/resumen [get]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	corte := h.agregador.Hoy()

	resumen, warnings, err := h.stats.Resumir(c.Context(), corte)
	if err != nil {
		return fallarPorError(c, err)
	}
	proximas, masWarnings, err := h.agregador.Proximas(c.Context(), corte, h.agregador.Ventana())
	if err != nil {
		return fallarPorError(c, err)
	}
	warnings = append(warnings, masWarnings...)

	if len(proximas) > topProximas {
		proximas = proximas[:topProximas]
	}
	items := make([]dto.AlertaResponse, 0, len(proximas))
	for _, al := range proximas {
		items = append(items, *dto.ToAlertaResponse(al))
	}

	out := dto.DashboardResumenResponse{
		Estadisticas: toEstadisticasResponse(resumen),
		Proximas:     items,
	}
	return exito(c, "resumen del dashboard", out, warnings)
}
