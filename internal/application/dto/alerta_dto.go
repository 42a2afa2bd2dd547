package dto

import (
	"time"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// FormatoFecha formato de fecha calendario en la API (sin componente horario).
const FormatoFecha = "2006-01-02"

// AlertaResponse representación JSON de una alerta.
type AlertaResponse struct {
	ID            string  `json:"id"`
	Categoria     string  `json:"categoria"`
	Titulo        string  `json:"titulo"`
	Descripcion   string  `json:"descripcion"`
	Elemento      string  `json:"elemento"`
	TipoEntidad   string  `json:"tipo_entidad,omitempty"`
	Regla         string  `json:"regla,omitempty"`
	FechaVenc     *string `json:"fecha_venc"`     // "2006-01-02" o null
	DiasRestantes *int    `json:"dias_restantes"` // negativo = vencida; null sin fecha
	Severidad     string  `json:"severidad"`
	Estado        string  `json:"estado"`
	Origen        string  `json:"origen"`
	CreadaEn      string  `json:"creada_en"`
	ResueltaEn    *string `json:"resuelta_en,omitempty"`
	ResueltaPor   string  `json:"resuelta_por,omitempty"`
	Notas         string  `json:"notas,omitempty"`
}

// ToAlertaResponse mapea la entidad al DTO de respuesta.
func ToAlertaResponse(a *entity.Alerta) *AlertaResponse {
	if a == nil {
		return nil
	}
	out := &AlertaResponse{
		ID:            a.ID,
		Categoria:     string(a.Categoria),
		Titulo:        a.Titulo,
		Descripcion:   a.Descripcion,
		Elemento:      a.Elemento,
		TipoEntidad:   string(a.TipoEntidad),
		Regla:         a.Regla,
		DiasRestantes: a.DiasRestantes,
		Severidad:     string(a.Severidad),
		Estado:        string(a.Estado),
		Origen:        string(a.Origen),
		CreadaEn:      a.CreadaEn.Format(time.RFC3339),
		ResueltaPor:   a.ResueltaPor,
		Notas:         a.Notas,
	}
	if a.FechaVenc != nil {
		f := a.FechaVenc.Format(FormatoFecha)
		out.FechaVenc = &f
	}
	if a.ResueltaEn != nil {
		r := a.ResueltaEn.Format(time.RFC3339)
		out.ResueltaEn = &r
	}
	return out
}

// ListaAlertasResponse respuesta paginada de GET /api/alertas.
type ListaAlertasResponse struct {
	Items []AlertaResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CrearAlertaRequest cuerpo de POST /api/alertas (alerta manual).
// Severidad nunca es seteable cuando hay fecha de vencimiento: se deriva.
// Prioridad sólo se acepta para alertas sin fecha (informativas).
type CrearAlertaRequest struct {
	Categoria   string `json:"categoria"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Elemento    string `json:"elemento"`
	FechaVenc   string `json:"fecha_venc"` // "2006-01-02", vacío = sin vencimiento
	Prioridad   string `json:"prioridad"`  // hint, sólo válido si FechaVenc está vacío
}

// ActualizarAlertaRequest cuerpo de PUT /api/alertas/:id (sólo alertas manuales).
type ActualizarAlertaRequest struct {
	Categoria   *string `json:"categoria"`
	Titulo      *string `json:"titulo"`
	Descripcion *string `json:"descripcion"`
	Elemento    *string `json:"elemento"`
	FechaVenc   *string `json:"fecha_venc"` // "" limpia la fecha
	Notas       *string `json:"notas"`
}

// AccionAlertaRequest cuerpo de PUT /api/alertas/:id?accion=resolver|posponer.
type AccionAlertaRequest struct {
	ResueltaPor string `json:"resuelta_por"`
	Notas       string `json:"notas"`
	NuevaFecha  string `json:"nueva_fecha"` // requerida para posponer, "2006-01-02"
}

// EstadisticasResponse respuesta de GET /api/alertas/estadisticas.
type EstadisticasResponse struct {
	Total              int            `json:"total"`
	PorSeveridad       map[string]int `json:"por_severidad"`
	PorCategoria       map[string]int `json:"por_categoria"`
	ResueltasEnPeriodo int            `json:"resueltas_en_periodo"`
}

// DashboardResumenResponse respuesta de GET /api/dashboard/resumen:
// estadísticas + próximos vencimientos para las cards del frontend.
type DashboardResumenResponse struct {
	Estadisticas EstadisticasResponse `json:"estadisticas"`
	Proximas     []AlertaResponse     `json:"proximas"`
}
