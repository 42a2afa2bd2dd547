package dto

import (
	"time"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// CrearSedeRequest cuerpo de POST /api/sedes.
type CrearSedeRequest struct {
	Nombre            string `json:"nombre"`
	Direccion         string `json:"direccion"`
	Localidad         string `json:"localidad"`
	Responsable       string `json:"responsable"`
	Estado            string `json:"estado"`
	FechaHabilitacion string `json:"fecha_habilitacion"`
	FechaPermiso      string `json:"fecha_permiso"`
}

// ActualizarSedeRequest cuerpo de PUT /api/sedes/:id.
type ActualizarSedeRequest struct {
	Nombre            *string `json:"nombre"`
	Direccion         *string `json:"direccion"`
	Localidad         *string `json:"localidad"`
	Responsable       *string `json:"responsable"`
	Estado            *string `json:"estado"`
	FechaHabilitacion *string `json:"fecha_habilitacion"`
	FechaPermiso      *string `json:"fecha_permiso"`
}

// SedeResponse representación JSON de una sede.
type SedeResponse struct {
	ID                string  `json:"id"`
	Nombre            string  `json:"nombre"`
	Direccion         string  `json:"direccion"`
	Localidad         string  `json:"localidad"`
	Responsable       string  `json:"responsable"`
	Estado            string  `json:"estado"`
	FechaHabilitacion *string `json:"fecha_habilitacion"`
	FechaPermiso      *string `json:"fecha_permiso"`
	CreadoEn          string  `json:"creado_en"`
	ActualizadoEn     string  `json:"actualizado_en"`
}

// ToSedeResponse mapea la entidad al DTO.
func ToSedeResponse(s *entity.Sede) *SedeResponse {
	if s == nil {
		return nil
	}
	return &SedeResponse{
		ID:                s.ID,
		Nombre:            s.Nombre,
		Direccion:         s.Direccion,
		Localidad:         s.Localidad,
		Responsable:       s.Responsable,
		Estado:            s.Estado,
		FechaHabilitacion: FormatearFecha(s.FechaHabilitacion),
		FechaPermiso:      FormatearFecha(s.FechaPermiso),
		CreadoEn:          s.CreadoEn.Format(time.RFC3339),
		ActualizadoEn:     s.ActualizadoEn.Format(time.RFC3339),
	}
}

// ListaSedesResponse respuesta paginada de GET /api/sedes.
type ListaSedesResponse struct {
	Items []SedeResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
