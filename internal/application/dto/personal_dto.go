package dto

import (
	"time"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// CrearPersonalRequest cuerpo de POST /api/personal.
type CrearPersonalRequest struct {
	Legajo        string `json:"legajo"`
	Nombre        string `json:"nombre"`
	Apellido      string `json:"apellido"`
	DNI           string `json:"dni"`
	Puesto        string `json:"puesto"`
	Estado        string `json:"estado"`
	FechaLicencia string `json:"fecha_licencia"`
	FechaCarnet   string `json:"fecha_carnet"`
}

// ActualizarPersonalRequest cuerpo de PUT /api/personal/:id.
type ActualizarPersonalRequest struct {
	Nombre        *string `json:"nombre"`
	Apellido      *string `json:"apellido"`
	DNI           *string `json:"dni"`
	Puesto        *string `json:"puesto"`
	Estado        *string `json:"estado"`
	FechaLicencia *string `json:"fecha_licencia"`
	FechaCarnet   *string `json:"fecha_carnet"`
}

// PersonalResponse representación JSON de un empleado.
type PersonalResponse struct {
	ID            string  `json:"id"`
	Legajo        string  `json:"legajo"`
	Nombre        string  `json:"nombre"`
	Apellido      string  `json:"apellido"`
	DNI           string  `json:"dni"`
	Puesto        string  `json:"puesto"`
	Estado        string  `json:"estado"`
	FechaLicencia *string `json:"fecha_licencia"`
	FechaCarnet   *string `json:"fecha_carnet"`
	CreadoEn      string  `json:"creado_en"`
	ActualizadoEn string  `json:"actualizado_en"`
}

// ToPersonalResponse mapea la entidad al DTO.
func ToPersonalResponse(p *entity.Personal) *PersonalResponse {
	if p == nil {
		return nil
	}
	return &PersonalResponse{
		ID:            p.ID,
		Legajo:        p.Legajo,
		Nombre:        p.Nombre,
		Apellido:      p.Apellido,
		DNI:           p.DNI,
		Puesto:        p.Puesto,
		Estado:        p.Estado,
		FechaLicencia: FormatearFecha(p.FechaLicencia),
		FechaCarnet:   FormatearFecha(p.FechaCarnet),
		CreadoEn:      p.CreadoEn.Format(time.RFC3339),
		ActualizadoEn: p.ActualizadoEn.Format(time.RFC3339),
	}
}

// ListaPersonalResponse respuesta paginada de GET /api/personal.
type ListaPersonalResponse struct {
	Items []PersonalResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
