package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// ParseFechaOpcional parsea una fecha calendario "2006-01-02". Vacío = nil.
func ParseFechaOpcional(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	f, err := time.Parse(FormatoFecha, s)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q (formato %s)", s, FormatoFecha)
	}
	return &f, nil
}

// FormatearFecha formatea una fecha opcional como "2006-01-02" o nil.
func FormatearFecha(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(FormatoFecha)
	return &s
}

// CrearVehiculoRequest cuerpo de POST /api/vehiculos.
type CrearVehiculoRequest struct {
	Patente       string          `json:"patente"`
	Marca         string          `json:"marca"`
	Modelo        string          `json:"modelo"`
	Anio          int             `json:"anio"`
	Estado        string          `json:"estado"`
	FechaVTV      string          `json:"fecha_vtv"`
	FechaSeguro   string          `json:"fecha_seguro"`
	FechaPermiso  string          `json:"fecha_permiso"`
	Aseguradora   string          `json:"aseguradora"`
	SumaAsegurada decimal.Decimal `json:"suma_asegurada"`
}

// ActualizarVehiculoRequest cuerpo de PUT /api/vehiculos/:id.
type ActualizarVehiculoRequest struct {
	Marca         *string          `json:"marca"`
	Modelo        *string          `json:"modelo"`
	Anio          *int             `json:"anio"`
	Estado        *string          `json:"estado"`
	FechaVTV      *string          `json:"fecha_vtv"`
	FechaSeguro   *string          `json:"fecha_seguro"`
	FechaPermiso  *string          `json:"fecha_permiso"`
	Aseguradora   *string          `json:"aseguradora"`
	SumaAsegurada *decimal.Decimal `json:"suma_asegurada"`
}

// VehiculoResponse representación JSON de un vehículo.
type VehiculoResponse struct {
	ID            string          `json:"id"`
	Patente       string          `json:"patente"`
	Marca         string          `json:"marca"`
	Modelo        string          `json:"modelo"`
	Anio          int             `json:"anio"`
	Estado        string          `json:"estado"`
	FechaVTV      *string         `json:"fecha_vtv"`
	FechaSeguro   *string         `json:"fecha_seguro"`
	FechaPermiso  *string         `json:"fecha_permiso"`
	Aseguradora   string          `json:"aseguradora"`
	SumaAsegurada decimal.Decimal `json:"suma_asegurada"`
	CreadoEn      string          `json:"creado_en"`
	ActualizadoEn string          `json:"actualizado_en"`
}

// ToVehiculoResponse mapea la entidad al DTO.
func ToVehiculoResponse(v *entity.Vehiculo) *VehiculoResponse {
	if v == nil {
		return nil
	}
	return &VehiculoResponse{
		ID:            v.ID,
		Patente:       v.Patente,
		Marca:         v.Marca,
		Modelo:        v.Modelo,
		Anio:          v.Anio,
		Estado:        v.Estado,
		FechaVTV:      FormatearFecha(v.FechaVTV),
		FechaSeguro:   FormatearFecha(v.FechaSeguro),
		FechaPermiso:  FormatearFecha(v.FechaPermiso),
		Aseguradora:   v.Aseguradora,
		SumaAsegurada: v.SumaAsegurada,
		CreadoEn:      v.CreadoEn.Format(time.RFC3339),
		ActualizadoEn: v.ActualizadoEn.Format(time.RFC3339),
	}
}

// ListaVehiculosResponse respuesta paginada de GET /api/vehiculos.
type ListaVehiculosResponse struct {
	Items []VehiculoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ImportarResultado resultado best-effort de una importación masiva:
// cada fila se inserta en su propia transacción y los errores se acumulan.
type ImportarResultado struct {
	Insertados int           `json:"insertados"`
	Errores    []ErrorDeFila `json:"errores"`
}

// ErrorDeFila error de una fila puntual de la importación (1-based).
type ErrorDeFila struct {
	Fila    int    `json:"fila"`
	Mensaje string `json:"mensaje"`
}
