package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// CrearProveedorRequest cuerpo de POST /api/proveedores.
type CrearProveedorRequest struct {
	CUIT          string          `json:"cuit"`
	RazonSocial   string          `json:"razon_social"`
	Rubro         string          `json:"rubro"`
	Contacto      string          `json:"contacto"`
	Email         string          `json:"email"`
	Telefono      string          `json:"telefono"`
	Estado        string          `json:"estado"`
	FechaContrato string          `json:"fecha_contrato"`
	MontoContrato decimal.Decimal `json:"monto_contrato"`
}

// ActualizarProveedorRequest cuerpo de PUT /api/proveedores/:id.
type ActualizarProveedorRequest struct {
	RazonSocial   *string          `json:"razon_social"`
	Rubro         *string          `json:"rubro"`
	Contacto      *string          `json:"contacto"`
	Email         *string          `json:"email"`
	Telefono      *string          `json:"telefono"`
	Estado        *string          `json:"estado"`
	FechaContrato *string          `json:"fecha_contrato"`
	MontoContrato *decimal.Decimal `json:"monto_contrato"`
}

// ProveedorResponse representación JSON de un proveedor.
type ProveedorResponse struct {
	ID            string          `json:"id"`
	CUIT          string          `json:"cuit"`
	RazonSocial   string          `json:"razon_social"`
	Rubro         string          `json:"rubro"`
	Contacto      string          `json:"contacto"`
	Email         string          `json:"email"`
	Telefono      string          `json:"telefono"`
	Estado        string          `json:"estado"`
	FechaContrato *string         `json:"fecha_contrato"`
	MontoContrato decimal.Decimal `json:"monto_contrato"`
	CreadoEn      string          `json:"creado_en"`
	ActualizadoEn string          `json:"actualizado_en"`
}

// ToProveedorResponse mapea la entidad al DTO.
func ToProveedorResponse(p *entity.Proveedor) *ProveedorResponse {
	if p == nil {
		return nil
	}
	return &ProveedorResponse{
		ID:            p.ID,
		CUIT:          p.CUIT,
		RazonSocial:   p.RazonSocial,
		Rubro:         p.Rubro,
		Contacto:      p.Contacto,
		Email:         p.Email,
		Telefono:      p.Telefono,
		Estado:        p.Estado,
		FechaContrato: FormatearFecha(p.FechaContrato),
		MontoContrato: p.MontoContrato,
		CreadoEn:      p.CreadoEn.Format(time.RFC3339),
		ActualizadoEn: p.ActualizadoEn.Format(time.RFC3339),
	}
}

// ListaProveedoresResponse respuesta paginada de GET /api/proveedores.
type ListaProveedoresResponse struct {
	Items []ProveedorResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
