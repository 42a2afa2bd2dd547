package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proveedor prestador de servicios con contrato. La fecha de fin de contrato
// alimenta la fuente de vencimientos de proveedores.
type Proveedor struct {
	ID            string
	CUIT          string // identificador tributario único
	RazonSocial   string
	Rubro         string
	Contacto      string
	Email         string
	Telefono      string
	Estado        string     // "activo" | "suspendido" | "baja"
	FechaContrato *time.Time // fin de vigencia del contrato
	MontoContrato decimal.Decimal
	CreadoEn      time.Time
	ActualizadoEn time.Time
}
