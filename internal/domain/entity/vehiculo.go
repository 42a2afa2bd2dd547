package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehiculo unidad de la flota. Las fechas de VTV, seguro y permiso de
// circulación alimentan la fuente de vencimientos de vehículos.
type Vehiculo struct {
	ID            string
	Patente       string // dominio único
	Marca         string
	Modelo        string
	Anio          int
	Estado        string // "activo" | "taller" | "baja"
	FechaVTV      *time.Time
	FechaSeguro   *time.Time
	FechaPermiso  *time.Time
	Aseguradora   string
	SumaAsegurada decimal.Decimal
	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// NombreDisplay patente + marca, como se muestra en el listado y en las alertas.
func (v *Vehiculo) NombreDisplay() string {
	if v.Marca == "" {
		return v.Patente
	}
	return v.Patente + " " + v.Marca
}
