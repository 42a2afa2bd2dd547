package entity

import "time"

// Sede instalación o base operativa. Habilitación municipal y permiso de
// bomberos alimentan la fuente de vencimientos de sedes.
type Sede struct {
	ID                string
	Nombre            string
	Direccion         string
	Localidad         string
	Responsable       string
	Estado            string     // "activa" | "cerrada"
	FechaHabilitacion *time.Time // vencimiento de la habilitación municipal
	FechaPermiso      *time.Time // vencimiento del permiso de bomberos
	CreadoEn          time.Time
	ActualizadoEn     time.Time
}
