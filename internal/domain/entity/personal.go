package entity

import "time"

// Personal empleado o chofer. Licencia de conducir y carnet habilitante
// alimentan la fuente de vencimientos de personal.
type Personal struct {
	ID            string
	Legajo        string // número de legajo único
	Nombre        string
	Apellido      string
	DNI           string
	Puesto        string
	Estado        string // "activo" | "licencia" | "baja"
	FechaLicencia *time.Time
	FechaCarnet   *time.Time
	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// NombreDisplay apellido, nombre — formato de los listados del back-office.
func (p *Personal) NombreDisplay() string {
	if p.Nombre == "" {
		return p.Apellido
	}
	return p.Apellido + ", " + p.Nombre
}
