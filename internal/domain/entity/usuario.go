package entity

import "time"

// Roles de usuario del back-office.
const (
	RolAdmin    = "admin"
	RolOperador = "operador"
	RolConsulta = "consulta"
)

// Usuario cuenta de acceso al back-office.
type Usuario struct {
	ID            string
	Email         string
	PasswordHash  string
	Nombre        string
	Rol           string // RolAdmin | RolOperador | RolConsulta
	Estado        string // "activo" | "inactivo"
	CreadoEn      time.Time
	ActualizadoEn time.Time
}
