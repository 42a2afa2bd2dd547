package dto

import (
	"time"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// RegisterRequest cuerpo de POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}

// LoginRequest cuerpo de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}

// UsuarioResponse representación JSON de un usuario (sin hash).
type UsuarioResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
	Estado   string `json:"estado"`
	CreadoEn string `json:"creado_en"`
}

// ToUsuarioResponse mapea la entidad al DTO.
func ToUsuarioResponse(u *entity.Usuario) *UsuarioResponse {
	if u == nil {
		return nil
	}
	return &UsuarioResponse{
		ID:       u.ID,
		Email:    u.Email,
		Nombre:   u.Nombre,
		Rol:      u.Rol,
		Estado:   u.Estado,
		CreadoEn: u.CreadoEn.Format(time.RFC3339),
	}
}
