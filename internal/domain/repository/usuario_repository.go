package repository

import (
	"context"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Crear(ctx context.Context, u *entity.Usuario) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Usuario, error)
	ObtenerPorEmail(ctx context.Context, email string) (*entity.Usuario, error)
}
