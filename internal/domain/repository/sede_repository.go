package repository

import (
	"context"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// SedeRepository puerto de persistencia para Sede.
type SedeRepository interface {
	Crear(ctx context.Context, s *entity.Sede) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Sede, error)
	Listar(ctx context.Context, filtro string, limit, offset int) ([]*entity.Sede, int, error)
	Actualizar(ctx context.Context, s *entity.Sede) error
	Eliminar(ctx context.Context, id string) error
}
