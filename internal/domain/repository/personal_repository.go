package repository

import (
	"context"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// PersonalRepository puerto de persistencia para Personal.
type PersonalRepository interface {
	Crear(ctx context.Context, p *entity.Personal) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Personal, error)
	ObtenerPorLegajo(ctx context.Context, legajo string) (*entity.Personal, error)
	Listar(ctx context.Context, filtro string, limit, offset int) ([]*entity.Personal, int, error)
	Actualizar(ctx context.Context, p *entity.Personal) error
	Eliminar(ctx context.Context, id string) error
}
