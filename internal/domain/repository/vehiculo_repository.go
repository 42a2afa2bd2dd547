package repository

import (
	"context"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// VehiculoRepository puerto de persistencia para Vehiculo.
type VehiculoRepository interface {
	Crear(ctx context.Context, v *entity.Vehiculo) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Vehiculo, error)
	ObtenerPorPatente(ctx context.Context, patente string) (*entity.Vehiculo, error)
	Listar(ctx context.Context, filtro string, limit, offset int) ([]*entity.Vehiculo, int, error)
	Actualizar(ctx context.Context, v *entity.Vehiculo) error
	Eliminar(ctx context.Context, id string) error
}
