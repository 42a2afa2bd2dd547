package repository

import (
	"context"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// ProveedorRepository puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Crear(ctx context.Context, p *entity.Proveedor) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Proveedor, error)
	ObtenerPorCUIT(ctx context.Context, cuit string) (*entity.Proveedor, error)
	Listar(ctx context.Context, filtro string, limit, offset int) ([]*entity.Proveedor, int, error)
	Actualizar(ctx context.Context, p *entity.Proveedor) error
	Eliminar(ctx context.Context, id string) error
}
