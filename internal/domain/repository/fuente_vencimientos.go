package repository

import (
	"context"
	"time"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// FuenteVencimientos puerto de lectura de una fuente de entidades con
// atributos que vencen (vehículos, personal, proveedores, sedes).
//
// Vencimientos devuelve todos los registros con fecha de vencimiento menor o
// igual a `hasta`, sin cota inferior: los vencidos aparecen siempre, por muy
// atrasados que estén. El error de una fuente no debe abortar la agregación
// completa; el agregador lo degrada a warning.
type FuenteVencimientos interface {
	Nombre() string
	Vencimientos(ctx context.Context, hasta time.Time) ([]entity.Vencimiento, error)
}
