package usecase

import (
	"context"

	"github.com/gescop/gescop-api/internal/domain/repository"
)

// ImportTxRunner ejecuta un callback con repos atados a una transacción.
// La importación masiva lo usa fila por fila: cada inserción confirma o
// revierte sola, y el error de una fila no voltea a las demás.
type ImportTxRunner interface {
	Run(ctx context.Context, fn func(
		vehRepo repository.VehiculoRepository,
		perRepo repository.PersonalRepository,
	) error) error
}
