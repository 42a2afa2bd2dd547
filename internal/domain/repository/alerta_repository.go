package repository

import (
	"context"
	"time"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// AlertaRepository puerto de persistencia del ciclo de vida de alertas:
// alertas manuales completas y overrides de alertas derivadas.
type AlertaRepository interface {
	// Alertas manuales (registros completos).
	CrearManual(ctx context.Context, a *entity.Alerta) error
	ObtenerManual(ctx context.Context, id string) (*entity.Alerta, error)
	ListarManuales(ctx context.Context) ([]*entity.Alerta, error)
	ActualizarManual(ctx context.Context, a *entity.Alerta) error
	EliminarManual(ctx context.Context, id string) error

	// Overrides de ciclo de vida para alertas derivadas (upsert por id de alerta).
	GuardarOverride(ctx context.Context, o *entity.OverrideCiclo) error
	ObtenerOverride(ctx context.Context, alertaID string) (*entity.OverrideCiclo, error)
	ListarOverrides(ctx context.Context) (map[string]*entity.OverrideCiclo, error)

	// ResueltasDesde cuenta alertas (manuales + overrides) resueltas a partir de una fecha.
	ResueltasDesde(ctx context.Context, desde time.Time) (int, error)
}
