package alertas_test

import (
	"context"
	"sync"
	"time"

	"github.com/gescop/gescop-api/internal/application/alertas"
	"github.com/gescop/gescop-api/internal/domain/alerta"
	"github.com/gescop/gescop-api/internal/domain/entity"
	"github.com/gescop/gescop-api/internal/domain/repository"
	"github.com/gescop/gescop-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: repo de alertas en memoria y fuentes de vencimientos fijas.
// Devuelven copias al leer, igual que un repo real que escanea filas.
// ──────────────────────────────────────────────────────────────────────────────

type repoMemoria struct {
	mu        sync.Mutex
	manuales  map[string]*entity.Alerta
	overrides map[string]*entity.OverrideCiclo
}

var _ repository.AlertaRepository = (*repoMemoria)(nil)

func nuevoRepoMemoria() *repoMemoria {
	return &repoMemoria{
		manuales:  make(map[string]*entity.Alerta),
		overrides: make(map[string]*entity.OverrideCiclo),
	}
}

func (r *repoMemoria) CrearManual(_ context.Context, a *entity.Alerta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *a
	r.manuales[a.ID] = &copia
	return nil
}

func (r *repoMemoria) ObtenerManual(_ context.Context, id string) (*entity.Alerta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.manuales[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (r *repoMemoria) ListarManuales(_ context.Context) ([]*entity.Alerta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Alerta, 0, len(r.manuales))
	for _, a := range r.manuales {
		copia := *a
		out = append(out, &copia)
	}
	return out, nil
}

func (r *repoMemoria) ActualizarManual(_ context.Context, a *entity.Alerta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *a
	r.manuales[a.ID] = &copia
	return nil
}

func (r *repoMemoria) EliminarManual(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.manuales, id)
	return nil
}

func (r *repoMemoria) GuardarOverride(_ context.Context, o *entity.OverrideCiclo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *o
	r.overrides[o.AlertaID] = &copia
	return nil
}

func (r *repoMemoria) ObtenerOverride(_ context.Context, alertaID string) (*entity.OverrideCiclo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.overrides[alertaID]
	if !ok {
		return nil, nil
	}
	copia := *o
	return &copia, nil
}

func (r *repoMemoria) ListarOverrides(_ context.Context) (map[string]*entity.OverrideCiclo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*entity.OverrideCiclo, len(r.overrides))
	for k, o := range r.overrides {
		copia := *o
		out[k] = &copia
	}
	return out, nil
}

func (r *repoMemoria) ResueltasDesde(_ context.Context, desde time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, a := range r.manuales {
		if a.Estado == entity.EstadoResuelto && a.ResueltaEn != nil && !a.ResueltaEn.Before(desde) {
			n++
		}
	}
	for _, o := range r.overrides {
		if o.Estado == entity.EstadoResuelto && o.ResueltaEn != nil && !o.ResueltaEn.Before(desde) {
			n++
		}
	}
	return n, nil
}

// fuenteFija fuente de vencimientos con datos precargados (o un error fijo).
type fuenteFija struct {
	nombre string
	vencs  []entity.Vencimiento
	err    error
}

var _ repository.FuenteVencimientos = (*fuenteFija)(nil)

func (f *fuenteFija) Nombre() string { return f.nombre }

func (f *fuenteFija) Vencimientos(_ context.Context, hasta time.Time) ([]entity.Vencimiento, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Vencimiento
	for _, v := range f.vencs {
		if !v.FechaVenc.After(hasta) {
			out = append(out, v)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de armado
// ──────────────────────────────────────────────────────────────────────────────

const ventanaTest = 30

// armarMotor agregador con política default, ventana de 30 días y zona UTC.
func armarMotor(repo repository.AlertaRepository, fuentes ...repository.FuenteVencimientos) *alertas.Agregador {
	return alertas.NewAgregador(repo, fuentes, alerta.PoliticaDefault(), ventanaTest, time.UTC, logger.Nop())
}

// enDias fecha calendario a N días del corte.
func enDias(corte time.Time, n int) time.Time {
	return corte.AddDate(0, 0, n)
}

func vencVehiculo(id, nombre, regla string, fecha time.Time) entity.Vencimiento {
	return entity.Vencimiento{
		TipoEntidad: entity.TipoVehiculo,
		EntidadID:   id,
		Nombre:      nombre,
		Regla:       regla,
		FechaVenc:   fecha,
	}
}

func vencPersonal(id, nombre, regla string, fecha time.Time) entity.Vencimiento {
	return entity.Vencimiento{
		TipoEntidad: entity.TipoPersonal,
		EntidadID:   id,
		Nombre:      nombre,
		Regla:       regla,
		FechaVenc:   fecha,
	}
}
