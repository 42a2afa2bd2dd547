// Package alertas implementa el motor unificado de alertas de vencimientos:
// agregación de fuentes heterogéneas, ciclo de vida, consulta filtrada y
// estadísticas. Es el reemplazo de las ~6 implementaciones inline e
// inconsistentes que el back-office repetía endpoint por endpoint.
package alertas

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gescop/gescop-api/internal/domain"
	"github.com/gescop/gescop-api/internal/domain/alerta"
	"github.com/gescop/gescop-api/internal/domain/entity"
	"github.com/gescop/gescop-api/internal/domain/repository"
	"github.com/gescop/gescop-api/pkg/logger"
)

// Agregador fusiona los vencimientos de todas las fuentes registradas con las
// alertas manuales persistidas, aplicando overrides de ciclo de vida al leer.
// Las alertas derivadas se regeneran en cada llamada: los días restantes y la
// severidad nunca quedan almacenados rancios.
type Agregador struct {
	repo     repository.AlertaRepository
	fuentes  []repository.FuenteVencimientos
	politica alerta.Politica
	ventana  int // días de anticipación (look-ahead)
	loc      *time.Location
	log      *logger.Logger
}

// NewAgregador construye el agregador con su política de severidad y ventana
// de anticipación. Las fuentes se registran en orden; el orden no afecta el
// resultado (el ordenamiento final es determinístico).
func NewAgregador(
	repo repository.AlertaRepository,
	fuentes []repository.FuenteVencimientos,
	politica alerta.Politica,
	ventanaDias int,
	loc *time.Location,
	log *logger.Logger,
) *Agregador {
	return &Agregador{
		repo:     repo,
		fuentes:  fuentes,
		politica: politica,
		ventana:  ventanaDias,
		loc:      loc,
		log:      log,
	}
}

// Hoy devuelve la fecha calendario actual en la zona de reporte.
func (a *Agregador) Hoy() time.Time {
	return alerta.Fecha(time.Now(), a.loc)
}

// Ventana devuelve los días de anticipación configurados.
func (a *Agregador) Ventana() int { return a.ventana }

// Ubicacion devuelve la zona horaria de reporte.
func (a *Agregador) Ubicacion() *time.Location { return a.loc }

// Agregar produce la lista completa de alertas vigentes al corte dado:
// derivadas de vencimientos dentro de la ventana configurada (más todo lo ya
// vencido, sin cota inferior) y manuales sin restricción de ventana.
//
// La falla de una fuente no aborta la agregación: se loguea, se agrega un
// warning y se devuelven las alertas de las fuentes que sí respondieron.
func (a *Agregador) Agregar(ctx context.Context, corte time.Time) ([]*entity.Alerta, []string, error) {
	return a.agregar(ctx, corte, a.ventana, false)
}

// Proximas produce sólo alertas con fecha dentro de una ventana ad hoc
// (GET /api/alertas/proximas?dias=N). Incluye vencidas.
func (a *Agregador) Proximas(ctx context.Context, corte time.Time, dias int) ([]*entity.Alerta, []string, error) {
	todas, warnings, err := a.agregar(ctx, corte, dias, false)
	if err != nil {
		return nil, warnings, err
	}
	out := make([]*entity.Alerta, 0, len(todas))
	for _, al := range todas {
		if al.DiasRestantes != nil && *al.DiasRestantes <= dias {
			out = append(out, al)
		}
	}
	return out, warnings, nil
}

// BuscarPorID localiza una alerta por id: manual persistida o derivada de la
// agregación vigente. Para derivadas se ignora la ventana, de modo que una
// alerta pospuesta más allá del look-ahead sigue siendo operable (resolver,
// archivar) aunque ya no aparezca en los listados por defecto.
func (a *Agregador) BuscarPorID(ctx context.Context, corte time.Time, id string) (*entity.Alerta, error) {
	if !alerta.EsIDDerivado(id) {
		manual, err := a.repo.ObtenerManual(ctx, id)
		if err != nil {
			return nil, err
		}
		if manual == nil {
			return nil, nil
		}
		a.completarManual(manual, corte)
		return manual, nil
	}

	todas, _, err := a.agregar(ctx, corte, a.ventana, true)
	if err != nil {
		return nil, err
	}
	for _, al := range todas {
		if al.ID == id {
			return al, nil
		}
	}
	return nil, nil
}

func (a *Agregador) agregar(ctx context.Context, corte time.Time, ventana int, ignorarVentana bool) ([]*entity.Alerta, []string, error) {
	hasta := alerta.Fecha(corte, a.loc).AddDate(0, 0, ventana)

	// Los overrides son parte del estado persistido: si no se pueden leer, la
	// agregación completa falla (a diferencia de una fuente caída).
	overrides, err := a.repo.ListarOverrides(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listar overrides: %w", err)
	}

	var alertas []*entity.Alerta
	var warnings []string

	for _, f := range a.fuentes {
		vencs, err := f.Vencimientos(ctx, hasta)
		if err != nil {
			err = fmt.Errorf("%w: %v", domain.ErrFuenteNoDisponible, err)
			a.log.Warn().Err(err).Str("fuente", f.Nombre()).Msg("fuente de vencimientos no disponible, agregación parcial")
			warnings = append(warnings, fmt.Sprintf("fuente %q no disponible: se omiten sus vencimientos", f.Nombre()))
			continue
		}
		for _, v := range vencs {
			al := a.derivar(v, corte, overrides)
			if !ignorarVentana && al.DiasRestantes != nil && *al.DiasRestantes > ventana {
				// Pospuesta más allá del look-ahead: el override participa de
				// la ventana igual que una fecha real, la alerta sale del radar.
				continue
			}
			alertas = append(alertas, al)
		}
	}

	manuales, err := a.repo.ListarManuales(ctx)
	if err != nil {
		return nil, warnings, fmt.Errorf("listar alertas manuales: %w", err)
	}
	for _, m := range manuales {
		a.completarManual(m, corte)
		alertas = append(alertas, m)
	}

	ordenar(alertas)
	return alertas, warnings, nil
}

// derivar sintetiza la alerta de un vencimiento y le aplica el override de
// ciclo de vida si existe. La fecha efectiva (override o real) gobierna días
// restantes, severidad y ventana; la fecha de la entidad de origen no se toca.
func (a *Agregador) derivar(v entity.Vencimiento, corte time.Time, overrides map[string]*entity.OverrideCiclo) *entity.Alerta {
	id := alerta.SintetizarID(v.TipoEntidad, v.EntidadID, v.Regla)

	fecha := alerta.FechaCalendario(v.FechaVenc, a.loc)
	al := &entity.Alerta{
		ID:          id,
		Categoria:   alerta.CategoriaDe(v.TipoEntidad),
		Titulo:      fmt.Sprintf("Vencimiento de %s", v.Regla),
		Elemento:    v.Nombre,
		TipoEntidad: v.TipoEntidad,
		Regla:       v.Regla,
		Estado:      entity.EstadoPendiente,
		Origen:      entity.OrigenDerivada,
		CreadaEn:    corte,
	}

	if o, ok := overrides[id]; ok {
		al.Estado = o.Estado
		al.Notas = o.Notas
		al.ResueltaPor = o.ResueltaPor
		al.ResueltaEn = o.ResueltaEn
		if o.NuevaFecha != nil {
			fecha = alerta.FechaCalendario(*o.NuevaFecha, a.loc)
		}
	}

	al.FechaVenc = &fecha
	dias := alerta.DiasEntre(corte, fecha, a.loc)
	al.DiasRestantes = &dias
	al.Severidad = a.politica.Clasificar(&dias)

	if dias < 0 {
		al.Descripcion = fmt.Sprintf("%s de %s venció el %s", v.Regla, v.Nombre, fecha.Format("02/01/2006"))
	} else {
		al.Descripcion = fmt.Sprintf("%s de %s vence el %s", v.Regla, v.Nombre, fecha.Format("02/01/2006"))
	}
	return al
}

// completarManual calcula los campos derivados de una alerta manual al leer:
// días restantes y severidad desde la fecha si la hay, o la prioridad
// declarada (Informativo por defecto) si no.
func (a *Agregador) completarManual(m *entity.Alerta, corte time.Time) {
	if m.FechaVenc != nil {
		fecha := alerta.FechaCalendario(*m.FechaVenc, a.loc)
		m.FechaVenc = &fecha
		dias := alerta.DiasEntre(corte, fecha, a.loc)
		m.DiasRestantes = &dias
		m.Severidad = a.politica.Clasificar(&dias)
		return
	}
	m.DiasRestantes = nil
	if m.Prioridad != "" {
		m.Severidad = m.Prioridad
	} else {
		m.Severidad = entity.SeveridadInformativo
	}
}

// ordenar: ascendente por días restantes con nil al final (las informativas
// van después de todas las fechadas); empates por categoría y luego id para
// que dos agregaciones sobre los mismos datos devuelvan el mismo orden.
func ordenar(alertas []*entity.Alerta) {
	sort.Slice(alertas, func(i, j int) bool {
		di, dj := alertas[i].DiasRestantes, alertas[j].DiasRestantes
		switch {
		case di == nil && dj != nil:
			return false
		case di != nil && dj == nil:
			return true
		case di != nil && dj != nil && *di != *dj:
			return *di < *dj
		}
		if alertas[i].Categoria != alertas[j].Categoria {
			return alertas[i].Categoria < alertas[j].Categoria
		}
		return alertas[i].ID < alertas[j].ID
	})
}
