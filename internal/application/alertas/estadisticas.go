package alertas

import (
	"context"
	"fmt"
	"time"

	"github.com/gescop/gescop-api/internal/domain/entity"
	"github.com/gescop/gescop-api/internal/domain/repository"
)

// Resumen conteos para las cards del dashboard.
type Resumen struct {
	Total              int
	PorSeveridad       map[entity.Severidad]int
	PorCategoria       map[entity.Categoria]int
	ResueltasEnPeriodo int
}

// Estadisticas sumariza la agregación vigente. Se recalcula en cada llamada:
// los días restantes dependen de "hoy" y cachearlos produciría severidades
// rancias, que es exactamente el defecto que este módulo elimina.
type Estadisticas struct {
	agregador *Agregador
	repo      repository.AlertaRepository
}

// NewEstadisticas construye el sumarizador.
func NewEstadisticas(agregador *Agregador, repo repository.AlertaRepository) *Estadisticas {
	return &Estadisticas{agregador: agregador, repo: repo}
}

// Resumir cuenta las alertas no archivadas por severidad y categoría, más las
// resueltas dentro del período de la ventana de anticipación hacia atrás.
func (s *Estadisticas) Resumir(ctx context.Context, corte time.Time) (*Resumen, []string, error) {
	todas, warnings, err := s.agregador.Agregar(ctx, corte)
	if err != nil {
		return nil, warnings, err
	}

	r := &Resumen{
		PorSeveridad: make(map[entity.Severidad]int),
		PorCategoria: make(map[entity.Categoria]int),
	}
	for _, al := range todas {
		if al.Archivada() {
			continue
		}
		r.Total++
		r.PorSeveridad[al.Severidad]++
		r.PorCategoria[al.Categoria]++
	}

	desde := corte.AddDate(0, 0, -s.agregador.Ventana())
	resueltas, err := s.repo.ResueltasDesde(ctx, desde)
	if err != nil {
		return nil, warnings, fmt.Errorf("contar resueltas: %w", err)
	}
	r.ResueltasEnPeriodo = resueltas

	return r, warnings, nil
}
