package alertas

import (
	"context"
	"strings"
	"time"

	"github.com/gescop/gescop-api/internal/domain/alerta"
	"github.com/gescop/gescop-api/internal/domain/entity"
)

// Filtros criterios opcionales de la consulta, combinados con AND.
// Valor cero = filtro no aplicado.
type Filtros struct {
	Categoria   entity.Categoria
	Severidad   entity.Severidad
	Estado      entity.EstadoAlerta
	TipoEntidad entity.TipoEntidad
	FechaVenc   *time.Time // coincidencia exacta de fecha calendario
	Texto       string     // substring case-insensitive sobre titulo/descripcion/elemento/id
	DiasMax     *int       // sólo alertas fechadas con días restantes <= DiasMax
}

// Paginacion página 1-based.
type Paginacion struct {
	Page     int
	PageSize int
}

// Resultado página de alertas con metadatos del conjunto filtrado completo.
type Resultado struct {
	Items       []*entity.Alerta
	TotalCount  int
	TotalPages  int
	CurrentPage int
	PageSize    int
	Warnings    []string
}

// Consulta façade de lectura sobre la agregación: filtros + paginación.
// Una consulta sin resultados es un 200 con lista vacía, nunca un not-found.
type Consulta struct {
	agregador *Agregador
}

// NewConsulta construye la façade.
func NewConsulta(agregador *Agregador) *Consulta {
	return &Consulta{agregador: agregador}
}

// Consultar aplica los filtros sobre la agregación vigente y pagina. Sin
// filtro de estado se excluyen las archivadas (Pendiente + EnProceso +
// Resuelto); el filtro explícito Estado=Archivada las recupera.
func (q *Consulta) Consultar(ctx context.Context, corte time.Time, f Filtros, p Paginacion) (*Resultado, error) {
	todas, warnings, err := q.agregador.Agregar(ctx, corte)
	if err != nil {
		return nil, err
	}

	filtradas := make([]*entity.Alerta, 0, len(todas))
	for _, al := range todas {
		if q.cumple(al, f) {
			filtradas = append(filtradas, al)
		}
	}

	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	total := len(filtradas)
	pages := total / p.PageSize
	if total%p.PageSize != 0 {
		pages++
	}

	desde := (p.Page - 1) * p.PageSize
	if desde > total {
		desde = total
	}
	hastaIdx := desde + p.PageSize
	if hastaIdx > total {
		hastaIdx = total
	}

	return &Resultado{
		Items:       filtradas[desde:hastaIdx],
		TotalCount:  total,
		TotalPages:  pages,
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		Warnings:    warnings,
	}, nil
}

func (q *Consulta) cumple(al *entity.Alerta, f Filtros) bool {
	if f.Estado != "" {
		if al.Estado != f.Estado {
			return false
		}
	} else if al.Archivada() {
		return false
	}
	if f.Categoria != "" && al.Categoria != f.Categoria {
		return false
	}
	if f.Severidad != "" && al.Severidad != f.Severidad {
		return false
	}
	if f.TipoEntidad != "" && al.TipoEntidad != f.TipoEntidad {
		return false
	}
	if f.FechaVenc != nil {
		if al.FechaVenc == nil {
			return false
		}
		objetivo := alerta.FechaCalendario(*f.FechaVenc, q.agregador.Ubicacion())
		if !al.FechaVenc.Equal(objetivo) {
			return false
		}
	}
	if f.DiasMax != nil {
		if al.DiasRestantes == nil || *al.DiasRestantes > *f.DiasMax {
			return false
		}
	}
	if f.Texto != "" {
		t := strings.ToLower(f.Texto)
		if !strings.Contains(strings.ToLower(al.Titulo), t) &&
			!strings.Contains(strings.ToLower(al.Descripcion), t) &&
			!strings.Contains(strings.ToLower(al.Elemento), t) &&
			!strings.Contains(strings.ToLower(al.ID), t) {
			return false
		}
	}
	return true
}
