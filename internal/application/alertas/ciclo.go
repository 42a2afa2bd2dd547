package alertas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gescop/gescop-api/internal/application/dto"
	"github.com/gescop/gescop-api/internal/domain"
	"github.com/gescop/gescop-api/internal/domain/alerta"
	"github.com/gescop/gescop-api/internal/domain/entity"
	"github.com/gescop/gescop-api/internal/domain/repository"
)

// Ciclo casos de uso del ciclo de vida de alertas: resolver, posponer,
// archivar, creación manual, actualización y borrado.
//
// Para alertas derivadas todo pasa por overrides persistidos: resolver o
// archivar una derivada nunca toca la entidad de negocio ni su fecha real.
type Ciclo struct {
	repo      repository.AlertaRepository
	agregador *Agregador
}

// NewCiclo construye el caso de uso.
func NewCiclo(repo repository.AlertaRepository, agregador *Agregador) *Ciclo {
	return &Ciclo{repo: repo, agregador: agregador}
}

// Resolver marca la alerta como resuelta. Idempotente: resolver una alerta ya
// resuelta devuelve el registro existente sin error. Una alerta archivada no
// puede resolverse (estado terminal).
func (c *Ciclo) Resolver(ctx context.Context, id, resueltaPor, notas string) (*entity.Alerta, error) {
	corte := c.agregador.Hoy()
	al, err := c.agregador.BuscarPorID(ctx, corte, id)
	if err != nil {
		return nil, err
	}
	if al == nil {
		return nil, domain.ErrNoEncontrado
	}
	if al.Archivada() {
		return nil, fmt.Errorf("%w: la alerta está archivada", domain.ErrOperacionInvalida)
	}
	if al.Estado == entity.EstadoResuelto {
		return al, nil
	}

	ahora := time.Now()
	al.Estado = entity.EstadoResuelto
	al.ResueltaEn = &ahora
	al.ResueltaPor = resueltaPor
	if notas != "" {
		al.Notas = notas
	}

	if err := c.persistirEstado(ctx, al, nil); err != nil {
		return nil, err
	}
	return al, nil
}

// Posponer corre la fecha efectiva de la alerta y la deja EnProceso. La nueva
// fecha no puede estar en el pasado. Para derivadas se guarda un override: la
// fecha real de la entidad queda intacta y sigue siendo la autoritativa.
func (c *Ciclo) Posponer(ctx context.Context, id string, nuevaFecha time.Time, por, notas string) (*entity.Alerta, error) {
	corte := c.agregador.Hoy()
	nueva := alerta.FechaCalendario(nuevaFecha, c.agregador.Ubicacion())
	if nueva.Before(corte) {
		return nil, fmt.Errorf("%w: la nueva fecha no puede estar en el pasado", domain.ErrValidacion)
	}

	al, err := c.agregador.BuscarPorID(ctx, corte, id)
	if err != nil {
		return nil, err
	}
	if al == nil {
		return nil, domain.ErrNoEncontrado
	}
	if al.Archivada() {
		return nil, fmt.Errorf("%w: la alerta está archivada", domain.ErrOperacionInvalida)
	}

	al.Estado = entity.EstadoEnProceso
	al.ResueltaPor = por
	if notas != "" {
		al.Notas = notas
	}
	al.FechaVenc = &nueva
	dias := alerta.DiasEntre(corte, nueva, c.agregador.Ubicacion())
	al.DiasRestantes = &dias
	al.Severidad = c.agregador.politica.Clasificar(&dias)

	if err := c.persistirEstado(ctx, al, &nueva); err != nil {
		return nil, err
	}
	return al, nil
}

// Archivar pasa la alerta a su estado terminal. Queda fuera de las consultas
// por defecto pero recuperable con el filtro de estado explícito.
func (c *Ciclo) Archivar(ctx context.Context, id string) (*entity.Alerta, error) {
	corte := c.agregador.Hoy()
	al, err := c.agregador.BuscarPorID(ctx, corte, id)
	if err != nil {
		return nil, err
	}
	if al == nil {
		return nil, domain.ErrNoEncontrado
	}
	if al.Archivada() {
		return al, nil
	}

	al.Estado = entity.EstadoArchivada
	if err := c.persistirEstado(ctx, al, nil); err != nil {
		return nil, err
	}
	return al, nil
}

// CrearManual persiste una alerta manual. La severidad jamás se acepta del
// caller cuando hay fecha de vencimiento: se deriva siempre. La prioridad
// declarada sólo tiene sentido para alertas sin fecha, y mandar ambas es un
// error de validación (no una preferencia silenciosa).
func (c *Ciclo) CrearManual(ctx context.Context, in dto.CrearAlertaRequest) (*entity.Alerta, error) {
	if in.Titulo == "" {
		return nil, fmt.Errorf("%w: titulo es requerido", domain.ErrValidacion)
	}
	categoria := entity.Categoria(in.Categoria)
	if !entity.CategoriaValida(categoria) {
		return nil, fmt.Errorf("%w: categoria desconocida %q", domain.ErrValidacion, in.Categoria)
	}

	var fecha *time.Time
	if in.FechaVenc != "" {
		f, err := time.ParseInLocation(dto.FormatoFecha, in.FechaVenc, c.agregador.Ubicacion())
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_venc inválida (formato %s)", domain.ErrValidacion, dto.FormatoFecha)
		}
		fecha = &f
	}

	var prioridad entity.Severidad
	if in.Prioridad != "" {
		if fecha != nil {
			return nil, fmt.Errorf("%w: prioridad no es seteable cuando hay fecha_venc (la severidad se deriva)", domain.ErrValidacion)
		}
		prioridad = entity.Severidad(in.Prioridad)
		switch prioridad {
		case entity.SeveridadCritico, entity.SeveridadAlto, entity.SeveridadMedio,
			entity.SeveridadBajo, entity.SeveridadInformativo:
		default:
			return nil, fmt.Errorf("%w: prioridad desconocida %q", domain.ErrValidacion, in.Prioridad)
		}
	}

	ahora := time.Now()
	al := &entity.Alerta{
		ID:          uuid.New().String(),
		Categoria:   categoria,
		Titulo:      in.Titulo,
		Descripcion: in.Descripcion,
		Elemento:    in.Elemento,
		FechaVenc:   fecha,
		Estado:      entity.EstadoPendiente,
		Origen:      entity.OrigenManual,
		Prioridad:   prioridad,
		CreadaEn:    ahora,
	}
	if err := c.repo.CrearManual(ctx, al); err != nil {
		return nil, err
	}
	c.agregador.completarManual(al, c.agregador.Hoy())
	return al, nil
}

// Actualizar modifica campos mutables de una alerta manual. Las derivadas se
// regeneran desde la entidad de origen y no admiten edición de título ni
// categoría: eso antes pasaba en silencio y dejaba datos contradictorios.
func (c *Ciclo) Actualizar(ctx context.Context, id string, in dto.ActualizarAlertaRequest) (*entity.Alerta, error) {
	if alerta.EsIDDerivado(id) {
		return nil, fmt.Errorf("%w: una alerta derivada no admite edición directa", domain.ErrOperacionInvalida)
	}
	al, err := c.repo.ObtenerManual(ctx, id)
	if err != nil {
		return nil, err
	}
	if al == nil {
		return nil, domain.ErrNoEncontrado
	}

	if in.Categoria != nil {
		categoria := entity.Categoria(*in.Categoria)
		if !entity.CategoriaValida(categoria) {
			return nil, fmt.Errorf("%w: categoria desconocida %q", domain.ErrValidacion, *in.Categoria)
		}
		al.Categoria = categoria
	}
	if in.Titulo != nil {
		if *in.Titulo == "" {
			return nil, fmt.Errorf("%w: titulo no puede quedar vacío", domain.ErrValidacion)
		}
		al.Titulo = *in.Titulo
	}
	if in.Descripcion != nil {
		al.Descripcion = *in.Descripcion
	}
	if in.Elemento != nil {
		al.Elemento = *in.Elemento
	}
	if in.Notas != nil {
		al.Notas = *in.Notas
	}
	if in.FechaVenc != nil {
		if *in.FechaVenc == "" {
			al.FechaVenc = nil
		} else {
			f, err := time.ParseInLocation(dto.FormatoFecha, *in.FechaVenc, c.agregador.Ubicacion())
			if err != nil {
				return nil, fmt.Errorf("%w: fecha_venc inválida (formato %s)", domain.ErrValidacion, dto.FormatoFecha)
			}
			al.FechaVenc = &f
		}
	}

	if err := c.repo.ActualizarManual(ctx, al); err != nil {
		return nil, err
	}
	c.agregador.completarManual(al, c.agregador.Hoy())
	return al, nil
}

// Eliminar borra definitivamente una alerta manual. Las derivadas no se
// eliminan (se archivan): la entidad de origen y su fecha no son nuestras.
func (c *Ciclo) Eliminar(ctx context.Context, id string) error {
	if alerta.EsIDDerivado(id) {
		return fmt.Errorf("%w: una alerta derivada no puede eliminarse, archívela", domain.ErrOperacionInvalida)
	}
	al, err := c.repo.ObtenerManual(ctx, id)
	if err != nil {
		return err
	}
	if al == nil {
		return domain.ErrNoEncontrado
	}
	return c.repo.EliminarManual(ctx, id)
}

// persistirEstado escribe el cambio de ciclo de vida donde corresponda: el
// registro manual completo, o un override por id sintetizado para derivadas.
func (c *Ciclo) persistirEstado(ctx context.Context, al *entity.Alerta, nuevaFecha *time.Time) error {
	if al.Origen == entity.OrigenManual {
		return c.repo.ActualizarManual(ctx, al)
	}

	existente, err := c.repo.ObtenerOverride(ctx, al.ID)
	if err != nil {
		return err
	}
	ahora := time.Now()
	o := &entity.OverrideCiclo{
		AlertaID:      al.ID,
		Estado:        al.Estado,
		Notas:         al.Notas,
		ResueltaPor:   al.ResueltaPor,
		ResueltaEn:    al.ResueltaEn,
		CreadoEn:      ahora,
		ActualizadoEn: ahora,
	}
	if existente != nil {
		o.CreadoEn = existente.CreadoEn
		o.NuevaFecha = existente.NuevaFecha // una fecha pospuesta sobrevive a resolver/archivar
	}
	if nuevaFecha != nil {
		o.NuevaFecha = nuevaFecha
	}
	return c.repo.GuardarOverride(ctx, o)
}
