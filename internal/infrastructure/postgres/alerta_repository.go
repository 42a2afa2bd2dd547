package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gescop/gescop-api/internal/domain/entity"
	"github.com/gescop/gescop-api/internal/domain/repository"
)

var _ repository.AlertaRepository = (*AlertaRepo)(nil)

// AlertaRepo implementación de AlertaRepository sobre PostgreSQL (usable con pool o tx).
// Persiste alertas manuales completas y los overrides de ciclo de vida de las
// alertas derivadas; las derivadas en sí nunca se guardan.
type AlertaRepo struct {
	q Querier
}

// NewAlertaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertaRepository(q Querier) *AlertaRepo {
	return &AlertaRepo{q: q}
}

// CrearManual persiste una alerta manual completa.
func (r *AlertaRepo) CrearManual(ctx context.Context, a *entity.Alerta) error {
	query := `
		INSERT INTO alertas_manuales (id, categoria, titulo, descripcion, elemento, fecha_venc, estado, prioridad, creada_en, resuelta_en, resuelta_por, notas)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Categoria, a.Titulo, a.Descripcion, a.Elemento, a.FechaVenc,
		a.Estado, a.Prioridad, a.CreadaEn, a.ResueltaEn, a.ResueltaPor, a.Notas,
	)
	if err != nil {
		return fmt.Errorf("insert alerta manual: %w", err)
	}
	return nil
}

// ObtenerManual obtiene una alerta manual por ID. Devuelve (nil, nil) si no existe.
func (r *AlertaRepo) ObtenerManual(ctx context.Context, id string) (*entity.Alerta, error) {
	query := `
		SELECT id, categoria, titulo, descripcion, elemento, fecha_venc, estado, prioridad, creada_en, resuelta_en, resuelta_por, notas
		FROM alertas_manuales WHERE id = $1`
	a, err := scanAlertaManual(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alerta manual: %w", err)
	}
	return a, nil
}

// ListarManuales lista todas las alertas manuales.
func (r *AlertaRepo) ListarManuales(ctx context.Context) ([]*entity.Alerta, error) {
	query := `
		SELECT id, categoria, titulo, descripcion, elemento, fecha_venc, estado, prioridad, creada_en, resuelta_en, resuelta_por, notas
		FROM alertas_manuales ORDER BY creada_en`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list alertas manuales: %w", err)
	}
	defer rows.Close()

	var alertas []*entity.Alerta
	for rows.Next() {
		a, err := scanAlertaManual(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alerta manual: %w", err)
		}
		alertas = append(alertas, a)
	}
	return alertas, rows.Err()
}

// ActualizarManual actualiza una alerta manual existente.
func (r *AlertaRepo) ActualizarManual(ctx context.Context, a *entity.Alerta) error {
	query := `
		UPDATE alertas_manuales
		SET categoria = $2, titulo = $3, descripcion = $4, elemento = $5, fecha_venc = $6,
		    estado = $7, prioridad = $8, resuelta_en = $9, resuelta_por = $10, notas = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Categoria, a.Titulo, a.Descripcion, a.Elemento, a.FechaVenc,
		a.Estado, a.Prioridad, a.ResueltaEn, a.ResueltaPor, a.Notas,
	)
	if err != nil {
		return fmt.Errorf("update alerta manual: %w", err)
	}
	return nil
}

// EliminarManual elimina una alerta manual por ID.
func (r *AlertaRepo) EliminarManual(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM alertas_manuales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete alerta manual: %w", err)
	}
	return nil
}

// GuardarOverride inserta o actualiza el override de una alerta derivada.
func (r *AlertaRepo) GuardarOverride(ctx context.Context, o *entity.OverrideCiclo) error {
	query := `
		INSERT INTO alertas_overrides (alerta_id, estado, nueva_fecha, notas, resuelta_por, resuelta_en, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (alerta_id) DO UPDATE
		SET estado = EXCLUDED.estado, nueva_fecha = EXCLUDED.nueva_fecha, notas = EXCLUDED.notas,
		    resuelta_por = EXCLUDED.resuelta_por, resuelta_en = EXCLUDED.resuelta_en,
		    actualizado_en = EXCLUDED.actualizado_en`
	_, err := r.q.Exec(ctx, query,
		o.AlertaID, o.Estado, o.NuevaFecha, o.Notas, o.ResueltaPor, o.ResueltaEn,
		o.CreadoEn, o.ActualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("upsert override: %w", err)
	}
	return nil
}

// ObtenerOverride obtiene el override de una alerta derivada. Devuelve (nil, nil) si no existe.
func (r *AlertaRepo) ObtenerOverride(ctx context.Context, alertaID string) (*entity.OverrideCiclo, error) {
	query := `
		SELECT alerta_id, estado, nueva_fecha, notas, resuelta_por, resuelta_en, creado_en, actualizado_en
		FROM alertas_overrides WHERE alerta_id = $1`
	var o entity.OverrideCiclo
	err := r.q.QueryRow(ctx, query, alertaID).Scan(
		&o.AlertaID, &o.Estado, &o.NuevaFecha, &o.Notas, &o.ResueltaPor, &o.ResueltaEn,
		&o.CreadoEn, &o.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get override: %w", err)
	}
	return &o, nil
}

// ListarOverrides devuelve todos los overrides indexados por id de alerta.
func (r *AlertaRepo) ListarOverrides(ctx context.Context) (map[string]*entity.OverrideCiclo, error) {
	query := `
		SELECT alerta_id, estado, nueva_fecha, notas, resuelta_por, resuelta_en, creado_en, actualizado_en
		FROM alertas_overrides`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(map[string]*entity.OverrideCiclo)
	for rows.Next() {
		var o entity.OverrideCiclo
		if err := rows.Scan(
			&o.AlertaID, &o.Estado, &o.NuevaFecha, &o.Notas, &o.ResueltaPor, &o.ResueltaEn,
			&o.CreadoEn, &o.ActualizadoEn,
		); err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		overrides[o.AlertaID] = &o
	}
	return overrides, rows.Err()
}

// ResueltasDesde cuenta alertas resueltas (manuales + overrides) desde una fecha.
func (r *AlertaRepo) ResueltasDesde(ctx context.Context, desde time.Time) (int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM alertas_manuales WHERE estado = $1 AND resuelta_en >= $2) +
			(SELECT COUNT(*) FROM alertas_overrides WHERE estado = $1 AND resuelta_en >= $2)`
	var total int
	if err := r.q.QueryRow(ctx, query, entity.EstadoResuelto, desde).Scan(&total); err != nil {
		return 0, fmt.Errorf("count alertas resueltas: %w", err)
	}
	return total, nil
}

// scanAlertaManual escanea una fila de alertas_manuales. Origen siempre es Manual;
// días restantes y severidad se calculan en la capa de aplicación.
func scanAlertaManual(row pgx.Row) (*entity.Alerta, error) {
	var a entity.Alerta
	err := row.Scan(
		&a.ID, &a.Categoria, &a.Titulo, &a.Descripcion, &a.Elemento, &a.FechaVenc,
		&a.Estado, &a.Prioridad, &a.CreadaEn, &a.ResueltaEn, &a.ResueltaPor, &a.Notas,
	)
	if err != nil {
		return nil, err
	}
	a.Origen = entity.OrigenManual
	return &a, nil
}
