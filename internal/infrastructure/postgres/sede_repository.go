package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gescop/gescop-api/internal/domain"
	"github.com/gescop/gescop-api/internal/domain/entity"
	"github.com/gescop/gescop-api/internal/domain/repository"
)

var _ repository.SedeRepository = (*SedeRepo)(nil)

const columnasSede = `id, nombre, direccion, localidad, responsable, estado, fecha_habilitacion, fecha_permiso, creado_en, actualizado_en`

// SedeRepo implementación de SedeRepository sobre PostgreSQL (usable con pool o tx).
type SedeRepo struct {
	q Querier
}

// NewSedeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSedeRepository(q Querier) *SedeRepo {
	return &SedeRepo{q: q}
}

// Crear persiste una nueva sede.
func (r *SedeRepo) Crear(ctx context.Context, s *entity.Sede) error {
	query := `
		INSERT INTO sedes (` + columnasSede + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Nombre, s.Direccion, s.Localidad, s.Responsable, s.Estado,
		s.FechaHabilitacion, s.FechaPermiso, s.CreadoEn, s.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert sede: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene una sede por ID. Devuelve (nil, nil) si no existe.
func (r *SedeRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Sede, error) {
	query := `SELECT ` + columnasSede + ` FROM sedes WHERE id = $1`
	s, err := scanSede(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sede: %w", err)
	}
	return s, nil
}

// Listar lista sedes con filtro de texto libre y paginación.
func (r *SedeRepo) Listar(ctx context.Context, filtro string, limit, offset int) ([]*entity.Sede, int, error) {
	patron := "%" + filtro + "%"

	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM sedes WHERE (nombre ILIKE $1 OR localidad ILIKE $1)`,
		patron,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count sedes: %w", err)
	}

	query := `
		SELECT ` + columnasSede + `
		FROM sedes
		WHERE (nombre ILIKE $1 OR localidad ILIKE $1)
		ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, patron, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sedes: %w", err)
	}
	defer rows.Close()

	var sedes []*entity.Sede
	for rows.Next() {
		s, err := scanSede(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan sede: %w", err)
		}
		sedes = append(sedes, s)
	}
	return sedes, total, rows.Err()
}

// Actualizar actualiza una sede existente.
func (r *SedeRepo) Actualizar(ctx context.Context, s *entity.Sede) error {
	query := `
		UPDATE sedes
		SET nombre = $2, direccion = $3, localidad = $4, responsable = $5, estado = $6,
		    fecha_habilitacion = $7, fecha_permiso = $8, actualizado_en = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Nombre, s.Direccion, s.Localidad, s.Responsable, s.Estado,
		s.FechaHabilitacion, s.FechaPermiso, s.ActualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("update sede: %w", err)
	}
	return nil
}

// Eliminar elimina una sede por ID.
func (r *SedeRepo) Eliminar(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sedes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sede: %w", err)
	}
	return nil
}

func scanSede(row pgx.Row) (*entity.Sede, error) {
	var s entity.Sede
	err := row.Scan(
		&s.ID, &s.Nombre, &s.Direccion, &s.Localidad, &s.Responsable, &s.Estado,
		&s.FechaHabilitacion, &s.FechaPermiso, &s.CreadoEn, &s.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
