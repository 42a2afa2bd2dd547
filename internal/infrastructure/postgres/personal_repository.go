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

var _ repository.PersonalRepository = (*PersonalRepo)(nil)

const columnasPersonal = `id, legajo, nombre, apellido, dni, puesto, estado, fecha_licencia, fecha_carnet, creado_en, actualizado_en`

// PersonalRepo implementación de PersonalRepository sobre PostgreSQL (usable con pool o tx).
type PersonalRepo struct {
	q Querier
}

// NewPersonalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPersonalRepository(q Querier) *PersonalRepo {
	return &PersonalRepo{q: q}
}

// Crear persiste un nuevo registro de personal.
func (r *PersonalRepo) Crear(ctx context.Context, p *entity.Personal) error {
	query := `
		INSERT INTO personal (` + columnasPersonal + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Legajo, p.Nombre, p.Apellido, p.DNI, p.Puesto, p.Estado,
		p.FechaLicencia, p.FechaCarnet, p.CreadoEn, p.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert personal: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un registro de personal por ID. Devuelve (nil, nil) si no existe.
func (r *PersonalRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Personal, error) {
	query := `SELECT ` + columnasPersonal + ` FROM personal WHERE id = $1`
	return r.obtenerUno(ctx, query, id)
}

// ObtenerPorLegajo obtiene un registro de personal por legajo. Devuelve (nil, nil) si no existe.
func (r *PersonalRepo) ObtenerPorLegajo(ctx context.Context, legajo string) (*entity.Personal, error) {
	query := `SELECT ` + columnasPersonal + ` FROM personal WHERE legajo = $1`
	return r.obtenerUno(ctx, query, legajo)
}

// Listar lista personal con filtro de texto libre y paginación. Devuelve
// además el total de filas que matchean el filtro.
func (r *PersonalRepo) Listar(ctx context.Context, filtro string, limit, offset int) ([]*entity.Personal, int, error) {
	patron := "%" + filtro + "%"

	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM personal WHERE (legajo ILIKE $1 OR nombre ILIKE $1 OR apellido ILIKE $1 OR dni ILIKE $1)`,
		patron,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count personal: %w", err)
	}

	query := `
		SELECT ` + columnasPersonal + `
		FROM personal
		WHERE (legajo ILIKE $1 OR nombre ILIKE $1 OR apellido ILIKE $1 OR dni ILIKE $1)
		ORDER BY apellido, nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, patron, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list personal: %w", err)
	}
	defer rows.Close()

	var personas []*entity.Personal
	for rows.Next() {
		p, err := scanPersonal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan personal: %w", err)
		}
		personas = append(personas, p)
	}
	return personas, total, rows.Err()
}

// Actualizar actualiza un registro de personal existente.
func (r *PersonalRepo) Actualizar(ctx context.Context, p *entity.Personal) error {
	query := `
		UPDATE personal
		SET legajo = $2, nombre = $3, apellido = $4, dni = $5, puesto = $6, estado = $7,
		    fecha_licencia = $8, fecha_carnet = $9, actualizado_en = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Legajo, p.Nombre, p.Apellido, p.DNI, p.Puesto, p.Estado,
		p.FechaLicencia, p.FechaCarnet, p.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update personal: %w", err)
	}
	return nil
}

// Eliminar elimina un registro de personal por ID.
func (r *PersonalRepo) Eliminar(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM personal WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete personal: %w", err)
	}
	return nil
}

func (r *PersonalRepo) obtenerUno(ctx context.Context, query string, arg any) (*entity.Personal, error) {
	p, err := scanPersonal(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get personal: %w", err)
	}
	return p, nil
}

func scanPersonal(row pgx.Row) (*entity.Personal, error) {
	var p entity.Personal
	err := row.Scan(
		&p.ID, &p.Legajo, &p.Nombre, &p.Apellido, &p.DNI, &p.Puesto, &p.Estado,
		&p.FechaLicencia, &p.FechaCarnet, &p.CreadoEn, &p.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
