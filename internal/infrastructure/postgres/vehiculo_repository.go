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

var _ repository.VehiculoRepository = (*VehiculoRepo)(nil)

const columnasVehiculo = `id, patente, marca, modelo, anio, estado, fecha_vtv, fecha_seguro, fecha_permiso, aseguradora, suma_asegurada, creado_en, actualizado_en`

// VehiculoRepo implementación de VehiculoRepository sobre PostgreSQL (usable con pool o tx).
type VehiculoRepo struct {
	q Querier
}

// NewVehiculoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehiculoRepository(q Querier) *VehiculoRepo {
	return &VehiculoRepo{q: q}
}

// Crear persiste un nuevo vehículo.
func (r *VehiculoRepo) Crear(ctx context.Context, v *entity.Vehiculo) error {
	query := `
		INSERT INTO vehiculos (` + columnasVehiculo + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Patente, v.Marca, v.Modelo, v.Anio, v.Estado,
		v.FechaVTV, v.FechaSeguro, v.FechaPermiso, v.Aseguradora, v.SumaAsegurada,
		v.CreadoEn, v.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert vehiculo: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un vehículo por ID. Devuelve (nil, nil) si no existe.
func (r *VehiculoRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Vehiculo, error) {
	query := `SELECT ` + columnasVehiculo + ` FROM vehiculos WHERE id = $1`
	return r.obtenerUno(ctx, query, id)
}

// ObtenerPorPatente obtiene un vehículo por patente. Devuelve (nil, nil) si no existe.
func (r *VehiculoRepo) ObtenerPorPatente(ctx context.Context, patente string) (*entity.Vehiculo, error) {
	query := `SELECT ` + columnasVehiculo + ` FROM vehiculos WHERE patente = $1`
	return r.obtenerUno(ctx, query, patente)
}

// Listar lista vehículos con filtro de texto libre y paginación. Devuelve
// además el total de filas que matchean el filtro.
func (r *VehiculoRepo) Listar(ctx context.Context, filtro string, limit, offset int) ([]*entity.Vehiculo, int, error) {
	patron := "%" + filtro + "%"

	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM vehiculos WHERE (patente ILIKE $1 OR marca ILIKE $1 OR modelo ILIKE $1)`,
		patron,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count vehiculos: %w", err)
	}

	query := `
		SELECT ` + columnasVehiculo + `
		FROM vehiculos
		WHERE (patente ILIKE $1 OR marca ILIKE $1 OR modelo ILIKE $1)
		ORDER BY patente LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, patron, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list vehiculos: %w", err)
	}
	defer rows.Close()

	var vehiculos []*entity.Vehiculo
	for rows.Next() {
		v, err := scanVehiculo(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan vehiculo: %w", err)
		}
		vehiculos = append(vehiculos, v)
	}
	return vehiculos, total, rows.Err()
}

// Actualizar actualiza un vehículo existente.
func (r *VehiculoRepo) Actualizar(ctx context.Context, v *entity.Vehiculo) error {
	query := `
		UPDATE vehiculos
		SET patente = $2, marca = $3, modelo = $4, anio = $5, estado = $6,
		    fecha_vtv = $7, fecha_seguro = $8, fecha_permiso = $9,
		    aseguradora = $10, suma_asegurada = $11, actualizado_en = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Patente, v.Marca, v.Modelo, v.Anio, v.Estado,
		v.FechaVTV, v.FechaSeguro, v.FechaPermiso, v.Aseguradora, v.SumaAsegurada,
		v.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update vehiculo: %w", err)
	}
	return nil
}

// Eliminar elimina un vehículo por ID.
func (r *VehiculoRepo) Eliminar(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM vehiculos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehiculo: %w", err)
	}
	return nil
}

func (r *VehiculoRepo) obtenerUno(ctx context.Context, query string, arg any) (*entity.Vehiculo, error) {
	v, err := scanVehiculo(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehiculo: %w", err)
	}
	return v, nil
}

func scanVehiculo(row pgx.Row) (*entity.Vehiculo, error) {
	var v entity.Vehiculo
	err := row.Scan(
		&v.ID, &v.Patente, &v.Marca, &v.Modelo, &v.Anio, &v.Estado,
		&v.FechaVTV, &v.FechaSeguro, &v.FechaPermiso, &v.Aseguradora, &v.SumaAsegurada,
		&v.CreadoEn, &v.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
