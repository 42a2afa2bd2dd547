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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

const columnasProveedor = `id, cuit, razon_social, rubro, contacto, email, telefono, estado, fecha_contrato, monto_contrato, creado_en, actualizado_en`

// ProveedorRepo implementación de ProveedorRepository sobre PostgreSQL (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Crear persiste un nuevo proveedor.
func (r *ProveedorRepo) Crear(ctx context.Context, p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (` + columnasProveedor + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CUIT, p.RazonSocial, p.Rubro, p.Contacto, p.Email, p.Telefono, p.Estado,
		p.FechaContrato, p.MontoContrato, p.CreadoEn, p.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *ProveedorRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Proveedor, error) {
	query := `SELECT ` + columnasProveedor + ` FROM proveedores WHERE id = $1`
	return r.obtenerUno(ctx, query, id)
}

// ObtenerPorCUIT obtiene un proveedor por CUIT. Devuelve (nil, nil) si no existe.
func (r *ProveedorRepo) ObtenerPorCUIT(ctx context.Context, cuit string) (*entity.Proveedor, error) {
	query := `SELECT ` + columnasProveedor + ` FROM proveedores WHERE cuit = $1`
	return r.obtenerUno(ctx, query, cuit)
}

// Listar lista proveedores con filtro de texto libre y paginación.
func (r *ProveedorRepo) Listar(ctx context.Context, filtro string, limit, offset int) ([]*entity.Proveedor, int, error) {
	patron := "%" + filtro + "%"

	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM proveedores WHERE (cuit ILIKE $1 OR razon_social ILIKE $1 OR rubro ILIKE $1)`,
		patron,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count proveedores: %w", err)
	}

	query := `
		SELECT ` + columnasProveedor + `
		FROM proveedores
		WHERE (cuit ILIKE $1 OR razon_social ILIKE $1 OR rubro ILIKE $1)
		ORDER BY razon_social LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, patron, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()

	var proveedores []*entity.Proveedor
	for rows.Next() {
		p, err := scanProveedor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan proveedor: %w", err)
		}
		proveedores = append(proveedores, p)
	}
	return proveedores, total, rows.Err()
}

// Actualizar actualiza un proveedor existente.
func (r *ProveedorRepo) Actualizar(ctx context.Context, p *entity.Proveedor) error {
	query := `
		UPDATE proveedores
		SET cuit = $2, razon_social = $3, rubro = $4, contacto = $5, email = $6, telefono = $7,
		    estado = $8, fecha_contrato = $9, monto_contrato = $10, actualizado_en = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CUIT, p.RazonSocial, p.Rubro, p.Contacto, p.Email, p.Telefono, p.Estado,
		p.FechaContrato, p.MontoContrato, p.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// Eliminar elimina un proveedor por ID.
func (r *ProveedorRepo) Eliminar(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) obtenerUno(ctx context.Context, query string, arg any) (*entity.Proveedor, error) {
	p, err := scanProveedor(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return p, nil
}

func scanProveedor(row pgx.Row) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := row.Scan(
		&p.ID, &p.CUIT, &p.RazonSocial, &p.Rubro, &p.Contacto, &p.Email, &p.Telefono, &p.Estado,
		&p.FechaContrato, &p.MontoContrato, &p.CreadoEn, &p.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
