package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gescop/gescop-api/internal/domain/entity"
	"github.com/gescop/gescop-api/internal/domain/repository"
)

var (
	_ repository.FuenteVencimientos = (*FuenteVehiculos)(nil)
	_ repository.FuenteVencimientos = (*FuentePersonal)(nil)
	_ repository.FuenteVencimientos = (*FuenteProveedores)(nil)
	_ repository.FuenteVencimientos = (*FuenteSedes)(nil)
)

// Las fuentes leen directamente las tablas de entidades y proyectan cada
// columna de fecha como un vencimiento con su regla. Sin cota inferior:
// un vencimiento atrasado aparece siempre. Las entidades dadas de baja no
// generan vencimientos.

// FuenteVehiculos proyecta VTV, seguro y permiso de circulación de la flota.
type FuenteVehiculos struct {
	q Querier
}

// NewFuenteVehiculos construye la fuente sobre la tabla vehiculos.
func NewFuenteVehiculos(q Querier) *FuenteVehiculos {
	return &FuenteVehiculos{q: q}
}

func (f *FuenteVehiculos) Nombre() string { return "vehiculos" }

// Vencimientos devuelve los vencimientos de vehículos con fecha <= hasta.
func (f *FuenteVehiculos) Vencimientos(ctx context.Context, hasta time.Time) ([]entity.Vencimiento, error) {
	query := `
		SELECT id, trim(patente || ' ' || marca), 'VTV', fecha_vtv
		FROM vehiculos WHERE fecha_vtv IS NOT NULL AND fecha_vtv <= $1 AND estado <> 'baja'
		UNION ALL
		SELECT id, trim(patente || ' ' || marca), 'Seguro', fecha_seguro
		FROM vehiculos WHERE fecha_seguro IS NOT NULL AND fecha_seguro <= $1 AND estado <> 'baja'
		UNION ALL
		SELECT id, trim(patente || ' ' || marca), 'Permiso', fecha_permiso
		FROM vehiculos WHERE fecha_permiso IS NOT NULL AND fecha_permiso <= $1 AND estado <> 'baja'`
	return consultarVencimientos(ctx, f.q, entity.TipoVehiculo, query, hasta)
}

// FuentePersonal proyecta licencia de conducir y carnet habilitante del personal.
type FuentePersonal struct {
	q Querier
}

// NewFuentePersonal construye la fuente sobre la tabla personal.
func NewFuentePersonal(q Querier) *FuentePersonal {
	return &FuentePersonal{q: q}
}

func (f *FuentePersonal) Nombre() string { return "personal" }

// Vencimientos devuelve los vencimientos de personal con fecha <= hasta.
func (f *FuentePersonal) Vencimientos(ctx context.Context, hasta time.Time) ([]entity.Vencimiento, error) {
	query := `
		SELECT id, CASE WHEN nombre = '' THEN apellido ELSE apellido || ', ' || nombre END, 'Licencia', fecha_licencia
		FROM personal WHERE fecha_licencia IS NOT NULL AND fecha_licencia <= $1 AND estado <> 'baja'
		UNION ALL
		SELECT id, CASE WHEN nombre = '' THEN apellido ELSE apellido || ', ' || nombre END, 'Carnet', fecha_carnet
		FROM personal WHERE fecha_carnet IS NOT NULL AND fecha_carnet <= $1 AND estado <> 'baja'`
	return consultarVencimientos(ctx, f.q, entity.TipoPersonal, query, hasta)
}

// FuenteProveedores proyecta el fin de vigencia de los contratos.
type FuenteProveedores struct {
	q Querier
}

// NewFuenteProveedores construye la fuente sobre la tabla proveedores.
func NewFuenteProveedores(q Querier) *FuenteProveedores {
	return &FuenteProveedores{q: q}
}

func (f *FuenteProveedores) Nombre() string { return "proveedores" }

// Vencimientos devuelve los contratos que vencen con fecha <= hasta.
func (f *FuenteProveedores) Vencimientos(ctx context.Context, hasta time.Time) ([]entity.Vencimiento, error) {
	query := `
		SELECT id, razon_social, 'Contrato', fecha_contrato
		FROM proveedores WHERE fecha_contrato IS NOT NULL AND fecha_contrato <= $1 AND estado <> 'baja'`
	return consultarVencimientos(ctx, f.q, entity.TipoProveedor, query, hasta)
}

// FuenteSedes proyecta habilitación municipal y permiso de bomberos de cada sede.
type FuenteSedes struct {
	q Querier
}

// NewFuenteSedes construye la fuente sobre la tabla sedes.
func NewFuenteSedes(q Querier) *FuenteSedes {
	return &FuenteSedes{q: q}
}

func (f *FuenteSedes) Nombre() string { return "sedes" }

// Vencimientos devuelve los vencimientos de sedes con fecha <= hasta.
func (f *FuenteSedes) Vencimientos(ctx context.Context, hasta time.Time) ([]entity.Vencimiento, error) {
	query := `
		SELECT id, nombre, 'Habilitacion', fecha_habilitacion
		FROM sedes WHERE fecha_habilitacion IS NOT NULL AND fecha_habilitacion <= $1 AND estado <> 'cerrada'
		UNION ALL
		SELECT id, nombre, 'Permiso', fecha_permiso
		FROM sedes WHERE fecha_permiso IS NOT NULL AND fecha_permiso <= $1 AND estado <> 'cerrada'`
	return consultarVencimientos(ctx, f.q, entity.TipoSede, query, hasta)
}

// consultarVencimientos ejecuta una proyección (entidad_id, nombre, regla, fecha)
// y la materializa como vencimientos del tipo dado.
func consultarVencimientos(ctx context.Context, q Querier, tipo entity.TipoEntidad, query string, hasta time.Time) ([]entity.Vencimiento, error) {
	rows, err := q.Query(ctx, query, hasta)
	if err != nil {
		return nil, fmt.Errorf("query vencimientos %s: %w", tipo, err)
	}
	defer rows.Close()

	var vencs []entity.Vencimiento
	for rows.Next() {
		v := entity.Vencimiento{TipoEntidad: tipo}
		if err := rows.Scan(&v.EntidadID, &v.Nombre, &v.Regla, &v.FechaVenc); err != nil {
			return nil, fmt.Errorf("scan vencimiento %s: %w", tipo, err)
		}
		vencs = append(vencs, v)
	}
	return vencs, rows.Err()
}
