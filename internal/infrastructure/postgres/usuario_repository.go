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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const columnasUsuario = `id, email, password_hash, nombre, rol, estado, creado_en, actualizado_en`

// UsuarioRepo implementación de UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Crear persiste un nuevo usuario.
func (r *UsuarioRepo) Crear(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + columnasUsuario + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.Nombre, u.Rol, u.Estado, u.CreadoEn, u.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE id = $1`
	return r.obtenerUno(ctx, query, id)
}

// ObtenerPorEmail obtiene un usuario por email. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) ObtenerPorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE email = $1`
	return r.obtenerUno(ctx, query, email)
}

func (r *UsuarioRepo) obtenerUno(ctx context.Context, query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Rol, &u.Estado, &u.CreadoEn, &u.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
