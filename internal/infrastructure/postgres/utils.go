package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation. Lo disparan las constraints de
// patente, legajo, cuit y email al insertar duplicados.
const codigoUnicoViolado = "23505"

// isUniqueViolation reconoce la violación de una constraint de unicidad para
// que los repos la mapeen a domain.ErrDuplicado.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoUnicoViolado
}
