package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos Postgres de violação detectada no commit
// (segunda fase; a pré-checagem já passou).
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsExclusionConflict identifica a corrida check-then-act resolvida
// pelo banco: uma constraint de exclusão/unicidade sobre
// (recurso, intervalo) rejeitou o insert depois da pré-checagem.
// O chamador deve reportar concurrent_conflict, distinto do
// slot_conflict da pré-checagem.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation
	}
	return false
}
