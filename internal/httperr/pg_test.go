package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsExclusionConflict(t *testing.T) {
	// violações de segunda fase viram concurrent_conflict
	assert.True(t, IsExclusionConflict(&pgconn.PgError{Code: "23P01"}))
	assert.True(t, IsExclusionConflict(&pgconn.PgError{Code: "23505"}))

	// sobrevive a wrapping (gorm embrulha o erro do driver)
	wrapped := fmt.Errorf("insert bookings: %w", &pgconn.PgError{Code: "23P01"})
	assert.True(t, IsExclusionConflict(wrapped))

	// outras violações não são a corrida de agendamento
	assert.False(t, IsExclusionConflict(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsExclusionConflict(&pgconn.PgError{Code: "40001"}))

	// erros comuns não disparam o mapeamento
	assert.False(t, IsExclusionConflict(errors.New("connection refused")))
	assert.False(t, IsExclusionConflict(nil))
}
