package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-engine/internal/domain/schedule"
)

func TestEvaluate_RejectsOverlapSameResource(t *testing.T) {
	sched := buildSchedule(t, schedule.PolicyPrevented, false, mondayWindow())

	ledger := Ledger{
		{ID: 42, Start: at(10, 0), End: at(11, 0)},
	}

	// proposta inteiramente contida no intervalo ocupado
	d := Evaluate(Draft{Start: at(10, 15), End: at(10, 45)}, ledger, sched, false)

	require.False(t, d.Accepted)
	assert.Equal(t, ReasonSlotConflict, d.Reason)
	assert.Equal(t, uint(42), d.ConflictWith)
}

func TestEvaluate_AdjacentIntervalsCoexist(t *testing.T) {
	sched := buildSchedule(t, schedule.PolicyPrevented, false, mondayWindow())

	ledger := Ledger{
		{ID: 1, Start: at(10, 0), End: at(11, 0)},
	}

	before := Evaluate(Draft{Start: at(9, 0), End: at(10, 0)}, ledger, sched, false)
	after := Evaluate(Draft{Start: at(11, 0), End: at(12, 0)}, ledger, sched, false)

	assert.True(t, before.Accepted)
	assert.True(t, after.Accepted)
}

func TestEvaluate_PolicyAllowedAcceptsAnything(t *testing.T) {
	sched := buildSchedule(t, schedule.PolicyAllowed, false, mondayWindow())

	ledger := Ledger{
		{ID: 1, Start: at(10, 0), End: at(11, 0)},
	}

	d := Evaluate(Draft{Start: at(10, 0), End: at(11, 0)}, ledger, sched, false)
	assert.True(t, d.Accepted)
}

func TestEvaluate_OwnerOverrideBypassesConflict(t *testing.T) {
	sched := buildSchedule(t, schedule.PolicyPrevented, false, mondayWindow())

	ledger := Ledger{
		{ID: 1, Start: at(10, 0), End: at(11, 0)},
	}

	d := Evaluate(Draft{Start: at(10, 0), End: at(11, 0)}, ledger, sched, true)
	assert.True(t, d.Accepted)
}

func TestEvaluate_SelfExclusionOnEdit(t *testing.T) {
	sched := buildSchedule(t, schedule.PolicyPrevented, false, mondayWindow())

	ledger := Ledger{
		{ID: 42, Start: at(10, 0), End: at(11, 0)},
	}

	// re-salvar o próprio horário não conflita consigo mesmo
	same := Evaluate(Draft{ExcludeID: 42, Start: at(10, 0), End: at(11, 0)}, ledger, sched, false)
	assert.True(t, same.Accepted)

	// mas outro agendamento no mesmo intervalo ainda bloqueia
	ledger = append(ledger, Entry{ID: 43, Start: at(10, 30), End: at(11, 30)})
	moved := Evaluate(Draft{ExcludeID: 42, Start: at(10, 0), End: at(11, 0)}, ledger, sched, false)
	require.False(t, moved.Accepted)
	assert.Equal(t, uint(43), moved.ConflictWith)
}

func TestEvaluate_DifferentStaffNoConflict(t *testing.T) {
	sched := buildSchedule(t, schedule.PolicyPrevented, false, mondayWindow())

	ana := uint(7)
	bruno := uint(8)

	ledger := Ledger{
		{ID: 1, StaffID: &ana, Start: at(10, 0), End: at(11, 0)},
	}

	d := Evaluate(Draft{StaffID: &bruno, Start: at(10, 0), End: at(11, 0)}, ledger, sched, false)
	assert.True(t, d.Accepted)

	// staff nil (recurso compartilhado) também não colide com staff específico
	d = Evaluate(Draft{StaffID: nil, Start: at(10, 0), End: at(11, 0)}, ledger, sched, false)
	assert.True(t, d.Accepted)

	// mesma profissional colide
	d = Evaluate(Draft{StaffID: &ana, Start: at(10, 0), End: at(11, 0)}, ledger, sched, false)
	assert.False(t, d.Accepted)
}

func TestWithinWindow(t *testing.T) {
	w := mondayWindow()
	w.BreakStart = 12 * 60
	w.BreakEnd = 13 * 60

	permissive := buildSchedule(t, schedule.PolicyPrevented, false, w)
	strict := buildSchedule(t, schedule.PolicyPrevented, true, w)

	// dentro do expediente
	assert.True(t, WithinWindow(permissive, at(9, 0), at(10, 0)))

	// antes da abertura / início após o fechamento
	assert.False(t, WithinWindow(permissive, at(7, 0), at(8, 0)))
	assert.False(t, WithinWindow(permissive, at(17, 0), at(18, 0)))

	// fim após o fechamento: permitido por padrão, cortado no modo estrito
	assert.True(t, WithinWindow(permissive, at(16, 30), at(17, 30)))
	assert.False(t, WithinWindow(strict, at(16, 30), at(17, 30)))

	// atravessar a pausa nunca é permitido
	assert.False(t, WithinWindow(permissive, at(11, 30), at(12, 30)))

	// dia fechado
	sunday := at(9, 0).AddDate(0, 0, 6)
	assert.False(t, WithinWindow(permissive, sunday, sunday.Add(time.Hour)))
}
