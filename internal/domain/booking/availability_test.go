package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-engine/internal/domain/schedule"
)

// segunda-feira, 2026-03-09
var monday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func buildSchedule(t *testing.T, policy schedule.Policy, enforceClose bool, windows ...schedule.DayWindow) *schedule.WeekSchedule {
	t.Helper()
	s, err := schedule.NewWeekSchedule(
		windows,
		schedule.SlotSize{Value: 30, Unit: schedule.SlotUnitMinutes},
		policy,
		enforceClose,
	)
	require.NoError(t, err)
	return s
}

func mondayWindow() schedule.DayWindow {
	return schedule.DayWindow{
		Weekday:   0,
		Open:      true,
		OpenTime:  8 * 60,
		CloseTime: 17 * 60,
	}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 9, hour, min, 0, 0, time.UTC)
}

func strs(slots []schedule.TimeOfDay) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestAvailableSlots_EmptyLedger(t *testing.T) {
	sched := buildSchedule(t, schedule.PolicyPrevented, false, mondayWindow())

	slots := AvailableSlots(monday, sched, nil, 60, nil)

	// 08:00..16:30: o fim pode ultrapassar o fechamento por padrão
	require.Len(t, slots, 18)
	assert.Equal(t, "08:00", slots[0].String())
	assert.Equal(t, "16:30", slots[17].String())
}

func TestAvailableSlots_ExistingBookingBlocksOverlaps(t *testing.T) {
	sched := buildSchedule(t, schedule.PolicyPrevented, false, mondayWindow())

	ledger := Ledger{
		{ID: 1, Start: at(10, 0), End: at(11, 0)},
	}

	slots := strs(AvailableSlots(monday, sched, ledger, 60, nil))

	// serviço de 60min a partir de 09:30, 10:00 ou 10:30 invadiria [10:00, 11:00)
	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")

	// intervalos semiabertos: encostar não conflita
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "11:00")

	assert.Len(t, slots, 15)
}

func TestAvailableSlots_PolicyAllowedIgnoresLedger(t *testing.T) {
	sched := buildSchedule(t, schedule.PolicyAllowed, false, mondayWindow())

	ledger := Ledger{
		{ID: 1, Start: at(10, 0), End: at(11, 0)},
		{ID: 2, Start: at(10, 0), End: at(11, 0)},
	}

	slots := AvailableSlots(monday, sched, ledger, 60, nil)
	assert.Len(t, slots, 18)
}

func TestAvailableSlots_ClosedDay(t *testing.T) {
	// agenda sem janela para segunda
	sched := buildSchedule(t, schedule.PolicyPrevented, false)

	assert.Empty(t, AvailableSlots(monday, sched, nil, 60, nil))
}

func TestAvailableSlots_EnforceClosingTime(t *testing.T) {
	sched := buildSchedule(t, schedule.PolicyPrevented, true, mondayWindow())

	slots := strs(AvailableSlots(monday, sched, nil, 60, nil))

	// com corte estrito, o último início de 60min é 16:00
	assert.Contains(t, slots, "16:00")
	assert.NotContains(t, slots, "16:30")
	assert.Len(t, slots, 17)
}

func TestAvailableSlots_BreakExcluded(t *testing.T) {
	w := mondayWindow()
	w.BreakStart = 12 * 60
	w.BreakEnd = 13 * 60

	sched := buildSchedule(t, schedule.PolicyPrevented, false, w)

	slots := strs(AvailableSlots(monday, sched, nil, 60, nil))

	// serviço de 60min não pode atravessar a pausa [12:00, 13:00)
	assert.NotContains(t, slots, "11:30")
	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "12:30")
	assert.Contains(t, slots, "11:00")
	assert.Contains(t, slots, "13:00")
}

func TestAvailableSlots_StaffIsolation(t *testing.T) {
	sched := buildSchedule(t, schedule.PolicyPrevented, false, mondayWindow())

	ana := uint(7)
	bruno := uint(8)

	ledger := Ledger{
		{ID: 1, StaffID: &ana, Start: at(10, 0), End: at(11, 0)},
	}

	// o mesmo horário continua livre para outro profissional
	slotsBruno := strs(AvailableSlots(monday, sched, ledger, 60, &bruno))
	assert.Contains(t, slotsBruno, "10:00")

	// e para o recurso compartilhado (sem staff)
	slotsShared := strs(AvailableSlots(monday, sched, ledger, 60, nil))
	assert.Contains(t, slotsShared, "10:00")

	// mas não para a própria profissional
	slotsAna := strs(AvailableSlots(monday, sched, ledger, 60, &ana))
	assert.NotContains(t, slotsAna, "10:00")
}
