package booking

import (
	"time"

	"github.com/BruksfildServices01/booking-engine/internal/domain/schedule"
)

type AvailabilityInput struct {
	BusinessID uint
	StaffID    *uint
	ServiceID  uint
	Date       time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailableSlots calcula os horários de início agendáveis do dia.
//
//  1. Dia fechado → vazio.
//  2. Candidatos vêm da grade (slot size do negócio).
//  3. Pausa configurada exclui candidatos cujo serviço a atravessa.
//  4. Sob PolicyPrevented, exclui candidato cujo intervalo hipotético
//     [t, t+duração) sobrepõe agendamento do mesmo recurso no ledger.
//     Sob PolicyAllowed nenhum filtro de ledger é aplicado.
//
// Resultado cronológico, sem duplicatas. Vazio é válido (dia fechado
// ou totalmente ocupado), não é erro.
func AvailableSlots(
	day time.Time,
	sched *schedule.WeekSchedule,
	ledger Ledger,
	durationMin int,
	staffID *uint,
) []schedule.TimeOfDay {

	window := sched.WindowFor(schedule.WeekdayOf(day))
	if !window.Open {
		return nil
	}

	candidates := schedule.GenerateSlots(window, sched.SlotSize)
	duration := schedule.TimeOfDay(durationMin)

	var out []schedule.TimeOfDay
	for _, t := range candidates {
		slotEnd := t + duration

		if sched.EnforceClosingTime && slotEnd > window.CloseTime {
			continue
		}

		if window.HasBreak() && t < window.BreakEnd && slotEnd > window.BreakStart {
			continue
		}

		if sched.Policy == schedule.PolicyPrevented {
			start := t.At(day)
			end := start.Add(time.Duration(durationMin) * time.Minute)

			if hasConflict(ledger, staffID, start, end, 0) {
				continue
			}
		}

		out = append(out, t)
	}

	return out
}

func hasConflict(ledger Ledger, staffID *uint, start, end time.Time, excludeID uint) bool {
	for _, e := range ledger {
		if excludeID != 0 && e.ID == excludeID {
			continue
		}
		if e.SameResource(staffID) && e.Overlaps(start, end) {
			return true
		}
	}
	return false
}
