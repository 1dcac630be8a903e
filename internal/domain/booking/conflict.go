package booking

import (
	"time"

	"github.com/BruksfildServices01/booking-engine/internal/domain/schedule"
)

// Draft é a proposta de agendamento submetida ao resolvedor de conflitos.
// Em edições, ExcludeID identifica o agendamento sendo substituído,
// excluído da checagem contra si mesmo. Zero = criação.
type Draft struct {
	ExcludeID uint
	StaffID   *uint
	Start     time.Time
	End       time.Time
}

type RejectReason string

const (
	ReasonSlotConflict RejectReason = "slot_conflict"
)

type Decision struct {
	Accepted     bool
	Reason       RejectReason
	ConflictWith uint
}

func accept() Decision {
	return Decision{Accepted: true}
}

func reject(reason RejectReason, with uint) Decision {
	return Decision{Reason: reason, ConflictWith: with}
}

// Evaluate decide se a proposta coexiste legalmente com o ledger atual.
// Função pura: sem I/O, sem efeitos; persistir é papel do ciclo de vida.
//
// Regras, em ordem:
//  1. PolicyAllowed aceita incondicionalmente.
//  2. ownerOverride (contexto de gestão) aceita incondicionalmente.
//  3. Sobreposição com agendamento do mesmo recurso → slot_conflict.
//  4. Caso contrário, aceita.
func Evaluate(
	d Draft,
	ledger Ledger,
	sched *schedule.WeekSchedule,
	ownerOverride bool,
) Decision {

	if sched.Policy == schedule.PolicyAllowed {
		return accept()
	}

	if ownerOverride {
		return accept()
	}

	for _, e := range ledger {
		if d.ExcludeID != 0 && e.ID == d.ExcludeID {
			continue
		}
		if e.SameResource(d.StaffID) && e.Overlaps(d.Start, d.End) {
			return reject(ReasonSlotConflict, e.ID)
		}
	}

	return accept()
}

// WithinWindow verifica se a proposta cai na janela do dia, respeitando
// a regra permissiva de fechamento: só exige fim dentro do expediente
// quando o negócio ativou enforce_closing_time.
func WithinWindow(sched *schedule.WeekSchedule, start, end time.Time) bool {
	window := sched.WindowFor(schedule.WeekdayOf(start))
	if !window.Open {
		return false
	}

	startTOD := schedule.TimeOfDay(start.Hour()*60 + start.Minute())
	endTOD := schedule.TimeOfDay(end.Hour()*60 + end.Minute())
	if end.Day() != start.Day() {
		endTOD = schedule.MinutesPerDay
	}

	if startTOD < window.OpenTime || startTOD >= window.CloseTime {
		return false
	}
	if sched.EnforceClosingTime && endTOD > window.CloseTime {
		return false
	}
	if window.HasBreak() && startTOD < window.BreakEnd && endTOD > window.BreakStart {
		return false
	}

	return true
}
