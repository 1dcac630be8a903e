package booking

import "github.com/BruksfildServices01/booking-engine/internal/httperr"

// ===============================
// Booking Status
// ===============================

// O ciclo de vida de posicionamento é ativo → deletado (soft delete);
// "completed" é apenas registro pós-atendimento e continua ocupando
// seu intervalo no ledger.

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusScheduled
}
