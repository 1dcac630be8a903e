package booking

import "time"

// Entry é a projeção somente-leitura de um agendamento existente,
// como fornecida pela camada de persistência.
type Entry struct {
	ID      uint
	StaffID *uint
	Start   time.Time
	End     time.Time
}

// Ledger é a fatia de agendamentos não deletados de um período,
// em ordem cronológica.
type Ledger []Entry

// SameResource compara identidade de recurso: mesmo staff,
// ou ambos sem staff (recurso compartilhado do negócio).
func (e Entry) SameResource(staffID *uint) bool {
	if e.StaffID == nil && staffID == nil {
		return true
	}
	if e.StaffID == nil || staffID == nil {
		return false
	}
	return *e.StaffID == *staffID
}

// Overlaps testa sobreposição de intervalos semiabertos:
// [s1,e1) e [s2,e2) se sobrepõem sse s1 < e2 && s2 < e1.
func (e Entry) Overlaps(start, end time.Time) bool {
	return start.Before(e.End) && e.Start.Before(end)
}
