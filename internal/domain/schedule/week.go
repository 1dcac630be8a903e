package schedule

import "github.com/BruksfildServices01/booking-engine/internal/httperr"

// Policy define se dois agendamentos do mesmo recurso podem se sobrepor.
type Policy string

const (
	PolicyAllowed   Policy = "allowed"
	PolicyPrevented Policy = "prevented"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyAllowed, PolicyPrevented:
		return Policy(s), nil
	}
	return "", httperr.ErrBusiness("invalid_policy")
}

// WeekSchedule é o valor imutável com a configuração de agenda do negócio:
// janelas por dia da semana, granularidade e política de double booking.
// Construído por inteiro a cada carga; dados malformados são rejeitados
// aqui, na carga, nunca corrigidos silenciosamente.
type WeekSchedule struct {
	windows map[int]DayWindow

	SlotSize SlotSize
	Policy   Policy

	// Quando true, serviço não pode ultrapassar o fechamento
	EnforceClosingTime bool
}

func NewWeekSchedule(
	windows []DayWindow,
	slot SlotSize,
	policy Policy,
	enforceClosingTime bool,
) (*WeekSchedule, error) {

	if err := slot.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParsePolicy(string(policy)); err != nil {
		return nil, err
	}

	byDay := make(map[int]DayWindow, len(windows))
	for _, w := range windows {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byDay[w.Weekday]; dup {
			return nil, httperr.ErrBusiness("duplicate_weekday")
		}
		byDay[w.Weekday] = w
	}

	return &WeekSchedule{
		windows:            byDay,
		SlotSize:           slot,
		Policy:             policy,
		EnforceClosingTime: enforceClosingTime,
	}, nil
}

// WindowFor devolve a janela do dia; dia ausente = fechado.
func (s *WeekSchedule) WindowFor(weekday int) DayWindow {
	if w, ok := s.windows[weekday]; ok {
		return w
	}
	return ClosedWindow(weekday)
}
