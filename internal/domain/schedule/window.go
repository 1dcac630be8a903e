package schedule

import "github.com/BruksfildServices01/booking-engine/internal/httperr"

// DayWindow é a janela de funcionamento de um dia da semana.
// Criada/substituída em bloco quando o negócio salva seus horários;
// nunca mutada parcialmente.
type DayWindow struct {
	Weekday int // 0 = segunda-feira
	Open    bool

	OpenTime  TimeOfDay
	CloseTime TimeOfDay

	// Pausa opcional (ex.: almoço). Sem pausa: ambos zero.
	BreakStart TimeOfDay
	BreakEnd   TimeOfDay
}

// ClosedWindow representa um dia totalmente fechado.
// Ausência de configuração significa fechado, não "não configurado".
func ClosedWindow(weekday int) DayWindow {
	return DayWindow{Weekday: weekday, Open: false}
}

func (w DayWindow) HasBreak() bool {
	return w.BreakEnd > w.BreakStart
}

func (w DayWindow) Validate() error {
	if w.Weekday < 0 || w.Weekday > 6 {
		return httperr.ErrBusiness("invalid_weekday")
	}
	if !w.Open {
		return nil
	}
	if !w.OpenTime.Valid() || !w.CloseTime.Valid() || w.OpenTime >= w.CloseTime {
		return httperr.ErrBusiness("invalid_window")
	}
	if w.HasBreak() {
		if w.BreakStart < w.OpenTime || w.BreakEnd > w.CloseTime {
			return httperr.ErrBusiness("invalid_break")
		}
	}
	return nil
}
