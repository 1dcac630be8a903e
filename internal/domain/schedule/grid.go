package schedule

// GenerateSlots gera os horários candidatos do dia: todo t com
// open <= t < close e (t - open) múltiplo do tamanho do slot.
// Janela fechada gera sequência vazia.
//
// Um slot é válido mesmo que t + duração do serviço ultrapasse o
// fechamento; o corte estrito é decisão da camada de disponibilidade
// (flag enforce_closing_time do negócio).
func GenerateSlots(w DayWindow, slot SlotSize) []TimeOfDay {
	if !w.Open {
		return nil
	}

	step := TimeOfDay(slot.Minutes())
	if step <= 0 {
		return nil
	}

	var out []TimeOfDay
	for t := w.OpenTime; t < w.CloseTime; t += step {
		out = append(out, t)
	}
	return out
}
