package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_FullDay(t *testing.T) {
	w := DayWindow{
		Weekday:   0,
		Open:      true,
		OpenTime:  mustTOD(t, "08:00"),
		CloseTime: mustTOD(t, "17:00"),
	}

	slots := GenerateSlots(w, SlotSize{Value: 30, Unit: SlotUnitMinutes})

	// 08:00..16:30, passo 30 = 18 candidatos
	require.Len(t, slots, 18)
	assert.Equal(t, "08:00", slots[0].String())
	assert.Equal(t, "16:30", slots[17].String())

	// alinhamento: (t - abertura) múltiplo do slot
	for _, s := range slots {
		assert.Zero(t, (s-w.OpenTime)%30, s.String())
	}
}

func TestGenerateSlots_StepIndependsOnDuration(t *testing.T) {
	// a grade depende só do slot size; duração do serviço não entra aqui
	w := DayWindow{
		Open:      true,
		OpenTime:  mustTOD(t, "09:00"),
		CloseTime: mustTOD(t, "10:00"),
	}

	slots := GenerateSlots(w, SlotSize{Value: 15, Unit: SlotUnitMinutes})
	require.Len(t, slots, 4)
	assert.Equal(t, "09:45", slots[3].String())
}

func TestGenerateSlots_Closed(t *testing.T) {
	assert.Empty(t, GenerateSlots(ClosedWindow(2), SlotSize{Value: 30, Unit: SlotUnitMinutes}))
}

func TestGenerateSlots_SlotLargerThanWindow(t *testing.T) {
	w := DayWindow{
		Open:      true,
		OpenTime:  mustTOD(t, "09:00"),
		CloseTime: mustTOD(t, "10:00"),
	}

	// slot maior que a janela ainda gera o candidato de abertura
	slots := GenerateSlots(w, SlotSize{Value: 2, Unit: SlotUnitHours})
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].String())
}
