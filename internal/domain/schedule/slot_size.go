package schedule

import "github.com/BruksfildServices01/booking-engine/internal/httperr"

type SlotUnit string

const (
	SlotUnitMinutes SlotUnit = "minutes"
	SlotUnitHours   SlotUnit = "hours"
)

const (
	MinSlotMinutes = 1
	MaxSlotMinutes = 480
)

// SlotSize define a granularidade dos horários ofertados,
// independente da duração do serviço.
type SlotSize struct {
	Value int
	Unit  SlotUnit
}

// Minutes normaliza para minutos.
func (s SlotSize) Minutes() int {
	if s.Unit == SlotUnitHours {
		return s.Value * 60
	}
	return s.Value
}

func (s SlotSize) Validate() error {
	if s.Unit != SlotUnitMinutes && s.Unit != SlotUnitHours {
		return httperr.ErrBusiness("invalid_slot_unit")
	}
	m := s.Minutes()
	if m < MinSlotMinutes || m > MaxSlotMinutes {
		return httperr.ErrBusiness("invalid_slot_size")
	}
	return nil
}
