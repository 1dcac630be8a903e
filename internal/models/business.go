package models

import "time"

type Business struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:50" json:"timezone"`

	// Antecedência mínima para agendamentos de clientes (minutos)
	MinAdvanceMinutes int `gorm:"default:120" json:"min_advance_minutes"`

	// Granularidade dos horários ofertados
	SlotSizeValue int    `gorm:"default:30" json:"slot_size_value"`
	SlotSizeUnit  string `gorm:"size:10;default:'minutes'" json:"slot_size_unit"`

	// "allowed" | "prevented"
	DoubleBookingPolicy string `gorm:"size:20;default:'prevented'" json:"double_booking_policy"`

	// Quando true, não oferta horário cujo serviço ultrapassa o fechamento
	EnforceClosingTime bool `gorm:"default:false" json:"enforce_closing_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
