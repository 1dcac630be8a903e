package dto

import "time"

type BookingListDTO struct {
	ID          uint      `json:"id"`
	PublicRef   string    `json:"public_ref"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	StaffName   string    `json:"staff_name,omitempty"`
}
