package handlers

import (
	"time"

	"github.com/BruksfildServices01/booking-engine/internal/models"
	"github.com/BruksfildServices01/booking-engine/internal/timezone"
)

// resolve o timezone oficial do negócio
func locationOf(business *models.Business) *time.Location {
	if business != nil {
		return timezone.Location(business.Timezone)
	}
	return timezone.Location("")
}

func parseDateAt(business *models.Business, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationOf(business),
	)
}
