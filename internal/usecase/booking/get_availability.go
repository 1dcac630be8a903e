package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/booking-engine/internal/domain/booking"
	"github.com/BruksfildServices01/booking-engine/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute calcula os horários agendáveis do dia para um serviço e,
// opcionalmente, um profissional. Dia fechado ou lotado → lista vazia.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	service, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if in.StaffID != nil {
		if _, err := uc.repo.GetStaff(ctx, in.BusinessID, *in.StaffID); err != nil {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
	}

	business, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	sched, err := uc.repo.LoadWeekSchedule(ctx, business)
	if err != nil {
		return nil, err
	}

	loc := in.Date.Location()
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	ledger, err := uc.repo.LedgerBetween(ctx, in.BusinessID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	starts := domain.AvailableSlots(in.Date, sched, ledger, service.DurationMin, in.StaffID)

	duration := time.Duration(service.DurationMin) * time.Minute
	slots := make([]domain.TimeSlot, 0, len(starts))
	for _, t := range starts {
		start := t.At(in.Date)
		slots = append(slots, domain.TimeSlot{
			Start: start.Format("15:04"),
			End:   start.Add(duration).Format("15:04"),
		})
	}

	return slots, nil
}
