package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/booking-engine/internal/audit"
	domain "github.com/BruksfildServices01/booking-engine/internal/domain/booking"
	"github.com/BruksfildServices01/booking-engine/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-engine/internal/httperr"
	"github.com/BruksfildServices01/booking-engine/internal/models"
	"github.com/BruksfildServices01/booking-engine/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Edição é substituição integral: data, hora, serviço e profissional
// podem mudar atomicamente; não há patch parcial.
type UpdateBookingInput struct {
	BusinessID uint
	BookingID  uint

	StaffID   *uint
	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string

	OwnerOverride bool
	ActorID       *uint
}

func (in UpdateBookingInput) validate() error {
	if in.BookingID == 0 || in.ServiceID == 0 || in.Date == "" || in.Time == "" {
		return httperr.ErrBusiness("missing_required_fields")
	}
	return nil
}

// ======================================================
// USE CASE
// ======================================================

type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*models.Booking, error) {

	if err := in.validate(); err != nil {
		return nil, err
	}

	business, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	existing, err := uc.repo.GetBooking(ctx, in.BusinessID, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(business.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	service, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if in.StaffID != nil {
		if _, err := uc.repo.GetStaff(ctx, in.BusinessID, *in.StaffID); err != nil {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	sched, err := uc.repo.LoadWeekSchedule(ctx, business)
	if err != nil {
		return nil, err
	}

	if !in.OwnerOverride && !domain.WithinWindow(sched, start, end) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	ledger, err := uc.repo.LedgerBetween(ctx, in.BusinessID, start, end)
	if err != nil {
		return nil, err
	}

	// O próprio agendamento em edição é excluído da checagem:
	// remarcar para o mesmo horário nunca conflita consigo mesmo.
	decision := domain.Evaluate(
		domain.Draft{
			ExcludeID: existing.ID,
			StaffID:   in.StaffID,
			Start:     start,
			End:       end,
		},
		ledger,
		sched,
		in.OwnerOverride,
	)

	if !decision.Accepted {
		return nil, httperr.ErrBusiness(string(decision.Reason))
	}

	// Substituição integral do registro mutável
	existing.StaffID = in.StaffID
	existing.ServiceID = service.ID
	existing.StartTime = start
	existing.EndTime = end
	existing.Notes = in.Notes

	guard := sched.Policy == schedule.PolicyPrevented && !in.OwnerOverride
	if err := uc.repo.ReplaceBooking(ctx, existing, guard); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     in.ActorID,
		Action:     "booking_updated",
		Entity:     "booking",
		EntityID:   &existing.ID,
	})

	return existing, nil
}
