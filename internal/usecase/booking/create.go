package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

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

type CreateBookingInput struct {
	BusinessID uint

	// Nil = recurso compartilhado do negócio
	StaffID *uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string

	// Contexto de gestão: dispensa política de double booking,
	// antecedência mínima e janela de expediente
	OwnerOverride bool

	// Usuário autenticado (auditoria); nil no fluxo público
	ActorID *uint
}

func (in CreateBookingInput) validate() error {
	if in.ServiceID == 0 || in.ClientName == "" || in.ClientPhone == "" ||
		in.Date == "" || in.Time == "" {
		return httperr.ErrBusiness("missing_required_fields")
	}
	return nil
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios (erro do chamador, sem retry)
	// --------------------------------------------------
	if err := in.validate(); err != nil {
		return nil, err
	}

	business, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	// --------------------------------------------------
	// 2. Data / hora no timezone do negócio
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(business.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3. Antecedência mínima (só fluxo de cliente)
	// --------------------------------------------------
	if !in.OwnerOverride {
		minAdvance := business.MinAdvanceMinutes
		if minAdvance <= 0 {
			minAdvance = 120
		}

		now := timezone.NowIn(business.Timezone)
		if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	// --------------------------------------------------
	// 4. Serviço e profissional
	// --------------------------------------------------
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

	// --------------------------------------------------
	// 5. Agenda do negócio (configuração validada na carga)
	// --------------------------------------------------
	sched, err := uc.repo.LoadWeekSchedule(ctx, business)
	if err != nil {
		return nil, err
	}

	if !in.OwnerOverride && !domain.WithinWindow(sched, start, end) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// 6. Resolução de conflito (pura, sobre o ledger atual)
	// --------------------------------------------------
	ledger, err := uc.repo.LedgerBetween(ctx, in.BusinessID, start, end)
	if err != nil {
		return nil, err
	}

	decision := domain.Evaluate(
		domain.Draft{StaffID: in.StaffID, Start: start, End: end},
		ledger,
		sched,
		in.OwnerOverride,
	)

	if !decision.Accepted {
		uc.audit.Dispatch(audit.Event{
			BusinessID: in.BusinessID,
			UserID:     in.ActorID,
			Action:     "booking_conflict",
			Entity:     "booking",
			Metadata: map[string]any{
				"start":         start,
				"end":           end,
				"conflict_with": decision.ConflictWith,
			},
		})

		return nil, httperr.ErrBusiness(string(decision.Reason))
	}

	// --------------------------------------------------
	// 7. Cliente (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BusinessID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8. Persistência (recheck transacional → concurrent_conflict)
	// --------------------------------------------------
	b := &models.Booking{
		PublicRef:  uuid.NewString(),
		BusinessID: in.BusinessID,
		StaffID:    in.StaffID,
		ServiceID:  service.ID,
		ClientID:   client.ID,
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	guard := sched.Policy == schedule.PolicyPrevented && !in.OwnerOverride
	if err := uc.repo.CreateBooking(ctx, b, guard); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 9. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     in.ActorID,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
