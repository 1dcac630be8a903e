package booking

import (
	"context"

	"github.com/BruksfildServices01/booking-engine/internal/audit"
	domain "github.com/BruksfildServices01/booking-engine/internal/domain/booking"
	"github.com/BruksfildServices01/booking-engine/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove o agendamento. Incondicional: remoção não passa por
// checagem de conflito. Cancelamento é remoção: o registro sai do
// ledger via soft delete e libera o intervalo.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	businessID uint,
	bookingID uint,
	actorID *uint,
) error {

	b, err := uc.repo.GetBooking(ctx, businessID, bookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	if err := uc.repo.DeleteBooking(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     actorID,
		Action:     "booking_deleted",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return nil
}
