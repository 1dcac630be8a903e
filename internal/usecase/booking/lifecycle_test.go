package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-engine/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-engine/internal/models"
)

func setupWithBooking(t *testing.T) (*fakeRepo, *models.Booking) {
	t.Helper()

	repo, createUC := setupCreate(t, schedule.PolicyPrevented)
	b, err := createUC.Execute(context.Background(), validInput())
	require.NoError(t, err)
	return repo, b
}

// ------------------------------
// UPDATE
// ------------------------------

func TestUpdateBooking_SameSlotDoesNotConflictWithItself(t *testing.T) {
	repo, b := setupWithBooking(t)
	uc := NewUpdateBooking(repo, nil)

	// remarcar para o mesmo horário é substituição integral válida
	updated, err := uc.Execute(context.Background(), UpdateBookingInput{
		BusinessID: 1,
		BookingID:  b.ID,
		ServiceID:  10,
		Date:       futureMonday,
		Time:       "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, b.ID, updated.ID)
}

func TestUpdateBooking_MoveIntoOccupiedSlot(t *testing.T) {
	repo, b := setupWithBooking(t)
	createUC := NewCreateBooking(repo, nil)
	uc := NewUpdateBooking(repo, nil)

	// segundo agendamento às 14:00
	in := validInput()
	in.Time = "14:00"
	_, err := createUC.Execute(context.Background(), in)
	require.NoError(t, err)

	// mover o primeiro para cima do segundo
	_, err = uc.Execute(context.Background(), UpdateBookingInput{
		BusinessID: 1,
		BookingID:  b.ID,
		ServiceID:  10,
		Date:       futureMonday,
		Time:       "14:30",
	})

	assertCode(t, err, "slot_conflict")
}

func TestUpdateBooking_MoveToFreeSlot(t *testing.T) {
	repo, b := setupWithBooking(t)
	uc := NewUpdateBooking(repo, nil)

	updated, err := uc.Execute(context.Background(), UpdateBookingInput{
		BusinessID: 1,
		BookingID:  b.ID,
		ServiceID:  10,
		Date:       futureMonday,
		Time:       "15:00",
	})

	require.NoError(t, err)
	assert.Equal(t, 15, updated.StartTime.Hour())
	assert.Len(t, repo.bookings, 1)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	repo, _ := setupWithBooking(t)
	uc := NewUpdateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateBookingInput{
		BusinessID: 1,
		BookingID:  999,
		ServiceID:  10,
		Date:       futureMonday,
		Time:       "15:00",
	})

	assertCode(t, err, "booking_not_found")
}

// ------------------------------
// DELETE
// ------------------------------

func TestDeleteBooking_FreesTheSlot(t *testing.T) {
	repo, b := setupWithBooking(t)
	deleteUC := NewDeleteBooking(repo, nil)
	createUC := NewCreateBooking(repo, nil)

	require.NoError(t, deleteUC.Execute(context.Background(), 1, b.ID, nil))
	assert.Empty(t, repo.bookings)

	// o intervalo liberado volta a aceitar agendamento
	_, err := createUC.Execute(context.Background(), validInput())
	assert.NoError(t, err)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	repo, _ := setupWithBooking(t)
	uc := NewDeleteBooking(repo, nil)

	err := uc.Execute(context.Background(), 1, 999, nil)
	assertCode(t, err, "booking_not_found")
}

// ------------------------------
// COMPLETE
// ------------------------------

func TestCompleteBooking(t *testing.T) {
	repo, b := setupWithBooking(t)
	uc := NewCompleteBooking(repo, nil)

	done, err := uc.Execute(context.Background(), 1, b.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, "completed", done.Status)
	require.NotNil(t, done.CompletedAt)

	// concluído continua no ledger, ocupando o intervalo
	_, err = NewCreateBooking(repo, nil).Execute(context.Background(), validInput())
	assertCode(t, err, "slot_conflict")
}

func TestCompleteBooking_Twice(t *testing.T) {
	repo, b := setupWithBooking(t)
	uc := NewCompleteBooking(repo, nil)

	_, err := uc.Execute(context.Background(), 1, b.ID, nil)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, b.ID, nil)
	assertCode(t, err, "invalid_state")
}
