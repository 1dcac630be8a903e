package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/booking-engine/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-engine/internal/models"
)

type Repository interface {
	// -------- Business --------
	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	GetBusinessBySlug(
		ctx context.Context,
		slug string,
	) (*models.Business, error)

	// -------- Schedule --------
	// Monta o WeekSchedule imutável do negócio; configuração
	// malformada é rejeitada aqui (invalid_schedule).
	LoadWeekSchedule(
		ctx context.Context,
		business *models.Business,
	) (*schedule.WeekSchedule, error)

	// -------- Service / Staff --------
	GetService(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) (*models.Service, error)

	GetStaff(
		ctx context.Context,
		businessID uint,
		staffID uint,
	) (*models.Staff, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		businessID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Ledger --------
	// Agendamentos não deletados cujo intervalo sobrepõe [start, end).
	LedgerBetween(
		ctx context.Context,
		businessID uint,
		start time.Time,
		end time.Time,
	) (Ledger, error)

	// -------- Booking (create / replace / delete) --------
	// guardOverlap = true refaz a checagem de conflito dentro da
	// transação (FOR UPDATE); violação tardia vira concurrent_conflict.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
		guardOverlap bool,
	) error

	ReplaceBooking(
		ctx context.Context,
		b *models.Booking,
		guardOverlap bool,
	) error

	GetBooking(
		ctx context.Context,
		businessID uint,
		bookingID uint,
	) (*models.Booking, error)

	GetBookingByRef(
		ctx context.Context,
		businessID uint,
		publicRef string,
	) (*models.Booking, error)

	DeleteBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listagens --------
	ListBookingsForPeriod(
		ctx context.Context,
		businessID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
