package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/booking-engine/internal/domain/booking"
	"github.com/BruksfildServices01/booking-engine/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-engine/internal/httperr"
	"github.com/BruksfildServices01/booking-engine/internal/models"
)

// fakeRepo é um Repository em memória para os testes de use case.
// O recheck transacional (guardOverlap) é simulado sobre o próprio
// estado, com a mesma semântica de intervalos semiabertos.
type fakeRepo struct {
	business *models.Business
	sched    *schedule.WeekSchedule

	services map[uint]*models.Service
	staff    map[uint]*models.Staff

	bookings map[uint]*models.Booking
	nextID   uint
	clientID uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo(business *models.Business, sched *schedule.WeekSchedule) *fakeRepo {
	return &fakeRepo{
		business: business,
		sched:    sched,
		services: map[uint]*models.Service{},
		staff:    map[uint]*models.Staff{},
		bookings: map[uint]*models.Booking{},
		nextID:   1,
	}
}

func (f *fakeRepo) addService(s *models.Service) { f.services[s.ID] = s }
func (f *fakeRepo) addStaff(s *models.Staff)     { f.staff[s.ID] = s }

func (f *fakeRepo) addBooking(b *models.Booking) *models.Booking {
	b.ID = f.nextID
	f.nextID++
	f.bookings[b.ID] = b
	return b
}

func (f *fakeRepo) GetBusinessByID(_ context.Context, id uint) (*models.Business, error) {
	if f.business == nil || f.business.ID != id {
		return nil, httperr.ErrBusiness("business_not_found")
	}
	return f.business, nil
}

func (f *fakeRepo) GetBusinessBySlug(_ context.Context, slug string) (*models.Business, error) {
	if f.business == nil || f.business.Slug != slug {
		return nil, httperr.ErrBusiness("business_not_found")
	}
	return f.business, nil
}

func (f *fakeRepo) LoadWeekSchedule(_ context.Context, _ *models.Business) (*schedule.WeekSchedule, error) {
	if f.sched == nil {
		return nil, httperr.ErrBusiness("invalid_schedule")
	}
	return f.sched, nil
}

func (f *fakeRepo) GetService(_ context.Context, businessID, serviceID uint) (*models.Service, error) {
	if s, ok := f.services[serviceID]; ok && s.BusinessID == businessID {
		return s, nil
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

func (f *fakeRepo) GetStaff(_ context.Context, businessID, staffID uint) (*models.Staff, error) {
	if s, ok := f.staff[staffID]; ok && s.BusinessID == businessID && s.Active {
		return s, nil
	}
	return nil, httperr.ErrBusiness("staff_not_found")
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, businessID uint, name, phone, email string) (*models.Client, error) {
	f.clientID++
	return &models.Client{
		ID:         f.clientID,
		BusinessID: businessID,
		Name:       name,
		Phone:      phone,
		Email:      email,
	}, nil
}

func (f *fakeRepo) LedgerBetween(_ context.Context, businessID uint, start, end time.Time) (domain.Ledger, error) {
	var out domain.Ledger
	for _, b := range f.bookings {
		if b.BusinessID != businessID {
			continue
		}
		if start.Before(b.EndTime) && b.StartTime.Before(end) {
			out = append(out, domain.Entry{
				ID:      b.ID,
				StaffID: b.StaffID,
				Start:   b.StartTime,
				End:     b.EndTime,
			})
		}
	}
	return out, nil
}

func (f *fakeRepo) overlaps(b *models.Booking) bool {
	for _, other := range f.bookings {
		if other.ID == b.ID || other.BusinessID != b.BusinessID {
			continue
		}
		e := domain.Entry{ID: other.ID, StaffID: other.StaffID, Start: other.StartTime, End: other.EndTime}
		if e.SameResource(b.StaffID) && e.Overlaps(b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking, guardOverlap bool) error {
	if guardOverlap && f.overlaps(b) {
		return httperr.ErrBusiness("concurrent_conflict")
	}
	f.addBooking(b)
	return nil
}

func (f *fakeRepo) ReplaceBooking(_ context.Context, b *models.Booking, guardOverlap bool) error {
	if guardOverlap && f.overlaps(b) {
		return httperr.ErrBusiness("concurrent_conflict")
	}
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) GetBooking(_ context.Context, businessID, bookingID uint) (*models.Booking, error) {
	if b, ok := f.bookings[bookingID]; ok && b.BusinessID == businessID {
		return b, nil
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (f *fakeRepo) GetBookingByRef(_ context.Context, businessID uint, publicRef string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.BusinessID == businessID && b.PublicRef == publicRef {
			return b, nil
		}
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (f *fakeRepo) DeleteBooking(_ context.Context, b *models.Booking) error {
	delete(f.bookings, b.ID)
	return nil
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) ListBookingsForPeriod(_ context.Context, businessID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BusinessID != businessID {
			continue
		}
		if start.Before(b.EndTime) && b.StartTime.Before(end) {
			out = append(out, *b)
		}
	}
	return out, nil
}
