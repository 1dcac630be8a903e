package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/booking-engine/internal/domain/booking"
	"github.com/BruksfildServices01/booking-engine/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-engine/internal/httperr"
	"github.com/BruksfildServices01/booking-engine/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *BookingGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).First(&biz, id).Error; err != nil {
		return nil, err
	}
	return &biz, nil
}

func (r *BookingGormRepository) GetBusinessBySlug(
	ctx context.Context,
	slug string,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&biz).Error; err != nil {
		return nil, err
	}
	return &biz, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

// LoadWeekSchedule monta o valor imutável de agenda a partir das linhas
// persistidas. Dia sem linha (ou inativo) fica ausente = fechado.
// Configuração malformada é rejeitada na carga (erro de configuração),
// nunca corrigida silenciosamente.
func (r *BookingGormRepository) LoadWeekSchedule(
	ctx context.Context,
	business *models.Business,
) (*schedule.WeekSchedule, error) {

	var rows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", business.ID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	var windows []schedule.DayWindow
	for _, row := range rows {
		if !row.Active || row.StartTime == "" || row.EndTime == "" {
			continue
		}

		w := schedule.DayWindow{Weekday: row.Weekday, Open: true}

		var err error
		if w.OpenTime, err = schedule.ParseTimeOfDay(row.StartTime); err != nil {
			return nil, httperr.ErrBusiness("invalid_schedule")
		}
		if w.CloseTime, err = schedule.ParseTimeOfDay(row.EndTime); err != nil {
			return nil, httperr.ErrBusiness("invalid_schedule")
		}

		if row.BreakStart != "" && row.BreakEnd != "" {
			if w.BreakStart, err = schedule.ParseTimeOfDay(row.BreakStart); err != nil {
				return nil, httperr.ErrBusiness("invalid_schedule")
			}
			if w.BreakEnd, err = schedule.ParseTimeOfDay(row.BreakEnd); err != nil {
				return nil, httperr.ErrBusiness("invalid_schedule")
			}
		}

		windows = append(windows, w)
	}

	slot := schedule.SlotSize{
		Value: business.SlotSizeValue,
		Unit:  schedule.SlotUnit(business.SlotSizeUnit),
	}

	return schedule.NewWeekSchedule(
		windows,
		slot,
		schedule.Policy(business.DoubleBookingPolicy),
		business.EnforceClosingTime,
	)
}

// --------------------------------------------------
// Service / Staff
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetStaff(
	ctx context.Context,
	businessID uint,
	staffID uint,
) (*models.Staff, error) {

	// Desativado some da vitrine e deixa de ser agendável;
	// mesma regra do listing público.
	var st models.Staff
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ? AND active = ?", staffID, businessID, true).
		First(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	businessID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND phone = ?", businessID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		BusinessID: businessID,
		Name:       name,
		Phone:      phone,
		Email:      email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

// LedgerBetween projeta os agendamentos não deletados que sobrepõem
// [start, end), em ordem cronológica. Concluídos continuam ocupando
// seu intervalo; o soft delete do gorm exclui os removidos.
func (r *BookingGormRepository) LedgerBetween(
	ctx context.Context,
	businessID uint,
	start time.Time,
	end time.Time,
) (domain.Ledger, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "staff_id", "start_time", "end_time").
		Where(
			"business_id = ? AND start_time < ? AND end_time > ?",
			businessID, end, start,
		).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	ledger := make(domain.Ledger, 0, len(rows))
	for _, b := range rows {
		ledger = append(ledger, domain.Entry{
			ID:      b.ID,
			StaffID: b.StaffID,
			Start:   b.StartTime,
			End:     b.EndTime,
		})
	}

	return ledger, nil
}

// --------------------------------------------------
// Booking (create / replace / delete)
// --------------------------------------------------

// lockResource serializa as escritas guardadas do recurso na transação.
// FOR UPDATE sozinho não fecha a corrida: sobre um intervalo ainda vazio
// não há linha para travar, e o insert não commitado do concorrente é
// invisível sob READ COMMITTED. O advisory lock faz a segunda transação
// esperar a primeira commitar, e aí o recheck enxerga a linha nova.
func lockResource(tx *gorm.DB, businessID uint, staffID *uint) error {
	return tx.Exec(
		"SELECT pg_advisory_xact_lock(?, ?)",
		int32(businessID),
		resourceLockKey(staffID),
	).Error
}

// Chave do recurso dentro do negócio: id do profissional,
// ou 0 para o recurso compartilhado (ids começam em 1).
func resourceLockKey(staffID *uint) int32 {
	if staffID == nil {
		return 0
	}
	return int32(*staffID)
}

// assertNoOverlap refaz a checagem de conflito dentro da transação,
// travando as linhas concorrentes (FOR UPDATE). Conflito aqui significa
// que a pré-checagem passou sobre um snapshot velho → concurrent_conflict.
// Só é autoritativo depois de lockResource: é o lock que garante que
// nenhum insert concorrente do mesmo recurso está em voo.
func assertNoOverlap(tx *gorm.DB, b *models.Booking, excludeID uint) error {
	q := tx.
		Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"business_id = ? AND start_time < ? AND end_time > ?",
			b.BusinessID, b.EndTime, b.StartTime,
		)

	if b.StaffID != nil {
		q = q.Where("staff_id = ?", *b.StaffID)
	} else {
		q = q.Where("staff_id IS NULL")
	}

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("concurrent_conflict")
	}
	return nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
	guardOverlap bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if guardOverlap {
			if err := lockResource(tx, b.BusinessID, b.StaffID); err != nil {
				return err
			}
			if err := assertNoOverlap(tx, b, 0); err != nil {
				return err
			}
		}

		if err := tx.Create(b).Error; err != nil {
			if httperr.IsExclusionConflict(err) {
				return httperr.ErrBusiness("concurrent_conflict")
			}
			return err
		}
		return nil
	})
}

func (r *BookingGormRepository) ReplaceBooking(
	ctx context.Context,
	b *models.Booking,
	guardOverlap bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if guardOverlap {
			if err := lockResource(tx, b.BusinessID, b.StaffID); err != nil {
				return err
			}
			if err := assertNoOverlap(tx, b, b.ID); err != nil {
				return err
			}
		}

		if err := tx.Save(b).Error; err != nil {
			if httperr.IsExclusionConflict(err) {
				return httperr.ErrBusiness("concurrent_conflict")
			}
			return err
		}
		return nil
	})
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	businessID uint,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", bookingID, businessID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingByRef(
	ctx context.Context,
	businessID uint,
	publicRef string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("public_ref = ? AND business_id = ?", publicRef, businessID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	// soft delete: sai do ledger, permanece para auditoria
	return r.db.WithContext(ctx).Delete(b).Error
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	businessID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var rows []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Staff").
		Where(
			"business_id = ? AND start_time >= ? AND start_time < ?",
			businessID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
