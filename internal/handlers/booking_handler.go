package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-engine/internal/cache"
	"github.com/BruksfildServices01/booking-engine/internal/httperr"
	"github.com/BruksfildServices01/booking-engine/internal/middleware"
	"github.com/BruksfildServices01/booking-engine/internal/models"
	usecase "github.com/BruksfildServices01/booking-engine/internal/usecase/booking"
)

// ======================================================
// HANDLER DE AGENDAMENTOS (painel de gestão)
// ======================================================

// Todas as escritas aqui rodam com OwnerOverride: o dono agenda
// onde quiser, inclusive fora do expediente e sobre conflitos.
type BookingHandler struct {
	db *gorm.DB

	createUC   *usecase.CreateBooking
	updateUC   *usecase.UpdateBooking
	deleteUC   *usecase.DeleteBooking
	completeUC *usecase.CompleteBooking
	byDateUC   *usecase.ListBookingsByDate
	byMonthUC  *usecase.ListBookingsByMonth

	cache *cache.Availability
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *usecase.CreateBooking,
	updateUC *usecase.UpdateBooking,
	deleteUC *usecase.DeleteBooking,
	completeUC *usecase.CompleteBooking,
	byDateUC *usecase.ListBookingsByDate,
	byMonthUC *usecase.ListBookingsByMonth,
	availCache *cache.Availability,
) *BookingHandler {
	return &BookingHandler{
		db:         db,
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		completeUC: completeUC,
		byDateUC:   byDateUC,
		byMonthUC:  byMonthUC,
		cache:      availCache,
	}
}

type CreateBookingRequest struct {
	StaffID     *uint  `json:"staff_id"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateBookingRequest struct {
	StaffID   *uint  `json:"staff_id"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

func actorFrom(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		id := v.(uint)
		return &id
	}
	return nil
}

func (h *BookingHandler) Create(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), usecase.CreateBookingInput{
		BusinessID:    businessID,
		StaffID:       req.StaffID,
		ServiceID:     req.ServiceID,
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		ClientEmail:   req.ClientEmail,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		OwnerOverride: true,
		ActorID:       actorFrom(c),
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	h.cache.InvalidateDay(c.Request.Context(), businessID, req.Date)

	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) Update(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// data anterior, para invalidar o cache do dia de origem
	oldDate := h.bookingDate(businessID, uint(bookingID))

	b, err := h.updateUC.Execute(c.Request.Context(), usecase.UpdateBookingInput{
		BusinessID:    businessID,
		BookingID:     uint(bookingID),
		StaffID:       req.StaffID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		OwnerOverride: true,
		ActorID:       actorFrom(c),
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	if oldDate != "" && oldDate != req.Date {
		h.cache.InvalidateDay(c.Request.Context(), businessID, oldDate)
	}
	h.cache.InvalidateDay(c.Request.Context(), businessID, req.Date)

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	date := h.bookingDate(businessID, uint(bookingID))

	if err := h.deleteUC.Execute(
		c.Request.Context(),
		businessID,
		uint(bookingID),
		actorFrom(c),
	); err != nil {
		mapBookingErrors(c, err)
		return
	}

	if date != "" {
		h.cache.InvalidateDay(c.Request.Context(), businessID, date)
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	b, err := h.completeUC.Execute(
		c.Request.Context(),
		businessID,
		uint(bookingID),
		actorFrom(c),
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// GET /bookings?date=YYYY-MM-DD
func (h *BookingHandler) ListByDate(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Parâmetro date é obrigatório.")
		return
	}

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
		return
	}

	date, err := parseDateAt(&business, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use YYYY-MM-DD.")
		return
	}

	out, err := h.byDateUC.Execute(c.Request.Context(), businessID, date)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// GET /bookings/month?year=2026&month=8
func (h *BookingHandler) ListByMonth(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	out, err := h.byMonthUC.Execute(c.Request.Context(), businessID, year, month)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) bookingDate(businessID, bookingID uint) string {
	var b models.Booking
	if err := h.db.
		Where("business_id = ?", businessID).
		First(&b, bookingID).Error; err != nil {
		return ""
	}

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		return ""
	}

	return b.StartTime.In(locationOf(&business)).Format("2006-01-02")
}
