package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-engine/internal/cache"
	domain "github.com/BruksfildServices01/booking-engine/internal/domain/booking"
	"github.com/BruksfildServices01/booking-engine/internal/httperr"
	"github.com/BruksfildServices01/booking-engine/internal/models"
	usecase "github.com/BruksfildServices01/booking-engine/internal/usecase/booking"
)

// ======================================================
// SUPERFÍCIE PÚBLICA (link de agendamento por slug)
// ======================================================

type PublicHandler struct {
	db *gorm.DB

	availabilityUC *usecase.GetAvailability
	createUC       *usecase.CreateBooking

	cache *cache.Availability
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *usecase.GetAvailability,
	createUC *usecase.CreateBooking,
	availCache *cache.Availability,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cache:          availCache,
	}
}

func (h *PublicHandler) businessBySlug(c *gin.Context) (*models.Business, bool) {
	slug := c.Param("slug")

	var business models.Business
	if err := h.db.Where("slug = ?", slug).First(&business).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
		return nil, false
	}
	return &business, true
}

// GET /public/:slug
func (h *PublicHandler) GetBusiness(c *gin.Context) {
	business, ok := h.businessBySlug(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       business.ID,
		"name":     business.Name,
		"slug":     business.Slug,
		"timezone": business.Timezone,
	})
}

// GET /public/:slug/services?category=&sort=price|name
func (h *PublicHandler) ListServices(c *gin.Context) {
	business, ok := h.businessBySlug(c)
	if !ok {
		return
	}

	query := h.db.
		Where("business_id = ? AND active = ?", business.ID, true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	switch c.Query("sort") {
	case "price":
		query = query.Order("price_cents ASC")
	default:
		query = query.Order("name ASC")
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_get_services", "Erro ao buscar serviços.")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GET /public/:slug/staff
func (h *PublicHandler) ListStaff(c *gin.Context) {
	business, ok := h.businessBySlug(c)
	if !ok {
		return
	}

	var staff []models.Staff
	if err := h.db.
		Where("business_id = ? AND active = ?", business.ID, true).
		Order("name ASC").
		Find(&staff).Error; err != nil {

		httperr.Internal(c, "failed_to_get_staff", "Erro ao buscar profissionais.")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// GET /public/:slug/availability?service_id=&date=YYYY-MM-DD&staff_id=
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	business, ok := h.businessBySlug(c)
	if !ok {
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil || serviceID == 0 {
		httperr.BadRequest(c, "invalid_service_id", "service_id é obrigatório.")
		return
	}

	dateStr := c.Query("date")
	date, err := parseDateAt(business, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use YYYY-MM-DD.")
		return
	}

	var staffID *uint
	if raw := c.Query("staff_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			httperr.BadRequest(c, "invalid_staff_id", "staff_id inválido.")
			return
		}
		id := uint(parsed)
		staffID = &id
	}

	ctx := c.Request.Context()

	if payload, hit := h.cache.Get(ctx, business.ID, dateStr, uint(serviceID), staffID); hit {
		c.Data(http.StatusOK, "application/json", payload)
		return
	}

	slots, err := h.availabilityUC.Execute(ctx, domain.AvailabilityInput{
		BusinessID: business.ID,
		StaffID:    staffID,
		ServiceID:  uint(serviceID),
		Date:       date,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	resp := gin.H{
		"date":  dateStr,
		"slots": slots,
	}

	if payload, err := json.Marshal(resp); err == nil {
		h.cache.Set(ctx, business.ID, dateStr, uint(serviceID), staffID, payload)
	}

	c.JSON(http.StatusOK, resp)
}

type PublicBookingRequest struct {
	StaffID     *uint  `json:"staff_id"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// POST /public/:slug/bookings
// Fluxo de cliente: sem override. Antecedência mínima, expediente e
// política de double booking valem integralmente.
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	business, ok := h.businessBySlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), usecase.CreateBookingInput{
		BusinessID:    business.ID,
		StaffID:       req.StaffID,
		ServiceID:     req.ServiceID,
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		ClientEmail:   req.ClientEmail,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		OwnerOverride: false,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	h.cache.InvalidateDay(c.Request.Context(), business.ID, req.Date)

	// o cliente recebe a referência pública, nunca o ID interno
	c.JSON(http.StatusCreated, gin.H{
		"ref":    b.PublicRef,
		"start":  b.StartTime,
		"end":    b.EndTime,
		"status": b.Status,
	})
}
