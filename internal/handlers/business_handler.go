package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-engine/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-engine/internal/httperr"
	"github.com/BruksfildServices01/booking-engine/internal/middleware"
	"github.com/BruksfildServices01/booking-engine/internal/models"
	"github.com/BruksfildServices01/booking-engine/internal/timezone"
)

type BusinessHandler struct {
	db *gorm.DB
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{db: db}
}

type UpdateBusinessConfigRequest struct {
	MinAdvanceMinutes   *int    `json:"min_advance_minutes"`
	SlotSizeValue       *int    `json:"slot_size_value"`
	SlotSizeUnit        *string `json:"slot_size_unit"`
	DoubleBookingPolicy *string `json:"double_booking_policy"`
	EnforceClosingTime  *bool   `json:"enforce_closing_time"`
	Timezone            *string `json:"timezone"`
}

func (h *BusinessHandler) GetMeBusiness(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_business", "Erro ao buscar dados do negócio.")
		return
	}

	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) UpdateMeBusiness(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_business", "Erro ao buscar dados do negócio.")
		return
	}

	var req UpdateBusinessConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima deve ser zero ou positiva (em minutos).")
			return
		}
		business.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	// Granularidade: valida já normalizada em minutos (1–480)
	if req.SlotSizeValue != nil || req.SlotSizeUnit != nil {
		slot := schedule.SlotSize{
			Value: business.SlotSizeValue,
			Unit:  schedule.SlotUnit(business.SlotSizeUnit),
		}
		if req.SlotSizeValue != nil {
			slot.Value = *req.SlotSizeValue
		}
		if req.SlotSizeUnit != nil {
			slot.Unit = schedule.SlotUnit(*req.SlotSizeUnit)
		}

		if err := slot.Validate(); err != nil {
			httperr.BadRequest(c, "invalid_slot_size", "Tamanho de slot inválido.")
			return
		}

		business.SlotSizeValue = slot.Value
		business.SlotSizeUnit = string(slot.Unit)
	}

	if req.DoubleBookingPolicy != nil {
		policy, err := schedule.ParsePolicy(*req.DoubleBookingPolicy)
		if err != nil {
			httperr.BadRequest(c, "invalid_policy", "Política de double booking inválida.")
			return
		}
		business.DoubleBookingPolicy = string(policy)
	}

	if req.EnforceClosingTime != nil {
		business.EnforceClosingTime = *req.EnforceClosingTime
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
			return
		}
		business.Timezone = *req.Timezone
	}

	if err := h.db.Save(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Erro ao salvar as configurações do negócio.")
		return
	}

	c.JSON(http.StatusOK, business)
}
