package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-engine/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-engine/internal/middleware"
	"github.com/BruksfildServices01/booking-engine/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

// Weekday canônico: 0 = segunda-feira
type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var hours []models.WorkingHours
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update substitui o conjunto inteiro (sem mutação parcial de dia).
// Configuração malformada é rejeitada aqui, antes de persistir.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if !d.Active {
			continue
		}

		w := schedule.DayWindow{Weekday: d.Weekday, Open: true}

		var err error
		if w.OpenTime, err = schedule.ParseTimeOfDay(d.StartTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
			return
		}
		if w.CloseTime, err = schedule.ParseTimeOfDay(d.EndTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
			return
		}
		if d.BreakStart != "" && d.BreakEnd != "" {
			if w.BreakStart, err = schedule.ParseTimeOfDay(d.BreakStart); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
				return
			}
			if w.BreakEnd, err = schedule.ParseTimeOfDay(d.BreakEnd); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
				return
			}
		}

		if err := w.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := h.db.Where("business_id = ?", businessID).Delete(&models.WorkingHours{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_hours"})
		return
	}

	var toCreate []models.WorkingHours
	for _, d := range req.Days {
		wh := models.WorkingHours{
			BusinessID: businessID,
			Weekday:    d.Weekday,
			Active:     d.Active,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
		}
		toCreate = append(toCreate, wh)
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
