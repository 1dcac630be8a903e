package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-engine/internal/httperr"
)

// ======================================================
// MAPEAMENTO DE ERROS DE NEGÓCIO → HTTP
// ======================================================

// slot_conflict (pré-checagem) e concurrent_conflict (corrida no commit)
// são distinguíveis de propósito: o primeiro pede "mostre outros
// horários", o segundo pede "tente de novo".
func mapBookingErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case "missing_required_fields":
		httperr.BadRequest(c, code, "Campos obrigatórios ausentes.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Data ou hora inválida.")
	case "too_soon":
		httperr.BadRequest(c, code, "Horário muito próximo; escolha outro.")
	case "outside_working_hours":
		httperr.BadRequest(c, code, "Fora do horário de atendimento.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Estado inválido para a operação.")
	case "invalid_schedule", "invalid_slot_size", "invalid_slot_unit",
		"invalid_policy", "invalid_window", "invalid_break",
		"invalid_weekday", "duplicate_weekday":
		httperr.Internal(c, code, "Configuração de agenda inválida.")
	case "business_not_found":
		httperr.NotFound(c, code, "Negócio não encontrado.")
	case "service_not_found":
		httperr.NotFound(c, code, "Serviço não encontrado.")
	case "staff_not_found":
		httperr.NotFound(c, code, "Profissional não encontrado.")
	case "booking_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "slot_conflict":
		httperr.Conflict(c, code, "Conflito de horário.")
	case "concurrent_conflict":
		httperr.Conflict(c, code, "Horário ocupado durante a confirmação; tente novamente.")
	default:
		httperr.BadRequest(c, code, "Requisição inválida.")
	}
}
