package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tallerok/taller-api/internal/application/audit"
	"github.com/tallerok/taller-api/internal/application/dto"
)

// AuditHandler expone el historial de acciones (solo admin).
type AuditHandler struct {
	rec *audit.Recorder
}

// NewAuditHandler construye el handler.
func NewAuditHandler(rec *audit.Recorder) *AuditHandler {
	return &AuditHandler{rec: rec}
}

// List GET /api/audit?limit=50
func (h *AuditHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	list, err := h.rec.List(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
