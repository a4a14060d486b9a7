package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/application/finance"
	"github.com/tallerok/taller-api/internal/domain"
)

// FinanceHandler expone la conciliación de caja.
type FinanceHandler struct {
	uc *finance.UseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Feed GET /api/finance/feed?granularity=day|month|semester
func (h *FinanceHandler) Feed(c *fiber.Ctx) error {
	feed, err := h.uc.GetFinancialFeed(c.Context(), c.Query("granularity"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "granularity debe ser day, month o semester"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(feed)
}
