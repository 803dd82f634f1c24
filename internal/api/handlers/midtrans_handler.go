package handlers

import (
	"nutriscan-api/domain"
	"nutriscan-api/internal/api/presenters"
	"nutriscan-api/pkg/midtrans"

	"github.com/gofiber/fiber/v2"
)

type (
	MidtransHandler interface {
		Webhook(c *fiber.Ctx) error
	}

	midtransHandler struct {
		midtransService midtrans.MidtransService
	}
)

func NewMidtransHandler(midtransService midtrans.MidtransService) MidtransHandler {
	return &midtransHandler{midtransService: midtransService}
}

func (h *midtransHandler) Webhook(c *fiber.Ctx) error {
	payload := make(map[string]interface{})
	if err := c.BodyParser(&payload); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.midtransService.HandleNotification(c.Context(), payload); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, "notification processed")
}
