package handler

import (
	"errors"
	"go-facade/dto"
	"go-facade/service"
	"go-facade/util/errs"

	"github.com/gofiber/fiber/v3"
)

type FacadeHandler struct {
	facade service.Facade
}

func NewFacadeHandler(facade service.Facade) *FacadeHandler {
	return &FacadeHandler{facade: facade}
}

func (h *FacadeHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/TestOperation", h.TestOperation)
	r.Post("/CreateOrder", h.CreateOrder)
}

// GET /TestOperation ตอบกลับเป็น plain text
func (h *FacadeHandler) TestOperation(c fiber.Ctx) error {
	msg, err := h.facade.TestOperation(c.Context())
	if err != nil {
		// จัดการ error response ที่ middleware
		return err
	}

	return c.Status(fiber.StatusOK).SendString(msg)
}

// POST /CreateOrder ตอบกลับ order ที่สร้างด้วย status 200
func (h *FacadeHandler) CreateOrder(c fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.Bind().Body(&req); err != nil {
		// เช่น ไม่มี Content-Type ให้ fiber กำหนด status เอง
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return fiberErr
		}
		// body decode ไม่ได้
		return errs.InputValidationError(err.Error())
	}

	resp, err := h.facade.CreateOrder(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
