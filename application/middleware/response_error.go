package middleware

import (
	"errors"
	"go-facade/util/errs"
	"go-facade/util/logger"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ResponseError แปลง error ที่ handler ส่งกลับมาให้เป็น {"error": "..."}
// status 5xx จะไม่ส่งข้อความของ error กลับไปให้ client
func ResponseError() fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		status := errs.HTTPStatusCode(err)
		msg := err.Error()
		if status >= fiber.StatusInternalServerError {
			logger.FromContext(c.Context()).Error("request failed", zap.Error(err))
			msg = "internal server error"
		}

		return c.Status(status).JSON(fiber.Map{"error": msg})
	}
}
