package handlers

import (
	"errors"

	"techgear/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// errorBody describes what a client sees for a failed call. An empty
// notFound means ErrNotFound is answered like any other failure.
type errorBody struct {
	notFound string
	failure  string
}

func status(err error, msgs errorBody) (int, string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrNotFound) && msgs.notFound != "":
		return fiber.StatusNotFound, msgs.notFound
	default:
		return fiber.StatusInternalServerError, msgs.failure
	}
}

// logFailure keeps the storage error server-side.
func logFailure(c *fiber.Ctx, log *zap.Logger, code int, err error) {
	if code < fiber.StatusInternalServerError {
		return
	}
	log.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Any("request_id", c.Locals("requestid")),
		zap.Error(err))
}

// jsonError answers with {"error": message}.
func jsonError(c *fiber.Ctx, log *zap.Logger, err error, msgs errorBody) error {
	code, msg := status(err, msgs)
	logFailure(c, log, code, err)
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

// textError answers with a plain text body.
func textError(c *fiber.Ctx, log *zap.Logger, err error, msgs errorBody) error {
	code, msg := status(err, msgs)
	logFailure(c, log, code, err)
	return c.Status(code).SendString(msg)
}

// paramID reads the numeric :id route parameter. Non-numeric, overflowing,
// zero and negative ids report false.
func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
