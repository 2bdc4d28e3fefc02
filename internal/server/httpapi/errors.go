package httpapi

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/adboard/internal/common"
	"github.com/gofiber/fiber/v2"
)

// errorHandler renders every failure as {"error": message}. Details of
// unexpected errors stay in the log.
func (s *HTTPServer) errorHandler(c *fiber.Ctx, err error) error {
	code, msg := statusFor(err)

	if code >= fiber.StatusInternalServerError {
		s.logger.Error(c.UserContext(), "request failed",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", requestID(c),
			"error", err.Error(),
		)
	}

	return c.Status(code).JSON(fiber.Map{"error": msg})
}

func statusFor(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, common.ErrorAlreadyExists), errors.Is(err, common.ErrorValidation):
		return fiber.StatusBadRequest, err.Error()
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	}
	return fiber.StatusInternalServerError, common.ErrorInternal.Error()
}

// paramID reads a positive integer path parameter. Route constraints have
// already checked the format; an overflowing value is reported as not found.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%s %q: %w", name, c.Params(name), common.ErrorNotFound)
	}
	return id, nil
}

// decodeBody unmarshals the request body with the app's JSON decoder
// regardless of Content-Type.
func decodeBody(c *fiber.Ctx, v any) error {
	if err := c.App().Config().JSONDecoder(c.Body(), v); err != nil {
		return fmt.Errorf("%w: malformed JSON body", common.ErrorValidation)
	}
	return nil
}
