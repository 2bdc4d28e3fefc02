package httpapi

import (
	"time"

	"github.com/dmitrijs2005/adboard/internal/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// accessLog tags the request with an id and writes one log line once the
// response, including any error rendering, is complete.
func (s *HTTPServer) accessLog(c *fiber.Ctx) error {
	start := time.Now()

	rid := c.Get(common.RequestIDHeaderName)
	if rid == "" {
		rid = uuid.NewString()
	}
	c.Locals(requestIDKey, rid)
	c.Set(common.RequestIDHeaderName, rid)

	if err := c.Next(); err != nil {
		if herr := c.App().ErrorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	s.logger.Info(c.UserContext(), "request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start).String(),
		"request_id", rid,
	)

	return nil
}

func requestID(c *fiber.Ctx) string {
	rid, _ := c.Locals(requestIDKey).(string)
	return rid
}
