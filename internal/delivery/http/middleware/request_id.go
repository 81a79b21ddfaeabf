package middleware

import (
	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"github.com/address-navigator/internal/pkg/utils"
)

const (
	HeaderRequestID = "X-Request-ID"
	localsRequestID = "request_id"
)

// RequestID - присваивает запросу идентификатор (или берет из заголовка)
// и кладет его в Locals, заголовок ответа и user context.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := fiberutils.CopyString(c.Get(HeaderRequestID))
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Locals(localsRequestID, id)
		c.Set(HeaderRequestID, id)
		c.SetUserContext(utils.WithRequestID(c.UserContext(), id))

		return c.Next()
	}
}

// GetRequestID возвращает идентификатор текущего запроса
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsRequestID).(string)
	return id
}
