package rest

import (
	"github.com/alien2112/menu-rwad-sub005/domains/health"
	"github.com/gofiber/fiber/v2"
)

type Health struct {
	Service health.IHealthUsecase
}

func InitRestHealth(app fiber.Router, service health.IHealthUsecase) Health {
	rest := Health{Service: service}
	app.Get("/health", rest.Check)
	return rest
}

func (controller *Health) Check(c *fiber.Ctx) error {
	report := controller.Service.Check(c.UserContext())

	status := 200
	if report.Status != health.StatusOk {
		status = 503
	}
	return c.Status(status).JSON(report)
}
