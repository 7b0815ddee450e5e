package rest

import (
	domainLocation "github.com/alien2112/menu-rwad-sub005/domains/location"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/alien2112/menu-rwad-sub005/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
)

type Location struct {
	Service domainLocation.ILocationUsecase
}

func InitRestLocation(public fiber.Router, admin fiber.Router, service domainLocation.ILocationUsecase) Location {
	rest := Location{Service: service}
	public.Get("/locations", rest.List)
	admin.Post("/locations", rest.Create)
	admin.Put("/locations/:id", rest.Update)
	admin.Delete("/locations/:id", rest.Delete)
	return rest
}

func (controller *Location) List(c *fiber.Ctx) error {
	locations, err := controller.Service.List(c.UserContext(), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch locations",
		Results: locations,
	})
}

func (controller *Location) Create(c *fiber.Ctx) error {
	var request domainLocation.CreateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	location, err := controller.Service.Create(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Success create location",
		Results: location,
	})
}

func (controller *Location) Update(c *fiber.Ctx) error {
	var request domainLocation.UpdateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	location, err := controller.Service.Update(c.UserContext(), c.Params("id"), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success update location",
		Results: location,
	})
}

func (controller *Location) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete location",
	})
}
