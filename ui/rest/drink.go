package rest

import (
	domainDrink "github.com/alien2112/menu-rwad-sub005/domains/drink"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/alien2112/menu-rwad-sub005/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
)

type Drink struct {
	Service domainDrink.IDrinkUsecase
}

func InitRestDrink(public fiber.Router, admin fiber.Router, service domainDrink.IDrinkUsecase) Drink {
	rest := Drink{Service: service}
	public.Get("/signature-drinks", rest.ListActive)
	admin.Get("/signature-drinks/all", rest.List)
	admin.Post("/signature-drinks", rest.Create)
	admin.Put("/signature-drinks/:id", rest.Update)
	admin.Delete("/signature-drinks/:id", rest.Delete)
	return rest
}

func (controller *Drink) ListActive(c *fiber.Ctx) error {
	drinks, err := controller.Service.ListActive(c.UserContext(), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch signature drinks",
		Results: drinks,
	})
}

func (controller *Drink) List(c *fiber.Ctx) error {
	drinks, err := controller.Service.List(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch signature drinks",
		Results: drinks,
	})
}

func (controller *Drink) Create(c *fiber.Ctx) error {
	var request domainDrink.CreateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	drink, err := controller.Service.Create(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Success create signature drink",
		Results: drink,
	})
}

func (controller *Drink) Update(c *fiber.Ctx) error {
	var request domainDrink.UpdateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	drink, err := controller.Service.Update(c.UserContext(), c.Params("id"), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success update signature drink",
		Results: drink,
	})
}

func (controller *Drink) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete signature drink",
	})
}
