package rest

import (
	domainOffer "github.com/alien2112/menu-rwad-sub005/domains/offer"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/alien2112/menu-rwad-sub005/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
)

type Offer struct {
	Service domainOffer.IOfferUsecase
}

func InitRestOffer(public fiber.Router, admin fiber.Router, service domainOffer.IOfferUsecase) Offer {
	rest := Offer{Service: service}
	public.Get("/offers", rest.List)
	public.Get("/offers/:id", rest.Get)
	admin.Post("/offers", rest.Create)
	admin.Put("/offers/:id", rest.Update)
	admin.Delete("/offers/:id", rest.Delete)
	return rest
}

func (controller *Offer) List(c *fiber.Ctx) error {
	offers, err := controller.Service.List(c.UserContext(), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch offers",
		Results: offers,
	})
}

func (controller *Offer) Get(c *fiber.Ctx) error {
	offer, err := controller.Service.Get(c.UserContext(), c.Params("id"), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch offer",
		Results: offer,
	})
}

func (controller *Offer) Create(c *fiber.Ctx) error {
	var request domainOffer.CreateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	offer, err := controller.Service.Create(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Success create offer",
		Results: offer,
	})
}

func (controller *Offer) Update(c *fiber.Ctx) error {
	var request domainOffer.UpdateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	offer, err := controller.Service.Update(c.UserContext(), c.Params("id"), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success update offer",
		Results: offer,
	})
}

func (controller *Offer) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete offer",
	})
}
