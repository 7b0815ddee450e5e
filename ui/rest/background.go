package rest

import (
	domainBackground "github.com/alien2112/menu-rwad-sub005/domains/background"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/alien2112/menu-rwad-sub005/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
)

type Background struct {
	Service domainBackground.IBackgroundUsecase
}

func InitRestBackground(public fiber.Router, admin fiber.Router, service domainBackground.IBackgroundUsecase) Background {
	rest := Background{Service: service}
	public.Get("/page-backgrounds", rest.List)
	admin.Put("/page-backgrounds", rest.Upsert)
	admin.Delete("/page-backgrounds/:id", rest.Delete)
	return rest
}

func (controller *Background) List(c *fiber.Ctx) error {
	backgrounds, err := controller.Service.List(c.UserContext(), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch page backgrounds",
		Results: backgrounds,
	})
}

func (controller *Background) Upsert(c *fiber.Ctx) error {
	var request domainBackground.UpsertRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	background, err := controller.Service.Upsert(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success save page background",
		Results: background,
	})
}

func (controller *Background) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete page background",
	})
}
