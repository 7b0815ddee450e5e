package rest

import (
	domainItem "github.com/alien2112/menu-rwad-sub005/domains/item"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/alien2112/menu-rwad-sub005/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
)

type Item struct {
	Service domainItem.IItemUsecase
}

func InitRestItem(public fiber.Router, admin fiber.Router, service domainItem.IItemUsecase) Item {
	rest := Item{Service: service}
	public.Get("/items", rest.List)
	public.Get("/items/:id", rest.Get)
	public.Get("/categories/:category_id/items", rest.ListByCategory)
	admin.Post("/items", rest.Create)
	admin.Put("/items/:id", rest.Update)
	admin.Delete("/items/:id", rest.Delete)
	return rest
}

func (controller *Item) List(c *fiber.Ctx) error {
	items, err := controller.Service.List(c.UserContext(), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch menu items",
		Results: items,
	})
}

func (controller *Item) ListByCategory(c *fiber.Ctx) error {
	items, err := controller.Service.ListByCategory(c.UserContext(), c.Params("category_id"), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch menu items",
		Results: items,
	})
}

func (controller *Item) Get(c *fiber.Ctx) error {
	item, err := controller.Service.Get(c.UserContext(), c.Params("id"), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch menu item",
		Results: item,
	})
}

func (controller *Item) Create(c *fiber.Ctx) error {
	var request domainItem.CreateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	item, err := controller.Service.Create(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Success create menu item",
		Results: item,
	})
}

func (controller *Item) Update(c *fiber.Ctx) error {
	var request domainItem.UpdateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	item, err := controller.Service.Update(c.UserContext(), c.Params("id"), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success update menu item",
		Results: item,
	})
}

func (controller *Item) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete menu item",
	})
}
