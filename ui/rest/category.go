package rest

import (
	domainCategory "github.com/alien2112/menu-rwad-sub005/domains/category"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/alien2112/menu-rwad-sub005/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
)

type Category struct {
	Service domainCategory.ICategoryUsecase
}

func InitRestCategory(public fiber.Router, admin fiber.Router, service domainCategory.ICategoryUsecase) Category {
	rest := Category{Service: service}
	public.Get("/categories", rest.List)
	public.Get("/categories/:id", rest.Get)
	admin.Post("/categories", rest.Create)
	admin.Put("/categories/:id", rest.Update)
	admin.Delete("/categories/:id", rest.Delete)
	return rest
}

func (controller *Category) List(c *fiber.Ctx) error {
	categories, err := controller.Service.List(c.UserContext(), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch categories",
		Results: categories,
	})
}

func (controller *Category) Get(c *fiber.Ctx) error {
	category, err := controller.Service.Get(c.UserContext(), c.Params("id"), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch category",
		Results: category,
	})
}

func (controller *Category) Create(c *fiber.Ctx) error {
	var request domainCategory.CreateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	category, err := controller.Service.Create(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Success create category",
		Results: category,
	})
}

func (controller *Category) Update(c *fiber.Ctx) error {
	var request domainCategory.UpdateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	category, err := controller.Service.Update(c.UserContext(), c.Params("id"), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success update category",
		Results: category,
	})
}

func (controller *Category) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete category",
	})
}
