package rest

import (
	domainIngredient "github.com/alien2112/menu-rwad-sub005/domains/ingredient"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/alien2112/menu-rwad-sub005/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
)

type Ingredient struct {
	Service domainIngredient.IIngredientUsecase
}

type adjustStockRequest struct {
	Delta int `json:"delta"`
}

func InitRestIngredient(public fiber.Router, admin fiber.Router, service domainIngredient.IIngredientUsecase) Ingredient {
	rest := Ingredient{Service: service}
	public.Get("/ingredients", rest.List)
	admin.Get("/ingredients/:id", rest.Get)
	admin.Post("/ingredients", rest.Create)
	admin.Put("/ingredients/:id", rest.Update)
	admin.Post("/ingredients/:id/stock", rest.AdjustStock)
	admin.Delete("/ingredients/:id", rest.Delete)
	return rest
}

func (controller *Ingredient) List(c *fiber.Ctx) error {
	ingredients, err := controller.Service.List(c.UserContext(), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch ingredients",
		Results: ingredients,
	})
}

func (controller *Ingredient) Get(c *fiber.Ctx) error {
	ingredient, err := controller.Service.Get(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch ingredient",
		Results: ingredient,
	})
}

func (controller *Ingredient) Create(c *fiber.Ctx) error {
	var request domainIngredient.CreateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	ingredient, err := controller.Service.Create(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Success create ingredient",
		Results: ingredient,
	})
}

func (controller *Ingredient) Update(c *fiber.Ctx) error {
	var request domainIngredient.UpdateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	ingredient, err := controller.Service.Update(c.UserContext(), c.Params("id"), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success update ingredient",
		Results: ingredient,
	})
}

func (controller *Ingredient) AdjustStock(c *fiber.Ctx) error {
	var request adjustStockRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	err = controller.Service.AdjustStock(c.UserContext(), c.Params("id"), request.Delta)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success adjust stock",
	})
}

func (controller *Ingredient) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete ingredient",
	})
}
