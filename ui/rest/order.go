package rest

import (
	domainOrder "github.com/alien2112/menu-rwad-sub005/domains/order"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Order struct {
	Service domainOrder.IOrderUsecase
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func InitRestOrder(public fiber.Router, admin fiber.Router, service domainOrder.IOrderUsecase) Order {
	rest := Order{Service: service}
	public.Post("/orders", rest.Submit)
	admin.Get("/orders", rest.List)
	admin.Get("/orders/:id", rest.Get)
	admin.Put("/orders/:id/status", rest.UpdateStatus)
	admin.Delete("/orders/:id", rest.Delete)
	return rest
}

func (controller *Order) Submit(c *fiber.Ctx) error {
	var request domainOrder.SubmitRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	response, err := controller.Service.Submit(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Order submitted",
		Results: response,
	})
}

func (controller *Order) List(c *fiber.Ctx) error {
	orders, err := controller.Service.List(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch orders",
		Results: orders,
	})
}

func (controller *Order) Get(c *fiber.Ctx) error {
	order, err := controller.Service.Get(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch order",
		Results: order,
	})
}

func (controller *Order) UpdateStatus(c *fiber.Ctx) error {
	var request updateStatusRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	order, err := controller.Service.UpdateStatus(c.UserContext(), c.Params("id"), domainOrder.Status(request.Status))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success update order status",
		Results: order,
	})
}

func (controller *Order) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete order",
	})
}
