package rest

import (
	domainStaff "github.com/alien2112/menu-rwad-sub005/domains/staff"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Staff struct {
	Service domainStaff.IStaffUsecase
}

func InitRestStaff(admin fiber.Router, service domainStaff.IStaffUsecase) Staff {
	rest := Staff{Service: service}
	admin.Get("/staff", rest.List)
	admin.Post("/staff", rest.Create)
	admin.Put("/staff/:id", rest.Update)
	admin.Delete("/staff/:id", rest.Delete)
	return rest
}

func (controller *Staff) List(c *fiber.Ctx) error {
	members, err := controller.Service.List(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch staff",
		Results: members,
	})
}

func (controller *Staff) Create(c *fiber.Ctx) error {
	var request domainStaff.CreateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	member, err := controller.Service.Create(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Success create staff member",
		Results: member,
	})
}

func (controller *Staff) Update(c *fiber.Ctx) error {
	var request domainStaff.UpdateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	member, err := controller.Service.Update(c.UserContext(), c.Params("id"), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success update staff member",
		Results: member,
	})
}

func (controller *Staff) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete staff member",
	})
}
