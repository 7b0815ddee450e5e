package rest

import (
	domainQRCode "github.com/alien2112/menu-rwad-sub005/domains/qrcode"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type QRCode struct {
	Service domainQRCode.IQRCodeUsecase
}

func InitRestQRCode(admin fiber.Router, service domainQRCode.IQRCodeUsecase) QRCode {
	rest := QRCode{Service: service}
	admin.Get("/qr-codes", rest.List)
	admin.Post("/qr-codes", rest.Create)
	admin.Put("/qr-codes/:id", rest.Update)
	admin.Delete("/qr-codes/:id", rest.Delete)
	return rest
}

func (controller *QRCode) List(c *fiber.Ctx) error {
	codes, err := controller.Service.List(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch QR codes",
		Results: codes,
	})
}

func (controller *QRCode) Create(c *fiber.Ctx) error {
	var request domainQRCode.CreateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	code, err := controller.Service.Create(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Success create QR code",
		Results: code,
	})
}

func (controller *QRCode) Update(c *fiber.Ctx) error {
	var request domainQRCode.UpdateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	code, err := controller.Service.Update(c.UserContext(), c.Params("id"), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success update QR code",
		Results: code,
	})
}

func (controller *QRCode) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete QR code",
	})
}
