package rest

import (
	domainSettings "github.com/alien2112/menu-rwad-sub005/domains/settings"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Settings struct {
	Service domainSettings.ISettingsUsecase
}

type whatsappNumberRequest struct {
	Number string `json:"number"`
}

func InitRestSettings(public fiber.Router, admin fiber.Router, service domainSettings.ISettingsUsecase) Settings {
	rest := Settings{Service: service}
	public.Get("/settings", rest.GetPublic)
	admin.Get("/settings/tax", rest.GetTax)
	admin.Put("/settings/tax", rest.SaveTax)
	admin.Get("/settings/theme", rest.GetTheme)
	admin.Put("/settings/theme", rest.SaveTheme)
	admin.Put("/settings/whatsapp", rest.SaveWhatsappNumber)
	return rest
}

func (controller *Settings) GetPublic(c *fiber.Ctx) error {
	public, err := controller.Service.GetPublic(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch settings",
		Results: public,
	})
}

func (controller *Settings) GetTax(c *fiber.Ctx) error {
	tax, err := controller.Service.GetTax(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch tax settings",
		Results: tax,
	})
}

func (controller *Settings) SaveTax(c *fiber.Ctx) error {
	var request domainSettings.TaxSettings
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	err = controller.Service.SaveTax(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success save tax settings",
	})
}

func (controller *Settings) GetTheme(c *fiber.Ctx) error {
	theme, err := controller.Service.GetTheme(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch theme settings",
		Results: theme,
	})
}

func (controller *Settings) SaveTheme(c *fiber.Ctx) error {
	var request domainSettings.ThemeSettings
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	err = controller.Service.SaveTheme(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success save theme settings",
	})
}

func (controller *Settings) SaveWhatsappNumber(c *fiber.Ctx) error {
	var request whatsappNumberRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	err = controller.Service.SaveWhatsappNumber(c.UserContext(), request.Number)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success save WhatsApp number",
	})
}
