package rest

import (
	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Cache struct {
	Service domainCache.ICacheUsecase
}

func InitRestCache(admin fiber.Router, service domainCache.ICacheUsecase) Cache {
	rest := Cache{Service: service}
	admin.Get("/cache/stats", rest.Stats)
	admin.Post("/cache/clear", rest.Clear)
	admin.Get("/cache/settings", rest.GetSettings)
	admin.Put("/cache/settings", rest.SaveSettings)
	return rest
}

func (controller *Cache) Stats(c *fiber.Ctx) error {
	stats, err := controller.Service.GetStats(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch cache stats",
		Results: stats,
	})
}

func (controller *Cache) Clear(c *fiber.Ctx) error {
	err := controller.Service.ClearAll(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache cleared",
	})
}

func (controller *Cache) GetSettings(c *fiber.Ctx) error {
	settings, err := controller.Service.GetSettings(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch cache settings",
		Results: settings,
	})
}

func (controller *Cache) SaveSettings(c *fiber.Ctx) error {
	var request domainCache.CacheSettings
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	err = controller.Service.SaveSettings(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success save cache settings",
	})
}
