package rest

import (
	"io"

	domainImage "github.com/alien2112/menu-rwad-sub005/domains/image"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Image struct {
	Service domainImage.IImageUsecase
}

func InitRestImage(public fiber.Router, admin fiber.Router, service domainImage.IImageUsecase) Image {
	rest := Image{Service: service}
	public.Get("/images/:id", rest.Render)
	admin.Get("/images", rest.List)
	admin.Post("/images", rest.Upload)
	admin.Delete("/images/:id", rest.Delete)
	return rest
}

// Render streams the resized image. Width, height, quality and format all
// come from the query string and together select the cached variant.
func (controller *Image) Render(c *fiber.Ctx) error {
	opts := domainImage.RenderOptions{
		Width:   c.QueryInt("w"),
		Height:  c.QueryInt("h"),
		Quality: c.QueryInt("q"),
		// f is the documented name; format is accepted as an alias
		Format: c.Query("f", c.Query("format")),
	}

	rendered, err := controller.Service.Render(c.UserContext(), c.Params("id"), opts)
	utils.PanicIfNeeded(err)

	c.Set(fiber.HeaderContentType, rendered.ContentType)
	return c.Send(rendered.Data)
}

func (controller *Image) List(c *fiber.Ctx) error {
	records, err := controller.Service.List(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch images",
		Results: records,
	})
}

func (controller *Image) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	utils.PanicIfNeeded(err)

	file, err := fileHeader.Open()
	utils.PanicIfNeeded(err)
	defer file.Close()

	data, err := io.ReadAll(file)
	utils.PanicIfNeeded(err)

	record, err := controller.Service.Upload(c.UserContext(), fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), data)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Success upload image",
		Results: record,
	})
}

func (controller *Image) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete image",
	})
}
