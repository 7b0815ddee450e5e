package rest

import (
	domainReview "github.com/alien2112/menu-rwad-sub005/domains/review"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/alien2112/menu-rwad-sub005/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
)

type Review struct {
	Service domainReview.IReviewUsecase
}

func InitRestReview(public fiber.Router, admin fiber.Router, service domainReview.IReviewUsecase) Review {
	rest := Review{Service: service}
	public.Get("/reviews", rest.ListApproved)
	public.Post("/reviews", rest.Submit)
	public.Get("/items/:item_id/reviews", rest.ListByItem)
	admin.Get("/reviews/all", rest.ListAll)
	admin.Post("/reviews/:id/approve", rest.Approve)
	admin.Delete("/reviews/:id", rest.Delete)
	return rest
}

func (controller *Review) ListApproved(c *fiber.Ctx) error {
	reviews, err := controller.Service.ListApproved(c.UserContext(), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch reviews",
		Results: reviews,
	})
}

func (controller *Review) ListByItem(c *fiber.Ctx) error {
	reviews, err := controller.Service.ListByItem(c.UserContext(), c.Params("item_id"), middleware.IsAdmin(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch item reviews",
		Results: reviews,
	})
}

func (controller *Review) ListAll(c *fiber.Ctx) error {
	reviews, err := controller.Service.ListAll(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch reviews",
		Results: reviews,
	})
}

func (controller *Review) Submit(c *fiber.Ctx) error {
	var request domainReview.SubmitRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	review, err := controller.Service.Submit(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Review submitted for approval",
		Results: review,
	})
}

func (controller *Review) Approve(c *fiber.Ctx) error {
	review, err := controller.Service.Approve(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success approve review",
		Results: review,
	})
}

func (controller *Review) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete review",
	})
}
