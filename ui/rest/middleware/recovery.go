package middleware

import (
	"errors"
	"fmt"

	domainBackground "github.com/alien2112/menu-rwad-sub005/domains/background"
	domainCategory "github.com/alien2112/menu-rwad-sub005/domains/category"
	domainDrink "github.com/alien2112/menu-rwad-sub005/domains/drink"
	domainImage "github.com/alien2112/menu-rwad-sub005/domains/image"
	domainIngredient "github.com/alien2112/menu-rwad-sub005/domains/ingredient"
	domainItem "github.com/alien2112/menu-rwad-sub005/domains/item"
	domainLocation "github.com/alien2112/menu-rwad-sub005/domains/location"
	domainOffer "github.com/alien2112/menu-rwad-sub005/domains/offer"
	domainOrder "github.com/alien2112/menu-rwad-sub005/domains/order"
	domainQRCode "github.com/alien2112/menu-rwad-sub005/domains/qrcode"
	domainReview "github.com/alien2112/menu-rwad-sub005/domains/review"
	domainStaff "github.com/alien2112/menu-rwad-sub005/domains/staff"
	pkgError "github.com/alien2112/menu-rwad-sub005/pkg/error"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var notFoundErrors = []error{
	domainCategory.ErrNotFound,
	domainItem.ErrNotFound,
	domainOffer.ErrNotFound,
	domainDrink.ErrNotFound,
	domainReview.ErrNotFound,
	domainIngredient.ErrNotFound,
	domainLocation.ErrNotFound,
	domainBackground.ErrNotFound,
	domainOrder.ErrNotFound,
	domainStaff.ErrNotFound,
	domainQRCode.ErrNotFound,
	domainImage.ErrNotFound,
}

var badRequestErrors = []error{
	domainOrder.ErrEmptyOrder,
	domainOrder.ErrUnknownItem,
	domainOrder.ErrInvalidStatus,
	domainIngredient.ErrInvalidStock,
	domainImage.ErrBadDimensions,
	domainImage.ErrBadFormat,
}

// Recovery turns panics raised through utils.PanicIfNeeded into the shared
// JSON error envelope. Typed errors keep their status; anything else is a 500.
func Recovery() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			res := utils.ResponseData{
				Status:  500,
				Code:    "INTERNAL_SERVER_ERROR",
				Message: fmt.Sprintf("%v", r),
			}

			if generic, ok := r.(pkgError.GenericError); ok {
				res.Status = generic.StatusCode()
				res.Code = generic.ErrCode()
				res.Message = generic.Error()
			} else if err, ok := r.(error); ok {
				if matchAny(err, notFoundErrors) {
					res.Status = 404
					res.Code = "NOT_FOUND"
					res.Message = err.Error()
				} else if matchAny(err, badRequestErrors) {
					res.Status = 400
					res.Code = "BAD_REQUEST"
					res.Message = err.Error()
				}
			}

			if res.Status >= 500 {
				logrus.Errorf("panic recovered: %v", r)
			}

			_ = ctx.Status(res.Status).JSON(res)
		}()

		return ctx.Next()
	}
}

func matchAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
