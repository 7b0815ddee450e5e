package validations

import (
	"context"

	domainBackground "github.com/alien2112/menu-rwad-sub005/domains/background"
	domainCategory "github.com/alien2112/menu-rwad-sub005/domains/category"
	domainDrink "github.com/alien2112/menu-rwad-sub005/domains/drink"
	domainIngredient "github.com/alien2112/menu-rwad-sub005/domains/ingredient"
	domainItem "github.com/alien2112/menu-rwad-sub005/domains/item"
	domainLocation "github.com/alien2112/menu-rwad-sub005/domains/location"
	domainOffer "github.com/alien2112/menu-rwad-sub005/domains/offer"
	domainOrder "github.com/alien2112/menu-rwad-sub005/domains/order"
	domainQRCode "github.com/alien2112/menu-rwad-sub005/domains/qrcode"
	domainReview "github.com/alien2112/menu-rwad-sub005/domains/review"
	domainStaff "github.com/alien2112/menu-rwad-sub005/domains/staff"
	pkgError "github.com/alien2112/menu-rwad-sub005/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

func ValidateCreateCategory(ctx context.Context, request domainCategory.CreateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Name, validation.Required, validation.Length(1, 120)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateCreateItem(ctx context.Context, request domainItem.CreateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&request.CategoryID, validation.Required),
		validation.Field(&request.Price, validation.Min(0.0)),
		validation.Field(&request.Calories, validation.Min(0)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateCreateOffer(ctx context.Context, request domainOffer.CreateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Title, validation.Required, validation.Length(1, 160)),
		validation.Field(&request.DiscountPercent, validation.Min(0.0), validation.Max(100.0)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateCreateDrink(ctx context.Context, request domainDrink.CreateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&request.Price, validation.Min(0.0)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateSubmitReview(ctx context.Context, request domainReview.SubmitRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Author, validation.Required, validation.Length(1, 80)),
		validation.Field(&request.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&request.Comment, validation.Length(0, 2000)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateCreateIngredient(ctx context.Context, request domainIngredient.CreateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&request.Stock, validation.Min(0)),
		validation.Field(&request.LowStock, validation.Min(0)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateCreateLocation(ctx context.Context, request domainLocation.CreateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&request.Address, validation.Required),
		validation.Field(&request.MapURL, is.URL),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateUpsertBackground(ctx context.Context, request domainBackground.UpsertRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Page, validation.Required, validation.In("home", "menu", "offers", "reviews", "locations")),
		validation.Field(&request.ImageID, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateSubmitOrder(ctx context.Context, request domainOrder.SubmitRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.CustomerName, validation.Required, validation.Length(1, 80)),
		validation.Field(&request.Lines, validation.Required, validation.Length(1, 0)),
	)
	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	for _, line := range request.Lines {
		err := validation.ValidateStructWithContext(ctx, &line,
			validation.Field(&line.ItemID, validation.Required),
			validation.Field(&line.Quantity, validation.Required, validation.Min(1)),
		)
		if err != nil {
			return pkgError.ValidationError(err.Error())
		}
	}

	return nil
}

func ValidateCreateStaff(ctx context.Context, request domainStaff.CreateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Name, validation.Required, validation.Length(1, 80)),
		validation.Field(&request.Role, validation.Required, validation.In(
			domainStaff.RoleAdmin, domainStaff.RoleManager, domainStaff.RoleWaiter, domainStaff.RoleKitchen,
		)),
		validation.Field(&request.Email, is.EmailFormat),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateCreateQRCode(ctx context.Context, request domainQRCode.CreateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Label, validation.Required, validation.Length(1, 80)),
		validation.Field(&request.TargetURL, validation.Required, is.URL),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
