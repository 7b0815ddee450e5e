package cache

import "fmt"

// Cache keys. Any two requests that would produce different response bodies
// must map to different keys; the prefixes below are what the invalidation
// registry enumerates per resource family, so every new cached query shape
// must be added both here and there.
const (
	PrefixCategories      = "categories:"
	PrefixItems           = "items:"
	PrefixOffers          = "offers:"
	PrefixSignatureDrinks = "signature-drinks:"
	PrefixReviews         = "reviews:"
	PrefixMenuItemReviews = "menu-item-reviews:"
	PrefixIngredients     = "ingredients:"
	PrefixLocations       = "locations:"
	PrefixBackgrounds     = "page-backgrounds:"
	PrefixSettings        = "settings:"
	PrefixImages          = "image:"

	KeyCategoriesAll       = PrefixCategories + "all"
	KeyItemsAll            = PrefixItems + "all"
	KeyOffersAll           = PrefixOffers + "all"
	KeySignatureDrinksAll  = PrefixSignatureDrinks + "all"
	KeySignatureDrinksLive = PrefixSignatureDrinks + "active"
	KeyReviewsApproved     = PrefixReviews + "approved"
	KeyIngredientsAll      = PrefixIngredients + "all"
	KeyLocationsAll        = PrefixLocations + "all"
	KeyPageBackgroundsAll  = PrefixBackgrounds + "all"
	KeySettingsPublic      = PrefixSettings + "public"
)

func KeyCategory(id string) string {
	return PrefixCategories + id
}

func KeyItem(id string) string {
	return PrefixItems + id
}

func KeyItemsByCategory(categoryID string) string {
	return PrefixItems + "category:" + categoryID
}

func KeyOffer(id string) string {
	return PrefixOffers + id
}

func KeyMenuItemReviews(itemID string) string {
	return PrefixMenuItemReviews + "item:" + itemID
}

// KeyImage parameterizes on every input that changes the rendered bytes.
func KeyImage(id string, width, height, quality int, format string) string {
	return fmt.Sprintf("%s%s:%d:%d:%d:%s", PrefixImages, id, width, height, quality, format)
}

// KeyImagePrefix covers every rendered variant of one image.
func KeyImagePrefix(id string) string {
	return PrefixImages + id + ":"
}
