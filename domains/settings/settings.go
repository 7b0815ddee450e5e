// Package settings is a key/value settings table with typed views for the
// tax and theme groups. Tax arithmetic itself happens at order time with the
// stored rate; nothing here computes taxes.
package settings

import "context"

type TaxSettings struct {
	Rate        float64 `json:"rate"` // percentage, e.g. 15 for 15% VAT
	Included    bool    `json:"included"`
	Currency    string  `json:"currency"`
	DisplayName string  `json:"display_name"`
}

type ThemeSettings struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
	LogoImageID    string `json:"logo_image_id"`
	DarkMode       bool   `json:"dark_mode"`
}

// Public is what unauthenticated clients get; it carries only what the UI
// needs to render.
type Public struct {
	Tax            TaxSettings   `json:"tax"`
	Theme          ThemeSettings `json:"theme"`
	WhatsappNumber string        `json:"whatsapp_number,omitempty"`
}

type ISettingsRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
}

type ISettingsUsecase interface {
	GetPublic(ctx context.Context) (Public, error)
	GetTax(ctx context.Context) (TaxSettings, error)
	SaveTax(ctx context.Context, tax TaxSettings) error
	GetTheme(ctx context.Context) (ThemeSettings, error)
	SaveTheme(ctx context.Context, theme ThemeSettings) error
	GetWhatsappNumber(ctx context.Context) (string, error)
	SaveWhatsappNumber(ctx context.Context, number string) error
}
