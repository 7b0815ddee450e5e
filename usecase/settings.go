package usecase

import (
	"context"
	"encoding/json"

	"github.com/alien2112/menu-rwad-sub005/core/config"
	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainSettings "github.com/alien2112/menu-rwad-sub005/domains/settings"
)

// settings table keys
const (
	settingKeyTax      = "tax"
	settingKeyTheme    = "theme"
	settingKeyWhatsapp = "whatsapp_number"
)

type settingsService struct {
	repo  domainSettings.ISettingsRepository
	cache domainCache.Store
	inv   *InvalidationRegistry
}

func NewSettingsService(repo domainSettings.ISettingsRepository, cache domainCache.Store, inv *InvalidationRegistry) domainSettings.ISettingsUsecase {
	return &settingsService{repo: repo, cache: cache, inv: inv}
}

func (s *settingsService) GetPublic(ctx context.Context) (domainSettings.Public, error) {
	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeySettingsPublic, domainCache.TTLOneHour,
		func(ctx context.Context) (domainSettings.Public, error) {
			tax, err := s.GetTax(ctx)
			if err != nil {
				return domainSettings.Public{}, err
			}
			theme, err := s.GetTheme(ctx)
			if err != nil {
				return domainSettings.Public{}, err
			}
			number, err := s.GetWhatsappNumber(ctx)
			if err != nil {
				return domainSettings.Public{}, err
			}
			return domainSettings.Public{Tax: tax, Theme: theme, WhatsappNumber: number}, nil
		})
	return out, err
}

func (s *settingsService) GetTax(ctx context.Context) (domainSettings.TaxSettings, error) {
	tax := domainSettings.TaxSettings{
		Rate:        15,
		Included:    false,
		Currency:    config.Global.Whatsapp.Currency,
		DisplayName: "VAT",
	}

	raw, found, err := s.repo.Get(ctx, settingKeyTax)
	if err != nil {
		return tax, err
	}
	if found {
		_ = json.Unmarshal([]byte(raw), &tax)
	}
	return tax, nil
}

func (s *settingsService) SaveTax(ctx context.Context, tax domainSettings.TaxSettings) error {
	raw, err := json.Marshal(tax)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, settingKeyTax, string(raw)); err != nil {
		return err
	}

	s.inv.Settings(ctx)
	return nil
}

func (s *settingsService) GetTheme(ctx context.Context) (domainSettings.ThemeSettings, error) {
	var theme domainSettings.ThemeSettings

	raw, found, err := s.repo.Get(ctx, settingKeyTheme)
	if err != nil {
		return theme, err
	}
	if found {
		_ = json.Unmarshal([]byte(raw), &theme)
	}
	return theme, nil
}

func (s *settingsService) SaveTheme(ctx context.Context, theme domainSettings.ThemeSettings) error {
	raw, err := json.Marshal(theme)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, settingKeyTheme, string(raw)); err != nil {
		return err
	}

	s.inv.Settings(ctx)
	return nil
}

func (s *settingsService) GetWhatsappNumber(ctx context.Context) (string, error) {
	raw, found, err := s.repo.Get(ctx, settingKeyWhatsapp)
	if err != nil {
		return "", err
	}
	if found && raw != "" {
		return raw, nil
	}
	return config.Global.Whatsapp.OrderNumber, nil
}

func (s *settingsService) SaveWhatsappNumber(ctx context.Context, number string) error {
	if err := s.repo.Set(ctx, settingKeyWhatsapp, number); err != nil {
		return err
	}

	s.inv.Settings(ctx)
	return nil
}
