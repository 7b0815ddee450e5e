package cmd

import (
	"context"

	domainCategory "github.com/alien2112/menu-rwad-sub005/domains/category"
	domainItem "github.com/alien2112/menu-rwad-sub005/domains/item"
	domainSettings "github.com/alien2112/menu-rwad-sub005/domains/settings"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migration and optionally seed starter data",
	Run:   runMigrate,
}

func init() {
	migrateCmd.Flags().Bool("seed", false, "insert starter categories, items and tax settings after migrating")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) {
	// Schema migration already ran in initApp; this command exists so
	// deployments can migrate (and seed) without starting the server.
	ctx := context.Background()

	seed, _ := cmd.Flags().GetBool("seed")
	if !seed {
		logrus.Info("[MIGRATION] Schema is up to date")
		return
	}

	existing, err := categoryUsecase.List(ctx, true)
	if err != nil {
		logrus.Fatalf("[MIGRATION] Failed to inspect categories: %v", err)
	}
	if len(existing) > 0 {
		logrus.Info("[MIGRATION] Database already has data, skipping seed")
		return
	}

	if err := seedStarterData(ctx); err != nil {
		logrus.Fatalf("[MIGRATION] Seed failed: %v", err)
	}
	logrus.Info("[MIGRATION] Starter data seeded")
}

func seedStarterData(ctx context.Context) error {
	if err := settingsUsecase.SaveTax(ctx, domainSettings.TaxSettings{
		Rate:        15,
		Currency:    "SAR",
		DisplayName: "VAT",
	}); err != nil {
		return err
	}

	categories := []domainCategory.CreateRequest{
		{Name: "Hot Drinks", NameAr: "مشروبات ساخنة", SortOrder: 1},
		{Name: "Cold Drinks", NameAr: "مشروبات باردة", SortOrder: 2},
		{Name: "Desserts", NameAr: "حلويات", SortOrder: 3},
	}

	items := map[string][]domainItem.CreateRequest{
		"Hot Drinks": {
			{Name: "Espresso", NameAr: "إسبريسو", Price: 12, Calories: 5, SortOrder: 1},
			{Name: "Latte", NameAr: "لاتيه", Price: 18, Calories: 190, SortOrder: 2},
		},
		"Cold Drinks": {
			{Name: "Iced Mocha", NameAr: "موكا مثلجة", Price: 22, Calories: 280, SortOrder: 1},
		},
		"Desserts": {
			{Name: "Cheesecake", NameAr: "تشيز كيك", Price: 26, Calories: 410, SortOrder: 1},
		},
	}

	for _, req := range categories {
		category, err := categoryUsecase.Create(ctx, req)
		if err != nil {
			return err
		}
		for _, itemReq := range items[req.Name] {
			itemReq.CategoryID = category.ID
			if _, err := itemUsecase.Create(ctx, itemReq); err != nil {
				return err
			}
		}
	}
	return nil
}
