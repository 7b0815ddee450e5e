package cmd

import (
	"context"
	"os"
	"strings"
	"time"

	coreconfig "github.com/alien2112/menu-rwad-sub005/core/config"
	coreDB "github.com/alien2112/menu-rwad-sub005/core/database"
	domainBackground "github.com/alien2112/menu-rwad-sub005/domains/background"
	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainCategory "github.com/alien2112/menu-rwad-sub005/domains/category"
	domainDrink "github.com/alien2112/menu-rwad-sub005/domains/drink"
	"github.com/alien2112/menu-rwad-sub005/domains/health"
	domainImage "github.com/alien2112/menu-rwad-sub005/domains/image"
	domainIngredient "github.com/alien2112/menu-rwad-sub005/domains/ingredient"
	domainItem "github.com/alien2112/menu-rwad-sub005/domains/item"
	domainLocation "github.com/alien2112/menu-rwad-sub005/domains/location"
	domainOffer "github.com/alien2112/menu-rwad-sub005/domains/offer"
	domainOrder "github.com/alien2112/menu-rwad-sub005/domains/order"
	domainQRCode "github.com/alien2112/menu-rwad-sub005/domains/qrcode"
	domainReview "github.com/alien2112/menu-rwad-sub005/domains/review"
	domainSettings "github.com/alien2112/menu-rwad-sub005/domains/settings"
	domainStaff "github.com/alien2112/menu-rwad-sub005/domains/staff"
	"github.com/alien2112/menu-rwad-sub005/infrastructure/memcache"
	"github.com/alien2112/menu-rwad-sub005/infrastructure/revalidate"
	"github.com/alien2112/menu-rwad-sub005/infrastructure/valkey"
	"github.com/alien2112/menu-rwad-sub005/pkg/taskpool"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/alien2112/menu-rwad-sub005/repository"
	"github.com/alien2112/menu-rwad-sub005/usecase"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

var (
	db *gorm.DB

	cacheStore     domainCache.Store
	valkeyClient   *valkey.Client
	revalidatePool *taskpool.Pool
	invalidations  *usecase.InvalidationRegistry

	// Usecase
	categoryUsecase   domainCategory.ICategoryUsecase
	itemUsecase       domainItem.IItemUsecase
	offerUsecase      domainOffer.IOfferUsecase
	drinkUsecase      domainDrink.IDrinkUsecase
	reviewUsecase     domainReview.IReviewUsecase
	ingredientUsecase domainIngredient.IIngredientUsecase
	locationUsecase   domainLocation.ILocationUsecase
	backgroundUsecase domainBackground.IBackgroundUsecase
	orderUsecase      domainOrder.IOrderUsecase
	staffUsecase      domainStaff.IStaffUsecase
	qrcodeUsecase     domainQRCode.IQRCodeUsecase
	settingsUsecase   domainSettings.ISettingsUsecase
	imageUsecase      domainImage.IImageUsecase
	cacheUsecase      domainCache.ICacheUsecase
	healthUsecase     health.IHealthUsecase
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "menu-rwad",
	Short: "Restaurant menu and ordering API over http",
	Long: `Multi-location restaurant menu backend: categories, items, offers,
signature drinks, reviews and WhatsApp order handoff, with a read-through
cache in front of every public read.`,
}

func init() {
	// Load environment variables first
	utils.LoadConfig(".")

	time.Local = time.UTC

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	if _, err := coreconfig.LoadConfig(); err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize flags first, before any subcommands are added
	initFlags()

	// Then initialize other components
	cobra.OnInitialize(initEnvConfig, initApp)
}

// initEnvConfig applies viper overrides on top of the loaded configuration
func initEnvConfig() {
	cfg := coreconfig.Global

	// Application settings
	if envPort := viper.GetString("app_port"); envPort != "" {
		cfg.App.Port = envPort
	}
	if envDebug := viper.GetBool("app_debug"); envDebug {
		cfg.App.Debug = envDebug
	}
	envBasicAuth := viper.GetString("app_basic_auth")
	if envBasicAuth == "" {
		envBasicAuth = os.Getenv("APP_BASIC_AUTH")
	}
	if envBasicAuth != "" {
		cfg.App.BasicAuth = strings.Split(envBasicAuth, ",")
	}
	if envBasePath := viper.GetString("app_base_path"); envBasePath != "" {
		cfg.App.BasePath = envBasePath
	}
	if envTrustedProxies := viper.GetString("app_trusted_proxies"); envTrustedProxies != "" {
		cfg.App.TrustedProxies = strings.Split(envTrustedProxies, ",")
	}

	// Database settings
	if envDBDriver := viper.GetString("db_driver"); envDBDriver != "" {
		cfg.Database.Driver = envDBDriver
	}
	if envDBName := viper.GetString("db_name"); envDBName != "" {
		cfg.Database.Name = envDBName
	}

	// Cache settings
	if envBackend := viper.GetString("cache_backend"); envBackend != "" {
		cfg.Cache.Backend = envBackend
	}
	if envValkey := viper.GetString("valkey_address"); envValkey != "" {
		cfg.Cache.ValkeyAddress = envValkey
	}
	if envRevalidate := viper.GetString("revalidate_webhook_url"); envRevalidate != "" {
		cfg.Cache.RevalidateURL = envRevalidate
	}

	// Order handoff settings
	if envOrderNumber := viper.GetString("whatsapp_order_number"); envOrderNumber != "" {
		cfg.Whatsapp.OrderNumber = envOrderNumber
	}
}

func initFlags() {
	cfg := coreconfig.Global

	// Application flags
	rootCmd.PersistentFlags().StringVarP(
		&cfg.App.Port,
		"port", "p",
		cfg.App.Port,
		"change port number with --port <number> | example: --port=8080",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&cfg.App.Debug,
		"debug", "d",
		cfg.App.Debug,
		"hide or displaying log with --debug <true/false> | example: --debug=true",
	)
	rootCmd.PersistentFlags().StringSliceVarP(
		&cfg.App.BasicAuth,
		"basic-auth", "b",
		cfg.App.BasicAuth,
		"basic auth credential | -b=yourUsername:yourPassword",
	)
	rootCmd.PersistentFlags().StringVarP(
		&cfg.App.BasePath,
		"base-path", "",
		cfg.App.BasePath,
		`base path for subpath deployment --base-path <string> | example: --base-path="/menu"`,
	)
	rootCmd.PersistentFlags().StringSliceVarP(
		&cfg.App.TrustedProxies,
		"trusted-proxies", "",
		cfg.App.TrustedProxies,
		`trusted proxy IP ranges for reverse proxy deployments --trusted-proxies <string> | example: --trusted-proxies="10.0.0.0/8,172.16.0.0/12"`,
	)

	// Database flags
	rootCmd.PersistentFlags().StringVarP(
		&cfg.Database.Driver,
		"db-driver", "",
		cfg.Database.Driver,
		`database driver --db-driver <string> | example: --db-driver="sqlite" or --db-driver="postgres"`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&cfg.Database.Name,
		"db-name", "",
		cfg.Database.Name,
		`database name, or the file path when using sqlite --db-name <string> | example: --db-name="storages/menu.db"`,
	)

	// Cache flags
	rootCmd.PersistentFlags().StringVarP(
		&cfg.Cache.Backend,
		"cache-backend", "",
		cfg.Cache.Backend,
		`cache backend --cache-backend <string> | example: --cache-backend="memory" or --cache-backend="valkey"`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&cfg.Cache.ValkeyAddress,
		"valkey-address", "",
		cfg.Cache.ValkeyAddress,
		`valkey server address when cache backend is valkey --valkey-address <string> | example: --valkey-address="localhost:6379"`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&cfg.Cache.RevalidateURL,
		"revalidate-url", "",
		cfg.Cache.RevalidateURL,
		`webhook that receives path/tag revalidation signals --revalidate-url <string> | example: --revalidate-url="https://edge.example.com/revalidate"`,
	)

	// Order handoff flags
	rootCmd.PersistentFlags().StringVarP(
		&cfg.Whatsapp.OrderNumber,
		"order-number", "",
		cfg.Whatsapp.OrderNumber,
		`whatsapp number that receives order handoffs --order-number <string> | example: --order-number="+966 50 123 4567"`,
	)
}

func initApp() {
	cfg := coreconfig.Global

	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// preparing folder if not exist
	if err := utils.CreateFolder(cfg.Paths.Statics, cfg.Paths.Images, cfg.Paths.Storages, cfg.Paths.ClientCache); err != nil {
		logrus.Errorln(err)
	}

	ctx := context.Background()

	domainCache.SetTTLs(cfg.Cache.DefaultTTL, cfg.Cache.ImageTTL)

	var err error
	db, err = coreDB.NewDatabase(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	// 1. Cache backend. Valkey is shared between instances; memory is
	// per-process. A valkey connection failure degrades to memory so the
	// API stays up.
	switch cfg.Cache.Backend {
	case "valkey":
		valkeyClient, err = valkey.NewClient(valkey.Config{
			Address:   cfg.Cache.ValkeyAddress,
			Password:  cfg.Cache.ValkeyPassword,
			DB:        cfg.Cache.ValkeyDB,
			KeyPrefix: cfg.Cache.ValkeyKeyPrefix,
		})
		if err != nil {
			logrus.Warnf("[CACHE] Valkey unavailable (%v), falling back to in-memory cache", err)
			cacheStore = memcache.New()
		} else {
			cacheStore = valkey.NewCacheStore(valkeyClient)
		}
	default:
		cacheStore = memcache.New()
	}

	// 2. Revalidation fan-out. The webhook signals an edge cache; the
	// broadcast lets sibling instances and subscribed consumers see the
	// invalidation when Valkey is in play.
	serverID := cfg.App.ServerID
	if serverID == "" {
		serverID = uuid.NewString()
	}

	var revalidators revalidate.Multi
	if cfg.Cache.RevalidateURL != "" {
		revalidatePool = taskpool.New(cfg.Workers.Size, cfg.Workers.QueueSize)
		revalidatePool.Start(ctx)
		revalidators = append(revalidators, revalidate.NewWebhook(cfg.Cache.RevalidateURL, cfg.Cache.RevalidateSecret, revalidatePool))
	}
	if valkeyClient != nil {
		revalidators = append(revalidators, revalidate.NewBroadcast(valkeyClient, serverID))
	}

	var revalidator revalidate.Revalidator
	switch len(revalidators) {
	case 0:
		revalidator = revalidate.Noop{}
	case 1:
		revalidator = revalidators[0]
	default:
		revalidator = revalidators
	}
	if cfg.App.Debug {
		revalidator = revalidate.Log{Next: revalidator}
	}

	invalidations = usecase.NewInvalidationRegistry(cacheStore, revalidator)

	// 3. Repositories
	categoryRepo := repository.NewCategoryGormRepository(db)
	itemRepo := repository.NewItemGormRepository(db)
	offerRepo := repository.NewOfferGormRepository(db)
	drinkRepo := repository.NewDrinkGormRepository(db)
	reviewRepo := repository.NewReviewGormRepository(db)
	ingredientRepo := repository.NewIngredientGormRepository(db)
	locationRepo := repository.NewLocationGormRepository(db)
	backgroundRepo := repository.NewBackgroundGormRepository(db)
	orderRepo := repository.NewOrderGormRepository(db)
	staffRepo := repository.NewStaffGormRepository(db)
	qrcodeRepo := repository.NewQRCodeGormRepository(db)
	settingsRepo := repository.NewSettingsGormRepository(db)
	imageRepo := repository.NewImageGormRepository(db)

	// 4. Usecases
	categoryUsecase = usecase.NewCategoryService(categoryRepo, cacheStore, invalidations)
	itemUsecase = usecase.NewItemService(itemRepo, cacheStore, invalidations)
	offerUsecase = usecase.NewOfferService(offerRepo, cacheStore, invalidations)
	drinkUsecase = usecase.NewDrinkService(drinkRepo, cacheStore, invalidations)
	reviewUsecase = usecase.NewReviewService(reviewRepo, cacheStore, invalidations)
	ingredientUsecase = usecase.NewIngredientService(ingredientRepo, cacheStore, invalidations)
	locationUsecase = usecase.NewLocationService(locationRepo, cacheStore, invalidations)
	backgroundUsecase = usecase.NewBackgroundService(backgroundRepo, cacheStore, invalidations)
	settingsUsecase = usecase.NewSettingsService(settingsRepo, cacheStore, invalidations)
	orderUsecase = usecase.NewOrderService(orderRepo, itemRepo, ingredientRepo, settingsUsecase)
	staffUsecase = usecase.NewStaffService(staffRepo)
	qrcodeUsecase = usecase.NewQRCodeService(qrcodeRepo)
	imageUsecase = usecase.NewImageService(imageRepo, cacheStore, invalidations, cfg.Paths.Images)
	cacheUsecase = usecase.NewCacheService(cacheStore, cfg.Cache.Backend, settingsRepo, invalidations)
	healthUsecase = usecase.NewHealthService(db, cacheStore)

	// Re-apply persisted cache settings (an admin may have adjusted TTLs
	// or disabled the cache before the last restart).
	if settings, err := cacheUsecase.GetSettings(ctx); err == nil {
		domainCache.SetTTLs(
			time.Duration(settings.DefaultTTLSeconds)*time.Second,
			time.Duration(settings.ImageTTLSeconds)*time.Second,
		)
		if !settings.Enabled {
			if toggleable, ok := cacheStore.(domainCache.Toggleable); ok {
				toggleable.SetEnabled(false)
				logrus.Info("[CACHE] Cache disabled by persisted settings")
			}
		}
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// StopApp performs a clean shutdown of all connections and workers.
func StopApp() {
	logrus.Info("[APP] Stopping application...")

	if revalidatePool != nil {
		revalidatePool.Stop()
	}
	if valkeyClient != nil {
		valkeyClient.Close()
	}
	if sqlDB, err := coreDB.GetSQLDB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("[APP] Error closing database: %v", err)
		}
	}

	logrus.Info("[APP] Application stopped cleanly.")
}
