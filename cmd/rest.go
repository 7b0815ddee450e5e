package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreconfig "github.com/alien2112/menu-rwad-sub005/core/config"
	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	"github.com/alien2112/menu-rwad-sub005/ui/rest"
	"github.com/alien2112/menu-rwad-sub005/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// 25 MB, enough for any menu photo upload.
const maxBodySize = 25 * 1024 * 1024

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the menu and ordering API over http",
	Run:   restServer,
}

func init() {
	rootCmd.AddCommand(restCmd)
}

func restServer(_ *cobra.Command, _ []string) {
	cfg := coreconfig.Global

	fiberConfig := fiber.Config{
		EnableTrustedProxyCheck: true,
		BodyLimit:               maxBodySize,
		Network:                 "tcp",
		AppName:                 "Menu RWAD API",
		DisableStartupMessage:   false,
		ServerHeader:            "Hidden",
	}

	// Configure proxy settings if trusted proxies are specified
	if len(cfg.App.TrustedProxies) > 0 {
		fiberConfig.TrustedProxies = cfg.App.TrustedProxies
		fiberConfig.ProxyHeader = fiber.HeaderXForwardedHost
	}

	app := fiber.New(fiberConfig)

	// Security: RequestID for audit trails
	app.Use(requestid.New())

	// Security: Strict CORS
	origins := strings.Join(cfg.App.CorsAllowedOrigins, ", ")
	if !strings.Contains(origins, cfg.App.BaseUrl) {
		origins += ", " + cfg.App.BaseUrl
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.Recovery())

	// Security: Hardened Headers
	app.Use(helmet.New(helmet.Config{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; font-src 'self' https://fonts.gstatic.com; img-src 'self' data: blob:; connect-src 'self' http://localhost:* ws://localhost:*;",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        1000,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	if cfg.App.Debug {
		app.Use(logger.New())
	}

	if len(cfg.App.BasicAuth) == 0 {
		logrus.Fatalln("APP_BASIC_AUTH is required for the admin surface; please set APP_BASIC_AUTH=<user>:<secret>[,<user2>:<secret2>] and restart.")
	}

	account := make(map[string]string)
	for _, basicAuth := range cfg.App.BasicAuth {
		ba := strings.Split(basicAuth, ":")
		if len(ba) != 2 {
			logrus.Fatalln("Basic auth is not valid, please use the following format <user>:<secret>")
		}
		account[ba[0]] = ba[1]
	}

	// System statics
	app.Static(cfg.App.BasePath+"/statics", "./"+cfg.Paths.Statics)

	basePath := cfg.App.BasePath + "/api"

	// Public reads, grouped by TTL tier. The cache headers advertise the
	// same lifetime the server cache uses for those entries.
	apiGroup := app.Group(basePath, middleware.CacheHeaders(domainCache.TTLFiveMinutes))
	slowGroup := app.Group(basePath, middleware.CacheHeaders(domainCache.TTLOneHour))
	imageGroup := app.Group(basePath, middleware.CacheHeaders(domainCache.TTLOneDay))

	// Order submission and health probes must never be cached.
	uncachedGroup := app.Group(basePath, middleware.NoStore())

	// Admin surface: BasicAuth plus no-store on every response.
	adminGroup := app.Group(basePath, basicauth.New(basicauth.Config{
		Users: account,
		Next: func(c *fiber.Ctx) bool {
			// Allow CORS preflight without credentials.
			return c.Method() == fiber.MethodOptions
		},
	}), middleware.NoStore())

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Reception of termination signal, shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] Error during Fiber shutdown: %v", err)
		}
		StopApp()
	}()

	rest.InitRestCategory(apiGroup, adminGroup, categoryUsecase)
	rest.InitRestItem(apiGroup, adminGroup, itemUsecase)
	rest.InitRestOffer(apiGroup, adminGroup, offerUsecase)
	rest.InitRestDrink(apiGroup, adminGroup, drinkUsecase)
	rest.InitRestReview(apiGroup, adminGroup, reviewUsecase)
	rest.InitRestIngredient(apiGroup, adminGroup, ingredientUsecase)
	rest.InitRestLocation(slowGroup, adminGroup, locationUsecase)
	rest.InitRestBackground(slowGroup, adminGroup, backgroundUsecase)
	rest.InitRestSettings(slowGroup, adminGroup, settingsUsecase)
	rest.InitRestImage(imageGroup, adminGroup, imageUsecase)
	rest.InitRestOrder(uncachedGroup, adminGroup, orderUsecase)
	rest.InitRestStaff(adminGroup, staffUsecase)
	rest.InitRestQRCode(adminGroup, qrcodeUsecase)
	rest.InitRestCache(adminGroup, cacheUsecase)
	rest.InitRestHealth(uncachedGroup, healthUsecase)

	// 404 handler for the API surface
	app.All(basePath+"/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "API Endpoint not found",
			"path":  c.Path(),
		})
	})

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}
