package config

import (
	"path/filepath"
	"strings"
	"time"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App      AppConfig
	Paths    PathsConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Whatsapp WhatsappConfig
	Workers  WorkerPoolConfig
}

type AppConfig struct {
	Version            string
	Port               string
	Debug              bool
	Environment        string
	BasicAuth          []string
	BasePath           string
	TrustedProxies     []string
	BaseUrl            string
	CorsAllowedOrigins []string
	ServerID           string
}

type PathsConfig struct {
	BaseDir     string
	Statics     string
	Images      string
	Storages    string
	ClientCache string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string // File path for SQLite, DB name for Postgres
}

// CacheConfig drives the read-through cache layer. Backend selects between
// the in-process store ("memory") and the shared Valkey store ("valkey");
// both sit behind the same cache.Store contract.
type CacheConfig struct {
	Backend          string
	DefaultTTL       time.Duration
	ImageTTL         time.Duration
	ValkeyAddress    string
	ValkeyPassword   string
	ValkeyDB         int
	ValkeyKeyPrefix  string
	RevalidateURL    string
	RevalidateSecret string
}

type WhatsappConfig struct {
	OrderNumber string // international format, handoff target for new orders
	Currency    string
}

type WorkerPoolConfig struct {
	Size      int
	QueueSize int
}

// Global provides access to the loaded configuration globally.
var Global *Config

// LoadConfig loads configuration from environment variables or defaults.
func LoadConfig() (*Config, error) {
	baseDir := getEnv("APP_BASE_DIR", "storages")

	var basicAuth []string
	if v := getEnv("APP_BASIC_AUTH", ""); v != "" {
		basicAuth = strings.Split(v, ",")
	}

	corsOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if v := getEnv("APP_CORS_ALLOWED_ORIGINS", ""); v != "" {
		corsOrigins = strings.Split(v, ",")
	}

	appCfg := AppConfig{
		Version:            "v1.4.0",
		Port:               getEnv("APP_PORT", "3000"),
		Debug:              getEnvBool("APP_DEBUG", false),
		Environment:        getEnv("APP_ENV", "development"),
		BasicAuth:          basicAuth,
		BasePath:           getEnv("APP_BASE_PATH", ""),
		BaseUrl:            getEnv("APP_BASE_URL", "http://localhost:3000"),
		CorsAllowedOrigins: corsOrigins,
		ServerID:           getEnv("SERVER_ID", ""),
	}
	if v := getEnv("APP_TRUSTED_PROXIES", ""); v != "" {
		appCfg.TrustedProxies = strings.Split(v, ",")
	}

	statics := getEnv("PATH_STATICS", "statics")
	pathsCfg := PathsConfig{
		BaseDir:     baseDir,
		Statics:     statics,
		Images:      getEnv("PATH_IMAGES", filepath.Join(statics, "images")),
		Storages:    baseDir,
		ClientCache: getEnv("PATH_CLIENT_CACHE", filepath.Join(baseDir, "client-cache")),
	}

	dbCfg := DatabaseConfig{
		Driver:   getEnv("DB_DRIVER", "sqlite"),
		Name:     getEnv("DB_NAME", filepath.Join(pathsCfg.Storages, "menu.db")),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
	}

	cacheCfg := CacheConfig{
		Backend:          getEnv("CACHE_BACKEND", "memory"),
		DefaultTTL:       getEnvDuration("CACHE_DEFAULT_TTL", 5*time.Minute),
		ImageTTL:         getEnvDuration("CACHE_IMAGE_TTL", 24*time.Hour),
		ValkeyAddress:    getEnv("VALKEY_ADDRESS", "localhost:6379"),
		ValkeyPassword:   getEnv("VALKEY_PASSWORD", ""),
		ValkeyDB:         getEnvInt("VALKEY_DB", 0),
		ValkeyKeyPrefix:  getEnv("VALKEY_KEY_PREFIX", "menurwad:"),
		RevalidateURL:    getEnv("REVALIDATE_WEBHOOK_URL", ""),
		RevalidateSecret: getEnv("REVALIDATE_WEBHOOK_SECRET", ""),
	}

	waCfg := WhatsappConfig{
		OrderNumber: getEnv("WHATSAPP_ORDER_NUMBER", ""),
		Currency:    getEnv("ORDER_CURRENCY", "SAR"),
	}

	cfg := &Config{
		App:      appCfg,
		Paths:    pathsCfg,
		Database: dbCfg,
		Cache:    cacheCfg,
		Whatsapp: waCfg,
		Workers: WorkerPoolConfig{
			Size:      getEnvInt("REVALIDATE_WORKER_POOL_SIZE", 4),
			QueueSize: getEnvInt("REVALIDATE_WORKER_QUEUE_SIZE", 256),
		},
	}

	Global = cfg
	return cfg, nil
}
