package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Etsy          Etsy          `mapstructure:",squash"`
	Ebay          Ebay          `mapstructure:",squash"`
	Amazon        Amazon        `mapstructure:",squash"`
	Swell         Swell         `mapstructure:",squash"`
	Sync          Sync          `mapstructure:",squash"`
	SyncScheduler SyncScheduler `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	TokenTTLMinutes int    `mapstructure:"auth_token_ttl_minutes"`
}

// Etsy holds the process-wide Etsy app keys. An empty keystring puts the
// Etsy adapter in demo mode.
type Etsy struct {
	BaseURL      string `mapstructure:"etsy_base_url"`
	ClientID     string `mapstructure:"etsy_client_id"`
	ClientSecret string `mapstructure:"etsy_client_secret"`
	RedirectURI  string `mapstructure:"etsy_redirect_uri"`
}

type Ebay struct {
	BaseURL      string `mapstructure:"ebay_base_url"`
	AuthURL      string `mapstructure:"ebay_auth_url"`
	ClientID     string `mapstructure:"ebay_client_id"`
	ClientSecret string `mapstructure:"ebay_client_secret"`
	RedirectURI  string `mapstructure:"ebay_redirect_uri"`
}

type Amazon struct {
	BaseURL      string `mapstructure:"amazon_base_url"`
	AuthURL      string `mapstructure:"amazon_auth_url"`
	ClientID     string `mapstructure:"amazon_client_id"`
	ClientSecret string `mapstructure:"amazon_client_secret"`
	RedirectURI  string `mapstructure:"amazon_redirect_uri"`
}

type Swell struct {
	BaseURL string `mapstructure:"swell_base_url"`
	StoreID string `mapstructure:"swell_store_id"`
}

// Sync bounds one SyncAll call: the default lookback window, the per-platform
// timeout, the pagination ceiling and retry policy for remote calls.
type Sync struct {
	LookbackDays           int `mapstructure:"sync_lookback_days"`
	PlatformTimeoutSeconds int `mapstructure:"sync_platform_timeout_seconds"`
	MaxPages               int `mapstructure:"sync_max_pages"`
	RetryAttempts          int `mapstructure:"sync_retry_attempts"`
	RetryBackoffMillis     int `mapstructure:"sync_retry_backoff_millis"`
}

type SyncScheduler struct {
	CronSchedule string `mapstructure:"sync_scheduler_cron"`
	Enabled      bool   `mapstructure:"sync_scheduler_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marketpulse")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 1440)

	viper.SetDefault("ETSY_BASE_URL", "https://openapi.etsy.com/v3")
	viper.SetDefault("ETSY_CLIENT_ID", "")
	viper.SetDefault("ETSY_CLIENT_SECRET", "")
	viper.SetDefault("ETSY_REDIRECT_URI", "")

	viper.SetDefault("EBAY_BASE_URL", "https://api.ebay.com")
	viper.SetDefault("EBAY_AUTH_URL", "https://auth.ebay.com/oauth2/authorize")
	viper.SetDefault("EBAY_CLIENT_ID", "")
	viper.SetDefault("EBAY_CLIENT_SECRET", "")
	viper.SetDefault("EBAY_REDIRECT_URI", "")

	viper.SetDefault("AMAZON_BASE_URL", "https://sellingpartnerapi-na.amazon.com")
	viper.SetDefault("AMAZON_AUTH_URL", "https://sellercentral.amazon.com/apps/authorize/consent")
	viper.SetDefault("AMAZON_CLIENT_ID", "")
	viper.SetDefault("AMAZON_CLIENT_SECRET", "")
	viper.SetDefault("AMAZON_REDIRECT_URI", "")

	viper.SetDefault("SWELL_BASE_URL", "https://api.swell.store")
	viper.SetDefault("SWELL_STORE_ID", "")

	viper.SetDefault("SYNC_LOOKBACK_DAYS", 30)
	viper.SetDefault("SYNC_PLATFORM_TIMEOUT_SECONDS", 45)
	viper.SetDefault("SYNC_MAX_PAGES", 10)
	viper.SetDefault("SYNC_RETRY_ATTEMPTS", 3)
	viper.SetDefault("SYNC_RETRY_BACKOFF_MILLIS", 500)

	viper.SetDefault("SYNC_SCHEDULER_CRON", "0 5 * * *")
	viper.SetDefault("SYNC_SCHEDULER_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine current directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Loaded .env from: ", location)
			return
		}
	}

	logrus.Info("No .env file found, relying on process environment")
}
