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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Ozon           Ozon           `mapstructure:",squash"`
	CollectionSync CollectionSync `mapstructure:",squash"`
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

// Ozon holds the Performance API endpoint and the request limits the API
// imposes on statistics exports.
type Ozon struct {
	BaseURL string `mapstructure:"ozon_base_url"`
	// DayLimit and CampaignLimit bound one async report request.
	DayLimit      int `mapstructure:"ozon_day_limit"`
	CampaignLimit int `mapstructure:"ozon_campaign_limit"`
	// RetryAttempts/RetryDelaySeconds drive the 429 backoff policy.
	RetryAttempts     int `mapstructure:"ozon_retry_attempts"`
	RetryDelaySeconds int `mapstructure:"ozon_retry_delay_seconds"`
	// PollIntervalSeconds/PollMaxAttempts bound the report readiness poll.
	PollIntervalSeconds   int `mapstructure:"ozon_poll_interval_seconds"`
	PollMaxAttempts       int `mapstructure:"ozon_poll_max_attempts"`
	RequestTimeoutSeconds int `mapstructure:"ozon_request_timeout_seconds"`
}

// CollectionSync configures the scheduled collection run.
type CollectionSync struct {
	CronSchedule string `mapstructure:"collection_sync_cron"`
	Enabled      bool   `mapstructure:"collection_sync_enabled"`
	// LookbackDays is the fallback window when the store has no rows yet.
	LookbackDays   int    `mapstructure:"collection_sync_lookback_days"`
	OutputDir      string `mapstructure:"collection_sync_output_dir"`
	RemoveArchives bool   `mapstructure:"collection_sync_remove_archives"`
	// InsertEnabled gates the append into analytics_data; the delta CSV
	// is always written.
	InsertEnabled bool `mapstructure:"collection_sync_insert_enabled"`

	// Per report kind collection flags.
	Statistics  bool `mapstructure:"collection_sync_statistics"`
	Phrases     bool `mapstructure:"collection_sync_phrases"`
	Attribution bool `mapstructure:"collection_sync_attribution"`
	Media       bool `mapstructure:"collection_sync_media"`
	Product     bool `mapstructure:"collection_sync_product"`
	Daily       bool `mapstructure:"collection_sync_daily"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/market")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("OZON_BASE_URL", "https://performance.ozon.ru")
	viper.SetDefault("OZON_DAY_LIMIT", 5)
	viper.SetDefault("OZON_CAMPAIGN_LIMIT", 5)
	viper.SetDefault("OZON_RETRY_ATTEMPTS", 5)
	viper.SetDefault("OZON_RETRY_DELAY_SECONDS", 3)
	viper.SetDefault("OZON_POLL_INTERVAL_SECONDS", 1)
	viper.SetDefault("OZON_POLL_MAX_ATTEMPTS", 300)
	viper.SetDefault("OZON_REQUEST_TIMEOUT_SECONDS", 60)

	viper.SetDefault("COLLECTION_SYNC_CRON", "0 2 * * *")
	viper.SetDefault("COLLECTION_SYNC_ENABLED", false)
	viper.SetDefault("COLLECTION_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("COLLECTION_SYNC_OUTPUT_DIR", "./data")
	viper.SetDefault("COLLECTION_SYNC_REMOVE_ARCHIVES", true)
	viper.SetDefault("COLLECTION_SYNC_INSERT_ENABLED", false)

	viper.SetDefault("COLLECTION_SYNC_STATISTICS", true)
	viper.SetDefault("COLLECTION_SYNC_PHRASES", false)
	viper.SetDefault("COLLECTION_SYNC_ATTRIBUTION", false)
	viper.SetDefault("COLLECTION_SYNC_MEDIA", false)
	viper.SetDefault("COLLECTION_SYNC_PRODUCT", false)
	viper.SetDefault("COLLECTION_SYNC_DAILY", false)

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
		logrus.Info("No .env readable by viper, relying on environment: ", err)
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
		logrus.Warn("Could not determine the working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Loaded .env from: ", location)
			return
		}
	}

	logrus.Info("No .env file found, using process environment only")
}
