package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the service settings read from the environment.
// Tags used:
// - mapstructure: environment variable name
// - default: value used when the variable is unset
// - required: if "true", loading fails when the value is empty
type Config struct {
	Environment string `mapstructure:"APP_ENV" default:"development"`
	LogLevel    string `mapstructure:"LOG_LEVEL" default:"info"`
	HTTPPort    string `mapstructure:"HTTP_PORT" default:"8080"`

	DBHost     string `mapstructure:"DB_HOST" default:"localhost"`
	DBPort     string `mapstructure:"DB_PORT" default:"5432"`
	DBUser     string `mapstructure:"DB_USER" required:"true"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME" required:"true"`
	DBSslMode  string `mapstructure:"DB_SSLMODE" default:"disable"`

	// RedisURL enables the region demand cache; empty reads demand straight from postgres.
	RedisURL       string        `mapstructure:"REDIS_URL"`
	DemandCacheTTL time.Duration `mapstructure:"DEMAND_CACHE_TTL" default:"5m"`

	PricingCurrency string `mapstructure:"PRICING_CURRENCY" default:"USD"`

	// SESFromAddress enables the email channel; empty leaves SMS as the only channel.
	AWSRegion      string `mapstructure:"AWS_REGION" default:"us-east-1"`
	SESFromAddress string `mapstructure:"SES_FROM_ADDRESS"`

	NotificationDispatchSchedule  string `mapstructure:"NOTIFICATION_DISPATCH_SCHEDULE" default:"@every 30s"`
	NotificationDispatchBatchSize int    `mapstructure:"NOTIFICATION_DISPATCH_BATCH_SIZE" default:"50"`
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads dir/.env when present and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(dir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	var cfg Config
	if err := bindEnv(v, reflect.TypeOf(cfg)); err != nil {
		return Config{}, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := validateRequired(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// bindEnv registers every tagged field with viper together with its default.
func bindEnv(v *viper.Viper, t reflect.Type) error {
	for i := range t.NumField() {
		field := t.Field(i)
		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
		if def := field.Tag.Get("default"); def != "" {
			v.SetDefault(key, def)
		}
	}
	return nil
}

func validateRequired(cfg Config) error {
	val := reflect.ValueOf(cfg)
	t := val.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		if field.Tag.Get("required") != "true" {
			continue
		}
		if val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
