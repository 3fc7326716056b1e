package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Seed sources for the entity catalog.
const (
	SeedSourceStatic = "static"
	SeedSourceMongo  = "mongo"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Timing   TimingConfig   `mapstructure:"timing"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	App      AppConfig      `mapstructure:"app"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// JWTConfig defines the session token settings.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// TimingConfig holds the simulated latencies and notice lifetimes.
type TimingConfig struct {
	ToastTTL            time.Duration `mapstructure:"toast_ttl"`
	NotificationTTL     time.Duration `mapstructure:"notification_ttl"`
	PlanGenerationDelay time.Duration `mapstructure:"plan_generation_delay"`
	CoachReplyDelay     time.Duration `mapstructure:"coach_reply_delay"`
	PlanDeliveryDelay   time.Duration `mapstructure:"plan_delivery_delay"`
}

// SeedConfig selects where the catalog's seed data comes from.
type SeedConfig struct {
	Source string `mapstructure:"source"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// S3Config configures presigned media uploads. An empty bucket disables them.
type S3Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	UseSSL          bool          `mapstructure:"use_ssl"`
	PresignTTL      time.Duration `mapstructure:"presign_ttl"`
}

type AppConfig struct {
	DefaultLanguage string `mapstructure:"default_language"`
}

// LoadConfig reads configuration from config.yaml in path and from
// environment variables (server.address -> SERVER_ADDRESS).
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Running on defaults and env vars only.
		err = nil
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	if err = config.Validate(); err != nil {
		return
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", "24h")

	v.SetDefault("timing.toast_ttl", "3s")
	v.SetDefault("timing.notification_ttl", "5s")
	v.SetDefault("timing.plan_generation_delay", "1s")
	v.SetDefault("timing.coach_reply_delay", "1500ms")
	v.SetDefault("timing.plan_delivery_delay", "2s")

	v.SetDefault("seed.source", SeedSourceStatic)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "wellness_app")

	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.presign_ttl", "15m")

	v.SetDefault("app.default_language", "en")
}

// Validate checks the values the server cannot start without.
func (c Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret is required")
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("jwt.expiration must be positive, got %s", c.JWT.Expiration)
	}
	switch c.Seed.Source {
	case SeedSourceStatic, SeedSourceMongo:
	default:
		return fmt.Errorf("seed.source must be %q or %q, got %q", SeedSourceStatic, SeedSourceMongo, c.Seed.Source)
	}
	t := c.Timing
	for name, d := range map[string]time.Duration{
		"timing.toast_ttl":             t.ToastTTL,
		"timing.notification_ttl":      t.NotificationTTL,
		"timing.plan_generation_delay": t.PlanGenerationDelay,
		"timing.coach_reply_delay":     t.CoachReplyDelay,
		"timing.plan_delivery_delay":   t.PlanDeliveryDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}
	return nil
}
