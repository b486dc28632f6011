package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// S3Config covers avatar image storage. Endpoint is optional and only
// needed for S3-compatible providers (MinIO, Spaces).
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// EmailConfig covers the SES sender used by the reminder job.
type EmailConfig struct {
	Region       string `mapstructure:"region"`
	Sender       string `mapstructure:"sender"`
	DashboardURL string `mapstructure:"dashboard_url"`
}

// ReminderConfig controls the daily reminder job.
type ReminderConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Hour     int    `mapstructure:"hour"`     // local hour of day, 0-23
	Timezone string `mapstructure:"timezone"` // IANA name, e.g. "Europe/Kyiv"
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override the file, e.g. server.address
	// becomes SERVER_ADDRESS and jwt.expiration becomes JWT_EXPIRATION.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "fittrack")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("jwt.expiration", "720h") // 30 days, matches client session length
	viper.SetDefault("email.region", "us-east-1")
	viper.SetDefault("email.dashboard_url", "http://localhost:3000")
	viper.SetDefault("reminder.enabled", true)
	viper.SetDefault("reminder.hour", 9)
	viper.SetDefault("reminder.timezone", "UTC")

	err = viper.ReadInConfig()
	// Missing config file is fine: defaults plus env vars may be enough.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
