package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisLockDB   int    `mapstructure:"REDIS_LOCK_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// LockBackend selects how admissions for one workspace/date are serialized:
	// "memory" for a single instance, "redis" when several instances share the store.
	LockBackend string `mapstructure:"LOCK_BACKEND"`
	// NotificationMode is "direct" (write to MongoDB inline) or "queue" (asynq).
	NotificationMode string `mapstructure:"NOTIFICATION_MODE"`

	// Scheduling.
	CompletionSchedule string `mapstructure:"COMPLETION_SCHEDULE"`
	Timezone           string `mapstructure:"TIMEZONE"`
	BusinessOpen       string `mapstructure:"BUSINESS_OPEN"`
	BusinessClose      string `mapstructure:"BUSINESS_CLOSE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "coworking")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_LOCK_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("LOCK_BACKEND", "memory")
	viper.SetDefault("NOTIFICATION_MODE", "direct")
	viper.SetDefault("COMPLETION_SCHEDULE", "*/1 * * * *")
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("BUSINESS_OPEN", "08:00")
	viper.SetDefault("BUSINESS_CLOSE", "22:00")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
