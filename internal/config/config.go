package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Analytics AnalyticsConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name            string
	Env             string
	Port            string
	Debug           bool
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	Timezone    string
	AutoMigrate bool
}

type RedisConfig struct {
	URL string
}

// AnalyticsConfig controls the overview cache and pipeline
type AnalyticsConfig struct {
	CacheDriver    string // memory | redis
	CacheTTL       time.Duration
	CachePrefix    string
	CoalesceMisses bool
	SlowThreshold  time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	setDefaults()

	return &Config{
		App: AppConfig{
			Name:            viper.GetString("APP_NAME"),
			Env:             viper.GetString("APP_ENV"),
			Port:            viper.GetString("APP_PORT"),
			Debug:           viper.GetBool("APP_DEBUG"),
			ShutdownTimeout: time.Duration(viper.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			Name:        viper.GetString("DB_NAME"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASSWORD"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			Timezone:    viper.GetString("DB_TIMEZONE"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			URL: viper.GetString("REDIS_URL"),
		},
		Analytics: AnalyticsConfig{
			CacheDriver:    viper.GetString("ANALYTICS_CACHE_DRIVER"),
			CacheTTL:       time.Duration(viper.GetInt("ANALYTICS_CACHE_TTL_SECONDS")) * time.Second,
			CachePrefix:    viper.GetString("ANALYTICS_CACHE_PREFIX"),
			CoalesceMisses: viper.GetBool("ANALYTICS_COALESCE_MISSES"),
			SlowThreshold:  time.Duration(viper.GetInt("ANALYTICS_SLOW_MS")) * time.Millisecond,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

func setDefaults() {
	viper.SetDefault("APP_NAME", "autocare-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "autocare")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("DB_AUTO_MIGRATE", false)
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("ANALYTICS_CACHE_DRIVER", "memory")
	viper.SetDefault("ANALYTICS_CACHE_TTL_SECONDS", 90)
	viper.SetDefault("ANALYTICS_CACHE_PREFIX", "analytics:overview:")
	viper.SetDefault("ANALYTICS_COALESCE_MISSES", false)
	viper.SetDefault("ANALYTICS_SLOW_MS", 500)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
