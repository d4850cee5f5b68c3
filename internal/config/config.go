package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Catalog   CatalogConfig
	Admin     AdminConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port  string
	Host  string
	Debug bool
}

type MongoDBConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

type CatalogConfig struct {
	Path string
}

type AdminConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

// LoadConfig loads configuration from environment variables and a .env file.
// MONGO_URI has no default and is deliberately not required here: the service
// must keep serving the catalog endpoint when the datastore is unconfigured,
// so a missing URI only surfaces on first datastore use.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SECRET_KEY", "change_this_in_production")
	viper.SetDefault("DB_NAME", "mydatabase")
	viper.SetDefault("COLLECTION_NAME", "submissions")
	viper.SetDefault("MONGO_TIMEOUT", 5)
	viper.SetDefault("DATA_FILE", "data.json")
	viper.SetDefault("DEBUG", true)
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ADMIN_TOKEN_TTL", 60)
	viper.SetDefault("RATE_LIMIT_RPS", 5.0)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)

	cfg := &Config{
		Server: ServerConfig{
			Port:  viper.GetString("PORT"),
			Host:  viper.GetString("SERVER_HOST"),
			Debug: viper.GetBool("DEBUG"),
		},
		MongoDB: MongoDBConfig{
			URI:        viper.GetString("MONGO_URI"),
			Database:   viper.GetString("DB_NAME"),
			Collection: viper.GetString("COLLECTION_NAME"),
			Timeout:    time.Duration(viper.GetInt("MONGO_TIMEOUT")) * time.Second,
		},
		Catalog: CatalogConfig{
			Path: viper.GetString("DATA_FILE"),
		},
		Admin: AdminConfig{
			SecretKey: viper.GetString("SECRET_KEY"),
			TokenTTL:  time.Duration(viper.GetInt("ADMIN_TOKEN_TTL")) * time.Minute,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
	}

	return cfg, nil
}
