package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Providers ProvidersConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	DestinationTTL time.Duration
}

type ProvidersConfig struct {
	GeocoderBaseURL   string
	GeocoderKey       string
	WeatherBaseURL    string
	PlacesBaseURL     string
	RestaurantBaseURL string
	RestaurantKey     string
	RequestTimeout    time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env отсутствует в контейнерных окружениях, конфиг берётся из env
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			DestinationTTL: time.Duration(viper.GetInt("DESTINATION_CACHE_TTL")) * time.Second,
		},
		Providers: ProvidersConfig{
			GeocoderBaseURL:   viper.GetString("POSITIONSTACK_URL"),
			GeocoderKey:       viper.GetString("POSITIONSTACK_KEY"),
			WeatherBaseURL:    viper.GetString("OPENMETEO_URL"),
			PlacesBaseURL:     viper.GetString("WIKIPEDIA_URL"),
			RestaurantBaseURL: viper.GetString("FOURSQUARE_URL"),
			RestaurantKey:     viper.GetString("FOURSQUARE_KEY"),
			RequestTimeout:    time.Duration(viper.GetInt("PROVIDER_REQUEST_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Providers.GeocoderBaseURL == "" {
		cfg.Providers.GeocoderBaseURL = "http://api.positionstack.com"
	}
	if cfg.Providers.WeatherBaseURL == "" {
		cfg.Providers.WeatherBaseURL = "https://api.open-meteo.com"
	}
	if cfg.Providers.PlacesBaseURL == "" {
		cfg.Providers.PlacesBaseURL = "https://en.wikipedia.org"
	}
	if cfg.Providers.RestaurantBaseURL == "" {
		cfg.Providers.RestaurantBaseURL = "https://api.foursquare.com"
	}
	if cfg.Providers.RequestTimeout == 0 {
		cfg.Providers.RequestTimeout = 10 * time.Second
	}
	if cfg.Cache.DestinationTTL == 0 {
		cfg.Cache.DestinationTTL = 5 * time.Minute
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 10
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
