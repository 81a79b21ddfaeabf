package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/address-navigator/internal/pkg/validator"
)

const envFile = ".env"

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	YahooAPI YahooAPIConfig
	Redis    RedisConfig
	Events   EventsConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type LogConfig struct {
	Level string
}

// YahooAPIConfig - настройки клиента API поиска по почтовому индексу
type YahooAPIConfig struct {
	AppID             string `validate:"required"`
	BaseURL           string `validate:"required,url"`
	ZipcodeSearchPath string `validate:"required"`
	// RequestTimeout в секундах
	RequestTimeout int `validate:"min=1"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// EventsConfig - публикация событий поиска в Redis Stream
type EventsConfig struct {
	Enabled bool
	Stream  string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	setDefaults(v)

	// .env не обязателен: в контейнере всё приходит через окружение
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		YahooAPI: YahooAPIConfig{
			AppID:             v.GetString("YAHOO_API_APP_ID"),
			BaseURL:           v.GetString("YAHOO_API_BASE_URL"),
			ZipcodeSearchPath: v.GetString("YAHOO_API_ZIPCODE_SEARCH_PATH"),
			RequestTimeout:    v.GetInt("YAHOO_API_REQUEST_TIMEOUT"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Events: EventsConfig{
			Enabled: v.GetBool("EVENTS_ENABLED"),
			Stream:  v.GetString("EVENTS_STREAM"),
		},
	}

	if err := validator.Validate(&cfg.YahooAPI); err != nil {
		return nil, fmt.Errorf("invalid yahoo api config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("YAHOO_API_BASE_URL", "https://map.yahooapis.jp")
	v.SetDefault("YAHOO_API_ZIPCODE_SEARCH_PATH", "/search/zip/V1/zipCodeSearch")
	v.SetDefault("YAHOO_API_REQUEST_TIMEOUT", 10)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("EVENTS_ENABLED", false)
	v.SetDefault("EVENTS_STREAM", "stream:address:lookup")
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.GetAddr()
}

// GetAddr - адрес Redis в виде host:port
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetRequestTimeout - таймаут HTTP-запроса к Yahoo API
func (c *YahooAPIConfig) GetRequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// GetZipcodeSearchURL - полный адрес эндпоинта поиска по индексу
func (c *YahooAPIConfig) GetZipcodeSearchURL() string {
	return c.BaseURL + c.ZipcodeSearchPath
}
