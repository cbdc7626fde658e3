package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	PropertyData PropertyDataConfig
	AuthService  AuthServiceConfig
	Redis        RedisConfig
	Cache        CacheConfig
	Map          MapConfig
	Chat         ChatConfig
	Log          LogConfig
	Worker       WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// PropertyDataConfig - connection settings for the remote property data service
// that owns persistence for all entity collections.
type PropertyDataConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
}

// AuthServiceConfig - connection settings for the remote authentication service.
type AuthServiceConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SnapshotTTL time.Duration
	SessionTTL  time.Duration
}

// MapConfig - initial viewport used before the first non-empty marker projection.
type MapConfig struct {
	DefaultCenterLat float64
	DefaultCenterLon float64
	DefaultZoom      float64
}

type ChatConfig struct {
	TypingDelay time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxBatchSize  int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		PropertyData: PropertyDataConfig{
			BaseURL:        viper.GetString("PROPERTY_DATA_BASE_URL"),
			APIKey:         viper.GetString("PROPERTY_DATA_API_KEY"),
			RequestTimeout: time.Duration(viper.GetInt("PROPERTY_DATA_TIMEOUT")) * time.Second,
		},
		AuthService: AuthServiceConfig{
			BaseURL:        viper.GetString("AUTH_SERVICE_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("AUTH_SERVICE_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SnapshotTTL: time.Duration(viper.GetInt("SNAPSHOT_CACHE_TTL")) * time.Second,
			SessionTTL:  time.Duration(viper.GetInt("SESSION_CACHE_TTL")) * time.Second,
		},
		Map: MapConfig{
			DefaultCenterLat: viper.GetFloat64("MAP_DEFAULT_CENTER_LAT"),
			DefaultCenterLon: viper.GetFloat64("MAP_DEFAULT_CENTER_LON"),
			DefaultZoom:      viper.GetFloat64("MAP_DEFAULT_ZOOM"),
		},
		Chat: ChatConfig{
			TypingDelay: time.Duration(viper.GetInt("CHAT_TYPING_DELAY_MS")) * time.Millisecond,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxBatchSize:  viper.GetInt("WORKER_MAX_BATCH_SIZE"),
		},
	}

	// Set default values if not provided
	if cfg.PropertyData.RequestTimeout == 0 {
		cfg.PropertyData.RequestTimeout = 10 * time.Second
	}
	if cfg.AuthService.RequestTimeout == 0 {
		cfg.AuthService.RequestTimeout = 10 * time.Second
	}
	if cfg.Cache.SnapshotTTL == 0 {
		cfg.Cache.SnapshotTTL = 5 * time.Minute
	}
	if cfg.Cache.SessionTTL == 0 {
		cfg.Cache.SessionTTL = 24 * time.Hour
	}
	if cfg.Chat.TypingDelay == 0 {
		cfg.Chat.TypingDelay = 1500 * time.Millisecond
	}
	if cfg.Map.DefaultZoom == 0 {
		cfg.Map.DefaultZoom = 11
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "entity-sync-workers"
	}
	if cfg.Worker.MaxBatchSize == 0 {
		cfg.Worker.MaxBatchSize = 20
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
