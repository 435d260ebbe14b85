package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Visits    VisitsConfig    `mapstructure:"visits"`
	ShortCode ShortCodeConfig `mapstructure:"shortcode"`
	RocketMQ  RocketMQConfig  `mapstructure:"rocketmq"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// MySQLConfig represents MySQL configuration
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig represents snapshot cache TTLs. A zero NegativeTTL disables
// negative caching of unknown codes.
type CacheConfig struct {
	LinkTTL     time.Duration `mapstructure:"link_ttl"`
	RecentTTL   time.Duration `mapstructure:"recent_ttl"`
	NegativeTTL time.Duration `mapstructure:"negative_ttl"`
}

// RateLimitConfig represents fixed-window admission limits for redirects
type RateLimitConfig struct {
	Limit  int           `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

// VisitsConfig represents the visit accountant queue configuration
type VisitsConfig struct {
	QueueSize int `mapstructure:"queue_size"`
}

// ShortCodeConfig represents short code allocation configuration
type ShortCodeConfig struct {
	Length      int `mapstructure:"length"`
	MaxAttempts int `mapstructure:"max_attempts"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// Global config instance
var cfg *Config

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Database.Redis.Password = expandEnv(cfg.Database.Redis.Password)
	cfg.Database.MySQL.DSN = expandEnv(cfg.Database.MySQL.DSN)

	return cfg, nil
}

// Get returns the global config instance
func Get() *Config {
	return cfg
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("cache.link_ttl", "300s")
	v.SetDefault("cache.recent_ttl", "30s")
	v.SetDefault("cache.negative_ttl", "0s")
	v.SetDefault("ratelimit.limit", 100)
	v.SetDefault("ratelimit.window", "60s")
	v.SetDefault("visits.queue_size", 1024)
	v.SetDefault("shortcode.length", 8)
	v.SetDefault("shortcode.max_attempts", 5)
	v.SetDefault("rocketmq.topic", "click_events")
	v.SetDefault("rocketmq.group", "relink_consumer_group")
}

// expandEnv expands environment variables in the string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envKey := s[2 : len(s)-1]
		return viper.GetString(envKey)
	}
	return s
}
