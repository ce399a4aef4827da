package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig          `mapstructure:"database"`
	Redis    RedisConfig             `mapstructure:"redis"`
	Crawl    CrawlConfig             `mapstructure:"crawl"`
	Sources  map[string]SourceConfig `mapstructure:"sources"`
}

// CrawlConfig selects what a run crawls: which sources, and which raw
// category ids (concrete or group-level) to request from each.
type CrawlConfig struct {
	Sources    []string `mapstructure:"sources"`
	Categories []string `mapstructure:"categories"`
}

// SourceConfig carries per-source overrides of the adapter defaults.
type SourceConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	DelayMillis int    `mapstructure:"delay_millis"`
	UserAgent   string `mapstructure:"user_agent"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config.yaml file not found in current directory")
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "materialhub")
	viper.SetDefault("database.user", "materialhub_user")
	viper.SetDefault("database.password", "materialhub_pass")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.database", 0)

	viper.SetDefault("crawl.sources", []string{"ohouse"})
	viper.SetDefault("crawl.categories", []string{})
}
