package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/sushihentaime/blogfront/internal/common"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`
	Version     string `mapstructure:"VERSION"`

	// APIBaseURL is the origin of the blog REST API every backend call goes to.
	APIBaseURL string `mapstructure:"API_BASE_URL"`
	PublicURL  string `mapstructure:"PUBLIC_URL"`

	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`
	MigrationsPath string        `mapstructure:"MIGRATIONS_PATH"`

	RateLimitEnabled bool    `mapstructure:"RATE_LIMIT_ENABLED"`
	RateLimitRPS     float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst   int     `mapstructure:"RATE_LIMIT_BURST"`

	DB struct {
		Host     string `mapstructure:"POSTGRES_HOST"`
		Port     string `mapstructure:"POSTGRES_PORT"`
		User     string `mapstructure:"POSTGRES_USER"`
		Password string `mapstructure:"POSTGRES_PASSWORD"`
		Name     string `mapstructure:"POSTGRES_DB"`
	} `mapstructure:",squash"`

	Mail struct {
		Host     string `mapstructure:"MAIL_HOST"`
		Port     int    `mapstructure:"MAIL_PORT"`
		User     string `mapstructure:"MAIL_USER"`
		Password string `mapstructure:"MAIL_PASSWORD"`
		Sender   string `mapstructure:"MAIL_SENDER"`
	} `mapstructure:",squash"`

	RabbitMQ struct {
		Host     string `mapstructure:"RABBITMQ_HOST"`
		Port     string `mapstructure:"RABBITMQ_PORT"`
		User     string `mapstructure:"RABBITMQ_USER"`
		Password string `mapstructure:"RABBITMQ_PASSWORD"`
	} `mapstructure:",squash"`
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	v.SetDefault("PORT", "4000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("VERSION", "1.0.0")
	v.SetDefault("API_BASE_URL", "http://localhost:3000/api/v1")
	v.SetDefault("PUBLIC_URL", "http://localhost:4000")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_RPS", 4)
	v.SetDefault("RATE_LIMIT_BURST", 8)
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("RABBITMQ_PORT", "5672")
	v.SetDefault("MAIL_PORT", 587)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) addr() string {
	return ":" + c.Port
}

// dsn is empty when no database is configured; sessions then live in memory only.
func (c *Config) dsn() string {
	if c.DB.Host == "" {
		return ""
	}

	return common.DSN(c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name)
}

func (c *Config) rabbitURI() string {
	if c.RabbitMQ.Host == "" {
		return ""
	}

	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}
