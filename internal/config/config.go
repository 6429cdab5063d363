package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	AppPort           int           `mapstructure:"APP_PORT" validate:"min=1,max=65535"`
	APIBaseURL        string        `mapstructure:"API_BASE_URL" validate:"required,url"`
	APIPrefix         string        `mapstructure:"API_PREFIX" validate:"required,startswith=/"`
	DefaultAgentID    string        `mapstructure:"DEFAULT_AGENT_ID"`
	DatabasePath      string        `mapstructure:"DATABASE_PATH" validate:"required"`
	StreamIdleTimeout time.Duration `mapstructure:"STREAM_IDLE_TIMEOUT" validate:"min=0"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT" validate:"gt=0"`
	HistoryCacheSize  int           `mapstructure:"HISTORY_CACHE_SIZE" validate:"min=1"`
	NotificationLimit int           `mapstructure:"NOTIFICATION_LIMIT" validate:"min=1"`
	LogLevel          string        `mapstructure:"LOG_LEVEL" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("API_BASE_URL", "https://agent-tuyensinh-production.up.railway.app")
	viper.SetDefault("API_PREFIX", "/v1/playground")
	viper.SetDefault("DEFAULT_AGENT_ID", "")
	viper.SetDefault("DATABASE_PATH", "./data/assistant.db")
	viper.SetDefault("STREAM_IDLE_TIMEOUT", "90s")
	viper.SetDefault("REQUEST_TIMEOUT", "30s")
	viper.SetDefault("HISTORY_CACHE_SIZE", 64)
	viper.SetDefault("NOTIFICATION_LIMIT", 50)
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
