package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Progress ProgressConfig `mapstructure:"progress"`
	History  HistoryConfig  `mapstructure:"history"`
	Outputs  OutputsConfig  `mapstructure:"outputs"`
}

type GeminiConfig struct {
	APIKey              string `mapstructure:"api_key"`
	TextModel           string `mapstructure:"text_model" validate:"required"`
	ImageModel          string `mapstructure:"image_model" validate:"required"`
	VideoModel          string `mapstructure:"video_model" validate:"required"`
	PollIntervalSeconds int    `mapstructure:"poll_interval_seconds" validate:"min=1"`
	MaxPollAttempts     int    `mapstructure:"max_poll_attempts" validate:"min=1"`
	RetryAttempts       uint   `mapstructure:"retry_attempts"`
	StrictVocabulary    bool   `mapstructure:"strict_vocabulary"`
}

// PollInterval returns the video poll interval as a duration.
func (c GeminiConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

type ProgressConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

type HistoryConfig struct {
	Database string `mapstructure:"database" validate:"required"`
}

type OutputsConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lingoflow")
	}

	v.SetDefault("gemini.text_model", "gemini-3-flash-preview")
	v.SetDefault("gemini.image_model", "gemini-3-pro-image-preview")
	v.SetDefault("gemini.video_model", "veo-3.1-fast-generate-preview")
	v.SetDefault("gemini.poll_interval_seconds", 5)
	v.SetDefault("gemini.max_poll_attempts", 120)
	v.SetDefault("gemini.retry_attempts", 3)
	v.SetDefault("gemini.strict_vocabulary", false)
	v.SetDefault("progress.file", filepath.Join("data", "progress.yml"))
	v.SetDefault("history.database", filepath.Join("data", "lingoflow.db"))
	v.SetDefault("outputs.directory", "outputs")

	// Bind Gemini config to environment variables only (not from config file)
	if err := v.BindEnv("gemini.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("gemini.text_model", "GEMINI_TEXT_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_TEXT_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("gemini.image_model", "GEMINI_IMAGE_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_IMAGE_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("gemini.video_model", "GEMINI_VIDEO_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_VIDEO_MODEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
