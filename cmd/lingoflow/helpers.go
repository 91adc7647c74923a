package main

import (
	"context"
	"fmt"
	"os"

	"github.com/at-ishikawa/lingoflow/internal/config"
	"github.com/at-ishikawa/lingoflow/internal/credential"
	"github.com/at-ishikawa/lingoflow/internal/generation/gemini"
	"github.com/at-ishikawa/lingoflow/internal/history"
	"github.com/jmoiron/sqlx"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newGeminiClient ensures an API key is available before any paid call and
// builds the provider client from the configuration.
func newGeminiClient(ctx context.Context, cfg *config.Config) (*gemini.Client, error) {
	apiKey, err := credential.Ensure(ctx, cfg.Gemini.APIKey, credential.NewStdinPrompter(os.Stdin, os.Stderr))
	if err != nil {
		return nil, err
	}

	return gemini.NewClient(gemini.Config{
		APIKey:           apiKey,
		TextModel:        cfg.Gemini.TextModel,
		ImageModel:       cfg.Gemini.ImageModel,
		VideoModel:       cfg.Gemini.VideoModel,
		MaxRetryAttempts: cfg.Gemini.RetryAttempts,
		PollInterval:     cfg.Gemini.PollInterval(),
		MaxPollAttempts:  cfg.Gemini.MaxPollAttempts,
		StrictVocabulary: cfg.Gemini.StrictVocabulary,
	}), nil
}

func openHistory(cfg *config.Config) (*sqlx.DB, *history.DBRepository, error) {
	db, err := history.Open(cfg.History.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("history.Open > %w", err)
	}
	return db, history.NewDBRepository(db), nil
}
