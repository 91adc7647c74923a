package main

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/lingoflow/internal/cli"
	"github.com/at-ishikawa/lingoflow/internal/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newStudyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "study",
		Short: "Start an interactive study session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := context.Background()
			client, err := newGeminiClient(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			db, historyRepo, err := openHistory(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			model, err := cli.NewModel(cli.Session{
				Client:       client,
				ProgressRepo: progress.NewYAMLRepository(cfg.Progress.File),
				HistoryRepo:  historyRepo,
				OutputsDir:   cfg.Outputs.Directory,
			})
			if err != nil {
				return err
			}

			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("tea.Program.Run > %w", err)
			}
			return nil
		},
	}
}
