package main

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/lingoflow/internal/progress"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	var recent int

	command := &cobra.Command{
		Use:   "stats",
		Short: "Show the daily streak and recent generations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			record, err := progress.NewYAMLRepository(cfg.Progress.File).Load()
			if err != nil {
				return fmt.Errorf("progress load > %w", err)
			}

			bold := color.New(color.Bold)
			_, _ = bold.Printf("🔥 %d day streak\n", record.Streak)
			fmt.Printf("Words learned: %d\n", record.WordsLearned)
			if !record.LastCheckIn.IsZero() {
				fmt.Printf("Last check-in: %s\n", record.LastCheckIn.Format("2006-01-02"))
			}

			db, historyRepo, err := openHistory(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			records, err := historyRepo.FindRecent(context.Background(), recent)
			if err != nil {
				return fmt.Errorf("historyRepo.FindRecent > %w", err)
			}
			if len(records) == 0 {
				return nil
			}

			fmt.Println()
			_, _ = bold.Println("Recent generations:")
			for _, r := range records {
				line := fmt.Sprintf("  %s  %-10s %s", r.CreatedAt.Format("2006-01-02 15:04"), r.Kind, r.Prompt)
				if r.OutputPath != "" {
					line += "  → " + r.OutputPath
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	command.Flags().IntVar(&recent, "recent", 10, "Number of recent generation records to show")

	return command
}
