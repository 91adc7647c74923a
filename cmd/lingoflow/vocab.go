package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/at-ishikawa/lingoflow/internal/generation"
	"github.com/at-ishikawa/lingoflow/internal/history"
	"github.com/at-ishikawa/lingoflow/internal/pdf"
	"github.com/at-ishikawa/lingoflow/internal/progress"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVocabCommand() *cobra.Command {
	level := levelFlag(generation.LevelCET4)
	var pdfOutput string

	command := &cobra.Command{
		Use:   "vocab",
		Short: "Generate a vocabulary batch for an exam level",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedLevel := generation.Level(level)

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

			entries, err := client.GenerateVocabulary(ctx, generation.VocabularyRequest{Level: parsedLevel})
			if err != nil {
				return fmt.Errorf("client.GenerateVocabulary > %w", err)
			}
			if len(entries) == 0 {
				fmt.Println("The provider returned no words. Please retry.")
				return nil
			}

			printWordEntries(parsedLevel, entries)

			if err := recordWordsLearned(cfg.Progress.File, len(entries)); err != nil {
				return err
			}

			db, historyRepo, err := openHistory(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()
			if err := historyRepo.Create(ctx, &history.GenerationRecord{
				Kind:   history.KindVocabulary,
				Prompt: fmt.Sprintf("%d word batch", len(entries)),
				Detail: "level=" + string(parsedLevel),
			}); err != nil {
				return fmt.Errorf("historyRepo.Create > %w", err)
			}

			if pdfOutput != "" {
				pdfPath, err := pdf.WriteDeck(pdfOutput, parsedLevel, entries)
				if err != nil {
					return fmt.Errorf("pdf.WriteDeck > %w", err)
				}
				fmt.Printf("Exported the deck to %s\n", pdfPath)
			}
			return nil
		},
	}

	command.Flags().Var(&level, "level", fmt.Sprintf("Exam level. Possible values are %v", generation.Levels()))
	command.Flags().StringVar(&pdfOutput, "pdf", "", "Export the batch as a PDF deck via this markdown path")

	return command
}

func printWordEntries(level generation.Level, entries []generation.WordEntry) {
	bold := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)
	label := color.New(color.FgYellow)

	fmt.Printf("%s vocabulary batch (%d words)\n\n", level, len(entries))
	for i, entry := range entries {
		_, _ = bold.Printf("%d. %s", i+1, entry.Word)
		if entry.Pronunciation != "" {
			_, _ = faint.Printf("  %s", entry.Pronunciation)
		}
		fmt.Println()
		_, _ = label.Print("   Definition: ")
		fmt.Println(entry.DefinitionEN)
		_, _ = label.Print("   释义: ")
		fmt.Println(entry.DefinitionCN)
		_, _ = label.Print("   Example: ")
		fmt.Println(entry.Example)
		if len(entry.Synonyms) > 0 {
			_, _ = label.Print("   Synonyms: ")
			fmt.Println(strings.Join(entry.Synonyms, ", "))
		}
		fmt.Println()
	}
}

// recordWordsLearned checks in for today and adds the batch size to the
// lifetime word counter.
func recordWordsLearned(progressFile string, count int) error {
	repo := progress.NewYAMLRepository(progressFile)
	record, err := repo.Load()
	if err != nil {
		return fmt.Errorf("repo.Load > %w", err)
	}
	record = progress.CheckIn(record, time.Now())
	record = progress.AddWordsLearned(record, count)
	if err := repo.Save(record); err != nil {
		return fmt.Errorf("repo.Save > %w", err)
	}
	return nil
}
