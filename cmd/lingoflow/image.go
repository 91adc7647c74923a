package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/at-ishikawa/lingoflow/internal/generation"
	"github.com/at-ishikawa/lingoflow/internal/history"
	"github.com/spf13/cobra"
)

func newImageCommand() *cobra.Command {
	var prompt string
	size := imageSizeFlag(generation.ImageSize1K)
	var outputPath string

	command := &cobra.Command{
		Use:   "image [prompt]",
		Short: "Generate a mnemonic image from a prompt",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				prompt = args[0]
			}
			request := generation.ImageRequest{Prompt: prompt, Size: generation.ImageSize(size)}
			if err := request.Validate(); err != nil {
				return err
			}

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

			fmt.Println("Generating image...")
			image, err := client.GenerateImage(ctx, request)
			if err != nil {
				return fmt.Errorf("client.GenerateImage > %w", err)
			}

			if outputPath == "" {
				outputPath = filepath.Join(cfg.Outputs.Directory, fmt.Sprintf("lingoflow-%d.png", time.Now().UnixMilli()))
			}
			if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
				return fmt.Errorf("os.MkdirAll > %w", err)
			}
			if err := os.WriteFile(outputPath, image.Data, 0o644); err != nil {
				return fmt.Errorf("os.WriteFile > %w", err)
			}
			fmt.Printf("Saved %s image to %s\n", image.MIMEType, outputPath)

			db, historyRepo, err := openHistory(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()
			return historyRepo.Create(ctx, &history.GenerationRecord{
				Kind:       history.KindImage,
				Prompt:     request.Prompt,
				Detail:     "size=" + string(request.Size),
				OutputPath: outputPath,
			})
		},
	}

	command.Flags().StringVar(&prompt, "prompt", "", "Image description")
	command.Flags().Var(&size, "size", "Output resolution. Possible values are [1K 2K 4K]")
	command.Flags().StringVar(&outputPath, "out", "", "Output PNG path (defaults under the outputs directory)")

	return command
}
