package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/at-ishikawa/lingoflow/internal/generation"
	"github.com/at-ishikawa/lingoflow/internal/history"
	"github.com/spf13/cobra"
)

// maxReferenceImageBytes limits reference image uploads for video generation.
const maxReferenceImageBytes = 5 * 1024 * 1024

func newVideoCommand() *cobra.Command {
	var prompt string
	var imagePath string
	aspect := aspectRatioFlag(generation.AspectLandscape)
	var outputPath string

	command := &cobra.Command{
		Use:   "video",
		Short: "Generate a short video from a prompt or a reference image",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := generation.VideoRequest{
				Prompt:      prompt,
				AspectRatio: generation.AspectRatio(aspect),
			}
			if imagePath != "" {
				encoded, err := encodeReferenceImage(imagePath)
				if err != nil {
					return err
				}
				request.ReferenceImage = encoded
			}
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

			fmt.Println("Generating video. This can take a few minutes...")
			video, err := client.GenerateVideo(ctx, request)
			if err != nil {
				return fmt.Errorf("client.GenerateVideo > %w", err)
			}

			if outputPath == "" {
				outputPath = filepath.Join(cfg.Outputs.Directory, fmt.Sprintf("veo-creation-%d.mp4", time.Now().UnixMilli()))
			}
			if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
				return fmt.Errorf("os.MkdirAll > %w", err)
			}
			if err := os.WriteFile(outputPath, video.Data, 0o644); err != nil {
				return fmt.Errorf("os.WriteFile > %w", err)
			}
			fmt.Printf("Saved video to %s\n", outputPath)

			db, historyRepo, err := openHistory(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()
			return historyRepo.Create(ctx, &history.GenerationRecord{
				Kind:       history.KindVideo,
				Prompt:     request.Prompt,
				Detail:     "aspect=" + string(request.AspectRatio),
				OutputPath: outputPath,
			})
		},
	}

	command.Flags().StringVar(&prompt, "prompt", "", "Motion description (optional with --image)")
	command.Flags().StringVar(&imagePath, "image", "", "Reference image path (max 5 MB)")
	command.Flags().Var(&aspect, "aspect", "Aspect ratio. Possible values are [16:9 9:16]")
	command.Flags().StringVar(&outputPath, "out", "", "Output MP4 path (defaults under the outputs directory)")

	return command
}

// encodeReferenceImage enforces the upload size limit before reading the file.
func encodeReferenceImage(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("os.Stat(%s) > %w", path, err)
	}
	if info.Size() > maxReferenceImageBytes {
		return "", fmt.Errorf("reference image %s is %d bytes, the limit is 5 MB", path, info.Size())
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(contents), nil
}
