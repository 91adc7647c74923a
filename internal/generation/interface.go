// Package generation provides domain models and the client contract for
// AI generation operations.
package generation

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=interface.go -destination=../mocks/generation/mock_client.go -package=mock_generation

// Client interface defines the methods for AI generation operations
type Client interface {
	GenerateVocabulary(ctx context.Context, params VocabularyRequest) ([]WordEntry, error)
	GenerateImage(ctx context.Context, params ImageRequest) (Image, error)
	GenerateVideo(ctx context.Context, params VideoRequest) (Video, error)
}

// WordEntry represents a single vocabulary flashcard entry.
// Entries are immutable once parsed from a provider response.
type WordEntry struct {
	Word          string   `json:"word"`
	Pronunciation string   `json:"pronunciation,omitempty"` // IPA pronunciation guide
	DefinitionEN  string   `json:"definition_en"`
	DefinitionCN  string   `json:"definition_cn"`
	Example       string   `json:"example"`
	Synonyms      []string `json:"synonyms"`
}

// Level is a standardized-test vocabulary difficulty tier.
type Level string

const (
	LevelCET4  Level = "CET-4"
	LevelCET6  Level = "CET-6"
	LevelIELTS Level = "IELTS"
	LevelGRE   Level = "GRE"
)

// Levels lists every supported exam level in display order.
func Levels() []Level {
	return []Level{LevelCET4, LevelCET6, LevelIELTS, LevelGRE}
}

// ParseLevel converts a user-supplied string into a Level.
func ParseLevel(s string) (Level, error) {
	for _, level := range Levels() {
		if strings.EqualFold(s, string(level)) {
			return level, nil
		}
	}
	return "", &ValidationError{Field: "level", Reason: fmt.Sprintf("unknown exam level %q, expected one of CET-4, CET-6, IELTS, GRE", s)}
}

// ImageSize is the requested resolution tier for image generation.
type ImageSize string

const (
	ImageSize1K ImageSize = "1K"
	ImageSize2K ImageSize = "2K"
	ImageSize4K ImageSize = "4K"
)

// ParseImageSize converts a user-supplied string into an ImageSize.
func ParseImageSize(s string) (ImageSize, error) {
	switch strings.ToUpper(s) {
	case "1K":
		return ImageSize1K, nil
	case "2K":
		return ImageSize2K, nil
	case "4K":
		return ImageSize4K, nil
	}
	return "", &ValidationError{Field: "size", Reason: fmt.Sprintf("unknown image size %q, expected 1K, 2K or 4K", s)}
}

// AspectRatio is the frame shape for video generation.
type AspectRatio string

const (
	AspectLandscape AspectRatio = "16:9"
	AspectPortrait  AspectRatio = "9:16"
)

// ParseAspectRatio converts a user-supplied string into an AspectRatio.
func ParseAspectRatio(s string) (AspectRatio, error) {
	switch s {
	case string(AspectLandscape):
		return AspectLandscape, nil
	case string(AspectPortrait):
		return AspectPortrait, nil
	}
	return "", &ValidationError{Field: "aspect", Reason: fmt.Sprintf("unknown aspect ratio %q, expected 16:9 or 9:16", s)}
}

// Image is an inline generated image asset.
type Image struct {
	MIMEType string
	Data     []byte
}

// Video is a downloaded generated video asset.
type Video struct {
	MIMEType string
	Data     []byte
}

// VocabularyRequest holds parameters for a vocabulary batch request.
type VocabularyRequest struct {
	Level Level
	// Count is the number of entries to request. Zero means DefaultBatchSize.
	Count int
}

// ImageRequest holds parameters for a single image generation.
type ImageRequest struct {
	Prompt string
	Size   ImageSize
}

// VideoRequest holds parameters for a video generation job.
// At least one of Prompt or ReferenceImage must be set.
type VideoRequest struct {
	Prompt string
	// ReferenceImage is a base64-encoded image, optionally carrying a
	// data URI prefix which the client strips before transmission.
	ReferenceImage string
	AspectRatio    AspectRatio
}

// Validate checks an image request before any network call is made.
func (r ImageRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return &ValidationError{Field: "prompt", Reason: "prompt must not be empty"}
	}
	return nil
}

// Validate checks a video request before any network call is made.
func (r VideoRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" && r.ReferenceImage == "" {
		return &ValidationError{Field: "prompt", Reason: "either a prompt or a reference image is required"}
	}
	if r.AspectRatio != AspectLandscape && r.AspectRatio != AspectPortrait {
		return &ValidationError{Field: "aspect", Reason: fmt.Sprintf("unknown aspect ratio %q", r.AspectRatio)}
	}
	return nil
}

const (
	DefaultBatchSize        = 5
	DefaultMaxRetryAttempts = 3
)
