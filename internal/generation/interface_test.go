package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Level
		wantError bool
	}{
		{
			name:  "CET-4",
			input: "CET-4",
			want:  LevelCET4,
		},
		{
			name:  "case insensitive",
			input: "ielts",
			want:  LevelIELTS,
		},
		{
			name:  "GRE",
			input: "gre",
			want:  LevelGRE,
		},
		{
			name:      "unknown level",
			input:     "TOEFL",
			wantError: true,
		},
		{
			name:      "empty",
			input:     "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseImageSize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      ImageSize
		wantError bool
	}{
		{name: "1K", input: "1K", want: ImageSize1K},
		{name: "lowercase", input: "2k", want: ImageSize2K},
		{name: "4K", input: "4K", want: ImageSize4K},
		{name: "unknown", input: "8K", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseImageSize(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ImageRequest
		wantError bool
	}{
		{
			name:    "valid prompt",
			request: ImageRequest{Prompt: "a glowing butterfly", Size: ImageSize1K},
		},
		{
			name:      "empty prompt",
			request:   ImageRequest{Prompt: "", Size: ImageSize1K},
			wantError: true,
		},
		{
			name:      "whitespace only prompt",
			request:   ImageRequest{Prompt: "   \t\n", Size: ImageSize2K},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVideoRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   VideoRequest
		wantError bool
	}{
		{
			name:    "prompt only",
			request: VideoRequest{Prompt: "a word taking flight", AspectRatio: AspectLandscape},
		},
		{
			name:    "reference image only",
			request: VideoRequest{ReferenceImage: "AAAA", AspectRatio: AspectPortrait},
		},
		{
			name:      "neither prompt nor image",
			request:   VideoRequest{AspectRatio: AspectLandscape},
			wantError: true,
		},
		{
			name:      "whitespace prompt and no image",
			request:   VideoRequest{Prompt: "  ", AspectRatio: AspectLandscape},
			wantError: true,
		},
		{
			name:      "invalid aspect ratio",
			request:   VideoRequest{Prompt: "something", AspectRatio: "4:3"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}
