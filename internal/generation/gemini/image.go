package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/at-ishikawa/lingoflow/internal/generation"
)

// GenerateImage implements the generation.Client interface
func (client *Client) GenerateImage(
	ctx context.Context,
	params generation.ImageRequest,
) (generation.Image, error) {
	if err := params.Validate(); err != nil {
		return generation.Image{}, err
	}

	var result generation.Image
	if err := client.withRetry(ctx, func() error {
		image, err := client.generateImage(ctx, params)
		if err != nil {
			return err
		}
		result = image
		return nil
	}); err != nil {
		return generation.Image{}, err
	}
	return result, nil
}

func (client *Client) generateImage(
	ctx context.Context,
	params generation.ImageRequest,
) (generation.Image, error) {
	requestBody := GenerateContentRequest{
		Contents: []Content{
			{Parts: []Part{{Text: params.Prompt}}},
		},
		GenerationConfig: &GenerationConfig{
			ImageConfig: &ImageConfig{
				ImageSize: string(params.Size),
				// Square frames suit word cards
				AspectRatio: "1:1",
			},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&GenerateContentResponse{}).
		Post(fmt.Sprintf("/models/%s:generateContent", client.imageModel))
	if err != nil {
		return generation.Image{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return generation.Image{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*GenerateContentResponse)
	if len(responseBody.Candidates) == 0 {
		return generation.Image{}, generation.ErrNoImageReturned
	}
	for _, part := range responseBody.Candidates[0].Content.Parts {
		if part.InlineData == nil {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
		if err != nil {
			return generation.Image{}, fmt.Errorf("base64.DecodeString > %w", err)
		}
		mimeType := part.InlineData.MIMEType
		if mimeType == "" {
			mimeType = "image/png"
		}
		return generation.Image{MIMEType: mimeType, Data: data}, nil
	}
	return generation.Image{}, generation.ErrNoImageReturned
}
