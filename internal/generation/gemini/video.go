package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/at-ishikawa/lingoflow/internal/generation"
)

// defaultAnimationPrompt is substituted when only a reference image is supplied.
const defaultAnimationPrompt = "Animate this image cinematographically"

var dataURIPrefixPattern = regexp.MustCompile(`^data:image/(png|jpeg|jpg|webp);base64,`)

// stripDataURIPrefix removes a data URI prefix so only raw encoded bytes are sent.
func stripDataURIPrefix(encoded string) string {
	return dataURIPrefixPattern.ReplaceAllString(encoded, "")
}

// VideoGenerationRequest is the wire format of a predictLongRunning call.
type VideoGenerationRequest struct {
	Instances  []VideoInstance `json:"instances"`
	Parameters VideoParameters `json:"parameters"`
}

type VideoInstance struct {
	Prompt string          `json:"prompt"`
	Image  *ReferenceImage `json:"image,omitempty"`
}

type ReferenceImage struct {
	ImageBytes string `json:"bytesBase64Encoded"`
	MIMEType   string `json:"mimeType"`
}

type VideoParameters struct {
	AspectRatio    string `json:"aspectRatio"`
	Resolution     string `json:"resolution"`
	NumberOfVideos int    `json:"sampleCount"`
}

// VideoOperation is the long-running operation handle returned on submission
// and re-queried while polling.
type VideoOperation struct {
	Name     string          `json:"name"`
	Done     bool            `json:"done"`
	Error    *OperationError `json:"error,omitempty"`
	Response *VideoResult    `json:"response,omitempty"`
}

type OperationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type VideoResult struct {
	GeneratedVideos []GeneratedVideo `json:"generatedVideos"`
}

type GeneratedVideo struct {
	Video VideoFile `json:"video"`
}

type VideoFile struct {
	URI string `json:"uri"`
}

// GenerateVideo implements the generation.Client interface.
// It submits one generation job, polls the operation handle until done or the
// poll budget is exhausted, then downloads the resulting asset.
func (client *Client) GenerateVideo(
	ctx context.Context,
	params generation.VideoRequest,
) (generation.Video, error) {
	if err := params.Validate(); err != nil {
		return generation.Video{}, err
	}

	operationName, err := client.submitVideo(ctx, params)
	if err != nil {
		return generation.Video{}, err
	}
	slog.Default().Debug("video generation submitted", "operation", operationName)

	operation, err := client.pollVideoOperation(ctx, operationName)
	if err != nil {
		return generation.Video{}, err
	}

	if operation.Response == nil || len(operation.Response.GeneratedVideos) == 0 ||
		operation.Response.GeneratedVideos[0].Video.URI == "" {
		return generation.Video{}, generation.ErrNoVideoReturned
	}
	videoURI := operation.Response.GeneratedVideos[0].Video.URI

	data, err := client.downloader.download(ctx, videoURI)
	if err != nil {
		return generation.Video{}, fmt.Errorf("%w: %w", generation.ErrDownloadFailed, err)
	}
	return generation.Video{MIMEType: "video/mp4", Data: data}, nil
}

func (client *Client) submitVideo(ctx context.Context, params generation.VideoRequest) (string, error) {
	prompt := params.Prompt
	if prompt == "" {
		prompt = defaultAnimationPrompt
	}

	instance := VideoInstance{Prompt: prompt}
	if params.ReferenceImage != "" {
		instance.Image = &ReferenceImage{
			ImageBytes: stripDataURIPrefix(params.ReferenceImage),
			MIMEType:   "image/png",
		}
	}

	requestBody := VideoGenerationRequest{
		Instances: []VideoInstance{instance},
		Parameters: VideoParameters{
			AspectRatio:    string(params.AspectRatio),
			Resolution:     "720p",
			NumberOfVideos: 1,
		},
	}

	var operationName string
	if err := client.withRetry(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetBody(requestBody).
			SetResult(&VideoOperation{}).
			Post(fmt.Sprintf("/models/%s:predictLongRunning", client.videoModel))
		if err != nil {
			return fmt.Errorf("httpClient.Post > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		operation := response.Result().(*VideoOperation)
		if operation.Name == "" {
			return fmt.Errorf("no operation name in response: %s", response.String())
		}
		operationName = operation.Name
		return nil
	}); err != nil {
		return "", err
	}
	return operationName, nil
}

// pollVideoOperation re-queries the operation handle until it reports done.
// A failed status query propagates immediately without retry; a handle that
// never completes fails with generation.ErrPollTimeout once the attempt
// budget runs out.
func (client *Client) pollVideoOperation(ctx context.Context, operationName string) (VideoOperation, error) {
	for attempt := 0; attempt < client.maxPollAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return VideoOperation{}, ctx.Err()
			case <-time.After(client.pollInterval):
			}
		}

		operation, err := client.getVideoOperation(ctx, operationName)
		if err != nil {
			return VideoOperation{}, err
		}
		if operation.Error != nil {
			return VideoOperation{}, fmt.Errorf("operation failed with code %d: %s", operation.Error.Code, operation.Error.Message)
		}
		if operation.Done {
			return operation, nil
		}
		slog.Default().Debug("video generation still running",
			"operation", operationName,
			"attempt", attempt+1,
		)
	}
	return VideoOperation{}, fmt.Errorf("%w after %d status queries", generation.ErrPollTimeout, client.maxPollAttempts)
}

func (client *Client) getVideoOperation(ctx context.Context, operationName string) (VideoOperation, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetResult(&VideoOperation{}).
		Get("/" + operationName)
	if err != nil {
		return VideoOperation{}, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return VideoOperation{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return *response.Result().(*VideoOperation), nil
}
