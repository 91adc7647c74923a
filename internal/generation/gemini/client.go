// Package gemini implements the generation.Client interface against the
// Google Generative Language API.
package gemini

import (
	"time"

	"github.com/at-ishikawa/lingoflow/internal/generation"
	"resty.dev/v3"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Config holds provider settings for a Client.
type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
	VideoModel string

	// MaxRetryAttempts applies to a single provider call, not to a whole flow.
	MaxRetryAttempts uint
	// PollInterval is the pause between status queries of a video operation.
	PollInterval time.Duration
	// MaxPollAttempts bounds the status queries before giving up with
	// generation.ErrPollTimeout.
	MaxPollAttempts int
	// StrictVocabulary makes unparseable vocabulary output an error instead
	// of an empty batch.
	StrictVocabulary bool
}

type Client struct {
	httpClient       *resty.Client
	apiKey           string
	textModel        string
	imageModel       string
	videoModel       string
	maxRetryAttempts uint
	pollInterval     time.Duration
	maxPollAttempts  int
	strictVocabulary bool
	downloader       assetDownloader
}

func NewClient(config Config) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	client.SetHeader("x-goog-api-key", config.APIKey)
	client.SetHeader("Content-Type", "application/json")

	pollInterval := config.PollInterval
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	maxPollAttempts := config.MaxPollAttempts
	if maxPollAttempts <= 0 {
		maxPollAttempts = 120
	}
	maxRetryAttempts := config.MaxRetryAttempts
	if maxRetryAttempts == 0 {
		maxRetryAttempts = generation.DefaultMaxRetryAttempts
	}

	return &Client{
		httpClient:       client,
		apiKey:           config.APIKey,
		textModel:        config.TextModel,
		imageModel:       config.ImageModel,
		videoModel:       config.VideoModel,
		maxRetryAttempts: maxRetryAttempts,
		pollInterval:     pollInterval,
		maxPollAttempts:  maxPollAttempts,
		strictVocabulary: config.StrictVocabulary,
		downloader:       newHTTPDownloader(config.APIKey),
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GenerateContentRequest is the wire format of a generateContent call.
type GenerateContentRequest struct {
	SystemInstruction *Content          `json:"system_instruction,omitempty"`
	Contents          []Content         `json:"contents"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type InlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type GenerationConfig struct {
	ResponseMIMEType string       `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema      `json:"responseSchema,omitempty"`
	ImageConfig      *ImageConfig `json:"imageConfig,omitempty"`
}

// Schema is the structural output contract requested from the model.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type ImageConfig struct {
	ImageSize   string `json:"imageSize"`
	AspectRatio string `json:"aspectRatio"`
}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// firstText returns the concatenated text parts of the first candidate.
func (r GenerateContentResponse) firstText() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	text := ""
	for _, part := range r.Candidates[0].Content.Parts {
		text += part.Text
	}
	return text
}
