package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/lingoflow/internal/generation"
)

const vocabularySystemInstruction = "You are an expert English tutor for Chinese students."

// GenerateVocabulary implements the generation.Client interface
func (client *Client) GenerateVocabulary(
	ctx context.Context,
	params generation.VocabularyRequest,
) ([]generation.WordEntry, error) {
	if _, err := generation.ParseLevel(string(params.Level)); err != nil {
		return nil, err
	}

	var result []generation.WordEntry
	if err := client.withRetry(ctx, func() error {
		entries, err := client.generateVocabulary(ctx, params)
		if err != nil {
			return err
		}
		result = entries
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

func (client *Client) getVocabularyRequestBody(params generation.VocabularyRequest) GenerateContentRequest {
	count := params.Count
	if count <= 0 {
		count = generation.DefaultBatchSize
	}

	prompt := fmt.Sprintf(`Generate %d advanced English vocabulary words specifically for the %s exam.
For each word, provide:
1. The word itself.
2. IPA pronunciation.
3. A clear English definition.
4. A concise Chinese definition.
5. A sample sentence.
6. 2 synonyms.
Ensure the words are challenging but relevant to the exam level.`, count, params.Level)

	schema := &Schema{
		Type: "ARRAY",
		Items: &Schema{
			Type: "OBJECT",
			Properties: map[string]*Schema{
				"word":          {Type: "STRING"},
				"pronunciation": {Type: "STRING", Description: "IPA pronunciation guide"},
				"definition_en": {Type: "STRING"},
				"definition_cn": {Type: "STRING"},
				"example":       {Type: "STRING"},
				"synonyms":      {Type: "ARRAY", Items: &Schema{Type: "STRING"}},
			},
			Required: []string{"word", "definition_en", "definition_cn", "example", "synonyms"},
		},
	}

	return GenerateContentRequest{
		SystemInstruction: &Content{
			Parts: []Part{{Text: vocabularySystemInstruction}},
		},
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: &GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}
}

func (client *Client) generateVocabulary(
	ctx context.Context,
	params generation.VocabularyRequest,
) ([]generation.WordEntry, error) {
	requestBody := client.getVocabularyRequestBody(params)

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&GenerateContentResponse{}).
		Post(fmt.Sprintf("/models/%s:generateContent", client.textModel))
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*GenerateContentResponse)
	content := responseBody.firstText()
	if content == "" {
		if client.strictVocabulary {
			return nil, fmt.Errorf("empty response content: %s", response.String())
		}
		slog.Default().Warn("vocabulary response contained no text, returning empty batch")
		return []generation.WordEntry{}, nil
	}

	var entries []generation.WordEntry
	if err := json.NewDecoder(strings.NewReader(content)).Decode(&entries); err != nil {
		if client.strictVocabulary {
			return nil, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
		}
		slog.Default().Warn("failed to parse vocabulary response, returning empty batch",
			"error", err,
			"content", content,
		)
		return []generation.WordEntry{}, nil
	}
	return entries, nil
}
