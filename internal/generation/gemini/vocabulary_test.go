package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/at-ishikawa/lingoflow/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"
)

func textResponse(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	require.NoError(t, json.NewEncoder(w).Encode(GenerateContentResponse{
		Candidates: []Candidate{
			{
				Content: Content{
					Role:  "model",
					Parts: []Part{{Text: text}},
				},
				FinishReason: "STOP",
			},
		},
	}))
}

func TestClient_GenerateVocabulary(t *testing.T) {
	validBatch := `[
		{"word": "ubiquitous", "pronunciation": "/juːˈbɪkwɪtəs/", "definition_en": "present everywhere", "definition_cn": "无处不在的", "example": "Smartphones are ubiquitous nowadays.", "synonyms": ["omnipresent", "pervasive"]},
		{"word": "ephemeral", "pronunciation": "/ɪˈfemərəl/", "definition_en": "lasting a very short time", "definition_cn": "短暂的", "example": "Fame is often ephemeral.", "synonyms": ["fleeting", "transient"]},
		{"word": "tenacious", "pronunciation": "/təˈneɪʃəs/", "definition_en": "holding firmly to something", "definition_cn": "顽强的", "example": "She is tenacious in pursuit of her goals.", "synonyms": ["persistent", "determined"]},
		{"word": "lucid", "pronunciation": "/ˈluːsɪd/", "definition_en": "clearly expressed", "definition_cn": "清晰易懂的", "example": "He gave a lucid explanation.", "synonyms": ["clear", "coherent"]},
		{"word": "candid", "pronunciation": "/ˈkændɪd/", "definition_en": "truthful and straightforward", "definition_cn": "坦率的", "example": "She was candid about her mistakes.", "synonyms": ["frank", "honest"]}
	]`

	tests := []struct {
		name              string
		request           generation.VocabularyRequest
		strict            bool
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantEntries     int
		wantNoCall      bool
		wantError       bool
		wantErrorString string
	}{
		{
			name:    "success with five well-formed entries",
			request: generation.VocabularyRequest{Level: generation.LevelCET4},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/models/test-text-model:generateContent", r.URL.Path)

				var reqBody GenerateContentRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
				require.NotNil(t, reqBody.SystemInstruction)
				assert.Contains(t, reqBody.SystemInstruction.Parts[0].Text, "English tutor")
				require.Len(t, reqBody.Contents, 1)
				assert.Contains(t, reqBody.Contents[0].Parts[0].Text, "Generate 5 advanced English vocabulary words")
				assert.Contains(t, reqBody.Contents[0].Parts[0].Text, "CET-4")
				require.NotNil(t, reqBody.GenerationConfig)
				assert.Equal(t, "application/json", reqBody.GenerationConfig.ResponseMIMEType)
				require.NotNil(t, reqBody.GenerationConfig.ResponseSchema)
				assert.Equal(t, "ARRAY", reqBody.GenerationConfig.ResponseSchema.Type)
				assert.Contains(t, reqBody.GenerationConfig.ResponseSchema.Items.Required, "definition_cn")

				textResponse(t, w, validBatch)
			},
			wantEntries: 5,
		},
		{
			name:    "empty content returns empty batch by default",
			request: generation.VocabularyRequest{Level: generation.LevelIELTS},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				require.NoError(t, json.NewEncoder(w).Encode(GenerateContentResponse{}))
			},
			wantEntries: 0,
		},
		{
			name:    "unparseable content returns empty batch by default",
			request: generation.VocabularyRequest{Level: generation.LevelGRE},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				textResponse(t, w, "I am unable to help with that.")
			},
			wantEntries: 0,
		},
		{
			name:    "unparseable content fails in strict mode",
			request: generation.VocabularyRequest{Level: generation.LevelGRE},
			strict:  true,
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				textResponse(t, w, "I am unable to help with that.")
			},
			wantError:       true,
			wantErrorString: "json.Unmarshal",
		},
		{
			name:    "provider error",
			request: generation.VocabularyRequest{Level: generation.LevelCET6},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error": {"message": "API key not valid"}}`))
			},
			wantError:       true,
			wantErrorString: "response error 403",
		},
		{
			name:            "invalid level short-circuits before any network call",
			request:         generation.VocabularyRequest{Level: "TOEFL"},
			wantNoCall:      true,
			wantError:       true,
			wantErrorString: "unknown exam level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			callCount := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				callCount++
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := &Client{
				httpClient:       resty.New().SetBaseURL(server.URL),
				textModel:        "test-text-model",
				strictVocabulary: tt.strict,
				maxRetryAttempts: 0,
			}
			defer func() {
				_ = client.Close()
			}()

			got, err := client.GenerateVocabulary(context.Background(), tt.request)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorString)
			} else {
				require.NoError(t, err)
				require.Len(t, got, tt.wantEntries)
			}
			if tt.wantNoCall {
				assert.Zero(t, callCount)
				return
			}
			assert.Equal(t, 1, callCount)

			if tt.wantEntries == 5 {
				for _, entry := range got {
					assert.NotEmpty(t, entry.Word)
					assert.NotEmpty(t, entry.DefinitionEN)
					assert.NotEmpty(t, entry.DefinitionCN)
					assert.NotEmpty(t, entry.Example)
					assert.NotEmpty(t, entry.Synonyms)
				}
				assert.Equal(t, "ubiquitous", got[0].Word)
				assert.Equal(t, []string{"omnipresent", "pervasive"}, got[0].Synonyms)
			}
		})
	}
}
