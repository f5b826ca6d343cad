// gemini.go - Gemini implementation of the Provider interface

package ai

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// maxOutputTokens caps the response size; the three record schemas are
// small, so truncation at this limit never happens in practice.
const maxOutputTokens = 8192

// GeminiProvider calls the Gemini API with PDF input and a JSON response
// MIME type. One client is created per call and closed when the call
// returns; nothing about the document is persisted locally.
type GeminiProvider struct {
	apiKey    string
	modelName string
}

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(apiKey, modelName string) *GeminiProvider {
	return &GeminiProvider{apiKey: apiKey, modelName: modelName}
}

// Name returns "gemini".
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// GenerateJSON sends the PDF and schema prompt to Gemini and returns the
// concatenated text parts of the first candidate.
func (p *GeminiProvider) GenerateJSON(ctx context.Context, prompt string, pdf []byte) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.modelName)
	model.GenerationConfig = genai.GenerationConfig{
		MaxOutputTokens: ptr(int32(maxOutputTokens)),
	}
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.Blob{
			MIMEType: "application/pdf",
			Data:     pdf,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", fmt.Errorf("empty response from Gemini API")
	}
	return out, nil
}

// ptr is a helper function to get a pointer to an int32 value
func ptr(i int32) *int32 {
	return &i
}
