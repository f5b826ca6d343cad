// factory.go - Provider factory keyed by configuration

package ai

import (
	"fmt"
	"log"

	"github.com/taxmitra/tax-doc-recon/configs"
)

// CreateProvider creates the document-understanding provider selected by
// configuration.
func CreateProvider() (Provider, error) {
	switch configs.AI_PROVIDER {
	case "gemini":
		log.Printf("Creating Gemini provider (model: %s)", configs.MODEL_NAME)
		return NewGeminiProvider(configs.GEMINI_API_KEY, configs.MODEL_NAME), nil

	default:
		return nil, fmt.Errorf("unsupported AI provider: %s (supported: gemini)", configs.AI_PROVIDER)
	}
}
