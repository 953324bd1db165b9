package llm

import (
	"fmt"
	"os"
)

// NewProvider creates an LLM provider based on the given provider type
// and model. Supported provider types: "azure", "openai", "ollama".
// Credentials come from the environment so they never land in config
// files.
func NewProvider(providerType string, model string) (Provider, error) {
	switch providerType {
	case "azure":
		apiKey := os.Getenv("AZURE_OPENAI_API_KEY")
		endpoint := os.Getenv("AZURE_OPENAI_ENDPOINT")
		if apiKey == "" || endpoint == "" {
			return nil, fmt.Errorf("AZURE_OPENAI_API_KEY and AZURE_OPENAI_ENDPOINT environment variables must be set")
		}
		deployment := os.Getenv("AZURE_OPENAI_DEPLOYMENT")
		if deployment == "" {
			deployment = model
		}
		return NewAzureOpenAIProvider(apiKey, endpoint, deployment), nil

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAIProvider(apiKey, model), nil

	case "ollama":
		host := os.Getenv("OLLAMA_HOST")
		if host == "" {
			host = "http://localhost:11434"
		}
		return NewOllamaProvider(host, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
