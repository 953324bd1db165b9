package config

// DefaultConfigFile is the config filename looked up in the working
// directory.
const DefaultConfigFile = ".agrichat.yml"

// defaultModels maps each provider to its default model or deployment.
var defaultModels = map[ProviderType]string{
	ProviderAzure:  "gpt-35-turbo",
	ProviderOpenAI: "gpt-4o-mini",
	ProviderOllama: "llama3",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderAzure,
		Model:    defaultModels[ProviderAzure],
		Database: DatabaseConfig{
			Path: "agrichat.db",
		},
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8000,
			AllowedOrigins: []string{"https://www.freshnutrients.org"},
		},
		Auth: AuthConfig{
			RateLimit:         100,
			RateWindowSeconds: 3600,
		},
		LLM: LLMConfig{
			RequestsPerMinute: 60,
		},
	}
}

// DefaultModel returns the default model for the given provider.
func DefaultModel(provider ProviderType) string {
	if model, ok := defaultModels[provider]; ok {
		return model
	}
	return defaultModels[ProviderAzure]
}
