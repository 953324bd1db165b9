package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderAzure  ProviderType = "azure"
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level service configuration, corresponding to
// .agrichat.yml.
type Config struct {
	Provider ProviderType   `yaml:"provider" koanf:"provider"`
	Model    string         `yaml:"model" koanf:"model"`
	Database DatabaseConfig `yaml:"database" koanf:"database"`
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Auth     AuthConfig     `yaml:"auth" koanf:"auth"`
	LLM      LLMConfig      `yaml:"llm" koanf:"llm"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string   `yaml:"host" koanf:"host"`
	Port           int      `yaml:"port" koanf:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// AuthConfig holds API protection settings. An empty key list disables
// authentication, which is the local development default.
type AuthConfig struct {
	APIKeys           []string `yaml:"api_keys" koanf:"api_keys"`
	RateLimit         int      `yaml:"rate_limit" koanf:"rate_limit"`
	RateWindowSeconds int      `yaml:"rate_window_seconds" koanf:"rate_window_seconds"`
}

// LLMConfig holds upstream model settings.
type LLMConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" koanf:"requests_per_minute"`
}
