package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .agrichat.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to agrichat! Let's configure your service.")
	fmt.Println()

	cfg := DefaultConfig()

	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"azure", "openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)

	modelPrompt := promptui.Prompt{
		Label:   "Model (or Azure deployment name)",
		Default: DefaultModel(cfg.Provider),
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model selection: %w", err)
	}
	cfg.Model = model

	dbPrompt := promptui.Prompt{
		Label:   "SQLite database path",
		Default: cfg.Database.Path,
	}
	dbPath, err := dbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("database path: %w", err)
	}
	cfg.Database.Path = dbPath

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port selection: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	authPrompt := promptui.Select{
		Label: "Require API keys for the chat API",
		Items: []string{"no", "yes"},
	}
	_, requireAuth, err := authPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("auth selection: %w", err)
	}
	if requireAuth == "yes" {
		keyPrompt := promptui.Prompt{Label: "API key for widget access"}
		key, err := keyPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("api key entry: %w", err)
		}
		if key != "" {
			cfg.Auth.APIKeys = []string{key}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, err
	}
	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)
	return cfg, nil
}
