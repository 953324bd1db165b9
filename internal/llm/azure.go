package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// AzureOpenAIProvider implements Provider against an Azure OpenAI
// deployment. Azure routes by deployment name rather than model name, so
// the deployment doubles as the default model.
type AzureOpenAIProvider struct {
	client     *openai.Client
	deployment string
}

// NewAzureOpenAIProvider creates a provider for the given Azure OpenAI
// endpoint and deployment.
func NewAzureOpenAIProvider(apiKey, endpoint, deployment string) *AzureOpenAIProvider {
	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	cfg.AzureModelMapperFunc = func(model string) string {
		return deployment
	}
	return &AzureOpenAIProvider{
		client:     openai.NewClientWithConfig(cfg),
		deployment: deployment,
	}
}

func (p *AzureOpenAIProvider) Name() string {
	return "azure"
}

func (p *AzureOpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.deployment
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	var messages []openai.ChatCompletionMessage
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	apiReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: float32(req.Temperature),
	}

	resp, err := p.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, err
	}

	var content, finishReason string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
		finishReason = string(resp.Choices[0].FinishReason)
	}

	return &CompletionResponse{
		Content:      content,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Model:        resp.Model,
		FinishReason: finishReason,
	}, nil
}
