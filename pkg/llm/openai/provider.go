package openai

import (
	"context"
	"fmt"

	"disaster-chatbot-be/pkg/llm"

	goopenai "github.com/sashabaranov/go-openai"
)

// Provider implements llm.LLMProvider on the OpenAI chat completions API.
type Provider struct {
	client    *goopenai.Client
	modelName string
}

var _ llm.LLMProvider = &Provider{}

func NewProvider(apiKey, modelName string) *Provider {
	if modelName == "" {
		modelName = goopenai.GPT4oMini
	}
	return &Provider{
		client:    goopenai.NewClient(apiKey),
		modelName: modelName,
	}
}

// ModelName reports the configured default model, used for response metadata.
func (p *Provider) ModelName() string {
	return p.modelName
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ResolveOptions(opts)

	messages := make([]goopenai.ChatCompletionMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = goopenai.ChatMessageRoleAssistant
		}
		messages[i] = goopenai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	model := p.modelName
	if options.Model != "" {
		model = options.Model
	}

	req := goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(options.Temperature),
	}
	if options.MaxTokens > 0 {
		req.MaxTokens = options.MaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat completion: empty choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{
		{Role: goopenai.ChatMessageRoleUser, Content: prompt},
	}, opts...)
}
