package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"feebank/internal/config"
)

var (
	// ErrNoCredential means the provider has no API key; callers stay in fallback mode.
	ErrNoCredential = errors.New("ai provider credential not configured")
	// ErrEmptyCompletion is returned when the provider answers with no text.
	ErrEmptyCompletion = errors.New("ai provider returned an empty completion")
)

// Generator turns one prompt into one completion.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatGenerator sends a prompt as a single user message to an eino chat model.
type ChatGenerator struct {
	chatModel model.BaseChatModel
	provider  string
	modelName string
}

// NewGenerator builds a chat model for the named provider. An empty API key is
// reported as ErrNoCredential rather than a broken client.
func NewGenerator(ctx context.Context, provider string, provCfg config.ProviderConfig) (*ChatGenerator, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if strings.TrimSpace(provCfg.APIKey) == "" {
		return nil, ErrNoCredential
	}

	var (
		chatModel model.BaseChatModel
		err       error
	)
	switch provider {
	case "openai":
		chatModel, err = openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: provCfg.BaseURL,
			Model:   provCfg.Model,
			APIKey:  provCfg.APIKey,
		})
	case "gemini":
		client, clientErr := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: provCfg.APIKey,
		})
		if clientErr != nil {
			return nil, fmt.Errorf("new gemini client: %w", clientErr)
		}
		chatModel, err = gemini.NewChatModel(ctx, &gemini.Config{
			Client: client,
			Model:  provCfg.Model,
		})
	case "claude":
		var baseURLPtr *string
		if provCfg.BaseURL != "" {
			baseURLPtr = &provCfg.BaseURL
		}
		chatModel, err = claude.NewChatModel(ctx, &claude.Config{
			APIKey:    provCfg.APIKey,
			Model:     provCfg.Model,
			BaseURL:   baseURLPtr,
			MaxTokens: 3000,
		})
	default:
		return nil, fmt.Errorf("invalid provider: %s", provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s chat model: %w", provider, err)
	}
	return &ChatGenerator{chatModel: chatModel, provider: provider, modelName: provCfg.Model}, nil
}

// NewChatGenerator wraps an already constructed chat model.
func NewChatGenerator(chatModel model.BaseChatModel, provider, modelName string) *ChatGenerator {
	return &ChatGenerator{chatModel: chatModel, provider: provider, modelName: modelName}
}

func (g *ChatGenerator) Provider() string { return g.provider }

func (g *ChatGenerator) Model() string { return g.modelName }

// Generate returns the completion content as the provider sent it.
func (g *ChatGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.chatModel.Generate(ctx, []*schema.Message{
		{
			Role:    schema.User,
			Content: prompt,
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate completion: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Content, nil
}
