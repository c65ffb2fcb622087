package ai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"dadadu-backend/internal/config"
	"dadadu-backend/pkg/logger"
)

// OpenAIClassifier asks a chat-completion model to label a caption.
// It returns the raw model output; interpreting the label is the
// moderation service's job.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

func NewOpenAIClassifier(cfg config.OpenAIConfig) (*OpenAIClassifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	return &OpenAIClassifier{
		client: openai.NewClient(cfg.APIKey),
		model:  cfg.Model,
	}, nil
}

// ClassifyCaption sends the fixed moderation prompt with the caption
// embedded. Low temperature keeps the label near-deterministic.
func (c *OpenAIClassifier) ClassifyCaption(ctx context.Context, text string) (string, error) {
	prompt := strings.Join([]string{
		"Analyze this user-submitted caption for safety:",
		fmt.Sprintf("Text: %q", text),
		"",
		"Classify as one of: safe, sensitive, blocked",
	}, "\n")

	logger.Info("Sending caption for moderation", map[string]interface{}{
		"caption": text,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	output := resp.Choices[0].Message.Content
	logger.Info("Moderation model response", map[string]interface{}{
		"output": output,
	})

	return output, nil
}
