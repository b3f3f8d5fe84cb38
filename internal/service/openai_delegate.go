package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"leafscan/internal/models"
	"leafscan/pkg/config"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"
)

// OpenAIDelegate talks to any provider with an OpenAI-compatible chat
// completions endpoint. Gemini and Groq are both reached this way.
type OpenAIDelegate struct {
	name   string
	client openai.Client
	cfg    config.OpenAICompatConfig
	logger *zap.Logger
}

func NewOpenAIDelegate(name string, cfg config.OpenAICompatConfig, logger *zap.Logger, extra ...option.RequestOption) *OpenAIDelegate {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	opts = append(opts, extra...)

	return &OpenAIDelegate{
		name:   name,
		client: openai.NewClient(opts...),
		cfg:    cfg,
		logger: logger,
	}
}

func (d *OpenAIDelegate) Name() string  { return d.name }
func (d *OpenAIDelegate) Model() string { return d.cfg.Model }

func (d *OpenAIDelegate) Generate(ctx context.Context, message string, history []models.ChatTurn) (string, error) {
	turns := lastTurns(history, d.cfg.HistoryWindow)
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns)+2)
	messages = append(messages, openai.SystemMessage(lianSystemPrompt))
	for _, t := range turns {
		switch t.Role {
		case models.ChatRoleAssistant:
			messages = append(messages, openai.AssistantMessage(t.Content))
		default:
			messages = append(messages, openai.UserMessage(t.Content))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	params := openai.ChatCompletionNewParams{
		Model:       d.cfg.Model,
		Messages:    messages,
		Temperature: openai.Float(d.cfg.Temperature),
	}
	if d.cfg.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(d.cfg.MaxTokens))
	}

	resp, err := d.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%s returned status %d: %w", d.name, apiErr.StatusCode, err)
		}
		return "", fmt.Errorf("%s request failed: %w", d.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	d.logger.Debug("LLM reply received",
		zap.String("provider", d.name),
		zap.String("model", d.cfg.Model),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
