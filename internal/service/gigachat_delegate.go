package service

import (
	"context"
	"fmt"
	"strings"

	"leafscan/internal/models"
	"leafscan/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// GigaChatDelegate answers through the GigaChat API.
type GigaChatDelegate struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	cfg    *config.GigaChatConfig
	logger *zap.Logger
}

func NewGigaChatDelegate(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatDelegate, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = lianSystemPrompt
	model.Temperature = 0.7

	logger.Info("GigaChat delegate ready", zap.String("model", cfg.Model))

	return &GigaChatDelegate{
		client: client,
		model:  model,
		cfg:    cfg,
		logger: logger,
	}, nil
}

func (d *GigaChatDelegate) Name() string  { return "gigachat" }
func (d *GigaChatDelegate) Model() string { return d.cfg.Model }

func (d *GigaChatDelegate) Generate(ctx context.Context, message string, history []models.ChatTurn) (string, error) {
	turns := lastTurns(history, d.cfg.HistoryWindow)
	messages := make([]gigago.Message, 0, len(turns)+1)
	for _, t := range turns {
		role := gigago.RoleUser
		if t.Role == models.ChatRoleAssistant {
			role = gigago.RoleAssistant
		}
		messages = append(messages, gigago.Message{Role: role, Content: t.Content})
	}
	messages = append(messages, gigago.Message{Role: gigago.RoleUser, Content: message})

	resp, err := d.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return sanitizeUTF8(strings.TrimSpace(resp.Choices[0].Message.Content)), nil
}

func (d *GigaChatDelegate) Close() error {
	if d.client != nil {
		d.client.Close()
	}
	return nil
}
