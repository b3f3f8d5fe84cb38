package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leafscan/internal/assistant"
	"leafscan/internal/dto"
	"leafscan/internal/models"
	"leafscan/pkg/config"
	"leafscan/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHistoryStore persists chat turns per user.
type ChatHistoryStore interface {
	CreateBatch(ctx context.Context, messages []*models.ChatMessage) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

const defaultHistoryPageSize = 100

var providerLabels = map[string]string{
	"gemini":   "Gemini AI",
	"groq":     "Groq LLM",
	"gigachat": "GigaChat",
}

type ChatService struct {
	engine     *assistant.Engine
	history    ChatHistoryStore
	delegates  []LLMDelegate
	limiter    RateLimiter
	metrics    *metrics.Metrics
	cfg        config.ChatConfig
	llmTimeout time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewChatService wires the answering pipeline. limiter may be nil.
func NewChatService(
	engine *assistant.Engine,
	history ChatHistoryStore,
	delegates []LLMDelegate,
	limiter RateLimiter,
	m *metrics.Metrics,
	cfg config.ChatConfig,
	llmTimeout time.Duration,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		engine:     engine,
		history:    history,
		delegates:  delegates,
		limiter:    limiter,
		metrics:    m,
		cfg:        cfg,
		llmTimeout: llmTimeout,
		logger:     logger,
		now:        time.Now,
	}
}

type generated struct {
	text   string
	source string
	topic  assistant.Topic
}

// SendMessage answers one message and stores both turns.
func (s *ChatService) SendMessage(ctx context.Context, userID uuid.UUID, message string) (*dto.ChatReply, error) {
	message = sanitizeUTF8(strings.TrimSpace(message))
	if message == "" {
		return &dto.ChatReply{
			Reply:     assistant.EmptyMessageReply,
			Source:    assistant.SourceSystem,
			Timestamp: s.now().UTC().Format(time.RFC3339),
		}, nil
	}

	history, err := s.recentTurns(ctx, userID)
	if err != nil {
		return nil, err
	}

	reply := s.generate(ctx, userID, message, history)

	now := s.now().UTC()
	turns := []*models.ChatMessage{
		{ID: uuid.New(), UserID: userID, Role: models.ChatRoleUser, Content: message, CreatedAt: now},
		{ID: uuid.New(), UserID: userID, Role: models.ChatRoleAssistant, Content: reply.text, Source: reply.source, CreatedAt: now.Add(time.Microsecond)},
	}
	if err := s.history.CreateBatch(ctx, turns); err != nil {
		return nil, fmt.Errorf("failed to save chat messages: %w", err)
	}

	s.metrics.ObserveReply(reply.source, string(reply.topic))

	return &dto.ChatReply{
		Reply:     reply.text,
		Source:    reply.source,
		Topic:     string(reply.topic),
		Timestamp: now.Format(time.RFC3339),
	}, nil
}

// recentTurns loads the last HistoryLimit turns in chronological order.
func (s *ChatService) recentTurns(ctx context.Context, userID uuid.UUID) ([]models.ChatTurn, error) {
	if s.cfg.HistoryLimit <= 0 || len(s.delegates) == 0 {
		return nil, nil
	}

	recent, err := s.history.ListRecent(ctx, userID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	turns := make([]models.ChatTurn, len(recent))
	for i, m := range recent {
		turns[len(recent)-1-i] = models.ChatTurn{Role: m.Role, Content: m.Content}
	}
	return turns, nil
}

// generate tries the LLM delegates in order, then the offline engine.
func (s *ChatService) generate(ctx context.Context, userID uuid.UUID, message string, history []models.ChatTurn) generated {
	if len(s.delegates) > 0 && s.allowLLM(ctx, userID) {
		for _, d := range s.delegates {
			callCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
			start := time.Now()
			text, err := d.Generate(callCtx, message, history)
			cancel()
			s.metrics.ObserveDelegate(d.Name(), time.Since(start), err)

			if err != nil {
				s.logger.Warn("LLM delegate failed", zap.String("provider", d.Name()), zap.Error(err))
				continue
			}
			if text = strings.TrimSpace(text); text != "" {
				return generated{text: text, source: d.Name()}
			}
		}
	}

	r := s.engine.Respond(message)
	s.logger.Debug("Answered offline",
		zap.String("source", r.Source),
		zap.String("topic", string(r.Topic)),
		zap.Int("score", r.Score),
	)
	return generated{text: r.Text, source: r.Source, topic: r.Topic}
}

// allowLLM fails open when the limiter is unavailable.
func (s *ChatService) allowLLM(ctx context.Context, userID uuid.UUID) bool {
	if s.limiter == nil {
		return true
	}
	ok, err := s.limiter.Allow(ctx, userID.String())
	if err != nil {
		s.logger.Warn("Rate limiter unavailable", zap.Error(err))
		return true
	}
	if !ok {
		s.metrics.RateLimited.Inc()
		s.logger.Info("LLM rate limit reached, answering offline", zap.String("user_id", userID.String()))
	}
	return ok
}

// History returns the user's stored turns, oldest first.
func (s *ChatService) History(ctx context.Context, userID uuid.UUID) ([]dto.ChatHistoryItem, error) {
	limit := s.cfg.HistoryPageSize
	if limit <= 0 {
		limit = defaultHistoryPageSize
	}

	messages, err := s.history.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	items := make([]dto.ChatHistoryItem, 0, len(messages))
	for _, m := range messages {
		items = append(items, dto.ChatHistoryItem{
			Role:      string(m.Role),
			Content:   m.Content,
			Source:    m.Source,
			Timestamp: m.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return items, nil
}

func (s *ChatService) ClearHistory(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.history.DeleteByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear chat history: %w", err)
	}
	s.logger.Info("Chat history cleared", zap.String("user_id", userID.String()), zap.Int64("deleted", n))
	return n, nil
}

// Status describes which answering mode is active.
func (s *ChatService) Status() *dto.ChatStatus {
	st := &dto.ChatStatus{
		Providers: make([]string, 0, len(s.delegates)),
		Mode:      assistant.SourceKB,
		Model:     "KB Engine",
		KBEntries: s.engine.KnowledgeBase().Len(),
		Status:    "⚡ KB Engine Active",
	}
	for _, d := range s.delegates {
		st.Providers = append(st.Providers, d.Name())
	}
	if len(s.delegates) > 0 {
		first := s.delegates[0]
		label, ok := providerLabels[first.Name()]
		if !ok {
			label = first.Name()
		}
		st.Mode = first.Name()
		st.Model = first.Model()
		st.Status = "✅ " + label + " Active"
	}
	return st
}
