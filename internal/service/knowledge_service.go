package service

import (
	"context"
	"fmt"

	"leafscan/internal/assistant"
	"leafscan/internal/models"
	"leafscan/pkg/metrics"

	"go.uber.org/zap"
)

// Knowledge sources reported by Reload.
const (
	KnowledgeSourceDatabase = "database"
	KnowledgeSourceBuiltin  = "builtin"
)

// KnowledgeStore reads and writes stored knowledge packs.
type KnowledgeStore interface {
	ListAll(ctx context.Context) ([]*models.KnowledgeEntry, error)
	ReplacePack(ctx context.Context, pack string, priority int, entries []*models.KnowledgeEntry) error
}

type KnowledgeService struct {
	store   KnowledgeStore
	engine  *assistant.Engine
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewKnowledgeService(store KnowledgeStore, engine *assistant.Engine, m *metrics.Metrics, logger *zap.Logger) *KnowledgeService {
	return &KnowledgeService{
		store:   store,
		engine:  engine,
		metrics: m,
		logger:  logger,
	}
}

// Reload rebuilds the engine's knowledge base from storage and swaps it in.
// With no stored entries the built-in base is used. On error the current base
// stays active.
func (s *KnowledgeService) Reload(ctx context.Context) (int, string, error) {
	rows, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, "", fmt.Errorf("failed to load knowledge entries: %w", err)
	}

	kb, source := assistant.DefaultKnowledgeBase(), KnowledgeSourceBuiltin
	if len(rows) > 0 {
		entries := make([]assistant.KnowledgeEntry, 0, len(rows))
		for _, r := range rows {
			entries = append(entries, assistant.KnowledgeEntry{Keywords: r.Keywords, Response: r.Response})
		}
		kb, source = assistant.NewKnowledgeBase(entries), KnowledgeSourceDatabase
	}

	s.engine.Swap(kb)
	s.metrics.KnowledgeSize.Set(float64(kb.Len()))
	s.logger.Info("Knowledge base loaded", zap.String("source", source), zap.Int("entries", kb.Len()))

	return kb.Len(), source, nil
}

// SeedPack validates a pack and replaces its stored entries.
func (s *KnowledgeService) SeedPack(ctx context.Context, pack *assistant.KnowledgePack) error {
	if err := pack.Validate(); err != nil {
		return fmt.Errorf("pack %q: %w", pack.Name, err)
	}

	rows := make([]*models.KnowledgeEntry, 0, len(pack.Entries))
	for _, e := range pack.Entries {
		rows = append(rows, &models.KnowledgeEntry{Keywords: e.Keywords, Response: sanitizeUTF8(e.Response)})
	}
	return s.store.ReplacePack(ctx, pack.Name, pack.Priority, rows)
}
