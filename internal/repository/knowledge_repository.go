package repository

import (
	"context"
	"fmt"
	"time"

	"leafscan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type KnowledgeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		logger: logger,
	}
}

// ReplacePack swaps all rows of a pack for entries inside one transaction.
// Position follows the order of entries.
func (r *KnowledgeRepository) ReplacePack(ctx context.Context, pack string, priority int, entries []*models.KnowledgeEntry) error {
	deleteSQL, deleteArgs, err := squirrel.Delete("knowledge_entries").
		Where(squirrel.Eq{"pack": pack}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("failed to clear pack %q: %w", pack, err)
		}
		if len(entries) == 0 {
			return nil
		}

		now := time.Now()
		insert := squirrel.Insert("knowledge_entries").
			Columns("id", "pack", "priority", "position", "keywords", "response", "created_at").
			PlaceholderFormat(squirrel.Dollar)
		for i, e := range entries {
			if e.ID == uuid.Nil {
				e.ID = uuid.New()
			}
			e.Pack, e.Priority, e.Position, e.CreatedAt = pack, priority, i, now
			insert = insert.Values(e.ID, e.Pack, e.Priority, e.Position, e.Keywords, e.Response, e.CreatedAt)
		}

		sql, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("failed to insert pack %q: %w", pack, err)
		}

		r.logger.Info("Knowledge pack replaced", zap.String("pack", pack), zap.Int("entries", len(entries)))
		return nil
	})
}

// ListAll returns every entry ordered by priority, pack and position.
func (r *KnowledgeRepository) ListAll(ctx context.Context) ([]*models.KnowledgeEntry, error) {
	query := squirrel.Select("id", "pack", "priority", "position", "keywords", "response", "created_at").
		From("knowledge_entries").
		OrderBy("priority ASC", "pack ASC", "position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.KnowledgeEntry
	for rows.Next() {
		var e models.KnowledgeEntry
		if err := rows.Scan(&e.ID, &e.Pack, &e.Priority, &e.Position, &e.Keywords, &e.Response, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
