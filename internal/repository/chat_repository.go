package repository

import (
	"context"
	"fmt"

	"leafscan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ChatRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewChatRepository(db *pgxpool.Pool, logger *zap.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBatch stores the messages in one transaction.
func (r *ChatRepository) CreateBatch(ctx context.Context, messages []*models.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	query := squirrel.Insert("chat_messages").
		Columns("id", "user_id", "role", "content", "source", "created_at").
		PlaceholderFormat(squirrel.Dollar)
	for _, m := range messages {
		query = query.Values(m.ID, m.UserID, string(m.Role), m.Content, m.Source, m.CreatedAt)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("failed to insert chat messages: %w", err)
		}
		return nil
	})
}

// ListRecent returns the newest messages first.
func (r *ChatRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error) {
	return r.list(ctx, userID, "created_at DESC, id DESC", limit)
}

// ListByUserID returns the oldest messages first.
func (r *ChatRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error) {
	return r.list(ctx, userID, "created_at ASC, id ASC", limit)
}

func (r *ChatRepository) list(ctx context.Context, userID uuid.UUID, orderBy string, limit int) ([]*models.ChatMessage, error) {
	if limit <= 0 {
		return []*models.ChatMessage{}, nil
	}

	query := squirrel.Select("id", "user_id", "role", "content", "source", "created_at").
		From("chat_messages").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy(orderBy).
		Limit(uint64(limit)).
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

	var messages []*models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		var role string
		if err := rows.Scan(&m.ID, &m.UserID, &role, &m.Content, &m.Source, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Role = models.ChatRole(role)
		messages = append(messages, &m)
	}

	return messages, rows.Err()
}

func (r *ChatRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := squirrel.Delete("chat_messages").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
