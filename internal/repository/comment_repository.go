package repository

import (
	"context"

	"leafscan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CommentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCommentRepository(db *pgxpool.Pool, logger *zap.Logger) *CommentRepository {
	return &CommentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	sql, args, err := squirrel.Insert("comments").
		Columns("id", "post_id", "user_id", "content", "created_at").
		Values(comment.ID, comment.PostID, comment.UserID, comment.Content, comment.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func selectComments() squirrel.SelectBuilder {
	return squirrel.Select(
		"c.id", "c.post_id", "c.user_id", "c.content", "c.created_at",
		"u.id", "u.username", "u.full_name", "u.avatar_url",
	).
		From("comments c").
		Join("users u ON u.id = c.user_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanComment(row pgx.Row) (*models.Comment, error) {
	var c models.Comment
	err := row.Scan(
		&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt,
		&c.Author.ID, &c.Author.Username, &c.Author.FullName, &c.Author.AvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	sql, args, err := selectComments().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanComment(r.db.QueryRow(ctx, sql, args...))
}

// ListByPostIDs returns the comments of all given posts, oldest first.
func (r *CommentRepository) ListByPostIDs(ctx context.Context, postIDs []uuid.UUID) ([]*models.Comment, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	sql, args, err := selectComments().
		Where(squirrel.Eq{"c.post_id": postIDs}).
		OrderBy("c.created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := squirrel.Delete("comments").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
