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

type PostRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostRepository(db *pgxpool.Pool, logger *zap.Logger) *PostRepository {
	return &PostRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	query := squirrel.Insert("posts").
		Columns("id", "user_id", "title", "content", "image_url", "tags", "likes_count", "created_at", "updated_at").
		Values(post.ID, post.UserID, post.Title, post.Content, post.ImageURL, post.Tags, post.LikesCount, post.CreatedAt, post.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func selectPosts() squirrel.SelectBuilder {
	return squirrel.Select(
		"p.id", "p.user_id", "p.title", "p.content", "p.image_url", "p.tags", "p.likes_count", "p.created_at", "p.updated_at",
		"u.id", "u.username", "u.full_name", "u.avatar_url",
	).
		From("posts p").
		Join("users u ON u.id = p.user_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanPost(row pgx.Row) (*models.Post, error) {
	var p models.Post
	err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Content, &p.ImageURL, &p.Tags, &p.LikesCount, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Username, &p.Author.FullName, &p.Author.AvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	sql, args, err := selectPosts().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanPost(r.db.QueryRow(ctx, sql, args...))
}

// List returns posts newest first.
func (r *PostRepository) List(ctx context.Context, offset, limit int) ([]*models.Post, error) {
	if limit <= 0 {
		return []*models.Post{}, nil
	}
	offset = max(offset, 0)

	sql, args, err := selectPosts().
		OrderBy("p.created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := squirrel.Delete("posts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// IncrementLikes adds one like and returns the new count. It returns
// pgx.ErrNoRows when the post does not exist.
func (r *PostRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	sql, args, err := squirrel.Update("posts").
		Set("likes_count", squirrel.Expr("likes_count + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING likes_count").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var likes int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&likes); err != nil {
		return 0, err
	}
	return likes, nil
}
