package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"leafscan/internal/dto"
	"leafscan/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrForbidden        = errors.New("not allowed")
	ErrUnsupportedImage = errors.New("only JPEG/PNG/WebP images supported")
	ErrEmptyContent     = errors.New("title and content are required")
)

const (
	defaultPostPageSize = 20
	maxPostPageSize     = 100
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	List(ctx context.Context, offset, limit int) ([]*models.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementLikes(ctx context.Context, id uuid.UUID) (int, error)
}

type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	ListByPostIDs(ctx context.Context, postIDs []uuid.UUID) ([]*models.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommunityService struct {
	posts     PostStore
	comments  CommentStore
	users     UserStore
	uploadDir string
	logger    *zap.Logger
}

func NewCommunityService(posts PostStore, comments CommentStore, users UserStore, uploadDir string, logger *zap.Logger) *CommunityService {
	dir := filepath.Join(uploadDir, "community")
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.String("dir", dir), zap.Error(err))
	}

	return &CommunityService{
		posts:     posts,
		comments:  comments,
		users:     users,
		uploadDir: dir,
		logger:    logger,
	}
}

// UploadImage stores a post image under a random name and returns its public URL.
func (s *CommunityService) UploadImage(ctx context.Context, file io.Reader, contentType string) (*dto.ImageUploadResponse, error) {
	ext, ok := imageExtensions[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return nil, ErrUnsupportedImage
	}

	newFileName := uuid.New().String() + ext
	filePath := filepath.Join(s.uploadDir, newFileName)

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	s.logger.Info("Community image stored", zap.String("file", newFileName), zap.Int64("size", size))
	return &dto.ImageUploadResponse{ImageURL: "/uploads/community/" + newFileName}, nil
}

func (s *CommunityService) CreatePost(ctx context.Context, userID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, ErrEmptyContent
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	post := &models.Post{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     sanitizeUTF8(title),
		Content:   sanitizeUTF8(content),
		ImageURL:  req.ImageURL,
		Tags:      req.Tags,
		CreatedAt: now,
		UpdatedAt: now,
		Author:    authorOf(author),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return toPostResponse(post, nil), nil
}

// ListPosts returns posts newest first together with their comments.
func (s *CommunityService) ListPosts(ctx context.Context, skip, limit int) ([]*dto.PostResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPostPageSize
	}
	if limit > maxPostPageSize {
		limit = maxPostPageSize
	}

	posts, err := s.posts.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	comments, err := s.comments.ListByPostIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	byPost := make(map[uuid.UUID][]*models.Comment, len(posts))
	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}

	out := make([]*dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p, byPost[p.ID]))
	}
	return out, nil
}

func (s *CommunityService) GetPost(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPostIDs(ctx, []uuid.UUID{postID})
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return toPostResponse(post, comments), nil
}

// DeletePost removes a post owned by userID.
func (s *CommunityService) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrForbidden
	}
	return s.posts.Delete(ctx, postID)
}

func (s *CommunityService) LikePost(ctx context.Context, postID uuid.UUID) (*dto.LikeResponse, error) {
	likes, err := s.posts.IncrementLikes(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to like post: %w", err)
	}
	return &dto.LikeResponse{LikesCount: likes}, nil
}

func (s *CommunityService) AddComment(ctx context.Context, userID, postID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}
	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		Content:   sanitizeUTF8(content),
		CreatedAt: time.Now().UTC(),
		Author:    authorOf(author),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	resp := toCommentResponse(comment)
	return &resp, nil
}

func (s *CommunityService) ListComments(ctx context.Context, postID uuid.UUID) ([]dto.CommentResponse, error) {
	comments, err := s.comments.ListByPostIDs(ctx, []uuid.UUID{postID})
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	out := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	return out, nil
}

// DeleteComment removes a comment written by userID.
func (s *CommunityService) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != userID {
		return ErrForbidden
	}
	return s.comments.Delete(ctx, commentID)
}

func (s *CommunityService) getPost(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func authorOf(u *models.User) models.Author {
	return models.Author{ID: u.ID, Username: u.Username, FullName: u.FullName, AvatarURL: u.AvatarURL}
}

func toAuthorResponse(a models.Author) dto.AuthorResponse {
	return dto.AuthorResponse{
		ID:        a.ID.String(),
		Username:  a.Username,
		FullName:  a.FullName,
		AvatarURL: a.AvatarURL,
	}
}

func toCommentResponse(c *models.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        c.ID.String(),
		PostID:    c.PostID.String(),
		Content:   c.Content,
		Author:    toAuthorResponse(c.Author),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func toPostResponse(p *models.Post, comments []*models.Comment) *dto.PostResponse {
	resp := &dto.PostResponse{
		ID:         p.ID.String(),
		Title:      p.Title,
		Content:    p.Content,
		ImageURL:   p.ImageURL,
		Tags:       p.Tags,
		LikesCount: p.LikesCount,
		Author:     toAuthorResponse(p.Author),
		Comments:   make([]dto.CommentResponse, 0, len(comments)),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
	for _, c := range comments {
		resp.Comments = append(resp.Comments, toCommentResponse(c))
	}
	return resp
}
