package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"leafscan/internal/dto"
	"leafscan/internal/models"
	"leafscan/internal/repository/memrepo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type communityFixture struct {
	svc      *CommunityService
	posts    *memrepo.PostStore
	comments *memrepo.CommentStore
	alice    *models.User
	bob      *models.User
	dir      string
}

func newCommunityFixture(t *testing.T) *communityFixture {
	t.Helper()
	users := memrepo.NewUserStore()
	alice := &models.User{ID: uuid.New(), Username: "alice", FullName: "Alice Farmer", CreatedAt: time.Now()}
	bob := &models.User{ID: uuid.New(), Username: "bob", CreatedAt: time.Now()}
	require.NoError(t, users.Create(context.Background(), alice))
	require.NoError(t, users.Create(context.Background(), bob))

	dir := t.TempDir()
	posts := &memrepo.PostStore{}
	comments := &memrepo.CommentStore{}
	return &communityFixture{
		svc:      NewCommunityService(posts, comments, users, dir, zap.NewNop()),
		posts:    posts,
		comments: comments,
		alice:    alice,
		bob:      bob,
		dir:      dir,
	}
}

func TestCommunityService_CreateAndListPosts(t *testing.T) {
	f := newCommunityFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreatePost(ctx, f.alice.ID, &dto.CreatePostRequest{Title: " Rust on wheat ", Content: "orange pustules", Tags: "wheat,rust"})
	require.NoError(t, err)
	assert.Equal(t, "Rust on wheat", first.Title)
	assert.Equal(t, "alice", first.Author.Username)
	assert.Equal(t, "Alice Farmer", first.Author.FullName)
	assert.Empty(t, first.Comments)

	second, err := f.svc.CreatePost(ctx, f.bob.ID, &dto.CreatePostRequest{Title: "Maize spacing", Content: "75cm rows?"})
	require.NoError(t, err)

	_, err = f.svc.AddComment(ctx, f.bob.ID, uuid.MustParse(first.ID), &dto.CreateCommentRequest{Content: "Try propiconazole"})
	require.NoError(t, err)

	posts, err := f.svc.ListPosts(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
	require.Len(t, posts[1].Comments, 1)
	assert.Equal(t, "Try propiconazole", posts[1].Comments[0].Content)
	assert.Equal(t, "bob", posts[1].Comments[0].Author.Username)

	page, err := f.svc.ListPosts(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, first.ID, page[0].ID)
}

func TestCommunityService_CreatePostValidation(t *testing.T) {
	f := newCommunityFixture(t)

	_, err := f.svc.CreatePost(context.Background(), f.alice.ID, &dto.CreatePostRequest{Title: "  ", Content: "x"})
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = f.svc.CreatePost(context.Background(), uuid.New(), &dto.CreatePostRequest{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCommunityService_DeletePostOwnerOnly(t *testing.T) {
	f := newCommunityFixture(t)
	ctx := context.Background()

	post, err := f.svc.CreatePost(ctx, f.alice.ID, &dto.CreatePostRequest{Title: "t", Content: "c"})
	require.NoError(t, err)
	postID := uuid.MustParse(post.ID)

	assert.ErrorIs(t, f.svc.DeletePost(ctx, f.bob.ID, postID), ErrForbidden)
	require.NoError(t, f.svc.DeletePost(ctx, f.alice.ID, postID))
	assert.ErrorIs(t, f.svc.DeletePost(ctx, f.alice.ID, postID), ErrPostNotFound)
}

func TestCommunityService_LikePost(t *testing.T) {
	f := newCommunityFixture(t)
	ctx := context.Background()

	post, err := f.svc.CreatePost(ctx, f.alice.ID, &dto.CreatePostRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	for want := 1; want <= 2; want++ {
		resp, err := f.svc.LikePost(ctx, uuid.MustParse(post.ID))
		require.NoError(t, err)
		assert.Equal(t, want, resp.LikesCount)
	}

	_, err = f.svc.LikePost(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommunityService_Comments(t *testing.T) {
	f := newCommunityFixture(t)
	ctx := context.Background()

	post, err := f.svc.CreatePost(ctx, f.alice.ID, &dto.CreatePostRequest{Title: "t", Content: "c"})
	require.NoError(t, err)
	postID := uuid.MustParse(post.ID)

	_, err = f.svc.AddComment(ctx, f.bob.ID, uuid.New(), &dto.CreateCommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = f.svc.AddComment(ctx, f.bob.ID, postID, &dto.CreateCommentRequest{Content: " "})
	assert.ErrorIs(t, err, ErrEmptyContent)

	comment, err := f.svc.AddComment(ctx, f.bob.ID, postID, &dto.CreateCommentRequest{Content: "first"})
	require.NoError(t, err)
	_, err = f.svc.AddComment(ctx, f.alice.ID, postID, &dto.CreateCommentRequest{Content: "second"})
	require.NoError(t, err)

	comments, err := f.svc.ListComments(ctx, postID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, post.ID, comments[0].PostID)

	commentID := uuid.MustParse(comment.ID)
	assert.ErrorIs(t, f.svc.DeleteComment(ctx, f.alice.ID, commentID), ErrForbidden)
	require.NoError(t, f.svc.DeleteComment(ctx, f.bob.ID, commentID))
	assert.ErrorIs(t, f.svc.DeleteComment(ctx, f.bob.ID, commentID), ErrCommentNotFound)
}

func TestCommunityService_UploadImage(t *testing.T) {
	f := newCommunityFixture(t)

	resp, err := f.svc.UploadImage(context.Background(), strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(resp.ImageURL, "/uploads/community/"))
	assert.True(t, strings.HasSuffix(resp.ImageURL, ".png"))

	stored := filepath.Join(f.dir, "community", filepath.Base(resp.ImageURL))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	_, err = f.svc.UploadImage(context.Background(), strings.NewReader("gif"), "image/gif")
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}
