// Package memrepo holds in-memory versions of the PostgreSQL repositories.
// Lookups that find nothing return pgx.ErrNoRows like the real ones.
package memrepo

import (
	"context"
	"sort"
	"sync"

	"leafscan/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ChatStore struct {
	mu        sync.Mutex
	Messages  []*models.ChatMessage
	CreateErr error
}

func (h *ChatStore) CreateBatch(_ context.Context, messages []*models.ChatMessage) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.CreateErr != nil {
		return h.CreateErr
	}
	h.Messages = append(h.Messages, messages...)
	return nil
}

func (h *ChatStore) byUser(userID uuid.UUID) []*models.ChatMessage {
	var out []*models.ChatMessage
	for _, m := range h.Messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out
}

// ListRecent returns the newest messages first.
func (h *ChatStore) ListRecent(_ context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := h.byUser(userID)
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].CreatedAt.After(msgs[j].CreatedAt) })
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

func (h *ChatStore) ListByUserID(_ context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := h.byUser(userID)
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].CreatedAt.Before(msgs[j].CreatedAt) })
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

func (h *ChatStore) DeleteByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var kept []*models.ChatMessage
	var n int64
	for _, m := range h.Messages {
		if m.UserID == userID {
			n++
			continue
		}
		kept = append(kept, m)
	}
	h.Messages = kept
	return n, nil
}

type KnowledgeStore struct {
	mu      sync.Mutex
	Rows    []*models.KnowledgeEntry
	ListErr error
}

func (k *KnowledgeStore) ListAll(context.Context) ([]*models.KnowledgeEntry, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.ListErr != nil {
		return nil, k.ListErr
	}
	return append([]*models.KnowledgeEntry(nil), k.Rows...), nil
}

// ReplacePack keeps rows ordered by priority, pack and position.
func (k *KnowledgeStore) ReplacePack(_ context.Context, pack string, priority int, entries []*models.KnowledgeEntry) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	var kept []*models.KnowledgeEntry
	for _, r := range k.Rows {
		if r.Pack != pack {
			kept = append(kept, r)
		}
	}
	for i, e := range entries {
		e.Pack, e.Priority, e.Position = pack, priority, i
		kept = append(kept, e)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Priority != kept[j].Priority {
			return kept[i].Priority < kept[j].Priority
		}
		if kept[i].Pack != kept[j].Pack {
			return kept[i].Pack < kept[j].Pack
		}
		return kept[i].Position < kept[j].Position
	})
	k.Rows = kept
	return nil
}

type UserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uuid.UUID]*models.User)}
}

func (u *UserStore) Create(_ context.Context, user *models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	cp := *user
	u.users[user.ID] = &cp
	return nil
}

func (u *UserStore) find(match func(*models.User) bool) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, user := range u.users {
		if match(user) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (u *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return u.find(func(x *models.User) bool { return x.Email == email })
}

func (u *UserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return u.find(func(x *models.User) bool { return x.Username == username })
}

func (u *UserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	return u.find(func(x *models.User) bool { return x.ID == id })
}

func (u *UserStore) UpdateProfile(_ context.Context, user *models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *user
	u.users[user.ID] = &cp
	return nil
}

// PostStore lists posts newest first.
type PostStore struct {
	mu    sync.Mutex
	posts []*models.Post
}

func (p *PostStore) Create(_ context.Context, post *models.Post) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	cp := *post
	p.posts = append(p.posts, &cp)
	return nil
}

func (p *PostStore) GetByID(_ context.Context, id uuid.UUID) (*models.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, post := range p.posts {
		if post.ID == id {
			cp := *post
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (p *PostStore) List(_ context.Context, offset, limit int) ([]*models.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*models.Post, 0, len(p.posts))
	for i := len(p.posts) - 1; i >= 0; i-- {
		cp := *p.posts[i]
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (p *PostStore) Delete(_ context.Context, id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, post := range p.posts {
		if post.ID == id {
			p.posts = append(p.posts[:i], p.posts[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (p *PostStore) IncrementLikes(_ context.Context, id uuid.UUID) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, post := range p.posts {
		if post.ID == id {
			post.LikesCount++
			return post.LikesCount, nil
		}
	}
	return 0, pgx.ErrNoRows
}

// CommentStore lists comments in insertion order.
type CommentStore struct {
	mu       sync.Mutex
	comments []*models.Comment
}

func (c *CommentStore) Create(_ context.Context, comment *models.Comment) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *comment
	c.comments = append(c.comments, &cp)
	return nil
}

func (c *CommentStore) GetByID(_ context.Context, id uuid.UUID) (*models.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, comment := range c.comments {
		if comment.ID == id {
			cp := *comment
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (c *CommentStore) ListByPostIDs(_ context.Context, postIDs []uuid.UUID) ([]*models.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	want := make(map[uuid.UUID]bool, len(postIDs))
	for _, id := range postIDs {
		want[id] = true
	}
	var out []*models.Comment
	for _, comment := range c.comments {
		if want[comment.PostID] {
			cp := *comment
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (c *CommentStore) Delete(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, comment := range c.comments {
		if comment.ID == id {
			c.comments = append(c.comments[:i], c.comments[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}
