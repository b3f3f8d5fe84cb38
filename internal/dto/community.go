package dto

type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
	Tags     string `json:"tags,omitempty"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type AuthorResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type CommentResponse struct {
	ID        string         `json:"id"`
	PostID    string         `json:"post_id"`
	Content   string         `json:"content"`
	Author    AuthorResponse `json:"author"`
	CreatedAt string         `json:"created_at"`
}

type PostResponse struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	ImageURL   string            `json:"image_url,omitempty"`
	Tags       string            `json:"tags,omitempty"`
	LikesCount int               `json:"likes_count"`
	Author     AuthorResponse    `json:"author"`
	Comments   []CommentResponse `json:"comments"`
	CreatedAt  string            `json:"created_at"`
}

type ImageUploadResponse struct {
	ImageURL string `json:"image_url"`
}

type LikeResponse struct {
	LikesCount int `json:"likes_count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
