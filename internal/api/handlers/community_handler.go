package handlers

import (
	"errors"

	"leafscan/internal/dto"
	"leafscan/internal/service"
	"leafscan/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommunityHandler struct {
	communityService *service.CommunityService
	logger           *zap.Logger
}

func NewCommunityHandler(communityService *service.CommunityService, logger *zap.Logger) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
		logger:           logger,
	}
}

// ListPosts godoc
// @Summary List community posts
// @Description Newest first, each with its comments
// @Tags community
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {array} dto.PostResponse
// @Router /api/v1/community/posts [get]
func (h *CommunityHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.communityService.ListPosts(c.UserContext(), c.QueryInt("skip", 0), c.QueryInt("limit", 20))
	if err != nil {
		h.logger.Error("Failed to list posts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list posts",
		})
	}
	return c.JSON(posts)
}

// GetPost godoc
// @Summary Get a post
// @Tags community
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/community/posts/{id} [get]
func (h *CommunityHandler) GetPost(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid post ID",
		})
	}

	post, err := h.communityService.GetPost(c.UserContext(), postID)
	if err != nil {
		return h.communityError(c, err)
	}
	return c.JSON(post)
}

// CreatePost godoc
// @Summary Create a post
// @Tags community
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Post"
// @Security Bearer
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/community/posts [post]
func (h *CommunityHandler) CreatePost(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	post, err := h.communityService.CreatePost(c.UserContext(), userID, &req)
	if err != nil {
		return h.communityError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UploadImage godoc
// @Summary Upload a post image
// @Tags community
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "JPEG, PNG or WebP image"
// @Security Bearer
// @Success 201 {object} dto.ImageUploadResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/community/posts/upload-image [post]
func (h *CommunityHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	resp, err := h.communityService.UploadImage(c.UserContext(), src, file.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return h.communityError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// DeletePost godoc
// @Summary Delete own post
// @Tags community
// @Produce json
// @Param id path string true "Post ID"
// @Security Bearer
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/community/posts/{id} [delete]
func (h *CommunityHandler) DeletePost(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid post ID",
		})
	}

	if err := h.communityService.DeletePost(c.UserContext(), userID, postID); err != nil {
		return h.communityError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Post deleted"})
}

// LikePost godoc
// @Summary Like a post
// @Tags community
// @Produce json
// @Param id path string true "Post ID"
// @Security Bearer
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/community/posts/{id}/like [post]
func (h *CommunityHandler) LikePost(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid post ID",
		})
	}

	resp, err := h.communityService.LikePost(c.UserContext(), postID)
	if err != nil {
		return h.communityError(c, err)
	}
	return c.JSON(resp)
}

// AddComment godoc
// @Summary Comment on a post
// @Tags community
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.CreateCommentRequest true "Comment"
// @Security Bearer
// @Success 201 {object} dto.CommentResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/community/posts/{id}/comments [post]
func (h *CommunityHandler) AddComment(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid post ID",
		})
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	comment, err := h.communityService.AddComment(c.UserContext(), userID, postID, &req)
	if err != nil {
		return h.communityError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListComments godoc
// @Summary Comments of a post
// @Tags community
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {array} dto.CommentResponse
// @Router /api/v1/community/posts/{id}/comments [get]
func (h *CommunityHandler) ListComments(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid post ID",
		})
	}

	comments, err := h.communityService.ListComments(c.UserContext(), postID)
	if err != nil {
		return h.communityError(c, err)
	}
	return c.JSON(comments)
}

// DeleteComment godoc
// @Summary Delete own comment
// @Tags community
// @Produce json
// @Param id path string true "Comment ID"
// @Security Bearer
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} map[string]string
// @Router /api/v1/community/comments/{id} [delete]
func (h *CommunityHandler) DeleteComment(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid comment ID",
		})
	}

	if err := h.communityService.DeleteComment(c.UserContext(), userID, commentID); err != nil {
		return h.communityError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Comment deleted"})
}

func (h *CommunityHandler) communityError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPostNotFound), errors.Is(err, service.ErrCommentNotFound), errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	case errors.Is(err, service.ErrUnsupportedImage), errors.Is(err, service.ErrEmptyContent):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	h.logger.Error("Community request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
