package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"leafscan/internal/api/handlers"
	"leafscan/internal/assistant"
	"leafscan/internal/dto"
	"leafscan/internal/repository/memrepo"
	"leafscan/internal/service"
	"leafscan/pkg/auth"
	"leafscan/pkg/config"
	"leafscan/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zap.NewNop()
	m := metrics.New()
	users := memrepo.NewUserStore()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	engine := assistant.NewEngine(assistant.DefaultKnowledgeBase())
	serverCfg := &config.ServerConfig{UploadDir: t.TempDir(), AllowOrigins: "*"}

	authService := service.NewAuthService(users, jwtManager, log)
	chatService := service.NewChatService(engine, &memrepo.ChatStore{}, nil, nil, m,
		config.ChatConfig{HistoryLimit: 10, HistoryPageSize: 100}, time.Second, log)
	knowledgeService := service.NewKnowledgeService(&memrepo.KnowledgeStore{}, engine, m, log)
	communityService := service.NewCommunityService(&memrepo.PostStore{}, &memrepo.CommentStore{}, users, serverCfg.UploadDir, log)

	return SetupRouter(
		handlers.NewAuthHandler(authService, log),
		handlers.NewChatHandler(chatService, knowledgeService, log),
		handlers.NewCommunityHandler(communityService, log),
		jwtManager, m, serverCfg, log,
	)
}

func do(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func registerUser(t *testing.T, app *fiber.App, username string) dto.AuthResponse {
	t.Helper()
	resp, body := do(t, app, http.MethodPost, "/user/auth/register", "", dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "s3cret-pass",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))

	var out dto.AuthResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)

	resp, body = do(t, app, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "ana")

	resp, _ := do(t, app, http.MethodPost, "/user/auth/register", "", dto.RegisterRequest{
		Username: "ana2", Email: "ana@example.com", Password: "s3cret-pass",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/user/auth/register", "", dto.RegisterRequest{
		Username: "x", Email: "bad", Password: "s3cret-pass",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/user/auth/login", "", dto.LoginRequest{Email: "ana@example.com", Password: "nope"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body := do(t, app, http.MethodPost, "/user/auth/refresh", "", dto.RefreshTokenRequest{RefreshToken: user.RefreshToken})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	location := "Kisumu"
	resp, body = do(t, app, http.MethodPut, "/api/v1/me", user.AccessToken, dto.UpdateProfileRequest{Location: &location})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	resp, body = do(t, app, http.MethodGet, "/api/v1/me", user.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me dto.UserResponse
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "Kisumu", me.Location)

	resp, _ = do(t, app, http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestChatbotRoutes(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "ana")

	resp, _ := do(t, app, http.MethodPost, "/api/v1/chatbot/message", "", dto.ChatRequest{Message: "hi"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body := do(t, app, http.MethodPost, "/api/v1/chatbot/message", user.AccessToken, dto.ChatRequest{Message: "tomato early blight treatment"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	var reply dto.ChatReply
	require.NoError(t, json.Unmarshal(body, &reply))
	assert.Equal(t, assistant.SourceKB, reply.Source)

	resp, body = do(t, app, http.MethodGet, "/api/v1/chatbot/history", user.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var items []dto.ChatHistoryItem
	require.NoError(t, json.Unmarshal(body, &items))
	assert.Len(t, items, 2)

	resp, _ = do(t, app, http.MethodDelete, "/api/v1/chatbot/history", user.AccessToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body = do(t, app, http.MethodGet, "/api/v1/chatbot/status", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var status dto.ChatStatus
	require.NoError(t, json.Unmarshal(body, &status))
	assert.Equal(t, "kb", status.Mode)

	resp, body = do(t, app, http.MethodPost, "/api/v1/chatbot/knowledge/reload", user.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var reload dto.KnowledgeReloadResponse
	require.NoError(t, json.Unmarshal(body, &reload))
	assert.Equal(t, service.KnowledgeSourceBuiltin, reload.Source)
}

func TestCommunityRoutes(t *testing.T) {
	app := newTestApp(t)
	alice := registerUser(t, app, "alice")
	bob := registerUser(t, app, "bob")

	resp, body := do(t, app, http.MethodPost, "/api/v1/community/posts", alice.AccessToken, dto.CreatePostRequest{Title: "Leaf rust", Content: "orange spots"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))
	var post dto.PostResponse
	require.NoError(t, json.Unmarshal(body, &post))

	resp, _ = do(t, app, http.MethodPost, "/api/v1/community/posts/"+post.ID+"/comments", bob.AccessToken, dto.CreateCommentRequest{Content: "spray early"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body = do(t, app, http.MethodPost, "/api/v1/community/posts/"+post.ID+"/like", bob.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"likes_count":1}`, string(body))

	resp, body = do(t, app, http.MethodGet, "/api/v1/community/posts", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var posts []dto.PostResponse
	require.NoError(t, json.Unmarshal(body, &posts))
	require.Len(t, posts, 1)
	assert.Len(t, posts[0].Comments, 1)

	resp, _ = do(t, app, http.MethodGet, "/api/v1/community/posts/not-a-uuid", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodDelete, "/api/v1/community/posts/"+post.ID, bob.AccessToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = do(t, app, http.MethodDelete, "/api/v1/community/posts/"+post.ID, alice.AccessToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/v1/community/posts/"+post.ID, "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUploadImage(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "ana")

	upload := func(contentType string) *http.Response {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="leaf.img"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/community/posts/upload-image", &buf)
		req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+user.AccessToken)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	resp := upload("image/jpeg")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out dto.ImageUploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	served, err := app.Test(httptest.NewRequest(http.MethodGet, out.ImageURL, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, served.StatusCode)

	assert.Equal(t, fiber.StatusBadRequest, upload("image/gif").StatusCode)
}
