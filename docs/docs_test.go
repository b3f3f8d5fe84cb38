package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swaggerDoc struct {
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func readDoc(t *testing.T) (swaggerDoc, string) {
	t.Helper()
	raw := SwaggerInfo.ReadDoc()
	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc, raw
}

func TestSwagger_DocumentsEveryRoute(t *testing.T) {
	doc, _ := readDoc(t)

	routes := []struct{ path, method string }{
		{"/api/health", "get"},
		{"/user/auth/register", "post"},
		{"/user/auth/login", "post"},
		{"/user/auth/refresh", "post"},
		{"/api/v1/me", "get"},
		{"/api/v1/me", "put"},
		{"/api/v1/chatbot/message", "post"},
		{"/api/v1/chatbot/history", "get"},
		{"/api/v1/chatbot/history", "delete"},
		{"/api/v1/chatbot/status", "get"},
		{"/api/v1/chatbot/knowledge/reload", "post"},
		{"/api/v1/community/posts", "get"},
		{"/api/v1/community/posts", "post"},
		{"/api/v1/community/posts/upload-image", "post"},
		{"/api/v1/community/posts/{id}", "get"},
		{"/api/v1/community/posts/{id}", "delete"},
		{"/api/v1/community/posts/{id}/like", "post"},
		{"/api/v1/community/posts/{id}/comments", "get"},
		{"/api/v1/community/posts/{id}/comments", "post"},
		{"/api/v1/community/comments/{id}", "delete"},
	}

	total := 0
	for _, ops := range doc.Paths {
		total += len(ops)
	}
	assert.Equal(t, len(routes), total)
	for _, r := range routes {
		_, ok := doc.Paths[r.path][r.method]
		assert.True(t, ok, "%s %s", strings.ToUpper(r.method), r.path)
	}
}

func TestSwagger_ReferencedDefinitionsExist(t *testing.T) {
	doc, raw := readDoc(t)

	const prefix = `"#/definitions/`
	for rest := raw; ; {
		i := strings.Index(rest, prefix)
		if i < 0 {
			break
		}
		rest = rest[i+len(prefix):]
		name := rest[:strings.IndexByte(rest, '"')]
		assert.Contains(t, doc.Definitions, name)
	}
}
