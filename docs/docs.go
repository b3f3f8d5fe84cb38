// Package docs holds the Swagger 2.0 description served under /swagger.
// It mirrors the @Router annotations on the handlers in internal/api/handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/user/auth/register": {
            "post": {
                "description": "Register a new user with username, email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"description": "Registration request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {
                "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        },
        "/user/auth/login": {
            "post": {
                "description": "Login with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [{"description": "Login request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        },
        "/user/auth/refresh": {
            "post": {
                "description": "Exchange a refresh token for a new token pair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Refresh access token",
                "parameters": [{"description": "Refresh token request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RefreshTokenRequest"}}],
                "responses": {
                "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        },
        "/api/v1/me": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Current user profile",
                "responses": {
                "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            },
            "put": {
                "security": [{"Bearer": []}],
                "description": "Only the fields present in the body are changed",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Update profile",
                "parameters": [{"description": "Profile fields", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateProfileRequest"}}],
                "responses": {
                "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        },
        "/api/v1/chatbot/message": {
            "post": {
                "security": [{"Bearer": []}],
                "description": "Answer a farming question. External models are tried first, then the offline knowledge base.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chatbot"],
                "summary": "Ask LiAn",
                "parameters": [{"description": "Chat message", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChatRequest"}}],
                "responses": {
                "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ChatReply"}},
                "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        },
        "/api/v1/chatbot/history": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["chatbot"],
                "summary": "Chat history",
                "responses": {
                "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ChatHistoryItem"}}},
                "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["chatbot"],
                "summary": "Clear chat history",
                "responses": {
                "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        },
        "/api/v1/chatbot/status": {
            "get": {
                "description": "Reports which provider answers first and the knowledge base size",
                "produces": ["application/json"],
                "tags": ["chatbot"],
                "summary": "Answering mode",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ChatStatus"}}}
            }
        },
        "/api/v1/chatbot/knowledge/reload": {
            "post": {
                "security": [{"Bearer": []}],
                "description": "Rebuilds the offline knowledge base from the database",
                "produces": ["application/json"],
                "tags": ["chatbot"],
                "summary": "Reload the knowledge base",
                "responses": {
                "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.KnowledgeReloadResponse"}},
                "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        },
        "/api/v1/community/posts": {
            "get": {
                "description": "Newest first, each with its comments",
                "produces": ["application/json"],
                "tags": ["community"],
                "summary": "List community posts",
                "parameters": [
                {"type": "integer", "description": "Offset", "name": "skip", "in": "query"},
                {"type": "integer", "description": "Page size (default 20)", "name": "limit", "in": "query"}
            ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PostResponse"}}}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["community"],
                "summary": "Create a post",
                "parameters": [{"description": "Post", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePostRequest"}}],
                "responses": {
                "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.PostResponse"}},
                "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        },
        "/api/v1/community/posts/upload-image": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["community"],
                "summary": "Upload a post image",
                "parameters": [{"type": "file", "description": "JPEG, PNG or WebP image", "name": "image", "in": "formData", "required": true}],
                "responses": {
                "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ImageUploadResponse"}},
                "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        },
        "/api/v1/community/posts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["community"],
                "summary": "Get a post",
                "parameters": [{"type": "string", "description": "Post ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostResponse"}},
                "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["community"],
                "summary": "Delete own post",
                "parameters": [{"type": "string", "description": "Post ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        },
        "/api/v1/community/posts/{id}/like": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["community"],
                "summary": "Like a post",
                "parameters": [{"type": "string", "description": "Post ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LikeResponse"}},
                "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        },
        "/api/v1/community/posts/{id}/comments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["community"],
                "summary": "Comments of a post",
                "parameters": [{"type": "string", "description": "Post ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CommentResponse"}}}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["community"],
                "summary": "Comment on a post",
                "parameters": [
                {"type": "string", "description": "Post ID", "name": "id", "in": "path", "required": true},
                {"description": "Comment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCommentRequest"}}
            ],
                "responses": {
                "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CommentResponse"}},
                "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        },
        "/api/v1/community/comments/{id}": {
            "delete": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["community"],
                "summary": "Delete own comment",
                "parameters": [{"type": "string", "description": "Comment ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
            }
        }
    },
    "definitions": {
        "dto.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "ana@example.com"},
                "full_name": {"type": "string", "example": "Ana Silva"},
                "password": {"type": "string", "example": "s3cret-pass"},
                "username": {"type": "string", "example": "farmer_ana"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.RefreshTokenRequest": {
            "type": "object",
            "properties": {"refresh_token": {"type": "string"}}
        },
        "dto.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "bio": {"type": "string"},
                "location": {"type": "string"},
                "avatar_url": {"type": "string"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "bio": {"type": "string"},
                "location": {"type": "string"},
                "avatar_url": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "dto.AuthResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "refresh_token": {"type": "string"},
                "token_type": {"type": "string"},
                "expires_in": {"type": "integer"},
                "user": {"$ref": "#/definitions/dto.UserResponse"}
            }
        },
        "dto.ChatRequest": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "my tomato leaves have brown rings"}}
        },
        "dto.ChatReply": {
            "type": "object",
            "properties": {
                "reply": {"type": "string"},
                "source": {"type": "string", "example": "kb"},
                "topic": {"type": "string", "example": "disease"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.ChatHistoryItem": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "content": {"type": "string"},
                "source": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.ChatStatus": {
            "type": "object",
            "properties": {
                "providers": {"type": "array", "items": {"type": "string"}},
                "mode": {"type": "string", "example": "kb"},
                "model": {"type": "string", "example": "KB Engine"},
                "kb_entries": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "dto.KnowledgeReloadResponse": {
            "type": "object",
            "properties": {
                "entries": {"type": "integer"},
                "source": {"type": "string", "example": "database"}
            }
        },
        "dto.CreatePostRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "image_url": {"type": "string"},
                "tags": {"type": "string"}
            }
        },
        "dto.CreateCommentRequest": {
            "type": "object",
            "properties": {"content": {"type": "string"}}
        },
        "dto.AuthorResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "full_name": {"type": "string"},
                "avatar_url": {"type": "string"}
            }
        },
        "dto.CommentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "post_id": {"type": "string"},
                "content": {"type": "string"},
                "author": {"$ref": "#/definitions/dto.AuthorResponse"},
                "created_at": {"type": "string"}
            }
        },
        "dto.PostResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "image_url": {"type": "string"},
                "tags": {"type": "string"},
                "likes_count": {"type": "integer"},
                "author": {"$ref": "#/definitions/dto.AuthorResponse"},
                "comments": {"type": "array", "items": {"$ref": "#/definitions/dto.CommentResponse"}},
                "created_at": {"type": "string"}
            }
        },
        "dto.ImageUploadResponse": {
            "type": "object",
            "properties": {"image_url": {"type": "string"}}
        },
        "dto.LikeResponse": {
            "type": "object",
            "properties": {"likes_count": {"type": "integer"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LeafScan API",
	Description:      "LiAn farming assistant, accounts and community forum.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
